package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	appUC domain.ApplicationUsecase
}

func NewApplicationHandler(r *gin.RouterGroup, appUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{appUC: appUC}

	applications := r.Group("/applications")
	{
		applications.GET("", handler.List)
		applications.GET("/export", handler.Export)
		applications.GET("/:id", handler.GetDetails)
		applications.PATCH("/:id/status", handler.UpdateStatus)
		applications.DELETE("/:id", handler.Delete)
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required" example:"interview"`
}

// ListApplications godoc
// @Summary      List applications
// @Description  Applications with the selected status plus counts over all statuses
// @Tags         applications
// @Produce      json
// @Param        status  query     string  false  "all, submitted, reviewed, interview, rejected or offered"
// @Success      200  {object}  response.Response{data=domain.ApplicationList}
// @Failure      400  {object}  response.Response
// @Router       /applications [get]
func (h *ApplicationHandler) List(c *gin.Context) {
	list, err := h.appUC.ListApplications(c.Request.Context(), c.Query("status"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application list", list)
}

// ExportApplications godoc
// @Summary      Export applications
// @Description  Downloads the applications with the selected status as Excel or CSV
// @Tags         applications
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce      text/csv
// @Param        status  query     string  false  "Status filter"
// @Param        format  query     string  false  "xlsx (default) or csv"
// @Success      200  {file}    file
// @Failure      400  {object}  response.Response
// @Router       /applications/export [get]
func (h *ApplicationHandler) Export(c *gin.Context) {
	file, err := h.appUC.ExportApplications(c.Request.Context(), c.Query("status"), c.Query("format"))
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+file.Filename)
	c.Data(http.StatusOK, file.ContentType, file.Data)
}

// GetApplication godoc
// @Summary      Get application details
// @Tags         applications
// @Produce      json
// @Param        id   path      int  true  "Application ID"
// @Success      200  {object}  response.Response{data=domain.ApplicationDetail}
// @Failure      404  {object}  response.Response
// @Router       /applications/{id} [get]
func (h *ApplicationHandler) GetDetails(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	app, err := h.appUC.GetApplication(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application details", app)
}

// UpdateApplicationStatus godoc
// @Summary      Update application status
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id      path      int                  true  "Application ID"
// @Param        status  body      UpdateStatusRequest  true  "New status"
// @Success      200  {object}  response.Response{data=domain.Application}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /applications/{id}/status [patch]
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("status is required"))
		return
	}

	app, err := h.appUC.UpdateApplicationStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application status updated", app)
}

// DeleteApplication godoc
// @Summary      Withdraw an application
// @Tags         applications
// @Produce      json
// @Param        id   path      int  true  "Application ID"
// @Success      200  {object}  response.Response{data=domain.Application}
// @Failure      404  {object}  response.Response
// @Router       /applications/{id} [delete]
func (h *ApplicationHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	app, err := h.appUC.DeleteApplication(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application deleted", app)
}
