package v1

import (
	"net/http"
	"strconv"
	"strings"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(r *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	jobs := r.Group("/jobs")
	{
		jobs.GET("", handler.Search)
		jobs.POST("", handler.Create)
		jobs.GET("/:id", handler.GetDetails)
		jobs.PATCH("/:id", handler.Update)
		jobs.DELETE("/:id", handler.Delete)
		jobs.POST("/:id/apply", handler.Apply)
	}
}

type CreateJobRequest struct {
	CompanyID       int64              `json:"company_id" binding:"required"`
	Title           string             `json:"title" binding:"required"`
	Description     string             `json:"description"`
	Location        string             `json:"location" binding:"required"`
	Type            string             `json:"type" binding:"required"`
	ExperienceLevel string             `json:"experience_level"`
	SalaryRange     domain.SalaryRange `json:"salary_range"`
	Requirements    []string           `json:"requirements"`
}

type ApplyRequest struct {
	CoverLetter string `json:"cover_letter"`
}

// parseJobSearch builds the search from the query string. Invalid values
// are rejected instead of silently ignored.
func parseJobSearch(c *gin.Context) (domain.JobSearch, error) {
	search := domain.NewJobSearch()

	minSalary, err := queryInt64(c, "min_salary")
	if err != nil {
		return search, err
	}
	maxSalary, err := queryInt64(c, "max_salary")
	if err != nil {
		return search, err
	}
	sortKey, ok := domain.ParseSortKey(c.Query("sort"))
	if !ok {
		return search, apperror.BadRequest("sort must be one of: recent, salary-high, salary-low, title")
	}
	page := 1
	if raw := c.Query("page"); raw != "" {
		if page, err = strconv.Atoi(raw); err != nil {
			return search, apperror.BadRequest("page must be a whole number")
		}
	}

	return search.
		WithFilter(domain.JobFilter{
			Query:            strings.TrimSpace(c.Query("q")),
			Location:         strings.TrimSpace(c.Query("location")),
			MinSalary:        minSalary,
			MaxSalary:        maxSalary,
			JobTypes:         queryList(c, "job_types"),
			ExperienceLevels: queryList(c, "experience_levels"),
		}).
		WithSort(sortKey).
		WithPage(page), nil
}

// SearchJobs godoc
// @Summary      Search jobs
// @Description  Filter, sort and paginate the job listing. A search superseded by a newer one from the same session returns 409.
// @Tags         jobs
// @Produce      json
// @Param        q                  query     string  false  "Keyword in title, company or requirements"
// @Param        location           query     string  false  "Location substring"
// @Param        min_salary         query     int     false  "Lowest acceptable salary minimum"
// @Param        max_salary         query     int     false  "Highest acceptable salary maximum"
// @Param        job_types          query     string  false  "Comma separated job types"
// @Param        experience_levels  query     string  false  "Comma separated experience levels"
// @Param        sort               query     string  false  "recent, salary-high, salary-low or title"
// @Param        page               query     int     false  "Page number"
// @Success      200  {object}  response.Response{data=domain.PaginatedResult[domain.Job]}
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /jobs [get]
func (h *JobHandler) Search(c *gin.Context) {
	search, err := parseJobSearch(c)
	if err != nil {
		c.Error(err)
		return
	}

	page, err := h.jobUC.SearchJobs(c.Request.Context(), sessionID(c), search)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job list", page)
}

// GetJob godoc
// @Summary      Get job details
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response{data=domain.Job}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetDetails(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	job, err := h.jobUC.GetJob(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job details", job)
}

// CreateJob godoc
// @Summary      Create a new job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      CreateJobRequest  true  "Job JSON"
// @Success      201  {object}  response.Response{data=domain.Job}
// @Failure      400  {object}  response.Response
// @Router       /jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job := &domain.Job{
		CompanyID:       req.CompanyID,
		Title:           strings.TrimSpace(req.Title),
		Description:     req.Description,
		Location:        strings.TrimSpace(req.Location),
		Type:            req.Type,
		ExperienceLevel: req.ExperienceLevel,
		SalaryRange:     req.SalaryRange,
		Requirements:    req.Requirements,
	}
	if job.Requirements == nil {
		job.Requirements = []string{}
	}

	if err := h.jobUC.CreateJob(c.Request.Context(), job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created", job)
}

// UpdateJob godoc
// @Summary      Update a job
// @Description  Shallow merge of the given fields. The id cannot change.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id     path      int     true  "Job ID"
// @Param        patch  body      object  true  "Fields to change"
// @Success      200  {object}  response.Response{data=domain.Job}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [patch]
func (h *JobHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}
	patch, err := bindPatch(c)
	if err != nil {
		c.Error(err)
		return
	}

	job, err := h.jobUC.UpdateJob(c.Request.Context(), id, patch)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job updated", job)
}

// DeleteJob godoc
// @Summary      Delete a job
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response{data=domain.Job}
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [delete]
func (h *JobHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	job, err := h.jobUC.DeleteJob(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job deleted", job)
}

// ApplyToJob godoc
// @Summary      Apply to a job
// @Description  Submits an application for the default candidate
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id    path      int           true   "Job ID"
// @Param        body  body      ApplyRequest  false  "Optional cover letter"
// @Success      201  {object}  response.Response{data=domain.Application}
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id}/apply [post]
func (h *JobHandler) Apply(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req ApplyRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Error(apperror.BadRequest(err.Error()))
			return
		}
	}

	app, err := h.jobUC.ApplyToJob(c.Request.Context(), id, req.CoverLetter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted", app)
}
