package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationUC domain.NotificationUsecase
}

func NewNotificationHandler(r *gin.RouterGroup, notificationUC domain.NotificationUsecase) {
	handler := &NotificationHandler{notificationUC: notificationUC}

	notifications := r.Group("/notifications")
	{
		notifications.GET("", handler.List)
		notifications.POST("", handler.Create)
		notifications.GET("/unread-count", handler.UnreadCount)
		notifications.POST("/read-all", handler.MarkAllAsRead)
		notifications.PATCH("/:id/read", handler.MarkAsRead)
		notifications.PATCH("/:id/unread", handler.MarkAsUnread)
		notifications.DELETE("/:id", handler.Delete)
	}
}

type CreateNotificationRequest struct {
	Type    string `json:"type" binding:"required" example:"job"`
	Title   string `json:"title" binding:"required"`
	Message string `json:"message"`
}

// ListNotifications godoc
// @Summary      List notifications
// @Tags         notifications
// @Produce      json
// @Param        type  query     string  false  "all, application, job or account"
// @Success      200  {object}  response.Response{data=domain.NotificationList}
// @Failure      400  {object}  response.Response
// @Router       /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	list, err := h.notificationUC.ListNotifications(c.Request.Context(), c.Query("type"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Notification list", list)
}

// CreateNotification godoc
// @Summary      Create a notification
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        notification  body      CreateNotificationRequest  true  "Notification"
// @Success      201  {object}  response.Response{data=domain.Notification}
// @Failure      400  {object}  response.Response
// @Router       /notifications [post]
func (h *NotificationHandler) Create(c *gin.Context) {
	var req CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	n := &domain.Notification{Type: req.Type, Title: req.Title, Message: req.Message}
	if err := h.notificationUC.CreateNotification(c.Request.Context(), n); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Notification created", n)
}

// UnreadCount godoc
// @Summary      Count unread notifications
// @Tags         notifications
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /notifications/unread-count [get]
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	count, err := h.notificationUC.UnreadCount(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Unread count", gin.H{"unread": count})
}

// MarkAllAsRead godoc
// @Summary      Mark every notification as read
// @Tags         notifications
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Notification}
// @Router       /notifications/read-all [post]
func (h *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	ns, err := h.notificationUC.MarkAllAsRead(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "All notifications marked as read", ns)
}

// MarkAsRead godoc
// @Summary      Mark a notification as read
// @Tags         notifications
// @Produce      json
// @Param        id   path      int  true  "Notification ID"
// @Success      200  {object}  response.Response{data=domain.Notification}
// @Failure      404  {object}  response.Response
// @Router       /notifications/{id}/read [patch]
func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	h.setRead(c, true)
}

// MarkAsUnread godoc
// @Summary      Mark a notification as unread
// @Tags         notifications
// @Produce      json
// @Param        id   path      int  true  "Notification ID"
// @Success      200  {object}  response.Response{data=domain.Notification}
// @Failure      404  {object}  response.Response
// @Router       /notifications/{id}/unread [patch]
func (h *NotificationHandler) MarkAsUnread(c *gin.Context) {
	h.setRead(c, false)
}

func (h *NotificationHandler) setRead(c *gin.Context, read bool) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var n *domain.Notification
	if read {
		n, err = h.notificationUC.MarkAsRead(c.Request.Context(), id)
	} else {
		n, err = h.notificationUC.MarkAsUnread(c.Request.Context(), id)
	}
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Notification updated", n)
}

// DeleteNotification godoc
// @Summary      Delete a notification
// @Tags         notifications
// @Produce      json
// @Param        id   path      int  true  "Notification ID"
// @Success      200  {object}  response.Response{data=domain.Notification}
// @Failure      404  {object}  response.Response
// @Router       /notifications/{id} [delete]
func (h *NotificationHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	n, err := h.notificationUC.DeleteNotification(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Notification deleted", n)
}
