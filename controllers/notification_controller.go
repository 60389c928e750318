package controllers

import (
	"context"

	"reservas/dto"
	"reservas/middleware"
	"reservas/models"
	"reservas/response"

	"github.com/gin-gonic/gin"
)

type NotificationManager interface {
	List(ctx context.Context, actor *models.User, q dto.NotificationQuery) ([]models.Notification, int64, error)
	Get(ctx context.Context, actor *models.User, id uint) (*models.Notification, error)
	Create(ctx context.Context, req dto.NotificationRequest) (*models.Notification, error)
	Update(ctx context.Context, id uint, patch dto.NotificationPatch) (*models.Notification, error)
	Delete(ctx context.Context, id uint) error
	UnreadCount(ctx context.Context, actor *models.User) (int64, error)
	MarkRead(ctx context.Context, actor *models.User, id uint) (*models.Notification, error)
	MarkAllRead(ctx context.Context, actor *models.User) (int64, error)
}

// NotificationController expone las notificaciones; el personal ve todas,
// el resto solo las suyas.
type NotificationController struct {
	notifications NotificationManager
}

func NewNotificationController(notifications NotificationManager) *NotificationController {
	return &NotificationController{notifications: notifications}
}

func (nc *NotificationController) GetAllNotifications(c *gin.Context) {
	var q dto.NotificationQuery
	if !bindQuery(c, &q) {
		return
	}
	list, total, err := nc.notifications.List(c.Request.Context(), middleware.CurrentUser(c), q)
	if err != nil {
		fail(c, err)
		return
	}
	q.Normalize()
	response.SuccessWithPagination(c, list, q.Page, q.Limit, int(total))
}

func (nc *NotificationController) GetNotificationDetail(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	n, err := nc.notifications.Get(c.Request.Context(), middleware.CurrentUser(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, n)
}

func (nc *NotificationController) CreateNotification(c *gin.Context) {
	var req dto.NotificationRequest
	if !bindJSON(c, &req) {
		return
	}
	n, err := nc.notifications.Create(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, n)
}

func (nc *NotificationController) UpdateNotification(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var patch dto.NotificationPatch
	if !bindJSON(c, &patch) {
		return
	}
	n, err := nc.notifications.Update(c.Request.Context(), id, patch)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, n)
}

func (nc *NotificationController) DeleteNotification(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := nc.notifications.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	response.NoContent(c)
}

func (nc *NotificationController) UnreadCount(c *gin.Context) {
	count, err := nc.notifications.UnreadCount(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, dto.UnreadCountResponse{Count: count})
}

func (nc *NotificationController) MarkRead(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	n, err := nc.notifications.MarkRead(c.Request.Context(), middleware.CurrentUser(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, n)
}

func (nc *NotificationController) MarkAllRead(c *gin.Context) {
	updated, err := nc.notifications.MarkAllRead(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, dto.MarkAllReadResponse{Updated: updated})
}
