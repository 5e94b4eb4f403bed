package usecase

import (
	"context"
	"slices"
	"strings"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/query"
	"go-jobboard-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type notificationUsecase struct {
	repo     domain.NotificationRepository
	validate *validator.Validate
}

func NewNotificationUsecase(repo domain.NotificationRepository, validate *validator.Validate) domain.NotificationUsecase {
	return &notificationUsecase{repo: repo, validate: validate}
}

// ListNotifications returns the notifications of one type together with
// the per-type counts and unread total of the whole inbox.
func (u *notificationUsecase) ListNotifications(ctx context.Context, notificationType string) (*domain.NotificationList, error) {
	notificationType = strings.ToLower(strings.TrimSpace(notificationType))
	if notificationType == "" {
		notificationType = query.StatusAll
	}
	if notificationType != query.StatusAll && !slices.Contains(domain.NotificationTypes, notificationType) {
		return nil, apperror.BadRequest("Unknown notification type: " + notificationType)
	}

	all, err := u.repo.GetAll(ctx)
	if err != nil {
		return nil, storeError(err, "Notifications not found")
	}
	return &domain.NotificationList{
		Notifications: query.FilterNotificationsByType(all, notificationType),
		Counts:        query.NotificationTypeCounts(all),
		Unread:        query.UnreadCount(all),
		Type:          notificationType,
	}, nil
}

// CreateNotification stamps the creation time and always starts unread
func (u *notificationUsecase) CreateNotification(ctx context.Context, n *domain.Notification) error {
	if err := u.validate.Struct(n); err != nil {
		return validationError(err)
	}
	n.CreatedAt = time.Now().UTC()
	n.Read = false
	if err := u.repo.Create(ctx, n); err != nil {
		return storeError(err, "Notification not found")
	}
	return nil
}

func (u *notificationUsecase) MarkAsRead(ctx context.Context, id int64) (*domain.Notification, error) {
	n, err := u.repo.MarkAsRead(ctx, id)
	if err != nil {
		return nil, storeError(err, "Notification not found")
	}
	return n, nil
}

func (u *notificationUsecase) MarkAsUnread(ctx context.Context, id int64) (*domain.Notification, error) {
	n, err := u.repo.MarkAsUnread(ctx, id)
	if err != nil {
		return nil, storeError(err, "Notification not found")
	}
	return n, nil
}

func (u *notificationUsecase) MarkAllAsRead(ctx context.Context) ([]domain.Notification, error) {
	ns, err := u.repo.MarkAllAsRead(ctx)
	if err != nil {
		return nil, storeError(err, "Notifications not found")
	}
	return ns, nil
}

func (u *notificationUsecase) UnreadCount(ctx context.Context) (int, error) {
	n, err := u.repo.GetUnreadCount(ctx)
	if err != nil {
		return 0, storeError(err, "Notifications not found")
	}
	return n, nil
}

func (u *notificationUsecase) DeleteNotification(ctx context.Context, id int64) (*domain.Notification, error) {
	n, err := u.repo.Delete(ctx, id)
	if err != nil {
		return nil, storeError(err, "Notification not found")
	}
	return n, nil
}
