package repository

import (
	"context"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/query"
)

type notificationRepo struct {
	notifications domain.Collection[domain.Notification]
}

func NewNotificationRepository(notifications domain.Collection[domain.Notification]) domain.NotificationRepository {
	return &notificationRepo{notifications: notifications}
}

func (r *notificationRepo) GetAll(ctx context.Context) ([]domain.Notification, error) {
	return r.notifications.All(ctx)
}

func (r *notificationRepo) GetByID(ctx context.Context, id int64) (*domain.Notification, error) {
	return r.notifications.Get(ctx, id)
}

func (r *notificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	return r.notifications.Insert(ctx, n)
}

func (r *notificationRepo) Update(ctx context.Context, id int64, patch map[string]any) (*domain.Notification, error) {
	return r.notifications.Merge(ctx, id, patch)
}

func (r *notificationRepo) Delete(ctx context.Context, id int64) (*domain.Notification, error) {
	return r.notifications.Remove(ctx, id)
}

func (r *notificationRepo) MarkAsRead(ctx context.Context, id int64) (*domain.Notification, error) {
	return r.setRead(ctx, id, true)
}

func (r *notificationRepo) MarkAsUnread(ctx context.Context, id int64) (*domain.Notification, error) {
	return r.setRead(ctx, id, false)
}

func (r *notificationRepo) MarkAllAsRead(ctx context.Context) ([]domain.Notification, error) {
	return r.notifications.MutateAll(ctx, func(n *domain.Notification) error {
		n.Read = true
		return nil
	})
}

func (r *notificationRepo) GetUnreadCount(ctx context.Context) (int, error) {
	all, err := r.notifications.All(ctx)
	if err != nil {
		return 0, err
	}
	return query.UnreadCount(all), nil
}

func (r *notificationRepo) setRead(ctx context.Context, id int64, read bool) (*domain.Notification, error) {
	return r.notifications.Mutate(ctx, id, func(n *domain.Notification) error {
		n.Read = read
		return nil
	})
}
