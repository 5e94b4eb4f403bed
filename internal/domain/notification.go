package domain

import (
	"context"
	"time"
)

// Notification type constants
const (
	NotificationTypeApplication = "application"
	NotificationTypeJob         = "job"
	NotificationTypeAccount     = "account"
)

var NotificationTypes = []string{NotificationTypeApplication, NotificationTypeJob, NotificationTypeAccount}

type Notification struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type" validate:"notification_type"`
	Title     string    `json:"title" validate:"not_blank,max=200"`
	Message   string    `json:"message" validate:"max=2000"`
	CreatedAt time.Time `json:"created_at"`
	Read      bool      `json:"read"`
}

func (n *Notification) GetID() int64   { return n.ID }
func (n *Notification) SetID(id int64) { n.ID = id }

// TypeCounts is the type histogram of the notification center
type TypeCounts struct {
	All         int `json:"all"`
	Application int `json:"application"`
	Job         int `json:"job"`
	Account     int `json:"account"`
}

type NotificationList struct {
	Notifications []Notification `json:"notifications"`
	Counts        TypeCounts     `json:"counts"`
	Unread        int            `json:"unread"`
	Type          string         `json:"type"`
}

type NotificationRepository interface {
	GetAll(ctx context.Context) ([]Notification, error)
	GetByID(ctx context.Context, id int64) (*Notification, error)
	Create(ctx context.Context, n *Notification) error
	Update(ctx context.Context, id int64, patch map[string]any) (*Notification, error)
	Delete(ctx context.Context, id int64) (*Notification, error)

	MarkAsRead(ctx context.Context, id int64) (*Notification, error)
	MarkAsUnread(ctx context.Context, id int64) (*Notification, error)
	MarkAllAsRead(ctx context.Context) ([]Notification, error)
	GetUnreadCount(ctx context.Context) (int, error)
}

type NotificationUsecase interface {
	ListNotifications(ctx context.Context, notificationType string) (*NotificationList, error)
	CreateNotification(ctx context.Context, n *Notification) error
	MarkAsRead(ctx context.Context, id int64) (*Notification, error)
	MarkAsUnread(ctx context.Context, id int64) (*Notification, error)
	MarkAllAsRead(ctx context.Context) ([]Notification, error)
	UnreadCount(ctx context.Context) (int, error)
	DeleteNotification(ctx context.Context, id int64) (*Notification, error)
}
