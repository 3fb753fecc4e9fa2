package usecase

import (
	"context"

	"kirana/internal/domain/entity"
)

// NotificationsView is one role's queue with its live unread count.
type NotificationsView struct {
	Notifications []entity.Notification `json:"notifications"`
	UnreadCount   int                   `json:"unreadCount"`
}

// NotificationUsecase exposes the two role-owned queues. Acknowledgment is
// bulk only: a role marks its whole queue read, never a single entry.
type NotificationUsecase interface {
	// List returns the queue, newest first, with the recomputed unread count.
	List(ctx context.Context, queue entity.NotificationQueue) (*NotificationsView, error)

	// UnreadCount recounts unread entries.
	UnreadCount(ctx context.Context, queue entity.NotificationQueue) (int, error)

	// MarkAllRead acknowledges the whole queue. Idempotent.
	MarkAllRead(ctx context.Context, queue entity.NotificationQueue) error
}
