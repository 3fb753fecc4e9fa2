package repository

import (
	"context"

	"kirana/internal/domain/entity"
)

// NotificationRepository persists the two role-owned notification queues.
// Each queue is an independent head-appended log with bulk acknowledgment;
// there is no cross-queue operation.
type NotificationRepository interface {
	// GetAll retrieves the queue, newest first.
	GetAll(ctx context.Context, queue entity.NotificationQueue) ([]entity.Notification, error)

	// SaveAll overwrites the queue wholesale.
	SaveAll(ctx context.Context, queue entity.NotificationQueue, notifs []entity.Notification) error

	// Push prepends a new unread entry and returns it. orderID may be empty.
	Push(ctx context.Context, queue entity.NotificationQueue, message, orderID string) (*entity.Notification, error)

	// UnreadCount recounts entries with read=false on every call.
	UnreadCount(ctx context.Context, queue entity.NotificationQueue) (int, error)

	// MarkAllRead flips every entry to read. Idempotent.
	MarkAllRead(ctx context.Context, queue entity.NotificationQueue) error
}
