package localstore

import (
	"context"
	"time"

	"kirana/internal/domain/entity"
	"kirana/internal/domain/repository"
	"kirana/internal/infra/kvstore"
)

// notificationRepository implements repository.NotificationRepository over
// the blob store. The two queues live under separate keys and never mix.
type notificationRepository struct {
	store kvstore.Store
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(store kvstore.Store) repository.NotificationRepository {
	return &notificationRepository{store: store}
}

func queueKey(queue entity.NotificationQueue) string {
	if queue == entity.QueueOwner {
		return kvstore.KeyOwnerNotifs
	}

	return kvstore.KeyCustomerNotifs
}

// GetAll retrieves the queue, newest first.
func (repo *notificationRepository) GetAll(ctx context.Context, queue entity.NotificationQueue) ([]entity.Notification, error) {
	notifs := []entity.Notification{}
	repo.store.Read(queueKey(queue), &notifs)

	return notifs, nil
}

// SaveAll overwrites the queue wholesale.
func (repo *notificationRepository) SaveAll(ctx context.Context, queue entity.NotificationQueue, notifs []entity.Notification) error {
	return repo.store.Write(queueKey(queue), notifs)
}

// Push prepends a new unread entry regardless of the current viewer state.
func (repo *notificationRepository) Push(ctx context.Context, queue entity.NotificationQueue, message, orderID string) (*entity.Notification, error) {
	notif := entity.Notification{
		ID:        entity.NewID(),
		Message:   message,
		Read:      false,
		CreatedAt: time.Now(),
		OrderID:   orderID,
	}

	notifs, _ := repo.GetAll(ctx, queue)
	notifs = append([]entity.Notification{notif}, notifs...)
	if err := repo.SaveAll(ctx, queue, notifs); err != nil {
		return nil, err
	}

	return &notif, nil
}

// UnreadCount recounts entries with read=false on every call; the count is
// never cached.
func (repo *notificationRepository) UnreadCount(ctx context.Context, queue entity.NotificationQueue) (int, error) {
	notifs, _ := repo.GetAll(ctx, queue)
	count := 0
	for i := range notifs {
		if !notifs[i].Read {
			count++
		}
	}

	return count, nil
}

// MarkAllRead flips every entry to read in one bulk write. Idempotent.
func (repo *notificationRepository) MarkAllRead(ctx context.Context, queue entity.NotificationQueue) error {
	notifs, _ := repo.GetAll(ctx, queue)
	for i := range notifs {
		notifs[i].Read = true
	}

	return repo.SaveAll(ctx, queue, notifs)
}
