package impl

import (
	"context"

	"kirana/internal/domain/entity"
	"kirana/internal/domain/repository"
	"kirana/internal/usecase"
)

type notificationService struct {
	notifRepo repository.NotificationRepository
}

// NewNotificationService creates a new notification service instance.
func NewNotificationService(notifRepo repository.NotificationRepository) usecase.NotificationUsecase {
	return &notificationService{notifRepo: notifRepo}
}

// List returns the queue, newest first, with the recomputed unread count.
func (s *notificationService) List(ctx context.Context, queue entity.NotificationQueue) (*usecase.NotificationsView, error) {
	notifs, err := s.notifRepo.GetAll(ctx, queue)
	if err != nil {
		return nil, err
	}

	unread := 0
	for i := range notifs {
		if !notifs[i].Read {
			unread++
		}
	}

	return &usecase.NotificationsView{
		Notifications: notifs,
		UnreadCount:   unread,
	}, nil
}

// UnreadCount recounts unread entries on every call.
func (s *notificationService) UnreadCount(ctx context.Context, queue entity.NotificationQueue) (int, error) {
	return s.notifRepo.UnreadCount(ctx, queue)
}

// MarkAllRead acknowledges the whole queue in one bulk write. Calling it
// again is a no-op that leaves the count at zero.
func (s *notificationService) MarkAllRead(ctx context.Context, queue entity.NotificationQueue) error {
	return s.notifRepo.MarkAllRead(ctx, queue)
}
