package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"kirana/internal/delivery/http/response"
	"kirana/internal/domain/entity"
	"kirana/internal/usecase"
)

// NotificationHandler exposes the two role-owned notification queues. Each
// role surface is routed to its own queue; the handler never trusts a queue
// name from the request.
type NotificationHandler struct {
	uc usecase.NotificationUsecase
}

// NewNotificationHandler is the constructor for NotificationHandler, injected by Fx.
func NewNotificationHandler(uc usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// List returns a handler serving one queue, newest first, with the unread count.
func (h *NotificationHandler) List(queue entity.NotificationQueue) echo.HandlerFunc {
	return func(c echo.Context) error {
		view, err := h.uc.List(c.Request().Context(), queue)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, view, "")
	}
}

// UnreadCount returns a handler serving one queue's unread badge count.
func (h *NotificationHandler) UnreadCount(queue entity.NotificationQueue) echo.HandlerFunc {
	return func(c echo.Context) error {
		count, err := h.uc.UnreadCount(c.Request().Context(), queue)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, map[string]int{"unreadCount": count}, "")
	}
}

// MarkAllRead returns a handler acknowledging one queue in bulk.
func (h *NotificationHandler) MarkAllRead(queue entity.NotificationQueue) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := h.uc.MarkAllRead(c.Request().Context(), queue); err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, nil, "Notifications marked as read")
	}
}
