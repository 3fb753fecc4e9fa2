package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"kirana/internal/delivery/http/response"
	"kirana/internal/domain/entity"
	"kirana/internal/usecase"
)

// OrderHandler holds dependencies for the order lifecycle.
type OrderHandler struct {
	uc usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// PlaceOrder snapshots the cart into a new order and clears the cart.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	order, err := h.uc.PlaceOrder(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order placed successfully")
}

// ListOrders returns every order, newest first.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	orders, err := h.uc.ListOrders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// GetOrder returns one order by id.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	order, err := h.uc.GetOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "")
}

// UpdateStatus moves the order to the requested stage and notifies the customer.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var input *usecase.UpdateOrderStatusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.UpdateStatus(c.Request().Context(), c.Param("id"), entity.OrderStatus(input.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order status updated")
}

// Track streams order snapshots as server-sent events. The first event is
// the current state; later events fire on each observed status change. The
// stream ends when the client disconnects.
func (h *OrderHandler) Track(c echo.Context) error {
	updates, err := h.uc.WatchOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	resp := c.Response()
	resp.Header().Set(echo.HeaderContentType, "text/event-stream")
	resp.Header().Set("Cache-Control", "no-cache")
	resp.Header().Set("Connection", "keep-alive")
	resp.WriteHeader(http.StatusOK)

	for order := range updates {
		payload, err := json.Marshal(order)
		if err != nil {
			return errors.WithStack(err)
		}
		if _, err := fmt.Fprintf(resp, "data: %s\n\n", payload); err != nil {
			return errors.WithStack(err)
		}
		resp.Flush()
	}

	return nil
}
