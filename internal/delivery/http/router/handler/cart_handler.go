package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"kirana/internal/delivery/http/response"
	"kirana/internal/usecase"
)

// CartHandler holds dependencies for the customer cart.
type CartHandler struct {
	uc usecase.CartUsecase
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

type addCartItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

type setCartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// Get returns the cart with its price breakdown.
func (h *CartHandler) Get(c echo.Context) error {
	view, err := h.uc.Get(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// AddItem snapshots a product into the cart, or bumps an existing line.
func (h *CartHandler) AddItem(c echo.Context) error {
	var req *addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}
	if err := c.Validate(req); err != nil {
		return errors.WithStack(err)
	}

	view, err := h.uc.AddItem(c.Request().Context(), req.ProductID, req.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Item added to cart")
}

// SetQuantity replaces a line's quantity; zero or less removes the line.
func (h *CartHandler) SetQuantity(c echo.Context) error {
	var req *setCartQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}

	view, err := h.uc.SetQuantity(c.Request().Context(), c.Param("productId"), req.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Cart updated")
}

// RemoveItem drops a line from the cart.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	view, err := h.uc.RemoveItem(c.Request().Context(), c.Param("productId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Item removed from cart")
}

// Clear empties the cart.
func (h *CartHandler) Clear(c echo.Context) error {
	if err := h.uc.Clear(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cart cleared")
}
