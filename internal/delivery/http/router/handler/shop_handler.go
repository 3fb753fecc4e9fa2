package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"kirana/internal/delivery/http/middleware"
	"kirana/internal/delivery/http/response"
	"kirana/internal/usecase"
)

// ShopHandler holds dependencies for shop setup and the customer storefront view.
type ShopHandler struct {
	uc usecase.ShopUsecase
}

// NewShopHandler is the constructor for ShopHandler, injected by Fx.
func NewShopHandler(uc usecase.ShopUsecase) *ShopHandler {
	return &ShopHandler{uc: uc}
}

// SetupShop handles the one-time storefront setup for the signed-in owner.
func (h *ShopHandler) SetupShop(c echo.Context) error {
	var input *usecase.SetupShopInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shop setup input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	shop, err := h.uc.SetupShop(c.Request().Context(), middleware.SubjectID(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, shop, "Shop saved successfully")
}

// GetShop returns the raw shop record for the owner surface.
func (h *ShopHandler) GetShop(c echo.Context) error {
	shop, err := h.uc.GetShop(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, shop, "")
}

// ShopQR renders the shareable shop QR code as a PNG image.
func (h *ShopHandler) ShopQR(c echo.Context) error {
	png, err := h.uc.ShopQR(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// CustomerShopView returns the storefront decorated with opening-hours and,
// when the caller passes its GPS location, the distance to the shop.
func (h *ShopHandler) CustomerShopView(c echo.Context) error {
	view, err := h.uc.CustomerView(c.Request().Context(), c.QueryParam("gps"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}
