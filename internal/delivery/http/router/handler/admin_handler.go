package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"kirana/internal/delivery/http/response"
	"kirana/internal/usecase"
)

// AdminHandler holds dependencies for the back-office surface.
type AdminHandler struct {
	uc usecase.AdminUsecase
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// ListStores returns the registered stores table.
func (h *AdminHandler) ListStores(c echo.Context) error {
	stores, err := h.uc.ListStores(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stores, "")
}

// ToggleShopStatus flips the shop between active and suspended.
func (h *AdminHandler) ToggleShopStatus(c echo.Context) error {
	shop, err := h.uc.ToggleShopStatus(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, shop, "Shop status updated")
}

// GetFlags reads the block/suspend toggles.
func (h *AdminHandler) GetFlags(c echo.Context) error {
	flags, err := h.uc.GetFlags(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, flags, "")
}

// ToggleCustomerBlocked flips the customer block flag.
func (h *AdminHandler) ToggleCustomerBlocked(c echo.Context) error {
	flags, err := h.uc.ToggleCustomerBlocked(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, flags, "Customer flag updated")
}

// ToggleOwnerSuspended flips the owner suspend flag.
func (h *AdminHandler) ToggleOwnerSuspended(c echo.Context) error {
	flags, err := h.uc.ToggleOwnerSuspended(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, flags, "Owner flag updated")
}

// Overview computes the report from the live collections.
func (h *AdminHandler) Overview(c echo.Context) error {
	report, err := h.uc.Overview(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, report, "")
}

// ListOrders exposes every order to the back office.
func (h *AdminHandler) ListOrders(c echo.Context) error {
	orders, err := h.uc.ListOrders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}
