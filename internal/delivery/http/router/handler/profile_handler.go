package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"kirana/internal/delivery/http/response"
	"kirana/internal/usecase"
)

// ProfileHandler groups the customer's own data: profile, addresses,
// ratings, and saved lists.
type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

// GetProfile returns the customer profile.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	profile, err := h.uc.GetProfile(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "")
}

// SaveProfile overwrites the customer profile.
func (h *ProfileHandler) SaveProfile(c echo.Context) error {
	var input *usecase.SaveCustomerProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	profile, err := h.uc.SaveProfile(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile saved successfully")
}

// ListAddresses returns every saved delivery address.
func (h *ProfileHandler) ListAddresses(c echo.Context) error {
	addresses, err := h.uc.ListAddresses(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, addresses, "")
}

// AddAddress stores a new delivery address.
func (h *ProfileHandler) AddAddress(c echo.Context) error {
	var input *usecase.AddAddressInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	address, err := h.uc.AddAddress(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, address, "Address added successfully")
}

// DeleteAddress drops a saved address.
func (h *ProfileHandler) DeleteAddress(c echo.Context) error {
	if err := h.uc.DeleteAddress(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Address deleted successfully")
}

// RateOrder stores feedback for a delivered order. At most one rating per order.
func (h *ProfileHandler) RateOrder(c echo.Context) error {
	var input *usecase.RateOrderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rating input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	rating, err := h.uc.RateOrder(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, rating, "Rating saved successfully")
}

// RatingForOrder returns the rating for an order, if any.
func (h *ProfileHandler) RatingForOrder(c echo.Context) error {
	rating, err := h.uc.RatingForOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rating, "")
}

// ListSavedLists returns every saved quick-order list.
func (h *ProfileHandler) ListSavedLists(c echo.Context) error {
	lists, err := h.uc.ListSavedLists(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, lists, "")
}

// CreateSavedList stores a named set of product ids for quick re-ordering.
func (h *ProfileHandler) CreateSavedList(c echo.Context) error {
	var input *usecase.CreateSavedListInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid saved list input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	list, err := h.uc.CreateSavedList(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, list, "Saved list created successfully")
}

// DeleteSavedList drops a saved list.
func (h *ProfileHandler) DeleteSavedList(c echo.Context) error {
	if err := h.uc.DeleteSavedList(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Saved list deleted successfully")
}

// ApplySavedList re-carts a saved list, skipping products that no longer exist.
func (h *ProfileHandler) ApplySavedList(c echo.Context) error {
	view, err := h.uc.ApplySavedList(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Saved list applied to cart")
}
