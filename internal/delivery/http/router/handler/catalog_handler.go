package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"kirana/internal/delivery/http/middleware"
	"kirana/internal/delivery/http/response"
	"kirana/internal/usecase"
)

// CatalogHandler holds dependencies for product management and browsing.
type CatalogHandler struct {
	uc usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// setAvailabilityRequest toggles the customer-visibility gate on a product.
type setAvailabilityRequest struct {
	Available bool `json:"available"`
}

// AddProduct appends a product to the signed-in owner's catalog.
func (h *CatalogHandler) AddProduct(c echo.Context) error {
	var input *usecase.AddProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.AddProduct(c.Request().Context(), middleware.SubjectID(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product added successfully")
}

// UpdateProduct merges the supplied fields onto an existing product.
func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	var input *usecase.UpdateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.UpdateProduct(c.Request().Context(), c.Param("id"), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product updated successfully")
}

// DeleteProduct removes a product from the catalog.
func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	if err := h.uc.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}

// SetAvailability toggles whether customers see the product.
func (h *CatalogHandler) SetAvailability(c echo.Context) error {
	var req *setAvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid availability input")
	}

	if err := h.uc.SetAvailability(c.Request().Context(), c.Param("id"), req.Available); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Availability updated successfully")
}

// ListAll returns the whole catalog for the owner surface.
func (h *CatalogHandler) ListAll(c echo.Context) error {
	products, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// ListAvailable returns the in-stock subset customers may browse, optionally
// narrowed by the category query parameter.
func (h *CatalogHandler) ListAvailable(c echo.Context) error {
	products, err := h.uc.ListAvailable(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}
