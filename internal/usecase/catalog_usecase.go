package usecase

import (
	"context"

	"kirana/internal/domain/entity"
)

// AddProductInput defines a new catalog item.
type AddProductInput struct {
	Name      string `json:"name" validate:"required"`
	Price     int    `json:"price" validate:"required,gt=0"`
	Category  string `json:"category" validate:"required"`
	Available bool   `json:"available"`
}

// UpdateProductInput carries a partial product edit; nil fields are left
// untouched.
type UpdateProductInput struct {
	Name      *string `json:"name"`
	Price     *int    `json:"price" validate:"omitempty,gt=0"`
	Category  *string `json:"category"`
	Available *bool   `json:"available"`
}

// CatalogUsecase defines product management (owner) and product browsing
// (customer). The Available flag is the only gate the customer listing
// applies.
type CatalogUsecase interface {
	// AddProduct appends a product to the owner's catalog.
	AddProduct(ctx context.Context, ownerID string, input *AddProductInput) (*entity.Product, error)

	// UpdateProduct merges the supplied fields onto the product. Unknown ids
	// are a silent no-op, matching the accessor contract.
	UpdateProduct(ctx context.Context, id string, input *UpdateProductInput) error

	// DeleteProduct removes the product. Unknown ids are a silent no-op.
	DeleteProduct(ctx context.Context, id string) error

	// SetAvailability toggles the customer-visibility gate.
	SetAvailability(ctx context.Context, id string, available bool) error

	// ListAll returns the whole catalog for the owner surface.
	ListAll(ctx context.Context) ([]entity.Product, error)

	// ListAvailable returns exactly the subset with Available=true,
	// optionally narrowed to one category.
	ListAvailable(ctx context.Context, category string) ([]entity.Product, error)
}
