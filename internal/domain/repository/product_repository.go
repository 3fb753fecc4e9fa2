package repository

import (
	"context"

	"kirana/internal/domain/entity"
)

// ProductUpdate carries the fields of a partial product update. Nil fields
// are left untouched on the stored record.
type ProductUpdate struct {
	Name      *string
	Price     *int
	Available *bool
	Category  *string
}

// ProductRepository persists the product catalog as one collection.
type ProductRepository interface {
	// GetAll retrieves every product in insertion order.
	GetAll(ctx context.Context) ([]entity.Product, error)

	// SaveAll overwrites the whole catalog.
	SaveAll(ctx context.Context, products []entity.Product) error

	// Add appends a product to the catalog.
	Add(ctx context.Context, product entity.Product) error

	// Update merges the supplied fields onto the matching record.
	// A miss is a silent no-op.
	Update(ctx context.Context, id string, updates ProductUpdate) error

	// Delete filters the product out of the catalog. A miss is a silent no-op.
	Delete(ctx context.Context, id string) error

	// FindByID retrieves one product, or ErrProductNotFound.
	FindByID(ctx context.Context, id string) (*entity.Product, error)
}

// CartRepository persists the single global cart.
type CartRepository interface {
	// Get retrieves the cart lines; an absent cart reads as empty.
	Get(ctx context.Context) ([]entity.CartItem, error)

	// Save overwrites the cart wholesale.
	Save(ctx context.Context, items []entity.CartItem) error

	// Clear removes the cart blob entirely.
	Clear(ctx context.Context) error
}
