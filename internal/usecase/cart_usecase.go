package usecase

import (
	"context"

	"kirana/internal/domain/entity"
)

// CartView is the cart with its price breakdown. DeliveryCharge applies only
// to a non-empty cart.
type CartView struct {
	Items          []entity.CartItem `json:"items"`
	Subtotal       int               `json:"subtotal"`
	DeliveryCharge int               `json:"deliveryCharge"`
	Total          int               `json:"total"`
}

// CartUsecase defines mutations on the single global cart. Every line keeps
// a quantity of at least one; lowering a quantity below one removes the line.
type CartUsecase interface {
	// Get returns the cart with totals.
	Get(ctx context.Context) (*CartView, error)

	// AddItem snapshots the product into the cart, or bumps the quantity of
	// an existing line.
	AddItem(ctx context.Context, productID string, quantity int) (*CartView, error)

	// SetQuantity replaces a line's quantity; zero or less removes the line.
	SetQuantity(ctx context.Context, productID string, quantity int) (*CartView, error)

	// RemoveItem drops a line. Unknown ids are a silent no-op.
	RemoveItem(ctx context.Context, productID string) (*CartView, error)

	// Clear empties the cart.
	Clear(ctx context.Context) error
}
