package usecase

import (
	"context"

	"kirana/internal/domain/entity"
)

// UpdateOrderStatusInput names the target stage. Any of the five stages may
// be set from any other; only unknown strings are rejected.
type UpdateOrderStatusInput struct {
	Status string `json:"status" validate:"required"`
}

// OrderUsecase defines the order lifecycle: placement, listing, the
// unguarded status transition, and the polling-based tracking watch.
type OrderUsecase interface {
	// PlaceOrder snapshots the current cart into a new order, notifies the
	// owner queue, and clears the cart. The three writes are independent;
	// there is no rollback if one fails partway.
	PlaceOrder(ctx context.Context) (*entity.Order, error)

	// ListOrders returns every order, newest first.
	ListOrders(ctx context.Context) ([]entity.Order, error)

	// GetOrder returns one order by id.
	GetOrder(ctx context.Context, id string) (*entity.Order, error)

	// UpdateStatus sets the order's status and pushes exactly one customer
	// notification referencing the order, regardless of the target stage.
	UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) (*entity.Order, error)

	// WatchOrder re-reads the order on a fixed interval and emits it on
	// every observed status change, starting with the current state. The
	// channel closes when ctx is cancelled.
	WatchOrder(ctx context.Context, id string) (<-chan entity.Order, error)
}
