package repository

import (
	"context"

	"kirana/internal/domain/entity"
)

// OrderRepository persists orders most-recent-first.
type OrderRepository interface {
	// GetAll retrieves every order, newest first.
	GetAll(ctx context.Context) ([]entity.Order, error)

	// SaveAll overwrites the whole order collection.
	SaveAll(ctx context.Context, orders []entity.Order) error

	// Add prepends a new order so the collection stays newest first.
	Add(ctx context.Context, order entity.Order) error

	// FindByID retrieves one order, or ErrOrderNotFound.
	FindByID(ctx context.Context, id string) (*entity.Order, error)

	// UpdateStatus replaces the status of the matching order and writes the
	// collection back. Returns ErrOrderNotFound on a miss; no transition
	// ordering is enforced.
	UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) error
}
