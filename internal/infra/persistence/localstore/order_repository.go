package localstore

import (
	"context"

	"kirana/internal/domain/entity"
	"kirana/internal/domain/repository"
	"kirana/internal/infra/kvstore"
)

// orderRepository implements repository.OrderRepository over the blob store.
type orderRepository struct {
	store kvstore.Store
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(store kvstore.Store) repository.OrderRepository {
	return &orderRepository{store: store}
}

// GetAll retrieves every order, newest first.
func (repo *orderRepository) GetAll(ctx context.Context) ([]entity.Order, error) {
	orders := []entity.Order{}
	repo.store.Read(kvstore.KeyOrders, &orders)

	return orders, nil
}

// SaveAll overwrites the whole order collection.
func (repo *orderRepository) SaveAll(ctx context.Context, orders []entity.Order) error {
	return repo.store.Write(kvstore.KeyOrders, orders)
}

// Add prepends the new order so the collection stays newest first.
func (repo *orderRepository) Add(ctx context.Context, order entity.Order) error {
	orders, _ := repo.GetAll(ctx)
	orders = append([]entity.Order{order}, orders...)

	return repo.SaveAll(ctx, orders)
}

// FindByID retrieves one order, or ErrOrderNotFound.
func (repo *orderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	orders, _ := repo.GetAll(ctx)
	for i := range orders {
		if orders[i].ID == id {
			order := orders[i]

			return &order, nil
		}
	}

	return nil, repository.ErrOrderNotFound
}

// UpdateStatus replaces the status of the matching order and writes the
// collection back. Any of the five stages may be set from any other; the
// forward sequence is a display convention, not a stored invariant.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) error {
	orders, _ := repo.GetAll(ctx)
	found := false
	for i := range orders {
		if orders[i].ID == id {
			orders[i].Status = status
			found = true
		}
	}
	if !found {
		return repository.ErrOrderNotFound
	}

	return repo.SaveAll(ctx, orders)
}
