package repository

import (
	"context"

	"kirana/internal/domain/entity"
)

// CustomerRepository persists the single customer profile.
type CustomerRepository interface {
	// GetProfile retrieves the customer profile, or ErrCustomerNotFound.
	GetProfile(ctx context.Context) (*entity.CustomerProfile, error)

	// SaveProfile overwrites the customer profile wholesale.
	SaveProfile(ctx context.Context, profile *entity.CustomerProfile) error
}

// AddressRepository persists the customer's saved delivery addresses.
type AddressRepository interface {
	// GetAll retrieves every saved address in insertion order.
	GetAll(ctx context.Context) ([]entity.CustomerAddress, error)

	// SaveAll overwrites the address collection.
	SaveAll(ctx context.Context, addresses []entity.CustomerAddress) error

	// Add appends a new address.
	Add(ctx context.Context, address entity.CustomerAddress) error

	// Delete filters the address out. A miss is a silent no-op.
	Delete(ctx context.Context, id string) error
}

// RatingRepository persists per-order ratings.
type RatingRepository interface {
	// GetAll retrieves every rating in insertion order.
	GetAll(ctx context.Context) ([]entity.Rating, error)

	// Add appends a rating.
	Add(ctx context.Context, rating entity.Rating) error

	// FindByOrder retrieves the rating for an order, or ErrRatingNotFound.
	FindByOrder(ctx context.Context, orderID string) (*entity.Rating, error)
}

// SavedListRepository persists the customer's named quick-order lists.
type SavedListRepository interface {
	// GetAll retrieves every saved list in insertion order.
	GetAll(ctx context.Context) ([]entity.SavedList, error)

	// Add appends a saved list.
	Add(ctx context.Context, list entity.SavedList) error

	// Delete filters the list out. A miss is a silent no-op.
	Delete(ctx context.Context, id string) error
}

// FlagRepository persists the ad hoc boolean toggles the admin surface
// maintains (customer blocked, owner suspended). The flags are stored and
// displayed but never gate the ordering flow.
type FlagRepository interface {
	// Get reads a flag; an absent flag reads as false.
	Get(ctx context.Context, key string) (bool, error)

	// Set overwrites a flag.
	Set(ctx context.Context, key string, value bool) error
}
