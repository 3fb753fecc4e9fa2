package repository

import (
	"context"

	"kirana/internal/domain/entity"
)

// OwnerRepository persists the single owner profile.
type OwnerRepository interface {
	// GetProfile retrieves the owner profile, or ErrOwnerNotFound.
	GetProfile(ctx context.Context) (*entity.OwnerProfile, error)

	// SaveProfile overwrites the owner profile wholesale.
	SaveProfile(ctx context.Context, profile *entity.OwnerProfile) error
}

// ShopRepository persists the single shop record.
type ShopRepository interface {
	// Get retrieves the shop, or ErrShopNotFound before setup.
	Get(ctx context.Context) (*entity.Shop, error)

	// Save overwrites the shop wholesale.
	Save(ctx context.Context, shop *entity.Shop) error
}
