// Package localstore contains the concrete implementation of the persistence
// layer over the embedded key-value blob store. Every repository follows the
// same read-all, mutate-in-memory, write-all pattern the original store used;
// nothing here is transactional across collections.
package localstore

import (
	"context"

	"kirana/internal/domain/entity"
	"kirana/internal/domain/repository"
	"kirana/internal/infra/kvstore"
)

// ownerRepository implements repository.OwnerRepository and
// repository.ShopRepository over the blob store.
type ownerRepository struct {
	store kvstore.Store
}

// NewOwnerRepository is the constructor for ownerRepository.
func NewOwnerRepository(store kvstore.Store) repository.OwnerRepository {
	return &ownerRepository{store: store}
}

// GetProfile retrieves the owner profile, or ErrOwnerNotFound.
func (repo *ownerRepository) GetProfile(ctx context.Context) (*entity.OwnerProfile, error) {
	var profile *entity.OwnerProfile
	repo.store.Read(kvstore.KeyOwnerProfile, &profile)
	if profile == nil {
		return nil, repository.ErrOwnerNotFound
	}

	return profile, nil
}

// SaveProfile overwrites the owner profile wholesale.
func (repo *ownerRepository) SaveProfile(ctx context.Context, profile *entity.OwnerProfile) error {
	return repo.store.Write(kvstore.KeyOwnerProfile, profile)
}

// shopRepository implements repository.ShopRepository over the blob store.
type shopRepository struct {
	store kvstore.Store
}

// NewShopRepository is the constructor for shopRepository.
func NewShopRepository(store kvstore.Store) repository.ShopRepository {
	return &shopRepository{store: store}
}

// Get retrieves the shop, or ErrShopNotFound before setup.
func (repo *shopRepository) Get(ctx context.Context) (*entity.Shop, error) {
	var shop *entity.Shop
	repo.store.Read(kvstore.KeyShop, &shop)
	if shop == nil {
		return nil, repository.ErrShopNotFound
	}

	return shop, nil
}

// Save overwrites the shop wholesale.
func (repo *shopRepository) Save(ctx context.Context, shop *entity.Shop) error {
	return repo.store.Write(kvstore.KeyShop, shop)
}
