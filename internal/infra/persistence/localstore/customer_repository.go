package localstore

import (
	"context"

	"kirana/internal/domain/entity"
	"kirana/internal/domain/repository"
	"kirana/internal/infra/kvstore"
)

// customerRepository implements repository.CustomerRepository over the blob store.
type customerRepository struct {
	store kvstore.Store
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(store kvstore.Store) repository.CustomerRepository {
	return &customerRepository{store: store}
}

// GetProfile retrieves the customer profile, or ErrCustomerNotFound.
func (repo *customerRepository) GetProfile(ctx context.Context) (*entity.CustomerProfile, error) {
	var profile *entity.CustomerProfile
	repo.store.Read(kvstore.KeyCustomerProfile, &profile)
	if profile == nil {
		return nil, repository.ErrCustomerNotFound
	}

	return profile, nil
}

// SaveProfile overwrites the customer profile wholesale.
func (repo *customerRepository) SaveProfile(ctx context.Context, profile *entity.CustomerProfile) error {
	return repo.store.Write(kvstore.KeyCustomerProfile, profile)
}

// addressRepository implements repository.AddressRepository over the blob store.
type addressRepository struct {
	store kvstore.Store
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(store kvstore.Store) repository.AddressRepository {
	return &addressRepository{store: store}
}

// GetAll retrieves every saved address in insertion order.
func (repo *addressRepository) GetAll(ctx context.Context) ([]entity.CustomerAddress, error) {
	addresses := []entity.CustomerAddress{}
	repo.store.Read(kvstore.KeyAddresses, &addresses)

	return addresses, nil
}

// SaveAll overwrites the address collection.
func (repo *addressRepository) SaveAll(ctx context.Context, addresses []entity.CustomerAddress) error {
	return repo.store.Write(kvstore.KeyAddresses, addresses)
}

// Add appends a new address.
func (repo *addressRepository) Add(ctx context.Context, address entity.CustomerAddress) error {
	addresses, _ := repo.GetAll(ctx)
	addresses = append(addresses, address)

	return repo.SaveAll(ctx, addresses)
}

// Delete filters the address out. A miss is a silent no-op.
func (repo *addressRepository) Delete(ctx context.Context, id string) error {
	addresses, _ := repo.GetAll(ctx)
	kept := addresses[:0]
	for _, address := range addresses {
		if address.ID != id {
			kept = append(kept, address)
		}
	}

	return repo.SaveAll(ctx, kept)
}

// ratingRepository implements repository.RatingRepository over the blob store.
type ratingRepository struct {
	store kvstore.Store
}

// NewRatingRepository is the constructor for ratingRepository.
func NewRatingRepository(store kvstore.Store) repository.RatingRepository {
	return &ratingRepository{store: store}
}

// GetAll retrieves every rating in insertion order.
func (repo *ratingRepository) GetAll(ctx context.Context) ([]entity.Rating, error) {
	ratings := []entity.Rating{}
	repo.store.Read(kvstore.KeyRatings, &ratings)

	return ratings, nil
}

// Add appends a rating.
func (repo *ratingRepository) Add(ctx context.Context, rating entity.Rating) error {
	ratings, _ := repo.GetAll(ctx)
	ratings = append(ratings, rating)

	return repo.store.Write(kvstore.KeyRatings, ratings)
}

// FindByOrder retrieves the rating for an order, or ErrRatingNotFound.
func (repo *ratingRepository) FindByOrder(ctx context.Context, orderID string) (*entity.Rating, error) {
	ratings, _ := repo.GetAll(ctx)
	for i := range ratings {
		if ratings[i].OrderID == orderID {
			rating := ratings[i]

			return &rating, nil
		}
	}

	return nil, repository.ErrRatingNotFound
}

// savedListRepository implements repository.SavedListRepository over the blob store.
type savedListRepository struct {
	store kvstore.Store
}

// NewSavedListRepository is the constructor for savedListRepository.
func NewSavedListRepository(store kvstore.Store) repository.SavedListRepository {
	return &savedListRepository{store: store}
}

// GetAll retrieves every saved list in insertion order.
func (repo *savedListRepository) GetAll(ctx context.Context) ([]entity.SavedList, error) {
	lists := []entity.SavedList{}
	repo.store.Read(kvstore.KeySavedLists, &lists)

	return lists, nil
}

// Add appends a saved list.
func (repo *savedListRepository) Add(ctx context.Context, list entity.SavedList) error {
	lists, _ := repo.GetAll(ctx)
	lists = append(lists, list)

	return repo.store.Write(kvstore.KeySavedLists, lists)
}

// Delete filters the list out. A miss is a silent no-op.
func (repo *savedListRepository) Delete(ctx context.Context, id string) error {
	lists, _ := repo.GetAll(ctx)
	kept := lists[:0]
	for _, list := range lists {
		if list.ID != id {
			kept = append(kept, list)
		}
	}

	return repo.store.Write(kvstore.KeySavedLists, kept)
}

// flagRepository implements repository.FlagRepository over the blob store.
type flagRepository struct {
	store kvstore.Store
}

// NewFlagRepository is the constructor for flagRepository.
func NewFlagRepository(store kvstore.Store) repository.FlagRepository {
	return &flagRepository{store: store}
}

// Get reads a flag; an absent flag reads as false.
func (repo *flagRepository) Get(ctx context.Context, key string) (bool, error) {
	value := false
	repo.store.Read(key, &value)

	return value, nil
}

// Set overwrites a flag.
func (repo *flagRepository) Set(ctx context.Context, key string, value bool) error {
	return repo.store.Write(key, value)
}
