package impl

import (
	"context"
	"time"

	"kirana/config"
	"kirana/internal/domain/entity"
	domainerrors "kirana/internal/domain/errors"
	"kirana/internal/domain/repository"
	"kirana/internal/errors"
	"kirana/internal/usecase"
)

type profileService struct {
	cfg           *config.Config
	customerRepo  repository.CustomerRepository
	addressRepo   repository.AddressRepository
	ratingRepo    repository.RatingRepository
	savedListRepo repository.SavedListRepository
	orderRepo     repository.OrderRepository
	productRepo   repository.ProductRepository
	cartRepo      repository.CartRepository
}

// NewProfileService creates a new profile service instance.
func NewProfileService(
	cfg *config.Config,
	customerRepo repository.CustomerRepository,
	addressRepo repository.AddressRepository,
	ratingRepo repository.RatingRepository,
	savedListRepo repository.SavedListRepository,
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	cartRepo repository.CartRepository,
) usecase.ProfileUsecase {
	return &profileService{
		cfg:           cfg,
		customerRepo:  customerRepo,
		addressRepo:   addressRepo,
		ratingRepo:    ratingRepo,
		savedListRepo: savedListRepo,
		orderRepo:     orderRepo,
		productRepo:   productRepo,
		cartRepo:      cartRepo,
	}
}

// GetProfile returns the customer profile.
func (s *profileService) GetProfile(ctx context.Context) (*entity.CustomerProfile, error) {
	profile, err := s.customerRepo.GetProfile(ctx)
	if err != nil {
		return nil, domainerrors.ErrCustomerNotRegistered
	}

	return profile, nil
}

// SaveProfile overwrites the customer profile, creating it if absent.
func (s *profileService) SaveProfile(ctx context.Context, input *usecase.SaveCustomerProfileInput) (*entity.CustomerProfile, error) {
	profile, err := s.customerRepo.GetProfile(ctx)
	if err != nil {
		profile = &entity.CustomerProfile{ID: entity.NewID()}
	}
	profile.Name = input.Name
	profile.Mobile = input.Mobile
	profile.Email = input.Email

	if err := s.customerRepo.SaveProfile(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "save customer profile")
	}

	return profile, nil
}

// ListAddresses returns every saved address.
func (s *profileService) ListAddresses(ctx context.Context) ([]entity.CustomerAddress, error) {
	return s.addressRepo.GetAll(ctx)
}

// AddAddress stores a new delivery address for the customer.
func (s *profileService) AddAddress(ctx context.Context, input *usecase.AddAddressInput) (*entity.CustomerAddress, error) {
	customerID := ""
	if profile, err := s.customerRepo.GetProfile(ctx); err == nil {
		customerID = profile.ID
	}

	address := entity.CustomerAddress{
		ID:          entity.NewID(),
		CustomerID:  customerID,
		HouseNumber: input.HouseNumber,
		Street:      input.Street,
		Landmark:    input.Landmark,
		PinCode:     input.PinCode,
		GPSLocation: input.GPSLocation,
		Label:       entity.AddressLabel(input.Label),
	}

	if err := s.addressRepo.Add(ctx, address); err != nil {
		return nil, errors.Wrap(err, "save address")
	}

	return &address, nil
}

// DeleteAddress drops an address. Unknown ids are a silent no-op.
func (s *profileService) DeleteAddress(ctx context.Context, id string) error {
	return s.addressRepo.Delete(ctx, id)
}

// RateOrder stores feedback for an order. The order must exist and carry at
// most one rating.
func (s *profileService) RateOrder(ctx context.Context, orderID string, input *usecase.RateOrderInput) (*entity.Rating, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, domainerrors.ErrOrderNotFound
	}
	if _, err := s.ratingRepo.FindByOrder(ctx, orderID); err == nil {
		return nil, domainerrors.ErrRatingExists
	}

	rating := entity.Rating{
		ID:             entity.NewID(),
		OrderID:        orderID,
		CustomerID:     order.CustomerID,
		StoreRating:    input.StoreRating,
		DeliveryRating: input.DeliveryRating,
		Feedback:       input.Feedback,
		CreatedAt:      time.Now(),
	}

	if err := s.ratingRepo.Add(ctx, rating); err != nil {
		return nil, errors.Wrap(err, "save rating")
	}

	return &rating, nil
}

// RatingForOrder returns the rating for an order, if any.
func (s *profileService) RatingForOrder(ctx context.Context, orderID string) (*entity.Rating, error) {
	rating, err := s.ratingRepo.FindByOrder(ctx, orderID)
	if err != nil {
		return nil, domainerrors.ErrNotFound
	}

	return rating, nil
}

// ListSavedLists returns every saved list.
func (s *profileService) ListSavedLists(ctx context.Context) ([]entity.SavedList, error) {
	return s.savedListRepo.GetAll(ctx)
}

// CreateSavedList stores a named set of product ids.
func (s *profileService) CreateSavedList(ctx context.Context, input *usecase.CreateSavedListInput) (*entity.SavedList, error) {
	customerID := ""
	if profile, err := s.customerRepo.GetProfile(ctx); err == nil {
		customerID = profile.ID
	}

	list := entity.SavedList{
		ID:         entity.NewID(),
		CustomerID: customerID,
		Name:       input.Name,
		ProductIDs: input.ProductIDs,
		CreatedAt:  time.Now(),
	}

	if err := s.savedListRepo.Add(ctx, list); err != nil {
		return nil, errors.Wrap(err, "save list")
	}

	return &list, nil
}

// DeleteSavedList drops a list. Unknown ids are a silent no-op.
func (s *profileService) DeleteSavedList(ctx context.Context, id string) error {
	return s.savedListRepo.Delete(ctx, id)
}

// ApplySavedList re-carts a saved list, one of each product. Product ids
// that no longer exist in the catalog are silently skipped.
func (s *profileService) ApplySavedList(ctx context.Context, id string) (*usecase.CartView, error) {
	lists, err := s.savedListRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	var target *entity.SavedList
	for i := range lists {
		if lists[i].ID == id {
			target = &lists[i]

			break
		}
	}
	if target == nil {
		return nil, domainerrors.ErrNotFound
	}

	items, err := s.cartRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	for _, productID := range target.ProductIDs {
		product, err := s.productRepo.FindByID(ctx, productID)
		if err != nil {
			continue
		}

		merged := false
		for i := range items {
			if items[i].Product.ID == productID {
				items[i].Quantity++
				merged = true

				break
			}
		}
		if !merged {
			items = append(items, entity.CartItem{Product: *product, Quantity: 1})
		}
	}

	if err := s.cartRepo.Save(ctx, items); err != nil {
		return nil, errors.Wrap(err, "save cart")
	}

	return cartView(items, s.cfg.Order.DeliveryCharge), nil
}
