package usecase

import (
	"context"

	"kirana/internal/domain/entity"
)

// SaveCustomerProfileInput updates the customer's own details.
type SaveCustomerProfileInput struct {
	Name   string `json:"name" validate:"required"`
	Mobile string `json:"mobile" validate:"required,min=10"`
	Email  string `json:"email" validate:"omitempty,email"`
}

// AddAddressInput defines a new saved delivery address.
type AddAddressInput struct {
	HouseNumber string `json:"houseNumber" validate:"required"`
	Street      string `json:"street" validate:"required"`
	Landmark    string `json:"landmark"`
	PinCode     string `json:"pinCode" validate:"required"`
	GPSLocation string `json:"gpsLocation"`
	Label       string `json:"label" validate:"required,oneof=Home Office Other"`
}

// RateOrderInput defines the customer's feedback for one order.
type RateOrderInput struct {
	StoreRating    int    `json:"storeRating" validate:"required,min=1,max=5"`
	DeliveryRating int    `json:"deliveryRating" validate:"required,min=1,max=5"`
	Feedback       string `json:"feedback"`
}

// CreateSavedListInput defines a named quick-order list.
type CreateSavedListInput struct {
	Name       string   `json:"name" validate:"required"`
	ProductIDs []string `json:"productIds" validate:"required,min=1"`
}

// ProfileUsecase groups the customer's own data: profile, addresses,
// ratings, and saved lists.
type ProfileUsecase interface {
	// GetProfile returns the customer profile.
	GetProfile(ctx context.Context) (*entity.CustomerProfile, error)

	// SaveProfile overwrites the customer profile.
	SaveProfile(ctx context.Context, input *SaveCustomerProfileInput) (*entity.CustomerProfile, error)

	// ListAddresses returns every saved address.
	ListAddresses(ctx context.Context) ([]entity.CustomerAddress, error)

	// AddAddress stores a new delivery address.
	AddAddress(ctx context.Context, input *AddAddressInput) (*entity.CustomerAddress, error)

	// DeleteAddress drops an address. Unknown ids are a silent no-op.
	DeleteAddress(ctx context.Context, id string) error

	// RateOrder stores feedback for an order. At most one rating per order.
	RateOrder(ctx context.Context, orderID string, input *RateOrderInput) (*entity.Rating, error)

	// RatingForOrder returns the rating for an order, if any.
	RatingForOrder(ctx context.Context, orderID string) (*entity.Rating, error)

	// ListSavedLists returns every saved list.
	ListSavedLists(ctx context.Context) ([]entity.SavedList, error)

	// CreateSavedList stores a named set of product ids.
	CreateSavedList(ctx context.Context, input *CreateSavedListInput) (*entity.SavedList, error)

	// DeleteSavedList drops a list. Unknown ids are a silent no-op.
	DeleteSavedList(ctx context.Context, id string) error

	// ApplySavedList re-carts a saved list. Product ids that no longer exist
	// in the catalog are silently skipped.
	ApplySavedList(ctx context.Context, id string) (*CartView, error)
}
