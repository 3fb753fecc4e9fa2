package usecase

import (
	"context"

	"kirana/internal/domain/entity"
)

// SetupShopInput defines the storefront details the owner submits once.
type SetupShopInput struct {
	ShopName    string `json:"shopName" validate:"required"`
	ShopType    string `json:"shopType" validate:"required"`
	ShopPhoto   string `json:"shopPhoto"`
	HouseNumber string `json:"houseNumber" validate:"required"`
	Area        string `json:"area" validate:"required"`
	Landmark    string `json:"landmark"`
	PinCode     string `json:"pinCode" validate:"required"`
	GPSLocation string `json:"gpsLocation"`
	OpeningTime string `json:"openingTime" validate:"required"`
	ClosingTime string `json:"closingTime" validate:"required"`
	WeeklyOff   string `json:"weeklyOff"`
}

// ShopView is the customer-facing shop projection. DistanceMeters is set
// only when both the shop and the caller supplied a parseable GPS location.
type ShopView struct {
	Shop           *entity.Shop `json:"shop"`
	OpenNow        bool         `json:"openNow"`
	DistanceMeters *float64     `json:"distanceMeters,omitempty"`
}

// ShopUsecase defines shop setup and the customer-facing shop view.
type ShopUsecase interface {
	// SetupShop creates or replaces the shop record for the owner.
	SetupShop(ctx context.Context, ownerID string, input *SetupShopInput) (*entity.Shop, error)

	// GetShop returns the raw shop record for the owner surface.
	GetShop(ctx context.Context) (*entity.Shop, error)

	// ShopQR renders the shareable shop QR code as PNG.
	ShopQR(ctx context.Context) ([]byte, error)

	// CustomerView returns the shop with opening-hours and distance
	// decoration. customerGPS may be empty.
	CustomerView(ctx context.Context, customerGPS string) (*ShopView, error)
}
