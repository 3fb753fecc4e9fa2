package usecase

import (
	"context"

	"kirana/internal/domain/entity"
)

// StoreOverview is one row of the admin stores table.
type StoreOverview struct {
	Shop         *entity.Shop `json:"shop"`
	OwnerName    string       `json:"ownerName"`
	OwnerMobile  string       `json:"ownerMobile"`
	ProductCount int          `json:"productCount"`
	OrderCount   int          `json:"orderCount"`
}

// AccountFlags are the ad hoc block/suspend toggles the admin maintains.
// They are stored and displayed but never consulted by the ordering flow.
type AccountFlags struct {
	CustomerBlocked bool `json:"customerBlocked"`
	OwnerSuspended  bool `json:"ownerSuspended"`
}

// Report is the admin overview: raw counts plus revenue summed over every
// order total.
type Report struct {
	ProductCount    int     `json:"productCount"`
	AvailableCount  int     `json:"availableCount"`
	OrderCount      int     `json:"orderCount"`
	DeliveredCount  int     `json:"deliveredCount"`
	Revenue         int     `json:"revenue"`
	RatingCount     int     `json:"ratingCount"`
	AvgStoreRating  float64 `json:"avgStoreRating"`
	UnreadOwner     int     `json:"unreadOwner"`
	UnreadCustomer  int     `json:"unreadCustomer"`
	CustomerPresent bool    `json:"customerPresent"`
}

// AdminUsecase defines the back-office operations.
type AdminUsecase interface {
	// ListStores returns the stores table. The demo holds at most one store.
	ListStores(ctx context.Context) ([]StoreOverview, error)

	// ToggleShopStatus flips a shop between active and suspended.
	ToggleShopStatus(ctx context.Context) (*entity.Shop, error)

	// GetFlags reads the block/suspend toggles.
	GetFlags(ctx context.Context) (*AccountFlags, error)

	// ToggleCustomerBlocked flips the customer block flag.
	ToggleCustomerBlocked(ctx context.Context) (*AccountFlags, error)

	// ToggleOwnerSuspended flips the owner suspend flag.
	ToggleOwnerSuspended(ctx context.Context) (*AccountFlags, error)

	// Overview computes the report from the live collections.
	Overview(ctx context.Context) (*Report, error)

	// ListOrders exposes every order to the back office, newest first.
	ListOrders(ctx context.Context) ([]entity.Order, error)
}
