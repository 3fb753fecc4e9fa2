package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kirana/internal/domain/entity"
	domainerrors "kirana/internal/domain/errors"
	"kirana/internal/usecase"
)

func newAdminService(f *fixture) usecase.AdminUsecase {
	return NewAdminService(f.shopRepo, f.ownerRepo, f.customerRepo, f.productRepo, f.orderRepo, f.ratingRepo, f.notifRepo, f.flagRepo)
}

func TestAdminService_ListStoresEmptyBeforeSetup(t *testing.T) {
	f := newFixture(t)
	svc := newAdminService(f)

	stores, err := svc.ListStores(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stores)
}

func TestAdminService_ListStoresSingleRow(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedCatalog(t)
	require.NoError(t, f.ownerRepo.SaveProfile(ctx, &entity.OwnerProfile{ID: "owner1", FullName: "Rajesh Kumar", Mobile: "9876543210"}))
	require.NoError(t, f.shopRepo.Save(ctx, &entity.Shop{OwnerID: "owner1", ShopName: "Rajesh General Store"}))
	require.NoError(t, f.orderRepo.Add(ctx, entity.Order{ID: "o1", TotalPrice: 305}))

	svc := newAdminService(f)
	stores, err := svc.ListStores(ctx)
	require.NoError(t, err)
	require.Len(t, stores, 1)
	assert.Equal(t, "Rajesh Kumar", stores[0].OwnerName)
	assert.Equal(t, 3, stores[0].ProductCount)
	assert.Equal(t, 1, stores[0].OrderCount)
}

func TestAdminService_ToggleShopStatus(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := newAdminService(f)

	_, err := svc.ToggleShopStatus(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrShopNotSetUp)

	require.NoError(t, f.shopRepo.Save(ctx, &entity.Shop{OwnerID: "owner1", ShopName: "Rajesh General Store"}))

	shop, err := svc.ToggleShopStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.ShopStatusSuspended, shop.Status)

	shop, err = svc.ToggleShopStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.ShopStatusActive, shop.Status)
}

func TestAdminService_FlagsToggleButNeverGateOrdering(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	products := f.seedCatalog(t)
	svc := newAdminService(f)

	flags, err := svc.GetFlags(ctx)
	require.NoError(t, err)
	assert.False(t, flags.CustomerBlocked)
	assert.False(t, flags.OwnerSuspended)

	flags, err = svc.ToggleCustomerBlocked(ctx)
	require.NoError(t, err)
	assert.True(t, flags.CustomerBlocked)

	flags, err = svc.ToggleOwnerSuspended(ctx)
	require.NoError(t, err)
	assert.True(t, flags.OwnerSuspended)

	// The ordering flow never consults the flags.
	require.NoError(t, f.cartRepo.Save(ctx, []entity.CartItem{{Product: products[0], Quantity: 1}}))
	orderSvc := newOrderService(f)
	_, err = orderSvc.PlaceOrder(ctx)
	assert.NoError(t, err)
}

func TestAdminService_Overview(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedCatalog(t) // 3 products, 2 available
	require.NoError(t, f.orderRepo.Add(ctx, entity.Order{ID: "o1", TotalPrice: 305, Status: entity.OrderStatusDelivered}))
	require.NoError(t, f.orderRepo.Add(ctx, entity.Order{ID: "o2", TotalPrice: 115, Status: entity.OrderStatusNew}))
	require.NoError(t, f.ratingRepo.Add(ctx, entity.Rating{ID: "r1", OrderID: "o1", StoreRating: 4, DeliveryRating: 5}))
	require.NoError(t, f.ratingRepo.Add(ctx, entity.Rating{ID: "r2", OrderID: "o2", StoreRating: 2, DeliveryRating: 3}))
	_, err := f.notifRepo.Push(ctx, entity.QueueOwner, "New order", "o2")
	require.NoError(t, err)

	svc := newAdminService(f)
	report, err := svc.Overview(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, report.ProductCount)
	assert.Equal(t, 2, report.AvailableCount)
	assert.Equal(t, 2, report.OrderCount)
	assert.Equal(t, 1, report.DeliveredCount)
	assert.Equal(t, 420, report.Revenue)
	assert.Equal(t, 2, report.RatingCount)
	assert.InDelta(t, 3.0, report.AvgStoreRating, 0.001)
	assert.Equal(t, 1, report.UnreadOwner)
	assert.Equal(t, 0, report.UnreadCustomer)
	assert.False(t, report.CustomerPresent)
}
