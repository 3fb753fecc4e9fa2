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

func newProfileService(f *fixture) usecase.ProfileUsecase {
	return NewProfileService(f.cfg, f.customerRepo, f.addressRepo, f.ratingRepo, f.savedListRepo, f.orderRepo, f.productRepo, f.cartRepo)
}

func TestProfileService_SaveAndGetProfile(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := newProfileService(f)

	_, err := svc.GetProfile(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrCustomerNotRegistered)

	saved, err := svc.SaveProfile(ctx, &usecase.SaveCustomerProfileInput{
		Name: "Priya", Mobile: "9000000000", Email: "priya@example.com",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)

	got, err := svc.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Priya", got.Name)
}

func TestProfileService_Addresses(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := newProfileService(f)

	address, err := svc.AddAddress(ctx, &usecase.AddAddressInput{
		HouseNumber: "12", Street: "Church Street", PinCode: "560001", Label: "Home",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.AddressLabelHome, address.Label)

	addresses, err := svc.ListAddresses(ctx)
	require.NoError(t, err)
	require.Len(t, addresses, 1)

	require.NoError(t, svc.DeleteAddress(ctx, address.ID))
	require.NoError(t, svc.DeleteAddress(ctx, "missing"))

	addresses, err = svc.ListAddresses(ctx)
	require.NoError(t, err)
	assert.Empty(t, addresses)
}

func TestProfileService_RateOrderOncePerOrder(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.orderRepo.Add(ctx, entity.Order{ID: "o1", Status: entity.OrderStatusDelivered}))
	svc := newProfileService(f)

	rating, err := svc.RateOrder(ctx, "o1", &usecase.RateOrderInput{
		StoreRating: 5, DeliveryRating: 4, Feedback: "Quick delivery",
	})
	require.NoError(t, err)
	assert.Equal(t, "o1", rating.OrderID)

	_, err = svc.RateOrder(ctx, "o1", &usecase.RateOrderInput{StoreRating: 1, DeliveryRating: 1})
	assert.ErrorIs(t, err, domainerrors.ErrRatingExists)

	got, err := svc.RatingForOrder(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, 5, got.StoreRating)
}

func TestProfileService_RateOrderRequiresExistingOrder(t *testing.T) {
	f := newFixture(t)
	svc := newProfileService(f)

	_, err := svc.RateOrder(context.Background(), "missing", &usecase.RateOrderInput{StoreRating: 5, DeliveryRating: 5})
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestProfileService_SavedListLifecycle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedCatalog(t)
	svc := newProfileService(f)

	list, err := svc.CreateSavedList(ctx, &usecase.CreateSavedListInput{
		Name: "Weekly Staples", ProductIDs: []string{"p1", "p2"},
	})
	require.NoError(t, err)

	lists, err := svc.ListSavedLists(ctx)
	require.NoError(t, err)
	require.Len(t, lists, 1)

	require.NoError(t, svc.DeleteSavedList(ctx, list.ID))
	lists, err = svc.ListSavedLists(ctx)
	require.NoError(t, err)
	assert.Empty(t, lists)
}

func TestProfileService_ApplySavedListSkipsMissingProducts(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedCatalog(t)
	svc := newProfileService(f)

	list, err := svc.CreateSavedList(ctx, &usecase.CreateSavedListInput{
		Name: "Weekly Staples", ProductIDs: []string{"p1", "p2", "deleted-product"},
	})
	require.NoError(t, err)

	view, err := svc.ApplySavedList(ctx, list.ID)
	require.NoError(t, err)
	require.Len(t, view.Items, 2)
	assert.Equal(t, 140+45+25, view.Total)

	// Applying again bumps quantities instead of duplicating lines.
	view, err = svc.ApplySavedList(ctx, list.ID)
	require.NoError(t, err)
	require.Len(t, view.Items, 2)
	assert.Equal(t, 2, view.Items[0].Quantity)
	assert.Equal(t, 2, view.Items[1].Quantity)
}

func TestProfileService_ApplyUnknownListFails(t *testing.T) {
	f := newFixture(t)
	svc := newProfileService(f)

	_, err := svc.ApplySavedList(context.Background(), "missing")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
