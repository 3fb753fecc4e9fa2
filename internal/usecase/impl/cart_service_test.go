package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "kirana/internal/domain/errors"
)

func TestCartService_EmptyCartHasNoDeliveryCharge(t *testing.T) {
	f := newFixture(t)
	svc := NewCartService(f.cfg, f.cartRepo, f.productRepo)

	view, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Equal(t, 0, view.Subtotal)
	assert.Equal(t, 0, view.DeliveryCharge)
	assert.Equal(t, 0, view.Total)
}

func TestCartService_AddItemSnapshotsProductAndCharges(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedCatalog(t)
	svc := NewCartService(f.cfg, f.cartRepo, f.productRepo)

	view, err := svc.AddItem(ctx, "p1", 2)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "Toor Dal (1kg)", view.Items[0].Product.Name)
	assert.Equal(t, 2, view.Items[0].Quantity)
	assert.Equal(t, 280, view.Subtotal)
	assert.Equal(t, 25, view.DeliveryCharge)
	assert.Equal(t, 305, view.Total)
}

func TestCartService_AddItemMergesExistingLine(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedCatalog(t)
	svc := NewCartService(f.cfg, f.cartRepo, f.productRepo)

	_, err := svc.AddItem(ctx, "p2", 1)
	require.NoError(t, err)
	view, err := svc.AddItem(ctx, "p2", 3)
	require.NoError(t, err)

	require.Len(t, view.Items, 1)
	assert.Equal(t, 4, view.Items[0].Quantity)
}

func TestCartService_AddItemRejectsUnknownProductAndBadQuantity(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedCatalog(t)
	svc := NewCartService(f.cfg, f.cartRepo, f.productRepo)

	_, err := svc.AddItem(ctx, "missing", 1)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)

	_, err = svc.AddItem(ctx, "p1", 0)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)
}

func TestCartService_SetQuantityBelowOneRemovesLine(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedCatalog(t)
	svc := NewCartService(f.cfg, f.cartRepo, f.productRepo)

	_, err := svc.AddItem(ctx, "p1", 2)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "p2", 1)
	require.NoError(t, err)

	view, err := svc.SetQuantity(ctx, "p1", 0)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "p2", view.Items[0].Product.ID)

	// Dropping the last line removes the delivery charge with it.
	view, err = svc.RemoveItem(ctx, "p2")
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Equal(t, 0, view.Total)
}

func TestCartService_RemoveUnknownLineIsNoOp(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedCatalog(t)
	svc := NewCartService(f.cfg, f.cartRepo, f.productRepo)

	_, err := svc.AddItem(ctx, "p1", 1)
	require.NoError(t, err)

	view, err := svc.RemoveItem(ctx, "missing")
	require.NoError(t, err)
	assert.Len(t, view.Items, 1)
}
