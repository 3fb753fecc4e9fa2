package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kirana/internal/usecase"
)

func TestCatalogService_AddProduct(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewCatalogService(f.productRepo)

	product, err := svc.AddProduct(ctx, "owner1", &usecase.AddProductInput{
		Name:      "Ghee (500ml)",
		Price:     320,
		Category:  "Dairy",
		Available: true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, product.ID)
	assert.Equal(t, "owner1", product.ShopOwnerID)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCatalogService_ListAvailableFiltersByFlag(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedCatalog(t) // p1, p2 available; p3 not
	svc := NewCatalogService(f.productRepo)

	available, err := svc.ListAvailable(ctx, "")
	require.NoError(t, err)
	require.Len(t, available, 2)
	for _, product := range available {
		assert.True(t, product.Available)
	}

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestCatalogService_ListAvailableByCategory(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedCatalog(t)
	svc := NewCatalogService(f.productRepo)

	grocery, err := svc.ListAvailable(ctx, "Grocery")
	require.NoError(t, err)
	assert.Len(t, grocery, 2)

	// p3 is Dairy but unavailable, so the category reads empty.
	dairy, err := svc.ListAvailable(ctx, "Dairy")
	require.NoError(t, err)
	assert.Empty(t, dairy)
}

func TestCatalogService_SetAvailabilityTogglesListing(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedCatalog(t)
	svc := NewCatalogService(f.productRepo)

	require.NoError(t, svc.SetAvailability(ctx, "p3", true))
	available, err := svc.ListAvailable(ctx, "")
	require.NoError(t, err)
	assert.Len(t, available, 3)

	require.NoError(t, svc.SetAvailability(ctx, "p3", false))
	available, err = svc.ListAvailable(ctx, "")
	require.NoError(t, err)
	assert.Len(t, available, 2)
}

func TestCatalogService_UpdateProductPartial(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedCatalog(t)
	svc := NewCatalogService(f.productRepo)

	price := 150
	require.NoError(t, svc.UpdateProduct(ctx, "p1", &usecase.UpdateProductInput{Price: &price}))

	products, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 150, products[0].Price)
	assert.Equal(t, "Toor Dal (1kg)", products[0].Name)
}

func TestCatalogService_DeleteUnknownIsNoOp(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedCatalog(t)
	svc := NewCatalogService(f.productRepo)

	require.NoError(t, svc.DeleteProduct(ctx, "missing"))

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
