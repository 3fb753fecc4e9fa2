package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kirana/internal/domain/entity"
	"kirana/internal/infra/auth"
)

func TestSeedService_SeedsDemoStoreOnce(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewSeedService(testLogger(), f.ownerRepo, f.shopRepo, f.productRepo, auth.NewBcryptHasher())

	require.NoError(t, svc.Run(ctx))

	owner, err := f.ownerRepo.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Rajesh Kumar", owner.FullName)
	assert.NotEqual(t, "1234", owner.Password)

	shop, err := f.shopRepo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Rajesh General Store", shop.ShopName)

	products, err := f.productRepo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 10)

	// A second run leaves everything untouched.
	require.NoError(t, svc.Run(ctx))
	products, err = f.productRepo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 10)
}

func TestSeedService_SkipsWhenCatalogExists(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.productRepo.Add(ctx, entity.Product{ID: "existing", Name: "Real Product"}))

	svc := NewSeedService(testLogger(), f.ownerRepo, f.shopRepo, f.productRepo, auth.NewBcryptHasher())
	require.NoError(t, svc.Run(ctx))

	products, err := f.productRepo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "existing", products[0].ID)

	_, err = f.ownerRepo.GetProfile(ctx)
	assert.Error(t, err, "seeding must not create an owner when real data exists")
}
