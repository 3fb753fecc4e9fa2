package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"kirana/config"
	"kirana/internal/domain/entity"
	"kirana/internal/domain/repository"
	"kirana/internal/infra/kvstore"
	"kirana/internal/infra/persistence/localstore"
)

// fixture wires every repository over one in-memory store so service tests
// observe the same cross-collection effects the file-backed store would.
type fixture struct {
	cfg *config.Config

	ownerRepo     repository.OwnerRepository
	shopRepo      repository.ShopRepository
	productRepo   repository.ProductRepository
	cartRepo      repository.CartRepository
	orderRepo     repository.OrderRepository
	notifRepo     repository.NotificationRepository
	customerRepo  repository.CustomerRepository
	addressRepo   repository.AddressRepository
	ratingRepo    repository.RatingRepository
	savedListRepo repository.SavedListRepository
	flagRepo      repository.FlagRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := kvstore.NewMemoryStore()

	cfg := &config.Config{}
	cfg.SecretKey.Session = "test-session-secret"
	cfg.Admin.Email = "admin@kirana.com"
	cfg.Admin.Password = "admin123"
	cfg.Order.DeliveryCharge = 25
	cfg.Order.TrackingPollInterval = 10 * time.Millisecond

	return &fixture{
		cfg:           cfg,
		ownerRepo:     localstore.NewOwnerRepository(store),
		shopRepo:      localstore.NewShopRepository(store),
		productRepo:   localstore.NewProductRepository(store),
		cartRepo:      localstore.NewCartRepository(store),
		orderRepo:     localstore.NewOrderRepository(store),
		notifRepo:     localstore.NewNotificationRepository(store),
		customerRepo:  localstore.NewCustomerRepository(store),
		addressRepo:   localstore.NewAddressRepository(store),
		ratingRepo:    localstore.NewRatingRepository(store),
		savedListRepo: localstore.NewSavedListRepository(store),
		flagRepo:      localstore.NewFlagRepository(store),
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// seedCatalog adds a small catalog and returns the products.
func (f *fixture) seedCatalog(t *testing.T) []entity.Product {
	t.Helper()

	products := []entity.Product{
		{ID: "p1", ShopOwnerID: "owner1", Name: "Toor Dal (1kg)", Price: 140, Available: true, Category: "Grocery"},
		{ID: "p2", ShopOwnerID: "owner1", Name: "Sugar (1kg)", Price: 45, Available: true, Category: "Grocery"},
		{ID: "p3", ShopOwnerID: "owner1", Name: "Milk (500ml)", Price: 28, Available: false, Category: "Dairy"},
	}
	require.NoError(t, f.productRepo.SaveAll(context.Background(), products))

	return products
}
