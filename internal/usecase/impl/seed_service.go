package impl

import (
	"context"
	"log/slog"

	"kirana/internal/domain/entity"
	"kirana/internal/domain/repository"
	"kirana/internal/domain/service"
	"kirana/internal/errors"
	"kirana/internal/usecase"
)

type seedService struct {
	logger      *slog.Logger
	ownerRepo   repository.OwnerRepository
	shopRepo    repository.ShopRepository
	productRepo repository.ProductRepository
	hasher      service.PasswordHasher
}

// NewSeedService creates a new seed service instance.
func NewSeedService(
	logger *slog.Logger,
	ownerRepo repository.OwnerRepository,
	shopRepo repository.ShopRepository,
	productRepo repository.ProductRepository,
	hasher service.PasswordHasher,
) usecase.SeedUsecase {
	return &seedService{
		logger:      logger,
		ownerRepo:   ownerRepo,
		shopRepo:    shopRepo,
		productRepo: productRepo,
		hasher:      hasher,
	}
}

// Run seeds the demo owner, shop, and catalog. Skipped when any products
// already exist so a reseed never clobbers real data.
func (s *seedService) Run(ctx context.Context) error {
	existing, err := s.productRepo.GetAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	password, err := s.hasher.Hash("1234")
	if err != nil {
		return errors.Wrap(err, "hash demo password")
	}

	owner := &entity.OwnerProfile{
		ID:       "owner1",
		FullName: "Rajesh Kumar",
		Mobile:   "9876543210",
		Email:    "rajesh@example.com",
		Password: password,
	}
	if err := s.ownerRepo.SaveProfile(ctx, owner); err != nil {
		return errors.Wrap(err, "seed owner")
	}

	shop := &entity.Shop{
		OwnerID:  owner.ID,
		ShopName: "Rajesh General Store",
		ShopType: "General Store",
		Address: entity.ShopAddress{
			HouseNumber: "42",
			Area:        "MG Road",
			Landmark:    "Near Bus Stand",
			PinCode:     "560001",
		},
		GPSLocation: "12.9716, 77.5946",
		OpeningTime: "07:00",
		ClosingTime: "21:00",
		WeeklyOff:   "Sunday",
	}
	if err := s.shopRepo.Save(ctx, shop); err != nil {
		return errors.Wrap(err, "seed shop")
	}

	products := []entity.Product{
		{ID: "p1", ShopOwnerID: owner.ID, Name: "Toor Dal (1kg)", Price: 140, Available: true, Category: "Pulses"},
		{ID: "p2", ShopOwnerID: owner.ID, Name: "Basmati Rice (5kg)", Price: 450, Available: true, Category: "Rice"},
		{ID: "p3", ShopOwnerID: owner.ID, Name: "Amul Butter (500g)", Price: 280, Available: true, Category: "Dairy"},
		{ID: "p4", ShopOwnerID: owner.ID, Name: "Sugar (1kg)", Price: 48, Available: true, Category: "Essentials"},
		{ID: "p5", ShopOwnerID: owner.ID, Name: "Sunflower Oil (1L)", Price: 180, Available: true, Category: "Oil"},
		{ID: "p6", ShopOwnerID: owner.ID, Name: "Wheat Flour (5kg)", Price: 220, Available: true, Category: "Flour"},
		{ID: "p7", ShopOwnerID: owner.ID, Name: "Tea Powder (250g)", Price: 120, Available: false, Category: "Beverages"},
		{ID: "p8", ShopOwnerID: owner.ID, Name: "Milk (1L)", Price: 60, Available: true, Category: "Dairy"},
		{ID: "p9", ShopOwnerID: owner.ID, Name: "Onion (1kg)", Price: 35, Available: true, Category: "Vegetables"},
		{ID: "p10", ShopOwnerID: owner.ID, Name: "Maggi Noodles (4 pack)", Price: 56, Available: true, Category: "Snacks"},
	}
	if err := s.productRepo.SaveAll(ctx, products); err != nil {
		return errors.Wrap(err, "seed products")
	}

	s.logger.Info("demo data seeded",
		slog.String("shop", shop.ShopName),
		slog.Int("products", len(products)))

	return nil
}
