package impl

import (
	"context"

	"kirana/internal/domain/entity"
	domainerrors "kirana/internal/domain/errors"
	"kirana/internal/domain/repository"
	"kirana/internal/errors"
	"kirana/internal/infra/kvstore"
	"kirana/internal/usecase"
)

type adminService struct {
	shopRepo     repository.ShopRepository
	ownerRepo    repository.OwnerRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	orderRepo    repository.OrderRepository
	ratingRepo   repository.RatingRepository
	notifRepo    repository.NotificationRepository
	flagRepo     repository.FlagRepository
}

// NewAdminService creates a new admin service instance.
func NewAdminService(
	shopRepo repository.ShopRepository,
	ownerRepo repository.OwnerRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	ratingRepo repository.RatingRepository,
	notifRepo repository.NotificationRepository,
	flagRepo repository.FlagRepository,
) usecase.AdminUsecase {
	return &adminService{
		shopRepo:     shopRepo,
		ownerRepo:    ownerRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		orderRepo:    orderRepo,
		ratingRepo:   ratingRepo,
		notifRepo:    notifRepo,
		flagRepo:     flagRepo,
	}
}

// ListStores returns the stores table. The demo holds at most one store, so
// the table has zero or one rows.
func (s *adminService) ListStores(ctx context.Context) ([]usecase.StoreOverview, error) {
	shop, err := s.shopRepo.Get(ctx)
	if err != nil {
		return []usecase.StoreOverview{}, nil
	}

	row := usecase.StoreOverview{Shop: shop}
	if owner, err := s.ownerRepo.GetProfile(ctx); err == nil {
		row.OwnerName = owner.FullName
		row.OwnerMobile = owner.Mobile
	}
	if products, err := s.productRepo.GetAll(ctx); err == nil {
		row.ProductCount = len(products)
	}
	if orders, err := s.orderRepo.GetAll(ctx); err == nil {
		row.OrderCount = len(orders)
	}

	return []usecase.StoreOverview{row}, nil
}

// ToggleShopStatus flips a shop between active and suspended. The flag is
// display-only; the ordering flow never consults it.
func (s *adminService) ToggleShopStatus(ctx context.Context) (*entity.Shop, error) {
	shop, err := s.shopRepo.Get(ctx)
	if err != nil {
		return nil, domainerrors.ErrShopNotSetUp
	}

	if shop.Status == entity.ShopStatusSuspended {
		shop.Status = entity.ShopStatusActive
	} else {
		shop.Status = entity.ShopStatusSuspended
	}

	if err := s.shopRepo.Save(ctx, shop); err != nil {
		return nil, errors.Wrap(err, "save shop status")
	}

	return shop, nil
}

// GetFlags reads the block/suspend toggles.
func (s *adminService) GetFlags(ctx context.Context) (*usecase.AccountFlags, error) {
	blocked, _ := s.flagRepo.Get(ctx, kvstore.KeyCustomerBlocked)
	suspended, _ := s.flagRepo.Get(ctx, kvstore.KeyOwnerSuspended)

	return &usecase.AccountFlags{
		CustomerBlocked: blocked,
		OwnerSuspended:  suspended,
	}, nil
}

// ToggleCustomerBlocked flips the customer block flag.
func (s *adminService) ToggleCustomerBlocked(ctx context.Context) (*usecase.AccountFlags, error) {
	blocked, _ := s.flagRepo.Get(ctx, kvstore.KeyCustomerBlocked)
	if err := s.flagRepo.Set(ctx, kvstore.KeyCustomerBlocked, !blocked); err != nil {
		return nil, errors.Wrap(err, "save customer block flag")
	}

	return s.GetFlags(ctx)
}

// ToggleOwnerSuspended flips the owner suspend flag.
func (s *adminService) ToggleOwnerSuspended(ctx context.Context) (*usecase.AccountFlags, error) {
	suspended, _ := s.flagRepo.Get(ctx, kvstore.KeyOwnerSuspended)
	if err := s.flagRepo.Set(ctx, kvstore.KeyOwnerSuspended, !suspended); err != nil {
		return nil, errors.Wrap(err, "save owner suspend flag")
	}

	return s.GetFlags(ctx)
}

// Overview computes the report from the live collections on every call.
func (s *adminService) Overview(ctx context.Context) (*usecase.Report, error) {
	report := &usecase.Report{}

	products, _ := s.productRepo.GetAll(ctx)
	report.ProductCount = len(products)
	for _, product := range products {
		if product.Available {
			report.AvailableCount++
		}
	}

	orders, _ := s.orderRepo.GetAll(ctx)
	report.OrderCount = len(orders)
	for _, order := range orders {
		report.Revenue += order.TotalPrice
		if order.Status == entity.OrderStatusDelivered {
			report.DeliveredCount++
		}
	}

	ratings, _ := s.ratingRepo.GetAll(ctx)
	report.RatingCount = len(ratings)
	if len(ratings) > 0 {
		sum := 0
		for _, rating := range ratings {
			sum += rating.StoreRating
		}
		report.AvgStoreRating = float64(sum) / float64(len(ratings))
	}

	report.UnreadOwner, _ = s.notifRepo.UnreadCount(ctx, entity.QueueOwner)
	report.UnreadCustomer, _ = s.notifRepo.UnreadCount(ctx, entity.QueueCustomer)
	_, err := s.customerRepo.GetProfile(ctx)
	report.CustomerPresent = err == nil

	return report, nil
}

// ListOrders exposes every order to the back office, newest first.
func (s *adminService) ListOrders(ctx context.Context) ([]entity.Order, error) {
	return s.orderRepo.GetAll(ctx)
}
