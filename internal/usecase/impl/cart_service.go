package impl

import (
	"context"

	"kirana/config"
	"kirana/internal/domain/entity"
	domainerrors "kirana/internal/domain/errors"
	"kirana/internal/domain/repository"
	"kirana/internal/errors"
	"kirana/internal/usecase"
)

type cartService struct {
	cfg         *config.Config
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService creates a new cart service instance.
func NewCartService(
	cfg *config.Config,
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
) usecase.CartUsecase {
	return &cartService{
		cfg:         cfg,
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// Get returns the cart with totals.
func (s *cartService) Get(ctx context.Context) (*usecase.CartView, error) {
	items, err := s.cartRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	return cartView(items, s.cfg.Order.DeliveryCharge), nil
}

// AddItem snapshots the product into the cart, or bumps the quantity of an
// existing line.
func (s *cartService) AddItem(ctx context.Context, productID string, quantity int) (*usecase.CartView, error) {
	if quantity < 1 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, domainerrors.ErrProductNotFound
	}

	items, err := s.cartRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range items {
		if items[i].Product.ID == productID {
			items[i].Quantity += quantity
			merged = true

			break
		}
	}
	if !merged {
		items = append(items, entity.CartItem{Product: *product, Quantity: quantity})
	}

	if err := s.cartRepo.Save(ctx, items); err != nil {
		return nil, errors.Wrap(err, "save cart")
	}

	return cartView(items, s.cfg.Order.DeliveryCharge), nil
}

// SetQuantity replaces a line's quantity; zero or less removes the line, so
// no stored line ever drops below one.
func (s *cartService) SetQuantity(ctx context.Context, productID string, quantity int) (*usecase.CartView, error) {
	items, err := s.cartRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	kept := items[:0]
	for _, item := range items {
		if item.Product.ID == productID {
			if quantity < 1 {
				continue
			}
			item.Quantity = quantity
		}
		kept = append(kept, item)
	}

	if err := s.cartRepo.Save(ctx, kept); err != nil {
		return nil, errors.Wrap(err, "save cart")
	}

	return cartView(kept, s.cfg.Order.DeliveryCharge), nil
}

// RemoveItem drops a line. Unknown ids are a silent no-op.
func (s *cartService) RemoveItem(ctx context.Context, productID string) (*usecase.CartView, error) {
	return s.SetQuantity(ctx, productID, 0)
}

// Clear empties the cart.
func (s *cartService) Clear(ctx context.Context) error {
	return s.cartRepo.Clear(ctx)
}

// cartView computes the price breakdown. The delivery charge applies only to
// a non-empty cart.
func cartView(items []entity.CartItem, deliveryCharge int) *usecase.CartView {
	subtotal := 0
	for _, item := range items {
		subtotal += item.Product.Price * item.Quantity
	}

	charge := 0
	if len(items) > 0 {
		charge = deliveryCharge
	}

	return &usecase.CartView{
		Items:          items,
		Subtotal:       subtotal,
		DeliveryCharge: charge,
		Total:          subtotal + charge,
	}
}
