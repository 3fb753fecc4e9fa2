package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"kirana/config"
	"kirana/internal/domain/entity"
	domainerrors "kirana/internal/domain/errors"
	"kirana/internal/domain/repository"
	"kirana/internal/errors"
	"kirana/internal/usecase"
)

type orderService struct {
	cfg          *config.Config
	logger       *slog.Logger
	orderRepo    repository.OrderRepository
	cartRepo     repository.CartRepository
	customerRepo repository.CustomerRepository
	notifRepo    repository.NotificationRepository
}

// NewOrderService creates a new order service instance.
func NewOrderService(
	cfg *config.Config,
	logger *slog.Logger,
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	customerRepo repository.CustomerRepository,
	notifRepo repository.NotificationRepository,
) usecase.OrderUsecase {
	return &orderService{
		cfg:          cfg,
		logger:       logger,
		orderRepo:    orderRepo,
		cartRepo:     cartRepo,
		customerRepo: customerRepo,
		notifRepo:    notifRepo,
	}
}

// PlaceOrder snapshots the current cart into a new order, notifies the owner
// queue, and clears the cart. The three writes are deliberately independent
// accessor calls with no rollback, matching the original flow; an
// interruption partway can leave the order saved with the cart intact.
func (s *orderService) PlaceOrder(ctx context.Context) (*entity.Order, error) {
	items, err := s.cartRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domainerrors.ErrCartEmpty
	}

	customerID := ""
	customerName := "Guest"
	shopOwnerID := ""
	if profile, err := s.customerRepo.GetProfile(ctx); err == nil {
		customerID = profile.ID
		customerName = profile.Name
	}
	if len(items) > 0 {
		shopOwnerID = items[0].Product.ShopOwnerID
	}

	view := cartView(items, s.cfg.Order.DeliveryCharge)
	order := entity.Order{
		ID:           entity.NewID(),
		CustomerID:   customerID,
		CustomerName: customerName,
		ShopOwnerID:  shopOwnerID,
		Items:        items,
		TotalPrice:   view.Total,
		Status:       entity.OrderStatusNew,
		CreatedAt:    time.Now(),
	}

	if err := s.orderRepo.Add(ctx, order); err != nil {
		return nil, errors.Wrap(err, "save order")
	}

	message := fmt.Sprintf("New order #%s from %s - ₹%d", order.ID, customerName, order.TotalPrice)
	if _, err := s.notifRepo.Push(ctx, entity.QueueOwner, message, order.ID); err != nil {
		s.logger.Warn("owner notification not recorded",
			slog.String("orderID", order.ID), slog.Any("error", err))
	}

	if err := s.cartRepo.Clear(ctx); err != nil {
		s.logger.Warn("cart not cleared after placement",
			slog.String("orderID", order.ID), slog.Any("error", err))
	}

	s.logger.Info("order placed",
		slog.String("orderID", order.ID),
		slog.Int("total", order.TotalPrice),
		slog.Int("lines", len(order.Items)))

	return &order, nil
}

// ListOrders returns every order, newest first.
func (s *orderService) ListOrders(ctx context.Context) ([]entity.Order, error) {
	return s.orderRepo.GetAll(ctx)
}

// GetOrder returns one order by id.
func (s *orderService) GetOrder(ctx context.Context, id string) (*entity.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, domainerrors.ErrOrderNotFound
	}

	return order, nil
}

// UpdateStatus sets the order's status and pushes exactly one customer
// notification referencing the order. Any of the five stages may be set from
// any other; only unknown status values are rejected.
func (s *orderService) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) (*entity.Order, error) {
	if !status.Valid() {
		return nil, domainerrors.ErrInvalidOrderStatus
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "update order status")
	}

	message := fmt.Sprintf("Order #%s is now: %s", id, status)
	if _, err := s.notifRepo.Push(ctx, entity.QueueCustomer, message, id); err != nil {
		s.logger.Warn("customer notification not recorded",
			slog.String("orderID", id), slog.Any("error", err))
	}

	return s.orderRepo.FindByID(ctx, id)
}

// WatchOrder re-reads the order on the configured interval and emits it on
// every observed status change, starting with the current state. The channel
// closes when ctx is cancelled. This is the polling stand-in for push
// updates: a change becomes visible to an open watcher within one interval.
func (s *orderService) WatchOrder(ctx context.Context, id string) (<-chan entity.Order, error) {
	current, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, domainerrors.ErrOrderNotFound
	}

	updates := make(chan entity.Order, 1)
	updates <- *current

	go func() {
		defer close(updates)

		lastStatus := current.Status
		ticker := time.NewTicker(s.cfg.Order.TrackingPollInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				order, err := s.orderRepo.FindByID(ctx, id)
				if err != nil {
					// Deleted from under the watcher; nothing more to emit.
					return
				}
				if order.Status == lastStatus {
					continue
				}
				lastStatus = order.Status

				select {
				case updates <- *order:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return updates, nil
}
