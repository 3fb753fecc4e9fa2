package impl

import (
	"context"
	"strconv"
	"strings"
	"time"

	"kirana/internal/domain/entity"
	domainerrors "kirana/internal/domain/errors"
	"kirana/internal/domain/repository"
	"kirana/internal/domain/service"
	"kirana/internal/errors"
	"kirana/internal/infra/geo"
	"kirana/internal/usecase"
)

type shopService struct {
	shopRepo  repository.ShopRepository
	qrcodeSvc service.QRCodeService
	now       func() time.Time
}

// NewShopService creates a new shop service instance.
func NewShopService(shopRepo repository.ShopRepository, qrcodeSvc service.QRCodeService) usecase.ShopUsecase {
	return &shopService{
		shopRepo:  shopRepo,
		qrcodeSvc: qrcodeSvc,
		now:       time.Now,
	}
}

// SetupShop creates or replaces the shop record for the owner.
func (s *shopService) SetupShop(ctx context.Context, ownerID string, input *usecase.SetupShopInput) (*entity.Shop, error) {
	shop := &entity.Shop{
		OwnerID:   ownerID,
		ShopName:  input.ShopName,
		ShopType:  input.ShopType,
		ShopPhoto: input.ShopPhoto,
		Address: entity.ShopAddress{
			HouseNumber: input.HouseNumber,
			Area:        input.Area,
			Landmark:    input.Landmark,
			PinCode:     input.PinCode,
		},
		GPSLocation: input.GPSLocation,
		OpeningTime: input.OpeningTime,
		ClosingTime: input.ClosingTime,
		WeeklyOff:   input.WeeklyOff,
	}

	if err := s.shopRepo.Save(ctx, shop); err != nil {
		return nil, errors.Wrap(err, "save shop")
	}

	return shop, nil
}

// GetShop returns the raw shop record for the owner surface.
func (s *shopService) GetShop(ctx context.Context) (*entity.Shop, error) {
	shop, err := s.shopRepo.Get(ctx)
	if err != nil {
		return nil, domainerrors.ErrShopNotSetUp
	}

	return shop, nil
}

// ShopQR renders the shareable shop QR code as PNG.
func (s *shopService) ShopQR(ctx context.Context) ([]byte, error) {
	shop, err := s.shopRepo.Get(ctx)
	if err != nil {
		return nil, domainerrors.ErrShopNotSetUp
	}

	return s.qrcodeSvc.GenerateShopQR(shop.OwnerID, shop.ShopName)
}

// CustomerView decorates the shop with opening-hours and, when both sides
// have a parseable GPS location, the distance to the caller.
func (s *shopService) CustomerView(ctx context.Context, customerGPS string) (*usecase.ShopView, error) {
	shop, err := s.shopRepo.Get(ctx)
	if err != nil {
		return nil, domainerrors.ErrShopNotSetUp
	}

	view := &usecase.ShopView{
		Shop:    shop,
		OpenNow: openNow(shop, s.now()),
	}

	if customerGPS != "" && shop.GPSLocation != "" {
		if meters, err := geo.DistanceMeters(customerGPS, shop.GPSLocation); err == nil {
			view.DistanceMeters = &meters
		}
	}

	return view, nil
}

// openNow reports whether the shop is open at the given moment. Malformed
// opening hours read as open, matching the original's display-only handling.
func openNow(shop *entity.Shop, at time.Time) bool {
	if strings.EqualFold(shop.WeeklyOff, at.Weekday().String()) {
		return false
	}

	open, okOpen := parseClock(shop.OpeningTime)
	close, okClose := parseClock(shop.ClosingTime)
	if !okOpen || !okClose {
		return true
	}

	minutes := at.Hour()*60 + at.Minute()

	return minutes >= open && minutes < close
}

// parseClock parses "HH:MM" into minutes since midnight.
func parseClock(clock string) (int, bool) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, false
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, false
	}
	mins, err := strconv.Atoi(parts[1])
	if err != nil || mins < 0 || mins > 59 {
		return 0, false
	}

	return hours*60 + mins, true
}
