package impl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "kirana/internal/domain/errors"
	"kirana/internal/infra/qrcode"
	"kirana/internal/usecase"
)

func newShopService(f *fixture) *shopService {
	return NewShopService(f.shopRepo, qrcode.NewQRCodeService(128, "M")).(*shopService)
}

func setupTestShop(t *testing.T, svc *shopService) {
	t.Helper()

	_, err := svc.SetupShop(context.Background(), "owner1", &usecase.SetupShopInput{
		ShopName:    "Rajesh General Store",
		ShopType:    "General Store",
		HouseNumber: "42",
		Area:        "MG Road",
		PinCode:     "560001",
		GPSLocation: "12.9716, 77.5946",
		OpeningTime: "07:00",
		ClosingTime: "21:00",
		WeeklyOff:   "Sunday",
	})
	require.NoError(t, err)
}

func TestShopService_SetupAndGet(t *testing.T) {
	f := newFixture(t)
	svc := newShopService(f)

	_, err := svc.GetShop(context.Background())
	assert.ErrorIs(t, err, domainerrors.ErrShopNotSetUp)

	setupTestShop(t, svc)

	shop, err := svc.GetShop(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Rajesh General Store", shop.ShopName)
	assert.Equal(t, "owner1", shop.OwnerID)
	assert.Equal(t, "MG Road", shop.Address.Area)
}

func TestShopService_SetupReplacesExistingShop(t *testing.T) {
	f := newFixture(t)
	svc := newShopService(f)
	setupTestShop(t, svc)

	_, err := svc.SetupShop(context.Background(), "owner1", &usecase.SetupShopInput{
		ShopName:    "Renamed Store",
		ShopType:    "Kirana",
		HouseNumber: "7",
		Area:        "Brigade Road",
		PinCode:     "560002",
		OpeningTime: "08:00",
		ClosingTime: "20:00",
	})
	require.NoError(t, err)

	shop, err := svc.GetShop(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Renamed Store", shop.ShopName)
}

func TestShopService_CustomerViewOpenNow(t *testing.T) {
	f := newFixture(t)
	svc := newShopService(f)
	setupTestShop(t, svc)

	// Monday 10:00, within 07:00-21:00.
	svc.now = func() time.Time { return time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC) }
	view, err := svc.CustomerView(context.Background(), "")
	require.NoError(t, err)
	assert.True(t, view.OpenNow)
	assert.Nil(t, view.DistanceMeters)

	// Monday 22:00, past closing.
	svc.now = func() time.Time { return time.Date(2024, 3, 4, 22, 0, 0, 0, time.UTC) }
	view, err = svc.CustomerView(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, view.OpenNow)

	// Sunday is the weekly off day regardless of the clock.
	svc.now = func() time.Time { return time.Date(2024, 3, 3, 10, 0, 0, 0, time.UTC) }
	view, err = svc.CustomerView(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, view.OpenNow)
}

func TestShopService_CustomerViewDistance(t *testing.T) {
	f := newFixture(t)
	svc := newShopService(f)
	setupTestShop(t, svc)

	// Roughly one degree of latitude away, so on the order of 110km.
	view, err := svc.CustomerView(context.Background(), "13.9716, 77.5946")
	require.NoError(t, err)
	require.NotNil(t, view.DistanceMeters)
	assert.InDelta(t, 111000, *view.DistanceMeters, 1500)

	// A malformed caller location degrades to no distance.
	view, err = svc.CustomerView(context.Background(), "not-a-location")
	require.NoError(t, err)
	assert.Nil(t, view.DistanceMeters)
}

func TestShopService_ShopQR(t *testing.T) {
	f := newFixture(t)
	svc := newShopService(f)

	_, err := svc.ShopQR(context.Background())
	assert.ErrorIs(t, err, domainerrors.ErrShopNotSetUp)

	setupTestShop(t, svc)

	png, err := svc.ShopQR(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}
