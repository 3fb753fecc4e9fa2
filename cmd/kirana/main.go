package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"kirana/config"
	"kirana/internal/delivery"
	"kirana/internal/delivery/http"
	"kirana/internal/delivery/http/middleware"
	"kirana/internal/delivery/http/router/handler"
	"kirana/internal/domain/service"
	"kirana/internal/infra/auth"
	"kirana/internal/infra/kvstore"
	logs "kirana/internal/infra/log"
	"kirana/internal/infra/persistence/localstore"
	"kirana/internal/infra/qrcode"
	"kirana/internal/usecase"
	"kirana/internal/usecase/impl"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			seedDemoData,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		newStore,
	)
}

// newStore opens the file-backed blob store every collection lives in.
func newStore(cfg *config.Config) (kvstore.Store, error) {
	return kvstore.NewFileStore(cfg.Store.DataDir)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			localstore.NewOwnerRepository,
			localstore.NewShopRepository,
			localstore.NewProductRepository,
			localstore.NewCartRepository,
			localstore.NewOrderRepository,
			localstore.NewNotificationRepository,
			localstore.NewCustomerRepository,
			localstore.NewAddressRepository,
			localstore.NewRatingRepository,
			localstore.NewSavedListRepository,
			localstore.NewFlagRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewShopService,
			impl.NewCatalogService,
			impl.NewCartService,
			impl.NewOrderService,
			impl.NewNotificationService,
			impl.NewProfileService,
			impl.NewAdminService,
			impl.NewSeedService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAccountHandler,
			handler.NewShopHandler,
			handler.NewCatalogHandler,
			handler.NewCartHandler,
			handler.NewOrderHandler,
			handler.NewNotificationHandler,
			handler.NewProfileHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// seedDemoData populates demo data on first start when enabled.
func seedDemoData(ctx context.Context, cfg *config.Config, seeder usecase.SeedUsecase, logger *slog.Logger) error {
	if !cfg.Seed.Enabled {
		return nil
	}

	if err := seeder.Run(ctx); err != nil {
		logger.Error("Failed to seed demo data", slog.Any("error", err))
		return err
	}

	return nil
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
