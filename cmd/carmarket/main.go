package main

import (
	"context"
	"log/slog"
	"os"

	"carmarket/config"
	"carmarket/internal/delivery"
	"carmarket/internal/delivery/http"
	"carmarket/internal/delivery/http/middleware"
	"carmarket/internal/delivery/http/router/handler"
	"carmarket/internal/domain/service"
	"carmarket/internal/errors"
	"carmarket/internal/infra/auth"
	logs "carmarket/internal/infra/log"
	"carmarket/internal/infra/metrics"
	"carmarket/internal/infra/persistence/postgres"
	"carmarket/internal/infra/pubsub"
	"carmarket/internal/infra/qrcode"
	"carmarket/internal/usecase"
	"carmarket/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type bootstrapParams struct {
	fx.In

	Config *config.Config
	UserUC usecase.UserUsecase
	Logger *slog.Logger
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
			bootstrapAdmin,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewCarRepository,
			postgres.NewOfferRepository,
			postgres.NewPurchaseRepository,
			postgres.NewFavoriteRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeServiceFromConfig,
			fx.Annotate(
				metrics.NewFromConfig,
				fx.As(new(service.MarketMetrics)),
			),
		),
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewCatalogService,
			impl.NewOfferService,
			impl.NewPurchaseService,
			impl.NewFavoriteService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewRateLimiter,
			middleware.NewMetricsMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewCarHandler,
			handler.NewOfferHandler,
			handler.NewPurchaseHandler,
			handler.NewFavoriteHandler,
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

// bootstrapAdmin seeds the configured admin account so a fresh deployment
// can be administered.
func bootstrapAdmin(ctx context.Context, params bootstrapParams) error {
	if params.Config.Auth == nil {
		return nil
	}
	admin := params.Config.Auth.BootstrapAdmin
	if admin == nil || admin.Email == "" {
		return nil
	}

	err := params.UserUC.EnsureAdmin(ctx, &usecase.AccountInput{
		Email:     admin.Email,
		Password:  admin.Password,
		FirstName: admin.FirstName,
		LastName:  admin.LastName,
		Phone:     admin.Phone,
	})
	if err != nil {
		return errors.Wrap(err, "failed to bootstrap admin account")
	}
	params.Logger.Info("Admin account ensured", slog.String("email", admin.Email))

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
