package main

import (
	"context"
	"log/slog"
	"os"

	"outside/config"
	"outside/internal/delivery"
	"outside/internal/delivery/api"
	"outside/internal/delivery/api/middleware"
	"outside/internal/delivery/api/router/handler"
	"outside/internal/infra/auth"
	"outside/internal/infra/cache"
	"outside/internal/infra/clock"
	"outside/internal/infra/geocoding"
	logs "outside/internal/infra/log"
	"outside/internal/infra/persistence/gormstore"
	"outside/internal/infra/pubsub"
	"outside/internal/infra/qrcode"
	"outside/internal/usecase/impl"

	"go.uber.org/fx"
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
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			clock.NewSystem,
			gormstore.New,
			cache.NewRedisClient,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			gormstore.NewUserRepository,
			gormstore.NewEventRepository,
			gormstore.NewTicketAllotmentRepository,
			gormstore.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			cache.NewTokenRevocationStore,
			geocoding.NewResolver,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewProfileService,
			impl.NewEventService,
			impl.NewLocationService,
			impl.NewTicketAllotmentService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewEventHandler,
			handler.NewLocationHandler,
			handler.NewTicketAllotmentHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
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
