package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"newsadmin/config"
	"newsadmin/internal/delivery"
	"newsadmin/internal/delivery/http"
	"newsadmin/internal/delivery/http/middleware"
	"newsadmin/internal/delivery/http/router/handler"
	"newsadmin/internal/domain/service"
	"newsadmin/internal/infra/auth"
	logs "newsadmin/internal/infra/log"
	"newsadmin/internal/infra/persistence/postgres"
	"newsadmin/internal/infra/pubsub"
	"newsadmin/internal/infra/push"
	"newsadmin/internal/usecase/impl"

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
			postgres.NewNotificationRepository,
			postgres.NewDeviceTokenRepository,
			postgres.NewDeliveryRecordRepository,
			postgres.NewAPIKeyRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			newPushGateway,
			pubsub.NewEventPublisher,
		),
	)
}

// newPushGateway creates the FCM gateway with dependency injection
func newPushGateway(ctx context.Context, cfg *config.Config) (service.PushGateway, error) {
	if cfg.Firebase == nil {
		return nil, fmt.Errorf("firebase configuration is required")
	}

	gateway, err := push.NewFCMGateway(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create FCM gateway: %w", err)
	}

	return gateway, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewNotificationService,
			impl.NewTokenService,
			impl.NewAPIKeyService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewRequestIDMiddleware,
			middleware.NewAuthMiddleware,
			middleware.NewAPIKeyMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewNotificationHandler,
			handler.NewTokenHandler,
			handler.NewTestHandler,
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
