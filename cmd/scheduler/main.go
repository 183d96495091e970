package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"newsadmin/config"
	"newsadmin/internal/delivery"
	"newsadmin/internal/delivery/scheduler"
	"newsadmin/internal/domain/service"
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
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
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
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				scheduler.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start scheduler", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
