// Package scheduler runs the polling loop that dispatches scheduled notifications.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"newsadmin/config"
	"newsadmin/internal/delivery"
	"newsadmin/internal/usecase"

	"go.uber.org/fx"
)

type schedulerServer struct {
	cfg            *config.Config
	logger         *slog.Logger
	notificationUC usecase.NotificationUsecase
	stop           chan struct{}
	done           chan struct{}
}

// ServerParams holds dependencies for the scheduler loop
type ServerParams struct {
	fx.In

	Lc             fx.Lifecycle
	Cfg            *config.Config
	Logger         *slog.Logger
	NotificationUC usecase.NotificationUsecase
}

// NewServer creates the scheduled-dispatch polling loop
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &schedulerServer{
		cfg:            params.Cfg,
		logger:         params.Logger,
		notificationUC: params.NotificationUC,
		stop:           make(chan struct{}),
		done:           make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.shutdown,
	})

	return srv, nil
}

// Serve polls for due scheduled notifications until stopped
func (s *schedulerServer) Serve(ctx context.Context) error {
	defer close(s.done)

	interval := s.cfg.Scheduler.PollInterval
	s.logger.Info("Starting scheduler loop", slog.Duration("poll_interval", interval))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.dispatchTick(ctx)
		case <-s.stop:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *schedulerServer) dispatchTick(ctx context.Context) {
	dispatched, err := s.notificationUC.DispatchDueScheduled(ctx, s.cfg.Scheduler.BatchSize)
	if err != nil {
		s.logger.Error("scheduler tick failed", slog.Any("error", err))

		return
	}
	if dispatched > 0 {
		s.logger.Info("dispatched scheduled notifications", slog.Int("count", dispatched))
	}
}

func (s *schedulerServer) shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down scheduler loop")
	close(s.stop)

	select {
	case <-s.done:
	case <-ctx.Done():
	}

	return nil
}
