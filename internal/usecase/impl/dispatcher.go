package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"newsadmin/internal/domain/entity"
	"newsadmin/internal/domain/service"
)

// dispatcher fans a payload out to the push gateway in bounded batches.
// Batches run concurrently and each call carries its own timeout so a stuck
// gateway cannot hold a dispatch open indefinitely.
type dispatcher struct {
	gateway   service.PushGateway
	timeout   time.Duration
	batchSize int
	logger    *slog.Logger
}

func newDispatcher(gateway service.PushGateway, timeout time.Duration, batchSize int, logger *slog.Logger) *dispatcher {
	return &dispatcher{
		gateway:   gateway,
		timeout:   timeout,
		batchSize: batchSize,
		logger:    logger,
	}
}

// Dispatch sends the payload to every token and returns one outcome per
// token, in input order. A transport failure on a batch yields failed
// outcomes for that batch instead of aborting the run.
func (d *dispatcher) Dispatch(ctx context.Context, tokens []*entity.DeviceToken, payload *service.PushPayload) []service.DeliveryOutcome {
	outcomes := make([]service.DeliveryOutcome, len(tokens))

	var wg sync.WaitGroup
	for start := 0; start < len(tokens); start += d.batchSize {
		end := start + d.batchSize
		if end > len(tokens) {
			end = len(tokens)
		}

		wg.Add(1)
		go func(offset int, batch []*entity.DeviceToken) {
			defer wg.Done()
			d.dispatchBatch(ctx, offset, batch, payload, outcomes)
		}(start, tokens[start:end])
	}
	wg.Wait()

	return outcomes
}

func (d *dispatcher) dispatchBatch(ctx context.Context, offset int, batch []*entity.DeviceToken, payload *service.PushPayload, outcomes []service.DeliveryOutcome) {
	batchCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	tokenValues := make([]string, len(batch))
	for i, token := range batch {
		tokenValues[i] = token.Token
	}

	batchOutcomes, err := d.gateway.SendMulticast(batchCtx, tokenValues, payload)
	if err != nil {
		d.logger.Error("push gateway batch failed",
			slog.Int("batch_size", len(batch)),
			slog.Any("error", err),
		)
		for i := range batch {
			outcomes[offset+i] = service.DeliveryOutcome{
				Token:     batch[i].Token,
				Success:   false,
				ErrorCode: service.OutcomeErrorUnavailable,
			}
		}
		return
	}

	copy(outcomes[offset:], batchOutcomes)
}
