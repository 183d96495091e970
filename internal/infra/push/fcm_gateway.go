// Package push contains the Firebase Cloud Messaging implementation of the push gateway.
package push

import (
	"context"
	"fmt"

	"newsadmin/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// fcmBatchLimit is the maximum token count Firebase accepts per multicast request.
const fcmBatchLimit = 500

type fcmGateway struct {
	client *messaging.Client
}

// NewFCMGateway creates a push gateway backed by Firebase Cloud Messaging.
func NewFCMGateway(ctx context.Context, credentialsPath string) (service.PushGateway, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &fcmGateway{
		client: client,
	}, nil
}

// SendMulticast delivers the payload to all tokens in one gateway round trip.
// Outcomes are returned in the same order as the input token list.
func (g *fcmGateway) SendMulticast(ctx context.Context, tokens []string, payload *service.PushPayload) ([]service.DeliveryOutcome, error) {
	if len(tokens) == 0 {
		return nil, nil
	}

	if len(tokens) > fcmBatchLimit {
		return nil, fmt.Errorf("token count exceeds limit: %d (max %d)", len(tokens), fcmBatchLimit)
	}

	message := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title:    payload.Title,
			Body:     payload.Body,
			ImageURL: payload.ImageURL,
		},
		Data: payload.Data,
	}

	response, err := g.client.SendEachForMulticast(ctx, message)
	if err != nil {
		return nil, fmt.Errorf("failed to send multicast notification: %w", err)
	}

	outcomes := make([]service.DeliveryOutcome, 0, len(tokens))
	for idx, sendResponse := range response.Responses {
		outcome := service.DeliveryOutcome{
			Token:   tokens[idx],
			Success: sendResponse.Error == nil,
		}
		if sendResponse.Error != nil {
			outcome.ErrorCode = classifyError(sendResponse.Error)
		}
		outcomes = append(outcomes, outcome)
	}

	return outcomes, nil
}

// classifyError maps FCM per-token errors onto gateway error codes. Only the
// unregistered and invalid-token classes may deactivate a registration.
func classifyError(err error) string {
	switch {
	case messaging.IsUnregistered(err):
		return service.OutcomeErrorUnregistered
	case messaging.IsInvalidArgument(err):
		return service.OutcomeErrorInvalidToken
	case messaging.IsUnavailable(err) || messaging.IsQuotaExceeded(err):
		return service.OutcomeErrorUnavailable
	default:
		return service.OutcomeErrorInternal
	}
}
