package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"newsadmin/internal/domain/entity"
	"newsadmin/internal/domain/service"
	mockSvc "newsadmin/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDispatcher_PreservesTokenOrderAcrossBatches(t *testing.T) {
	gateway := mockSvc.NewMockPushGateway(t)
	d := newDispatcher(gateway, time.Second, 2, discardLogger())

	tokens := []*entity.DeviceToken{
		activeToken("tok-1"), activeToken("tok-2"), activeToken("tok-3"),
	}

	gateway.EXPECT().
		SendMulticast(mock.Anything, []string{"tok-1", "tok-2"}, mock.Anything).
		Return([]service.DeliveryOutcome{
			{Token: "tok-1", Success: true},
			{Token: "tok-2", Success: false, ErrorCode: service.OutcomeErrorInternal},
		}, nil)
	gateway.EXPECT().
		SendMulticast(mock.Anything, []string{"tok-3"}, mock.Anything).
		Return([]service.DeliveryOutcome{
			{Token: "tok-3", Success: true},
		}, nil)

	outcomes := d.Dispatch(context.Background(), tokens, &service.PushPayload{Title: "t", Body: "b"})

	require.Len(t, outcomes, 3)
	assert.Equal(t, "tok-1", outcomes[0].Token)
	assert.Equal(t, "tok-2", outcomes[1].Token)
	assert.Equal(t, "tok-3", outcomes[2].Token)
	assert.True(t, outcomes[0].Success)
	assert.False(t, outcomes[1].Success)
	assert.True(t, outcomes[2].Success)
}

func TestDispatcher_TransportFailureMarksBatchUnavailable(t *testing.T) {
	gateway := mockSvc.NewMockPushGateway(t)
	d := newDispatcher(gateway, time.Second, 500, discardLogger())

	tokens := []*entity.DeviceToken{activeToken("tok-1"), activeToken("tok-2")}

	gateway.EXPECT().
		SendMulticast(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, context.DeadlineExceeded)

	outcomes := d.Dispatch(context.Background(), tokens, &service.PushPayload{Title: "t", Body: "b"})

	require.Len(t, outcomes, 2)
	for i, outcome := range outcomes {
		assert.Equal(t, tokens[i].Token, outcome.Token)
		assert.False(t, outcome.Success)
		assert.Equal(t, service.OutcomeErrorUnavailable, outcome.ErrorCode)
	}
}

func TestDispatcher_NoTokensNoGatewayCalls(t *testing.T) {
	gateway := mockSvc.NewMockPushGateway(t)
	d := newDispatcher(gateway, time.Second, 500, discardLogger())

	outcomes := d.Dispatch(context.Background(), nil, &service.PushPayload{Title: "t", Body: "b"})

	assert.Empty(t, outcomes)
	gateway.AssertNotCalled(t, "SendMulticast", mock.Anything, mock.Anything, mock.Anything)
}
