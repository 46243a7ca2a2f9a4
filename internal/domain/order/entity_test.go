//go:build unit

package order_test

import (
	"testing"
	"time"

	"ordersync/internal/domain/order"
	"ordersync/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderID(t *testing.T) uuid.UUID {
	t.Helper()
	return uuid.New()
}

func newServices(t *testing.T) (*order.Services, *clock.MockClock) {
	t.Helper()
	mc := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	return &order.Services{Clock: mc}, mc
}

func TestNewOrder_SeedsPendingEvent(t *testing.T) {
	services, mc := newServices(t)

	o, seed := order.NewOrder(services, 0)

	assert.Equal(t, order.StatusPending, o.Status())
	assert.Equal(t, o.ID(), seed.OrderID)
	assert.Nil(t, seed.FromStatus)
	assert.Equal(t, order.StatusPending, seed.ToStatus)
	assert.Equal(t, order.ActorSystem, seed.Actor)
	assert.Equal(t, mc.Now(), seed.CreatedAt)
	assert.Equal(t, mc.Now(), o.LastActivity())
}

func TestTransition_Legality(t *testing.T) {
	testCases := []struct {
		name    string
		from    order.Status
		to      order.Status
		wantErr error
	}{
		{name: "pending to processing", from: order.StatusPending, to: order.StatusProcessing},
		{name: "pending to cancelled", from: order.StatusPending, to: order.StatusCancelled},
		{name: "processing to shipped", from: order.StatusProcessing, to: order.StatusShipped},
		{name: "processing to cancelled", from: order.StatusProcessing, to: order.StatusCancelled},
		{name: "shipped to delivered", from: order.StatusShipped, to: order.StatusDelivered},
		{name: "shipped to cancelled", from: order.StatusShipped, to: order.StatusCancelled},
		{name: "pending cannot skip to shipped", from: order.StatusPending, to: order.StatusShipped, wantErr: order.ErrInvalidTransition},
		{name: "no going backwards", from: order.StatusShipped, to: order.StatusProcessing, wantErr: order.ErrInvalidTransition},
		{name: "delivered is terminal", from: order.StatusDelivered, to: order.StatusProcessing, wantErr: order.ErrTerminalStatus},
		{name: "cancelled is terminal", from: order.StatusCancelled, to: order.StatusPending, wantErr: order.ErrTerminalStatus},
		{name: "cancelled cannot be cancelled again", from: order.StatusCancelled, to: order.StatusCancelled, wantErr: order.ErrTerminalStatus},
	}

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			o := order.ReconstructOrder(orderID(t), tc.from, nil, 0, nil, now, now, now)

			event, err := o.Transition(tc.to, "admin-1", nil, now.Add(time.Minute))

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, o.ID(), event.OrderID)
			require.NotNil(t, event.FromStatus)
			assert.Equal(t, tc.from, *event.FromStatus)
			assert.Equal(t, tc.to, event.ToStatus)
			assert.Equal(t, "admin-1", event.Actor)
			// Validation never mutates; the repository commits the change.
			assert.Equal(t, tc.from, o.Status())
		})
	}
}

func TestTransition_RequiresActor(t *testing.T) {
	now := time.Now()
	o := order.ReconstructOrder(orderID(t), order.StatusPending, nil, 0, nil, now, now, now)

	_, err := o.Transition(order.StatusProcessing, "", nil, now)

	assert.ErrorIs(t, err, order.ErrEmptyActor)
}

func TestParseStatus(t *testing.T) {
	st, err := order.ParseStatus("shipped")
	require.NoError(t, err)
	assert.Equal(t, order.StatusShipped, st)

	_, err = order.ParseStatus("refunded")
	assert.ErrorIs(t, err, order.ErrUnknownStatus)
}

func TestStatusTerminality(t *testing.T) {
	assert.False(t, order.StatusPending.IsTerminal())
	assert.False(t, order.StatusProcessing.IsTerminal())
	assert.False(t, order.StatusShipped.IsTerminal())
	assert.True(t, order.StatusDelivered.IsTerminal())
	assert.True(t, order.StatusCancelled.IsTerminal())
}
