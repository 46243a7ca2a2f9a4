//go:build unit

package commands_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"ordersync/internal/domain/order"
	"ordersync/internal/infra"
	"ordersync/internal/infra/db"
	"ordersync/internal/pkg/clock"
	"ordersync/internal/pkg/errs"
	"ordersync/internal/realtime"
	"ordersync/internal/usecase/commands"
	"ordersync/internal/usecase/queries"
	commandsmock "ordersync/tests/mock/commands"
	queriesmock "ordersync/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// passthroughTxRunner runs the unit of work without a database; the
// repositories behind it are mocks and ignore the tx handle.
type passthroughTxRunner struct{}

func (passthroughTxRunner) WithinTx(_ context.Context, fn func(tx db.DBTX) error) error {
	return fn(nil)
}

type orderCommandsFixture struct {
	ctrl    *gomock.Controller
	orders  *commandsmock.MockOrderRepository
	outbox  *commandsmock.MockNotificationEnqueuer
	reads   *queriesmock.MockOrderQueries
	hub     *commandsmock.MockEventPublisher
	clock   *clock.MockClock
	subject commands.OrderCommands
}

func newOrderCommandsFixture(t *testing.T) *orderCommandsFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &orderCommandsFixture{
		ctrl:   ctrl,
		orders: commandsmock.NewMockOrderRepository(ctrl),
		outbox: commandsmock.NewMockNotificationEnqueuer(ctrl),
		reads:  queriesmock.NewMockOrderQueries(ctrl),
		hub:    commandsmock.NewMockEventPublisher(ctrl),
		clock:  clock.NewMockClock(time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)),
	}
	f.subject = commands.NewOrderCommands(
		passthroughTxRunner{}, f.orders, f.outbox, f.reads, f.hub, f.clock, slog.Default(),
	)
	return f
}

func pendingOrder(id uuid.UUID, now time.Time) *order.Order {
	return order.ReconstructOrder(id, order.StatusPending, nil, 0, nil, now, now, now)
}

func TestOrderCommands_Create(t *testing.T) {
	f := newOrderCommandsFixture(t)
	ctx := context.Background()

	var seeded order.StatusEvent
	f.orders.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(nil)
	f.orders.EXPECT().AppendStatusEvent(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ db.DBTX, ev order.StatusEvent) error {
			seeded = ev
			return nil
		})
	f.hub.EXPECT().Publish(gomock.Any()).Do(func(ev realtime.StatusChangedEvent) {
		assert.Nil(t, ev.FromStatus)
		assert.Equal(t, order.StatusPending.String(), ev.ToStatus)
	})
	f.reads.EXPECT().GetByID(ctx, gomock.Any()).Return(&queries.OrderView{Status: "pending"}, nil)

	view, err := f.subject.Create(ctx, commands.CreateOrderInput{Priority: 3})
	require.NoError(t, err)

	assert.Equal(t, "pending", view.Status)
	assert.Nil(t, seeded.FromStatus)
	assert.Equal(t, order.ActorSystem, seeded.Actor)
}

func TestOrderCommands_Transition(t *testing.T) {
	f := newOrderCommandsFixture(t)
	ctx := context.Background()
	orderID := uuid.New()
	now := f.clock.Now()

	f.orders.EXPECT().FindForTransition(ctx, gomock.Any(), orderID).
		Return(pendingOrder(orderID, now), nil)
	f.orders.EXPECT().UpdateStatusConditional(ctx, gomock.Any(), orderID, order.StatusPending, order.StatusProcessing, now).
		Return(true, nil)
	f.orders.EXPECT().AppendStatusEvent(ctx, gomock.Any(), gomock.Any()).Return(nil)
	// Entering processing enqueues the confirmation email in-transaction.
	f.outbox.EXPECT().CreateJob(ctx, gomock.Any(), orderID, "email", "order.confirmation", gomock.Any(), now).
		Return(nil)
	f.hub.EXPECT().Publish(gomock.Any()).Do(func(ev realtime.StatusChangedEvent) {
		require.NotNil(t, ev.FromStatus)
		assert.Equal(t, order.StatusPending.String(), *ev.FromStatus)
		assert.Equal(t, order.StatusProcessing.String(), ev.ToStatus)
	})
	f.reads.EXPECT().GetByID(ctx, orderID).Return(&queries.OrderView{ID: orderID, Status: "processing"}, nil)

	view, err := f.subject.Transition(ctx, commands.TransitionOrderInput{
		OrderID:  orderID,
		ToStatus: order.StatusProcessing,
		Actor:    "ops@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "processing", view.Status)
}

func TestOrderCommands_Transition_NotFound(t *testing.T) {
	f := newOrderCommandsFixture(t)
	ctx := context.Background()
	orderID := uuid.New()

	f.orders.EXPECT().FindForTransition(ctx, gomock.Any(), orderID).
		Return(nil, infra.WrapRepoErr("order not found", nil, infra.KindNotFound))

	_, err := f.subject.Transition(ctx, commands.TransitionOrderInput{
		OrderID:  orderID,
		ToStatus: order.StatusProcessing,
		Actor:    "ops@example.com",
	})
	assert.ErrorIs(t, err, errs.ErrOrderNotFound)
}

func TestOrderCommands_Transition_Illegal(t *testing.T) {
	f := newOrderCommandsFixture(t)
	ctx := context.Background()
	orderID := uuid.New()

	f.orders.EXPECT().FindForTransition(ctx, gomock.Any(), orderID).
		Return(pendingOrder(orderID, f.clock.Now()), nil)

	// pending -> delivered skips the chain; nothing may be written and
	// nothing may be broadcast.
	_, err := f.subject.Transition(ctx, commands.TransitionOrderInput{
		OrderID:  orderID,
		ToStatus: order.StatusDelivered,
		Actor:    "ops@example.com",
	})
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestOrderCommands_Transition_ConcurrentLoser(t *testing.T) {
	f := newOrderCommandsFixture(t)
	ctx := context.Background()
	orderID := uuid.New()
	now := f.clock.Now()

	f.orders.EXPECT().FindForTransition(ctx, gomock.Any(), orderID).
		Return(pendingOrder(orderID, now), nil)
	f.orders.EXPECT().UpdateStatusConditional(ctx, gomock.Any(), orderID, order.StatusPending, order.StatusProcessing, now).
		Return(false, nil)

	_, err := f.subject.Transition(ctx, commands.TransitionOrderInput{
		OrderID:  orderID,
		ToStatus: order.StatusProcessing,
		Actor:    "ops@example.com",
	})
	assert.ErrorIs(t, err, errs.ErrConcurrentModification)
}
