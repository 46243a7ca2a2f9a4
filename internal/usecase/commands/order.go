package commands

import (
	"context"
	"errors"
	"log/slog"

	"ordersync/internal/domain/order"
	"ordersync/internal/infra"
	"ordersync/internal/infra/db"
	"ordersync/internal/notify"
	"ordersync/internal/pkg/clock"
	"ordersync/internal/pkg/errs"
	"ordersync/internal/realtime"
	"ordersync/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateOrderInput struct {
	Priority int32
}

type TransitionOrderInput struct {
	OrderID  uuid.UUID
	ToStatus order.Status
	Actor    string
	Comment  *string
}

type OrderCommands interface {
	Create(ctx context.Context, in CreateOrderInput) (*queries.OrderView, error)
	// Transition applies one status change. Concurrent transitions of the
	// same order are serialized by a conditional update; exactly one wins
	// and the rest fail with ErrConcurrentModification.
	Transition(ctx context.Context, in TransitionOrderInput) (*queries.OrderView, error)
}

type orderCommandsImpl struct {
	txRunner db.TxRunner
	orders   OrderRepository
	outbox   NotificationEnqueuer
	reads    queries.OrderQueries
	hub      EventPublisher
	clock    clock.Clock
	logger   *slog.Logger
}

func NewOrderCommands(
	txRunner db.TxRunner,
	orders OrderRepository,
	outbox NotificationEnqueuer,
	reads queries.OrderQueries,
	hub EventPublisher,
	clk clock.Clock,
	logger *slog.Logger,
) OrderCommands {
	return &orderCommandsImpl{
		txRunner: txRunner,
		orders:   orders,
		outbox:   outbox,
		reads:    reads,
		hub:      hub,
		clock:    clk,
		logger:   logger,
	}
}

func (c *orderCommandsImpl) Create(ctx context.Context, in CreateOrderInput) (*queries.OrderView, error) {
	o, seed := order.NewOrder(&order.Services{Clock: c.clock}, in.Priority)

	err := c.txRunner.WithinTx(ctx, func(tx db.DBTX) error {
		if err := c.orders.Create(ctx, tx, o); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		// Every order's audit trail starts with the seed pending event,
		// so history replay never needs a special case for birth.
		if err := c.orders.AppendStatusEvent(ctx, tx, seed); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.hub.Publish(realtime.NewStatusChangedEvent(seed))
	return c.reads.GetByID(ctx, o.ID())
}

func (c *orderCommandsImpl) Transition(ctx context.Context, in TransitionOrderInput) (*queries.OrderView, error) {
	var committed order.StatusEvent

	err := c.txRunner.WithinTx(ctx, func(tx db.DBTX) error {
		o, err := c.orders.FindForTransition(ctx, tx, in.OrderID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrOrderNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		ev, err := o.Transition(in.ToStatus, in.Actor, in.Comment, c.clock.Now())
		if err != nil {
			if errors.Is(err, order.ErrInvalidTransition) || errors.Is(err, order.ErrTerminalStatus) {
				return errs.Mark(err, errs.ErrInvalidTransition)
			}
			return err
		}

		won, err := c.orders.UpdateStatusConditional(ctx, tx, o.ID(), o.Status(), ev.ToStatus, ev.CreatedAt)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !won {
			return errs.ErrConcurrentModification
		}

		if err := c.orders.AppendStatusEvent(ctx, tx, ev); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		jobs, err := notify.PlanForTransition(ev, o.TrackingCode())
		if err != nil {
			return err
		}
		for _, job := range jobs {
			if err := c.outbox.CreateJob(ctx, tx, ev.OrderID, job.Kind, job.Topic, job.Payload, ev.CreatedAt); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}

		committed = ev
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Broadcast only after commit; subscribers must never see a state the
	// database could still roll back.
	c.hub.Publish(realtime.NewStatusChangedEvent(committed))
	c.logger.Info("order transitioned",
		"order_id", committed.OrderID,
		"to_status", committed.ToStatus,
		"actor", committed.Actor,
	)

	return c.reads.GetByID(ctx, in.OrderID)
}
