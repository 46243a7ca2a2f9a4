package order

import (
	"errors"
	"time"

	"ordersync/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition = errors.New("status not reachable from current status")
	ErrTerminalStatus    = errors.New("order is in a terminal status")
	ErrEmptyActor        = errors.New("transition actor must not be empty")
)

// StatusEvent is one audited status change. Events are immutable once
// appended; the newest event is the single source of truth for the
// order's current status.
type StatusEvent struct {
	ID         uuid.UUID
	OrderID    uuid.UUID
	FromStatus *Status // nil for the initial pending event
	ToStatus   Status
	Actor      string
	Comment    *string
	CreatedAt  time.Time
}

type Order struct {
	id           uuid.UUID
	status       Status
	assignedTo   *uuid.UUID
	priority     int32
	trackingCode *string
	lastActivity time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

type Services struct {
	Clock clock.Clock
}

// NewOrder creates a pending order together with its seed audit event.
func NewOrder(services *Services, priority int32) (*Order, StatusEvent) {
	now := services.Clock.Now()
	o := &Order{
		id:           uuid.New(),
		status:       StatusPending,
		priority:     priority,
		lastActivity: now,
	}
	seed := StatusEvent{
		ID:        uuid.New(),
		OrderID:   o.id,
		ToStatus:  StatusPending,
		Actor:     ActorSystem,
		CreatedAt: now,
	}
	return o, seed
}

func ReconstructOrder(
	id uuid.UUID,
	status Status,
	assignedTo *uuid.UUID,
	priority int32,
	trackingCode *string,
	lastActivity, createdAt, updatedAt time.Time,
) *Order {
	return &Order{
		id:           id,
		status:       status,
		assignedTo:   assignedTo,
		priority:     priority,
		trackingCode: trackingCode,
		lastActivity: lastActivity,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// Transition validates the move to toStatus and returns the audit event
// describing it. The receiver is not mutated: the persistence layer owns
// committing the change, conditionally on the expected current status.
func (o *Order) Transition(toStatus Status, actor string, comment *string, now time.Time) (StatusEvent, error) {
	if actor == "" {
		return StatusEvent{}, ErrEmptyActor
	}
	if o.status.IsTerminal() {
		return StatusEvent{}, ErrTerminalStatus
	}
	if !o.status.CanTransitionTo(toStatus) {
		return StatusEvent{}, ErrInvalidTransition
	}

	from := o.status
	return StatusEvent{
		ID:         uuid.New(),
		OrderID:    o.id,
		FromStatus: &from,
		ToStatus:   toStatus,
		Actor:      actor,
		Comment:    comment,
		CreatedAt:  now,
	}, nil
}

func (o *Order) IsTerminal() bool {
	return o.status.IsTerminal()
}

func (o *Order) ID() uuid.UUID          { return o.id }
func (o *Order) Status() Status         { return o.status }
func (o *Order) AssignedTo() *uuid.UUID { return o.assignedTo }
func (o *Order) Priority() int32        { return o.priority }
func (o *Order) TrackingCode() *string  { return o.trackingCode }
func (o *Order) LastActivity() time.Time { return o.lastActivity }
func (o *Order) CreatedAt() time.Time   { return o.createdAt }
func (o *Order) UpdatedAt() time.Time   { return o.updatedAt }
