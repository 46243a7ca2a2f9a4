package commands

import (
	"context"
	"time"

	"ordersync/internal/domain/cart"
	"ordersync/internal/domain/order"
	"ordersync/internal/infra/db"
	"ordersync/internal/realtime"

	"github.com/google/uuid"
)

// Write-side ports. Implementations live under internal/infra; commands
// see only what they call so tests can mock at this seam.

type OrderRepository interface {
	Create(ctx context.Context, tx db.DBTX, o *order.Order) error
	FindForTransition(ctx context.Context, tx db.DBTX, orderID uuid.UUID) (*order.Order, error)
	UpdateStatusConditional(ctx context.Context, tx db.DBTX, orderID uuid.UUID, expected, next order.Status, now time.Time) (bool, error)
	AppendStatusEvent(ctx context.Context, tx db.DBTX, ev order.StatusEvent) error
}

type NotificationEnqueuer interface {
	CreateJob(ctx context.Context, tx db.DBTX, orderID uuid.UUID, kind, topic string, payload []byte, runAt time.Time) error
}

type CartRepository interface {
	FindForUpdate(ctx context.Context, tx db.DBTX, sessionID uuid.UUID) (*cart.Session, error)
	Save(ctx context.Context, tx db.DBTX, s *cart.Session) error
}

type RecoveryEventRecorder interface {
	RecordEvent(ctx context.Context, tx db.DBTX, sessionID uuid.UUID, event string, now time.Time) error
}

type RecoveryTokenStore interface {
	Issue(ctx context.Context, token cart.RecoveryToken) (cart.RecoveryToken, bool, error)
	Claim(ctx context.Context, discountCode string) (cart.RecoveryToken, error)
	Clear(ctx context.Context, sessionID uuid.UUID) error
}

// EventPublisher is the broadcast hub seen from the write side. Publish
// must not block; it is called after the owning transaction commits.
type EventPublisher interface {
	Publish(event realtime.StatusChangedEvent)
}

type CartCacheInvalidator interface {
	Invalidate(ctx context.Context, sessionID uuid.UUID)
}
