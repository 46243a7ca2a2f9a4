package notify

import (
	"encoding/json"
	"time"

	"ordersync/internal/domain/order"
	"ordersync/internal/pkg/errs"

	"github.com/google/uuid"
)

// Notification channels. Each maps to one Sender in the dispatcher.
const (
	KindEmail = "email"
	KindPush  = "push"
)

const (
	TopicOrderConfirmation = "order.confirmation"
	TopicOrderTracking     = "order.tracking"
	TopicOrderCancelled    = "order.cancelled"
	TopicOrderDelivered    = "order.delivered"
	TopicCartRecovery      = "cart.recovery"
)

// JobSpec is a notification to enqueue alongside a committed state change.
type JobSpec struct {
	Kind    string
	Topic   string
	Payload []byte
}

type orderPayload struct {
	OrderID      uuid.UUID `json:"orderId"`
	ToStatus     string    `json:"toStatus"`
	Actor        string    `json:"actor"`
	TrackingCode *string   `json:"trackingCode,omitempty"`
	OccurredAt   time.Time `json:"occurredAt"`
}

type recoveryPayload struct {
	SessionID    uuid.UUID `json:"sessionId"`
	Email        string    `json:"email"`
	DiscountCode string    `json:"discountCode"`
	IssuedAt     time.Time `json:"issuedAt"`
}

// PlanForTransition decides which customer notifications a status change
// produces. Entering processing confirms the order, shipped sends the
// tracking code, cancelled sends the cancellation notice and terminal
// delivery gets a push. Statuses not listed here notify nobody.
func PlanForTransition(ev order.StatusEvent, trackingCode *string) ([]JobSpec, error) {
	payload, err := json.Marshal(orderPayload{
		OrderID:      ev.OrderID,
		ToStatus:     ev.ToStatus.String(),
		Actor:        ev.Actor,
		TrackingCode: trackingCode,
		OccurredAt:   ev.CreatedAt,
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to marshal notification payload")
	}

	switch ev.ToStatus {
	case order.StatusProcessing:
		return []JobSpec{{Kind: KindEmail, Topic: TopicOrderConfirmation, Payload: payload}}, nil
	case order.StatusShipped:
		return []JobSpec{
			{Kind: KindEmail, Topic: TopicOrderTracking, Payload: payload},
			{Kind: KindPush, Topic: TopicOrderTracking, Payload: payload},
		}, nil
	case order.StatusCancelled:
		return []JobSpec{{Kind: KindEmail, Topic: TopicOrderCancelled, Payload: payload}}, nil
	case order.StatusDelivered:
		return []JobSpec{{Kind: KindPush, Topic: TopicOrderDelivered, Payload: payload}}, nil
	default:
		return nil, nil
	}
}

// PlanForRecovery builds the single abandoned-cart email job.
func PlanForRecovery(sessionID uuid.UUID, email, discountCode string, issuedAt time.Time) (JobSpec, error) {
	payload, err := json.Marshal(recoveryPayload{
		SessionID:    sessionID,
		Email:        email,
		DiscountCode: discountCode,
		IssuedAt:     issuedAt,
	})
	if err != nil {
		return JobSpec{}, errs.Wrap(err, "failed to marshal recovery payload")
	}
	return JobSpec{Kind: KindEmail, Topic: TopicCartRecovery, Payload: payload}, nil
}
