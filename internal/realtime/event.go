package realtime

import (
	"time"

	"ordersync/internal/domain/order"

	"github.com/google/uuid"
)

const EventTypeStatusChanged = "order.status_changed"

// StatusChangedEvent is the wire shape pushed to subscribers. Delivery is
// best effort; the authoritative record stays in order_status_history.
type StatusChangedEvent struct {
	Type       string    `json:"type"`
	OrderID    uuid.UUID `json:"orderId"`
	FromStatus *string   `json:"fromStatus,omitempty"`
	ToStatus   string    `json:"toStatus"`
	Actor      string    `json:"actor"`
	Timestamp  time.Time `json:"timestamp"`
	Comment    *string   `json:"comment,omitempty"`
}

func NewStatusChangedEvent(ev order.StatusEvent) StatusChangedEvent {
	var from *string
	if ev.FromStatus != nil {
		s := ev.FromStatus.String()
		from = &s
	}
	return StatusChangedEvent{
		Type:       EventTypeStatusChanged,
		OrderID:    ev.OrderID,
		FromStatus: from,
		ToStatus:   ev.ToStatus.String(),
		Actor:      ev.Actor,
		Timestamp:  ev.CreatedAt,
		Comment:    ev.Comment,
	}
}
