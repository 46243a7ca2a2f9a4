package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type OrderView struct {
	ID           uuid.UUID         `json:"id"`
	Status       string            `json:"status"`
	AssignedTo   *uuid.UUID        `json:"assigned_to,omitempty"`
	Priority     int32             `json:"priority"`
	TrackingCode *string           `json:"tracking_code,omitempty"`
	LastActivity time.Time         `json:"last_activity"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
	History      []StatusEventView `json:"history"`
}

type StatusEventView struct {
	ID         uuid.UUID `json:"id"`
	OrderID    uuid.UUID `json:"order_id"`
	FromStatus *string   `json:"from_status,omitempty"`
	ToStatus   string    `json:"to_status"`
	Actor      string    `json:"actor"`
	Comment    *string   `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// OrderStatsView is the unified aggregate the admin dashboard polls.
type OrderStatsView struct {
	Counts    map[string]int64 `json:"counts"`
	Total     int64            `json:"total"`
	FetchedAt time.Time        `json:"fetched_at"`
	FromCache bool             `json:"from_cache"`
}

type CartView struct {
	SessionID    uuid.UUID      `json:"session_id"`
	Lines        []CartLineView `json:"lines"`
	Revision     int64          `json:"revision"`
	TotalCents   int64          `json:"total_cents"`
	LastModified time.Time      `json:"last_modified"`
}

type CartLineView struct {
	ProductID      uuid.UUID `json:"product_id"`
	Quantity       int32     `json:"quantity"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	AddedAt        time.Time `json:"added_at"`
}

// NotificationFailureView surfaces exhausted notification jobs in the
// admin audit view.
type NotificationFailureView struct {
	ID        uuid.UUID `json:"id"`
	OrderID   uuid.UUID `json:"order_id"`
	Kind      string    `json:"kind"`
	Topic     string    `json:"topic"`
	Attempts  int32     `json:"attempts"`
	LastError *string   `json:"last_error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
