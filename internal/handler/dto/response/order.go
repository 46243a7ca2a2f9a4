package response

import (
	"ordersync/internal/usecase/queries"
)

type OrderResponse struct {
	ID           string                `json:"id"`
	Status       string                `json:"status"`
	AssignedTo   *string               `json:"assigned_to,omitempty"`
	Priority     int32                 `json:"priority"`
	TrackingCode *string               `json:"tracking_code,omitempty"`
	LastActivity int64                 `json:"last_activity"`
	CreatedAt    int64                 `json:"created_at"`
	UpdatedAt    int64                 `json:"updated_at"`
	History      []StatusEventResponse `json:"history"`
}

type StatusEventResponse struct {
	ID         string  `json:"id"`
	FromStatus *string `json:"from_status,omitempty"`
	ToStatus   string  `json:"to_status"`
	Actor      string  `json:"actor"`
	Comment    *string `json:"comment,omitempty"`
	CreatedAt  int64   `json:"created_at"`
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	var assignedTo *string
	if v.AssignedTo != nil {
		s := v.AssignedTo.String()
		assignedTo = &s
	}

	history := make([]StatusEventResponse, len(v.History))
	for i, ev := range v.History {
		history[i] = StatusEventResponse{
			ID:         ev.ID.String(),
			FromStatus: ev.FromStatus,
			ToStatus:   ev.ToStatus,
			Actor:      ev.Actor,
			Comment:    ev.Comment,
			CreatedAt:  ev.CreatedAt.Unix(),
		}
	}

	return &OrderResponse{
		ID:           v.ID.String(),
		Status:       v.Status,
		AssignedTo:   assignedTo,
		Priority:     v.Priority,
		TrackingCode: v.TrackingCode,
		LastActivity: v.LastActivity.Unix(),
		CreatedAt:    v.CreatedAt.Unix(),
		UpdatedAt:    v.UpdatedAt.Unix(),
		History:      history,
	}
}

type OrderStatsResponse struct {
	Counts    map[string]int64 `json:"counts"`
	Total     int64            `json:"total"`
	FetchedAt int64            `json:"fetched_at"`
	FromCache bool             `json:"from_cache"`
}

func FromOrderStatsView(v *queries.OrderStatsView) *OrderStatsResponse {
	return &OrderStatsResponse{
		Counts:    v.Counts,
		Total:     v.Total,
		FetchedAt: v.FetchedAt.Unix(),
		FromCache: v.FromCache,
	}
}

type NotificationFailureResponse struct {
	ID        string  `json:"id"`
	OrderID   string  `json:"order_id"`
	Kind      string  `json:"kind"`
	Topic     string  `json:"topic"`
	Attempts  int32   `json:"attempts"`
	LastError *string `json:"last_error,omitempty"`
	CreatedAt int64   `json:"created_at"`
	UpdatedAt int64   `json:"updated_at"`
}

func FromNotificationFailures(items []*queries.NotificationFailureView) []*NotificationFailureResponse {
	res := make([]*NotificationFailureResponse, len(items))
	for i, it := range items {
		res[i] = &NotificationFailureResponse{
			ID:        it.ID.String(),
			OrderID:   it.OrderID.String(),
			Kind:      it.Kind,
			Topic:     it.Topic,
			Attempts:  it.Attempts,
			LastError: it.LastError,
			CreatedAt: it.CreatedAt.Unix(),
			UpdatedAt: it.UpdatedAt.Unix(),
		}
	}
	return res
}
