//go:build unit

package notify_test

import (
	"encoding/json"
	"testing"
	"time"

	"ordersync/internal/domain/order"
	"ordersync/internal/notify"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statusEvent(to order.Status) order.StatusEvent {
	from := order.StatusPending
	return order.StatusEvent{
		ID:         uuid.New(),
		OrderID:    uuid.New(),
		FromStatus: &from,
		ToStatus:   to,
		Actor:      "ops@example.com",
		CreatedAt:  time.Now(),
	}
}

func TestPlanForTransition(t *testing.T) {
	tests := []struct {
		name       string
		toStatus   order.Status
		wantTopics map[string]string // kind -> topic
	}{
		{
			name:       "processing confirms by email",
			toStatus:   order.StatusProcessing,
			wantTopics: map[string]string{notify.KindEmail: notify.TopicOrderConfirmation},
		},
		{
			name:     "shipped sends tracking on email and push",
			toStatus: order.StatusShipped,
			wantTopics: map[string]string{
				notify.KindEmail: notify.TopicOrderTracking,
				notify.KindPush:  notify.TopicOrderTracking,
			},
		},
		{
			name:       "cancelled sends the cancellation notice",
			toStatus:   order.StatusCancelled,
			wantTopics: map[string]string{notify.KindEmail: notify.TopicOrderCancelled},
		},
		{
			name:       "delivered pushes only",
			toStatus:   order.StatusDelivered,
			wantTopics: map[string]string{notify.KindPush: notify.TopicOrderDelivered},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobs, err := notify.PlanForTransition(statusEvent(tt.toStatus), nil)
			require.NoError(t, err)
			require.Len(t, jobs, len(tt.wantTopics))
			for _, job := range jobs {
				assert.Equal(t, tt.wantTopics[job.Kind], job.Topic)
			}
		})
	}
}

func TestPlanForTransition_PendingNotifiesNobody(t *testing.T) {
	jobs, err := notify.PlanForTransition(statusEvent(order.StatusPending), nil)
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestPlanForTransition_CarriesTrackingCode(t *testing.T) {
	code := "TRACK-123"
	jobs, err := notify.PlanForTransition(statusEvent(order.StatusShipped), &code)
	require.NoError(t, err)
	require.NotEmpty(t, jobs)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(jobs[0].Payload, &payload))
	assert.Equal(t, code, payload["trackingCode"])
	assert.Equal(t, order.StatusShipped.String(), payload["toStatus"])
}

func TestPlanForRecovery(t *testing.T) {
	sessionID := uuid.New()
	job, err := notify.PlanForRecovery(sessionID, "shopper@example.com", "COMEBACK-abc123", time.Now())
	require.NoError(t, err)

	assert.Equal(t, notify.KindEmail, job.Kind)
	assert.Equal(t, notify.TopicCartRecovery, job.Topic)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(job.Payload, &payload))
	assert.Equal(t, sessionID.String(), payload["sessionId"])
	assert.Equal(t, "COMEBACK-abc123", payload["discountCode"])
}
