//go:build unit

package notify_test

import (
	"context"
	"log/slog"
	"testing"

	"ordersync/internal/infra/repository"
	"ordersync/internal/notify"
	"ordersync/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPushSender_SkipsWithoutVAPIDKeys(t *testing.T) {
	sender := notify.NewPushSender(config.PushConfig{}, slog.Default())

	err := sender.Send(context.Background(), repository.NotificationJob{
		ID:    uuid.New(),
		Kind:  notify.KindPush,
		Topic: notify.TopicOrderDelivered,
	})

	assert.ErrorIs(t, err, notify.ErrSkip)
}

func TestPushSender_DeliversWhenConfigured(t *testing.T) {
	sender := notify.NewPushSender(config.PushConfig{
		VAPIDPublicKey:  "pub",
		VAPIDPrivateKey: "priv",
	}, slog.Default())

	err := sender.Send(context.Background(), repository.NotificationJob{
		ID:    uuid.New(),
		Kind:  notify.KindPush,
		Topic: notify.TopicOrderTracking,
	})

	assert.NoError(t, err)
}
