package repository

import (
	"context"
	"time"

	"ordersync/internal/infra"
	"ordersync/internal/infra/db"

	"github.com/google/uuid"
)

type RecoveryEventRepository struct{}

func NewRecoveryEventRepository() *RecoveryEventRepository {
	return &RecoveryEventRepository{}
}

// RecordEvent appends one funnel event (email_sent, link_opened,
// cart_restored, ...) for recovery conversion reporting.
func (r *RecoveryEventRepository) RecordEvent(ctx context.Context, tx db.DBTX, sessionID uuid.UUID, event string, now time.Time) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO cart_recovery_events (id, session_id, event, created_at)
		VALUES ($1, $2, $3, $4)`,
		uuid.New(), sessionID, event, now,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to record recovery event", err)
	}
	return nil
}
