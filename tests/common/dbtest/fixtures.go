//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// CreateTestOrder inserts an order in the given status with its seed
// history event, the shape the transition command expects to find.
func CreateTestOrder(t *testing.T, db DBLike, status string) uuid.UUID {
	t.Helper()

	orderID := uuid.New()
	ctx := context.Background()
	now := time.Now()

	_, err := db.Exec(ctx, `
		INSERT INTO orders (id, status, priority, last_activity, created_at, updated_at)
		VALUES ($1, $2, 0, $3, $3, $3)`,
		orderID, status, now)
	require.NoError(t, err)

	_, err = db.Exec(ctx, `
		INSERT INTO order_status_history (id, order_id, from_status, to_status, actor, created_at)
		VALUES ($1, $2, NULL, $3, 'system', $4)`,
		uuid.New(), orderID, status, now)
	require.NoError(t, err)

	return orderID
}

// CreateTestCart inserts a cart at the given revision with one line.
func CreateTestCart(t *testing.T, db DBLike, sessionID uuid.UUID, revision int64) uuid.UUID {
	t.Helper()

	productID := uuid.New()
	ctx := context.Background()
	now := time.Now()

	_, err := db.Exec(ctx, `
		INSERT INTO carts (id, revision, last_modified, created_at)
		VALUES ($1, $2, $3, $3)
		ON CONFLICT (id) DO UPDATE SET revision = EXCLUDED.revision`,
		sessionID, revision, now)
	require.NoError(t, err)

	_, err = db.Exec(ctx, `
		INSERT INTO cart_items (cart_id, product_id, quantity, unit_price_cents, added_at)
		VALUES ($1, $2, 1, 999, $3)`,
		sessionID, productID, now)
	require.NoError(t, err)

	return productID
}

func CountStatusEvents(t *testing.T, db DBLike, orderID uuid.UUID) int {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(),
		`SELECT count(*) FROM order_status_history WHERE order_id = $1`, orderID).Scan(&count)
	require.NoError(t, err)
	return count
}

func CountNotificationJobs(t *testing.T, db DBLike, orderID uuid.UUID, status string) int {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(),
		`SELECT count(*) FROM order_notifications WHERE order_id = $1 AND status = $2`,
		orderID, status).Scan(&count)
	require.NoError(t, err)
	return count
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between subtests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
