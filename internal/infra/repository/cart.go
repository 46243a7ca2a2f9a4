package repository

import (
	"context"
	"time"

	"ordersync/internal/domain/cart"
	"ordersync/internal/infra"
	"ordersync/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CartRepository struct{}

func NewCartRepository() *CartRepository {
	return &CartRepository{}
}

// FindForUpdate loads the cart session with a row lock so the revision
// check and the write commit atomically. A missing session is created on
// the fly; carts come into being on first mutation.
func (r *CartRepository) FindForUpdate(ctx context.Context, tx db.DBTX, sessionID uuid.UUID) (*cart.Session, error) {
	row := tx.QueryRow(ctx, `
		INSERT INTO carts (id, revision, last_modified, created_at)
		VALUES ($1, 0, now(), now())
		ON CONFLICT (id) DO UPDATE SET id = EXCLUDED.id
		RETURNING id, revision, last_modified, created_at`,
		sessionID,
	)

	var (
		id                      uuid.UUID
		revision                int64
		lastModified, createdAt time.Time
	)
	if err := row.Scan(&id, &revision, &lastModified, &createdAt); err != nil {
		return nil, infra.WrapRepoErr("failed to lock cart session", err)
	}

	lines, err := r.findLines(ctx, tx, sessionID)
	if err != nil {
		return nil, err
	}

	return cart.ReconstructSession(id, lines, revision, lastModified, createdAt), nil
}

func (r *CartRepository) findLines(ctx context.Context, tx db.DBTX, sessionID uuid.UUID) ([]cart.Line, error) {
	rows, err := tx.Query(ctx, `
		SELECT product_id, quantity, unit_price_cents, added_at
		FROM cart_items
		WHERE cart_id = $1
		ORDER BY added_at, product_id`,
		sessionID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read cart lines", err)
	}
	defer rows.Close()

	var lines []cart.Line
	for rows.Next() {
		var line cart.Line
		if err := rows.Scan(&line.ProductID, &line.Quantity, &line.UnitPriceCents, &line.AddedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan cart line", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate cart lines", err)
	}
	return lines, nil
}

// Save persists the session's committed revision and replaces its lines.
func (r *CartRepository) Save(ctx context.Context, tx db.DBTX, s *cart.Session) error {
	tag, err := tx.Exec(ctx, `
		UPDATE carts
		SET revision = $2, last_modified = $3
		WHERE id = $1 AND revision < $2`,
		s.ID(), s.Revision(), s.LastModified(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update cart revision", err)
	}
	if tag.RowsAffected() == 0 {
		// Another writer committed this or a newer revision first.
		return infra.WrapRepoErr("cart revision already committed", pgx.ErrNoRows, infra.KindConflict)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE cart_id = $1`, s.ID()); err != nil {
		return infra.WrapRepoErr("failed to clear cart lines", err)
	}

	for _, line := range s.Lines() {
		_, err := tx.Exec(ctx, `
			INSERT INTO cart_items (cart_id, product_id, quantity, unit_price_cents, added_at)
			VALUES ($1, $2, $3, $4, $5)`,
			s.ID(), line.ProductID, line.Quantity, line.UnitPriceCents, line.AddedAt,
		)
		if err != nil {
			return infra.WrapRepoErr("failed to insert cart line", err)
		}
	}
	return nil
}
