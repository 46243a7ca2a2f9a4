package readstore

import (
	"context"

	"ordersync/internal/infra"
	"ordersync/internal/infra/db"
	"ordersync/internal/pkg/pgconv"
	"ordersync/internal/usecase/queries"

	"github.com/google/uuid"
)

type CartReadStore struct {
	db db.DBTX
}

func NewCartReadStore(dbtx db.DBTX) *CartReadStore {
	return &CartReadStore{db: dbtx}
}

func (r *CartReadStore) FindBySession(ctx context.Context, sessionID uuid.UUID) (*queries.CartView, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, revision, last_modified
		FROM carts
		WHERE id = $1`,
		sessionID,
	)

	var view queries.CartView
	if err := row.Scan(&view.SessionID, &view.Revision, &view.LastModified); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("cart not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find cart", err)
	}

	rows, err := r.db.Query(ctx, `
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

	for rows.Next() {
		var line queries.CartLineView
		if err := rows.Scan(&line.ProductID, &line.Quantity, &line.UnitPriceCents, &line.AddedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan cart line", err)
		}
		view.TotalCents += int64(line.Quantity) * line.UnitPriceCents
		view.Lines = append(view.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate cart lines", err)
	}

	return &view, nil
}
