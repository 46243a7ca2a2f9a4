//go:build unit || e2e

package builder

import (
	"time"

	"ordersync/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderViewBuilder struct {
	view queries.OrderView
}

func NewOrderView() *OrderViewBuilder {
	now := time.Now()
	id := uuid.New()
	return &OrderViewBuilder{
		view: queries.OrderView{
			ID:           id,
			Status:       "pending",
			Priority:     0,
			LastActivity: now,
			CreatedAt:    now,
			UpdatedAt:    now,
			History: []queries.StatusEventView{
				{
					ID:        uuid.New(),
					OrderID:   id,
					ToStatus:  "pending",
					Actor:     "system",
					CreatedAt: now,
				},
			},
		},
	}
}

func (b *OrderViewBuilder) WithID(id uuid.UUID) *OrderViewBuilder {
	b.view.ID = id
	for i := range b.view.History {
		b.view.History[i].OrderID = id
	}
	return b
}

func (b *OrderViewBuilder) WithStatus(status string) *OrderViewBuilder {
	b.view.Status = status
	return b
}

func (b *OrderViewBuilder) WithHistory(events ...queries.StatusEventView) *OrderViewBuilder {
	b.view.History = events
	return b
}

func (b *OrderViewBuilder) Build() *queries.OrderView {
	view := b.view
	return &view
}

type CartViewBuilder struct {
	view queries.CartView
}

func NewCartView() *CartViewBuilder {
	return &CartViewBuilder{
		view: queries.CartView{
			SessionID:    uuid.New(),
			Revision:     1,
			LastModified: time.Now(),
		},
	}
}

func (b *CartViewBuilder) WithSessionID(id uuid.UUID) *CartViewBuilder {
	b.view.SessionID = id
	return b
}

func (b *CartViewBuilder) WithRevision(revision int64) *CartViewBuilder {
	b.view.Revision = revision
	return b
}

func (b *CartViewBuilder) WithLine(productID uuid.UUID, quantity int32, unitPriceCents int64) *CartViewBuilder {
	b.view.Lines = append(b.view.Lines, queries.CartLineView{
		ProductID:      productID,
		Quantity:       quantity,
		UnitPriceCents: unitPriceCents,
		AddedAt:        time.Now(),
	})
	b.view.TotalCents += int64(quantity) * unitPriceCents
	return b
}

func (b *CartViewBuilder) Build() *queries.CartView {
	view := b.view
	return &view
}

func NewOrderStatsView() *queries.OrderStatsView {
	return &queries.OrderStatsView{
		Counts: map[string]int64{
			"pending":    2,
			"processing": 1,
			"shipped":    1,
			"delivered":  1,
		},
		Total:     5,
		FetchedAt: time.Now(),
		FromCache: true,
	}
}
