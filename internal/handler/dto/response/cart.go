package response

import (
	"ordersync/internal/usecase/commands"
	"ordersync/internal/usecase/queries"
)

type CartResponse struct {
	SessionID    string             `json:"session_id"`
	Lines        []CartLineResponse `json:"lines"`
	Revision     int64              `json:"revision"`
	TotalCents   int64              `json:"total_cents"`
	LastModified int64              `json:"last_modified"`
}

type CartLineResponse struct {
	ProductID      string `json:"product_id"`
	Quantity       int32  `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	AddedAt        int64  `json:"added_at"`
}

func FromCartView(v *queries.CartView) *CartResponse {
	lines := make([]CartLineResponse, len(v.Lines))
	for i, l := range v.Lines {
		lines[i] = CartLineResponse{
			ProductID:      l.ProductID.String(),
			Quantity:       l.Quantity,
			UnitPriceCents: l.UnitPriceCents,
			AddedAt:        l.AddedAt.Unix(),
		}
	}
	return &CartResponse{
		SessionID:    v.SessionID.String(),
		Lines:        lines,
		Revision:     v.Revision,
		TotalCents:   v.TotalCents,
		LastModified: v.LastModified.Unix(),
	}
}

type SetCartItemResponse struct {
	Revision       int64 `json:"revision"`
	AlreadyApplied bool  `json:"already_applied"`
}

func FromSetItemResult(r *commands.SetItemQuantityResult) *SetCartItemResponse {
	return &SetCartItemResponse{
		Revision:       r.Revision,
		AlreadyApplied: r.AlreadyApplied,
	}
}
