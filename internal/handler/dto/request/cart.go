package request

import (
	"ordersync/internal/usecase/commands"

	"github.com/google/uuid"
)

// SetCartItemRequest carries one client mutation. Revision is the
// client's next revision, not the committed one; the server rejects
// anything it has already applied.
type SetCartItemRequest struct {
	Quantity       int32 `json:"quantity" binding:"min=0"`
	UnitPriceCents int64 `json:"unit_price_cents" binding:"omitempty,min=0"`
	Revision       int64 `json:"revision" binding:"required,min=1"`
}

func (r *SetCartItemRequest) ToInput(sessionID, productID uuid.UUID) commands.SetItemQuantityInput {
	return commands.SetItemQuantityInput{
		SessionID:      sessionID,
		ProductID:      productID,
		Quantity:       r.Quantity,
		UnitPriceCents: r.UnitPriceCents,
		Revision:       r.Revision,
	}
}
