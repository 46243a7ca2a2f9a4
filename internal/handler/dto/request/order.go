package request

import (
	"ordersync/internal/domain/order"
	"ordersync/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateOrderRequest struct {
	Priority int32 `json:"priority" binding:"omitempty,min=0,max=10"`
}

func (r *CreateOrderRequest) ToInput() commands.CreateOrderInput {
	return commands.CreateOrderInput{Priority: r.Priority}
}

type TransitionOrderRequest struct {
	ToStatus string  `json:"to_status" binding:"required"`
	Comment  *string `json:"comment" binding:"omitempty,max=500"`
}

func (r *TransitionOrderRequest) ToInput(orderID uuid.UUID, actor string) (commands.TransitionOrderInput, error) {
	toStatus, err := order.ParseStatus(r.ToStatus)
	if err != nil {
		return commands.TransitionOrderInput{}, err
	}
	return commands.TransitionOrderInput{
		OrderID:  orderID,
		ToStatus: toStatus,
		Actor:    actor,
		Comment:  r.Comment,
	}, nil
}
