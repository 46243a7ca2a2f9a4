package request

import (
	"ordersync/internal/usecase/commands"

	"github.com/google/uuid"
)

type SendRecoveryEmailRequest struct {
	SessionID uuid.UUID `json:"session_id" binding:"required"`
	Email     string    `json:"email" binding:"required,email"`
}

func (r *SendRecoveryEmailRequest) ToInput() commands.SendRecoveryEmailInput {
	return commands.SendRecoveryEmailInput{
		SessionID: r.SessionID,
		Email:     r.Email,
	}
}

type TrackRecoveryEventRequest struct {
	SessionID uuid.UUID `json:"session_id" binding:"required"`
	Event     string    `json:"event" binding:"required,oneof=email_sent link_opened cart_restored"`
}

type ClaimRecoveryTokenRequest struct {
	DiscountCode string `json:"discount_code" binding:"required"`
}
