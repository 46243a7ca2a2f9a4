package response

import (
	"ordersync/internal/usecase/commands"
)

type SendRecoveryEmailResponse struct {
	DiscountCode string `json:"discount_code"`
	AlreadySent  bool   `json:"already_sent"`
}

func FromRecoveryEmailResult(r *commands.SendRecoveryEmailResult) *SendRecoveryEmailResponse {
	return &SendRecoveryEmailResponse{
		DiscountCode: r.DiscountCode,
		AlreadySent:  r.AlreadySent,
	}
}

type ClaimRecoveryTokenResponse struct {
	SessionID    string `json:"session_id"`
	DiscountCode string `json:"discount_code"`
}

func FromClaimResult(r *commands.ClaimRecoveryTokenResult) *ClaimRecoveryTokenResponse {
	return &ClaimRecoveryTokenResponse{
		SessionID:    r.SessionID.String(),
		DiscountCode: r.DiscountCode,
	}
}
