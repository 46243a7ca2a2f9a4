package api

import (
	"errors"
	"net/http"

	reqdto "ordersync/internal/handler/dto/request"
	resdto "ordersync/internal/handler/dto/response"
	"ordersync/internal/handler/httperr"
	"ordersync/internal/pkg/errs"
	"ordersync/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type RecoveryHandler struct {
	cmds commands.RecoveryCommands
}

func NewRecoveryHandler(cmds commands.RecoveryCommands) *RecoveryHandler {
	return &RecoveryHandler{cmds: cmds}
}

// @Summary Send recovery email
// @Description Issue the session's recovery token and enqueue the
// @Description abandonment email; at most one per idle period
// @Tags cart-recovery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SendRecoveryEmailRequest true "Recovery email request"
// @Success 200 {object} resdto.SendRecoveryEmailResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /cart-recovery/email [post]
func (h *RecoveryHandler) SendEmail(c *gin.Context) {
	var req reqdto.SendRecoveryEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.SendRecoveryEmail(c.Request.Context(), req.ToInput())
	if err != nil {
		if errors.Is(err, errs.ErrRecoveryDisabled) {
			httperr.AbortWithError(c, http.StatusForbidden, err, "Cart recovery is disabled", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Recovery email failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRecoveryEmailResult(result))
}

// @Summary Track recovery funnel event
// @Description Record one funnel event for recovery conversion reporting
// @Tags cart-recovery
// @Accept json
// @Produce json
// @Param request body reqdto.TrackRecoveryEventRequest true "Funnel event"
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /cart-recovery/track [post]
func (h *RecoveryHandler) Track(c *gin.Context) {
	var req reqdto.TrackRecoveryEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.cmds.TrackRecoveryEvent(c.Request.Context(), req.SessionID, req.Event); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Tracking failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Claim recovery token
// @Description Consume the discount code from a recovery link; exactly
// @Description one claim per code succeeds
// @Tags cart-recovery
// @Accept json
// @Produce json
// @Param request body reqdto.ClaimRecoveryTokenRequest true "Claim request"
// @Success 200 {object} resdto.ClaimRecoveryTokenResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /cart-recovery/claim [post]
func (h *RecoveryHandler) Claim(c *gin.Context) {
	var req reqdto.ClaimRecoveryTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.ClaimRecoveryToken(c.Request.Context(), req.DiscountCode)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrRecoveryDisabled):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Cart recovery is disabled", nil)
		case errors.Is(err, errs.ErrRecoveryTokenNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Unknown discount code", nil)
		case errors.Is(err, errs.ErrRecoveryTokenConsumed):
			httperr.AbortWithError(c, http.StatusConflict, err, "Discount code already used", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Claim failed", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromClaimResult(result))
}
