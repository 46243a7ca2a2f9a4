package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "ordersync/internal/handler/dto/request"
	resdto "ordersync/internal/handler/dto/response"
	"ordersync/internal/handler/httperr"
	"ordersync/internal/handler/middleware"
	"ordersync/internal/pkg/errs"
	"ordersync/internal/usecase/commands"
	"ordersync/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	cmds commands.OrderCommands
	q    queries.OrderQueries
}

func NewOrderHandler(cmds commands.OrderCommands, q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{cmds: cmds, q: q}
}

// @Summary Create order
// @Description Create a pending order with its seed audit event
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateOrderRequest true "Create order request"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var req reqdto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Create order failed", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromOrderView(view))
}

// @Summary Get order
// @Description Full order state including the audit history; the pull
// @Description side of reconciliation
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrOrderNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load order", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

// @Summary Transition order status
// @Description Apply one status change; concurrent transitions of the
// @Description same order are serialized and losers get 409
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.TransitionOrderRequest true "Transition request"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /orders/{id}/transition [post]
func (h *OrderHandler) Transition(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}

	var req reqdto.TransitionOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	input, err := req.ToInput(id, userID.String())
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown status", nil)
		return
	}

	view, err := h.cmds.Transition(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrOrderNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
		case errors.Is(err, errs.ErrInvalidTransition):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Transition not allowed", nil)
		case errors.Is(err, errs.ErrConcurrentModification):
			httperr.AbortWithError(c, http.StatusConflict, err, "Order was modified concurrently", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Transition failed", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

// @Summary Unified order stats
// @Description Aggregate order counts for the admin dashboard
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.OrderStatsResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /orders/stats/unified [get]
func (h *OrderHandler) UnifiedStats(c *gin.Context) {
	view, err := h.q.UnifiedStats(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load stats", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderStatsView(view))
}

// @Summary Failed notifications
// @Description Notification jobs that exhausted their retries
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max rows" default(50)
// @Success 200 {array} resdto.NotificationFailureResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /orders/notifications/failed [get]
func (h *OrderHandler) FailedNotifications(c *gin.Context) {
	limit := int64(50)
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || parsed <= 0 {
			httperr.AbortWithError(c, http.StatusBadRequest, errs.New("invalid limit"), "Invalid limit", nil)
			return
		}
		limit = parsed
	}

	items, err := h.q.FailedNotifications(c.Request.Context(), int32(limit))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load notifications", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromNotificationFailures(items))
}
