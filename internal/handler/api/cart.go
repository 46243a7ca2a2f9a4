package api

import (
	"errors"
	"net/http"

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

// CartHandler serves the authenticated customer's own cart. The session
// id is the user id; every browser tab of the same customer converges on
// the same server-side cart.
type CartHandler struct {
	cmds commands.CartCommands
	q    queries.CartQueries
}

func NewCartHandler(cmds commands.CartCommands, q queries.CartQueries) *CartHandler {
	return &CartHandler{cmds: cmds, q: q}
}

// @Summary Get cart
// @Description Authoritative cart state with its committed revision; the
// @Description pull side of cross-tab reconciliation
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CartResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	sessionID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}

	view, err := h.q.GetBySession(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, errs.ErrCartNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Cart not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load cart", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Set cart item quantity
// @Description Apply one revisioned mutation; quantity 0 removes the
// @Description line, a replayed revision returns 200 with already_applied
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body reqdto.SetCartItemRequest true "Set quantity request"
// @Success 200 {object} resdto.SetCartItemResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /cart/items/{id} [put]
func (h *CartHandler) SetItem(c *gin.Context) {
	sessionID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product id", nil)
		return
	}

	var req reqdto.SetCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.SetItemQuantity(c.Request.Context(), req.ToInput(sessionID, productID))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidCartQuantity):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid quantity", nil)
		case errors.Is(err, errs.ErrStaleCartRevision):
			httperr.AbortWithError(c, http.StatusConflict, err, "Cart was modified concurrently", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Cart update failed", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromSetItemResult(result))
}
