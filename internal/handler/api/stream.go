package api

import (
	"log/slog"
	"net/http"

	"ordersync/internal/handler/middleware"
	"ordersync/internal/pkg/config"
	"ordersync/internal/pkg/jwt"
	"ordersync/internal/realtime"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type StreamHandler struct {
	hub      *realtime.Hub
	cfg      config.StreamConfig
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

func NewStreamHandler(hub *realtime.Hub, cfg config.StreamConfig, logger *slog.Logger) *StreamHandler {
	return &StreamHandler{
		hub: hub,
		cfg: cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Cross-origin policy is enforced by the CORS middleware on
			// the handshake request.
			CheckOrigin: func(_ *http.Request) bool { return true },
		},
		logger: logger,
	}
}

// @Summary Order event stream
// @Description Upgrade to a websocket carrying order.status_changed
// @Description events; clients send subscribe/unsubscribe messages
// @Tags stream
// @Security BearerAuth
// @Success 101
// @Failure 401 {object} map[string]string
// @Router /ws [get]
func (h *StreamHandler) Serve(c *gin.Context) {
	role, ok := middleware.GetUserRole(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	connRole := realtime.RoleCustomer
	if role == jwt.RoleAdmin {
		connRole = realtime.RoleAdmin
	}

	ws, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the handshake failure response.
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	conn := realtime.NewConn(ws, h.hub, connRole, h.cfg, h.logger)
	conn.Serve()
}
