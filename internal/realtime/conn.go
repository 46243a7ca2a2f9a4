package realtime

import (
	"encoding/json"
	"log/slog"
	"time"

	"ordersync/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	messageTypeSubscribe   = "subscribe"
	messageTypeUnsubscribe = "unsubscribe"

	maxInboundMessageSize = 4096
)

// inboundMessage is what clients send over the socket. Subscribe replaces
// the connection's interest set; unsubscribe empties it without closing.
type inboundMessage struct {
	Type     string      `json:"type"`
	Role     string      `json:"role,omitempty"`
	OrderIDs []uuid.UUID `json:"orderIds,omitempty"`
}

// Conn ties one websocket to the hub. The read pump handles subscribe and
// unsubscribe messages plus pong deadlines; the write pump drains the
// subscriber mailbox and sends pings. Either pump exiting tears the
// connection down and detaches it from the hub.
type Conn struct {
	ws   *websocket.Conn
	hub  *Hub
	sub  *Subscriber
	role Role
	cfg  config.StreamConfig

	logger *slog.Logger
}

func NewConn(ws *websocket.Conn, hub *Hub, role Role, cfg config.StreamConfig, logger *slog.Logger) *Conn {
	return &Conn{
		ws:     ws,
		hub:    hub,
		role:   role,
		cfg:    cfg,
		logger: logger,
	}
}

// Serve runs both pumps and blocks until the connection is gone. The
// caller owns the websocket handshake; Serve owns everything after it.
func (c *Conn) Serve() {
	c.sub = c.hub.Subscribe(c.role, nil, c.cfg.SendBufferSize)

	go c.writePump()
	c.readPump()
}

func (c *Conn) readPump() {
	defer func() {
		c.hub.Unsubscribe(c.sub)
		_ = c.ws.Close()
	}()

	c.ws.SetReadLimit(maxInboundMessageSize)
	pongWait := c.cfg.HeartbeatInterval + c.cfg.WriteTimeout
	_ = c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn("websocket read failed", "subscriber_id", c.sub.ID(), "error", err)
			}
			return
		}

		var msg inboundMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			c.logger.Warn("ignoring malformed stream message", "subscriber_id", c.sub.ID(), "error", err)
			continue
		}
		c.handleMessage(msg)
	}
}

func (c *Conn) handleMessage(msg inboundMessage) {
	switch msg.Type {
	case messageTypeSubscribe:
		// Customers may only follow orders by id; the wildcard form is
		// reserved for admins and already enforced by the hub.
		if c.role != RoleAdmin && len(msg.OrderIDs) == 0 {
			c.logger.Warn("customer subscribe without order ids", "subscriber_id", c.sub.ID())
			return
		}
		c.hub.Resubscribe(c.sub, msg.OrderIDs)
	case messageTypeUnsubscribe:
		c.hub.Resubscribe(c.sub, []uuid.UUID{})
	default:
		c.logger.Warn("unknown stream message type", "subscriber_id", c.sub.ID(), "type", msg.Type)
	}
}

func (c *Conn) writePump() {
	ticker := time.NewTicker(c.cfg.HeartbeatInterval)
	defer func() {
		ticker.Stop()
		_ = c.ws.Close()
	}()

	for {
		select {
		case event := <-c.sub.Events():
			_ = c.ws.SetWriteDeadline(time.Now().Add(c.cfg.WriteTimeout))
			if err := c.ws.WriteJSON(event); err != nil {
				c.logger.Warn("websocket write failed", "subscriber_id", c.sub.ID(), "error", err)
				return
			}
		case <-ticker.C:
			_ = c.ws.SetWriteDeadline(time.Now().Add(c.cfg.WriteTimeout))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.sub.Done():
			_ = c.ws.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(c.cfg.WriteTimeout))
			return
		}
	}
}
