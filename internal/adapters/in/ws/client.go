package ws

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"chefbook/internal/adapters/in/auth"
	"chefbook/internal/core/domain/model/kernel"
	"chefbook/internal/core/domain/model/order"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 30 * time.Second
	maxMessageSize = 4096
	sendBufferSize = 256
)

// PendingOrdersSource supplies the undecided orders pushed to a chef right
// after the connection authenticates.
type PendingOrdersSource interface {
	GetAllPendingForChef(ctx context.Context, chefID kernel.UUID) ([]*order.Order, error)
}

// Client is one websocket connection. It stays anonymous until an AUTH frame
// carrying a valid token arrives; until then every other frame is refused.
type Client struct {
	conn     *websocket.Conn
	registry *Registry
	parser   *auth.TokenParser
	pending  PendingOrdersSource
	logger   *slog.Logger

	send chan []byte

	mu        sync.Mutex
	closed    bool
	principal auth.Principal
	authed    bool
}

func newClient(
	conn *websocket.Conn,
	registry *Registry,
	parser *auth.TokenParser,
	pending PendingOrdersSource,
	logger *slog.Logger,
) *Client {
	return &Client{
		conn:     conn,
		registry: registry,
		parser:   parser,
		pending:  pending,
		logger:   logger,
		send:     make(chan []byte, sendBufferSize),
	}
}

// enqueue hands a frame to the write pump. A closed or full channel drops
// the frame and reports false.
func (c *Client) enqueue(data []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false
	}

	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

// closeSend shuts the outbound channel, which makes the write pump send a
// close frame and exit. Safe to call more than once.
func (c *Client) closeSend() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
}

func (c *Client) currentPrincipal() (auth.Principal, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.principal, c.authed
}

func (c *Client) bindPrincipal(p auth.Principal) {
	c.mu.Lock()
	c.principal = p
	c.authed = true
	c.mu.Unlock()

	c.registry.Bind(p.UserID, c)
}

func (c *Client) readPump() {
	defer func() {
		c.registry.Remove(c)
		c.closeSend()
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Warn("websocket read failed", "error", err)
			}
			return
		}

		c.handleFrame(message)
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) handleFrame(raw []byte) {
	var envelope Envelope
	if err := unmarshalEnvelope(raw, &envelope); err != nil {
		c.logger.Warn("discarding malformed frame", "error", err)
		return
	}

	switch envelope.Type {
	case TypeAuth:
		c.handleAuth(envelope)
	case TypeSubscribeOrder:
		c.handleSubscribe(envelope)
	case TypeChatTyping, TypeMarkRead:
		c.relayChat(envelope, raw)
	case TypeJoinGlobalChat:
		c.ack(TypeJoinGlobalChat, true, "")
	default:
		c.logger.Warn("discarding frame of unknown type", "type", string(envelope.Type))
	}
}

func (c *Client) handleAuth(envelope Envelope) {
	principal, err := c.parser.Parse(envelope.Token)
	if err != nil {
		c.logger.Warn("websocket auth rejected", "error", err)
		c.ack(TypeAuth, false, "invalid token")
		return
	}

	c.bindPrincipal(principal)
	c.ack(TypeAuth, true, "")

	if principal.IsChef() {
		c.pushPendingOrders(principal.UserID)
	}
}

// pushPendingOrders replays the chef's undecided orders so a reconnecting
// chef sees everything that arrived while offline.
func (c *Client) pushPendingOrders(chefID kernel.UUID) {
	orders, err := c.pending.GetAllPendingForChef(context.Background(), chefID)
	if err != nil {
		c.logger.Error("pending-order catch-up failed", "chef_id", chefID.String(), "error", err)
		return
	}

	now := time.Now().UTC()
	for _, aggregate := range orders {
		if data, ok := marshalOrDrop(NewOrderMessage(TypeNewOrder, aggregate, now)); ok {
			c.enqueue(data)
		}
	}
}

func (c *Client) handleSubscribe(envelope Envelope) {
	if _, ok := c.currentPrincipal(); !ok {
		c.ack(TypeSubscribeOrder, false, "authenticate first")
		return
	}

	orderID, err := kernel.UUIDFromString(envelope.OrderID)
	if err != nil {
		c.ack(TypeSubscribeOrder, false, "invalid order id")
		return
	}

	c.registry.Subscribe(orderID, c)
	c.ack(TypeSubscribeOrder, true, "")
}

// relayChat forwards the frame unchanged to the named recipient. The chat
// conversation itself lives elsewhere; this connection only carries the
// typing and read signals between its two parties.
func (c *Client) relayChat(envelope Envelope, raw []byte) {
	if _, ok := c.currentPrincipal(); !ok {
		return
	}

	recipientID, err := kernel.UUIDFromString(envelope.RecipientID)
	if err != nil {
		return
	}

	if recipient, ok := c.registry.Lookup(recipientID); ok {
		recipient.enqueue(raw)
	}
}

func (c *Client) ack(kind MessageType, ok bool, info string) {
	if data, marshaled := marshalOrDrop(AckMessage{Type: kind, OK: ok, Info: info}); marshaled {
		c.enqueue(data)
	}
}
