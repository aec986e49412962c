package ws

import (
	"log/slog"
	"net/http"

	"chefbook/internal/adapters/in/auth"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Handler upgrades HTTP requests to websocket connections and starts the
// pump loops for each client.
type Handler struct {
	registry *Registry
	parser   *auth.TokenParser
	pending  PendingOrdersSource
	logger   *slog.Logger
}

// NewHandler creates the websocket upgrade handler.
func NewHandler(
	registry *Registry,
	parser *auth.TokenParser,
	pending PendingOrdersSource,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		registry: registry,
		parser:   parser,
		pending:  pending,
		logger:   logger,
	}
}

// Serve handles GET /ws.
func (h *Handler) Serve(ctx echo.Context) error {
	conn, err := upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return nil
	}

	client := newClient(conn, h.registry, h.parser, h.pending, h.logger)
	go client.writePump()
	go client.readPump()
	return nil
}
