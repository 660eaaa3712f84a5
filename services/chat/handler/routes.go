package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/tukangku/server/internal/pkg/middleware"
	"github.com/tukangku/server/internal/pkg/models"
	handler_http "github.com/tukangku/server/services/chat/handler/http"
	handler_nats "github.com/tukangku/server/services/chat/handler/nats"
	handler_ws "github.com/tukangku/server/services/chat/handler/websocket"
)

// Handler coordinates all protocol handlers for the chat service
type Handler struct {
	chatHandler *handler_http.ChatHandler
	wsHandler   *handler_ws.ChatWSHandler
	natsHandler *handler_nats.NatsHandler
	cfg         *models.Config
}

// NewHandler creates and initializes all chat handlers
func NewHandler(
	chatHandler *handler_http.ChatHandler,
	wsHandler *handler_ws.ChatWSHandler,
	natsHandler *handler_nats.NatsHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		chatHandler: chatHandler,
		wsHandler:   wsHandler,
		natsHandler: natsHandler,
		cfg:         cfg,
	}
}

// RegisterRoutes registers the chat routes and starts the NATS consumers
func (h *Handler) RegisterRoutes(e *echo.Echo) error {
	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)

	group := e.Group("/chat", auth)
	group.GET("/history/:roomId", h.chatHandler.History)
	group.POST("/read", h.chatHandler.MarkRead)

	// the websocket upgrade authenticates its own bearer token
	e.GET("/ws", h.wsHandler.HandleWebSocket)

	return h.natsHandler.InitConsumers()
}
