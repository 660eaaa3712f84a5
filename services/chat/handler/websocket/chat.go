package websocket

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/tukangku/server/internal/pkg/apperr"
	"github.com/tukangku/server/internal/pkg/constants"
	"github.com/tukangku/server/internal/pkg/logger"
	"github.com/tukangku/server/internal/pkg/models"
	wspkg "github.com/tukangku/server/internal/pkg/websocket"
	"github.com/tukangku/server/services/chat"
)

// ChatWSHandler handles websocket connections for the chat relay
type ChatWSHandler struct {
	chatUC  chat.ChatUC
	manager *wspkg.Manager
}

// NewChatWSHandler creates a new chat websocket handler instance
func NewChatWSHandler(chatUC chat.ChatUC, manager *wspkg.Manager) *ChatWSHandler {
	return &ChatWSHandler{
		chatUC:  chatUC,
		manager: manager,
	}
}

// HandleWebSocket handles GET /ws
func (h *ChatWSHandler) HandleWebSocket(c echo.Context) error {
	return h.manager.HandleConnection(c, h.handleClient)
}

// handleClient registers the connection and runs the read loop until the
// client disconnects
func (h *ChatWSHandler) handleClient(client *models.WebSocketClient, ws *websocket.Conn) error {
	client.Conn = ws
	h.manager.AddClient(client)
	defer h.manager.RemoveClient(client.UserID)

	logger.Info("WebSocket client connected",
		logger.String("user_id", client.UserID),
		logger.String("role", client.Role))

	for {
		_, raw, err := ws.ReadMessage()
		if err != nil {
			logger.Debug("WebSocket client disconnected",
				logger.String("user_id", client.UserID))
			return nil
		}

		var msg models.WSMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			h.manager.SendErrorMessage(ws, constants.ErrorInvalidFormat, "Invalid message format")
			continue
		}

		h.routeEvent(client, ws, &msg)
	}
}

func (h *ChatWSHandler) routeEvent(client *models.WebSocketClient, ws *websocket.Conn, msg *models.WSMessage) {
	switch msg.Event {
	case constants.EventPing:
		h.manager.SendMessage(ws, constants.EventPong, nil)

	case constants.EventSendMessage:
		h.handleSendMessage(client, ws, msg.Data)

	default:
		h.manager.SendErrorMessage(ws, constants.ErrorInvalidFormat, "Unknown event")
	}
}

// handleSendMessage persists and fans out one message, then ACKs the sender
// with the stored record (or an error event).
func (h *ChatWSHandler) handleSendMessage(client *models.WebSocketClient, ws *websocket.Conn, data json.RawMessage) {
	var req models.SendMessageRequest
	if err := json.Unmarshal(data, &req); err != nil {
		h.manager.SendErrorMessage(ws, constants.ErrorInvalidFormat, "Invalid send-message payload")
		return
	}

	senderID, err := uuid.Parse(client.UserID)
	if err != nil {
		h.manager.SendErrorMessage(ws, constants.ErrorInternalError, "Operation failed")
		return
	}

	stored, err := h.chatUC.SendMessage(context.Background(), senderID, &req)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindValidation {
			h.manager.SendErrorMessage(ws, constants.ErrorValidationFailed, err.Error())
			return
		}
		logger.Error("Failed to send chat message",
			logger.String("user_id", client.UserID),
			logger.Err(err))
		h.manager.SendErrorMessage(ws, constants.ErrorInternalError, "Operation failed")
		return
	}

	h.manager.SendMessage(ws, constants.EventMessageSent, stored)
}
