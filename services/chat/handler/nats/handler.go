package nats

import (
	"encoding/json"

	"github.com/nats-io/nats.go"

	"github.com/tukangku/server/internal/pkg/constants"
	"github.com/tukangku/server/internal/pkg/logger"
	"github.com/tukangku/server/internal/pkg/models"
	natspkg "github.com/tukangku/server/internal/pkg/nats"
	wspkg "github.com/tukangku/server/internal/pkg/websocket"
)

// NatsHandler consumes chat events and pushes them to connected receivers
type NatsHandler struct {
	natsClient *natspkg.Client
	manager    *wspkg.Manager
	subs       []*nats.Subscription
}

// NewNatsHandler creates a new NATS handler instance
func NewNatsHandler(natsClient *natspkg.Client, manager *wspkg.Manager) *NatsHandler {
	return &NatsHandler{
		natsClient: natsClient,
		manager:    manager,
	}
}

// InitConsumers subscribes to chat subjects. Every instance receives every
// event: the receiver may hold its websocket on any instance, so each one
// checks its own manager and the rest drop the event.
func (h *NatsHandler) InitConsumers() error {
	sub, err := h.natsClient.Subscribe(constants.SubjectChatMessage, h.handleChatMessage)
	if err != nil {
		return err
	}
	h.subs = append(h.subs, sub)

	return nil
}

// handleChatMessage delivers a message to its receiver if connected here.
// Offline receivers rely on durable history.
func (h *NatsHandler) handleChatMessage(msg *nats.Msg) {
	var event models.ChatMessageEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		logger.Error("Failed to unmarshal chat message event",
			logger.Err(err))
		return
	}

	h.manager.NotifyClient(event.ReceiverID.String(), constants.EventReceiveMessage, event.Message)
}
