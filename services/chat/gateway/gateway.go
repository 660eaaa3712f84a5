package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tukangku/server/internal/pkg/constants"
	"github.com/tukangku/server/internal/pkg/logger"
	"github.com/tukangku/server/internal/pkg/models"
	natspkg "github.com/tukangku/server/internal/pkg/nats"
	"github.com/tukangku/server/services/chat"
)

// ChatGW publishes chat events to NATS
type ChatGW struct {
	natsClient *natspkg.Client
}

// NewChatGW creates a new chat gateway instance
func NewChatGW(natsClient *natspkg.Client) chat.ChatGW {
	return &ChatGW{natsClient: natsClient}
}

// PublishChatMessage publishes a stored message for delivery to its receiver
func (g *ChatGW) PublishChatMessage(ctx context.Context, event *models.ChatMessageEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal chat message event: %w", err)
	}

	if err := g.natsClient.Publish(constants.SubjectChatMessage, data); err != nil {
		return fmt.Errorf("failed to publish chat message event: %w", err)
	}

	logger.Debug("Published chat message event",
		logger.String("message_id", event.Message.ID.String()),
		logger.String("receiver_id", event.ReceiverID.String()))
	return nil
}
