package chat

import (
	"context"

	"github.com/tukangku/server/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/tukangku/server/services/chat ChatGW

// ChatGW defines the chat gateways interface
type ChatGW interface {
	// NATS gateway: cross-instance delivery to the receiver's connection
	PublishChatMessage(ctx context.Context, event *models.ChatMessageEvent) error
}
