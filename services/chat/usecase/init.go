package usecase

import (
	"github.com/tukangku/server/internal/pkg/models"
	"github.com/tukangku/server/services/chat"
)

// ChatUC implements the chat usecase
type ChatUC struct {
	messageRepo chat.MessageRepo
	chatGW      chat.ChatGW
	cfg         *models.Config
}

// NewChatUC creates a new chat usecase instance
func NewChatUC(
	messageRepo chat.MessageRepo,
	chatGW chat.ChatGW,
	cfg *models.Config,
) *ChatUC {
	return &ChatUC{
		messageRepo: messageRepo,
		chatGW:      chatGW,
		cfg:         cfg,
	}
}
