package chat

import (
	"context"

	"github.com/google/uuid"
	"github.com/tukangku/server/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/tukangku/server/services/chat ChatUC

// ChatUC represents the chat usecase interface
type ChatUC interface {
	// SendMessage persists the message and fans it out for delivery; the
	// stored message is returned so the sender can be ACKed.
	SendMessage(ctx context.Context, senderID uuid.UUID, req *models.SendMessageRequest) (*models.Message, error)
	History(ctx context.Context, userID uuid.UUID, roomID string, limit, offset int) ([]models.Message, error)
	MarkRead(ctx context.Context, userID uuid.UUID, roomID string) error
}
