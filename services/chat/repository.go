package chat

import (
	"context"

	"github.com/google/uuid"
	"github.com/tukangku/server/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/tukangku/server/services/chat MessageRepo

// MessageRepo defines the interface for message data access operations
type MessageRepo interface {
	CreateMessage(ctx context.Context, msg *models.Message) error
	History(ctx context.Context, roomID string, limit, offset int) ([]models.Message, error)

	// MarkRead flags every unread message addressed to the receiver in the
	// room; repeat calls are no-ops.
	MarkRead(ctx context.Context, roomID string, receiverID uuid.UUID) (int64, error)

	CountUnread(ctx context.Context, roomID string, receiverID uuid.UUID) (int, error)
	UnreadRooms(ctx context.Context, receiverID uuid.UUID, roomIDs []string) (int, error)
}
