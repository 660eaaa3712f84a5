package bookings

import (
	"context"

	"github.com/google/uuid"
	"github.com/tukangku/server/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_stores.go -package=mocks github.com/tukangku/server/services/bookings MessageStore,UserStore

// MessageStore is the narrow view of the chat repository the booking listing
// and stats need for unread counting.
type MessageStore interface {
	CountUnread(ctx context.Context, roomID string, receiverID uuid.UUID) (int, error)
	UnreadRooms(ctx context.Context, receiverID uuid.UUID, roomIDs []string) (int, error)
}

// UserStore is the narrow view of the user repository booking creation needs.
type UserStore interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}
