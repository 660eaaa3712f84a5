package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/tukangku/server/internal/pkg/apperr"
	"github.com/tukangku/server/internal/pkg/logger"
	"github.com/tukangku/server/internal/pkg/models"
	"github.com/tukangku/server/internal/utils"
)

const (
	defaultHistoryLimit = 100
	maxHistoryLimit     = 500
	maxMessageLength    = 2000
)

// SendMessage validates and persists a message, then publishes it for
// delivery to the receiver. The sender id comes from the authenticated
// connection, never from the payload.
func (uc *ChatUC) SendMessage(ctx context.Context, senderID uuid.UUID, req *models.SendMessageRequest) (*models.Message, error) {
	receiverID, err := uuid.Parse(req.ReceiverID)
	if err != nil {
		return nil, apperr.Validation("invalid_receiver_id", "receiverId must be a valid UUID")
	}
	if receiverID == senderID {
		return nil, apperr.Validation("self_message", "cannot message yourself")
	}

	body := strings.TrimSpace(req.Message)
	if body == "" {
		return nil, apperr.Validation("empty_message", "message must not be empty")
	}
	if len(body) > maxMessageLength {
		return nil, apperr.Validation("message_too_long", "message exceeds maximum length")
	}

	msg := &models.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		RoomID:     utils.RoomID(senderID, receiverID),
		Body:       body,
	}

	if err := uc.messageRepo.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}

	// Delivery is best-effort; the message is already durable
	event := &models.ChatMessageEvent{
		Message:    *msg,
		ReceiverID: receiverID,
	}
	if err := uc.chatGW.PublishChatMessage(ctx, event); err != nil {
		logger.Warn("Failed to publish chat message",
			logger.String("message_id", msg.ID.String()),
			logger.Err(err))
	}

	return msg, nil
}

// History returns messages for a room in ascending order of creation
func (uc *ChatUC) History(ctx context.Context, userID uuid.UUID, roomID string, limit, offset int) ([]models.Message, error) {
	if !utils.RoomHasMember(roomID, userID) {
		return nil, apperr.NotFound("room_not_found", "room not found")
	}

	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	if offset < 0 {
		offset = 0
	}

	return uc.messageRepo.History(ctx, roomID, limit, offset)
}

// MarkRead flags all messages addressed to the user in the room as read
func (uc *ChatUC) MarkRead(ctx context.Context, userID uuid.UUID, roomID string) error {
	if !utils.RoomHasMember(roomID, userID) {
		return apperr.NotFound("room_not_found", "room not found")
	}

	updated, err := uc.messageRepo.MarkRead(ctx, roomID, userID)
	if err != nil {
		return err
	}

	logger.Debug("Messages marked read",
		logger.String("room_id", roomID),
		logger.Int64("updated", updated))
	return nil
}
