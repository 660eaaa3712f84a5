package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/tukangku/server/internal/pkg/models"
)

// CreateMessage inserts a new unread message
func (r *MessageRepo) CreateMessage(ctx context.Context, msg *models.Message) error {
	msg.ID = uuid.New()
	msg.IsRead = false
	msg.CreatedAt = time.Now()

	query := `
		INSERT INTO messages (id, sender_id, receiver_id, room_id, body, is_read, created_at)
		VALUES (:id, :sender_id, :receiver_id, :room_id, :body, :is_read, :created_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, msg); err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}

	return nil
}

// History returns room messages in ascending creation order
func (r *MessageRepo) History(ctx context.Context, roomID string, limit, offset int) ([]models.Message, error) {
	query := `
		SELECT id, sender_id, receiver_id, room_id, body, is_read, created_at
		FROM messages
		WHERE room_id = $1
		ORDER BY created_at ASC
		LIMIT $2 OFFSET $3
	`

	messages := []models.Message{}
	if err := r.db.SelectContext(ctx, &messages, query, roomID, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to get message history: %w", err)
	}

	return messages, nil
}

// MarkRead flags the receiver's unread messages in the room; idempotent
func (r *MessageRepo) MarkRead(ctx context.Context, roomID string, receiverID uuid.UUID) (int64, error) {
	query := `
		UPDATE messages
		SET is_read = TRUE
		WHERE room_id = $1 AND receiver_id = $2 AND is_read = FALSE
	`

	result, err := r.db.ExecContext(ctx, query, roomID, receiverID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark messages read: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read update result: %w", err)
	}
	return rows, nil
}

// CountUnread counts unread messages addressed to the receiver in one room
func (r *MessageRepo) CountUnread(ctx context.Context, roomID string, receiverID uuid.UUID) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM messages
		WHERE room_id = $1 AND receiver_id = $2 AND is_read = FALSE
	`

	var count int
	if err := r.db.GetContext(ctx, &count, query, roomID, receiverID); err != nil {
		return 0, fmt.Errorf("failed to count unread messages: %w", err)
	}

	return count, nil
}

// UnreadRooms counts how many of the given rooms hold unread messages for
// the receiver
func (r *MessageRepo) UnreadRooms(ctx context.Context, receiverID uuid.UUID, roomIDs []string) (int, error) {
	if len(roomIDs) == 0 {
		return 0, nil
	}

	query, args, err := sqlx.In(`
		SELECT COUNT(DISTINCT room_id)
		FROM messages
		WHERE receiver_id = ? AND is_read = FALSE AND room_id IN (?)
	`, receiverID, roomIDs)
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}
	query = r.db.Rebind(query)

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count unread rooms: %w", err)
	}

	return count, nil
}
