package models

import (
	"time"

	"github.com/google/uuid"
)

// Message represents one chat utterance between two users
type Message struct {
	ID         uuid.UUID `json:"id" db:"id"`
	SenderID   uuid.UUID `json:"sender_id" db:"sender_id"`
	ReceiverID uuid.UUID `json:"receiver_id" db:"receiver_id"`
	RoomID     string    `json:"room_id" db:"room_id"`
	Body       string    `json:"message" db:"body"`
	IsRead     bool      `json:"is_read" db:"is_read"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// SendMessageRequest is the send-message websocket payload
type SendMessageRequest struct {
	SenderID   string `json:"senderId"`
	ReceiverID string `json:"receiverId"`
	Message    string `json:"message"`
}

// MarkReadRequest is the payload for the bulk mark-as-read operation
type MarkReadRequest struct {
	RoomID string `json:"roomId"`
}

// ChatMessageEvent is published to NATS for cross-instance delivery
type ChatMessageEvent struct {
	Message    Message   `json:"message"`
	ReceiverID uuid.UUID `json:"receiver_id"`
}
