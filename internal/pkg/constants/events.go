package constants

// NATS subjects
const (
	SubjectChatMessage   = "chat.message"
	SubjectBookingStatus = "booking.status"
	SubjectNotifyEmail   = "notify.email"
)

// WebSocket event types
const (
	EventError          = "error"
	EventPing           = "ping"
	EventPong           = "pong"
	EventSendMessage    = "send-message"
	EventMessageSent    = "message-sent"
	EventReceiveMessage = "receive-message"
)

// WebSocket error codes
const (
	ErrorInvalidFormat    = "invalid_format"
	ErrorValidationFailed = "validation_failed"
	ErrorInternalError    = "internal_error"
)
