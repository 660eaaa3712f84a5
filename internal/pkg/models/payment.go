package models

import "github.com/google/uuid"

// CreateOrderRequest is the payload for payment order creation
type CreateOrderRequest struct {
	BookingID string `json:"bookingId"`
}

// CaptureOrderRequest is the payload for payment order capture
type CaptureOrderRequest struct {
	OrderID   string `json:"orderId"`
	BookingID string `json:"bookingId"`
}

// OrderResponse carries the processor order id back to the client
type OrderResponse struct {
	OrderID   string    `json:"orderId"`
	BookingID uuid.UUID `json:"bookingId"`
	Total     float64   `json:"total"`
	Currency  string    `json:"currency"`
}

// CaptureResponse reports the reconciled capture result
type CaptureResponse struct {
	BookingID uuid.UUID `json:"bookingId"`
	Paid      bool      `json:"paid"`
	Payment   *Payment  `json:"payment,omitempty"`
}

// ProcessorOrder is the processor-side view of an order
type ProcessorOrder struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// ProcessorCapture is the processor-side view of a capture. ReferenceID
// echoes the purchase unit's reference, which carries the booking id.
type ProcessorCapture struct {
	OrderID       string  `json:"order_id"`
	ReferenceID   string  `json:"reference_id"`
	Status        string  `json:"status"`
	TransactionID string  `json:"transaction_id"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
}
