package models

import (
	"time"

	"github.com/google/uuid"
)

// Booking statuses. A booking starts pending; the provider moves it to
// accepted (with a time slot) or rejected, and an accepted booking can be
// completed. Rejected and completed are terminal for the status field.
const (
	BookingStatusPending   = "pending"
	BookingStatusAccepted  = "accepted"
	BookingStatusRejected  = "rejected"
	BookingStatusCompleted = "completed"
)

// TimeSlot is the scheduled date/time attached to an accepted booking
type TimeSlot struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// IsZero reports whether the slot carries no schedule
func (t TimeSlot) IsZero() bool {
	return t.Date == "" && t.Time == ""
}

// Payment records a captured payment on a booking
type Payment struct {
	Method        string    `json:"method"`
	TransactionID string    `json:"transaction_id"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	CapturedAt    time.Time `json:"captured_at"`
}

// Booking represents a unit of work between one customer and one provider
type Booking struct {
	ID         uuid.UUID `json:"id" db:"id"`
	CustomerID uuid.UUID `json:"customer_id" db:"customer_id"`
	ProviderID uuid.UUID `json:"provider_id" db:"provider_id"`
	Services   []string  `json:"services" db:"-"`
	Status     string    `json:"status" db:"status"`
	TimeSlot   *TimeSlot `json:"time_slot,omitempty" db:"-"`
	Rating     *int      `json:"rating,omitempty" db:"rating"`
	Paid       bool      `json:"paid" db:"paid"`
	Payment    *Payment  `json:"payment,omitempty" db:"-"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// CreateBookingRequest is the payload for booking creation
type CreateBookingRequest struct {
	ProviderID string   `json:"providerId"`
	Services   []string `json:"services"`
}

// ListBookingsRequest filters the role-scoped booking listing
type ListBookingsRequest struct {
	Status string `json:"status"`
}

// TransitionRequest is the payload for a provider status transition
type TransitionRequest struct {
	Status   string    `json:"status"`
	TimeSlot *TimeSlot `json:"timeSlot"`
}

// RatingRequest is the payload for a customer rating submission
type RatingRequest struct {
	BookingID string `json:"bookingId"`
	Rating    int    `json:"rating"`
}

// Counterpart is the other party of a booking as shown in listings
type Counterpart struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Avatar string    `json:"avatar,omitempty"`
}

// BookingListItem is one row of the role-scoped booking listing
type BookingListItem struct {
	BookingID   uuid.UUID   `json:"bookingId"`
	Status      string      `json:"status"`
	Services    []string    `json:"services"`
	TimeSlot    *TimeSlot   `json:"timeSlot,omitempty"`
	Rating      *int        `json:"rating,omitempty"`
	Paid        bool        `json:"paid"`
	User        Counterpart `json:"user"`
	UnreadCount int         `json:"unreadCount"`
	CanDelete   bool        `json:"canDelete"`
}

// DailyCount is one point of the trailing booking-count series
type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// BookingStats is the dashboard aggregate for one actor
type BookingStats struct {
	Total       int          `json:"total"`
	Pending     int          `json:"pending"`
	Accepted    int          `json:"accepted"`
	Rejected    int          `json:"rejected"`
	UnreadRooms int          `json:"unreadRooms"`
	Series      []DailyCount `json:"series"`
}

// BookingStatusEvent is published to NATS after a successful transition
type BookingStatusEvent struct {
	BookingID  uuid.UUID `json:"booking_id"`
	CustomerID uuid.UUID `json:"customer_id"`
	ProviderID uuid.UUID `json:"provider_id"`
	Status     string    `json:"status"`
	Timestamp  time.Time `json:"timestamp"`
}
