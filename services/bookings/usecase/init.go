package usecase

import (
	"github.com/tukangku/server/internal/pkg/models"
	"github.com/tukangku/server/services/bookings"
)

// BookingUC implements the booking usecase
type BookingUC struct {
	bookingRepo bookings.BookingRepo
	bookingGW   bookings.BookingGW
	messages    bookings.MessageStore
	users       bookings.UserStore
	cfg         *models.Config
}

// NewBookingUC creates a new booking usecase instance
func NewBookingUC(
	bookingRepo bookings.BookingRepo,
	bookingGW bookings.BookingGW,
	messages bookings.MessageStore,
	users bookings.UserStore,
	cfg *models.Config,
) *BookingUC {
	return &BookingUC{
		bookingRepo: bookingRepo,
		bookingGW:   bookingGW,
		messages:    messages,
		users:       users,
		cfg:         cfg,
	}
}
