package bookings

import (
	"context"

	"github.com/google/uuid"
	"github.com/tukangku/server/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/tukangku/server/services/bookings BookingUC

// BookingUC represents the booking usecase interface
type BookingUC interface {
	CreateBooking(ctx context.Context, customerID uuid.UUID, req *models.CreateBookingRequest) (*models.Booking, error)
	ListBookings(ctx context.Context, userID uuid.UUID, role, status string) ([]models.BookingListItem, error)
	Stats(ctx context.Context, userID uuid.UUID, role string) (*models.BookingStats, error)
	TransitionStatus(ctx context.Context, providerID, bookingID uuid.UUID, req *models.TransitionRequest) (*models.Booking, error)
	DeleteBooking(ctx context.Context, customerID, bookingID uuid.UUID) error
	SubmitRating(ctx context.Context, customerID uuid.UUID, req *models.RatingRequest) (*models.Booking, error)
}
