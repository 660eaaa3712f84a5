package bookings

import (
	"context"

	"github.com/google/uuid"
	"github.com/tukangku/server/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/tukangku/server/services/bookings BookingRepo

// BookingRepo defines the interface for booking data access operations.
// Multi-row mutations (status+availability, rating+provider average) run in a
// single transaction behind these methods.
type BookingRepo interface {
	CreateBooking(ctx context.Context, booking *models.Booking) error
	GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	ListWithCounterpart(ctx context.Context, userID uuid.UUID, role, status string) ([]models.BookingListItem, error)

	// TransitionStatus moves the booking from one status to another and flips
	// the provider's availability in the same transaction. A vanished
	// precondition (the row no longer in `from`) yields a Conflict error.
	TransitionStatus(ctx context.Context, bookingID uuid.UUID, from, to string, slot *models.TimeSlot, providerAvailable bool) (*models.Booking, error)

	// ApplyRating stores the rating and folds it into the provider's running
	// average and review count atomically.
	ApplyRating(ctx context.Context, bookingID, customerID uuid.UUID, rating int) (*models.Booking, error)

	DeletePending(ctx context.Context, bookingID, customerID uuid.UUID) (bool, error)
	StatusCounts(ctx context.Context, userID uuid.UUID, role string) (map[string]int, error)
	DailySeries(ctx context.Context, userID uuid.UUID, role string, days int) ([]models.DailyCount, error)
}
