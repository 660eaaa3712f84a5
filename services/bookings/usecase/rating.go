package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/tukangku/server/internal/pkg/apperr"
	"github.com/tukangku/server/internal/pkg/logger"
	"github.com/tukangku/server/internal/pkg/models"
)

// SubmitRating records a one-time integer rating on a completed, paid booking
// and folds it into the provider's running average.
func (uc *BookingUC) SubmitRating(ctx context.Context, customerID uuid.UUID, req *models.RatingRequest) (*models.Booking, error) {
	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return nil, apperr.Validation("invalid_booking_id", "bookingId must be a valid UUID")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperr.Validation("invalid_rating", "rating must be an integer between 1 and 5")
	}

	booking, err := uc.bookingRepo.ApplyRating(ctx, bookingID, customerID, req.Rating)
	if err != nil {
		return nil, err
	}

	logger.Info("Rating submitted",
		logger.String("booking_id", bookingID.String()),
		logger.Int("rating", req.Rating))

	return booking, nil
}
