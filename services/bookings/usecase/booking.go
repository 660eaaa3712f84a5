package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tukangku/server/internal/pkg/apperr"
	"github.com/tukangku/server/internal/pkg/logger"
	"github.com/tukangku/server/internal/pkg/models"
)

// CreateBooking opens a pending booking from a customer to a provider
func (uc *BookingUC) CreateBooking(ctx context.Context, customerID uuid.UUID, req *models.CreateBookingRequest) (*models.Booking, error) {
	providerID, err := uuid.Parse(req.ProviderID)
	if err != nil {
		return nil, apperr.Validation("invalid_provider_id", "providerId must be a valid UUID")
	}
	if providerID == customerID {
		return nil, apperr.Validation("self_booking", "cannot book yourself")
	}
	if len(req.Services) == 0 {
		return nil, apperr.Validation("missing_services", "at least one service is required")
	}

	provider, err := uc.users.GetUserByID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if provider.Role != models.RoleProvider {
		return nil, apperr.NotFound("provider_not_found", "provider not found")
	}

	services := make([]string, 0, len(req.Services))
	for _, s := range req.Services {
		name := strings.ToLower(strings.TrimSpace(s))
		if name == "" {
			return nil, apperr.Validation("invalid_service", "service names must be non-empty")
		}
		services = append(services, name)
	}

	booking := &models.Booking{
		CustomerID: customerID,
		ProviderID: providerID,
		Services:   services,
		Status:     models.BookingStatusPending,
	}

	if err := uc.bookingRepo.CreateBooking(ctx, booking); err != nil {
		return nil, err
	}

	logger.Info("Booking created",
		logger.String("booking_id", booking.ID.String()),
		logger.String("customer_id", customerID.String()),
		logger.String("provider_id", providerID.String()))

	return booking, nil
}

// TransitionStatus applies a provider-driven lifecycle transition. Accepting
// requires a non-empty time slot; the provider's availability is flipped in
// the same transaction (unavailable only while holding an accepted booking).
func (uc *BookingUC) TransitionStatus(ctx context.Context, providerID, bookingID uuid.UUID, req *models.TransitionRequest) (*models.Booking, error) {
	var from string
	switch req.Status {
	case models.BookingStatusAccepted, models.BookingStatusRejected:
		from = models.BookingStatusPending
	case models.BookingStatusCompleted:
		from = models.BookingStatusAccepted
	default:
		return nil, apperr.Validation("invalid_status", "status must be accepted, rejected or completed")
	}

	if req.Status == models.BookingStatusAccepted {
		if req.TimeSlot == nil || req.TimeSlot.IsZero() {
			return nil, apperr.Validation("missing_time_slot", "accepting a booking requires a time slot")
		}
	}

	booking, err := uc.bookingRepo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.ProviderID != providerID {
		return nil, apperr.NotFound("booking_not_found", "booking not found")
	}

	available := req.Status != models.BookingStatusAccepted

	updated, err := uc.bookingRepo.TransitionStatus(ctx, bookingID, from, req.Status, req.TimeSlot, available)
	if err != nil {
		return nil, err
	}

	event := &models.BookingStatusEvent{
		BookingID:  updated.ID,
		CustomerID: updated.CustomerID,
		ProviderID: updated.ProviderID,
		Status:     updated.Status,
		Timestamp:  time.Now(),
	}
	if err := uc.bookingGW.PublishBookingStatus(ctx, event); err != nil {
		logger.Warn("Failed to publish booking status event",
			logger.String("booking_id", updated.ID.String()),
			logger.Err(err))
	}

	return updated, nil
}

// DeleteBooking removes a customer's own booking while it is still pending
func (uc *BookingUC) DeleteBooking(ctx context.Context, customerID, bookingID uuid.UUID) error {
	booking, err := uc.bookingRepo.GetBooking(ctx, bookingID)
	if err != nil {
		return err
	}
	if booking.CustomerID != customerID {
		return apperr.NotFound("booking_not_found", "booking not found")
	}
	if booking.Status != models.BookingStatusPending {
		return apperr.Conflict("not_pending", "only pending bookings can be deleted")
	}

	deleted, err := uc.bookingRepo.DeletePending(ctx, bookingID, customerID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.Conflict("not_pending", "only pending bookings can be deleted")
	}

	logger.Info("Booking deleted",
		logger.String("booking_id", bookingID.String()),
		logger.String("customer_id", customerID.String()))
	return nil
}
