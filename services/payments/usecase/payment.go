package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tukangku/server/internal/pkg/apperr"
	"github.com/tukangku/server/internal/pkg/logger"
	"github.com/tukangku/server/internal/pkg/models"
	"github.com/tukangku/server/internal/utils"
)

const processorStatusCompleted = "COMPLETED"

// CreateOrder computes the booking total and opens an order with the
// processor. The order id is opaque; the processor's own checkout flow takes
// over until capture.
func (uc *PaymentUC) CreateOrder(ctx context.Context, customerID uuid.UUID, req *models.CreateOrderRequest) (*models.OrderResponse, error) {
	booking, err := uc.loadOwnBooking(ctx, customerID, req.BookingID)
	if err != nil {
		return nil, err
	}

	if booking.Status != models.BookingStatusCompleted {
		return nil, apperr.Conflict("not_completed", "only completed bookings can be paid")
	}
	if booking.Paid {
		return nil, apperr.Conflict("already_paid", "booking has already been paid")
	}

	catalog, err := uc.catalogs.GetCatalog(ctx, booking.ProviderID)
	if err != nil {
		return nil, err
	}

	total, err := uc.OrderTotal(booking.Services, catalog)
	if err != nil {
		return nil, err
	}

	description := fmt.Sprintf("Booking %s: %s", booking.ID, strings.Join(booking.Services, ", "))
	order, err := uc.processor.CreateOrder(ctx, booking.ID.String(), total, uc.cfg.Payment.Currency, description)
	if err != nil {
		return nil, err
	}

	logger.Info("Payment order created",
		logger.String("booking_id", booking.ID.String()),
		logger.String("order_id", order.ID),
		logger.Float64("total", total))

	return &models.OrderResponse{
		OrderID:   order.ID,
		BookingID: booking.ID,
		Total:     total,
		Currency:  uc.cfg.Payment.Currency,
	}, nil
}

// CaptureOrder settles a previously created order and marks the booking paid.
// Capturing an already-paid booking is a no-op success.
func (uc *PaymentUC) CaptureOrder(ctx context.Context, customerID uuid.UUID, req *models.CaptureOrderRequest) (*models.CaptureResponse, error) {
	if req.OrderID == "" {
		return nil, apperr.Validation("missing_order_id", "orderId is required")
	}

	booking, err := uc.loadOwnBooking(ctx, customerID, req.BookingID)
	if err != nil {
		return nil, err
	}

	if booking.Paid {
		return &models.CaptureResponse{
			BookingID: booking.ID,
			Paid:      true,
			Payment:   booking.Payment,
		}, nil
	}

	capture, err := uc.processor.CaptureOrder(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}
	if capture.Status != processorStatusCompleted {
		return nil, apperr.External("capture_incomplete",
			fmt.Sprintf("processor returned capture status %s", capture.Status), nil)
	}
	// the order must have been opened for this booking
	if capture.ReferenceID != booking.ID.String() {
		return nil, apperr.Conflict("order_mismatch", "order does not belong to this booking")
	}

	payment := &models.Payment{
		Method:        "paypal",
		TransactionID: capture.TransactionID,
		Amount:        capture.Amount,
		Currency:      capture.Currency,
		CapturedAt:    time.Now(),
	}

	updated, err := uc.bookings.MarkPaid(ctx, booking.ID, payment)
	if err != nil {
		return nil, err
	}

	logger.Info("Payment captured",
		logger.String("booking_id", booking.ID.String()),
		logger.String("transaction_id", capture.TransactionID))

	return &models.CaptureResponse{
		BookingID: updated.ID,
		Paid:      updated.Paid,
		Payment:   updated.Payment,
	}, nil
}

// ClientID returns the publishable processor client id for the frontend
func (uc *PaymentUC) ClientID() string {
	return uc.cfg.Payment.ClientID
}

// OrderTotal sums the booking's requested services against the provider's
// pair list (case-insensitive name match), converts to the settlement
// currency at the configured rate and rounds to two decimals.
func (uc *PaymentUC) OrderTotal(services []string, catalog []models.ServicePair) (float64, error) {
	prices := make(map[string]float64, len(catalog))
	for _, pair := range catalog {
		prices[strings.ToLower(pair.Name)] = pair.Price
	}

	total := 0.0
	for _, service := range services {
		total += prices[strings.ToLower(strings.TrimSpace(service))]
	}

	if uc.cfg.Payment.ExchangeRate > 0 {
		total /= uc.cfg.Payment.ExchangeRate
	}
	total = utils.Round2(total)

	if total <= 0 {
		return 0, apperr.Validation("invalid_total", "order total must be positive")
	}
	return total, nil
}

func (uc *PaymentUC) loadOwnBooking(ctx context.Context, customerID uuid.UUID, rawBookingID string) (*models.Booking, error) {
	bookingID, err := uuid.Parse(rawBookingID)
	if err != nil {
		return nil, apperr.Validation("invalid_booking_id", "bookingId must be a valid UUID")
	}

	booking, err := uc.bookings.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.CustomerID != customerID {
		return nil, apperr.NotFound("booking_not_found", "booking not found")
	}
	return booking, nil
}
