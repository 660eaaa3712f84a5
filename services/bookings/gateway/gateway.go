package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tukangku/server/internal/pkg/constants"
	"github.com/tukangku/server/internal/pkg/logger"
	"github.com/tukangku/server/internal/pkg/models"
	natspkg "github.com/tukangku/server/internal/pkg/nats"
	"github.com/tukangku/server/services/bookings"
)

// BookingGW publishes booking events to NATS
type BookingGW struct {
	natsClient *natspkg.Client
}

// NewBookingGW creates a new booking gateway instance
func NewBookingGW(natsClient *natspkg.Client) bookings.BookingGW {
	return &BookingGW{natsClient: natsClient}
}

// PublishBookingStatus publishes a status transition for the notification
// pipeline
func (g *BookingGW) PublishBookingStatus(ctx context.Context, event *models.BookingStatusEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal booking status event: %w", err)
	}

	if err := g.natsClient.Publish(constants.SubjectBookingStatus, data); err != nil {
		return fmt.Errorf("failed to publish booking status event: %w", err)
	}

	logger.Debug("Published booking status event",
		logger.String("booking_id", event.BookingID.String()),
		logger.String("status", event.Status))
	return nil
}
