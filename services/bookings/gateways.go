package bookings

import (
	"context"

	"github.com/tukangku/server/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/tukangku/server/services/bookings BookingGW

// BookingGW defines the booking gateways interface
type BookingGW interface {
	// NATS gateway: feeds the notification pipeline
	PublishBookingStatus(ctx context.Context, event *models.BookingStatusEvent) error
}
