package payments

import (
	"context"

	"github.com/google/uuid"
	"github.com/tukangku/server/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_stores.go -package=mocks github.com/tukangku/server/services/payments BookingStore,CatalogStore

// BookingStore is the narrow view of the booking repository the payment
// bridge needs.
type BookingStore interface {
	GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	MarkPaid(ctx context.Context, bookingID uuid.UUID, payment *models.Payment) (*models.Booking, error)
}

// CatalogStore resolves a provider's priced service list for order totals.
type CatalogStore interface {
	GetCatalog(ctx context.Context, providerID uuid.UUID) ([]models.ServicePair, error)
}
