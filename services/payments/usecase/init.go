package usecase

import (
	"github.com/tukangku/server/internal/pkg/models"
	"github.com/tukangku/server/services/payments"
)

// PaymentUC implements the payment usecase
type PaymentUC struct {
	processor payments.ProcessorGW
	bookings  payments.BookingStore
	catalogs  payments.CatalogStore
	cfg       *models.Config
}

// NewPaymentUC creates a new payment usecase instance
func NewPaymentUC(
	processor payments.ProcessorGW,
	bookings payments.BookingStore,
	catalogs payments.CatalogStore,
	cfg *models.Config,
) *PaymentUC {
	return &PaymentUC{
		processor: processor,
		bookings:  bookings,
		catalogs:  catalogs,
		cfg:       cfg,
	}
}
