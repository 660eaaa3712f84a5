package payments

import (
	"context"

	"github.com/tukangku/server/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/tukangku/server/services/payments ProcessorGW

// ProcessorGW defines the two-phase contract against the external payment
// processor. Transport failures and processor rejections come back as
// External errors; every call carries an explicit timeout.
type ProcessorGW interface {
	CreateOrder(ctx context.Context, referenceID string, total float64, currency, description string) (*models.ProcessorOrder, error)
	CaptureOrder(ctx context.Context, orderID string) (*models.ProcessorCapture, error)
}
