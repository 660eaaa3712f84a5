package payments

import (
	"context"

	"github.com/google/uuid"
	"github.com/tukangku/server/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/tukangku/server/services/payments PaymentUC

// PaymentUC represents the payment usecase interface
type PaymentUC interface {
	CreateOrder(ctx context.Context, customerID uuid.UUID, req *models.CreateOrderRequest) (*models.OrderResponse, error)
	CaptureOrder(ctx context.Context, customerID uuid.UUID, req *models.CaptureOrderRequest) (*models.CaptureResponse, error)
	ClientID() string
}
