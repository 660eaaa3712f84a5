package users

import (
	"context"

	"github.com/google/uuid"
	"github.com/tukangku/server/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/tukangku/server/services/users UserGW

// UserGW defines the user gateways interface
type UserGW interface {
	// HTTP gateway: external geo query service
	NearbyProviderIDs(ctx context.Context, lat, lng float64, service string) ([]uuid.UUID, error)

	// NATS gateway: notification pipeline
	PublishEmailNotification(ctx context.Context, req *models.ContactRequest) error
}
