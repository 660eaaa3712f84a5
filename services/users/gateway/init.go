package gateway

import (
	"context"

	"github.com/google/uuid"

	natspkg "github.com/tukangku/server/internal/pkg/nats"
	"github.com/tukangku/server/internal/pkg/models"
	"github.com/tukangku/server/services/users"
	gateway_http "github.com/tukangku/server/services/users/gateway/http"
	gateway_nats "github.com/tukangku/server/services/users/gateway/nats"
)

// UserGW handles user gateway operations
type UserGW struct {
	httpGateway *gateway_http.GeoGateway
	natsGateway *gateway_nats.NATSGateway
}

// NewUserGW creates a new gateway instance with NATS and geo HTTP clients
func NewUserGW(natsClient *natspkg.Client, geoServiceURL string) users.UserGW {
	return &UserGW{
		httpGateway: gateway_http.NewGeoGateway(geoServiceURL),
		natsGateway: gateway_nats.NewNATSGateway(natsClient),
	}
}

// NearbyProviderIDs queries the geo service for provider candidates
func (g *UserGW) NearbyProviderIDs(ctx context.Context, lat, lng float64, service string) ([]uuid.UUID, error) {
	return g.httpGateway.NearbyProviderIDs(ctx, lat, lng, service)
}

// PublishEmailNotification forwards a contact submission to NATS
func (g *UserGW) PublishEmailNotification(ctx context.Context, req *models.ContactRequest) error {
	return g.natsGateway.PublishEmailNotification(ctx, req)
}
