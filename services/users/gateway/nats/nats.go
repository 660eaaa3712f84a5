package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tukangku/server/internal/pkg/constants"
	"github.com/tukangku/server/internal/pkg/logger"
	"github.com/tukangku/server/internal/pkg/models"
	natspkg "github.com/tukangku/server/internal/pkg/nats"
)

// NATSGateway handles publishing user events to NATS
type NATSGateway struct {
	client *natspkg.Client
}

// NewNATSGateway creates a new NATS gateway instance
func NewNATSGateway(client *natspkg.Client) *NATSGateway {
	return &NATSGateway{client: client}
}

// PublishEmailNotification publishes a contact submission for the downstream
// email dispatcher
func (g *NATSGateway) PublishEmailNotification(ctx context.Context, req *models.ContactRequest) error {
	data, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal contact request: %w", err)
	}

	if err := g.client.Publish(constants.SubjectNotifyEmail, data); err != nil {
		return fmt.Errorf("failed to publish email notification: %w", err)
	}

	logger.Info("Published email notification",
		logger.String("email", req.Email))
	return nil
}
