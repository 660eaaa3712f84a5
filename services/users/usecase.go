package users

import (
	"context"

	"github.com/google/uuid"
	"github.com/tukangku/server/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/tukangku/server/services/users UserUC

// UserUC represents the user usecase interface
type UserUC interface {
	// identity
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	CurrentUser(ctx context.Context, userID uuid.UUID) (*models.User, error)
	Role(ctx context.Context, userID uuid.UUID) (string, error)

	// profiles and catalog
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *models.ProfileUpdateRequest) (*models.User, error)
	AddServicePair(ctx context.Context, providerID uuid.UUID, req *models.ServicePairRequest) ([]models.ServicePair, error)
	UpdateServicePair(ctx context.Context, providerID uuid.UUID, req *models.ServicePairRequest) ([]models.ServicePair, error)
	DeleteServicePair(ctx context.Context, providerID uuid.UUID, position int) ([]models.ServicePair, error)

	// discovery
	GetProvider(ctx context.Context, providerID uuid.UUID) (*models.User, error)
	NearbyProviders(ctx context.Context, customerID uuid.UUID, lat, lng float64, service string) ([]*models.User, error)

	// contact form
	SubmitContact(ctx context.Context, req *models.ContactRequest) error
}
