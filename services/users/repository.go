package users

import (
	"context"

	"github.com/google/uuid"
	"github.com/tukangku/server/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/tukangku/server/services/users UserRepo

// UserRepo defines the interface for user data access operations
type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUsersByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *models.ProfileUpdateRequest) error

	GetCatalog(ctx context.Context, providerID uuid.UUID) ([]models.ServicePair, error)
	ReplaceCatalog(ctx context.Context, providerID uuid.UUID, catalog []models.ServicePair) error

	// EngagedProviderIDs returns providers holding a pending or accepted
	// booking from the given customer; nearby search excludes them.
	EngagedProviderIDs(ctx context.Context, customerID uuid.UUID) ([]uuid.UUID, error)
}
