package usecase

import (
	"github.com/tukangku/server/internal/pkg/models"
	"github.com/tukangku/server/services/users"
)

// UserUC implements the user usecase
type UserUC struct {
	userRepo users.UserRepo
	userGW   users.UserGW
	cfg      *models.Config
}

// NewUserUC creates a new user usecase instance
func NewUserUC(
	userRepo users.UserRepo,
	userGW users.UserGW,
	cfg *models.Config,
) *UserUC {
	return &UserUC{
		userRepo: userRepo,
		userGW:   userGW,
		cfg:      cfg,
	}
}
