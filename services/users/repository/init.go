package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/tukangku/server/internal/pkg/models"
)

// UserRepo implements user data access over Postgres
type UserRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewUserRepository creates a new user repository instance
func NewUserRepository(cfg *models.Config, db *sqlx.DB) *UserRepo {
	return &UserRepo{
		cfg: cfg,
		db:  db,
	}
}
