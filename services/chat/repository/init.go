package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/tukangku/server/internal/pkg/models"
)

// MessageRepo implements message data access over Postgres
type MessageRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewMessageRepository creates a new message repository instance
func NewMessageRepository(cfg *models.Config, db *sqlx.DB) *MessageRepo {
	return &MessageRepo{
		cfg: cfg,
		db:  db,
	}
}
