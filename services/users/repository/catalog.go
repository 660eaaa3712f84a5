package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/tukangku/server/internal/pkg/models"
)

// GetCatalog returns the provider's service pairs ordered by position
func (r *UserRepo) GetCatalog(ctx context.Context, providerID uuid.UUID) ([]models.ServicePair, error) {
	query := `
		SELECT provider_id, position, name, price
		FROM provider_services
		WHERE provider_id = $1
		ORDER BY position ASC
	`

	catalog := []models.ServicePair{}
	if err := r.db.SelectContext(ctx, &catalog, query, providerID); err != nil {
		return nil, fmt.Errorf("failed to get catalog: %w", err)
	}

	return catalog, nil
}

// ReplaceCatalog rewrites the provider's full pair list in one transaction
func (r *UserRepo) ReplaceCatalog(ctx context.Context, providerID uuid.UUID, catalog []models.ServicePair) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM provider_services WHERE provider_id = $1`, providerID); err != nil {
		return fmt.Errorf("failed to clear catalog: %w", err)
	}

	if err := insertCatalog(ctx, tx, providerID, catalog); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func insertCatalog(ctx context.Context, tx *sqlx.Tx, providerID uuid.UUID, catalog []models.ServicePair) error {
	query := `
		INSERT INTO provider_services (provider_id, position, name, price)
		VALUES ($1, $2, $3, $4)
	`
	for _, pair := range catalog {
		if _, err := tx.ExecContext(ctx, query, providerID, pair.Position, pair.Name, pair.Price); err != nil {
			return fmt.Errorf("failed to insert service pair: %w", err)
		}
	}
	return nil
}
