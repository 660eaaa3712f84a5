package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/tukangku/server/internal/pkg/apperr"
	"github.com/tukangku/server/internal/pkg/models"
)

// CreateUser inserts a new user and, for providers, the catalog rows in one
// transaction
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User) error {
	user.ID = uuid.New()
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO users (id, name, email, password_hash, role, avatar,
			longitude, latitude, address, availability, rating, review_count,
			created_at, updated_at
		) VALUES (:id, :name, :email, :password_hash, :role, :avatar,
			:longitude, :latitude, :address, :availability, :rating, :review_count,
			:created_at, :updated_at)
	`
	if _, err = tx.NamedExecContext(ctx, query, user); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	if err := insertCatalog(ctx, tx, user.ID, user.Catalog); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetUserByID retrieves a user by id, with the catalog for providers
func (r *UserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `
		SELECT id, name, email, password_hash, role, avatar, longitude, latitude,
			address, availability, rating, review_count, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var user models.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.NotFound("user_not_found", "user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user.Role == models.RoleProvider {
		catalog, err := r.GetCatalog(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		user.Catalog = catalog
	}

	return &user, nil
}

// GetUserByEmail retrieves a user by email
func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, name, email, password_hash, role, avatar, longitude, latitude,
			address, availability, rating, review_count, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var user models.User
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.NotFound("user_not_found", "user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// GetUsersByIDs retrieves users for the given ids, catalogs included
func (r *UserRepo) GetUsersByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.User, error) {
	if len(ids) == 0 {
		return []*models.User{}, nil
	}

	query, args, err := sqlx.In(`
		SELECT id, name, email, password_hash, role, avatar, longitude, latitude,
			address, availability, rating, review_count, created_at, updated_at
		FROM users
		WHERE id IN (?)
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	query = r.db.Rebind(query)

	var users []*models.User
	if err := r.db.SelectContext(ctx, &users, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	for _, user := range users {
		if user.Role != models.RoleProvider {
			continue
		}
		catalog, err := r.GetCatalog(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		user.Catalog = catalog
	}

	return users, nil
}

// UpdateProfile applies the non-nil fields of the request
func (r *UserRepo) UpdateProfile(ctx context.Context, userID uuid.UUID, req *models.ProfileUpdateRequest) error {
	query := `
		UPDATE users
		SET name = COALESCE(NULLIF($2, ''), name),
			avatar = COALESCE(NULLIF($3, ''), avatar),
			address = COALESCE(NULLIF($4, ''), address),
			longitude = COALESCE($5, longitude),
			latitude = COALESCE($6, latitude),
			updated_at = $7
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		userID, req.Name, req.Avatar, req.Address, req.Longitude, req.Latitude, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if rows == 0 {
		return apperr.NotFound("user_not_found", "user not found")
	}

	return nil
}

// EngagedProviderIDs returns providers with an open booking from the customer
func (r *UserRepo) EngagedProviderIDs(ctx context.Context, customerID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		SELECT DISTINCT provider_id
		FROM bookings
		WHERE customer_id = $1 AND status IN ('pending', 'accepted')
	`

	var ids []uuid.UUID
	if err := r.db.SelectContext(ctx, &ids, query, customerID); err != nil {
		return nil, fmt.Errorf("failed to get engaged providers: %w", err)
	}

	return ids, nil
}
