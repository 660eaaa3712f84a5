package usecase

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tukangku/server/internal/pkg/apperr"
	"github.com/tukangku/server/internal/pkg/jwt"
	"github.com/tukangku/server/internal/pkg/logger"
	"github.com/tukangku/server/internal/pkg/models"
)

const minPasswordLength = 8

// Register creates a new customer or provider account and issues a token
func (uc *UserUC) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	if err := validateRegistration(req); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if existing, err := uc.userRepo.GetUserByEmail(ctx, email); err == nil && existing != nil {
		return nil, apperr.Conflict("email_taken", "email is already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Internal("failed to hash password", err)
	}

	user := &models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         req.Role,
		Avatar:       req.Avatar,
		Longitude:    req.Longitude,
		Latitude:     req.Latitude,
		Address:      req.Address,
		Availability: req.Role == models.RoleProvider,
	}

	if req.Role == models.RoleProvider {
		user.Catalog = buildCatalog(req.Services, req.Pricing)
	}

	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("User registered",
		logger.String("user_id", user.ID.String()),
		logger.String("role", user.Role))

	return uc.issueToken(user)
}

// Login verifies credentials and issues a token
func (uc *UserUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, apperr.Validation("missing_credentials", "email and password are required")
	}

	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || apperr.KindOf(err) == apperr.KindNotFound {
			return nil, apperr.Validation("invalid_credentials", "invalid email or password")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperr.Validation("invalid_credentials", "invalid email or password")
	}

	return uc.issueToken(user)
}

// CurrentUser returns the authenticated user's full record
func (uc *UserUC) CurrentUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return uc.userRepo.GetUserByID(ctx, userID)
}

// Role returns the authenticated user's role
func (uc *UserUC) Role(ctx context.Context, userID uuid.UUID) (string, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return "", err
	}
	return user.Role, nil
}

// SubmitContact forwards a contact-form submission to the notification pipeline
func (uc *UserUC) SubmitContact(ctx context.Context, req *models.ContactRequest) error {
	if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Message) == "" {
		return apperr.Validation("missing_fields", "email and message are required")
	}
	return uc.userGW.PublishEmailNotification(ctx, req)
}

func (uc *UserUC) issueToken(user *models.User) (*models.AuthResponse, error) {
	token, expiresAt, err := jwt.GenerateToken(user.ID, user.Role, uc.cfg.JWT)
	if err != nil {
		return nil, apperr.Internal("failed to issue token", err)
	}

	return &models.AuthResponse{
		UserID:    user.ID,
		Role:      user.Role,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

func validateRegistration(req *models.RegisterRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return apperr.Validation("missing_name", "name is required")
	}
	if !strings.Contains(req.Email, "@") {
		return apperr.Validation("invalid_email", "a valid email is required")
	}
	if len(req.Password) < minPasswordLength {
		return apperr.Validation("weak_password", "password must be at least 8 characters")
	}
	if req.Role != models.RoleCustomer && req.Role != models.RoleProvider {
		return apperr.Validation("invalid_role", "role must be customer or provider")
	}
	if req.Role == models.RoleProvider {
		if len(req.Services) == 0 {
			return apperr.Validation("missing_services", "providers must offer at least one service")
		}
		if len(req.Services) != len(req.Pricing) {
			return apperr.Validation("catalog_mismatch", "services and pricing must align")
		}
		for _, price := range req.Pricing {
			if price <= 0 {
				return apperr.Validation("invalid_price", "service prices must be positive")
			}
		}
	}
	return nil
}

// buildCatalog pairs the submitted service names with their prices. Names are
// lowercased so booking totals can match case-insensitively.
func buildCatalog(services []string, pricing []float64) []models.ServicePair {
	catalog := make([]models.ServicePair, 0, len(services))
	for i, name := range services {
		catalog = append(catalog, models.ServicePair{
			Position: i,
			Name:     strings.ToLower(strings.TrimSpace(name)),
			Price:    pricing[i],
		})
	}
	return catalog
}
