package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/tukangku/server/internal/pkg/apperr"
	"github.com/tukangku/server/internal/pkg/logger"
	"github.com/tukangku/server/internal/pkg/models"
)

// GetProvider returns one provider's public record with catalog
func (uc *UserUC) GetProvider(ctx context.Context, providerID uuid.UUID) (*models.User, error) {
	user, err := uc.userRepo.GetUserByID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if user.Role != models.RoleProvider {
		return nil, apperr.NotFound("provider_not_found", "provider not found")
	}
	return user, nil
}

// NearbyProviders resolves candidate provider ids through the geo service,
// then filters out unavailable providers and providers the customer already
// has an open booking with.
func (uc *UserUC) NearbyProviders(ctx context.Context, customerID uuid.UUID, lat, lng float64, service string) ([]*models.User, error) {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, apperr.Validation("invalid_coordinates", "latitude/longitude out of range")
	}

	ids, err := uc.userGW.NearbyProviderIDs(ctx, lat, lng, strings.ToLower(service))
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*models.User{}, nil
	}

	engaged, err := uc.userRepo.EngagedProviderIDs(ctx, customerID)
	if err != nil {
		return nil, err
	}
	engagedSet := make(map[uuid.UUID]struct{}, len(engaged))
	for _, id := range engaged {
		engagedSet[id] = struct{}{}
	}

	candidates := ids[:0]
	for _, id := range ids {
		if _, busy := engagedSet[id]; !busy {
			candidates = append(candidates, id)
		}
	}
	if len(candidates) == 0 {
		return []*models.User{}, nil
	}

	providers, err := uc.userRepo.GetUsersByIDs(ctx, candidates)
	if err != nil {
		return nil, err
	}

	available := make([]*models.User, 0, len(providers))
	for _, p := range providers {
		if p.Role == models.RoleProvider && p.Availability {
			available = append(available, p)
		}
	}

	logger.Debug("Nearby provider search",
		logger.String("customer_id", customerID.String()),
		logger.Int("candidates", len(ids)),
		logger.Int("returned", len(available)))

	return available, nil
}

// UpdateProfile applies a partial profile update and returns the fresh record
func (uc *UserUC) UpdateProfile(ctx context.Context, userID uuid.UUID, req *models.ProfileUpdateRequest) (*models.User, error) {
	if req.Latitude != nil && (*req.Latitude < -90 || *req.Latitude > 90) {
		return nil, apperr.Validation("invalid_coordinates", "latitude out of range")
	}
	if req.Longitude != nil && (*req.Longitude < -180 || *req.Longitude > 180) {
		return nil, apperr.Validation("invalid_coordinates", "longitude out of range")
	}

	if err := uc.userRepo.UpdateProfile(ctx, userID, req); err != nil {
		return nil, err
	}
	return uc.userRepo.GetUserByID(ctx, userID)
}

// AddServicePair appends a priced service to the provider's catalog
func (uc *UserUC) AddServicePair(ctx context.Context, providerID uuid.UUID, req *models.ServicePairRequest) ([]models.ServicePair, error) {
	if err := validatePair(req, false); err != nil {
		return nil, err
	}

	catalog, err := uc.userRepo.GetCatalog(ctx, providerID)
	if err != nil {
		return nil, err
	}

	name := strings.ToLower(strings.TrimSpace(req.Name))
	for _, pair := range catalog {
		if pair.Name == name {
			return nil, apperr.Conflict("duplicate_service", "service is already offered")
		}
	}

	catalog = append(catalog, models.ServicePair{
		ProviderID: providerID,
		Position:   len(catalog),
		Name:       name,
		Price:      req.Price,
	})

	if err := uc.userRepo.ReplaceCatalog(ctx, providerID, catalog); err != nil {
		return nil, err
	}
	return catalog, nil
}

// UpdateServicePair rewrites the pair at the given position
func (uc *UserUC) UpdateServicePair(ctx context.Context, providerID uuid.UUID, req *models.ServicePairRequest) ([]models.ServicePair, error) {
	if err := validatePair(req, true); err != nil {
		return nil, err
	}

	catalog, err := uc.userRepo.GetCatalog(ctx, providerID)
	if err != nil {
		return nil, err
	}

	pos := *req.Position
	if pos < 0 || pos >= len(catalog) {
		return nil, apperr.NotFound("service_not_found", "no service at that position")
	}

	catalog[pos].Name = strings.ToLower(strings.TrimSpace(req.Name))
	catalog[pos].Price = req.Price

	if err := uc.userRepo.ReplaceCatalog(ctx, providerID, catalog); err != nil {
		return nil, err
	}
	return catalog, nil
}

// DeleteServicePair removes the pair at the given position and re-sequences
// the remaining entries so positions stay dense.
func (uc *UserUC) DeleteServicePair(ctx context.Context, providerID uuid.UUID, position int) ([]models.ServicePair, error) {
	catalog, err := uc.userRepo.GetCatalog(ctx, providerID)
	if err != nil {
		return nil, err
	}

	if position < 0 || position >= len(catalog) {
		return nil, apperr.NotFound("service_not_found", "no service at that position")
	}
	if len(catalog) == 1 {
		return nil, apperr.Conflict("last_service", "providers must keep at least one service")
	}

	catalog = append(catalog[:position], catalog[position+1:]...)
	sort.SliceStable(catalog, func(i, j int) bool { return catalog[i].Position < catalog[j].Position })
	for i := range catalog {
		catalog[i].Position = i
	}

	if err := uc.userRepo.ReplaceCatalog(ctx, providerID, catalog); err != nil {
		return nil, err
	}
	return catalog, nil
}

func validatePair(req *models.ServicePairRequest, needPosition bool) error {
	if needPosition && req.Position == nil {
		return apperr.Validation("missing_position", "position is required")
	}
	if strings.TrimSpace(req.Name) == "" {
		return apperr.Validation("missing_name", "service name is required")
	}
	if req.Price <= 0 {
		return apperr.Validation("invalid_price", "service price must be positive")
	}
	return nil
}
