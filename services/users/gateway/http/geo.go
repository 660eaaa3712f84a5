package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/tukangku/server/internal/pkg/apperr"
	httpclient "github.com/tukangku/server/internal/pkg/http"
)

// GeoGateway queries the external geo service for nearby provider ids
type GeoGateway struct {
	client *httpclient.Client
}

// NewGeoGateway creates a new geo gateway instance
func NewGeoGateway(serviceURL string) *GeoGateway {
	return &GeoGateway{
		client: httpclient.NewClient(serviceURL, 10*time.Second),
	}
}

type nearbyResponse struct {
	ProviderIDs []uuid.UUID `json:"provider_ids"`
}

// NearbyProviderIDs resolves provider candidates around a coordinate.
// The contract is narrow: coordinates and an optional service filter in,
// provider ids out. Ranking and radius policy live in the geo service.
func (g *GeoGateway) NearbyProviderIDs(ctx context.Context, lat, lng float64, service string) ([]uuid.UUID, error) {
	endpoint := fmt.Sprintf("%s/nearby", g.client.BaseURL)

	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lng", strconv.FormatFloat(lng, 'f', -1, 64))
	if service != "" {
		params.Set("service", service)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create geo request: %w", err)
	}

	resp, err := g.client.HTTPClient.Do(req)
	if err != nil {
		return nil, apperr.External("geo_unreachable", "geo service request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, apperr.External("geo_error",
			fmt.Sprintf("geo service returned status %d: %s", resp.StatusCode, string(body)), nil)
	}

	var result nearbyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, apperr.External("geo_bad_response", "failed to decode geo response", err)
	}

	return result.ProviderIDs, nil
}
