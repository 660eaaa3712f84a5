package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tukangku/server/internal/pkg/apperr"
	"github.com/tukangku/server/internal/pkg/database"
	httpclient "github.com/tukangku/server/internal/pkg/http"
	"github.com/tukangku/server/internal/pkg/logger"
	"github.com/tukangku/server/internal/pkg/models"
)

const (
	tokenCacheKey = "payments:processor:token"
	// renew slightly before the processor-side expiry
	tokenExpiryMargin = 60 * time.Second
)

// ProcessorClient talks to the external payment processor. Bearer tokens are
// obtained with client credentials and cached in Redis until shortly before
// they expire.
type ProcessorClient struct {
	cfg    models.PaymentConfig
	client *httpclient.Client
	cache  *database.RedisClient
}

// NewProcessorClient creates a new processor gateway instance
func NewProcessorClient(cfg models.PaymentConfig, cache *database.RedisClient) *ProcessorClient {
	return &ProcessorClient{
		cfg:    cfg,
		client: httpclient.NewClient(cfg.BaseURL, time.Duration(cfg.Timeout)*time.Second),
		cache:  cache,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

type orderResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type captureResponse struct {
	ID            string `json:"id"`
	Status        string `json:"status"`
	PurchaseUnits []struct {
		ReferenceID string `json:"reference_id"`
		Payments    struct {
			Captures []struct {
				ID     string `json:"id"`
				Amount struct {
					CurrencyCode string `json:"currency_code"`
					Value        string `json:"value"`
				} `json:"amount"`
			} `json:"captures"`
		} `json:"payments"`
	} `json:"purchase_units"`
}

// CreateOrder opens a two-phase order with one purchase unit
func (p *ProcessorClient) CreateOrder(ctx context.Context, referenceID string, total float64, currency, description string) (*models.ProcessorOrder, error) {
	body := map[string]interface{}{
		"intent": "CAPTURE",
		"purchase_units": []map[string]interface{}{
			{
				"reference_id": referenceID,
				"description":  description,
				"amount": map[string]string{
					"currency_code": currency,
					"value":         fmt.Sprintf("%.2f", total),
				},
			},
		},
	}

	var order orderResponse
	if err := p.post(ctx, "/v2/checkout/orders", body, &order); err != nil {
		return nil, err
	}

	return &models.ProcessorOrder{
		ID:     order.ID,
		Status: order.Status,
	}, nil
}

// CaptureOrder settles a previously created order
func (p *ProcessorClient) CaptureOrder(ctx context.Context, orderID string) (*models.ProcessorCapture, error) {
	var capture captureResponse
	path := fmt.Sprintf("/v2/checkout/orders/%s/capture", url.PathEscape(orderID))
	if err := p.post(ctx, path, nil, &capture); err != nil {
		return nil, err
	}

	result := &models.ProcessorCapture{
		OrderID: capture.ID,
		Status:  capture.Status,
	}

	if len(capture.PurchaseUnits) > 0 {
		unit := capture.PurchaseUnits[0]
		result.ReferenceID = unit.ReferenceID
		if len(unit.Payments.Captures) > 0 {
			settled := unit.Payments.Captures[0]
			result.TransactionID = settled.ID
			result.Currency = settled.Amount.CurrencyCode
			if amount, err := strconv.ParseFloat(settled.Amount.Value, 64); err == nil {
				result.Amount = amount
			}
		}
	}

	return result, nil
}

// post issues an authenticated JSON request with the configured timeout
func (p *ProcessorClient) post(ctx context.Context, path string, body interface{}, out interface{}) error {
	token, err := p.accessToken(ctx)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(p.cfg.Timeout)*time.Second)
	defer cancel()

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal processor request: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.BaseURL+path, payload)
	if err != nil {
		return fmt.Errorf("failed to create processor request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := p.client.HTTPClient.Do(req)
	if err != nil {
		return apperr.External("processor_unreachable", "payment processor request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return apperr.External("processor_rejected",
			fmt.Sprintf("payment processor returned status %d: %s", resp.StatusCode, string(raw)), nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperr.External("processor_bad_response", "failed to decode processor response", err)
	}
	return nil
}

// accessToken returns a cached bearer token or fetches a fresh one
func (p *ProcessorClient) accessToken(ctx context.Context) (string, error) {
	if token, err := p.cache.Get(ctx, tokenCacheKey); err == nil && token != "" {
		return token, nil
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(p.cfg.Timeout)*time.Second)
	defer cancel()

	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		p.cfg.BaseURL+"/v1/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create token request: %w", err)
	}
	req.SetBasicAuth(p.cfg.ClientID, p.cfg.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.client.HTTPClient.Do(req)
	if err != nil {
		return "", apperr.External("processor_unreachable", "token request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", apperr.External("processor_auth_failed",
			fmt.Sprintf("token endpoint returned status %d: %s", resp.StatusCode, string(raw)), nil)
	}

	var token tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", apperr.External("processor_bad_response", "failed to decode token response", err)
	}
	if token.AccessToken == "" {
		return "", apperr.External("processor_auth_failed", "token endpoint returned no token", nil)
	}

	ttl := time.Duration(token.ExpiresIn)*time.Second - tokenExpiryMargin
	if ttl > 0 {
		if err := p.cache.Set(ctx, tokenCacheKey, token.AccessToken, ttl); err != nil {
			logger.Warn("Failed to cache processor token", logger.Err(err))
		}
	}

	return token.AccessToken, nil
}
