package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tukangku/server/internal/pkg/apperr"
	"github.com/tukangku/server/internal/pkg/database"
	"github.com/tukangku/server/internal/pkg/models"
)

func setupProcessorTest(t *testing.T, handler http.Handler) (*ProcessorClient, *miniredis.Miniredis, func()) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := &database.RedisClient{Client: client}

	server := httptest.NewServer(handler)

	processor := NewProcessorClient(models.PaymentConfig{
		BaseURL:      server.URL,
		ClientID:     "client-abc",
		ClientSecret: "client-secret",
		Currency:     "USD",
		Timeout:      5,
	}, cache)

	cleanup := func() {
		server.Close()
		client.Close()
		mr.Close()
	}
	return processor, mr, cleanup
}

func tokenEndpoint(t *testing.T, calls *int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		*calls++
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "client-abc", user)
		assert.Equal(t, "client-secret", pass)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.Form.Get("grant_type"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "token-123",
			"expires_in":   3600,
		})
	}
}

func TestProcessorClient_CreateOrder(t *testing.T) {
	tokenCalls := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/oauth2/token", tokenEndpoint(t, &tokenCalls))
	mux.HandleFunc("/v2/checkout/orders", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "CAPTURE", body["intent"])

		units := body["purchase_units"].([]interface{})
		require.Len(t, units, 1)
		unit := units[0].(map[string]interface{})
		assert.Equal(t, "booking-1", unit["reference_id"])
		amount := unit["amount"].(map[string]interface{})
		assert.Equal(t, "USD", amount["currency_code"])
		assert.Equal(t, "1.81", amount["value"])

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "ORDER-1", "status": "CREATED"})
	})

	processor, _, cleanup := setupProcessorTest(t, mux)
	defer cleanup()

	order, err := processor.CreateOrder(context.Background(), "booking-1", 1.81, "USD", "TukangKu booking")

	require.NoError(t, err)
	assert.Equal(t, "ORDER-1", order.ID)
	assert.Equal(t, "CREATED", order.Status)
	assert.Equal(t, 1, tokenCalls)
}

func TestProcessorClient_TokenIsCached(t *testing.T) {
	tokenCalls := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/oauth2/token", tokenEndpoint(t, &tokenCalls))
	mux.HandleFunc("/v2/checkout/orders", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "ORDER-1", "status": "CREATED"})
	})

	processor, mr, cleanup := setupProcessorTest(t, mux)
	defer cleanup()

	_, err := processor.CreateOrder(context.Background(), "booking-1", 1.81, "USD", "")
	require.NoError(t, err)
	_, err = processor.CreateOrder(context.Background(), "booking-2", 4.22, "USD", "")
	require.NoError(t, err)

	// second call is served from the cached token
	assert.Equal(t, 1, tokenCalls)
	cached, err := mr.Get(tokenCacheKey)
	require.NoError(t, err)
	assert.Equal(t, "token-123", cached)
}

func TestProcessorClient_CaptureOrder(t *testing.T) {
	tokenCalls := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/oauth2/token", tokenEndpoint(t, &tokenCalls))
	mux.HandleFunc("/v2/checkout/orders/ORDER-1/capture", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":     "ORDER-1",
			"status": "COMPLETED",
			"purchase_units": []map[string]interface{}{
				{
					"reference_id": "booking-1",
					"payments": map[string]interface{}{
						"captures": []map[string]interface{}{
							{
								"id": "TXN-9",
								"amount": map[string]string{
									"currency_code": "USD",
									"value":         "1.81",
								},
							},
						},
					},
				},
			},
		})
	})

	processor, _, cleanup := setupProcessorTest(t, mux)
	defer cleanup()

	capture, err := processor.CaptureOrder(context.Background(), "ORDER-1")

	require.NoError(t, err)
	assert.Equal(t, "ORDER-1", capture.OrderID)
	assert.Equal(t, "booking-1", capture.ReferenceID)
	assert.Equal(t, "COMPLETED", capture.Status)
	assert.Equal(t, "TXN-9", capture.TransactionID)
	assert.Equal(t, 1.81, capture.Amount)
	assert.Equal(t, "USD", capture.Currency)
}

func TestProcessorClient_CaptureOrder_NoCaptures(t *testing.T) {
	tokenCalls := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/oauth2/token", tokenEndpoint(t, &tokenCalls))
	mux.HandleFunc("/v2/checkout/orders/ORDER-1/capture", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"id": "ORDER-1", "status": "PENDING"})
	})

	processor, _, cleanup := setupProcessorTest(t, mux)
	defer cleanup()

	capture, err := processor.CaptureOrder(context.Background(), "ORDER-1")

	require.NoError(t, err)
	assert.Equal(t, "PENDING", capture.Status)
	assert.Empty(t, capture.TransactionID)
}

func TestProcessorClient_Rejected(t *testing.T) {
	tokenCalls := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/oauth2/token", tokenEndpoint(t, &tokenCalls))
	mux.HandleFunc("/v2/checkout/orders", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]string{"name": "UNPROCESSABLE_ENTITY"})
	})

	processor, _, cleanup := setupProcessorTest(t, mux)
	defer cleanup()

	_, err := processor.CreateOrder(context.Background(), "booking-1", 1.81, "USD", "")

	require.Error(t, err)
	assert.Equal(t, apperr.KindExternal, apperr.KindOf(err))
	assert.Equal(t, "processor_rejected", apperr.CodeOf(err))
}

func TestProcessorClient_AuthFailed(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	processor, _, cleanup := setupProcessorTest(t, mux)
	defer cleanup()

	_, err := processor.CreateOrder(context.Background(), "booking-1", 1.81, "USD", "")

	require.Error(t, err)
	assert.Equal(t, apperr.KindExternal, apperr.KindOf(err))
	assert.Equal(t, "processor_auth_failed", apperr.CodeOf(err))
}
