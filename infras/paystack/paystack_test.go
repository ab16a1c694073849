package paystack_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tiara/config"
	otelMocks "tiara/infras/otel/mocks"
	"tiara/infras/paystack"
)

func newClient(t *testing.T, baseURL, secretKey string) paystack.Paystack {
	t.Helper()

	cfg := &config.Config{}
	cfg.External.Paystack.BaseURL = baseURL
	cfg.External.Paystack.SecretKey = secretKey

	return paystack.New(cfg, otelMocks.NewOtel())
}

func TestPaystack_Initialize(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/transaction/initialize", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_key", r.Header.Get("Authorization"))

		var req paystack.InitializeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "diner@example.com", req.Email)
		assert.Equal(t, int64(1000000), req.AmountMinor)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": true,
			"message": "Authorization URL created",
			"data": {
				"authorization_url": "https://checkout.paystack.com/abc123",
				"access_code": "abc123",
				"reference": "` + req.Reference + `"
			}
		}`))
	}))
	defer server.Close()

	client := newClient(t, server.URL, "sk_test_key")

	res, err := client.Initialize(context.Background(), paystack.InitializeRequest{
		Email:       "diner@example.com",
		AmountMinor: 1000000,
		Reference:   "EET-1700000000000-XYZ",
		CallbackURL: "https://example.com/payment/verify",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://checkout.paystack.com/abc123", res.AuthorizationURL)
	assert.Equal(t, "EET-1700000000000-XYZ", res.Reference)
}

func TestPaystack_Initialize_MissingSecretKey(t *testing.T) {
	client := newClient(t, "http://localhost:1", "")

	_, err := client.Initialize(context.Background(), paystack.InitializeRequest{})

	assert.ErrorIs(t, err, paystack.ErrMissingSecretKey)
}

func TestPaystack_Verify(t *testing.T) {
	tests := []struct {
		name       string
		status     string
		successful bool
	}{
		{name: "successful charge", status: "success", successful: true},
		{name: "abandoned charge", status: "abandoned", successful: false},
		{name: "failed charge", status: "failed", successful: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/transaction/verify/EET-1700000000000-XYZ", r.URL.Path)

				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{
					"status": true,
					"message": "Verification successful",
					"data": {
						"id": 4099260516,
						"status": "` + tt.status + `",
						"reference": "EET-1700000000000-XYZ",
						"amount": 1000000,
						"paid_at": "2026-01-02T14:00:00.000Z"
					}
				}`))
			}))
			defer server.Close()

			client := newClient(t, server.URL, "sk_test_key")

			res, err := client.Verify(context.Background(), "EET-1700000000000-XYZ")

			require.NoError(t, err)
			assert.Equal(t, tt.successful, res.Successful())
			assert.Equal(t, "EET-1700000000000-XYZ", res.Reference)
		})
	}
}

func TestPaystack_Verify_GatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"status": false, "message": "Transaction reference not found"}`))
	}))
	defer server.Close()

	client := newClient(t, server.URL, "sk_test_key")

	_, err := client.Verify(context.Background(), "missing-reference")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Transaction reference not found")
}
