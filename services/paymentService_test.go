package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"oushodcloud-web/apperrors"
	"oushodcloud-web/config"
)

func validPaymentInput() CreatePaymentInput {
	return CreatePaymentInput{
		FullName: "A",
		Email:    "a@b.com",
		Amount:   699,
		Metadata: PaymentMetadata{OrderID: "OC-1006", Plan: "Starter"},
	}
}

func TestCreatePayment_FailsClosedOnMissingConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.PaymentConfig
	}{
		{"missing api key", config.PaymentConfig{APIURL: "https://pay.example", HostURL: "https://oushodcloud.com"}},
		{"missing api url", config.PaymentConfig{APIKey: "key", HostURL: "https://oushodcloud.com"}},
		{"missing host url", config.PaymentConfig{APIKey: "key", APIURL: "https://pay.example"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewPaymentService(tt.cfg, zap.NewNop())
			url, err := svc.CreatePayment(context.Background(), validPaymentInput())
			require.Error(t, err)
			assert.Empty(t, url)
			_, ok := apperrors.IsUpstreamError(err)
			assert.True(t, ok)
		})
	}
}

func TestCreatePayment_Success(t *testing.T) {
	var gotPayload map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/checkout", r.URL.Path)
		assert.Equal(t, "secret-key", r.Header.Get("RT-UDDOKTAPAY-API-KEY"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":      true,
			"payment_url": "https://pay.example/session/abc",
		})
	}))
	defer server.Close()

	svc := NewPaymentService(config.PaymentConfig{
		APIKey:  "secret-key",
		APIURL:  server.URL,
		HostURL: "https://oushodcloud.com",
	}, zap.NewNop())

	url, err := svc.CreatePayment(context.Background(), validPaymentInput())
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example/session/abc", url)

	assert.Equal(t, "A", gotPayload["full_name"])
	assert.Equal(t, "a@b.com", gotPayload["email"])
	assert.Equal(t, float64(699), gotPayload["amount"])
	assert.Equal(t, "https://oushodcloud.com/checkout/success", gotPayload["redirect_url"])
	assert.Equal(t, "https://oushodcloud.com/checkout/cancel", gotPayload["cancel_url"])
	metadata, ok := gotPayload["metadata"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "OC-1006", metadata["orderId"])
	assert.Equal(t, "Starter", metadata["plan"])
}

func TestCreatePayment_GatewayRejectsRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	svc := NewPaymentService(config.PaymentConfig{
		APIKey:  "bad-key",
		APIURL:  server.URL,
		HostURL: "https://oushodcloud.com",
	}, zap.NewNop())

	_, err := svc.CreatePayment(context.Background(), validPaymentInput())
	require.Error(t, err)
	_, ok := apperrors.IsUpstreamError(err)
	assert.True(t, ok)
}

func TestCreatePayment_GatewayOmitsPaymentURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  false,
			"message": "invalid amount",
		})
	}))
	defer server.Close()

	svc := NewPaymentService(config.PaymentConfig{
		APIKey:  "key",
		APIURL:  server.URL,
		HostURL: "https://oushodcloud.com",
	}, zap.NewNop())

	url, err := svc.CreatePayment(context.Background(), validPaymentInput())
	require.Error(t, err)
	assert.Empty(t, url)
}

func TestCreatePayment_ValidatesInput(t *testing.T) {
	svc := NewPaymentService(config.PaymentConfig{
		APIKey:  "key",
		APIURL:  "https://pay.example",
		HostURL: "https://oushodcloud.com",
	}, zap.NewNop())

	input := validPaymentInput()
	input.Email = "not-an-email"
	_, err := svc.CreatePayment(context.Background(), input)
	require.Error(t, err)
	_, ok := apperrors.IsValidationError(err)
	assert.True(t, ok)
}
