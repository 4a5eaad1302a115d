package services

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-playground/validator"
	"go.uber.org/zap"

	"oushodcloud-web/apperrors"
	"oushodcloud-web/config"
)

type PaymentMetadata struct {
	OrderID string `json:"orderId"`
	Plan    string `json:"plan"`
}

type CreatePaymentInput struct {
	FullName string          `json:"fullName" validate:"required"`
	Email    string          `json:"email" validate:"required,email"`
	Amount   float64         `json:"amount" validate:"required,gt=0"`
	Metadata PaymentMetadata `json:"metadata"`
}

// PaymentService requests hosted checkout URLs from the UddoktaPay gateway.
// Missing configuration fails closed; gateway failures surface to the caller
// with no retry.
type PaymentService struct {
	apiKey  string
	apiURL  string
	hostURL string
	client  *http.Client
	logger  *zap.Logger
}

func NewPaymentService(cfg config.PaymentConfig, logger *zap.Logger) *PaymentService {
	return &PaymentService{
		apiKey:  cfg.APIKey,
		apiURL:  cfg.APIURL,
		hostURL: cfg.HostURL,
		client:  &http.Client{Timeout: 30 * time.Second},
		logger:  logger,
	}
}

type checkoutRequest struct {
	FullName    string          `json:"full_name"`
	Email       string          `json:"email"`
	Amount      float64         `json:"amount"`
	Metadata    PaymentMetadata `json:"metadata"`
	RedirectURL string          `json:"redirect_url"`
	CancelURL   string          `json:"cancel_url"`
}

type checkoutResponse struct {
	Status     bool   `json:"status"`
	PaymentURL string `json:"payment_url"`
	Message    string `json:"message"`
}

// CreatePayment returns the hosted checkout URL for the given amount.
func (s *PaymentService) CreatePayment(ctx context.Context, input CreatePaymentInput) (string, error) {
	if s.apiKey == "" {
		return "", apperrors.NewUpstreamError("payment gateway api key not configured", nil)
	}
	if s.apiURL == "" {
		return "", apperrors.NewUpstreamError("payment gateway api url not configured", nil)
	}
	if s.hostURL == "" {
		return "", apperrors.NewUpstreamError("host url not configured", nil)
	}

	if err := validate.Struct(input); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok {
			return "", validationError("invalid payment input", fieldErrs)
		}
		return "", err
	}

	payload := checkoutRequest{
		FullName:    input.FullName,
		Email:       input.Email,
		Amount:      input.Amount,
		Metadata:    input.Metadata,
		RedirectURL: s.hostURL + "/checkout/success",
		CancelURL:   s.hostURL + "/checkout/cancel",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", apperrors.NewInternalError("failed to encode checkout payload", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL+"/api/checkout", bytes.NewReader(body))
	if err != nil {
		return "", apperrors.NewInternalError("failed to build checkout request", err)
	}
	req.Header.Set("RT-UDDOKTAPAY-API-KEY", s.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", apperrors.NewUpstreamError("payment gateway request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		errBody, _ := io.ReadAll(resp.Body)
		s.logger.Error("payment gateway returned error status",
			zap.Int("status_code", resp.StatusCode),
			zap.ByteString("body", errBody))
		return "", apperrors.NewUpstreamError("payment gateway request failed", nil)
	}

	var result checkoutResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", apperrors.NewUpstreamError("failed to decode payment gateway response", err)
	}

	if !result.Status || result.PaymentURL == "" {
		s.logger.Error("payment gateway did not return a payment url",
			zap.String("gateway_message", result.Message))
		return "", apperrors.NewUpstreamError("failed to get payment url from gateway", nil)
	}

	s.logger.Info("payment link created", zap.String("order_id", input.Metadata.OrderID))
	return result.PaymentURL, nil
}
