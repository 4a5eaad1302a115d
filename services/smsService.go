package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"oushodcloud-web/config"
)

// NotificationOutcome reports what happened to a best-effort SMS without ever
// failing the request that triggered it.
type NotificationOutcome string

const (
	NotificationSent    NotificationOutcome = "Sent"
	NotificationSkipped NotificationOutcome = "Skipped"
	NotificationFailed  NotificationOutcome = "Failed"
)

// SMSService posts messages to the BulkSMSBD gateway. A missing API key
// downgrades every send to a logged skip so unconfigured environments never
// block order creation.
type SMSService struct {
	apiKey   string
	senderID string
	apiURL   string
	client   *http.Client
	logger   *zap.Logger
}

func NewSMSService(cfg config.SMSConfig, logger *zap.Logger) *SMSService {
	return &SMSService{
		apiKey:   cfg.APIKey,
		senderID: cfg.SenderID,
		apiURL:   cfg.APIURL,
		client:   &http.Client{Timeout: 15 * time.Second},
		logger:   logger,
	}
}

func (s *SMSService) SendSMS(ctx context.Context, to string, message string) NotificationOutcome {
	if s.apiKey == "" {
		s.logger.Warn("sms api key not configured, skipping message", zap.String("to", to))
		return NotificationSkipped
	}

	form := url.Values{
		"api_key":  {s.apiKey},
		"senderid": {s.senderID},
		"to":       {to},
		"msg":      {message},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, strings.NewReader(form.Encode()))
	if err != nil {
		s.logger.Error("failed to build sms request", zap.Error(err))
		return NotificationFailed
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error("sms gateway request failed", zap.String("to", to), zap.Error(err))
		return NotificationFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.Error("sms gateway returned non-200 status",
			zap.String("to", to),
			zap.Int("status_code", resp.StatusCode))
		return NotificationFailed
	}

	var result struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		s.logger.Error("failed to decode sms gateway response", zap.Error(err))
		return NotificationFailed
	}

	if result.Status != "success" {
		s.logger.Error("sms gateway reported failure",
			zap.String("to", to),
			zap.String("gateway_status", result.Status),
			zap.String("gateway_message", result.Message))
		return NotificationFailed
	}

	s.logger.Info("sms delivered", zap.String("to", to))
	return NotificationSent
}
