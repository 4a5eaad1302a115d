package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"oushodcloud-web/config"
)

func TestSendSMS_SkipsWhenKeyMissing(t *testing.T) {
	svc := NewSMSService(config.SMSConfig{APIURL: "http://bulksmsbd.net/api/smsapi"}, zap.NewNop())

	outcome := svc.SendSMS(context.Background(), "+8801111111111", "hello")
	assert.Equal(t, NotificationSkipped, outcome)
}

func TestSendSMS_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "secret", r.PostForm.Get("api_key"))
		assert.Equal(t, "+8801111111111", r.PostForm.Get("to"))
		assert.Equal(t, "OushodCloud", r.PostForm.Get("senderid"))
		assert.NotEmpty(t, r.PostForm.Get("msg"))

		w.Write([]byte(`{"status":"success"}`))
	}))
	defer server.Close()

	svc := NewSMSService(config.SMSConfig{
		APIKey:   "secret",
		SenderID: "OushodCloud",
		APIURL:   server.URL,
	}, zap.NewNop())

	outcome := svc.SendSMS(context.Background(), "+8801111111111", "Your OushodCloud order OC-1006 has been received.")
	assert.Equal(t, NotificationSent, outcome)
}

// The notifier is best-effort: no gateway behavior may turn into an error for
// the order flow.
func TestSendSMS_NeverFailsTheCaller(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"non-200 response", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"malformed json", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("ERROR 1002: sender id not correct"))
		}},
		{"gateway reports failure", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"error","message":"insufficient balance"}`))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			svc := NewSMSService(config.SMSConfig{
				APIKey:   "secret",
				SenderID: "OushodCloud",
				APIURL:   server.URL,
			}, zap.NewNop())

			outcome := svc.SendSMS(context.Background(), "+8801111111111", "hello")
			assert.Equal(t, NotificationFailed, outcome)
		})
	}
}

func TestSendSMS_UnreachableGateway(t *testing.T) {
	svc := NewSMSService(config.SMSConfig{
		APIKey:   "secret",
		SenderID: "OushodCloud",
		APIURL:   "http://127.0.0.1:1",
	}, zap.NewNop())

	outcome := svc.SendSMS(context.Background(), "+8801111111111", "hello")
	assert.Equal(t, NotificationFailed, outcome)
}
