package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"oushodcloud-web/config"
	"oushodcloud-web/controllers"
	"oushodcloud-web/models"
	"oushodcloud-web/repository"
	"oushodcloud-web/routes"
	"oushodcloud-web/services"
	"oushodcloud-web/store"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	documentStore := store.NewMemoryStore()
	logger := zap.NewNop()

	orderRepo := repository.NewOrderRepository(documentStore)
	demoRepo := repository.NewDemoRequestRepository(documentStore)
	smsService := services.NewSMSService(config.SMSConfig{}, logger)
	orderService := services.NewOrderService(orderRepo, smsService, logger)
	demoService := services.NewDemoRequestService(demoRepo, logger)
	pricingService := services.NewPricingService(logger)
	hub := controllers.NewHub(logger)

	router := gin.New()
	routes.OrderRoutes(router, orderService, hub)
	routes.DemoRequestRoutes(router, demoService, hub)
	routes.PricingRoutes(router, pricingService)
	routes.AdminRoutes(router, orderService, demoService, hub)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func checkoutPayload() map[string]interface{} {
	return map[string]interface{}{
		"customer":     map[string]string{"name": "A", "email": "a@b.com"},
		"plan":         "Starter",
		"totalPrice":   "৳699",
		"status":       "Pending Payment",
		"addons":       []string{},
		"pharmacyName": "Test Pharma",
		"mobile":       "+8801111111111",
		"address":      "X",
	}
}

func TestSubmitOrderEndpoint(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/orders", checkoutPayload())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.NotEmpty(t, order.ID)
	assert.Regexp(t, `^OC-\d+$`, order.Order_id)
	assert.Equal(t, "Pending Payment", order.Status)
	assert.Equal(t, "Test Pharma", order.PharmacyName)
}

func TestSubmitOrderEndpoint_RejectsInvalidInput(t *testing.T) {
	router := newTestRouter()

	payload := checkoutPayload()
	payload["pharmacyName"] = ""
	w := doJSON(t, router, http.MethodPost, "/api/orders", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var orders []models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	assert.Empty(t, orders)
}

func TestOrderStatusEndpoint(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/orders", checkoutPayload())
	require.Equal(t, http.StatusOK, w.Code)
	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))

	w = doJSON(t, router, http.MethodPatch, "/api/orders/"+order.ID+"/status",
		map[string]string{"status": "Paid"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPatch, "/api/orders/missing-id/status",
		map[string]string{"status": "Paid"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodPatch, "/api/orders/"+order.ID+"/status",
		map[string]string{"status": "Refunded"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteOrderEndpoint(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/orders", checkoutPayload())
	require.Equal(t, http.StatusOK, w.Code)
	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))

	w = doJSON(t, router, http.MethodDelete, "/api/orders/"+order.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/api/orders/"+order.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPaymentLinkSMSEndpoint(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/orders", checkoutPayload())
	require.Equal(t, http.StatusOK, w.Code)
	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))

	// No SMS key configured in tests: the endpoint still succeeds with a
	// "Skipped" outcome.
	w = doJSON(t, router, http.MethodPost, "/api/orders/"+order.ID+"/payment-sms",
		map[string]string{"paymentUrl": "https://pay.example/abc"})
	require.Equal(t, http.StatusOK, w.Code)
	var result map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "Skipped", result["outcome"])

	w = doJSON(t, router, http.MethodPost, "/api/orders/"+order.ID+"/payment-sms",
		map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/orders/missing-id/payment-sms",
		map[string]string{"paymentUrl": "https://pay.example/abc"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPricingEndpoints(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodGet, "/api/pricing", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var data models.PricingData
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &data))
	assert.Len(t, data.PricingTiers, 3)

	w = doJSON(t, router, http.MethodPut, "/api/pricing",
		map[string]interface{}{"pricingTiers": []models.PricingTier{}})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/pricing", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &data))
	assert.Empty(t, data.PricingTiers)
	assert.Len(t, data.Addons, 2)
}

func TestDashboardEndpoint(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/orders", checkoutPayload())
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, router, http.MethodPost, "/api/demo-requests", map[string]string{
		"name":   "Faria Islam",
		"email":  "faria@example.com",
		"mobile": "+8801222222222",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodGet, "/api/admin/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var dashboard struct {
		Orders       []models.Order       `json:"orders"`
		DemoRequests []models.DemoRequest `json:"demoRequests"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dashboard))
	assert.Len(t, dashboard.Orders, 1)
	assert.Len(t, dashboard.DemoRequests, 1)
}
