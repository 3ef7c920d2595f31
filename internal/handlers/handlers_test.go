package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"store-profit-api/internal/adapters/storage"
	"store-profit-api/internal/services"
	"store-profit-api/internal/store"
)

// newTestRouter wires the full route table over a real store so handler tests
// exercise the same stack the server runs.
func newTestRouter(demoMode bool) (*gin.Engine, *store.Store) {
	gin.SetMode(gin.TestMode)

	st := store.New()
	if demoMode {
		st.SetDemoMode(true)
	}
	files := storage.NewMockFileStorage()
	container, err := services.NewServiceContainer(st, files, nil)
	if err != nil {
		panic(err)
	}

	router := gin.New()
	SetupRoutes(router, &RouterConfig{
		EconomicsService:      container.EconomicsService,
		PnLService:            container.PnLService,
		CashFlowService:       container.CashFlowService,
		InventoryService:      container.InventoryService,
		ProductMetricsService: container.ProductMetricsService,
		DecisionService:       container.DecisionService,
		RegistryService:       container.RegistryService,
		ConnectorService:      container.ConnectorService,
	})
	return router, st
}

func doRequest(router *gin.Engine, method, target string, body []byte) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// TestHealthEndpoint verifies the liveness probe
func TestHealthEndpoint(t *testing.T) {
	router, _ := newTestRouter(false)

	rec := doRequest(router, http.MethodGet, "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "store-profit-api") {
		t.Error("Expected service name in health payload")
	}
}

// TestGetOrderEconomicsEndpoint verifies the order derivation route,
// including the escaped hash in platform order IDs.
func TestGetOrderEconomicsEndpoint(t *testing.T) {
	router, _ := newTestRouter(true)

	rec := doRequest(router, http.MethodGet, "/api/v1/orders/%2310234/economics", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var eco map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &eco); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if eco["revenue"].(float64) != 299 {
		t.Errorf("Expected revenue 299, got %v", eco["revenue"])
	}
}

// TestGetOrderEconomicsNotFound verifies the 404 path
func TestGetOrderEconomicsNotFound(t *testing.T) {
	router, _ := newTestRouter(true)

	rec := doRequest(router, http.MethodGet, "/api/v1/orders/%2399999/economics", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", rec.Code)
	}
}

// TestGetPnLEndpoint verifies the statement route and the period guard
func TestGetPnLEndpoint(t *testing.T) {
	router, _ := newTestRouter(true)

	rec := doRequest(router, http.MethodGet, "/api/v1/reports/pnl", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var statement map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &statement); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if statement["revenue"].(float64) != 1145 {
		t.Errorf("Expected revenue 1145, got %v", statement["revenue"])
	}

	rec = doRequest(router, http.MethodGet, "/api/v1/reports/pnl?period=THIS_QUARTER", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for unsupported period, got %d", rec.Code)
	}
}

// TestAdvisoryEndpointsNoContent verifies both advisors answer 204 with no
// order history.
func TestAdvisoryEndpointsNoContent(t *testing.T) {
	router, _ := newTestRouter(false)

	for _, path := range []string{"/api/v1/ceo/decision", "/api/v1/ceo/briefing"} {
		rec := doRequest(router, http.MethodGet, path, nil)
		if rec.Code != http.StatusNoContent {
			t.Errorf("Expected 204 for %s, got %d", path, rec.Code)
		}
	}
}

// TestAdvisoryEndpointsDemoData verifies the demo store produces a decision
// and a briefing.
func TestAdvisoryEndpointsDemoData(t *testing.T) {
	router, _ := newTestRouter(true)

	rec := doRequest(router, http.MethodGet, "/api/v1/ceo/decision", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "RISK") {
		t.Error("Expected a RISK decision for the demo dataset")
	}

	rec = doRequest(router, http.MethodGet, "/api/v1/ceo/briefing", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "CRITICAL") {
		t.Error("Expected a CRITICAL briefing for the demo dataset")
	}
}

// TestUpdateProductCostEndpoint verifies the mutation round trip: write the
// cost, read it back through the economics route.
func TestUpdateProductCostEndpoint(t *testing.T) {
	router, _ := newTestRouter(true)

	rec := doRequest(router, http.MethodPut, "/api/v1/products/1/cost", []byte(`{"amount": 150}`))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("Expected 204, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(router, http.MethodGet, "/api/v1/orders/%2310234/economics", nil)
	var eco map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &eco); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if eco["cogs"].(float64) != 150 {
		t.Errorf("Expected COGS 150 after update, got %v", eco["cogs"])
	}
}

// TestUpdateProductCostNotFoundEndpoint verifies unknown products answer 404
func TestUpdateProductCostNotFoundEndpoint(t *testing.T) {
	router, _ := newTestRouter(true)

	rec := doRequest(router, http.MethodPut, "/api/v1/products/missing/cost", []byte(`{"amount": 10}`))
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", rec.Code)
	}
}

// TestUpdatePaymentRuleEndpoint verifies the closed method set answers 400
// and a valid update answers 204.
func TestUpdatePaymentRuleEndpoint(t *testing.T) {
	router, _ := newTestRouter(true)

	rec := doRequest(router, http.MethodPut, "/api/v1/rules/payment/MADA", []byte(`{"percent_fee": 2, "fixed_fee": 0}`))
	if rec.Code != http.StatusNoContent {
		t.Errorf("Expected 204, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(router, http.MethodPut, "/api/v1/rules/payment/CRYPTO", []byte(`{"percent_fee": 2}`))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for unknown method, got %d", rec.Code)
	}
}

// TestUpdateCostEndpointsTolerateDirtyAmounts verifies garbage amount values
// coerce to zero instead of failing the bind.
func TestUpdateCostEndpointsTolerateDirtyAmounts(t *testing.T) {
	router, st := newTestRouter(true)

	rec := doRequest(router, http.MethodPut, "/api/v1/rules/shipping/DHL", []byte(`{"amount": "garbage"}`))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("Expected 204, got %d: %s", rec.Code, rec.Body.String())
	}

	for _, rule := range st.Snapshot().ShippingRules {
		if rule.Carrier == "DHL" && rule.Cost != 0 {
			t.Errorf("Expected DHL cost coerced to 0, got %v", rule.Cost)
		}
	}
}

// TestToggleFixedCostEndpoint verifies toggle and its 404 path
func TestToggleFixedCostEndpoint(t *testing.T) {
	router, st := newTestRouter(true)

	rec := doRequest(router, http.MethodPost, "/api/v1/fixed-costs/fc-1/toggle", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("Expected 204, got %d", rec.Code)
	}
	for _, fc := range st.Snapshot().FixedCosts {
		if fc.ID == "fc-1" && fc.Active {
			t.Error("Expected fc-1 inactive after toggle")
		}
	}

	rec = doRequest(router, http.MethodPost, "/api/v1/fixed-costs/missing/toggle", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", rec.Code)
	}
}

// TestAddAdSpendEndpoint verifies creation and the platform whitelist
func TestAddAdSpendEndpoint(t *testing.T) {
	router, _ := newTestRouter(true)

	rec := doRequest(router, http.MethodPost, "/api/v1/ads", []byte(`{"platform": "GOOGLE", "amount": 350, "type": "INVOICE"}`))
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var ad map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &ad); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if ad["id"] == "" {
		t.Error("Expected a generated ad spend ID")
	}

	rec = doRequest(router, http.MethodPost, "/api/v1/ads", []byte(`{"platform": "FACEBOOK", "amount": 100}`))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for unknown platform, got %d", rec.Code)
	}
}

// TestAddExpenseEndpoint verifies ledger entry creation
func TestAddExpenseEndpoint(t *testing.T) {
	router, st := newTestRouter(false)

	rec := doRequest(router, http.MethodPost, "/api/v1/expenses", []byte(`{"amount": 75, "type": "OPERATING", "description": "Courier dispute fee"}`))
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(st.Snapshot().Expenses) != 1 {
		t.Errorf("Expected 1 expense, got %d", len(st.Snapshot().Expenses))
	}
}

// TestDemoModeEndpoint verifies the demo toggle reports status
func TestDemoModeEndpoint(t *testing.T) {
	router, st := newTestRouter(false)

	rec := doRequest(router, http.MethodPost, "/api/v1/system/demo", []byte(`{"enabled": true}`))
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var status map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &status); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if status["demo_mode"] != true {
		t.Error("Expected demo_mode true in status")
	}
	if len(st.Snapshot().Orders) == 0 {
		t.Error("Expected demo orders loaded")
	}
}

// TestConnectionEndpoints verifies the connect, status and disconnect routes
func TestConnectionEndpoints(t *testing.T) {
	router, _ := newTestRouter(false)

	rec := doRequest(router, http.MethodPost, "/api/v1/system/connect", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	rec = doRequest(router, http.MethodGet, "/api/v1/system/status", nil)
	var status map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &status); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if status["connected"] != true {
		t.Error("Expected connected status")
	}
	if status["last_sync"] == "" {
		t.Error("Expected a last sync stamp")
	}

	rec = doRequest(router, http.MethodPost, "/api/v1/system/disconnect", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), `"connected":true`) {
		t.Error("Expected disconnected status")
	}
}

// TestUploadInvoiceEndpoint verifies the multipart upload answers 201 with
// the recorded placeholder cost.
func TestUploadInvoiceEndpoint(t *testing.T) {
	router, st := newTestRouter(false)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "october.pdf")
	if err != nil {
		t.Fatalf("CreateFormFile failed: %v", err)
	}
	part.Write([]byte("%PDF-1.4 fake invoice"))
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/system/invoices", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "PLATFORM_INVOICE") {
		t.Error("Expected platform invoice source in response")
	}
	if len(st.Snapshot().FixedCosts) != 1 {
		t.Errorf("Expected 1 fixed cost, got %d", len(st.Snapshot().FixedCosts))
	}
}

// TestUploadInvoiceMissingFile verifies the multipart guard
func TestUploadInvoiceMissingFile(t *testing.T) {
	router, _ := newTestRouter(false)

	rec := doRequest(router, http.MethodPost, "/api/v1/system/invoices", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 without a file part, got %d", rec.Code)
	}
}
