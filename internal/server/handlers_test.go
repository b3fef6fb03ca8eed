package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fylr/fylr-engine/internal/catalog"
	"github.com/fylr/fylr-engine/internal/complexity"
	"github.com/fylr/fylr-engine/internal/engine"
	"github.com/fylr/fylr-engine/internal/startup"
	"github.com/fylr/fylr-engine/internal/taxengine"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	cat := catalog.Default()
	parser := engine.NewParser(cat, engine.NewKeywordClassifier(cat), nil)

	taxes, err := taxengine.NewEngine(2025)
	require.NoError(t, err)

	return New(
		Config{Addr: ":0"},
		parser,
		complexity.NewAssessor(nil),
		startup.NewOptimizer(nil),
		taxes,
		nil, // no ledger in handler tests
		nil,
	)
}

func postJSON(t *testing.T, srv *Server, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func TestParseExpenseEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec := postJSON(t, srv, "/api/intake/parse-expense", map[string]any{
		"description": "I bought a laptop for $3,000",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp parseExpenseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "depreciation", resp.Expense.CategoryKey)
	assert.Equal(t, "13", resp.Expense.ScheduleCLine)
	require.NotNil(t, resp.Expense.Amount)
	assert.InDelta(t, 3000.0, *resp.Expense.Amount, 0.001)
}

func TestParseExpenseMissingDescription(t *testing.T) {
	srv := newTestServer(t)

	rec := postJSON(t, srv, "/api/intake/parse-expense", map[string]any{
		"amount": 100,
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "description")
}

func TestAssessComplexityEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec := postJSON(t, srv, "/api/intake/assess-complexity", map[string]any{
		"expense_descriptions": []string{"Hired 3 employees this year"},
		"business_profile": map[string]any{
			"has_employees":  true,
			"annual_revenue": 350000,
		},
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		ComplexityLevel string `json:"complexity_level"`
		RecommendedTier string `json:"recommended_tier"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "high", resp.ComplexityLevel)
	assert.Equal(t, "premium", resp.RecommendedTier)
}

func TestOptimizeStartupEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec := postJSON(t, srv, "/api/intake/optimize-startup", map[string]any{
		"expenses": []map[string]any{
			{"amount": 800, "is_startup_cost": true},
			{"amount": 3500, "is_startup_cost": true},
		},
		"revenue": 0,
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		TotalStartupCosts  float64 `json:"total_startup_costs"`
		ImmediateDeduction float64 `json:"immediate_deduction"`
		Strategy           string  `json:"strategy"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.InDelta(t, 4300.0, resp.TotalStartupCosts, 0.001)
	assert.InDelta(t, 4300.0, resp.ImmediateDeduction, 0.001)
	assert.Equal(t, "loss-leader", resp.Strategy)
}

func TestBatchParseEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec := postJSON(t, srv, "/api/intake/batch-parse", map[string]any{
		"expenses": []map[string]any{
			{"description": "Bought laptop $2500"},
			{"description": "Office rent $1200"},
		},
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp batchParseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.ParsedExpenses, 2)
	assert.Equal(t, 2, resp.Summary.TotalCount)
	assert.InDelta(t, 3700.0, resp.Summary.TotalAmount, 0.001)
}

func TestBatchParseEmpty(t *testing.T) {
	srv := newTestServer(t)

	rec := postJSON(t, srv, "/api/intake/batch-parse", map[string]any{
		"expenses": []map[string]any{},
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestQuarterlyEstimateEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec := postJSON(t, srv, "/api/intake/quarterly-estimate", map[string]any{
		"annual_revenue": 100000,
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp taxengine.QuarterlyEstimate
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Positive(t, resp.QuarterlyAmount)
	assert.Len(t, resp.DueDates, 4)
}

func TestDetectPlatformEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec := postJSON(t, srv, "/api/intake/detect-platform", map[string]any{
		"text":         "Made $1,000 driving for Uber",
		"gross_amount": 1000,
		"miles":        500,
		"year":         2024,
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp detectPlatformResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Detected)
	assert.Equal(t, "uber", resp.Platform)
	assert.Equal(t, "1099-K", resp.TaxForm)
	assert.True(t, resp.IsIncome)
	assert.InDelta(t, 750.0, resp.NetEarnings, 0.001)
	assert.InDelta(t, 335.0, resp.MileageDeduction, 0.001)
}

func TestLedgerRoutesUnavailableWithoutStore(t *testing.T) {
	srv := newTestServer(t)

	rec := postJSON(t, srv, "/api/intake/ledger/entries", map[string]any{
		"description": "coffee",
	})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/intake/ledger/readiness", nil)
	getRec := httptest.NewRecorder()
	srv.Router().ServeHTTP(getRec, req)
	assert.Equal(t, http.StatusServiceUnavailable, getRec.Code)
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/intake/health", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
	assert.Equal(t, "intake-api", resp["service"])
}
