package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/fin_automation_app/internal/core/services"
	"github.com/SscSPs/fin_automation_app/internal/platform/chart"
	"github.com/SscSPs/fin_automation_app/internal/platform/config"
	"github.com/SscSPs/fin_automation_app/internal/repositories/memory"
	"github.com/SscSPs/fin_automation_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, rateLimit string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := services.NewServiceContainer(memory.NewRepositoryProvider(memory.NewStore()))
	def, err := chart.Default()
	require.NoError(t, err)
	require.NoError(t, svc.Account.InitializeChart(context.Background(), def))

	cfg := &config.Config{
		StorageBackend:     config.BackendMemory,
		RateLimit:          rateLimit,
		CORSAllowedOrigins: []string{"*"},
	}
	r, err := newRouter(cfg, svc, logger, utils.InitializePosthogClient("", logger))
	require.NoError(t, err)
	return r
}

func send(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func accountIDByCode(t *testing.T, r http.Handler, code string) int64 {
	t.Helper()
	w := send(r, http.MethodGet, "/api/accounts", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var accounts []struct {
		ID   int64  `json:"id"`
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &accounts))
	for _, a := range accounts {
		if a.Code == code {
			return a.ID
		}
	}
	t.Fatalf("account %s not in chart", code)
	return 0
}

func TestRouter_PostTemplateAndReadBack(t *testing.T) {
	r := newTestRouter(t, "1000-M")
	kas := accountIDByCode(t, r, "111")

	w := send(r, http.MethodPost, "/api/transactions/templates/full-payment", map[string]any{
		"date":              "2025-03-04",
		"description":       "Penjualan lunas",
		"cash_account_id":   kas,
		"total_sale_amount": 1000000,
		"admin_fee":         20000,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	var created struct {
		ID         int64  `json:"id"`
		TotalDebit string `json:"totalDebit"`
		Lines      []struct {
			AccountCode string `json:"accountCode"`
		} `json:"lines"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "1020000", created.TotalDebit)
	require.Len(t, created.Lines, 4)
	assert.Equal(t, "111", created.Lines[0].AccountCode)

	w = send(r, http.MethodGet, "/api/transactions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Transactions []struct {
			ID int64 `json:"id"`
		} `json:"transactions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Transactions, 1)
	assert.Equal(t, created.ID, list.Transactions[0].ID)

	w = send(r, http.MethodGet, "/api/reports/trial-balance?asOf=2025-03-04", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var tb struct {
		Totals struct {
			Debit  string `json:"debit"`
			Credit string `json:"credit"`
		} `json:"totals"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tb))
	assert.Equal(t, "1020000", tb.Totals.Debit)
	assert.Equal(t, "1020000", tb.Totals.Credit)
}

func TestRouter_UnbalancedManualIsNotStored(t *testing.T) {
	r := newTestRouter(t, "1000-M")
	kas := accountIDByCode(t, r, "111")
	sales := accountIDByCode(t, r, "411")

	w := send(r, http.MethodPost, "/api/transactions", map[string]any{
		"date":        "2025-03-04",
		"description": "Selisih",
		"lines": []map[string]any{
			{"account_id": kas, "debit": 100000},
			{"account_id": sales, "credit": 99998},
		},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Journal not balanced")

	w = send(r, http.MethodGet, "/api/transactions", nil)
	assert.JSONEq(t, `{"transactions":[]}`, w.Body.String())
}

func TestRouter_CORSPreflight(t *testing.T) {
	r := newTestRouter(t, "1000-M")

	req := httptest.NewRequest(http.MethodOptions, "/api/expenses", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_RateLimitsWrites(t *testing.T) {
	r := newTestRouter(t, "1-M")
	body := map[string]any{"date": "2025-03-01", "category": "GOODS", "description": "Kardus", "amount": 20000}

	assert.Equal(t, http.StatusCreated, send(r, http.MethodPost, "/api/expenses", body).Code)
	assert.Equal(t, http.StatusTooManyRequests, send(r, http.MethodPost, "/api/expenses", body).Code)
	// reads are not limited
	assert.Equal(t, http.StatusOK, send(r, http.MethodGet, "/api/expenses", nil).Code)
}

func TestNewRouter_InvalidRateLimit(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := services.NewServiceContainer(memory.NewRepositoryProvider(memory.NewStore()))

	_, err := newRouter(&config.Config{RateLimit: "lots"}, svc, logger, utils.InitializePosthogClient("", logger))
	assert.Error(t, err)
}
