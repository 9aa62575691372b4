package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/apperrors"
	"github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/model"
	"github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/testutil"
)

// stubRefresher implements Refresher for handler tests.
type stubRefresher struct {
	count int
	err   error
	calls int
}

func (s *stubRefresher) RunOnce(_ context.Context) (int, error) {
	s.calls++
	return s.count, s.err
}

func tradingQuery() map[string]string {
	return map[string]string{
		"symbol":     "SSE",
		"model":      "a2c",
		"capital":    "1000000",
		"start_date": "2025-01-10",
		"end_date":   "2025-01-11",
	}
}

func TestAdvisoryHandler_Trading(t *testing.T) {
	start := testutil.Day(2025, 1, 10)

	t.Run("returns simulated overview", func(t *testing.T) {
		gateway := testutil.NewMockGatewayClient().
			WithSignals(testutil.SignalSeries(start, model.ActionBuy, model.ActionSell)).
			WithBars(testutil.BarSeries(start,
				[4]float64{950, 1100, 900, 1000},
				[4]float64{1000, 1200, 950, 1100},
			))
		svc, _ := testutil.NewTestAdvisoryService(t, gateway)
		handler := NewAdvisoryHandler(svc, &stubRefresher{})

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/advisory/trading", tradingQuery())
		w := httptest.NewRecorder()
		handler.Trading(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response TradingOverviewResponse
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		if !response.BackendConnected {
			t.Error("Expected backend_connected=true")
		}
		if len(response.History) != 2 {
			t.Fatalf("Expected 2 trading days, got %d", len(response.History))
		}
		if response.History[0].Date != "2025-01-10" {
			t.Errorf("Expected date 2025-01-10, got %s", response.History[0].Date)
		}
		if response.Summary == nil || response.Summary.RealizedProfit != 333300 {
			t.Errorf("Expected realized profit 333300, got %+v", response.Summary)
		}
	})

	t.Run("degrades to synthetic data when gateway is down", func(t *testing.T) {
		gateway := testutil.NewMockGatewayClient().
			WithSignalError(apperrors.ErrGatewayUnavailable).
			WithPriceError(apperrors.ErrGatewayUnavailable)
		svc, _ := testutil.NewTestAdvisoryService(t, gateway)
		handler := NewAdvisoryHandler(svc, &stubRefresher{})

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/advisory/trading", tradingQuery())
		w := httptest.NewRecorder()
		handler.Trading(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200 even without backend, got %d: %s", w.Code, w.Body.String())
		}

		var response TradingOverviewResponse
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if response.BackendConnected {
			t.Error("Expected backend_connected=false")
		}
		if response.Summary == nil {
			t.Error("Expected a summary from synthetic data")
		}
	})

	t.Run("rejects invalid parameters with field errors", func(t *testing.T) {
		gateway := testutil.NewMockGatewayClient()
		svc, _ := testutil.NewTestAdvisoryService(t, gateway)
		handler := NewAdvisoryHandler(svc, &stubRefresher{})

		query := tradingQuery()
		query["model"] = "dqn"
		query["capital"] = "-5"
		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/advisory/trading", query)
		w := httptest.NewRecorder()
		handler.Trading(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("Expected 400, got %d", w.Code)
		}

		var response struct {
			Error  string            `json:"error"`
			Fields map[string]string `json:"fields"`
		}
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if _, ok := response.Fields["model"]; !ok {
			t.Errorf("Expected a model field error, got %v", response.Fields)
		}
		if _, ok := response.Fields["capital"]; !ok {
			t.Errorf("Expected a capital field error, got %v", response.Fields)
		}
		if gateway.SignalCalls != 0 {
			t.Error("Invalid input must not reach the gateway")
		}
	})
}

func TestAdvisoryHandler_StockHistory(t *testing.T) {
	start := testutil.Day(2025, 1, 10)

	t.Run("returns daily bars", func(t *testing.T) {
		gateway := testutil.NewMockGatewayClient().
			WithBars(testutil.BarSeries(start, [4]float64{950, 1100, 900, 1000}))
		svc, _ := testutil.NewTestAdvisoryService(t, gateway)
		handler := NewAdvisoryHandler(svc, &stubRefresher{})

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/stocks/SSE/history",
			map[string]string{"symbol": "SSE"})
		w := httptest.NewRecorder()
		handler.StockHistory(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response []map[string]interface{}
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(response) != 1 {
			t.Fatalf("Expected 1 bar, got %d", len(response))
		}
		if response[0]["date"] != "2025-01-10" {
			t.Errorf("Expected date 2025-01-10, got %v", response[0]["date"])
		}
		if response[0]["low"] != 900.0 {
			t.Errorf("Expected low 900, got %v", response[0]["low"])
		}
	})

	t.Run("rejects non-positive days", func(t *testing.T) {
		gateway := testutil.NewMockGatewayClient()
		svc, _ := testutil.NewTestAdvisoryService(t, gateway)
		handler := NewAdvisoryHandler(svc, &stubRefresher{})

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/stocks/SSE/history?days=0",
			map[string]string{"symbol": "SSE"})
		w := httptest.NewRecorder()
		handler.StockHistory(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})

	t.Run("maps gateway failure to bad gateway", func(t *testing.T) {
		gateway := testutil.NewMockGatewayClient().WithPriceError(apperrors.ErrGatewayUnavailable)
		svc, _ := testutil.NewTestAdvisoryService(t, gateway)
		handler := NewAdvisoryHandler(svc, &stubRefresher{})

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/stocks/SSE/history",
			map[string]string{"symbol": "SSE"})
		w := httptest.NewRecorder()
		handler.StockHistory(w, req)

		if w.Code != http.StatusBadGateway {
			t.Errorf("Expected 502, got %d", w.Code)
		}
	})
}

func TestAdvisoryHandler_Refresh(t *testing.T) {
	gateway := testutil.NewMockGatewayClient()
	svc, _ := testutil.NewTestAdvisoryService(t, gateway)

	t.Run("reports refreshed count", func(t *testing.T) {
		refresher := &stubRefresher{count: 4}
		handler := NewAdvisoryHandler(svc, refresher)

		req := httptest.NewRequest(http.MethodPost, "/api/advisory/refresh", nil)
		w := httptest.NewRecorder()
		handler.Refresh(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", w.Code)
		}
		if refresher.calls != 1 {
			t.Errorf("Expected 1 refresh call, got %d", refresher.calls)
		}

		var response map[string]int
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if response["refreshed"] != 4 {
			t.Errorf("Expected refreshed=4, got %v", response)
		}
	})

	t.Run("maps failure to internal error", func(t *testing.T) {
		refresher := &stubRefresher{err: errors.New("store offline")}
		handler := NewAdvisoryHandler(svc, refresher)

		req := httptest.NewRequest(http.MethodPost, "/api/advisory/refresh", nil)
		w := httptest.NewRecorder()
		handler.Refresh(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("Expected 500, got %d", w.Code)
		}
	})
}
