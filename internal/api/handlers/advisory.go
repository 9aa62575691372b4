package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/api/request"
	"github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/api/response"
	"github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/model"
	"github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/service"
	"github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/validation"
)

// Refresher triggers an immediate warm-up of the watched signal series.
type Refresher interface {
	RunOnce(ctx context.Context) (int, error)
}

// AdvisoryHandler handles trading-advisory HTTP requests
type AdvisoryHandler struct {
	advisoryService *service.AdvisoryService
	refresher       Refresher
}

// NewAdvisoryHandler creates a new AdvisoryHandler
func NewAdvisoryHandler(advisoryService *service.AdvisoryService, refresher Refresher) *AdvisoryHandler {
	return &AdvisoryHandler{
		advisoryService: advisoryService,
		refresher:       refresher,
	}
}

// SimulatedTradeResponse represents one simulated trade in API responses.
type SimulatedTradeResponse struct {
	Kind          string   `json:"kind"`
	Quantity      float64  `json:"quantity"`
	PricePerShare float64  `json:"price_per_share"`
	Profit        *float64 `json:"profit,omitempty"`
	ProfitPercent *float64 `json:"profit_percent,omitempty"`
	Reason        string   `json:"reason,omitempty"`
}

// DayTradingResponse represents one trading day in API responses.
type DayTradingResponse struct {
	Date   string                   `json:"date"`
	Trades []SimulatedTradeResponse `json:"trades"`
}

// TradingSummaryResponse represents the derived position summary.
type TradingSummaryResponse struct {
	NetShares      float64  `json:"net_shares"`
	AveragePrice   float64  `json:"average_price"`
	LastTradePrice *float64 `json:"last_trade_price"`
	RealizedProfit float64  `json:"realized_profit"`
	PositionValue  float64  `json:"position_value"`
}

// TradingOverviewResponse represents the trading overview endpoint response.
type TradingOverviewResponse struct {
	History          []DayTradingResponse    `json:"history"`
	Summary          *TradingSummaryResponse `json:"summary"`
	BackendConnected bool                    `json:"backend_connected"`
}

// Trading handles GET requests for the trading overview: synchronized signal
// history replayed into a simulated trade ledger and position summary.
//
// Endpoint: GET /api/advisory/trading?symbol=&model=&capital=&start_date=&end_date=&user_id=
// Response: 200 OK with TradingOverviewResponse (best-effort even when the
// signal backend is unreachable; backend_connected reports data provenance)
// Error: 400 Bad Request on invalid parameters
func (h *AdvisoryHandler) Trading(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	rawReq := request.TradingOverviewRequest{
		Symbol:    query.Get("symbol"),
		Model:     query.Get("model"),
		Capital:   query.Get("capital"),
		StartDate: query.Get("start_date"),
		EndDate:   query.Get("end_date"),
		UserID:    query.Get("user_id"),
	}

	if err := validation.ValidateTradingOverview(rawReq); err != nil {
		var validationErr *validation.Error
		if errors.As(err, &validationErr) {
			response.RespondJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":  "validation failed",
				"fields": validationErr.Fields,
			})
			return
		}
		response.RespondJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	capital, _ := strconv.ParseFloat(rawReq.Capital, 64)
	startDate, _ := validation.ParseTime(rawReq.StartDate)
	var endDate time.Time
	if rawReq.EndDate != "" {
		endDate, _ = validation.ParseTime(rawReq.EndDate)
	}

	overview, err := h.advisoryService.GetTradingOverview(r.Context(), service.TradingRequest{
		Symbol:         strings.TrimSpace(rawReq.Symbol),
		ModelClass:     strings.ToLower(rawReq.Model),
		InitialCapital: capital,
		RangeStart:     startDate,
		RangeEnd:       endDate,
		UserID:         rawReq.UserID,
	}, time.Now())
	if err != nil {
		// Only invalid-input errors reach this point; everything transient is
		// degraded inside the service.
		response.RespondJSON(w, http.StatusBadRequest, map[string]string{
			"error":  "invalid request",
			"detail": err.Error(),
		})
		return
	}

	response.RespondJSON(w, http.StatusOK, toOverviewResponse(overview))
}

// StockHistory handles GET requests for recent daily price bars.
//
// Endpoint: GET /api/stocks/{symbol}/history?days=N
// Response: 200 OK with an array of bars
// Error: 400 on bad parameters, 502 when the price provider is unreachable
func (h *AdvisoryHandler) StockHistory(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")

	days := 30
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			response.RespondJSON(w, http.StatusBadRequest, map[string]string{
				"error": "days must be a positive integer",
			})
			return
		}
		days = parsed
	}

	bars, err := h.advisoryService.GetPriceHistory(r.Context(), symbol, days)
	if err != nil {
		response.RespondJSON(w, http.StatusBadGateway, map[string]string{
			"error":  "failed to retrieve price history",
			"detail": err.Error(),
		})
		return
	}

	body := make([]map[string]interface{}, len(bars))
	for i, bar := range bars {
		body[i] = map[string]interface{}{
			"date":  bar.Date.Format("2006-01-02"),
			"open":  bar.Open,
			"high":  bar.High,
			"low":   bar.Low,
			"close": bar.Close,
		}
	}

	response.RespondJSON(w, http.StatusOK, body)
}

// Refresh handles POST requests that re-synchronize every watched signal
// series immediately instead of waiting for the nightly schedule.
//
// Endpoint: POST /api/advisory/refresh (X-API-Key protected)
// Response: 200 OK with the number of refreshed series
func (h *AdvisoryHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	refreshed, err := h.refresher.RunOnce(r.Context())
	if err != nil {
		response.RespondJSON(w, http.StatusInternalServerError, map[string]string{
			"error":  "refresh failed",
			"detail": err.Error(),
		})
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]int{"refreshed": refreshed})
}

// toOverviewResponse converts a service overview to its API representation,
// rendering dates at calendar granularity.
func toOverviewResponse(overview *model.TradingOverview) TradingOverviewResponse {
	history := make([]DayTradingResponse, len(overview.History))
	for i, day := range overview.History {
		trades := make([]SimulatedTradeResponse, len(day.Trades))
		for j, trade := range day.Trades {
			trades[j] = SimulatedTradeResponse{
				Kind:          string(trade.Kind),
				Quantity:      trade.Quantity,
				PricePerShare: trade.PricePerShare,
				Profit:        trade.Profit,
				ProfitPercent: trade.ProfitPercent,
				Reason:        trade.Reason,
			}
		}
		history[i] = DayTradingResponse{
			Date:   day.Date.Format("2006-01-02"),
			Trades: trades,
		}
	}

	out := TradingOverviewResponse{
		History:          history,
		BackendConnected: overview.BackendConnected,
	}
	if overview.Summary != nil {
		out.Summary = &TradingSummaryResponse{
			NetShares:      overview.Summary.NetShares,
			AveragePrice:   overview.Summary.AveragePrice,
			LastTradePrice: overview.Summary.LastTradePrice,
			RealizedProfit: overview.Summary.RealizedProfit,
			PositionValue:  overview.Summary.PositionValue,
		}
	}
	return out
}
