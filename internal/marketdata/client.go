// Package marketdata wraps the two remote reads the advisory engine depends
// on: dated buy/sell/hold decisions per model class, and OHLC price bars per
// symbol. Any network, HTTP, or parse failure surfaces wrapped in
// apperrors.ErrGatewayUnavailable so that callers can degrade instead of
// crashing.
package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/apperrors"
	"github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/model"
	"github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/tradingday"
)

// Client defines the interface for fetching signal and price history.
// This interface enables dependency injection and testing with mock
// implementations.
type Client interface {
	GetSignalHistory(ctx context.Context, modelClass string, startDate time.Time) ([]model.Signal, error)
	GetPriceHistory(ctx context.Context, symbol string, days int) ([]model.PriceBar, error)
}

// GatewayClient provides methods for fetching signal and price data from the
// advisory backend service over HTTP.
type GatewayClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewGatewayClient creates a new gateway client for the given base URL.
// Requests time out after 10 seconds; the engine itself imposes no timeouts.
func NewGatewayClient(baseURL string) *GatewayClient {
	return &GatewayClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// GetSignalHistory fetches dated trading decisions for the given model class
// starting at startDate. Order of the returned slice is not guaranteed by the
// provider; callers normalize. Unknown signal codes are mapped to HOLD.
func (c *GatewayClient) GetSignalHistory(ctx context.Context, modelClass string, startDate time.Time) ([]model.Signal, error) {
	endpoint := fmt.Sprintf(
		"%s/ai/history?model_type=%s&start_date=%s",
		c.baseURL,
		url.QueryEscape(modelClass),
		startDate.Format("2006-01-02"),
	)

	var items []signalHistoryItem
	if err := c.getJSON(ctx, endpoint, &items); err != nil {
		return nil, err
	}

	signals := make([]model.Signal, 0, len(items))
	for _, item := range items {
		date, err := time.Parse("2006-01-02", item.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: parse signal date %q: %v", apperrors.ErrGatewayUnavailable, item.Date, err)
		}
		signals = append(signals, model.Signal{
			Date:           tradingday.Truncate(date),
			Action:         actionFromWire(item.Signal),
			DailyReturn:    item.DailyReturn,
			StrategyReturn: item.StrategyReturn,
		})
	}

	return signals, nil
}

// GetPriceHistory fetches the most recent days of daily OHLC bars for a
// symbol, ending at the latest available trading day.
func (c *GatewayClient) GetPriceHistory(ctx context.Context, symbol string, days int) ([]model.PriceBar, error) {
	endpoint := fmt.Sprintf(
		"%s/stocks/%s/history?days=%d",
		c.baseURL,
		url.PathEscape(symbol),
		days,
	)

	var items []priceHistoryItem
	if err := c.getJSON(ctx, endpoint, &items); err != nil {
		return nil, err
	}

	bars := make([]model.PriceBar, 0, len(items))
	for _, item := range items {
		date, err := time.Parse("2006-01-02", item.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: parse bar date %q: %v", apperrors.ErrGatewayUnavailable, item.Date, err)
		}
		bars = append(bars, model.PriceBar{
			Date:  tradingday.Truncate(date),
			Open:  item.Open,
			High:  item.High,
			Low:   item.Low,
			Close: item.Close,
		})
	}

	return bars, nil
}

// getJSON executes a GET request and decodes the JSON body into out.
func (c *GatewayClient) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: build request: %v", apperrors.ErrGatewayUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: status %d: %s", apperrors.ErrGatewayUnavailable, resp.StatusCode, body)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read body: %v", apperrors.ErrGatewayUnavailable, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: decode body: %v", apperrors.ErrGatewayUnavailable, err)
	}

	return nil
}

// actionFromWire maps the provider's integer signal code to a SignalAction.
func actionFromWire(code int) model.SignalAction {
	switch code {
	case wireSignalBuy:
		return model.ActionBuy
	case wireSignalSell:
		return model.ActionSell
	case wireSignalHold:
		return model.ActionHold
	default:
		return model.ActionHold
	}
}
