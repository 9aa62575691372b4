package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/apperrors"
	"github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/cache"
	"github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/marketdata"
	"github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/model"
	"github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/tradingday"
)

// AdvisoryService composes the synchronizer, the trade simulation engine, the
// summarizer, and the fallback simulator into the single entry point the UI
// calls. It always returns a best-effort, internally consistent result; only
// invalid input is surfaced as an error.
type AdvisoryService struct {
	gateway marketdata.Client
	syncSvc *SyncService
	entries *cache.EntryStore
}

// NewAdvisoryService creates a new AdvisoryService with the provided
// dependencies.
func NewAdvisoryService(gateway marketdata.Client, syncSvc *SyncService, entries *cache.EntryStore) *AdvisoryService {
	return &AdvisoryService{
		gateway: gateway,
		syncSvc: syncSvc,
		entries: entries,
	}
}

// TradingRequest holds the validated parameters for a trading overview.
type TradingRequest struct {
	Symbol         string
	ModelClass     string
	InitialCapital float64
	RangeStart     time.Time
	RangeEnd       time.Time
	UserID         string
}

// validate rejects configuration bugs upstream. These are the only errors the
// orchestrator ever returns.
func (r TradingRequest) validate() error {
	if r.Symbol == "" {
		return apperrors.ErrInvalidSymbol
	}
	if r.ModelClass != model.ModelA2C && r.ModelClass != model.ModelMARL {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidModelClass, r.ModelClass)
	}
	if r.InitialCapital <= 0 {
		return apperrors.ErrInvalidCapital
	}
	if r.RangeStart.IsZero() {
		return fmt.Errorf("%w: missing range start", apperrors.ErrInvalidDateRange)
	}
	if !r.RangeEnd.IsZero() && r.RangeEnd.Before(r.RangeStart) {
		return fmt.Errorf("%w: start %s after end %s", apperrors.ErrInvalidDateRange,
			r.RangeStart.Format("2006-01-02"), r.RangeEnd.Format("2006-01-02"))
	}
	return nil
}

// GetTradingOverview synchronizes the signal series for the requested (user,
// stock, model) key, replays it against price history, and returns the
// visible trade history with a derived position summary. now is threaded
// explicitly so callers and tests control the reference date without mocking
// the clock.
//
// Degradation order on failure: merged cached data, then previously simulated
// history, then the deterministic fallback simulator. BackendConnected is
// false whenever live signal data did not back the numbers.
func (s *AdvisoryService) GetTradingOverview(ctx context.Context, req TradingRequest, now time.Time) (*model.TradingOverview, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	reference := tradingday.Reference(now)
	rangeStart := tradingday.Truncate(req.RangeStart)
	rangeEnd := reference
	if !req.RangeEnd.IsZero() && tradingday.Truncate(req.RangeEnd).Before(reference) {
		rangeEnd = tradingday.Truncate(req.RangeEnd)
	}
	if rangeEnd.Before(rangeStart) {
		return nil, fmt.Errorf("%w: range starts after reference date", apperrors.ErrInvalidDateRange)
	}

	key := cache.Key(req.UserID, req.Symbol, req.ModelClass)
	lookbackDays := int(rangeEnd.Sub(rangeStart).Hours()/24) + 1

	// The two reads are independent; issue them concurrently, but both must
	// resolve before simulation runs.
	var (
		syncResult *SyncResult
		bars       []model.PriceBar
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		syncResult = s.syncSvc.SyncSignals(gctx, key, req.ModelClass, rangeStart, rangeEnd)
		return nil
	})
	g.Go(func() error {
		fetched, err := s.gateway.GetPriceHistory(gctx, req.Symbol, lookbackDays)
		if err != nil {
			// Degrade; simulation falls back to cached or synthetic data.
			log.Printf("price fetch for %s failed: %v", req.Symbol, err)
			return nil
		}
		bars = fetched
		return nil
	})
	//nolint:errcheck // Both goroutines always return nil; errgroup is used for joining and context propagation.
	g.Wait()

	// The invoking context was torn down while fetches were in flight:
	// discard rather than apply results to stale state.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entry := syncResult.Entry

	if len(syncResult.Signals) > 0 && len(bars) > 0 {
		ledger := SimulateTrades(syncResult.Signals, bars, req.InitialCapital)
		summary := Summarize(ledger)

		entry.History = ledger
		entry.Summary = &summary
		if err := s.entries.Save(ctx, key, entry); err != nil {
			log.Printf("cache save for %s failed: %v", key, err)
		}

		return &model.TradingOverview{
			History:          VisibleHistory(ledger),
			Summary:          &summary,
			BackendConnected: true,
		}, nil
	}

	// Signals advanced but prices were unavailable: persist the merged series
	// so the next sync starts from the new watermark.
	if syncResult.Advanced {
		if err := s.entries.Save(ctx, key, entry); err != nil {
			log.Printf("cache save for %s failed: %v", key, err)
		}
	}

	if len(entry.History) > 0 || entry.Summary != nil {
		summary := entry.Summary
		if summary == nil {
			derived := Summarize(entry.History)
			summary = &derived
		}
		return &model.TradingOverview{
			History:          VisibleHistory(entry.History),
			Summary:          summary,
			BackendConnected: false,
		}, nil
	}

	// Nothing cached and nothing fetched: deterministic synthetic data. Not
	// persisted, so a later successful sync starts clean.
	fallbackBars, fallbackSignals := NewFallbackSimulator(req.Symbol).Generate(lookbackDays, rangeEnd)
	ledger := SimulateTrades(fallbackSignals, fallbackBars, req.InitialCapital)
	summary := Summarize(ledger)

	return &model.TradingOverview{
		History:          VisibleHistory(ledger),
		Summary:          &summary,
		BackendConnected: false,
	}, nil
}

// GetPriceHistory returns recent daily bars for a symbol, passed through from
// the gateway.
func (s *AdvisoryService) GetPriceHistory(ctx context.Context, symbol string, days int) ([]model.PriceBar, error) {
	if symbol == "" {
		return nil, apperrors.ErrInvalidSymbol
	}
	if days <= 0 {
		return nil, fmt.Errorf("%w: days must be positive", apperrors.ErrInvalidDateRange)
	}
	return s.gateway.GetPriceHistory(ctx, symbol, days)
}
