// Package scheduler warms the signal cache for watched (symbol, model) pairs
// shortly after the daily signal cutoff, so the first UI read of the day does
// not pay for the incremental fetch.
package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/cache"
	"github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/config"
	"github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/service"
	"github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/tradingday"
)

// Five minutes after the signal provider's daily cutoff.
const refreshSpec = "35 20 * * *"

// Scheduler periodically re-synchronizes the watched signal series for the
// guest identity.
type Scheduler struct {
	advisory *service.AdvisoryService
	cfg      config.SchedulerConfig
	capital  float64
	lookback int
	cron     *cron.Cron
}

// New creates a Scheduler over the given advisory service.
func New(advisory *service.AdvisoryService, cfg config.SchedulerConfig, advisoryCfg config.AdvisoryConfig) *Scheduler {
	return &Scheduler{
		advisory: advisory,
		cfg:      cfg,
		capital:  advisoryCfg.DefaultCapital,
		lookback: advisoryCfg.LookbackDays,
		cron:     cron.New(),
	}
}

// Start registers the nightly refresh and begins the cron loop. No-op when
// the scheduler is disabled or nothing is watched.
func (s *Scheduler) Start() error {
	if !s.cfg.Enabled || len(s.cfg.WatchSymbols) == 0 {
		log.Println("scheduler disabled or no watched symbols, skipping")
		return nil
	}

	_, err := s.cron.AddFunc(refreshSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		if _, err := s.RunOnce(ctx); err != nil {
			log.Printf("scheduled refresh failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Printf("scheduler started, refreshing %d symbols at %s", len(s.cfg.WatchSymbols), refreshSpec)
	return nil
}

// Stop halts the cron loop and waits for a running refresh to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// RunOnce refreshes every watched (symbol, model) pair immediately and
// returns the number of series refreshed. A failing pair is logged and
// skipped; warming is best-effort by design.
func (s *Scheduler) RunOnce(ctx context.Context) (int, error) {
	runID := uuid.New().String()
	now := time.Now()
	rangeStart := tradingday.Reference(now).AddDate(0, 0, -(s.lookback - 1))

	refreshed := 0
	for _, symbol := range s.cfg.WatchSymbols {
		for _, modelClass := range s.cfg.WatchModels {
			if err := ctx.Err(); err != nil {
				return refreshed, err
			}
			overview, err := s.advisory.GetTradingOverview(ctx, service.TradingRequest{
				Symbol:         symbol,
				ModelClass:     modelClass,
				InitialCapital: s.capital,
				RangeStart:     rangeStart,
				UserID:         cache.GuestUserID,
			}, now)
			if err != nil {
				log.Printf("refresh %s: %s/%s failed: %v", runID, symbol, modelClass, err)
				continue
			}
			refreshed++
			log.Printf("refresh %s: %s/%s ok (connected=%t)", runID, symbol, modelClass, overview.BackendConnected)
		}
	}

	return refreshed, nil
}
