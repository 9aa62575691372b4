package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/cache"
	"github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/config"
	"github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/model"
	"github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/testutil"
	"github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/tradingday"
)

func TestRunOnce_RefreshesAllWatchedPairs(t *testing.T) {
	start := tradingday.Reference(time.Now()).AddDate(0, 0, -29)
	gateway := testutil.NewMockGatewayClient().
		WithSignals(testutil.SignalSeries(start, model.ActionBuy, model.ActionSell)).
		WithBars(testutil.BarSeries(start,
			[4]float64{100, 110, 90, 100},
			[4]float64{100, 130, 95, 120},
		))
	svc, entries := testutil.NewTestAdvisoryService(t, gateway)

	sched := New(svc, config.SchedulerConfig{
		Enabled:      true,
		WatchSymbols: []string{"SSE", "KODEX"},
		WatchModels:  []string{model.ModelA2C, model.ModelMARL},
	}, config.AdvisoryConfig{DefaultCapital: 1000000, LookbackDays: 30})

	refreshed, err := sched.RunOnce(context.Background())
	if err != nil {
		t.Fatalf("Failed to refresh: %v", err)
	}

	if refreshed != 4 {
		t.Errorf("Expected 4 refreshed series, got %d", refreshed)
	}
	if gateway.SignalCalls != 4 {
		t.Errorf("Expected 4 signal fetches, got %d", gateway.SignalCalls)
	}

	// Each refreshed pair leaves a warmed cache entry for the guest identity.
	for _, symbol := range []string{"SSE", "KODEX"} {
		for _, modelClass := range []string{model.ModelA2C, model.ModelMARL} {
			key := cache.Key(cache.GuestUserID, symbol, modelClass)
			entry, err := entries.Load(context.Background(), key)
			if err != nil {
				t.Fatalf("Failed to load %s: %v", key, err)
			}
			if entry == nil {
				t.Errorf("Expected a warmed entry for %s", key)
			}
		}
	}
}

func TestRunOnce_StopsOnCanceledContext(t *testing.T) {
	gateway := testutil.NewMockGatewayClient()
	svc, _ := testutil.NewTestAdvisoryService(t, gateway)

	sched := New(svc, config.SchedulerConfig{
		Enabled:      true,
		WatchSymbols: []string{"SSE", "KODEX"},
		WatchModels:  []string{model.ModelA2C},
	}, config.AdvisoryConfig{DefaultCapital: 1000000, LookbackDays: 30})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	refreshed, err := sched.RunOnce(ctx)
	if err == nil {
		t.Error("Expected a context error")
	}
	if refreshed != 0 {
		t.Errorf("Expected 0 refreshed series, got %d", refreshed)
	}
}

func TestStart_DisabledIsNoOp(t *testing.T) {
	gateway := testutil.NewMockGatewayClient()
	svc, _ := testutil.NewTestAdvisoryService(t, gateway)

	sched := New(svc, config.SchedulerConfig{Enabled: false},
		config.AdvisoryConfig{DefaultCapital: 1000000, LookbackDays: 30})

	if err := sched.Start(); err != nil {
		t.Fatalf("Expected no error from disabled scheduler, got %v", err)
	}
	sched.Stop()
}
