package service

import (
	"context"
	"log"
	"sort"
	"time"

	"github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/cache"
	"github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/marketdata"
	"github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/model"
	"github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/tradingday"
)

// SyncService incrementally fetches day-by-day trading signals and merges
// them into the locally cached series. Days already covered by the watermark
// are never re-fetched; at most one network call is issued per incomplete
// range.
type SyncService struct {
	gateway marketdata.Client
	entries *cache.EntryStore
}

// NewSyncService creates a new SyncService with the provided gateway and
// entry store dependencies.
func NewSyncService(gateway marketdata.Client, entries *cache.EntryStore) *SyncService {
	return &SyncService{
		gateway: gateway,
		entries: entries,
	}
}

// SyncResult carries the outcome of a signal synchronization.
type SyncResult struct {
	// Entry is the merged cache entry. Its Signals and LastFetchedDate are up
	// to date; History and Summary still reflect the previous sync until the
	// caller re-simulates and persists.
	Entry *model.CacheEntry
	// Signals is the merged series filtered to the requested range, sorted by
	// date and unique per date.
	Signals []model.Signal
	// Fetched reports whether a network call was issued.
	Fetched bool
	// Advanced reports whether the merge added new signal dates, meaning the
	// entry should be persisted even if simulation cannot run.
	Advanced bool
}

// SyncSignals brings the cached signal series for key up to date over the
// closed range [rangeStart, rangeEnd]. A gateway failure degrades to the
// cached signals; cache unavailability degrades to an empty series. The
// method never fails, matching the contract that only invalid input is ever
// surfaced to the UI.
func (s *SyncService) SyncSignals(ctx context.Context, key, modelClass string, rangeStart, rangeEnd time.Time) *SyncResult {
	rangeStart = tradingday.Truncate(rangeStart)
	rangeEnd = tradingday.Truncate(rangeEnd)

	entry, err := s.entries.Load(ctx, key)
	if err != nil {
		log.Printf("cache load for %s failed, proceeding without cache: %v", key, err)
	}
	if entry == nil {
		entry = &model.CacheEntry{}
	}

	result := &SyncResult{Entry: entry}

	nextFetch := rangeStart
	if !entry.LastFetchedDate.IsZero() {
		nextFetch = entry.LastFetchedDate.AddDate(0, 0, 1)
	}

	if !nextFetch.After(rangeEnd) {
		result.Fetched = true
		fetched, err := s.gateway.GetSignalHistory(ctx, modelClass, nextFetch)
		if err != nil {
			// Degrade to cached signals only.
			log.Printf("signal fetch for %s from %s failed: %v", key, nextFetch.Format("2006-01-02"), err)
		} else {
			result.Advanced = mergeSignals(entry, fetched, rangeEnd)
		}
	}

	result.Signals = filterRange(entry.Signals, rangeStart, rangeEnd)
	return result
}

// mergeSignals folds freshly fetched signals into the entry: dates are
// normalized to calendar granularity, anything beyond rangeEnd is discarded,
// and a new value overwrites the old one for the same date. The watermark
// advances to the maximum merged date and never regresses. Reports whether
// any date was added or overwritten.
func mergeSignals(entry *model.CacheEntry, fetched []model.Signal, rangeEnd time.Time) bool {
	byDate := make(map[string]model.Signal, len(entry.Signals))
	for _, sig := range entry.Signals {
		byDate[sig.Date.Format("2006-01-02")] = sig
	}

	merged := false
	maxDate := entry.LastFetchedDate
	for _, sig := range fetched {
		sig.Date = tradingday.Truncate(sig.Date)
		if sig.Date.After(rangeEnd) {
			continue
		}
		byDate[sig.Date.Format("2006-01-02")] = sig
		merged = true
		if sig.Date.After(maxDate) {
			maxDate = sig.Date
		}
	}

	if !merged {
		return false
	}

	signals := make([]model.Signal, 0, len(byDate))
	for _, sig := range byDate {
		signals = append(signals, sig)
	}
	sort.Slice(signals, func(i, j int) bool { return signals[i].Date.Before(signals[j].Date) })

	entry.Signals = signals
	entry.LastFetchedDate = maxDate
	return true
}

// filterRange returns the signals with dates inside [start, end], sorted.
func filterRange(signals []model.Signal, start, end time.Time) []model.Signal {
	filtered := make([]model.Signal, 0, len(signals))
	for _, sig := range signals {
		if sig.Date.Before(start) || sig.Date.After(end) {
			continue
		}
		filtered = append(filtered, sig)
	}
	sort.Slice(filtered, func(i, j int) bool { return filtered[i].Date.Before(filtered[j].Date) })
	return filtered
}
