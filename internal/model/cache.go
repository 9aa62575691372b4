package model

import "time"

// CacheEntry is the persisted state for one (user, stock, model) series.
// Signals are sorted and unique by date. History holds the full internal
// ledger including HOLD-only days; filtering happens at the presentation
// boundary. LastFetchedDate is the watermark through which the series is
// known complete; the zero value means nothing has been fetched yet.
type CacheEntry struct {
	Signals         []Signal        `json:"signals"`
	History         []DayTrading    `json:"history"`
	Summary         *TradingSummary `json:"summary"`
	LastFetchedDate time.Time       `json:"lastFetchedDate"`
}

// TradingOverview is the result returned to the UI: the externally visible
// trade history (non-HOLD days only), the derived summary, and whether the
// numbers are backed by live signal data.
type TradingOverview struct {
	History          []DayTrading    `json:"history"`
	Summary          *TradingSummary `json:"summary"`
	BackendConnected bool            `json:"backendConnected"`
}
