package model

import "time"

// SimulatedTrade represents a single simulated order placed by the trade engine.
// Profit and ProfitPercent are populated on SELL trades only; Reason is
// populated on HOLD trades only.
type SimulatedTrade struct {
	Kind          SignalAction `json:"kind"`
	Quantity      float64      `json:"quantity"`
	PricePerShare float64      `json:"pricePerShare"`
	Timestamp     time.Time    `json:"timestamp"`
	Profit        *float64     `json:"profit,omitempty"`
	ProfitPercent *float64     `json:"profitPercent,omitempty"`
	Reason        string       `json:"reason,omitempty"`
}

// DayTrading groups the trades simulated for a single calendar date.
type DayTrading struct {
	Date   time.Time        `json:"date"`
	Trades []SimulatedTrade `json:"trades"`
}

// HasExecutedTrade reports whether the day contains at least one non-HOLD trade.
// Days without executed trades are kept in the internal ledger but excluded
// from the externally reported history.
func (d DayTrading) HasExecutedTrade() bool {
	for _, t := range d.Trades {
		if t.Kind != ActionHold {
			return true
		}
	}
	return false
}

// TradingSummary is a point-in-time reduction of a trade ledger. It is always
// derived by replaying the ledger, never mutated independently.
type TradingSummary struct {
	NetShares      float64  `json:"netShares"`
	AveragePrice   float64  `json:"averagePrice"`
	LastTradePrice *float64 `json:"lastTradePrice"`
	RealizedProfit float64  `json:"realizedProfit"`
	PositionValue  float64  `json:"positionValue"`
}
