package service

import (
	"math"
	"sort"
	"time"

	"github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/model"
)

// Reasons recorded on HOLD trades.
const (
	ReasonInsufficientFunds = "insufficient funds"
	ReasonNoSharesToSell    = "no shares to sell"
	ReasonStrategyHold      = "strategy suggests holding"
)

// simulationState tracks the running cash position and weighted-average cost
// basis while replaying a signal stream.
type simulationState struct {
	cash           float64
	shares         float64
	averagePrice   float64
	realizedProfit float64
}

// SimulateTrades converts a signal stream and matching price bars into a
// simulated trade ledger, starting from initialCapital in cash. Signals
// without a bar for their date are skipped. The returned ledger includes
// HOLD-only days; callers filter those at the presentation boundary via
// VisibleHistory.
//
// Buys fill at the bar low (falling back to close, then open) with as many
// whole shares as cash affords. Sells fully liquidate at the bar high (same
// fallbacks). Currency amounts round to whole units at the point a trade is
// recorded; profit percent rounds to one decimal. The simulation is fully
// deterministic: identical inputs produce an identical ledger.
func SimulateTrades(signals []model.Signal, bars []model.PriceBar, initialCapital float64) []model.DayTrading {
	ordered := make([]model.Signal, len(signals))
	copy(ordered, signals)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Date.Before(ordered[j].Date) })

	barsByDate := make(map[string]model.PriceBar, len(bars))
	for _, bar := range bars {
		barsByDate[bar.Date.Format("2006-01-02")] = bar
	}

	state := simulationState{cash: initialCapital}
	ledger := make([]model.DayTrading, 0, len(ordered))

	for _, signal := range ordered {
		bar, ok := barsByDate[signal.Date.Format("2006-01-02")]
		if !ok {
			continue
		}

		var trade model.SimulatedTrade
		switch signal.Action {
		case model.ActionBuy:
			trade = state.buy(bar, signal.Date)
		case model.ActionSell:
			trade = state.sell(bar, signal.Date)
		default:
			trade = holdTrade(signal.Date, firstPositive(bar.Close, bar.Open), ReasonStrategyHold)
		}

		ledger = append(ledger, model.DayTrading{
			Date:   signal.Date,
			Trades: []model.SimulatedTrade{trade},
		})
	}

	return ledger
}

// buy fills a BUY signal: as many whole shares as cash affords at the bar
// low, updating the weighted-average cost basis. Without affordable shares it
// degrades to a HOLD.
func (s *simulationState) buy(bar model.PriceBar, date time.Time) model.SimulatedTrade {
	price := firstPositive(bar.Low, bar.Close, bar.Open)
	if price <= 0 {
		return holdTrade(date, 0, ReasonStrategyHold)
	}

	quantity := math.Floor(s.cash / price)
	if quantity <= 0 {
		return holdTrade(date, price, ReasonInsufficientFunds)
	}

	cost := roundCurrency(quantity * price)
	s.averagePrice = (s.averagePrice*s.shares + quantity*price) / (s.shares + quantity)
	s.shares += quantity
	s.cash -= cost

	return model.SimulatedTrade{
		Kind:          model.ActionBuy,
		Quantity:      quantity,
		PricePerShare: price,
		Timestamp:     date,
	}
}

// sell fills a SELL signal by fully liquidating the position at the bar high.
// Without shares it degrades to a HOLD.
func (s *simulationState) sell(bar model.PriceBar, date time.Time) model.SimulatedTrade {
	price := firstPositive(bar.High, bar.Close, bar.Open)
	if s.shares <= 0 {
		return holdTrade(date, price, ReasonNoSharesToSell)
	}

	quantity := s.shares
	proceeds := roundCurrency(quantity * price)
	profit := roundCurrency((price - s.averagePrice) * quantity)

	profitPercent := 0.0
	if s.averagePrice > 0 {
		profitPercent = roundPercent((price - s.averagePrice) / s.averagePrice * 100)
	}

	s.cash += proceeds
	s.realizedProfit += profit
	s.shares = 0
	s.averagePrice = 0

	return model.SimulatedTrade{
		Kind:          model.ActionSell,
		Quantity:      quantity,
		PricePerShare: price,
		Timestamp:     date,
		Profit:        &profit,
		ProfitPercent: &profitPercent,
	}
}

// holdTrade builds a zero-quantity HOLD entry with the given reason.
func holdTrade(date time.Time, price float64, reason string) model.SimulatedTrade {
	return model.SimulatedTrade{
		Kind:          model.ActionHold,
		Quantity:      0,
		PricePerShare: price,
		Timestamp:     date,
		Reason:        reason,
	}
}

// VisibleHistory filters a ledger down to the externally reported history:
// only days with at least one executed (non-HOLD) trade are retained.
func VisibleHistory(ledger []model.DayTrading) []model.DayTrading {
	visible := make([]model.DayTrading, 0, len(ledger))
	for _, day := range ledger {
		if day.HasExecutedTrade() {
			visible = append(visible, day)
		}
	}
	return visible
}

// firstPositive returns the first strictly positive value, or 0 if none.
func firstPositive(values ...float64) float64 {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}

// roundCurrency rounds a monetary amount to whole currency units.
func roundCurrency(v float64) float64 {
	return math.Round(v)
}

// roundPercent rounds a percentage to one decimal place.
func roundPercent(v float64) float64 {
	return math.Round(v*10) / 10
}
