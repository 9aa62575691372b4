package testutil

import (
	"time"

	"github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/model"
)

// Day builds a UTC calendar date for fixtures.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// SignalBuilder provides a fluent interface for creating test signals.
//
// Example usage:
//
//	sig := testutil.NewSignal(testutil.Day(2025, 1, 10)).Buy().Build()
type SignalBuilder struct {
	signal model.Signal
}

// NewSignal creates a SignalBuilder for the given date, defaulting to HOLD.
func NewSignal(date time.Time) *SignalBuilder {
	return &SignalBuilder{signal: model.Signal{Date: date, Action: model.ActionHold}}
}

// Buy sets the action to BUY.
func (b *SignalBuilder) Buy() *SignalBuilder {
	b.signal.Action = model.ActionBuy
	return b
}

// Sell sets the action to SELL.
func (b *SignalBuilder) Sell() *SignalBuilder {
	b.signal.Action = model.ActionSell
	return b
}

// Hold sets the action to HOLD.
func (b *SignalBuilder) Hold() *SignalBuilder {
	b.signal.Action = model.ActionHold
	return b
}

// WithDailyReturn sets the daily return.
func (b *SignalBuilder) WithDailyReturn(v float64) *SignalBuilder {
	b.signal.DailyReturn = &v
	return b
}

// Build returns the signal.
func (b *SignalBuilder) Build() model.Signal {
	return b.signal
}

// BarBuilder provides a fluent interface for creating test price bars.
type BarBuilder struct {
	bar model.PriceBar
}

// NewBar creates a BarBuilder for the given date with flat default prices.
func NewBar(date time.Time) *BarBuilder {
	return &BarBuilder{bar: model.PriceBar{
		Date:  date,
		Open:  1000,
		High:  1100,
		Low:   900,
		Close: 1000,
	}}
}

// WithOHLC sets all four prices.
func (b *BarBuilder) WithOHLC(open, high, low, close float64) *BarBuilder {
	b.bar.Open = open
	b.bar.High = high
	b.bar.Low = low
	b.bar.Close = close
	return b
}

// Build returns the bar.
func (b *BarBuilder) Build() model.PriceBar {
	return b.bar
}

// SignalSeries builds consecutive daily signals starting at start, one per
// action in order.
func SignalSeries(start time.Time, actions ...model.SignalAction) []model.Signal {
	signals := make([]model.Signal, len(actions))
	for i, action := range actions {
		signals[i] = model.Signal{Date: start.AddDate(0, 0, i), Action: action}
	}
	return signals
}

// BarSeries builds consecutive daily bars starting at start, one per OHLC
// quadruple.
func BarSeries(start time.Time, quads ...[4]float64) []model.PriceBar {
	bars := make([]model.PriceBar, len(quads))
	for i, q := range quads {
		bars[i] = model.PriceBar{
			Date:  start.AddDate(0, 0, i),
			Open:  q[0],
			High:  q[1],
			Low:   q[2],
			Close: q[3],
		}
	}
	return bars
}
