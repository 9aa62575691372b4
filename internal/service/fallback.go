package service

import (
	"math"
	"math/rand"
	"time"

	"github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/model"
	"github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/tradingday"
)

// FallbackSimulator deterministically produces synthetic price bars and
// trading signals when the gateway is wholly unavailable. The generator is
// seeded from the stock symbol's character codes, so the same symbol always
// yields the same synthetic series and the accounting invariants hold
// identically for synthetic and real data.
type FallbackSimulator struct {
	symbol string
}

// NewFallbackSimulator creates a simulator for the given stock symbol.
func NewFallbackSimulator(symbol string) *FallbackSimulator {
	return &FallbackSimulator{symbol: symbol}
}

// Generate produces days of synthetic OHLC bars ending at end, together with
// a matching BUY/SELL/HOLD signal sequence. Prices follow a bounded
// mean-reverting walk around a per-symbol base level.
func (f *FallbackSimulator) Generate(days int, end time.Time) ([]model.PriceBar, []model.Signal) {
	if days <= 0 {
		return nil, nil
	}

	rng := rand.New(rand.NewSource(seedFromSymbol(f.symbol)))
	end = tradingday.Truncate(end)
	start := end.AddDate(0, 0, -(days - 1))

	base := 10000 + float64(rng.Intn(9))*10000
	price := base

	bars := make([]model.PriceBar, 0, days)
	signals := make([]model.Signal, 0, days)

	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		open := price
		drift := (base - price) * 0.05
		shock := price * 0.03 * (rng.Float64()*2 - 1)
		close := clamp(price+drift+shock, base*0.5, base*1.5)

		high := math.Max(open, close) * (1 + rng.Float64()*0.01)
		low := math.Min(open, close) * (1 - rng.Float64()*0.01)

		bars = append(bars, model.PriceBar{
			Date:  date,
			Open:  roundCurrency(open),
			High:  roundCurrency(high),
			Low:   roundCurrency(low),
			Close: roundCurrency(close),
		})
		signals = append(signals, model.Signal{
			Date:   date,
			Action: f.nextAction(rng),
		})

		price = close
	}

	return bars, signals
}

// nextAction draws the day's action. The distribution slightly favors HOLD so
// synthetic ledgers look like a cautious strategy rather than constant churn.
func (f *FallbackSimulator) nextAction(rng *rand.Rand) model.SignalAction {
	switch r := rng.Float64(); {
	case r < 0.30:
		return model.ActionBuy
	case r < 0.55:
		return model.ActionSell
	default:
		return model.ActionHold
	}
}

// seedFromSymbol derives a stable seed from the symbol's character codes.
// Seed stability across runs and processes is load-bearing; the exact hash is
// not.
func seedFromSymbol(symbol string) int64 {
	var h int64 = 17
	for _, r := range symbol {
		h = h*31 + int64(r)
	}
	return h
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
