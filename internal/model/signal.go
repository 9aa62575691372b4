package model

import "time"

// SignalAction is a directional decision produced by an upstream predictive model.
type SignalAction string

const (
	ActionBuy  SignalAction = "BUY"
	ActionSell SignalAction = "SELL"
	ActionHold SignalAction = "HOLD"
)

// Model classes served by the signal provider.
const (
	ModelA2C  = "a2c"
	ModelMARL = "marl"
)

// Signal represents a dated buy/sell/hold decision for one (stock, model) series.
// At most one signal exists per date; a later fetch overwrites an earlier value
// for the same date.
type Signal struct {
	Date           time.Time    `json:"date"`
	Action         SignalAction `json:"action"`
	DailyReturn    *float64     `json:"dailyReturn,omitempty"`
	StrategyReturn *float64     `json:"strategyReturn,omitempty"`
}
