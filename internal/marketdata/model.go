package marketdata

// signalHistoryItem represents one entry of the raw JSON response from the
// signal provider's history endpoint. The signal field is an integer code:
// 0=BUY, 1=SELL, 2=HOLD.
type signalHistoryItem struct {
	Date           string   `json:"date"`
	Signal         int      `json:"signal"`
	DailyReturn    *float64 `json:"daily_return,omitempty"`
	StrategyReturn *float64 `json:"strategy_return,omitempty"`
}

// priceHistoryItem represents one entry of the raw JSON response from the
// price provider's history endpoint.
type priceHistoryItem struct {
	Date  string  `json:"date"`
	Open  float64 `json:"open"`
	High  float64 `json:"high"`
	Low   float64 `json:"low"`
	Close float64 `json:"close"`
}

// Wire values for the signal field.
const (
	wireSignalBuy  = 0
	wireSignalSell = 1
	wireSignalHold = 2
)
