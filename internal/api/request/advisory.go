package request

// TradingOverviewRequest carries the raw query parameters of the trading
// overview endpoint before validation and parsing.
type TradingOverviewRequest struct {
	Symbol    string
	Model     string
	Capital   string
	StartDate string
	EndDate   string
	UserID    string
}
