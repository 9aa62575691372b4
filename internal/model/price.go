package model

import "time"

// PriceBar represents one trading day of OHLC price data for a symbol.
// Bars are immutable per (symbol, date).
type PriceBar struct {
	Date  time.Time `json:"date"`
	Open  float64   `json:"open"`
	High  float64   `json:"high"`
	Low   float64   `json:"low"`
	Close float64   `json:"close"`
}
