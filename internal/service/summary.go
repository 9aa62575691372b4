package service

import (
	"sort"

	"github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/model"
)

// Summarize reduces a trade ledger to a point-in-time summary by replaying
// BUY and SELL trades in date order. It re-derives the net share count, the
// weighted-average cost basis, the most recent trade price, the accumulated
// realized profit, and the current position value. The function is
// side-effect-free and idempotent, so it also reconstitutes a summary from a
// cached history that lacks one.
func Summarize(history []model.DayTrading) model.TradingSummary {
	days := make([]model.DayTrading, len(history))
	copy(days, history)
	sort.Slice(days, func(i, j int) bool { return days[i].Date.Before(days[j].Date) })

	var summary model.TradingSummary
	for _, day := range days {
		for _, trade := range day.Trades {
			switch trade.Kind {
			case model.ActionBuy:
				total := summary.NetShares + trade.Quantity
				if total > 0 {
					summary.AveragePrice = (summary.AveragePrice*summary.NetShares + trade.Quantity*trade.PricePerShare) / total
				}
				summary.NetShares = total
				price := trade.PricePerShare
				summary.LastTradePrice = &price

			case model.ActionSell:
				if trade.Profit != nil {
					summary.RealizedProfit += *trade.Profit
				} else {
					summary.RealizedProfit += roundCurrency((trade.PricePerShare - summary.AveragePrice) * trade.Quantity)
				}
				summary.NetShares -= trade.Quantity
				if summary.NetShares <= 0 {
					summary.NetShares = 0
					summary.AveragePrice = 0
				}
				price := trade.PricePerShare
				summary.LastTradePrice = &price
			}
		}
	}

	if summary.NetShares > 0 {
		reference := summary.AveragePrice
		if summary.LastTradePrice != nil {
			reference = *summary.LastTradePrice
		}
		summary.PositionValue = summary.NetShares * reference
	}

	return summary
}
