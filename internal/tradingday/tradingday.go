// Package tradingday computes the "as-of" trading date used when requesting
// signal history. The signal provider finalizes a trading day only after
// market-close processing, so before the daily cutoff the latest complete day
// is the prior calendar date.
package tradingday

import "time"

// Daily cutoff after which the current calendar date counts as a complete
// trading day.
const (
	CutoffHour   = 20
	CutoffMinute = 30
)

// Reference returns the most recent calendar date considered closed for
// signal purposes, relative to now. The cutoff is evaluated in now's
// location; the result is truncated to midnight UTC.
func Reference(now time.Time) time.Time {
	day := now
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), CutoffHour, CutoffMinute, 0, 0, now.Location())
	if now.Before(cutoff) {
		day = now.AddDate(0, 0, -1)
	}
	return Truncate(day)
}

// Truncate reduces t to calendar-date granularity (midnight UTC).
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
