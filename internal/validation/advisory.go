package validation

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/api/request"
	"github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/model"
)

// ParseTime parses a date string in "2006-01-02" or RFC3339 format.
func ParseTime(str string) (time.Time, error) {
	returnTime, err := time.Parse("2006-01-02", str)
	if err != nil {
		returnTime, err = time.Parse(time.RFC3339, str)
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to parse date: %w", err)
		}
	}
	return returnTime.UTC(), nil
}

// ValidateTradingOverview validates the raw trading overview query
// parameters. It reports every problem at once so upstream configuration
// bugs are easy to diagnose.
func ValidateTradingOverview(req request.TradingOverviewRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Symbol) == "" {
		errors["symbol"] = "symbol is required"
	}

	switch strings.ToLower(req.Model) {
	case model.ModelA2C, model.ModelMARL:
	case "":
		errors["model"] = "model is required"
	default:
		errors["model"] = "model must be 'a2c' or 'marl'"
	}

	if req.Capital == "" {
		errors["capital"] = "capital is required"
	} else if capital, err := strconv.ParseFloat(req.Capital, 64); err != nil {
		errors["capital"] = "capital must be a number"
	} else if capital <= 0 {
		errors["capital"] = "capital must be positive"
	}

	var startDate, endDate time.Time
	if req.StartDate == "" {
		errors["start_date"] = "start_date is required"
	} else if parsed, err := ParseTime(req.StartDate); err != nil {
		errors["start_date"] = "start_date must be YYYY-MM-DD"
	} else {
		startDate = parsed
	}

	// end_date is optional; when absent the reference date is used.
	if req.EndDate != "" {
		if parsed, err := ParseTime(req.EndDate); err != nil {
			errors["end_date"] = "end_date must be YYYY-MM-DD"
		} else {
			endDate = parsed
		}
	}

	if !startDate.IsZero() && !endDate.IsZero() && endDate.Before(startDate) {
		errors["end_date"] = "end_date must not be before start_date"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
