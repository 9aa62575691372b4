package testutil

import (
	"context"
	"time"

	"github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/model"
)

// MockGatewayClient is a mock implementation of marketdata.Client for
// testing. It returns predefined test data instead of making actual API
// calls.
type MockGatewayClient struct {
	// MockSignals is returned from GetSignalHistory
	MockSignals []model.Signal
	// MockBars is returned from GetPriceHistory
	MockBars []model.PriceBar
	// SignalError is the error to return from GetSignalHistory
	SignalError error
	// PriceError is the error to return from GetPriceHistory
	PriceError error
	// SignalCalls tracks how many times GetSignalHistory was called
	SignalCalls int
	// PriceCalls tracks how many times GetPriceHistory was called
	PriceCalls int
	// LastStartDate records the start date of the most recent signal fetch
	LastStartDate time.Time
}

// NewMockGatewayClient creates a mock gateway with no data configured.
func NewMockGatewayClient() *MockGatewayClient {
	return &MockGatewayClient{}
}

// GetSignalHistory returns the configured signals or error.
func (m *MockGatewayClient) GetSignalHistory(_ context.Context, _ string, startDate time.Time) ([]model.Signal, error) {
	m.SignalCalls++
	m.LastStartDate = startDate
	if m.SignalError != nil {
		return nil, m.SignalError
	}
	return m.MockSignals, nil
}

// GetPriceHistory returns the configured bars or error.
func (m *MockGatewayClient) GetPriceHistory(_ context.Context, _ string, _ int) ([]model.PriceBar, error) {
	m.PriceCalls++
	if m.PriceError != nil {
		return nil, m.PriceError
	}
	return m.MockBars, nil
}

// WithSignals configures the mock to return the given signals.
func (m *MockGatewayClient) WithSignals(signals []model.Signal) *MockGatewayClient {
	m.MockSignals = signals
	return m
}

// WithBars configures the mock to return the given price bars.
func (m *MockGatewayClient) WithBars(bars []model.PriceBar) *MockGatewayClient {
	m.MockBars = bars
	return m
}

// WithSignalError configures the mock signal fetch to fail.
func (m *MockGatewayClient) WithSignalError(err error) *MockGatewayClient {
	m.SignalError = err
	return m
}

// WithPriceError configures the mock price fetch to fail.
func (m *MockGatewayClient) WithPriceError(err error) *MockGatewayClient {
	m.PriceError = err
	return m
}
