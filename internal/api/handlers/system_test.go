package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/service"
	"github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/testutil"
)

func TestSystemHandler_Health(t *testing.T) {
	t.Run("healthy database", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewSystemHandler(service.NewSystemService(db))

		req := httptest.NewRequest(http.MethodGet, "/api/system/health", nil)
		w := httptest.NewRecorder()
		handler.Health(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", w.Code)
		}

		var response HealthResponse
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if response.Status != "healthy" || response.Database != "connected" {
			t.Errorf("Unexpected health response: %+v", response)
		}
	})

	t.Run("closed database reports unhealthy", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		db.Close()
		handler := NewSystemHandler(service.NewSystemService(db))

		req := httptest.NewRequest(http.MethodGet, "/api/system/health", nil)
		w := httptest.NewRecorder()
		handler.Health(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("Expected 503, got %d", w.Code)
		}

		var response HealthResponse
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if response.Status != "unhealthy" || response.Database != "disconnected" {
			t.Errorf("Unexpected health response: %+v", response)
		}
	})
}

func TestSystemHandler_Version(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewSystemHandler(service.NewSystemService(db))

	req := httptest.NewRequest(http.MethodGet, "/api/system/version", nil)
	w := httptest.NewRecorder()
	handler.Version(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var response struct {
		AppVersion string          `json:"app_version"`
		DbVersion  string          `json:"db_version"`
		Features   map[string]bool `json:"features"`
	}
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if response.AppVersion == "" {
		t.Error("Expected a non-empty app version")
	}
	if response.DbVersion != "1" {
		t.Errorf("Expected schema version 1, got %q", response.DbVersion)
	}
	if !response.Features["fallback_simulation"] {
		t.Errorf("Expected fallback_simulation feature flag, got %v", response.Features)
	}
}
