package testutil

import (
	"database/sql"
	"testing"

	"github.com/google/uuid"

	"github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/cache"
	"github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/service"
)

// MakeID returns a fresh UUID string for test fixtures.
func MakeID() string {
	return uuid.New().String()
}

// NewTestEntryStore creates an EntryStore over an in-memory map, suitable for
// most synchronizer and orchestrator tests.
func NewTestEntryStore(t *testing.T) *cache.EntryStore {
	t.Helper()

	entries, err := cache.NewEntryStore(cache.NewMemoryStore(), "")
	if err != nil {
		t.Fatalf("Failed to create entry store: %v", err)
	}
	return entries
}

// NewTestSQLiteEntryStore creates an EntryStore backed by an in-memory SQLite
// database, for tests exercising the durable backend.
func NewTestSQLiteEntryStore(t *testing.T, db *sql.DB) *cache.EntryStore {
	t.Helper()

	entries, err := cache.NewEntryStore(cache.NewSQLiteStore(db), "")
	if err != nil {
		t.Fatalf("Failed to create entry store: %v", err)
	}
	return entries
}

// NewTestAdvisoryService wires an AdvisoryService over the given mock gateway
// and an in-memory entry store, returning both.
func NewTestAdvisoryService(t *testing.T, gateway *MockGatewayClient) (*service.AdvisoryService, *cache.EntryStore) {
	t.Helper()

	entries := NewTestEntryStore(t)
	syncSvc := service.NewSyncService(gateway, entries)
	return service.NewAdvisoryService(gateway, syncSvc, entries), entries
}

// NewTestSyncService wires a SyncService over the given mock gateway and an
// in-memory entry store, returning both.
func NewTestSyncService(t *testing.T, gateway *MockGatewayClient) (*service.SyncService, *cache.EntryStore) {
	t.Helper()

	entries := NewTestEntryStore(t)
	return service.NewSyncService(gateway, entries), entries
}
