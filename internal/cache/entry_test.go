package cache_test

import (
	"context"
	"strings"
	"testing"

	"github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/cache"
	"github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/model"
	"github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/testutil"
)

// testFernetKey is a fixed 32-byte key encoded the way fernet expects.
const testFernetKey = "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA="

func sampleEntry() *model.CacheEntry {
	day := testutil.Day(2025, 1, 10)
	return &model.CacheEntry{
		Signals: testutil.SignalSeries(day, model.ActionBuy, model.ActionSell),
		History: []model.DayTrading{{
			Date: day,
			Trades: []model.SimulatedTrade{{
				Kind: model.ActionBuy, Quantity: 10, PricePerShare: 100, Timestamp: day,
			}},
		}},
		LastFetchedDate: day.AddDate(0, 0, 1),
	}
}

func TestEntryStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	key := cache.Key(cache.GuestUserID, "SSE", model.ModelA2C)

	backends := []struct {
		name  string
		store cache.Store
	}{
		{"memory", cache.NewMemoryStore()},
		{"sqlite", cache.NewSQLiteStore(testutil.SetupTestDB(t))},
	}

	for _, backend := range backends {
		t.Run(backend.name, func(t *testing.T) {
			entries, err := cache.NewEntryStore(backend.store, "")
			if err != nil {
				t.Fatalf("Failed to create entry store: %v", err)
			}

			loaded, err := entries.Load(ctx, key)
			if err != nil {
				t.Fatalf("Failed to load: %v", err)
			}
			if loaded != nil {
				t.Fatal("Expected nil for an absent entry")
			}

			if err := entries.Save(ctx, key, sampleEntry()); err != nil {
				t.Fatalf("Failed to save: %v", err)
			}

			loaded, err = entries.Load(ctx, key)
			if err != nil || loaded == nil {
				t.Fatalf("Expected a hit, got %v (err %v)", loaded, err)
			}
			if len(loaded.Signals) != 2 || len(loaded.History) != 1 {
				t.Errorf("Entry did not survive the round trip: %+v", loaded)
			}
			if !loaded.LastFetchedDate.Equal(testutil.Day(2025, 1, 11)) {
				t.Errorf("Watermark did not survive: %v", loaded.LastFetchedDate)
			}
		})
	}
}

func TestEntryStore_CorruptPayloadIsMiss(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryStore()
	entries, err := cache.NewEntryStore(store, "")
	if err != nil {
		t.Fatalf("Failed to create entry store: %v", err)
	}

	key := cache.Key(cache.GuestUserID, "SSE", model.ModelA2C)
	if err := store.Set(ctx, key, "{not json"); err != nil {
		t.Fatalf("Failed to plant corrupt payload: %v", err)
	}

	loaded, err := entries.Load(ctx, key)
	if err != nil {
		t.Fatalf("Corruption must read as a miss, got error: %v", err)
	}
	if loaded != nil {
		t.Errorf("Expected nil for corrupt payload, got %+v", loaded)
	}
}

func TestEntryStore_Encryption(t *testing.T) {
	ctx := context.Background()
	key := cache.Key(cache.GuestUserID, "SSE", model.ModelA2C)

	t.Run("round trip with key", func(t *testing.T) {
		store := cache.NewMemoryStore()
		entries, err := cache.NewEntryStore(store, testFernetKey)
		if err != nil {
			t.Fatalf("Failed to create encrypted entry store: %v", err)
		}

		if err := entries.Save(ctx, key, sampleEntry()); err != nil {
			t.Fatalf("Failed to save: %v", err)
		}

		// The stored payload must not be readable JSON.
		raw, ok, err := store.Get(ctx, key)
		if err != nil || !ok {
			t.Fatalf("Expected stored payload, got ok=%v err=%v", ok, err)
		}
		if strings.Contains(raw, `"signals"`) {
			t.Error("Payload stored in cleartext despite encryption key")
		}

		loaded, err := entries.Load(ctx, key)
		if err != nil || loaded == nil {
			t.Fatalf("Expected a hit, got %v (err %v)", loaded, err)
		}
		if len(loaded.Signals) != 2 {
			t.Errorf("Entry did not survive encrypted round trip: %+v", loaded)
		}
	})

	t.Run("undecryptable payload is a miss", func(t *testing.T) {
		store := cache.NewMemoryStore()
		entries, err := cache.NewEntryStore(store, testFernetKey)
		if err != nil {
			t.Fatalf("Failed to create encrypted entry store: %v", err)
		}

		if err := store.Set(ctx, key, `{"signals":[]}`); err != nil {
			t.Fatalf("Failed to plant plaintext payload: %v", err)
		}

		loaded, err := entries.Load(ctx, key)
		if err != nil {
			t.Fatalf("Decrypt failure must read as a miss, got error: %v", err)
		}
		if loaded != nil {
			t.Errorf("Expected nil for undecryptable payload, got %+v", loaded)
		}
	})

	t.Run("rejects malformed key", func(t *testing.T) {
		if _, err := cache.NewEntryStore(cache.NewMemoryStore(), "not-a-key"); err == nil {
			t.Error("Expected an error for a malformed encryption key")
		}
	})
}
