package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/fernet/fernet-go"

	"github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/model"
)

// EntryStore marshals CacheEntry records over a Store. When constructed with
// an encryption key, payloads are fernet-encrypted at rest; a payload that
// fails to decrypt or decode is reported as a miss, never as an error, since
// the synchronizer can always rebuild it from the remote service.
type EntryStore struct {
	store Store
	key   *fernet.Key
}

// NewEntryStore creates an EntryStore over the given backend. encryptionKey
// is an optional base64 fernet key; pass the empty string to store plaintext
// JSON.
func NewEntryStore(store Store, encryptionKey string) (*EntryStore, error) {
	es := &EntryStore{store: store}
	if encryptionKey != "" {
		key, err := fernet.DecodeKey(encryptionKey)
		if err != nil {
			return nil, fmt.Errorf("decode cache encryption key: %w", err)
		}
		es.key = key
	}
	return es, nil
}

// Load returns the cached entry for key, or nil if absent or unreadable.
func (es *EntryStore) Load(ctx context.Context, key string) (*model.CacheEntry, error) {
	payload, ok, err := es.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	raw := []byte(payload)
	if es.key != nil {
		raw = fernet.VerifyAndDecrypt([]byte(payload), 0, []*fernet.Key{es.key})
		if raw == nil {
			log.Printf("cache entry %s failed decryption, treating as miss", key)
			return nil, nil
		}
	}

	var entry model.CacheEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		log.Printf("cache entry %s corrupt, treating as miss: %v", key, err)
		return nil, nil
	}
	return &entry, nil
}

// Save overwrites the cached entry for key.
func (es *EntryStore) Save(ctx context.Context, key string, entry *model.CacheEntry) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode cache entry: %w", err)
	}

	if es.key != nil {
		token, err := fernet.EncryptAndSign(raw, es.key)
		if err != nil {
			return fmt.Errorf("encrypt cache entry: %w", err)
		}
		raw = token
	}

	return es.store.Set(ctx, key, string(raw))
}
