package store

import (
	"encoding/json"
	"fmt"

	"github.com/patrickmn/go-cache"
)

// MemoryStore keeps encoded values in process memory. Entries never expire.
type MemoryStore struct {
	c *cache.Cache
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{c: cache.New(cache.NoExpiration, 0)}
}

func (m *MemoryStore) Get(key string, v any) error {
	raw, ok := m.c.Get(key)
	if !ok {
		return ErrNotFound
	}
	if err := json.Unmarshal(raw.([]byte), v); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func (m *MemoryStore) Set(key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	m.c.Set(key, b, cache.NoExpiration)
	return nil
}

func (m *MemoryStore) Delete(key string) error {
	m.c.Delete(key)
	return nil
}
