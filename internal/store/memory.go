package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryPersistence is an in-process Persistence implementation used in
// tests and in redis-less development. Snapshots are stored as marshalled
// JSON so Load/Save round-trip behaviour matches the Redis implementation.
type MemoryPersistence struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryPersistence creates an empty in-memory persistence layer.
func NewMemoryPersistence() *MemoryPersistence {
	return &MemoryPersistence{
		data: make(map[string][]byte),
	}
}

// Load reads the snapshot stored under key into dest.
func (p *MemoryPersistence) Load(ctx context.Context, key string, dest interface{}) error {
	p.mu.RLock()
	data, ok := p.data[key]
	p.mu.RUnlock()

	if !ok {
		return ErrNotFound
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("unmarshal snapshot failed: %w", err)
	}
	return nil
}

// Save writes value as the snapshot for key.
func (p *MemoryPersistence) Save(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal snapshot failed: %w", err)
	}

	p.mu.Lock()
	p.data[key] = data
	p.mu.Unlock()
	return nil
}

// Delete removes the snapshot for key.
func (p *MemoryPersistence) Delete(ctx context.Context, key string) error {
	p.mu.Lock()
	delete(p.data, key)
	p.mu.Unlock()
	return nil
}
