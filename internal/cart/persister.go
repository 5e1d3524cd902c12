package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	goredis "github.com/redis/go-redis/v9"

	"github.com/shopkartlabs/shopkart-backend/pkg/redis"
)

// MemoryPersister keeps snapshots in process memory, used for guest sessions
// and tests.
type MemoryPersister struct {
	mu   sync.RWMutex
	data map[string][]Item
}

// NewMemoryPersister builds an empty in-memory persister.
func NewMemoryPersister() *MemoryPersister {
	return &MemoryPersister{data: make(map[string][]Item)}
}

func (m *MemoryPersister) Save(_ context.Context, key string, items []Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	snapshot := make([]Item, len(items))
	copy(snapshot, items)
	m.data[key] = snapshot
	return nil
}

func (m *MemoryPersister) Load(_ context.Context, key string) ([]Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	saved, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	out := make([]Item, len(saved))
	copy(out, saved)
	return out, nil
}

// FilePersister writes snapshots as JSON files under a directory.
type FilePersister struct {
	dir string
}

// NewFilePersister ensures the directory exists and returns the persister.
func NewFilePersister(dir string) (*FilePersister, error) {
	if dir == "" {
		return nil, errors.New("persister directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %q: %w", dir, err)
	}
	return &FilePersister{dir: dir}, nil
}

func (f *FilePersister) Save(_ context.Context, key string, items []Item) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding cart snapshot: %w", err)
	}
	return os.WriteFile(f.path(key), data, 0o644)
}

func (f *FilePersister) Load(_ context.Context, key string) ([]Item, error) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading cart snapshot: %w", err)
	}
	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decoding cart snapshot: %w", err)
	}
	return items, nil
}

func (f *FilePersister) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

// RedisPersister stores snapshots in Redis under the shared cart namespace.
type RedisPersister struct {
	client *redis.Client
}

// NewRedisPersister wraps the shared redis client.
func NewRedisPersister(client *redis.Client) (*RedisPersister, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	return &RedisPersister{client: client}, nil
}

func (r *RedisPersister) Save(ctx context.Context, key string, items []Item) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding cart snapshot: %w", err)
	}
	return r.client.Set(ctx, r.client.CartKey(key), string(data), 0)
}

func (r *RedisPersister) Load(ctx context.Context, key string) ([]Item, error) {
	raw, err := r.client.Get(ctx, r.client.CartKey(key))
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading cart snapshot: %w", err)
	}
	var items []Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("decoding cart snapshot: %w", err)
	}
	return items, nil
}
