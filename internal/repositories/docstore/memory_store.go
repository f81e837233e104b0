package docstore

import (
	"context"
	"sync"
)

// MemoryStore keeps documents in process memory. Used by tests and STORE_DRIVER=memory.
type MemoryStore struct {
	mu    sync.RWMutex
	docs  map[string][]byte
	locks KeyedMutex
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string][]byte)}
}

var _ Store = (*MemoryStore)(nil)

func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), doc...), nil
}

func (s *MemoryStore) Update(ctx context.Context, key string, fn UpdateFunc) error {
	unlock := s.locks.Lock(key)
	defer unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	current, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	next, err := fn(current)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.docs[key] = append([]byte(nil), next...)
	s.mu.Unlock()
	return nil
}
