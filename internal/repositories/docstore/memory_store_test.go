package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_GetMissing(t *testing.T) {
	s := NewMemoryStore()
	doc, err := s.Get(context.Background(), "nothing")
	require.NoError(t, err)
	assert.Nil(t, doc)
}

func TestMemoryStore_UpdateAbortKeepsDocument(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.Update(ctx, "k", func([]byte) ([]byte, error) { return []byte(`[1]`), nil }))

	boom := errors.New("boom")
	err := s.Update(ctx, "k", func([]byte) ([]byte, error) { return []byte(`[2]`), boom })
	assert.ErrorIs(t, err, boom)

	doc, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.JSONEq(t, `[1]`, string(doc))
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.Update(ctx, "k", func([]byte) ([]byte, error) { return []byte(`[1]`), nil }))

	doc, _ := s.Get(ctx, "k")
	doc[1] = '9'

	again, _ := s.Get(ctx, "k")
	assert.Equal(t, `[1]`, string(again))
}

func TestMemoryStore_ConcurrentUpdatesAreSerialized(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	const writers = 50

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			err := s.Update(ctx, "counter", func(cur []byte) ([]byte, error) {
				var values []int
				if len(cur) > 0 {
					if err := json.Unmarshal(cur, &values); err != nil {
						return nil, err
					}
				}
				return json.Marshal(append(values, n))
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	doc, err := s.Get(ctx, "counter")
	require.NoError(t, err)
	var values []int
	require.NoError(t, json.Unmarshal(doc, &values))
	assert.Len(t, values, writers, "no write may be lost")
}

func TestMemoryStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := NewMemoryStore()

	_, err := s.Get(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
	err = s.Update(ctx, "k", func([]byte) ([]byte, error) { return nil, nil })
	assert.ErrorIs(t, err, context.Canceled)
}
