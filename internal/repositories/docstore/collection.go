package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/SscSPs/property_backoffice/internal/apperrors"
)

// Collection adapts one dataset document to a typed list of records.
type Collection[T any] struct {
	store Store
	key   string
	id    func(T) string
}

// NewCollection binds a dataset key to a record type. id extracts the record's
// identity; ids are compared after trimming whitespace.
func NewCollection[T any](store Store, key string, id func(T) string) *Collection[T] {
	return &Collection[T]{store: store, key: key, id: id}
}

func (c *Collection[T]) decode(doc []byte) ([]T, error) {
	items := []T{}
	if len(doc) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(doc, &items); err != nil {
		return nil, fmt.Errorf("failed to decode dataset %s: %w", c.key, err)
	}
	return items, nil
}

func (c *Collection[T]) idOf(item T) string {
	return strings.TrimSpace(c.id(item))
}

// List returns a fresh copy of every record in the dataset.
func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	doc, err := c.store.Get(ctx, c.key)
	if err != nil {
		return nil, err
	}
	return c.decode(doc)
}

// Filter lists the records for which keep returns true.
func (c *Collection[T]) Filter(ctx context.Context, keep func(T) bool) ([]T, error) {
	items, err := c.List(ctx)
	if err != nil {
		return nil, err
	}
	out := []T{}
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out, nil
}

// Find returns the record with the given id or apperrors.ErrNotFound.
func (c *Collection[T]) Find(ctx context.Context, id string) (*T, error) {
	items, err := c.List(ctx)
	if err != nil {
		return nil, err
	}
	id = strings.TrimSpace(id)
	for i := range items {
		if c.idOf(items[i]) == id {
			return &items[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s %s", apperrors.ErrNotFound, c.key, id)
}

// Mutate rewrites the whole dataset under its write lock.
func (c *Collection[T]) Mutate(ctx context.Context, fn func([]T) ([]T, error)) error {
	return c.store.Update(ctx, c.key, func(current []byte) ([]byte, error) {
		items, err := c.decode(current)
		if err != nil {
			return nil, err
		}
		next, err := fn(items)
		if err != nil {
			return nil, err
		}
		if next == nil {
			next = []T{}
		}
		return json.Marshal(next)
	})
}

// Append adds a new record, failing with apperrors.ErrDuplicate if its id exists.
func (c *Collection[T]) Append(ctx context.Context, item T) error {
	id := c.idOf(item)
	return c.Mutate(ctx, func(items []T) ([]T, error) {
		for _, existing := range items {
			if c.idOf(existing) == id {
				return nil, fmt.Errorf("%w: %s %s", apperrors.ErrDuplicate, c.key, id)
			}
		}
		return append(items, item), nil
	})
}

// AppendNew adds every record whose id is not yet stored, including ids repeated
// within the batch. It reports how many were added and how many were skipped.
func (c *Collection[T]) AppendNew(ctx context.Context, batch []T) (added, skipped int, err error) {
	err = c.Mutate(ctx, func(items []T) ([]T, error) {
		added, skipped = 0, 0
		seen := make(map[string]struct{}, len(items)+len(batch))
		for _, existing := range items {
			seen[c.idOf(existing)] = struct{}{}
		}
		for _, item := range batch {
			id := c.idOf(item)
			if _, dup := seen[id]; dup {
				skipped++
				continue
			}
			seen[id] = struct{}{}
			items = append(items, item)
			added++
		}
		return items, nil
	})
	if err != nil {
		return 0, 0, err
	}
	return added, skipped, nil
}

// Replace swaps an existing record, failing with apperrors.ErrNotFound if absent.
func (c *Collection[T]) Replace(ctx context.Context, item T) error {
	id := c.idOf(item)
	return c.Mutate(ctx, func(items []T) ([]T, error) {
		for i := range items {
			if c.idOf(items[i]) == id {
				items[i] = item
				return items, nil
			}
		}
		return nil, fmt.Errorf("%w: %s %s", apperrors.ErrNotFound, c.key, id)
	})
}

// Upsert replaces the record with the same id or appends it.
func (c *Collection[T]) Upsert(ctx context.Context, item T) error {
	id := c.idOf(item)
	return c.Mutate(ctx, func(items []T) ([]T, error) {
		for i := range items {
			if c.idOf(items[i]) == id {
				items[i] = item
				return items, nil
			}
		}
		return append(items, item), nil
	})
}

// Delete removes a record, failing with apperrors.ErrNotFound if absent.
func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	return c.Mutate(ctx, func(items []T) ([]T, error) {
		for i := range items {
			if c.idOf(items[i]) == id {
				return append(items[:i], items[i+1:]...), nil
			}
		}
		return nil, fmt.Errorf("%w: %s %s", apperrors.ErrNotFound, c.key, id)
	})
}
