package docstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/property_backoffice/internal/apperrors"
)

type item struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newItems() *Collection[item] {
	return NewCollection(NewMemoryStore(), "items", func(i item) string { return i.ID })
}

func TestCollection_ListEmpty(t *testing.T) {
	items, err := newItems().List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestCollection_CRUD(t *testing.T) {
	ctx := context.Background()
	c := newItems()

	require.NoError(t, c.Append(ctx, item{ID: "a", Name: "first"}))
	require.NoError(t, c.Append(ctx, item{ID: "b", Name: "second"}))
	assert.ErrorIs(t, c.Append(ctx, item{ID: " a "}), apperrors.ErrDuplicate)

	found, err := c.Find(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "second", found.Name)

	_, err = c.Find(ctx, "zzz")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	require.NoError(t, c.Replace(ctx, item{ID: "a", Name: "renamed"}))
	assert.ErrorIs(t, c.Replace(ctx, item{ID: "zzz"}), apperrors.ErrNotFound)

	require.NoError(t, c.Upsert(ctx, item{ID: "c", Name: "third"}))
	require.NoError(t, c.Upsert(ctx, item{ID: "c", Name: "third again"}))

	require.NoError(t, c.Delete(ctx, "b"))
	assert.ErrorIs(t, c.Delete(ctx, "b"), apperrors.ErrNotFound)

	all, err := c.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []item{{ID: "a", Name: "renamed"}, {ID: "c", Name: "third again"}}, all)
}

func TestCollection_AppendNew(t *testing.T) {
	ctx := context.Background()
	c := newItems()
	require.NoError(t, c.Append(ctx, item{ID: "a"}))

	added, skipped, err := c.AppendNew(ctx, []item{{ID: "a"}, {ID: "b"}, {ID: "b"}, {ID: "c"}})
	require.NoError(t, err)
	assert.Equal(t, 2, added)
	assert.Equal(t, 2, skipped)

	all, err := c.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestCollection_Filter(t *testing.T) {
	ctx := context.Background()
	c := newItems()
	for _, id := range []string{"x1", "y1", "x2"} {
		require.NoError(t, c.Append(ctx, item{ID: id}))
	}

	xs, err := c.Filter(ctx, func(i item) bool { return i.ID[0] == 'x' })
	require.NoError(t, err)
	assert.Len(t, xs, 2)
}

func TestCollection_CorruptDocument(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Update(ctx, "items", func([]byte) ([]byte, error) { return []byte(`{"not":"a list"}`), nil }))

	_, err := NewCollection(store, "items", func(i item) string { return i.ID }).List(ctx)
	assert.Error(t, err)
}
