package stores

import (
	"context"
	"testing"

	"github.com/crumbandco/bakeshop/app/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestWishlist(t *testing.T, kv storage.KeyValue, visitorID string) *WishlistStore {
	t.Helper()
	return NewWishlistStore(context.Background(), kv, visitorID, zap.NewNop().Sugar())
}

func TestWishlistAddIsIdempotent(t *testing.T) {
	w := newTestWishlist(t, storage.NewMemoryStore(), "v1")
	ctx := context.Background()

	w.Add(ctx, testProduct("1", 200))
	w.Add(ctx, testProduct("1", 200))

	assert.Equal(t, 1, w.Count())
	assert.True(t, w.Has("1"))
	assert.False(t, w.Has("2"))
}

func TestWishlistRemove(t *testing.T) {
	w := newTestWishlist(t, storage.NewMemoryStore(), "v1")
	ctx := context.Background()

	w.Add(ctx, testProduct("1", 200))
	w.Add(ctx, testProduct("2", 300))

	w.Remove(ctx, "1")
	assert.False(t, w.Has("1"))
	assert.Equal(t, 1, w.Count())

	// Removing an absent id leaves the set alone.
	w.Remove(ctx, "999")
	assert.Equal(t, 1, w.Count())
}

func TestWishlistSurvivesRebuild(t *testing.T) {
	kv := storage.NewMemoryStore()
	ctx := context.Background()

	first := newTestWishlist(t, kv, "v1")
	first.Add(ctx, testProduct("1", 200))
	first.Add(ctx, testProduct("2", 300))

	second := newTestWishlist(t, kv, "v1")
	assert.Equal(t, 2, second.Count())
	assert.True(t, second.Has("1"))
	assert.True(t, second.Has("2"))
}

func TestWishlistIsolatedPerVisitor(t *testing.T) {
	kv := storage.NewMemoryStore()
	ctx := context.Background()

	newTestWishlist(t, kv, "v1").Add(ctx, testProduct("1", 200))

	other := newTestWishlist(t, kv, "v2")
	assert.Equal(t, 0, other.Count())
}

func TestWishlistCorruptPayloadStartsEmpty(t *testing.T) {
	kv := storage.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, WishlistKeyPrefix+"v1", []byte("{not json")))

	w := newTestWishlist(t, kv, "v1")
	assert.Equal(t, 0, w.Count())

	// The store stays usable and overwrites the bad payload.
	w.Add(ctx, testProduct("1", 200))
	assert.Equal(t, 1, newTestWishlist(t, kv, "v1").Count())
}

func TestWishlistClear(t *testing.T) {
	kv := storage.NewMemoryStore()
	ctx := context.Background()

	w := newTestWishlist(t, kv, "v1")
	w.Add(ctx, testProduct("1", 200))
	w.Clear(ctx)

	assert.Equal(t, 0, w.Count())
	assert.Equal(t, 0, newTestWishlist(t, kv, "v1").Count())
}

func TestWishlistVisibility(t *testing.T) {
	w := newTestWishlist(t, storage.NewMemoryStore(), "v1")

	w.Open()
	assert.True(t, w.State().IsOpen)
	w.Close()
	assert.False(t, w.State().IsOpen)
	w.ToggleVisibility()
	assert.True(t, w.State().IsOpen)
}
