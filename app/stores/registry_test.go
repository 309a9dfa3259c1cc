package stores

import (
	"context"
	"testing"

	"github.com/crumbandco/bakeshop/app/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRegistryReturnsSameSetPerVisitor(t *testing.T) {
	r := NewRegistry(storage.NewMemoryStore(), zap.NewNop().Sugar())
	ctx := context.Background()

	first := r.ForVisitor(ctx, "v1")
	second := r.ForVisitor(ctx, "v1")
	assert.Same(t, first, second)

	other := r.ForVisitor(ctx, "v2")
	assert.NotSame(t, first, other)
}

func TestRegistryDropRebuildsFromStorage(t *testing.T) {
	r := NewRegistry(storage.NewMemoryStore(), zap.NewNop().Sugar())
	ctx := context.Background()

	set := r.ForVisitor(ctx, "v1")
	set.Cart.AddLine(testProduct("1", 200), "1kg", "chocolate", 1)
	set.Wishlist.Add(ctx, testProduct("2", 300))

	r.Drop("v1")
	rebuilt := r.ForVisitor(ctx, "v1")

	require.NotSame(t, set, rebuilt)
	assert.Equal(t, 0, rebuilt.Cart.TotalItems(), "cart is process memory only")
	assert.True(t, rebuilt.Wishlist.Has("2"), "wishlist rehydrates from storage")
}
