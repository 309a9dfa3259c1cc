package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogLookups(t *testing.T) {
	c := New()

	require.NotEmpty(t, c.Products())

	first := c.Products()[0]
	byID, ok := c.ProductByID(first.ID)
	require.True(t, ok)
	assert.Equal(t, first.Name, byID.Name)

	bySlug, ok := c.ProductBySlug(first.Slug)
	require.True(t, ok)
	assert.Equal(t, first.ID, bySlug.ID)

	_, ok = c.ProductByID("nope")
	assert.False(t, ok)
	_, ok = c.ProductBySlug("nope")
	assert.False(t, ok)
}

func TestCatalogByCategory(t *testing.T) {
	c := New()

	cakes := c.ByCategory("cakes")
	require.NotEmpty(t, cakes)
	for _, p := range cakes {
		assert.Equal(t, "cakes", p.Category)
	}

	assert.Empty(t, c.ByCategory("spaceships"))
}

func TestCatalogByOccasion(t *testing.T) {
	c := New()

	birthday := c.ByOccasion("birthday")
	require.NotEmpty(t, birthday)
	for _, p := range birthday {
		assert.True(t, p.HasOccasion("birthday"))
	}
}

func TestCatalogBestSellers(t *testing.T) {
	c := New()

	best := c.BestSellers()
	require.NotEmpty(t, best)
	for _, p := range best {
		assert.True(t, p.IsBestSeller)
	}
}

func TestFindOptionAndSize(t *testing.T) {
	heart, ok := FindOption(CakeShapes, "heart")
	require.True(t, ok)
	assert.True(t, heart.Price.Equal(decimal.NewFromInt(100)))

	_, ok = FindOption(CakeShapes, "triangle")
	assert.False(t, ok)

	size, ok := FindSize("1kg")
	require.True(t, ok)
	assert.True(t, size.Price.Equal(decimal.NewFromInt(900)))

	_, ok = FindSize("10kg")
	assert.False(t, ok)
}

func TestIsPaymentMethod(t *testing.T) {
	for _, m := range PaymentMethods {
		assert.True(t, IsPaymentMethod(m.ID), m.ID)
	}
	assert.False(t, IsPaymentMethod("bitcoin"))
	assert.False(t, IsPaymentMethod(""))
}

func TestOptionTablesHaveUniqueIDs(t *testing.T) {
	for name, group := range map[string][]Option{
		"shapes":      CakeShapes,
		"flavors":     CakeFlavors,
		"frostings":   FrostingTypes,
		"decorations": Decorations,
		"themes":      CakeThemes,
	} {
		seen := make(map[string]bool)
		for _, opt := range group {
			assert.False(t, seen[opt.ID], "%s: duplicate id %s", name, opt.ID)
			seen[opt.ID] = true
		}
	}
}
