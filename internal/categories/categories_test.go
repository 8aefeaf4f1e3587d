package categories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marktplaats/client/internal/categories"
	"marktplaats/client/internal/domain"
)

func TestFromName(t *testing.T) {
	t.Parallel()

	t.Run("top-level category", func(t *testing.T) {
		t.Parallel()

		cat, err := categories.FromName("Fietsen en Brommers")
		require.NoError(t, err)

		l1, ok := cat.(domain.L1Category)
		require.True(t, ok)
		assert.Equal(t, 480, l1.ID)
		assert.Equal(t, "Fietsen en Brommers", l1.Name)
	})

	t.Run("subcategory carries its parent", func(t *testing.T) {
		t.Parallel()

		cat, err := categories.FromName("Beschrijfbare discs")
		require.NoError(t, err)

		l2, ok := cat.(domain.L2Category)
		require.True(t, ok)
		assert.Equal(t, 1415, l2.ID)
		assert.Equal(t, 322, l2.Parent.ID)
		assert.Equal(t, "Computers en Software", l2.Parent.Name)
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		t.Parallel()

		upper, err := categories.FromName("BESCHRIJFBARE DISCS")
		require.NoError(t, err)
		lower, err := categories.FromName("beschrijfbare discs")
		require.NoError(t, err)

		assert.Equal(t, upper.CategoryID(), lower.CategoryID())
	})

	t.Run("falls back to the subcategory table", func(t *testing.T) {
		t.Parallel()

		cat, err := categories.FromName("laptops")
		require.NoError(t, err)
		_, ok := cat.(domain.L2Category)
		assert.True(t, ok)
	})

	t.Run("unknown name", func(t *testing.T) {
		t.Parallel()

		_, err := categories.FromName("definitely not a category")
		require.ErrorIs(t, err, categories.ErrCategoryNotFound)
	})
}

func TestFromNameRoundTrip(t *testing.T) {
	t.Parallel()

	first, err := categories.FromName("Beschrijfbare discs")
	require.NoError(t, err)
	second, err := categories.FromName("Beschrijfbare discs")
	require.NoError(t, err)

	// two resolutions yield distinct values that still compare equal by ID
	l2First, ok := first.(domain.L2Category)
	require.True(t, ok)
	l2Second, ok := second.(domain.L2Category)
	require.True(t, ok)
	assert.True(t, l2First.Equal(l2Second))
	assert.True(t, l2First.Parent.Equal(l2Second.Parent))
}

func TestL1Categories(t *testing.T) {
	t.Parallel()

	cats, err := categories.L1Categories()
	require.NoError(t, err)
	require.NotEmpty(t, cats)

	for i := 1; i < len(cats); i++ {
		assert.Less(t, cats[i-1].ID, cats[i].ID)
	}
}

func TestL2Categories(t *testing.T) {
	t.Parallel()

	cats, err := categories.L2Categories()
	require.NoError(t, err)
	require.NotEmpty(t, cats)

	// every subcategory resolved eagerly with its parent
	for _, cat := range cats {
		assert.NotZero(t, cat.Parent.ID, "subcategory %q has no parent", cat.Name)
	}
}

func TestL2CategoriesByParent(t *testing.T) {
	t.Parallel()

	parent, err := categories.FromName("Computers en Software")
	require.NoError(t, err)
	l1, ok := parent.(domain.L1Category)
	require.True(t, ok)

	subs, err := categories.L2CategoriesByParent(l1)
	require.NoError(t, err)
	require.NotEmpty(t, subs)

	ids := make([]int, 0, len(subs))
	for _, sub := range subs {
		assert.Equal(t, l1.ID, sub.Parent.ID)
		ids = append(ids, sub.ID)
	}
	assert.Contains(t, ids, 1415)
}
