package books

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Lookup(t *testing.T) {
	catalog := NewCatalog()

	t.Run("resolves canonical id", func(t *testing.T) {
		book, ok := catalog.Lookup("gen")
		require.True(t, ok)
		assert.Equal(t, "gen", book.ID)
		assert.Equal(t, 1, book.Number)
		assert.Equal(t, 50, book.ChapterCount)
	})

	t.Run("resolves alias", func(t *testing.T) {
		book, ok := catalog.Lookup("1cor")
		require.True(t, ok)
		assert.Equal(t, "1co", book.ID)
		assert.Equal(t, "1 Corinthians", book.Name("en"))
	})

	t.Run("is case-insensitive", func(t *testing.T) {
		book, ok := catalog.Lookup("Genesis")
		require.True(t, ok)
		assert.Equal(t, "gen", book.ID)

		book, ok = catalog.Lookup("  PSA ")
		require.True(t, ok)
		assert.Equal(t, "psa", book.ID)
	})

	t.Run("unknown token is not found", func(t *testing.T) {
		_, ok := catalog.Lookup("atlantis")
		assert.False(t, ok)
	})
}

func TestCatalog_ByNumber(t *testing.T) {
	catalog := NewCatalog()

	book, ok := catalog.ByNumber(19)
	require.True(t, ok)
	assert.Equal(t, "psa", book.ID)

	book, ok = catalog.ByNumber(66)
	require.True(t, ok)
	assert.Equal(t, "rev", book.ID)

	_, ok = catalog.ByNumber(0)
	assert.False(t, ok)
	_, ok = catalog.ByNumber(67)
	assert.False(t, ok)
}

func TestCatalog_All(t *testing.T) {
	catalog := NewCatalog()

	all := catalog.All()
	require.Len(t, all, 66)

	// Canonical order, unique monotonically assigned numbers.
	for i, book := range all {
		assert.Equal(t, i+1, book.Number)
	}

	// Testament split: 39 old, 27 new.
	assert.Equal(t, TestamentOld, all[38].Testament)
	assert.Equal(t, TestamentNew, all[39].Testament)
}

func TestCatalog_Names(t *testing.T) {
	catalog := NewCatalog()

	book, ok := catalog.Lookup("rev")
	require.True(t, ok)
	assert.Equal(t, "Revelation", book.Name("en"))
	assert.Equal(t, "Apocalypse", book.Name("fr"))
	// Unknown languages fall back to English.
	assert.Equal(t, "Revelation", book.Name("de"))
}

func TestCatalog_EveryAliasResolves(t *testing.T) {
	catalog := NewCatalog()

	for _, book := range catalog.All() {
		for _, alias := range book.Aliases {
			resolved, ok := catalog.Lookup(alias)
			require.True(t, ok, "alias %q of %s did not resolve", alias, book.ID)
			assert.Equal(t, book.ID, resolved.ID, "alias %q resolved to the wrong book", alias)
		}
	}
}
