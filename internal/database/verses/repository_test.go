package verses

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/scripture/internal/entities"
)

func setupTestDB(t *testing.T) (*gorm.DB, *Repository, func()) {
	t.Helper()
	dbPath := "./test_verses_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.Translation{}, &entities.Verse{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return db, repo, cleanup
}

func seedTestVerses(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Create(&entities.Translation{
		ID: "en-kjv", Name: "King James Version", Language: "en", Status: "complete",
	}).Error)

	rows := []entities.Verse{
		{TranslationID: "en-kjv", Book: 1, Chapter: 1, Verse: 1, Text: "In the beginning God created the heaven and the earth."},
		{TranslationID: "en-kjv", Book: 1, Chapter: 1, Verse: 2, Text: "And the earth was without form, and void."},
		{TranslationID: "en-kjv", Book: 1, Chapter: 1, Verse: 3, Text: "And God said, Let there be light: and there was light."},
		{TranslationID: "en-kjv", Book: 1, Chapter: 2, Verse: 1, Text: "Thus the heavens and the earth were finished."},
		{TranslationID: "en-kjv", Book: 43, Chapter: 3, Verse: 16, Text: "For God so loved the world, that he gave his only begotten Son."},
		{TranslationID: "en-kjv", Book: 43, Chapter: 3, Verse: 17, Text: "For God sent not his Son into the world to condemn the world."},
	}
	for i := range rows {
		require.NoError(t, db.Create(&rows[i]).Error)
	}
}

func TestRepository_GetVerse(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()
	seedTestVerses(t, db)

	verse, err := repo.GetVerse("en-kjv", 1, 1, 1)
	require.NoError(t, err)
	assert.Contains(t, verse.Text, "In the beginning")

	_, err = repo.GetVerse("en-kjv", 1, 1, 99)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_GetVerseRange(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()
	seedTestVerses(t, db)

	t.Run("ascending order", func(t *testing.T) {
		rows, err := repo.GetVerseRange("en-kjv", 1, 1, 1, 3)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		for i, row := range rows {
			assert.Equal(t, i+1, row.Verse)
		}
	})

	t.Run("gaps produce fewer rows", func(t *testing.T) {
		rows, err := repo.GetVerseRange("en-kjv", 1, 1, 2, 10)
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})

	t.Run("empty result is not an error", func(t *testing.T) {
		rows, err := repo.GetVerseRange("en-kjv", 2, 1, 1, 5)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}

func TestRepository_GetChapterVerses(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()
	seedTestVerses(t, db)

	rows, err := repo.GetChapterVerses("en-kjv", 1, 1)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestRepository_GetChapterSummaries(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()
	seedTestVerses(t, db)

	summaries, err := repo.GetChapterSummaries("en-kjv", 1)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, 1, summaries[0].Chapter)
	assert.Equal(t, 3, summaries[0].VerseCount)
	assert.Equal(t, 2, summaries[1].Chapter)
	assert.Equal(t, 1, summaries[1].VerseCount)
}

func TestRepository_Search(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()
	seedTestVerses(t, db)

	t.Run("case-insensitive substring match", func(t *testing.T) {
		rows, total, err := repo.Search("en-kjv", "GOD", 10, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(4), total)
		assert.Len(t, rows, 4)
	})

	t.Run("total is independent of pagination", func(t *testing.T) {
		_, totalFirst, err := repo.Search("en-kjv", "god", 2, 0)
		require.NoError(t, err)

		rows, totalSecond, err := repo.Search("en-kjv", "god", 2, 2)
		require.NoError(t, err)

		assert.Equal(t, totalFirst, totalSecond)
		assert.LessOrEqual(t, len(rows), 2)
	})

	t.Run("pages are disjoint and ordered", func(t *testing.T) {
		first, _, err := repo.Search("en-kjv", "god", 2, 0)
		require.NoError(t, err)
		second, _, err := repo.Search("en-kjv", "god", 2, 2)
		require.NoError(t, err)

		require.Len(t, first, 2)
		require.Len(t, second, 2)
		assert.NotEqual(t, first[0].ID, second[0].ID)
	})

	t.Run("blank query yields nothing", func(t *testing.T) {
		rows, total, err := repo.Search("en-kjv", "   ", 10, 0)
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, rows)
	})

	t.Run("no matches", func(t *testing.T) {
		rows, total, err := repo.Search("en-kjv", "zzzzzz", 10, 0)
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, rows)
	})
}
