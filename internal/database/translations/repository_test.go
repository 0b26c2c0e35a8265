package translations

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
	dbPath := "./test_translations_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"

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

func seedTranslations(t *testing.T, db *gorm.DB, rows ...entities.Translation) {
	t.Helper()
	for i := range rows {
		require.NoError(t, db.Create(&rows[i]).Error)
	}
}

func TestRepository_GetByID(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()
	seedTranslations(t, db,
		entities.Translation{ID: "en-kjv", Name: "King James Version", Language: "en", Status: "complete"},
	)

	translation, err := repo.GetByID("en-kjv")
	require.NoError(t, err)
	assert.Equal(t, "King James Version", translation.Name)

	_, err = repo.GetByID("xx-none")
	assert.True(t, IsNotFound(err))
}

func TestRepository_GetByLanguage(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()
	seedTranslations(t, db,
		entities.Translation{ID: "en-web", Name: "World English Bible", Language: "en"},
		entities.Translation{ID: "en-kjv", Name: "King James Version", Language: "en"},
		entities.Translation{ID: "fr-lsg", Name: "Louis Segond", Language: "fr"},
	)

	english, err := repo.GetByLanguage("en")
	require.NoError(t, err)
	require.Len(t, english, 2)
	// Name-sorted.
	assert.Equal(t, "en-kjv", english[0].ID)
	assert.Equal(t, "en-web", english[1].ID)

	none, err := repo.GetByLanguage("de")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRepository_Languages(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()
	seedTranslations(t, db,
		entities.Translation{ID: "en-web", Name: "World English Bible", Language: "en"},
		entities.Translation{ID: "en-kjv", Name: "King James Version", Language: "en"},
		entities.Translation{ID: "fr-lsg", Name: "Louis Segond", Language: "fr"},
	)

	languages, err := repo.Languages()
	require.NoError(t, err)
	require.Len(t, languages, 2)
	assert.Equal(t, LanguageSummary{Code: "en", Translations: 2}, languages[0])
	assert.Equal(t, LanguageSummary{Code: "fr", Translations: 1}, languages[1])
}

func TestRepository_DefaultForLanguage(t *testing.T) {
	t.Run("prefers the curated default when present", func(t *testing.T) {
		db, repo, cleanup := setupTestDB(t)
		defer cleanup()
		seedTranslations(t, db,
			entities.Translation{ID: "en-asv", Name: "American Standard Version", Language: "en"},
			entities.Translation{ID: "en-kjv", Name: "King James Version", Language: "en"},
		)

		def, err := repo.DefaultForLanguage("en")
		require.NoError(t, err)
		assert.Equal(t, "en-kjv", def.ID)
	})

	t.Run("falls back to first by name", func(t *testing.T) {
		db, repo, cleanup := setupTestDB(t)
		defer cleanup()
		seedTranslations(t, db,
			entities.Translation{ID: "en-web", Name: "World English Bible", Language: "en"},
			entities.Translation{ID: "en-asv", Name: "American Standard Version", Language: "en"},
		)

		def, err := repo.DefaultForLanguage("en")
		require.NoError(t, err)
		assert.Equal(t, "en-asv", def.ID)
	})

	t.Run("no translations for language", func(t *testing.T) {
		_, repo, cleanup := setupTestDB(t)
		defer cleanup()

		_, err := repo.DefaultForLanguage("de")
		assert.True(t, IsNotFound(err))
	})
}
