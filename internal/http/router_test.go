package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/scripture/internal/books"
	"github.com/mrlokans/scripture/internal/database"
	"github.com/mrlokans/scripture/internal/database/translations"
	"github.com/mrlokans/scripture/internal/database/verses"
	"github.com/mrlokans/scripture/internal/entities"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *database.Database, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_http_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	router := NewRouter(RouterConfig{
		Database:        db,
		Catalog:         books.NewCatalog(),
		Translations:    translations.NewRepository(db.DB),
		Verses:          verses.NewRepository(db.DB),
		DefaultLanguage: "en",
		Version:         "test",
	})

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return router, db, cleanup
}

func seedFixture(t *testing.T, db *database.Database) {
	t.Helper()

	translationRows := []entities.Translation{
		{ID: "en-kjv", Name: "King James Version", Language: "en", Status: "complete"},
		{ID: "fr-lsg", Name: "Louis Segond", Language: "fr", Status: "complete"},
	}
	for i := range translationRows {
		require.NoError(t, db.DB.Create(&translationRows[i]).Error)
	}

	verseRows := []entities.Verse{
		{TranslationID: "en-kjv", Book: 1, Chapter: 1, Verse: 1, Text: "In the beginning God created the heaven and the earth."},
		{TranslationID: "en-kjv", Book: 1, Chapter: 1, Verse: 2, Text: "And the earth was without form, and void."},
		{TranslationID: "en-kjv", Book: 19, Chapter: 23, Verse: 1, Text: "The LORD is my shepherd; I shall not want."},
		{TranslationID: "en-kjv", Book: 19, Chapter: 23, Verse: 2, Text: "He maketh me to lie down in green pastures."},
		{TranslationID: "en-kjv", Book: 19, Chapter: 23, Verse: 3, Text: "He restoreth my soul."},
		{TranslationID: "en-kjv", Book: 19, Chapter: 23, Verse: 4, Text: "Yea, though I walk through the valley of the shadow of death, I will fear no evil."},
		{TranslationID: "en-kjv", Book: 19, Chapter: 23, Verse: 5, Text: "Thou preparest a table before me in the presence of mine enemies."},
		{TranslationID: "en-kjv", Book: 19, Chapter: 23, Verse: 6, Text: "Surely goodness and mercy shall follow me all the days of my life."},
		{TranslationID: "en-kjv", Book: 43, Chapter: 3, Verse: 16, Text: "For God so loved the world, that he gave his only begotten Son."},
		{TranslationID: "en-kjv", Book: 45, Chapter: 8, Verse: 28, Text: "And we know that all things work together for good to them that love God."},
		{TranslationID: "en-kjv", Book: 46, Chapter: 13, Verse: 4, Text: "Charity suffereth long, and is kind; charity envieth not."},
		{TranslationID: "en-kjv", Book: 62, Chapter: 4, Verse: 8, Text: "He that loveth not knoweth not God; for God is love."},
		{TranslationID: "en-kjv", Book: 62, Chapter: 4, Verse: 19, Text: "We love him, because he first loved us."},
		{TranslationID: "fr-lsg", Book: 1, Chapter: 1, Verse: 1, Text: "Au commencement, Dieu créa les cieux et la terre."},
		{TranslationID: "fr-lsg", Book: 43, Chapter: 3, Verse: 16, Text: "Car Dieu a tant aimé le monde qu'il a donné son Fils unique."},
	}
	for i := range verseRows {
		require.NoError(t, db.DB.Create(&verseRows[i]).Error)
	}
}

func doGet(t *testing.T, router *gin.Engine, path string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	w := httptest.NewRecorder()
	req, err := http.NewRequest("GET", path, nil)
	require.NoError(t, err)
	router.ServeHTTP(w, req)

	var body map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	}
	return w, body
}

// errorCode digs the machine-readable code out of an error envelope.
func errorCode(t *testing.T, body map[string]any) string {
	t.Helper()
	envelope, ok := body["error"].(map[string]any)
	require.True(t, ok, "response has no error envelope: %v", body)
	code, _ := envelope["code"].(string)
	return code
}

func TestRouter_Ping(t *testing.T) {
	router, _, cleanup := setupTestRouter(t)
	defer cleanup()

	w, body := doGet(t, router, "/ping")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "pong", body["message"])
}
