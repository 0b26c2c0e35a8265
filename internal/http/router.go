package http

import (
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/scripture/internal/books"
	"github.com/mrlokans/scripture/internal/database"
	"github.com/mrlokans/scripture/internal/database/translations"
	"github.com/mrlokans/scripture/internal/database/verses"
	"github.com/mrlokans/scripture/internal/reference"
)

// RouterConfig carries every dependency the endpoint layer needs, keeping
// controller construction testable and the parameter count down.
type RouterConfig struct {
	Database        *database.Database
	Catalog         *books.Catalog
	Translations    *translations.Repository
	Verses          *verses.Repository
	DefaultLanguage string
	Version         string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	resolver := NewTranslationResolver(cfg.Translations, cfg.DefaultLanguage)
	parser := reference.NewParser(cfg.Catalog)

	health := NewHealthController(cfg.Database, cfg.Version)
	translationsController := NewTranslationsController(cfg.Translations)
	booksController := NewBooksController(cfg.Catalog, cfg.Verses, resolver)
	versesController := NewVersesController(parser, cfg.Verses, cfg.Translations, resolver)
	searchController := NewSearchController(cfg.Catalog, cfg.Verses, resolver)

	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	api := router.Group("/api")
	{
		api.GET("/languages", translationsController.GetLanguages)
		api.GET("/translations", translationsController.GetTranslations)

		api.GET("/books", booksController.GetAllBooks)
		api.GET("/books/:id", booksController.GetBook)
		api.GET("/books/:id/chapters", booksController.GetChapters)
		api.GET("/books/:id/chapters/:chapter", booksController.GetChapter)

		api.GET("/verses", versesController.GetBatch)
		api.GET("/verses/:ref", versesController.GetByReference)
		api.GET("/verses/:ref/compare", versesController.Compare)

		api.GET("/search", searchController.Search)
	}

	return router
}
