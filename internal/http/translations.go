package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/scripture/internal/database/translations"
	"github.com/mrlokans/scripture/internal/entities"
)

type TranslationsController struct {
	translations *translations.Repository
}

func NewTranslationsController(repo *translations.Repository) *TranslationsController {
	return &TranslationsController{translations: repo}
}

// GetLanguages lists the languages present in the store with the number of
// translations available for each.
func (controller *TranslationsController) GetLanguages(c *gin.Context) {
	languages, err := controller.translations.Languages()
	if err != nil {
		respondInternalError(c, err, "list languages")
		return
	}
	c.JSON(http.StatusOK, gin.H{"languages": languages, "count": len(languages)})
}

// GetTranslations lists translations, optionally filtered by language.
// The language field is echoed only when the filter was supplied; the
// unfiltered listing spans all languages.
func (controller *TranslationsController) GetTranslations(c *gin.Context) {
	language := c.Query("language")

	var rows []entities.Translation
	var err error
	if language != "" {
		rows, err = controller.translations.GetByLanguage(language)
	} else {
		rows, err = controller.translations.GetAll()
	}
	if err != nil {
		respondInternalError(c, err, "list translations")
		return
	}

	response := gin.H{"translations": rows, "count": len(rows)}
	if language != "" {
		response["language"] = language
	}
	c.JSON(http.StatusOK, response)
}
