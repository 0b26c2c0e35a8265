package http

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/scripture/internal/books"
	"github.com/mrlokans/scripture/internal/database/verses"
	"github.com/mrlokans/scripture/internal/reference"
)

type SearchController struct {
	catalog  *books.Catalog
	verses   *verses.Repository
	resolver *TranslationResolver
}

func NewSearchController(catalog *books.Catalog, verseRepo *verses.Repository, resolver *TranslationResolver) *SearchController {
	return &SearchController{
		catalog:  catalog,
		verses:   verseRepo,
		resolver: resolver,
	}
}

// Search serves a case-insensitive substring search over verse text, with
// every occurrence of the query marked up in the highlight field.
func (controller *SearchController) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		respondBadRequest(c, CodeMissingQuery, "Search query parameter q is required")
		return
	}

	limit, offset, ok := parsePagination(c)
	if !ok {
		return
	}

	translation, language, ok := controller.resolver.Resolve(c)
	if !ok {
		return
	}

	rows, total, err := controller.verses.Search(translation.ID, query, limit, offset)
	if err != nil {
		respondInternalError(c, err, "search")
		return
	}

	results := make([]gin.H, 0, len(rows))
	for _, row := range rows {
		book, found := controller.catalog.ByNumber(row.Book)
		if !found {
			respondInternalError(c, fmt.Errorf("verse row references unknown book number %d", row.Book), "search result mapping")
			return
		}

		ref := reference.ParsedReference{Book: book, Chapter: row.Chapter, VerseStart: row.Verse}
		results = append(results, gin.H{
			"reference": reference.Format(ref, language),
			"book":      book.ID,
			"chapter":   row.Chapter,
			"verse":     row.Verse,
			"text":      row.Text,
			"highlight": highlightMatches(row.Text, query),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"query":       query,
		"translation": translation.ID,
		"language":    language,
		"limit":       limit,
		"offset":      offset,
		"total":       total,
		"results":     results,
		"count":       len(results),
	})
}

// highlightMatches wraps every case-insensitive occurrence of the literal
// query substring in <em> markers. The query is quoted so metacharacters
// like ".*" match literally.
func highlightMatches(text, query string) string {
	pattern := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(query))
	return pattern.ReplaceAllStringFunc(text, func(match string) string {
		return "<em>" + match + "</em>"
	})
}
