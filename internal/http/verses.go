package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/scripture/internal/database/translations"
	"github.com/mrlokans/scripture/internal/database/verses"
	"github.com/mrlokans/scripture/internal/entities"
	"github.com/mrlokans/scripture/internal/reference"
)

type VersesController struct {
	parser       *reference.Parser
	verses       *verses.Repository
	translations *translations.Repository
	resolver     *TranslationResolver
}

func NewVersesController(
	parser *reference.Parser,
	verseRepo *verses.Repository,
	translationRepo *translations.Repository,
	resolver *TranslationResolver,
) *VersesController {
	return &VersesController{
		parser:       parser,
		verses:       verseRepo,
		translations: translationRepo,
		resolver:     resolver,
	}
}

// GetByReference serves a single verse or a contiguous verse range addressed
// by a dotted reference like "gen.1.1" or "psa.23.1-6".
func (controller *VersesController) GetByReference(c *gin.Context) {
	parsed, err := controller.parser.Parse(c.Param("ref"))
	if err != nil {
		respondBadRequest(c, CodeInvalidReference, err.Error())
		return
	}

	translation, language, ok := controller.resolver.Resolve(c)
	if !ok {
		return
	}

	if parsed.IsRange() {
		rows, err := controller.verses.GetVerseRange(
			translation.ID, parsed.Book.Number, parsed.Chapter, parsed.VerseStart, parsed.VerseEnd)
		if err != nil {
			respondInternalError(c, err, "verse range")
			return
		}
		if len(rows) == 0 {
			respondNotFound(c, CodeVerseNotFound, "No verses found for "+reference.Format(parsed, "en"))
			return
		}

		verseList := make([]gin.H, 0, len(rows))
		for _, row := range rows {
			verseList = append(verseList, gin.H{"verse": row.Verse, "text": row.Text})
		}

		c.JSON(http.StatusOK, gin.H{
			"reference":   reference.Format(parsed, language),
			"translation": translation.ID,
			"language":    language,
			"book":        newBookPayload(parsed.Book, language),
			"chapter":     parsed.Chapter,
			"verses":      verseList,
			"count":       len(verseList),
		})
		return
	}

	row, err := controller.verses.GetVerse(
		translation.ID, parsed.Book.Number, parsed.Chapter, parsed.VerseStart)
	if err != nil {
		if translations.IsNotFound(err) {
			respondNotFound(c, CodeVerseNotFound, "Verse not found: "+reference.Format(parsed, "en"))
		} else {
			respondInternalError(c, err, "verse lookup")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reference":   reference.Format(parsed, language),
		"translation": translation.ID,
		"language":    language,
		"book":        newBookPayload(parsed.Book, language),
		"chapter":     parsed.Chapter,
		"verse":       row.Verse,
		"text":        row.Text,
	})
}

// GetBatch serves a comma-separated list of references in one call. The
// whole batch fails on the first malformed reference.
func (controller *VersesController) GetBatch(c *gin.Context) {
	refs := strings.TrimSpace(c.Query("refs"))
	if refs == "" {
		respondBadRequest(c, CodeMissingRefs, "refs query parameter is required")
		return
	}

	results := controller.parser.ParseMultiple(refs)
	for _, result := range results {
		if result.Err != nil {
			respondBadRequest(c, CodeInvalidReference, result.Err.Error())
			return
		}
	}

	translation, language, ok := controller.resolver.Resolve(c)
	if !ok {
		return
	}

	entries := make([]gin.H, 0, len(results))
	for _, result := range results {
		parsed := result.Reference
		endVerse := parsed.VerseStart
		if parsed.IsRange() {
			endVerse = parsed.VerseEnd
		}

		rows, err := controller.verses.GetVerseRange(
			translation.ID, parsed.Book.Number, parsed.Chapter, parsed.VerseStart, endVerse)
		if err != nil {
			respondInternalError(c, err, "batch verse lookup")
			return
		}
		if len(rows) == 0 {
			respondNotFound(c, CodeVerseNotFound, "Verse not found: "+reference.Format(parsed, "en"))
			return
		}

		for _, row := range rows {
			single := parsed
			single.VerseStart = row.Verse
			single.VerseEnd = 0
			entries = append(entries, gin.H{
				"reference": reference.Format(single, language),
				"book":      parsed.Book.ID,
				"chapter":   row.Chapter,
				"verse":     row.Verse,
				"text":      row.Text,
			})
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"translation": translation.ID,
		"language":    language,
		"verses":      entries,
		"count":       len(entries),
	})
}

// Compare serves the same reference across several translations or
// languages. Entries that cannot be resolved, or that have no text at the
// requested address, are skipped rather than failing the request.
func (controller *VersesController) Compare(c *gin.Context) {
	parsed, err := controller.parser.Parse(c.Param("ref"))
	if err != nil {
		respondBadRequest(c, CodeInvalidReference, err.Error())
		return
	}

	translationsParam := strings.TrimSpace(c.Query("translations"))
	languagesParam := strings.TrimSpace(c.Query("languages"))
	if translationsParam == "" && languagesParam == "" {
		respondBadRequest(c, CodeMissingParameter, "Either translations or languages parameter is required")
		return
	}

	var candidates []*entities.Translation
	if translationsParam != "" {
		for _, id := range splitCSV(translationsParam) {
			translation, err := controller.translations.GetByID(id)
			if err != nil {
				// Unknown ids are skipped, not fatal.
				continue
			}
			candidates = append(candidates, translation)
		}
	} else {
		for _, code := range splitCSV(languagesParam) {
			translation, err := controller.translations.DefaultForLanguage(code)
			if err != nil {
				continue
			}
			candidates = append(candidates, translation)
		}
	}

	language := controller.resolver.Language(c)
	endVerse := parsed.VerseStart
	if parsed.IsRange() {
		endVerse = parsed.VerseEnd
	}

	comparisons := make([]gin.H, 0, len(candidates))
	for _, translation := range candidates {
		rows, err := controller.verses.GetVerseRange(
			translation.ID, parsed.Book.Number, parsed.Chapter, parsed.VerseStart, endVerse)
		if err != nil {
			respondInternalError(c, err, "comparison lookup")
			return
		}
		if len(rows) == 0 {
			continue
		}

		texts := make([]string, 0, len(rows))
		for _, row := range rows {
			texts = append(texts, row.Text)
		}
		comparisons = append(comparisons, gin.H{
			"translation": translation.ID,
			"name":        translation.Name,
			"language":    translation.Language,
			"text":        strings.Join(texts, " "),
		})
	}

	response := gin.H{
		"reference":   reference.Format(parsed, language),
		"book":        newBookPayload(parsed.Book, language),
		"chapter":     parsed.Chapter,
		"verse":       parsed.VerseStart,
		"comparisons": comparisons,
		"count":       len(comparisons),
	}
	if parsed.IsRange() {
		response["verse_end"] = parsed.VerseEnd
	}
	c.JSON(http.StatusOK, response)
}

// splitCSV splits a comma-separated parameter, trimming and dropping empty
// segments.
func splitCSV(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
