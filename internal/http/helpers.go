package http

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/scripture/internal/config"
	"github.com/mrlokans/scripture/internal/database/translations"
	"github.com/mrlokans/scripture/internal/entities"
)

// Machine-readable error codes carried in every 4xx/5xx envelope.
const (
	CodeNotFound            = "NOT_FOUND"
	CodeBookNotFound        = "BOOK_NOT_FOUND"
	CodeChapterNotFound     = "CHAPTER_NOT_FOUND"
	CodeVerseNotFound       = "VERSE_NOT_FOUND"
	CodeTranslationNotFound = "TRANSLATION_NOT_FOUND"
	CodeInvalidReference    = "INVALID_REFERENCE"
	CodeMissingQuery        = "MISSING_QUERY"
	CodeMissingRefs         = "MISSING_REFS"
	CodeMissingParameter    = "MISSING_PARAMETER"
	CodeInternalError       = "INTERNAL_ERROR"
)

// APIError is the body of the error envelope.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the standard envelope for all API errors.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// --- Error Response Helpers ---

// respondError sends an error envelope with the given status and code.
func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorResponse{Error: APIError{Code: code, Message: message}})
}

// respondBadRequest sends a 400 Bad Request envelope.
func respondBadRequest(c *gin.Context, code, message string) {
	respondError(c, http.StatusBadRequest, code, message)
}

// respondNotFound sends a 404 Not Found envelope.
func respondNotFound(c *gin.Context, code, message string) {
	respondError(c, http.StatusNotFound, code, message)
}

// respondInternalError logs the error and sends a generic 500 envelope.
// The underlying error is logged but never exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	respondError(c, http.StatusInternalServerError, CodeInternalError, "internal server error")
}

// --- Parameter Parsing ---

// parsePagination extracts limit/offset with the search defaults applied.
// Limit is clamped to the maximum; malformed or negative values respond
// with a 400 and return ok=false.
func parsePagination(c *gin.Context) (limit, offset int, ok bool) {
	limit = config.SearchDefaultLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			respondBadRequest(c, CodeMissingParameter, "limit must be a positive integer")
			return 0, 0, false
		}
		limit = parsed
	}
	if limit > config.SearchMaxLimit {
		limit = config.SearchMaxLimit
	}

	if raw := c.Query("offset"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			respondBadRequest(c, CodeMissingParameter, "offset must be a non-negative integer")
			return 0, 0, false
		}
		offset = parsed
	}

	return limit, offset, true
}

// --- Translation Resolution ---

// TranslationResolver picks the translation and language a request operates
// on: explicit translation id when given, otherwise the per-language default.
type TranslationResolver struct {
	translations    *translations.Repository
	defaultLanguage string
}

func NewTranslationResolver(repo *translations.Repository, defaultLanguage string) *TranslationResolver {
	return &TranslationResolver{translations: repo, defaultLanguage: defaultLanguage}
}

// Language returns the language the request asked for, falling back to the
// configured default. The resolved language is always echoed in responses.
func (r *TranslationResolver) Language(c *gin.Context) string {
	if language := c.Query("language"); language != "" {
		return language
	}
	return r.defaultLanguage
}

// Resolve returns the translation a request should read from. On failure it
// writes the error response and returns ok=false.
func (r *TranslationResolver) Resolve(c *gin.Context) (*entities.Translation, string, bool) {
	language := r.Language(c)

	if id := c.Query("translation"); id != "" {
		translation, err := r.translations.GetByID(id)
		if err != nil {
			if translations.IsNotFound(err) {
				respondNotFound(c, CodeTranslationNotFound, "Translation not found: "+id)
			} else {
				respondInternalError(c, err, "resolve translation")
			}
			return nil, "", false
		}
		return translation, language, true
	}

	translation, err := r.translations.DefaultForLanguage(language)
	if err != nil {
		if translations.IsNotFound(err) {
			respondNotFound(c, CodeTranslationNotFound, "No translation available for language: "+language)
		} else {
			respondInternalError(c, err, "resolve default translation")
		}
		return nil, "", false
	}
	return translation, language, true
}
