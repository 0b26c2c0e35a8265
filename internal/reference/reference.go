// Package reference parses and formats dotted verse references of the form
// "book.chapter.verse" or "book.chapter.start-end" (e.g. "gen.1.1",
// "psa.23.1-6"). Book tokens are validated against the book catalog.
package reference

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/mrlokans/scripture/internal/books"
)

// ErrCodeInvalidReference is the machine-readable code carried by every
// parse failure.
const ErrCodeInvalidReference = "INVALID_REFERENCE"

// ParseError is returned for any malformed or out-of-range reference.
// Expected failures are ordinary control flow, not panics.
type ParseError struct {
	Code    string
	Message string
}

func (e *ParseError) Error() string {
	return e.Message
}

func newParseError(format string, args ...any) *ParseError {
	return &ParseError{
		Code:    ErrCodeInvalidReference,
		Message: fmt.Sprintf(format, args...),
	}
}

// ParsedReference is a resolved verse address within one chapter.
// VerseEnd is zero for a single-verse reference; an explicit range with
// VerseEnd == VerseStart is normalized to a single verse.
type ParsedReference struct {
	Book       books.BookInfo
	Chapter    int
	VerseStart int
	VerseEnd   int
}

// IsRange reports whether the reference addresses more than one verse.
func (r ParsedReference) IsRange() bool {
	return r.VerseEnd > r.VerseStart
}

// refPattern matches "book.chapter.verse" with an optional "-endVerse" suffix.
var refPattern = regexp.MustCompile(`^([0-9a-z]+)\.([0-9]+)\.([0-9]+)(?:-([0-9]+))?$`)

// Parser turns reference strings into ParsedReference values.
type Parser struct {
	catalog *books.Catalog
}

// NewParser creates a parser backed by the given book catalog.
func NewParser(catalog *books.Catalog) *Parser {
	return &Parser{catalog: catalog}
}

// Parse parses a single dotted reference. Input is trimmed and lowercased
// before matching; all failures carry the INVALID_REFERENCE code.
func (p *Parser) Parse(ref string) (ParsedReference, error) {
	normalized := strings.ToLower(strings.TrimSpace(ref))

	match := refPattern.FindStringSubmatch(normalized)
	if match == nil {
		return ParsedReference{}, newParseError("Invalid reference format")
	}

	book, ok := p.catalog.Lookup(match[1])
	if !ok {
		return ParsedReference{}, newParseError("Unknown book: %s", match[1])
	}

	chapter, err := strconv.Atoi(match[2])
	if err != nil {
		return ParsedReference{}, newParseError("Invalid reference format")
	}
	if chapter < 1 || chapter > book.ChapterCount {
		return ParsedReference{}, newParseError(
			"Invalid chapter %d for %s (book has %d chapters)",
			chapter, book.Name("en"), book.ChapterCount)
	}

	verseStart, err := strconv.Atoi(match[3])
	if err != nil {
		return ParsedReference{}, newParseError("Invalid reference format")
	}

	parsed := ParsedReference{
		Book:       book,
		Chapter:    chapter,
		VerseStart: verseStart,
	}

	if match[4] != "" {
		verseEnd, err := strconv.Atoi(match[4])
		if err != nil {
			return ParsedReference{}, newParseError("Invalid reference format")
		}
		if verseEnd < verseStart {
			return ParsedReference{}, newParseError("End verse must be >= start verse")
		}
		// "gen.1.1-1" means the same as "gen.1.1".
		if verseEnd > verseStart {
			parsed.VerseEnd = verseEnd
		}
	}

	return parsed, nil
}

// Result pairs one segment of a comma-separated batch with its outcome.
type Result struct {
	Raw       string
	Reference ParsedReference
	Err       error
}

// ParseMultiple parses a comma-separated list of references. Segments are
// parsed independently and returned in input order; a malformed segment does
// not stop the others from being parsed. The caller decides whether one
// failure invalidates the batch.
func (p *Parser) ParseMultiple(csv string) []Result {
	segments := strings.Split(csv, ",")
	results := make([]Result, 0, len(segments))
	for _, segment := range segments {
		raw := strings.TrimSpace(segment)
		parsed, err := p.Parse(raw)
		results = append(results, Result{Raw: raw, Reference: parsed, Err: err})
	}
	return results
}

// Format renders a reference as "<localized book name> chapter:verse", with
// a "-endVerse" suffix for ranges spanning more than one verse.
func Format(ref ParsedReference, language string) string {
	if ref.IsRange() {
		return fmt.Sprintf("%s %d:%d-%d", ref.Book.Name(language), ref.Chapter, ref.VerseStart, ref.VerseEnd)
	}
	return fmt.Sprintf("%s %d:%d", ref.Book.Name(language), ref.Chapter, ref.VerseStart)
}
