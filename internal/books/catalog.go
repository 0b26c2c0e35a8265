// Package books holds the static catalog of the 66 canonical Bible books:
// numbering, testament, chapter counts, localized display names and the
// alias table used to resolve user-supplied book tokens.
package books

import "strings"

// Testament partitions the canon into old (books 1-39) and new (40-66).
type Testament string

const (
	TestamentOld Testament = "old"
	TestamentNew Testament = "new"
)

// BookInfo describes one canonical book.
type BookInfo struct {
	ID           string            `json:"id"`     // canonical short code, e.g. "gen"
	Number       int               `json:"number"` // 1-66 in canonical order
	Testament    Testament         `json:"testament"`
	ChapterCount int               `json:"chapters"`
	Names        map[string]string `json:"names"`
	Aliases      []string          `json:"-"`
}

// Name returns the display name for a language, falling back to English.
func (b BookInfo) Name(language string) string {
	if name, ok := b.Names[language]; ok {
		return name
	}
	return b.Names["en"]
}

// Catalog is an immutable lookup table over the canon, built once at startup
// and injected into the components that need it.
type Catalog struct {
	ordered  []BookInfo
	byID     map[string]int
	byAlias  map[string]int
	byNumber map[int]int
}

// NewCatalog builds the catalog from the built-in canon table.
func NewCatalog() *Catalog {
	c := &Catalog{
		ordered:  canon,
		byID:     make(map[string]int, len(canon)),
		byAlias:  make(map[string]int, len(canon)*3),
		byNumber: make(map[int]int, len(canon)),
	}
	for i, book := range canon {
		c.byID[book.ID] = i
		c.byNumber[book.Number] = i
		for _, alias := range book.Aliases {
			c.byAlias[alias] = i
		}
	}
	return c
}

// Lookup resolves a book by canonical id or alias, case-insensitively.
// The exact id wins over the alias table.
func (c *Catalog) Lookup(idOrAlias string) (BookInfo, bool) {
	key := strings.ToLower(strings.TrimSpace(idOrAlias))
	if i, ok := c.byID[key]; ok {
		return c.ordered[i], true
	}
	if i, ok := c.byAlias[key]; ok {
		return c.ordered[i], true
	}
	return BookInfo{}, false
}

// ByNumber resolves a book by its canonical number (1-66).
func (c *Catalog) ByNumber(n int) (BookInfo, bool) {
	if i, ok := c.byNumber[n]; ok {
		return c.ordered[i], true
	}
	return BookInfo{}, false
}

// All returns every book in canonical order.
func (c *Catalog) All() []BookInfo {
	out := make([]BookInfo, len(c.ordered))
	copy(out, c.ordered)
	return out
}
