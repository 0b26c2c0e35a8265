// Package verses provides the read-only verse queries: single-verse and
// range lookups, whole chapters, chapter summaries, and the substring
// search backing the /api/search endpoint.
//
// Every operation takes a translation id the caller has already validated
// against the translations table.
package verses

import (
	"strings"

	"gorm.io/gorm"

	"github.com/mrlokans/scripture/internal/entities"
)

// ChapterSummary is one row of a book's chapter listing.
type ChapterSummary struct {
	Chapter    int `json:"chapter"`
	VerseCount int `json:"verses"`
}

// Repository handles all verse queries.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new verses repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetVerse retrieves a single verse by its full address.
func (r *Repository) GetVerse(translationID string, book, chapter, verse int) (*entities.Verse, error) {
	var row entities.Verse
	err := r.db.Where("translation_id = ? AND book = ? AND chapter = ? AND verse = ?",
		translationID, book, chapter, verse).First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// GetVerseRange returns the verses of one chapter between startVerse and
// endVerse inclusive, ascending. Missing verses simply produce fewer rows.
func (r *Repository) GetVerseRange(translationID string, book, chapter, startVerse, endVerse int) ([]entities.Verse, error) {
	var rows []entities.Verse
	err := r.db.Where("translation_id = ? AND book = ? AND chapter = ? AND verse >= ? AND verse <= ?",
		translationID, book, chapter, startVerse, endVerse).
		Order("verse ASC").
		Find(&rows).Error
	return rows, err
}

// GetChapterVerses returns every verse of one chapter, ascending.
func (r *Repository) GetChapterVerses(translationID string, book, chapter int) ([]entities.Verse, error) {
	var rows []entities.Verse
	err := r.db.Where("translation_id = ? AND book = ? AND chapter = ?",
		translationID, book, chapter).
		Order("verse ASC").
		Find(&rows).Error
	return rows, err
}

// GetChapterSummaries returns (chapter, verse count) pairs for a book,
// ascending by chapter.
func (r *Repository) GetChapterSummaries(translationID string, book int) ([]ChapterSummary, error) {
	var summaries []ChapterSummary
	err := r.db.Model(&entities.Verse{}).
		Select("chapter, COUNT(*) AS verse_count").
		Where("translation_id = ? AND book = ?", translationID, book).
		Group("chapter").
		Order("chapter ASC").
		Scan(&summaries).Error
	return summaries, err
}

// Search finds verses whose text contains the query as a case-insensitive
// substring. The total is computed with a separate count over the same
// predicate so limit/offset never distort it. An empty or whitespace-only
// query yields zero results without error. The caller is responsible for
// keeping limit and offset within policy bounds.
func (r *Repository) Search(translationID, query string, limit, offset int) ([]entities.Verse, int64, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil, 0, nil
	}

	pattern := "%" + strings.ToLower(trimmed) + "%"
	predicate := r.db.Model(&entities.Verse{}).
		Where("translation_id = ? AND LOWER(text) LIKE ?", translationID, pattern)

	var total int64
	if err := predicate.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []entities.Verse
	err := r.db.Model(&entities.Verse{}).
		Where("translation_id = ? AND LOWER(text) LIKE ?", translationID, pattern).
		Order("book ASC, chapter ASC, verse ASC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}
