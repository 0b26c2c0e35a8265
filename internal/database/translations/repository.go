// Package translations provides read-only metadata queries over the
// translations table: lookups by id, per-language listings, and the
// default-translation selection used when a request names only a language.
package translations

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mrlokans/scripture/internal/entities"
)

// preferredDefaults maps a language code to its curated default translation.
// When the preferred id is absent from the store, the first translation for
// that language in name order is used instead.
var preferredDefaults = map[string]string{
	"en": "en-kjv",
	"fr": "fr-lsg",
}

// LanguageSummary is one row of the languages listing.
type LanguageSummary struct {
	Code         string `json:"code"`
	Translations int    `json:"translations"`
}

// Repository handles all translation metadata queries.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new translations repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetByID retrieves a translation by its slug.
func (r *Repository) GetByID(id string) (*entities.Translation, error) {
	var translation entities.Translation
	err := r.db.Where("id = ?", id).First(&translation).Error
	if err != nil {
		return nil, err
	}
	return &translation, nil
}

// GetAll returns every translation, sorted by name.
func (r *Repository) GetAll() ([]entities.Translation, error) {
	var translations []entities.Translation
	err := r.db.Order("name ASC").Find(&translations).Error
	return translations, err
}

// GetByLanguage returns the translations for a language, sorted by name.
func (r *Repository) GetByLanguage(language string) ([]entities.Translation, error) {
	var translations []entities.Translation
	err := r.db.Where("language = ?", language).Order("name ASC").Find(&translations).Error
	return translations, err
}

// Languages returns the distinct languages present in the store, with the
// number of translations available for each, sorted by code.
func (r *Repository) Languages() ([]LanguageSummary, error) {
	var summaries []LanguageSummary
	err := r.db.Model(&entities.Translation{}).
		Select("language AS code, COUNT(*) AS translations").
		Group("language").
		Order("language ASC").
		Scan(&summaries).Error
	return summaries, err
}

// DefaultForLanguage picks the default translation for a language: the
// curated preferred id when it exists among that language's translations,
// otherwise the first one in name order. Returns gorm.ErrRecordNotFound
// when the store has no translation for the language at all.
func (r *Repository) DefaultForLanguage(language string) (*entities.Translation, error) {
	available, err := r.GetByLanguage(language)
	if err != nil {
		return nil, err
	}
	if len(available) == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	if preferred, ok := preferredDefaults[language]; ok {
		for i := range available {
			if available[i].ID == preferred {
				return &available[i], nil
			}
		}
	}
	return &available[0], nil
}

// IsNotFound reports whether err means the record does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
