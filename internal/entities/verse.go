package entities

// Verse is a single verse of one translation, addressed by the four-tuple
// (translation, book number, chapter, verse). Verse numbering is 1-based;
// gaps in the source material simply produce fewer rows than expected.
type Verse struct {
	ID            uint   `gorm:"primaryKey" json:"-"`
	TranslationID string `gorm:"uniqueIndex:idx_verse_address;size:32" json:"-"`
	Book          int    `gorm:"uniqueIndex:idx_verse_address" json:"book"`
	Chapter       int    `gorm:"uniqueIndex:idx_verse_address" json:"chapter"`
	Verse         int    `gorm:"uniqueIndex:idx_verse_address" json:"verse"`
	Text          string `json:"text"`

	Translation Translation `gorm:"foreignKey:TranslationID" json:"-"`
}
