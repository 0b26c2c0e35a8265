package entities

import "time"

// TranslationStatus describes how much of a translation has been imported.
const (
	TranslationStatusComplete = "complete"
	TranslationStatusPartial  = "partial"
)

// Translation is one edition of the Bible text (e.g. the King James Version).
// Rows are written once by the import command and read-only afterwards.
type Translation struct {
	ID        string    `gorm:"primaryKey;size:32" json:"id"` // stable slug, e.g. "en-kjv"
	Name      string    `gorm:"size:256" json:"name"`         // display title
	Language  string    `gorm:"index;size:8" json:"language"` // ISO-ish code, e.g. "en"
	Status    string    `gorm:"size:32" json:"status"`        // e.g. "complete"
	Filename  string    `gorm:"size:512" json:"-"`            // source artifact, import provenance only
	CreatedAt time.Time `json:"-"`
}
