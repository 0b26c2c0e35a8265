// Package importer loads Zefania-style XML bible files into the verse
// store. It is the only write path in the system and runs exclusively from
// the import command, never at request time.
package importer

import (
	"encoding/xml"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/scripture/internal/books"
	"github.com/mrlokans/scripture/internal/entities"
)

// XMLBible mirrors the Zefania XML layout:
// <XMLBIBLE><BIBLEBOOK bnumber><CHAPTER cnumber><VERS vnumber>text</VERS>...
type XMLBible struct {
	XMLName xml.Name  `xml:"XMLBIBLE"`
	Name    string    `xml:"biblename,attr"`
	Books   []XMLBook `xml:"BIBLEBOOK"`
}

type XMLBook struct {
	Number   int          `xml:"bnumber,attr"`
	Name     string       `xml:"bname,attr"`
	Chapters []XMLChapter `xml:"CHAPTER"`
}

type XMLChapter struct {
	Number int        `xml:"cnumber,attr"`
	Verses []XMLVerse `xml:"VERS"`
}

type XMLVerse struct {
	Number int    `xml:"vnumber,attr"`
	Text   string `xml:",chardata"`
}

// TranslationMeta identifies the translation being imported.
type TranslationMeta struct {
	ID       string // stable slug, e.g. "en-kjv"
	Name     string // display title; falls back to the biblename attribute
	Language string
	Status   string
}

// Importer parses bible files and writes them to the store.
type Importer struct {
	db      *gorm.DB
	catalog *books.Catalog
}

func NewImporter(db *gorm.DB, catalog *books.Catalog) *Importer {
	return &Importer{db: db, catalog: catalog}
}

// Parse decodes a Zefania XML document.
func Parse(r io.Reader) (*XMLBible, error) {
	var bible XMLBible
	if err := xml.NewDecoder(r).Decode(&bible); err != nil {
		return nil, fmt.Errorf("failed to decode bible XML: %w", err)
	}
	return &bible, nil
}

// ImportFile loads one translation from an XML file. The translation row is
// upserted and its verses replaced inside a single transaction, so a failed
// import never leaves a half-written translation behind. Book numbers are
// validated against the catalog; unknown numbers fail the import.
func (imp *Importer) ImportFile(path string, meta TranslationMeta) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open bible file: %w", err)
	}
	defer file.Close()

	bible, err := Parse(file)
	if err != nil {
		return 0, err
	}

	name := meta.Name
	if name == "" {
		name = bible.Name
	}
	if name == "" {
		return 0, fmt.Errorf("translation has no name: pass one explicitly or set biblename in the XML")
	}

	// A full KJV-versification canon holds 31102 verses.
	rows := make([]entities.Verse, 0, 31102)
	for _, book := range bible.Books {
		if _, ok := imp.catalog.ByNumber(book.Number); !ok {
			return 0, fmt.Errorf("unknown book number %d in %s", book.Number, filepath.Base(path))
		}
		for _, chapter := range book.Chapters {
			for _, verse := range chapter.Verses {
				rows = append(rows, entities.Verse{
					TranslationID: meta.ID,
					Book:          book.Number,
					Chapter:       chapter.Number,
					Verse:         verse.Number,
					Text:          verse.Text,
				})
			}
		}
	}
	if len(rows) == 0 {
		return 0, fmt.Errorf("no verses found in %s", filepath.Base(path))
	}

	status := meta.Status
	if status == "" {
		status = entities.TranslationStatusComplete
	}

	translation := entities.Translation{
		ID:       meta.ID,
		Name:     name,
		Language: meta.Language,
		Status:   status,
		Filename: filepath.Base(path),
	}

	err = imp.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&translation).Error; err != nil {
			return fmt.Errorf("failed to save translation %s: %w", meta.ID, err)
		}
		if err := tx.Where("translation_id = ?", meta.ID).Delete(&entities.Verse{}).Error; err != nil {
			return fmt.Errorf("failed to clear existing verses for %s: %w", meta.ID, err)
		}
		if err := tx.CreateInBatches(rows, 500).Error; err != nil {
			return fmt.Errorf("failed to insert verses for %s: %w", meta.ID, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	log.Printf("Imported %d verses for translation %s (%s)", len(rows), meta.ID, name)
	return len(rows), nil
}
