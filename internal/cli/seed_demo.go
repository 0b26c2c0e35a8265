package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/mrlokans/scripture/internal/config"
	"github.com/mrlokans/scripture/internal/database"
	"github.com/mrlokans/scripture/internal/entities"
)

// SeedDemoCommand writes a miniature sample dataset for local development,
// covering both configured languages and a handful of well-known verses.
type SeedDemoCommand struct {
	DatabasePath string
}

func NewSeedDemoCommand() *SeedDemoCommand {
	return &SeedDemoCommand{}
}

func (cmd *SeedDemoCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("seed-demo", flag.ExitOnError)
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the verse database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s seed-demo [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Seed the database with a tiny sample dataset for local development.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

var demoTranslations = []entities.Translation{
	{ID: "en-kjv", Name: "King James Version", Language: "en", Status: entities.TranslationStatusPartial, Filename: "seed-demo"},
	{ID: "fr-lsg", Name: "Louis Segond", Language: "fr", Status: entities.TranslationStatusPartial, Filename: "seed-demo"},
}

var demoVerses = []entities.Verse{
	{TranslationID: "en-kjv", Book: 1, Chapter: 1, Verse: 1, Text: "In the beginning God created the heaven and the earth."},
	{TranslationID: "en-kjv", Book: 19, Chapter: 23, Verse: 1, Text: "The LORD is my shepherd; I shall not want."},
	{TranslationID: "en-kjv", Book: 19, Chapter: 23, Verse: 2, Text: "He maketh me to lie down in green pastures: he leadeth me beside the still waters."},
	{TranslationID: "en-kjv", Book: 19, Chapter: 23, Verse: 3, Text: "He restoreth my soul: he leadeth me in the paths of righteousness for his name's sake."},
	{TranslationID: "en-kjv", Book: 19, Chapter: 23, Verse: 4, Text: "Yea, though I walk through the valley of the shadow of death, I will fear no evil: for thou art with me; thy rod and thy staff they comfort me."},
	{TranslationID: "en-kjv", Book: 19, Chapter: 23, Verse: 5, Text: "Thou preparest a table before me in the presence of mine enemies: thou anointest my head with oil; my cup runneth over."},
	{TranslationID: "en-kjv", Book: 19, Chapter: 23, Verse: 6, Text: "Surely goodness and mercy shall follow me all the days of my life: and I will dwell in the house of the LORD for ever."},
	{TranslationID: "en-kjv", Book: 43, Chapter: 3, Verse: 16, Text: "For God so loved the world, that he gave his only begotten Son, that whosoever believeth in him should not perish, but have everlasting life."},
	{TranslationID: "en-kjv", Book: 45, Chapter: 8, Verse: 28, Text: "And we know that all things work together for good to them that love God, to them who are the called according to his purpose."},
	{TranslationID: "en-kjv", Book: 46, Chapter: 13, Verse: 4, Text: "Charity suffereth long, and is kind; charity envieth not; charity vaunteth not itself, is not puffed up,"},
	{TranslationID: "fr-lsg", Book: 1, Chapter: 1, Verse: 1, Text: "Au commencement, Dieu créa les cieux et la terre."},
	{TranslationID: "fr-lsg", Book: 43, Chapter: 3, Verse: 16, Text: "Car Dieu a tant aimé le monde qu'il a donné son Fils unique, afin que quiconque croit en lui ne périsse point, mais qu'il ait la vie éternelle."},
}

func (cmd *SeedDemoCommand) Run() error {
	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	for _, translation := range demoTranslations {
		var existing entities.Translation
		if err := db.DB.Where("id = ?", translation.ID).First(&existing).Error; err == nil {
			continue
		}
		if err := db.DB.Create(&translation).Error; err != nil {
			return fmt.Errorf("failed to seed translation %s: %w", translation.ID, err)
		}
	}

	seeded := 0
	for _, verse := range demoVerses {
		var existing entities.Verse
		err := db.DB.Where("translation_id = ? AND book = ? AND chapter = ? AND verse = ?",
			verse.TranslationID, verse.Book, verse.Chapter, verse.Verse).First(&existing).Error
		if err == nil {
			continue
		}
		if err := db.DB.Create(&verse).Error; err != nil {
			return fmt.Errorf("failed to seed verse: %w", err)
		}
		seeded++
	}

	fmt.Printf("Seeded %d demo verses into %s\n", seeded, cmd.DatabasePath)
	return nil
}
