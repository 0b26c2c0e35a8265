package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/mrlokans/scripture/internal/books"
	"github.com/mrlokans/scripture/internal/config"
	"github.com/mrlokans/scripture/internal/database"
	"github.com/mrlokans/scripture/internal/importer"
)

// ImportCommand loads a Zefania XML bible file into the verse database.
type ImportCommand struct {
	FilePath     string
	DatabasePath string
	ID           string
	Name         string
	Language     string
	Status       string
}

func NewImportCommand() *ImportCommand {
	return &ImportCommand{}
}

func (cmd *ImportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)

	fs.StringVar(&cmd.FilePath, "file", "", "Path to the Zefania XML bible file (required)")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the verse database file")
	fs.StringVar(&cmd.ID, "id", "", "Translation id slug, e.g. en-kjv (required)")
	fs.StringVar(&cmd.Name, "name", "", "Display name (defaults to the biblename attribute in the XML)")
	fs.StringVar(&cmd.Language, "language", "", "Language code, e.g. en (required)")
	fs.StringVar(&cmd.Status, "status", "complete", "Translation status")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s import -file <path> -id <slug> -language <code> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Import one Bible translation from a Zefania XML file into the local database.\n")
		fmt.Fprintf(os.Stderr, "Re-importing an existing translation id replaces its verses.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s import -file kjv.xml -id en-kjv -name \"King James Version\" -language en\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s import -file lsg.xml -id fr-lsg -language fr -db ./scripture.db\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.FilePath == "" {
		return fmt.Errorf("required flag -file not provided")
	}
	if cmd.ID == "" {
		return fmt.Errorf("required flag -id not provided")
	}
	if cmd.Language == "" {
		return fmt.Errorf("required flag -language not provided")
	}

	return nil
}

func (cmd *ImportCommand) Run() error {
	if _, err := os.Stat(cmd.FilePath); os.IsNotExist(err) {
		return fmt.Errorf("bible file not found: %s", cmd.FilePath)
	}

	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	imp := importer.NewImporter(db.DB, books.NewCatalog())
	count, err := imp.ImportFile(cmd.FilePath, importer.TranslationMeta{
		ID:       cmd.ID,
		Name:     cmd.Name,
		Language: cmd.Language,
		Status:   cmd.Status,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Imported %d verses as %s into %s\n", count, cmd.ID, cmd.DatabasePath)
	return nil
}
