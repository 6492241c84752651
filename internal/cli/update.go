package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"gorm.io/gorm"

	"github.com/mrlokans/katalog/internal/config"
)

// UpdateCommand changes a book through the entry form in edit mode. Fields
// not given on the command line keep their stored values.
type UpdateCommand struct {
	ID           uint
	Title        string
	Author       string
	Year         string
	DatabasePath string
	Verbose      bool

	Out io.Writer
}

func NewUpdateCommand() *UpdateCommand {
	return &UpdateCommand{Out: os.Stdout}
}

func (cmd *UpdateCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("update", flag.ExitOnError)

	var id uint64
	fs.Uint64Var(&id, "id", 0, "Id of the book to change (required)")
	fs.StringVar(&cmd.Title, "title", "", "New title")
	fs.StringVar(&cmd.Author, "author", "", "New author")
	fs.StringVar(&cmd.Year, "year", "", "New publication year")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the catalog database file")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Enable verbose logging")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s update -id <id> [-title <title>] [-author <author>] [-year <year>] [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Change a book. Omitted fields keep their current value.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if id == 0 {
		return fmt.Errorf("required flag -id not provided")
	}
	cmd.ID = uint(id)
	return nil
}

func (cmd *UpdateCommand) Run() error {
	s, err := openSession(cmd.DatabasePath, cmd.Verbose, cmd.Out, "")
	if err != nil {
		return err
	}
	defer s.Close()

	book, err := s.repo.GetByID(cmd.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("book %d not found", cmd.ID)
	}
	if err != nil {
		return err
	}

	s.catalog.BeginEdit(*book)
	state := s.catalog.State()

	title, author, year := state.Title, state.Author, state.Year
	if cmd.Title != "" {
		title = cmd.Title
	}
	if cmd.Author != "" {
		author = cmd.Author
	}
	if cmd.Year != "" {
		year = cmd.Year
	}

	if err := s.catalog.SubmitForm(title, author, year); err != nil {
		return err
	}
	fmt.Fprintf(cmd.Out, "Updated book %d\n", cmd.ID)
	return nil
}
