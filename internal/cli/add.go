package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/katalog/internal/config"
)

// AddCommand adds a book through the entry form.
type AddCommand struct {
	Title        string
	Author       string
	Year         string
	DatabasePath string
	Verbose      bool

	Out io.Writer
}

func NewAddCommand() *AddCommand {
	return &AddCommand{Out: os.Stdout}
}

func (cmd *AddCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)

	fs.StringVar(&cmd.Title, "title", "", "Book title")
	fs.StringVar(&cmd.Author, "author", "", "Book author")
	fs.StringVar(&cmd.Year, "year", "", "Publication year")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the catalog database file")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Enable verbose logging")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s add -title <title> -author <author> -year <year> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Add a book. All three fields must be non-empty.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *AddCommand) Run() error {
	s, err := openSession(cmd.DatabasePath, cmd.Verbose, cmd.Out, "")
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.catalog.SubmitForm(cmd.Title, cmd.Author, cmd.Year); err != nil {
		return err
	}

	state := s.catalog.State()
	if n := len(state.Rows); n > 0 {
		fmt.Fprintf(cmd.Out, "Added book %s\n", state.Rows[n-1][0])
	}
	return nil
}
