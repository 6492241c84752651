package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mrlokans/katalog/internal/config"
)

// SearchCommand prints the books whose title contains a keyword.
type SearchCommand struct {
	Keyword      string
	DatabasePath string
	Verbose      bool

	Out io.Writer
}

func NewSearchCommand() *SearchCommand {
	return &SearchCommand{Out: os.Stdout}
}

func (cmd *SearchCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("search", flag.ExitOnError)

	fs.StringVar(&cmd.Keyword, "q", "", "Title keyword, matched case-insensitively (required)")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the catalog database file")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Enable verbose logging")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s search -q <keyword> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Print books whose title contains the keyword.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExample:\n")
		fmt.Fprintf(os.Stderr, "  %s search -q \"laskar\"\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if strings.TrimSpace(cmd.Keyword) == "" {
		return fmt.Errorf("required flag -q not provided")
	}
	return nil
}

func (cmd *SearchCommand) Run() error {
	s, err := openSession(cmd.DatabasePath, cmd.Verbose, cmd.Out, "")
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.catalog.Search(cmd.Keyword); err != nil {
		return err
	}
	printRows(cmd.Out, s.catalog.State())
	return nil
}
