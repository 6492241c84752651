package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mrlokans/katalog/internal/catalog"
	"github.com/mrlokans/katalog/internal/config"
)

// ExportCommand writes the catalog, optionally filtered by title, to a CSV file.
type ExportCommand struct {
	OutputPath   string
	Keyword      string
	DatabasePath string
	Verbose      bool

	Out io.Writer
}

func NewExportCommand() *ExportCommand {
	return &ExportCommand{Out: os.Stdout}
}

func (cmd *ExportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)

	fs.StringVar(&cmd.OutputPath, "out", "", "Destination CSV file (required)")
	fs.StringVar(&cmd.Keyword, "q", "", "Only export books whose title contains this keyword")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the catalog database file")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Enable verbose logging")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s export -out <file.csv> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Write books to a CSV file with the header ID,Judul,Pengarang,Tahun.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s export -out buku.csv\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s export -out novel.csv -q \"laskar\"\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if strings.TrimSpace(cmd.OutputPath) == "" {
		return fmt.Errorf("required flag -out not provided")
	}
	return nil
}

func (cmd *ExportCommand) Run() error {
	s, err := openSession(cmd.DatabasePath, cmd.Verbose, cmd.Out, "")
	if err != nil {
		return err
	}
	defer s.Close()

	if cmd.Keyword != "" {
		if err := s.catalog.Search(cmd.Keyword); err != nil {
			return err
		}
	}

	result, err := s.catalog.ExportCSV(catalog.Destination(cmd.OutputPath))
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.Out, "Wrote %d book(s) to %s\n", result.RowsWritten, result.Path)
	return nil
}
