package cli

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mrlokans/katalog/internal/catalog"
	"github.com/mrlokans/katalog/internal/config"
)

// DeleteCommand deletes one book after asking for confirmation.
type DeleteCommand struct {
	ID           uint
	Yes          bool
	AuditDir     string
	DatabasePath string
	Verbose      bool

	In  io.Reader
	Out io.Writer
}

func NewDeleteCommand() *DeleteCommand {
	return &DeleteCommand{In: os.Stdin, Out: os.Stdout}
}

func (cmd *DeleteCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)

	var id uint64
	fs.Uint64Var(&id, "id", 0, "Id of the book to delete (required)")
	fs.BoolVar(&cmd.Yes, "yes", false, "Do not ask for confirmation")
	fs.StringVar(&cmd.AuditDir, "audit-dir", "", "Directory for a JSON snapshot of the deleted book")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the catalog database file")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Enable verbose logging")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s delete -id <id> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Delete a book. Asks for confirmation unless -yes is given.\n\n")
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

func (cmd *DeleteCommand) Run() error {
	s, err := openSession(cmd.DatabasePath, cmd.Verbose, cmd.Out, cmd.AuditDir)
	if err != nil {
		return err
	}
	defer s.Close()

	if !s.catalog.SelectID(cmd.ID) {
		return fmt.Errorf("book %d not found", cmd.ID)
	}

	var confirm catalog.Confirmer = catalog.Answer(true)
	if !cmd.Yes {
		confirm = cmd.prompt()
	}

	if err := s.catalog.DeleteSelected(confirm); err != nil {
		return err
	}
	if s.catalog.SelectID(cmd.ID) {
		fmt.Fprintln(cmd.Out, "Cancelled")
		return nil
	}
	fmt.Fprintf(cmd.Out, "Deleted book %d\n", cmd.ID)
	return nil
}

// prompt asks on the terminal. Only y or yes confirms.
func (cmd *DeleteCommand) prompt() catalog.Confirmer {
	return catalog.ConfirmFunc(func(title, question string) bool {
		fmt.Fprintf(cmd.Out, "%s: %s [y/N]: ", title, question)
		answer, _ := bufio.NewReader(cmd.In).ReadString('\n')
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes", "ya":
			return true
		}
		return false
	})
}
