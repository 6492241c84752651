// Package cli implements the katalog subcommands that work on the catalog
// without starting the web UI.
package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/mrlokans/katalog/internal/audit"
	"github.com/mrlokans/katalog/internal/catalog"
	"github.com/mrlokans/katalog/internal/database"
	"github.com/mrlokans/katalog/internal/database/books"
	"github.com/mrlokans/katalog/internal/logging"
)

// ConsoleNotifier prints catalog notices as single lines.
type ConsoleNotifier struct {
	w io.Writer
}

func NewConsoleNotifier(w io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{w: w}
}

func (n *ConsoleNotifier) Info(title, message string)    { n.print("", title, message) }
func (n *ConsoleNotifier) Warning(title, message string) { n.print("WARNING ", title, message) }
func (n *ConsoleNotifier) Error(title, message string)   { n.print("ERROR ", title, message) }

func (n *ConsoleNotifier) print(prefix, title, message string) {
	fmt.Fprintf(n.w, "%s[%s] %s\n", prefix, title, message)
}

// session is one open catalog for the duration of a command.
type session struct {
	db      *database.Database
	repo    *books.Repository
	catalog *catalog.Catalog
	log     *zap.Logger
	flush   func()
}

// openSession opens the catalog at dbPath and loads the table. A non-empty
// auditDir enables the deletion audit trail.
func openSession(dbPath string, verbose bool, out io.Writer, auditDir string) (*session, error) {
	level := "warn"
	if verbose {
		level = "debug"
	}
	log, flush, err := logging.Setup(level, false, nil)
	if err != nil {
		return nil, err
	}

	db, err := database.NewDatabase(dbPath, logging.GormLevel("silent"), log)
	if err != nil {
		flush()
		return nil, err
	}

	var opts []catalog.Option
	if auditDir != "" {
		opts = append(opts, catalog.WithAuditor(audit.NewAuditor(auditDir, log)))
	}

	repo := books.NewRepository(db.DB)
	cat := catalog.New(repo, NewConsoleNotifier(out), log, opts...)
	if err := cat.Refresh(); err != nil {
		db.Close()
		flush()
		return nil, err
	}

	return &session{db: db, repo: repo, catalog: cat, log: log, flush: flush}, nil
}

func (s *session) Close() {
	if err := s.db.Close(); err != nil {
		s.log.Warn("failed to close database", zap.Error(err))
	}
	s.flush()
}

// printRows writes the table currently shown by the catalog.
func printRows(w io.Writer, state catalog.State) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(state.Headers[:], "\t"))
	for _, row := range state.Rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	tw.Flush()
	fmt.Fprintf(w, "\n%d book(s)\n", len(state.Rows))
}
