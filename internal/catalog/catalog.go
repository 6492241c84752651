package catalog

import (
	"fmt"
	"io"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mrlokans/katalog/internal/entities"
	"github.com/mrlokans/katalog/internal/exporters"
)

// DeletedBook is the audit snapshot written before a book is deleted.
type DeletedBook struct {
	Event     string        `json:"event"`
	Book      entities.Book `json:"book"`
	DeletedAt time.Time     `json:"deleted_at"`
}

// State is a copy of everything a front end needs to draw the window.
type State struct {
	Headers  [ColumnCount]string
	Rows     [][]string
	Selected int
	Keyword  string
	Title    string
	Author   string
	Year     string
	Target   EditTarget
}

// Catalog is the composition root of the window: one store, one table, one
// form. Its methods are the event handlers front ends bind to.
type Catalog struct {
	mu sync.Mutex

	store    Store
	grid     *Grid
	view     *ViewModel
	form     *Form
	exporter *exporters.CSVExporter
	notifier Notifier
	auditor  Auditor
	log      *zap.Logger
	now      func() time.Time
}

type Option func(*Catalog)

// WithAuditor records a snapshot of every deleted book.
func WithAuditor(a Auditor) Option {
	return func(c *Catalog) { c.auditor = a }
}

// WithClock overrides the clock used for audit timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Catalog) { c.now = now }
}

func New(store Store, notifier Notifier, log *zap.Logger, opts ...Option) *Catalog {
	grid := NewGrid()
	view := NewViewModel(store, grid, notifier, log)
	c := &Catalog{
		store:    store,
		grid:     grid,
		view:     view,
		form:     NewForm(store, view, notifier, log),
		exporter: exporters.NewCSVExporter(),
		notifier: notifier,
		log:      log,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Catalog) Refresh() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view.Refresh()
}

func (c *Catalog) Search(keyword string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view.Search(keyword)
}

// SubmitForm fills the form with the given values and submits it.
func (c *Catalog) SubmitForm(title, author, year string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form.SetFields(title, author, year)
	return c.form.Submit()
}

// BeginEdit loads book into the form for updating.
func (c *Catalog) BeginEdit(book entities.Book) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form.BeginEdit(book)
}

// BeginEditRow loads the book shown in row into the form.
func (c *Catalog) BeginEditRow(row int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	book, err := c.view.bookAt(row)
	if err != nil {
		return err
	}
	c.form.BeginEdit(book)
	return nil
}

func (c *Catalog) ResetForm() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form.Reset()
}

// EditCell is a user edit of one table cell.
func (c *Catalog) EditCell(row, col int, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view.EditCell(row, col, text)
}

func (c *Catalog) SelectRow(row int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.grid.Select(row)
}

// RowID returns the id of the book shown in row.
func (c *Catalog) RowID(row int) (uint, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	book, err := c.view.bookAt(row)
	if err != nil {
		return 0, false
	}
	return book.ID, true
}

// SelectID selects the first row showing the book with the given id.
func (c *Catalog) SelectID(id uint) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for row := 0; row < c.grid.RowCount(); row++ {
		if book, err := c.view.bookAt(row); err == nil && book.ID == id {
			return c.grid.Select(row)
		}
	}
	c.grid.Select(-1)
	return false
}

// DeleteSelected deletes the book in the selected row after the user
// confirms. Declining is not an error.
func (c *Catalog) DeleteSelected(confirm Confirmer) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	row, ok := c.grid.Selected()
	if !ok {
		c.notifier.Warning(titleWarning, msgSelectRow)
		return ErrNoSelection
	}

	idText, ok := c.grid.Cell(row, ColumnID)
	if !ok {
		return fmt.Errorf("%w: row %d has no id", ErrInvalidRow, row)
	}

	if !confirm.Confirm(titleConfirm, msgConfirmDelete) {
		c.log.Debug("delete declined", zap.String("book.id", idText))
		return nil
	}

	book, err := c.view.bookAt(row)
	if err != nil {
		return err
	}

	if err := c.store.Delete(book.ID); err != nil {
		c.log.Error("failed to delete book", zap.Uint("book.id", book.ID), zap.Error(err))
		c.notifier.Error(titleError, msgDeleteFailed)
		return fmt.Errorf("failed to delete book %d: %w", book.ID, err)
	}
	c.log.Info("deleted book", zap.Uint("book.id", book.ID))
	c.audit(book)

	c.form.Forget(book.ID)
	return c.view.Refresh()
}

// ExportCSV writes the rows currently shown to the file the user picks.
// A cancelled file dialog does nothing.
func (c *Catalog) ExportCSV(chooser FileChooser) (exporters.ExportResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	path := chooser.SaveFileName(exportCaption, exportFilter)
	if path == "" {
		return exporters.ExportResult{}, nil
	}

	result, err := c.exporter.ExportFile(path, c.grid)
	if err != nil {
		c.log.Error("failed to export csv", zap.String("path", path), zap.Error(err))
		c.notifier.Error(titleError, msgExportFailed)
		return result, err
	}

	c.log.Info("exported csv", zap.String("path", path), zap.Int("rows", result.RowsWritten))
	c.notifier.Info(titleSuccess, msgExported)
	return result, nil
}

// WriteCSV streams the rows currently shown to w.
func (c *Catalog) WriteCSV(w io.Writer) (exporters.ExportResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.exporter.Export(w, c.grid)
}

// State returns a snapshot of the table and form.
func (c *Catalog) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	rows := make([][]string, c.grid.RowCount())
	for r := range rows {
		rows[r] = c.grid.Row(r)
	}
	selected, _ := c.grid.Selected()
	title, author, year := c.form.Fields()

	return State{
		Headers:  Headers,
		Rows:     rows,
		Selected: selected,
		Keyword:  c.view.Keyword(),
		Title:    title,
		Author:   author,
		Year:     year,
		Target:   c.form.Target(),
	}
}

func (c *Catalog) audit(book entities.Book) {
	if c.auditor == nil {
		return
	}
	name, err := c.auditor.SaveJSON(DeletedBook{Event: "delete", Book: book, DeletedAt: c.now().UTC()})
	if err != nil {
		c.log.Warn("failed to write audit record", zap.Uint("book.id", book.ID), zap.Error(err))
		return
	}
	c.log.Debug("wrote audit record", zap.String("file", name))
}
