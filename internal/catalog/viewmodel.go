package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/mrlokans/katalog/internal/entities"
)

// ViewModel keeps the Grid in line with the store and turns user edits of
// grid cells into store updates.
type ViewModel struct {
	store    Store
	grid     *Grid
	notifier Notifier
	log      *zap.Logger

	// bulkLoadInProgress is set while the grid is repopulated from the
	// store; cell writes seen in that window are not user edits.
	bulkLoadInProgress bool
	keyword            string
}

func NewViewModel(store Store, grid *Grid, notifier Notifier, log *zap.Logger) *ViewModel {
	vm := &ViewModel{
		store:    store,
		grid:     grid,
		notifier: notifier,
		log:      log,
	}
	grid.OnChange(func(row, _ int) { vm.OnCellEdited(row) })
	return vm
}

func (vm *ViewModel) Grid() *Grid {
	return vm.grid
}

// Keyword returns the active title search, "" when the full list is shown.
func (vm *ViewModel) Keyword() string {
	return vm.keyword
}

// Refresh reloads the grid from the store, honouring the active search.
func (vm *ViewModel) Refresh() error {
	if vm.keyword != "" {
		return vm.load(func() ([]entities.Book, error) { return vm.store.SearchByTitle(vm.keyword) })
	}
	return vm.load(vm.store.ListAll)
}

// Search filters the grid to titles containing keyword. A blank keyword
// clears the filter and shows every book.
func (vm *ViewModel) Search(keyword string) error {
	vm.keyword = strings.ToLower(strings.TrimSpace(keyword))
	return vm.Refresh()
}

// EditCell applies a user edit to a cell. The change is synced to the store
// through OnCellEdited.
func (vm *ViewModel) EditCell(row, col int, text string) {
	vm.grid.SetCell(row, col, text)
}

// OnCellEdited writes the given row back to the store. It does nothing
// during a bulk reload or when the row is incomplete. The fields are not
// checked for emptiness here, unlike in the form, and the grid is left as
// edited if the update fails.
func (vm *ViewModel) OnCellEdited(row int) {
	if vm.bulkLoadInProgress {
		return
	}

	book, err := vm.bookAt(row)
	if err != nil {
		vm.log.Debug("ignoring edit of incomplete row", zap.Int("row", row), zap.Error(err))
		return
	}

	if err := vm.store.Update(book.ID, book.Title, book.Author, book.Year); err != nil {
		vm.log.Error("failed to sync edited row", zap.Uint("book.id", book.ID), zap.Error(err))
		vm.notifier.Error(titleError, msgUpdateFailed)
		return
	}

	vm.log.Info("synced edited row", zap.Uint("book.id", book.ID))
	vm.notifier.Info(titleSuccess, msgUpdated)
}

func (vm *ViewModel) load(query func() ([]entities.Book, error)) error {
	vm.bulkLoadInProgress = true
	defer func() { vm.bulkLoadInProgress = false }()

	vm.grid.Clear()

	books, err := query()
	if err != nil {
		vm.log.Error("failed to load books", zap.String("keyword", vm.keyword), zap.Error(err))
		vm.notifier.Error(titleError, msgLoadFailed)
		return fmt.Errorf("failed to load books: %w", err)
	}

	for _, book := range books {
		row := vm.grid.AppendRow()
		for col, text := range book.Cells() {
			vm.grid.SetCell(row, col, text)
		}
	}
	return nil
}

// bookAt reads a grid row back into a Book.
func (vm *ViewModel) bookAt(row int) (entities.Book, error) {
	var cells [ColumnCount]string
	for col := range cells {
		text, ok := vm.grid.Cell(row, col)
		if !ok {
			return entities.Book{}, fmt.Errorf("%w: row %d column %d missing", ErrInvalidRow, row, col)
		}
		cells[col] = text
	}

	id, err := strconv.ParseUint(strings.TrimSpace(cells[ColumnID]), 10, 64)
	if err != nil {
		return entities.Book{}, fmt.Errorf("%w: bad id %q", ErrInvalidRow, cells[ColumnID])
	}

	return entities.Book{
		ID:     uint(id),
		Title:  cells[ColumnTitle],
		Author: cells[ColumnAuthor],
		Year:   cells[ColumnYear],
	}, nil
}
