package catalog

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mrlokans/katalog/internal/entities"
)

// EditTarget says what a form submission does: create a new book, or
// update the book with a given id.
type EditTarget struct {
	id      uint
	editing bool
}

// CreateMode is the target of an empty form.
func CreateMode() EditTarget {
	return EditTarget{}
}

// EditMode targets the existing book with the given id.
func EditMode(id uint) EditTarget {
	return EditTarget{id: id, editing: true}
}

// ID returns the targeted book id; ok is false in create mode.
func (t EditTarget) ID() (id uint, ok bool) {
	return t.id, t.editing
}

func (t EditTarget) IsEdit() bool {
	return t.editing
}

func (t EditTarget) String() string {
	if !t.editing {
		return "create"
	}
	return fmt.Sprintf("edit(%d)", t.id)
}

// Form is the three-field entry form used to add a book or change one.
type Form struct {
	store    Store
	view     *ViewModel
	notifier Notifier
	log      *zap.Logger

	title, author, year string
	target              EditTarget
}

func NewForm(store Store, view *ViewModel, notifier Notifier, log *zap.Logger) *Form {
	return &Form{
		store:    store,
		view:     view,
		notifier: notifier,
		log:      log,
	}
}

// SetFields replaces the text of the three inputs.
func (f *Form) SetFields(title, author, year string) {
	f.title, f.author, f.year = title, author, year
}

func (f *Form) Fields() (title, author, year string) {
	return f.title, f.author, f.year
}

func (f *Form) Target() EditTarget {
	return f.target
}

// Reset empties the inputs and returns to create mode.
func (f *Form) Reset() {
	f.SetFields("", "", "")
	f.target = CreateMode()
}

// BeginEdit loads book into the form; the next Submit updates it.
func (f *Form) BeginEdit(book entities.Book) {
	f.SetFields(book.Title, book.Author, book.Year)
	f.target = EditMode(book.ID)
}

// Forget resets the form if it is editing the book with the given id, so a
// deleted book can not be submitted later.
func (f *Form) Forget(id uint) {
	if target, ok := f.target.ID(); ok && target == id {
		f.Reset()
	}
}

// Submit validates the inputs and creates or updates a book depending on
// the edit target. On success the form is reset and the table reloaded.
func (f *Form) Submit() error {
	if f.title == "" || f.author == "" || f.year == "" {
		f.notifier.Warning(titleInputError, msgFieldsRequired)
		return ErrEmptyField
	}

	switch id, editing := f.target.ID(); editing {
	case true:
		if err := f.store.Update(id, f.title, f.author, f.year); err != nil {
			f.log.Error("failed to update book", zap.Uint("book.id", id), zap.Error(err))
			f.notifier.Error(titleError, msgSaveFailed)
			return fmt.Errorf("failed to update book %d: %w", id, err)
		}
		f.log.Info("updated book", zap.Uint("book.id", id))
	case false:
		book, err := f.store.Create(f.title, f.author, f.year)
		if err != nil {
			f.log.Error("failed to create book", zap.Error(err))
			f.notifier.Error(titleError, msgSaveFailed)
			return fmt.Errorf("failed to create book: %w", err)
		}
		f.log.Info("created book", zap.Uint("book.id", book.ID))
	}

	f.Reset()
	return f.view.Refresh()
}
