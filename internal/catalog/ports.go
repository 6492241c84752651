package catalog

import "github.com/mrlokans/katalog/internal/entities"

// Store is the record store the catalog reads from and writes to.
type Store interface {
	ListAll() ([]entities.Book, error)
	Create(title, author, year string) (*entities.Book, error)
	Update(id uint, title, author, year string) error
	Delete(id uint) error
	SearchByTitle(keyword string) ([]entities.Book, error)
}

// Notifier shows a message to the user. Implementations must not block on
// user input.
type Notifier interface {
	Info(title, message string)
	Warning(title, message string)
	Error(title, message string)
}

// Confirmer asks the user a yes/no question. Anything other than an explicit
// yes counts as no.
type Confirmer interface {
	Confirm(title, question string) bool
}

// ConfirmFunc adapts a function to the Confirmer interface.
type ConfirmFunc func(title, question string) bool

func (f ConfirmFunc) Confirm(title, question string) bool {
	return f(title, question)
}

// Answer returns a Confirmer that always gives the same answer.
func Answer(yes bool) Confirmer {
	return ConfirmFunc(func(string, string) bool { return yes })
}

// FileChooser asks the user where to save a file. An empty path means the
// user cancelled.
type FileChooser interface {
	SaveFileName(caption, filter string) string
}

// FileChooserFunc adapts a function to the FileChooser interface.
type FileChooserFunc func(caption, filter string) string

func (f FileChooserFunc) SaveFileName(caption, filter string) string {
	return f(caption, filter)
}

// Destination returns a FileChooser that always picks path.
func Destination(path string) FileChooser {
	return FileChooserFunc(func(string, string) string { return path })
}

// Auditor persists a snapshot of data for later inspection.
type Auditor interface {
	SaveJSON(data any) (string, error)
}
