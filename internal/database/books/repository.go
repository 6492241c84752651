// Package books provides database operations for the book catalog.
//
// # Interface Implementation
//
//	var _ catalog.Store = (*Repository)(nil)
//
// # Usage
//
//	repo := books.NewRepository(db)
//	book, err := repo.Create("Animal Farm", "George Orwell", "1945")
package books

import (
	"strings"

	"gorm.io/gorm"

	"github.com/mrlokans/katalog/internal/entities"
)

const createTableSQL = `CREATE TABLE IF NOT EXISTS buku (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	judul TEXT NOT NULL,
	pengarang TEXT NOT NULL,
	tahun TEXT NOT NULL
)`

// Repository handles all book record database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Initialize creates the book table if it does not exist yet. Safe to call
// on every start.
func (r *Repository) Initialize() error {
	return r.db.Exec(createTableSQL).Error
}

// ListAll returns every book in id order.
func (r *Repository) ListAll() ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Order("id ASC").Find(&books).Error
	return books, err
}

// GetByID retrieves a single book. Returns gorm.ErrRecordNotFound when absent.
func (r *Repository) GetByID(id uint) (*entities.Book, error) {
	var book entities.Book
	if err := r.db.First(&book, id).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

// Count returns the number of stored books.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Book{}).Count(&count).Error
	return count, err
}

// Create inserts a new book and returns it with its assigned id.
func (r *Repository) Create(title, author, year string) (*entities.Book, error) {
	book := &entities.Book{Title: title, Author: author, Year: year}
	if err := r.db.Create(book).Error; err != nil {
		return nil, err
	}
	return book, nil
}

// Update overwrites all three fields of the book with the given id.
// Updating an id that does not exist is a silent no-op.
func (r *Repository) Update(id uint, title, author, year string) error {
	// Map form so empty strings are written too.
	return r.db.Model(&entities.Book{}).Where("id = ?", id).Updates(map[string]any{
		"judul":     title,
		"pengarang": author,
		"tahun":     year,
	}).Error
}

// Delete removes the book with the given id. Deleting an absent id is a no-op.
func (r *Repository) Delete(id uint) error {
	return r.db.Where("id = ?", id).Delete(&entities.Book{}).Error
}

// SearchByTitle returns the books whose title contains keyword, ignoring
// case, in id order. The keyword is matched literally: % and _ are plain
// characters, and case folding covers non-ASCII letters, which SQLite's
// LOWER and LIKE do not.
func (r *Repository) SearchByTitle(keyword string) ([]entities.Book, error) {
	all, err := r.ListAll()
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(keyword)
	books := make([]entities.Book, 0, len(all))
	for _, book := range all {
		if strings.Contains(strings.ToLower(book.Title), needle) {
			books = append(books, book)
		}
	}
	return books, nil
}
