package catalog

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/katalog/internal/database/books"
	"github.com/mrlokans/katalog/internal/entities"
)

func setupTestRepo(t *testing.T) (*books.Repository, func()) {
	t.Helper()
	dbPath := "./test_catalog_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	repo := books.NewRepository(db)
	require.NoError(t, repo.Initialize())

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}
	return repo, cleanup
}

func setupTestCatalog(t *testing.T, opts ...Option) (*Catalog, *books.Repository, *NoticeLog, func()) {
	t.Helper()
	repo, cleanup := setupTestRepo(t)
	notices := NewNoticeLog()
	cat := New(repo, notices, zap.NewNop(), opts...)
	require.NoError(t, cat.Refresh())
	return cat, repo, notices, cleanup
}

func seed(t *testing.T, repo *books.Repository, titles ...string) []entities.Book {
	t.Helper()
	out := make([]entities.Book, 0, len(titles))
	for _, title := range titles {
		book, err := repo.Create(title, "Author of "+title, "2000")
		require.NoError(t, err)
		out = append(out, *book)
	}
	return out
}

func cellsOf(book entities.Book) []string {
	cells := book.Cells()
	return cells[:]
}

func columnValues(state State, col int) []string {
	out := make([]string, 0, len(state.Rows))
	for _, row := range state.Rows {
		out = append(out, row[col])
	}
	return out
}

var errStorage = errors.New("disk I/O error")

// failingStore wraps a Store and fails the operations named in fail.
type failingStore struct {
	Store
	fail  map[string]bool
	calls map[string]int
}

func newFailingStore(inner Store, ops ...string) *failingStore {
	s := &failingStore{Store: inner, fail: map[string]bool{}, calls: map[string]int{}}
	for _, op := range ops {
		s.fail[op] = true
	}
	return s
}

func (s *failingStore) ListAll() ([]entities.Book, error) {
	s.calls["list"]++
	if s.fail["list"] {
		return nil, errStorage
	}
	return s.Store.ListAll()
}

func (s *failingStore) Create(title, author, year string) (*entities.Book, error) {
	s.calls["create"]++
	if s.fail["create"] {
		return nil, errStorage
	}
	return s.Store.Create(title, author, year)
}

func (s *failingStore) Update(id uint, title, author, year string) error {
	s.calls["update"]++
	if s.fail["update"] {
		return errStorage
	}
	return s.Store.Update(id, title, author, year)
}

func (s *failingStore) Delete(id uint) error {
	s.calls["delete"]++
	if s.fail["delete"] {
		return errStorage
	}
	return s.Store.Delete(id)
}

func (s *failingStore) SearchByTitle(keyword string) ([]entities.Book, error) {
	s.calls["search"]++
	if s.fail["search"] {
		return nil, errStorage
	}
	return s.Store.SearchByTitle(keyword)
}

func nopLogger() *zap.Logger {
	return zap.NewNop()
}
