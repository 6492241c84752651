package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mrlokans/katalog/internal/entities"
)

func newTestForm(store Store) (*Form, *ViewModel, *NoticeLog) {
	notices := NewNoticeLog()
	vm := NewViewModel(store, NewGrid(), notices, zap.NewNop())
	return NewForm(store, vm, notices, zap.NewNop()), vm, notices
}

func TestEditTarget(t *testing.T) {
	id, ok := CreateMode().ID()
	assert.False(t, ok)
	assert.Zero(t, id)
	assert.False(t, CreateMode().IsEdit())
	assert.Equal(t, "create", CreateMode().String())

	id, ok = EditMode(7).ID()
	assert.True(t, ok)
	assert.Equal(t, uint(7), id)
	assert.Equal(t, "edit(7)", EditMode(7).String())
}

func TestForm_SubmitCreates(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	form, vm, notices := newTestForm(repo)
	form.SetFields("Animal Farm", "George Orwell", "1945")

	require.NoError(t, form.Submit())

	all, err := repo.ListAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Animal Farm", all[0].Title)
	assert.Equal(t, "George Orwell", all[0].Author)
	assert.Equal(t, "1945", all[0].Year)

	title, author, year := form.Fields()
	assert.Empty(t, title+author+year, "fields are cleared after submit")
	assert.Equal(t, CreateMode(), form.Target())
	assert.Equal(t, 1, vm.Grid().RowCount(), "table is reloaded")
	assert.Empty(t, notices.Drain())
}

func TestForm_SubmitRejectsEmptyFields(t *testing.T) {
	cases := []struct {
		name                string
		title, author, year string
	}{
		{"empty title", "", "George Orwell", "1945"},
		{"empty author", "Animal Farm", "", "1945"},
		{"empty year", "Animal Farm", "George Orwell", ""},
		{"all empty", "", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo, cleanup := setupTestRepo(t)
			defer cleanup()

			store := newFailingStore(repo)
			form, _, notices := newTestForm(store)
			form.SetFields(tc.title, tc.author, tc.year)

			err := form.Submit()
			assert.ErrorIs(t, err, ErrEmptyField)
			assert.Zero(t, store.calls["create"])
			assert.Zero(t, store.calls["update"])

			count, err := repo.Count()
			require.NoError(t, err)
			assert.Zero(t, count)

			got := notices.Drain()
			require.Len(t, got, 1)
			assert.Equal(t, Notice{Level: LevelWarning, Title: titleInputError, Message: msgFieldsRequired}, got[0])

			title, author, year := form.Fields()
			assert.Equal(t, tc.title, title, "rejected input stays in the form")
			assert.Equal(t, tc.author, author)
			assert.Equal(t, tc.year, year)
		})
	}
}

func TestForm_BeginEditThenSubmitUpdates(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()
	seeded := seed(t, repo, "Animal Farm", "1984")

	store := newFailingStore(repo)
	form, _, _ := newTestForm(store)

	form.BeginEdit(seeded[1])
	assert.Equal(t, EditMode(seeded[1].ID), form.Target())
	title, author, year := form.Fields()
	assert.Equal(t, []string{"1984", "Author of 1984", "2000"}, []string{title, author, year})

	form.SetFields("Nineteen Eighty-Four", "George Orwell", "1949")
	require.NoError(t, form.Submit())

	assert.Zero(t, store.calls["create"])
	assert.Equal(t, 1, store.calls["update"])

	book, err := repo.GetByID(seeded[1].ID)
	require.NoError(t, err)
	assert.Equal(t, entities.Book{ID: seeded[1].ID, Title: "Nineteen Eighty-Four", Author: "George Orwell", Year: "1949"}, *book)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.Equal(t, CreateMode(), form.Target())
}

func TestForm_Forget(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	form, _, _ := newTestForm(repo)
	form.BeginEdit(entities.Book{ID: 3, Title: "T", Author: "A", Year: "Y"})

	form.Forget(4)
	assert.Equal(t, EditMode(3), form.Target(), "other ids leave the form alone")

	form.Forget(3)
	assert.Equal(t, CreateMode(), form.Target())
	title, author, year := form.Fields()
	assert.Empty(t, title+author+year)
}

func TestForm_SubmitStoreFailure(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	store := newFailingStore(repo, "create")
	form, _, notices := newTestForm(store)
	form.SetFields("Animal Farm", "George Orwell", "1945")

	err := form.Submit()
	assert.ErrorIs(t, err, errStorage)

	title, _, _ := form.Fields()
	assert.Equal(t, "Animal Farm", title, "form keeps its input on failure")

	got := notices.Drain()
	require.Len(t, got, 1)
	assert.Equal(t, LevelError, got[0].Level)
}
