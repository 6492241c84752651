package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/katalog/internal/catalog"
)

func addBook(t *testing.T, dbPath, title, author, year string) {
	t.Helper()
	var out bytes.Buffer
	cmd := &AddCommand{Title: title, Author: author, Year: year, DatabasePath: dbPath, Out: &out}
	require.NoError(t, cmd.Run())
}

func listOutput(t *testing.T, dbPath string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := &ListCommand{DatabasePath: dbPath, Out: &out}
	require.NoError(t, cmd.Run())
	return out.String()
}

func TestAddAndList(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "buku.db")

	var out bytes.Buffer
	cmd := &AddCommand{Title: "Laskar Pelangi", Author: "Andrea Hirata", Year: "2005", DatabasePath: dbPath, Out: &out}
	require.NoError(t, cmd.Run())
	assert.Equal(t, "Added book 1\n", out.String())

	listed := listOutput(t, dbPath)
	assert.Contains(t, listed, "Judul")
	assert.Contains(t, listed, "Laskar Pelangi")
	assert.Contains(t, listed, "Andrea Hirata")
	assert.Contains(t, listed, "1 book(s)")
}

func TestAddRejectsEmptyField(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "buku.db")

	var out bytes.Buffer
	cmd := &AddCommand{Title: "Laskar Pelangi", Author: "", Year: "2005", DatabasePath: dbPath, Out: &out}
	err := cmd.Run()

	assert.ErrorIs(t, err, catalog.ErrEmptyField)
	assert.Contains(t, out.String(), "WARNING [Input Error] Semua field harus diisi!")
	assert.Contains(t, listOutput(t, dbPath), "0 book(s)")
}

func TestUpdateKeepsOmittedFields(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "buku.db")
	addBook(t, dbPath, "Bumi Manusia", "Pramoedya", "1980")

	var out bytes.Buffer
	cmd := &UpdateCommand{ID: 1, Author: "Pramoedya Ananta Toer", DatabasePath: dbPath, Out: &out}
	require.NoError(t, cmd.Run())
	assert.Equal(t, "Updated book 1\n", out.String())

	listed := listOutput(t, dbPath)
	assert.Contains(t, listed, "Bumi Manusia")
	assert.Contains(t, listed, "Pramoedya Ananta Toer")
	assert.Contains(t, listed, "1980")
}

func TestUpdateUnknownBook(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "buku.db")

	cmd := &UpdateCommand{ID: 42, Title: "x", DatabasePath: dbPath, Out: &bytes.Buffer{}}
	err := cmd.Run()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "book 42 not found")
}

func TestDelete(t *testing.T) {
	t.Run("declined at the prompt", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "buku.db")
		addBook(t, dbPath, "Animal Farm", "Orwell", "1945")

		var out bytes.Buffer
		cmd := &DeleteCommand{ID: 1, DatabasePath: dbPath, In: strings.NewReader("\n"), Out: &out}
		require.NoError(t, cmd.Run())

		assert.Contains(t, out.String(), "Apakah Anda yakin ingin menghapus data ini? [y/N]: ")
		assert.Contains(t, out.String(), "Cancelled")
		assert.Contains(t, listOutput(t, dbPath), "1 book(s)")
	})

	t.Run("confirmed at the prompt", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "buku.db")
		addBook(t, dbPath, "Animal Farm", "Orwell", "1945")
		addBook(t, dbPath, "1984", "Orwell", "1949")

		var out bytes.Buffer
		cmd := &DeleteCommand{ID: 1, DatabasePath: dbPath, In: strings.NewReader("y\n"), Out: &out}
		require.NoError(t, cmd.Run())

		assert.Contains(t, out.String(), "Deleted book 1")
		listed := listOutput(t, dbPath)
		assert.NotContains(t, listed, "Animal Farm")
		assert.Contains(t, listed, "1984")
	})

	t.Run("yes flag writes audit record", func(t *testing.T) {
		dir := t.TempDir()
		dbPath := filepath.Join(dir, "buku.db")
		auditDir := filepath.Join(dir, "audit")
		addBook(t, dbPath, "Animal Farm", "Orwell", "1945")

		cmd := &DeleteCommand{ID: 1, Yes: true, AuditDir: auditDir, DatabasePath: dbPath, In: strings.NewReader(""), Out: &bytes.Buffer{}}
		require.NoError(t, cmd.Run())

		entries, err := os.ReadDir(auditDir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		data, err := os.ReadFile(filepath.Join(auditDir, entries[0].Name()))
		require.NoError(t, err)
		assert.Contains(t, string(data), "Animal Farm")
	})

	t.Run("unknown id", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "buku.db")

		cmd := &DeleteCommand{ID: 7, Yes: true, DatabasePath: dbPath, In: strings.NewReader(""), Out: &bytes.Buffer{}}
		err := cmd.Run()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "book 7 not found")
	})
}

func TestSearch(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "buku.db")
	addBook(t, dbPath, "Animal Farm", "Orwell", "1945")
	addBook(t, dbPath, "1984", "Orwell", "1949")
	addBook(t, dbPath, "A Tale", "Dickens", "1859")

	var out bytes.Buffer
	cmd := &SearchCommand{Keyword: "A", DatabasePath: dbPath, Out: &out}
	require.NoError(t, cmd.Run())

	assert.Contains(t, out.String(), "Animal Farm")
	assert.Contains(t, out.String(), "A Tale")
	assert.NotContains(t, out.String(), "1984")
	assert.Contains(t, out.String(), "2 book(s)")
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "buku.db")
	addBook(t, dbPath, "Animal Farm", "Orwell", "1945")
	addBook(t, dbPath, "1984", "Orwell", "1949")
	addBook(t, dbPath, "A Tale", "Dickens", "1859")

	t.Run("everything", func(t *testing.T) {
		outPath := filepath.Join(dir, "all.csv")
		var out bytes.Buffer
		cmd := &ExportCommand{OutputPath: outPath, DatabasePath: dbPath, Out: &out}
		require.NoError(t, cmd.Run())

		assert.Contains(t, out.String(), "Wrote 3 book(s)")
		data, err := os.ReadFile(outPath)
		require.NoError(t, err)
		assert.Equal(t, "ID,Judul,Pengarang,Tahun\n1,Animal Farm,Orwell,1945\n2,1984,Orwell,1949\n3,A Tale,Dickens,1859\n", string(data))
	})

	t.Run("filtered", func(t *testing.T) {
		outPath := filepath.Join(dir, "filtered.csv")
		cmd := &ExportCommand{OutputPath: outPath, Keyword: "a", DatabasePath: dbPath, Out: &bytes.Buffer{}}
		require.NoError(t, cmd.Run())

		data, err := os.ReadFile(outPath)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
		assert.Len(t, lines, 3)
	})
}

func TestParseFlags(t *testing.T) {
	t.Run("update requires id", func(t *testing.T) {
		err := NewUpdateCommand().ParseFlags([]string{"-title", "x"})
		assert.EqualError(t, err, "required flag -id not provided")
	})

	t.Run("delete reads id", func(t *testing.T) {
		cmd := NewDeleteCommand()
		require.NoError(t, cmd.ParseFlags([]string{"-id", "3", "-yes"}))
		assert.Equal(t, uint(3), cmd.ID)
		assert.True(t, cmd.Yes)
	})

	t.Run("export requires out", func(t *testing.T) {
		err := NewExportCommand().ParseFlags(nil)
		assert.EqualError(t, err, "required flag -out not provided")
	})

	t.Run("search requires keyword", func(t *testing.T) {
		err := NewSearchCommand().ParseFlags([]string{"-q", "  "})
		assert.EqualError(t, err, "required flag -q not provided")
	})
}

func TestConsoleNotifier(t *testing.T) {
	var out bytes.Buffer
	n := NewConsoleNotifier(&out)

	n.Info("Sukses", "ok")
	n.Error("Error", "bad")

	assert.Equal(t, "[Sukses] ok\nERROR [Error] bad\n", out.String())
}
