package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAuditor(t *testing.T) {
	auditDir := filepath.Join(t.TempDir(), "audit")
	auditor := NewAuditor(auditDir, zap.NewNop())

	t.Run("SaveJSON creates audit directory and saves file", func(t *testing.T) {
		deleted := map[string]any{
			"event": "delete",
			"book": map[string]any{
				"id":     7,
				"title":  "Animal Farm",
				"author": "George Orwell",
				"year":   "1945",
			},
		}

		filename, err := auditor.SaveJSON(deleted)
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(filename, ".json"))

		_, err = uuid.Parse(strings.TrimSuffix(filename, ".json"))
		assert.NoError(t, err, "file name is a uuid")

		fileContent, err := os.ReadFile(filepath.Join(auditDir, filename))
		require.NoError(t, err)

		var saved map[string]any
		require.NoError(t, json.Unmarshal(fileContent, &saved))
		assert.Equal(t, "delete", saved["event"])
		book := saved["book"].(map[string]any)
		assert.Equal(t, float64(7), book["id"])
		assert.Equal(t, "Animal Farm", book["title"])
	})

	t.Run("SaveJSON generates unique filenames", func(t *testing.T) {
		first, err := auditor.SaveJSON(map[string]string{"key": "value"})
		require.NoError(t, err)
		second, err := auditor.SaveJSON(map[string]string{"key": "value"})
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("SaveJSON rejects unmarshalable data", func(t *testing.T) {
		_, err := auditor.SaveJSON(map[string]any{"bad": make(chan int)})
		assert.Error(t, err)
	})
}

func TestAuditor_UnwritableDir(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	auditor := NewAuditor(filepath.Join(blocker, "audit"), zap.NewNop())
	_, err := auditor.SaveJSON(map[string]string{"key": "value"})
	assert.Error(t, err)
}
