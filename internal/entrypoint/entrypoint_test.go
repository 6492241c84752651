package entrypoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionSecret(t *testing.T) {
	t.Run("hex", func(t *testing.T) {
		secret, err := sessionSecret("00ff10")
		require.NoError(t, err)
		assert.Equal(t, []byte{0x00, 0xff, 0x10}, secret)
	})

	t.Run("raw", func(t *testing.T) {
		secret, err := sessionSecret("not hex at all")
		require.NoError(t, err)
		assert.Equal(t, []byte("not hex at all"), secret)
	})

	t.Run("generated", func(t *testing.T) {
		a, err := sessionSecret("")
		require.NoError(t, err)
		b, err := sessionSecret("")
		require.NoError(t, err)
		assert.Len(t, a, 32)
		assert.NotEqual(t, a, b)
	})
}
