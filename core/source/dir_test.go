package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirSource_Fetch(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "parts"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "parts", "footer.html"), []byte("<footer>F</footer>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(root), "secret.html"), []byte("secret"), 0o644))

	src := NewDirSource(root)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		markup, err := src.Fetch(ctx, "/parts/footer.html")
		require.NoError(t, err)
		assert.Equal(t, "<footer>F</footer>", markup)
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := src.Fetch(ctx, "/parts/missing.html")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Traversal stays below root", func(t *testing.T) {
		_, err := src.Fetch(ctx, "../secret.html")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
