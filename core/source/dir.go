package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// DirSource reads fragments from files below a root directory.
type DirSource struct {
	root string
}

// NewDirSource creates a source rooted at dir.
func NewDirSource(dir string) *DirSource {
	return &DirSource{root: dir}
}

// Path maps a reference to a file below the root. Cleaning against "/"
// drops any ".." that would climb out of it.
func (s *DirSource) Path(ref string) string {
	return filepath.Join(s.root, filepath.FromSlash(path.Clean("/"+ref)))
}

// Fetch implements Source.
func (s *DirSource) Fetch(ctx context.Context, ref string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(s.Path(ref))
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, ref)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read fragment %s: %w", ref, err)
	}
	return string(data), nil
}
