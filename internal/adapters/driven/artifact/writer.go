// Package artifact writes cleaned output files into the tecy home directory.
package artifact

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/tecy/internal/core/domain"
	"github.com/custodia-labs/tecy/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.ArtifactWriter = (*Writer)(nil)

// Writer stores artifacts as files in a single directory.
type Writer struct {
	dir string
}

// NewWriter creates a writer for dir.
// If dir is empty, defaults to ~/.tecy.
func NewWriter(dir string) (*Writer, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(home, ".tecy")
	}
	return &Writer{dir: dir}, nil
}

// Dir returns the output directory.
func (w *Writer) Dir() string {
	return w.dir
}

// Write creates the output directory if needed and writes content to
// dir/name, replacing any previous file. Returns the written path.
func (w *Writer) Write(ctx context.Context, name string, content []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if name == "" || filepath.Base(name) != name {
		return "", fmt.Errorf("artifact name %q: %w", name, domain.ErrInvalidInput)
	}

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: creating %s: %v", domain.ErrWriteFailed, w.dir, err)
	}

	path := filepath.Join(w.dir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrWriteFailed, err)
	}
	return path, nil
}
