package driven

import (
	"context"

	"github.com/custodia-labs/tecy/internal/core/domain"
)

// FileWatcher reports changes to a single file.
type FileWatcher interface {
	// Watch starts watching path. The channel is closed when ctx is done,
	// when the file is removed (after the removal is delivered), or when
	// the watcher fails.
	Watch(ctx context.Context, path string) (<-chan domain.FileChange, error)
}
