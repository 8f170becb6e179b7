package driving

import (
	"context"

	"github.com/custodia-labs/tecy/internal/core/domain"
)

// RunObserver receives the outcome of every run triggered by a watch.
type RunObserver func(run *domain.Run, err error)

// WatchService re-processes a file whenever it changes.
type WatchService interface {
	// Watch processes path once, then again on every change until ctx is
	// done or the file is removed. Runs happen one at a time.
	Watch(ctx context.Context, path string, observe RunObserver) error
}
