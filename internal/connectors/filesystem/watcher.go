// Package filesystem watches local files for changes with fsnotify.
package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/tecy/internal/core/domain"
	"github.com/custodia-labs/tecy/internal/core/ports/driven"
	"github.com/custodia-labs/tecy/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.FileWatcher = (*Watcher)(nil)

// Watcher reports changes to one file by watching its directory. Editors
// often replace a file instead of writing it in place, and a directory
// watch survives that.
type Watcher struct{}

// NewWatcher creates a new file watcher.
func NewWatcher() *Watcher {
	return &Watcher{}
}

// Watch starts watching path and returns a channel of changes.
func (w *Watcher) Watch(ctx context.Context, path string) (<-chan domain.FileChange, error) {
	target, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}

	info, err := os.Stat(target)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, domain.ErrNotFound)
		}
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory: %w", path, domain.ErrInvalidInput)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(target)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(target), err)
	}

	changes := make(chan domain.FileChange)
	go w.run(ctx, fsw, target, changes)
	return changes, nil
}

func (w *Watcher) run(ctx context.Context, fsw *fsnotify.Watcher, target string, changes chan<- domain.FileChange) {
	defer close(changes)
	defer fsw.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			change := handleFsEvent(target, event)
			if change == nil {
				continue
			}
			select {
			case changes <- *change:
			case <-ctx.Done():
				return
			}
			if change.Removed() {
				return
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			logger.Warn("watch error: %v", err)
		}
	}
}

// handleFsEvent maps a directory event to a change of target, or nil when
// the event concerns another file or an ignored operation.
func handleFsEvent(target string, event fsnotify.Event) *domain.FileChange {
	if filepath.Clean(event.Name) != target {
		return nil
	}

	switch {
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return &domain.FileChange{Path: target, Kind: domain.ChangeRemoved}
	case event.Has(fsnotify.Write), event.Has(fsnotify.Create):
		return &domain.FileChange{Path: target, Kind: domain.ChangeModified}
	default:
		return nil
	}
}
