package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/tecy/internal/core/domain"
	"github.com/custodia-labs/tecy/internal/core/ports/driven"
	"github.com/custodia-labs/tecy/internal/core/ports/driving"
	"github.com/custodia-labs/tecy/internal/logger"
)

// Ensure WatchService implements the interface.
var _ driving.WatchService = (*WatchService)(nil)

// WatchService re-runs the cleaner on file changes.
type WatchService struct {
	cleaner driving.CleanerService
	watcher driven.FileWatcher
}

// NewWatchService creates a new watch service.
func NewWatchService(cleaner driving.CleanerService, watcher driven.FileWatcher) *WatchService {
	return &WatchService{cleaner: cleaner, watcher: watcher}
}

// Watch runs the cleaner once and then on every modification.
// A removed file ends the watch with domain.ErrNotFound. A file that is
// its own output is rejected with domain.ErrInvalidInput, since every
// write would trigger another run.
func (s *WatchService) Watch(ctx context.Context, path string, observe driving.RunObserver) error {
	if path == "" {
		return domain.ErrInvalidInput
	}
	if s.cleaner == nil || s.watcher == nil {
		return fmt.Errorf("watch service not configured")
	}
	if s.writesOver(path) {
		return fmt.Errorf("%s is its own output file: %w", path, domain.ErrInvalidInput)
	}
	if observe == nil {
		observe = func(*domain.Run, error) {}
	}

	// A missing file is fatal before any watching starts.
	run, err := s.cleaner.Process(ctx, path)
	observe(run, err)
	if errors.Is(err, domain.ErrNotFound) {
		return err
	}

	changes, err := s.watcher.Watch(ctx, path)
	if err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}

	logger.Info("Watching %s", path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case change, ok := <-changes:
			if !ok {
				return nil
			}
			if change.Removed() {
				logger.Warn("%s was removed, stopping", change.Path)
				return fmt.Errorf("%s: %w", change.Path, domain.ErrNotFound)
			}
			logger.Debug("Change detected: %s", change.Path)
			run, err := s.cleaner.Process(ctx, path)
			observe(run, err)
		}
	}
}

// writesOver reports whether cleaning path would overwrite path itself.
func (s *WatchService) writesOver(path string) bool {
	dir := s.cleaner.OutputDir()
	if dir == "" {
		return false
	}
	out := filepath.Join(dir, domain.OutputName(path))

	absIn, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	absOut, err := filepath.Abs(out)
	if err != nil {
		return false
	}
	if absIn == absOut {
		return true
	}

	inInfo, err := os.Stat(absIn)
	if err != nil {
		return false
	}
	outInfo, err := os.Stat(absOut)
	if err != nil {
		return false
	}
	return os.SameFile(inInfo, outInfo)
}
