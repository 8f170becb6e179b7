package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tecy/internal/core/domain"
)

// mockCleaner implements driving.CleanerService for testing.
type mockCleaner struct {
	calls  int
	err    error
	outDir string
}

func (m *mockCleaner) Process(_ context.Context, path string) (*domain.Run, error) {
	m.calls++
	return &domain.Run{ID: "run", InputPath: path}, m.err
}

func (m *mockCleaner) CleanText(string) domain.CleanedDocument { return domain.CleanedDocument{} }
func (m *mockCleaner) OutputDir() string                      { return m.outDir }

// mockWatcher implements driven.FileWatcher with a scripted channel.
type mockWatcher struct {
	changes chan domain.FileChange
	err     error
}

func (m *mockWatcher) Watch(_ context.Context, _ string) (<-chan domain.FileChange, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.changes, nil
}

func TestWatchService_ProcessesOnEveryModification(t *testing.T) {
	cleaner := &mockCleaner{}
	watcher := &mockWatcher{changes: make(chan domain.FileChange, 3)}
	watcher.changes <- domain.FileChange{Path: "/in.txt", Kind: domain.ChangeModified}
	watcher.changes <- domain.FileChange{Path: "/in.txt", Kind: domain.ChangeModified}
	close(watcher.changes)

	var observed int
	err := NewWatchService(cleaner, watcher).Watch(context.Background(), "/in.txt", func(run *domain.Run, err error) {
		observed++
		assert.NoError(t, err)
		assert.Equal(t, "/in.txt", run.InputPath)
	})

	require.NoError(t, err)
	assert.Equal(t, 3, cleaner.calls)
	assert.Equal(t, 3, observed)
}

func TestWatchService_StopsOnRemoval(t *testing.T) {
	cleaner := &mockCleaner{}
	watcher := &mockWatcher{changes: make(chan domain.FileChange, 2)}
	watcher.changes <- domain.FileChange{Path: "/in.txt", Kind: domain.ChangeRemoved}
	watcher.changes <- domain.FileChange{Path: "/in.txt", Kind: domain.ChangeModified}

	err := NewWatchService(cleaner, watcher).Watch(context.Background(), "/in.txt", nil)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 1, cleaner.calls)
}

func TestWatchService_MissingFileIsFatal(t *testing.T) {
	cleaner := &mockCleaner{err: domain.ErrNotFound}
	watcher := &mockWatcher{changes: make(chan domain.FileChange)}

	err := NewWatchService(cleaner, watcher).Watch(context.Background(), "/in.txt", nil)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 1, cleaner.calls)
}

func TestWatchService_RunErrorsDoNotStopWatching(t *testing.T) {
	cleaner := &mockCleaner{err: domain.ErrDecodeFailed}
	watcher := &mockWatcher{changes: make(chan domain.FileChange, 1)}
	watcher.changes <- domain.FileChange{Path: "/in.txt", Kind: domain.ChangeModified}
	close(watcher.changes)

	var errs []error
	err := NewWatchService(cleaner, watcher).Watch(context.Background(), "/in.txt", func(_ *domain.Run, err error) {
		errs = append(errs, err)
	})

	require.NoError(t, err)
	require.Len(t, errs, 2)
	assert.ErrorIs(t, errs[1], domain.ErrDecodeFailed)
}

func TestWatchService_ContextCancel(t *testing.T) {
	cleaner := &mockCleaner{}
	watcher := &mockWatcher{changes: make(chan domain.FileChange)}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- NewWatchService(cleaner, watcher).Watch(ctx, "/in.txt", nil)
	}()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestWatchService_WatcherError(t *testing.T) {
	watcher := &mockWatcher{err: assert.AnError}

	err := NewWatchService(&mockCleaner{}, watcher).Watch(context.Background(), "/in.txt", nil)

	assert.ErrorIs(t, err, assert.AnError)
}

func TestWatchService_InvalidInput(t *testing.T) {
	err := NewWatchService(&mockCleaner{}, &mockWatcher{}).Watch(context.Background(), "", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = NewWatchService(nil, nil).Watch(context.Background(), "/in.txt", nil)
	assert.Error(t, err)
}

func TestWatchService_RejectsOwnOutputFile(t *testing.T) {
	outDir := t.TempDir()
	cleaner := &mockCleaner{outDir: outDir}
	watcher := &mockWatcher{changes: make(chan domain.FileChange)}

	err := NewWatchService(cleaner, watcher).Watch(context.Background(), filepath.Join(outDir, "notes.txt"), nil)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, cleaner.calls)
}

func TestWatchService_RejectsOwnOutputThroughSymlink(t *testing.T) {
	outDir := t.TempDir()
	target := filepath.Join(outDir, "notes.txt")
	require.NoError(t, os.WriteFile(target, []byte("hola"), 0o600))
	link := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	cleaner := &mockCleaner{outDir: outDir}
	watcher := &mockWatcher{changes: make(chan domain.FileChange)}

	err := NewWatchService(cleaner, watcher).Watch(context.Background(), link, nil)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, cleaner.calls)
}

func TestWatchService_OtherFileInOutputDirAllowed(t *testing.T) {
	outDir := t.TempDir()
	cleaner := &mockCleaner{outDir: outDir}
	watcher := &mockWatcher{changes: make(chan domain.FileChange)}
	close(watcher.changes)

	err := NewWatchService(cleaner, watcher).Watch(context.Background(), filepath.Join(outDir, "notes.md"), nil)

	require.NoError(t, err)
	assert.Equal(t, 1, cleaner.calls)
}
