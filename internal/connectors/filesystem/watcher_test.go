package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tecy/internal/core/domain"
)

func tempFile(t *testing.T, name, content string) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestHandleFsEvent(t *testing.T) {
	target := "/data/input.txt"

	tests := []struct {
		name     string
		event    fsnotify.Event
		expected *domain.FileChange
	}{
		{
			name:     "write",
			event:    fsnotify.Event{Name: target, Op: fsnotify.Write},
			expected: &domain.FileChange{Path: target, Kind: domain.ChangeModified},
		},
		{
			name:     "create",
			event:    fsnotify.Event{Name: target, Op: fsnotify.Create},
			expected: &domain.FileChange{Path: target, Kind: domain.ChangeModified},
		},
		{
			name:     "remove",
			event:    fsnotify.Event{Name: target, Op: fsnotify.Remove},
			expected: &domain.FileChange{Path: target, Kind: domain.ChangeRemoved},
		},
		{
			name:     "rename",
			event:    fsnotify.Event{Name: target, Op: fsnotify.Rename},
			expected: &domain.FileChange{Path: target, Kind: domain.ChangeRemoved},
		},
		{
			name:     "write with chmod",
			event:    fsnotify.Event{Name: target, Op: fsnotify.Write | fsnotify.Chmod},
			expected: &domain.FileChange{Path: target, Kind: domain.ChangeModified},
		},
		{
			name:  "chmod only",
			event: fsnotify.Event{Name: target, Op: fsnotify.Chmod},
		},
		{
			name:  "sibling file",
			event: fsnotify.Event{Name: "/data/other.txt", Op: fsnotify.Write},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, handleFsEvent(target, tt.event))
		})
	}
}

func TestWatcher_MissingFile(t *testing.T) {
	_, err := NewWatcher().Watch(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWatcher_Directory(t *testing.T) {
	_, err := NewWatcher().Watch(context.Background(), t.TempDir())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestWatcher_DetectsWrite(t *testing.T) {
	path := tempFile(t, "notes.txt", "initial")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := NewWatcher().Watch(ctx, path)
	require.NoError(t, err)

	go func() {
		time.Sleep(50 * time.Millisecond)
		_ = os.WriteFile(path, []byte("modified"), 0o644)
	}()

	select {
	case change := <-changes:
		assert.Equal(t, domain.ChangeModified, change.Kind)
		assert.Equal(t, path, change.Path)
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for modification")
	}
}

func TestWatcher_IgnoresSiblings(t *testing.T) {
	path := tempFile(t, "notes.txt", "initial")
	sibling := filepath.Join(filepath.Dir(path), "other.txt")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := NewWatcher().Watch(ctx, path)
	require.NoError(t, err)

	go func() {
		time.Sleep(50 * time.Millisecond)
		_ = os.WriteFile(sibling, []byte("x"), 0o644)
		time.Sleep(50 * time.Millisecond)
		_ = os.WriteFile(path, []byte("y"), 0o644)
	}()

	select {
	case change := <-changes:
		assert.Equal(t, path, change.Path)
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for modification")
	}
}

func TestWatcher_RemovalClosesChannel(t *testing.T) {
	path := tempFile(t, "gone.txt", "bye")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := NewWatcher().Watch(ctx, path)
	require.NoError(t, err)

	go func() {
		time.Sleep(50 * time.Millisecond)
		_ = os.Remove(path)
	}()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case change, ok := <-changes:
			if !ok {
				t.Fatal("channel closed before removal was delivered")
			}
			if !change.Removed() {
				continue
			}
			_, ok = <-changes
			assert.False(t, ok, "channel should close after removal")
			return
		case <-deadline:
			t.Fatal("timeout waiting for removal")
		}
	}
}

func TestWatcher_CancelClosesChannel(t *testing.T) {
	path := tempFile(t, "notes.txt", "x")
	ctx, cancel := context.WithCancel(context.Background())

	changes, err := NewWatcher().Watch(ctx, path)
	require.NoError(t, err)
	cancel()

	select {
	case _, ok := <-changes:
		for ok {
			_, ok = <-changes
		}
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed after cancel")
	}
}
