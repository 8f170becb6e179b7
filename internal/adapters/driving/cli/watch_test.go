package cli

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tecy/internal/core/domain"
)

func TestWatchCmd_Use(t *testing.T) {
	assert.Equal(t, "watch [file]", watchCmd.Use)
}

func TestWatchCmd_PrintsEachRun(t *testing.T) {
	second := succeededRun()
	second.CleanedLines = 5
	second.RawLines = 6
	watch := &mockWatchService{
		runs: []*domain.Run{succeededRun(), {InputPath: "notes.txt"}, second},
		errs: []error{nil, fmt.Errorf("%w: disk full", domain.ErrWriteFailed), nil},
	}
	cleanup := setupServices(Services{Watch: watch})
	defer cleanup()

	out, err := executeCommand("watch", "notes.txt")

	require.NoError(t, err)
	assert.Contains(t, out, "Watching notes.txt")
	assert.Contains(t, out, "lines: 2 kept of 3")
	assert.Contains(t, out, "writing output for notes.txt")
	assert.Contains(t, out, "lines: 5 kept of 6")
}

func TestWatchCmd_PrintsAdvisories(t *testing.T) {
	run := succeededRun()
	run.Advisories = []string{"json extraction failed: parsing JSON: unexpected EOF"}
	cleanup := setupServices(Services{Watch: &mockWatchService{runs: []*domain.Run{run}}})
	defer cleanup()

	out, err := executeCommand("watch", "data.json")

	require.NoError(t, err)
	assert.Contains(t, out, "Notice: json extraction failed")
}

func TestWatchCmd_FileRemoved(t *testing.T) {
	watch := &mockWatchService{err: fmt.Errorf("notes.txt: %w", domain.ErrNotFound)}
	cleanup := setupServices(Services{Watch: watch})
	defer cleanup()

	_, err := executeCommand("watch", "notes.txt")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "notes.txt does not exist")
}

func TestWatchCmd_RequiresFile(t *testing.T) {
	cleanup := setupServices(Services{Watch: &mockWatchService{}})
	defer cleanup()

	_, err := executeCommand("watch")

	assert.Error(t, err)
}

func TestWatchCmd_NoService(t *testing.T) {
	cleanup := setupServices(Services{})
	defer cleanup()

	_, err := executeCommand("watch", "notes.txt")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "watch service not configured")
}
