package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tecy/internal/core/domain"
)

func failedRun() domain.Run {
	return domain.Run{
		ID:        "9b1d2e3f-0000-4000-8000-000000000002",
		InputPath: "gone.pdf",
		Format:    domain.FormatPDF,
		Status:    domain.RunFailed,
		Error:     "gone.pdf: not found",
	}
}

func resetLimitFlag() {
	_ = historyCmd.Flags().Set("limit", "20")
}

func TestHistoryCmd_ListsRuns(t *testing.T) {
	history := &mockHistoryService{runs: []domain.Run{*succeededRun(), failedRun()}}
	cleanup := setupServices(Services{History: history})
	defer cleanup()
	defer resetLimitFlag()

	out, err := executeCommand("history")

	require.NoError(t, err)
	assert.Equal(t, 20, history.lastLimit)
	assert.Contains(t, out, "3f2a9c1e  ")
	assert.Contains(t, out, "succeeded  report.final.csv -> /home/test/.tecy/report.final.txt (2 lines)")
	assert.Contains(t, out, "failed  gone.pdf: gone.pdf: not found")
}

func TestHistoryCmd_LimitFlag(t *testing.T) {
	history := &mockHistoryService{}
	cleanup := setupServices(Services{History: history})
	defer cleanup()
	defer resetLimitFlag()

	_, err := executeCommand("history", "--limit", "5")

	require.NoError(t, err)
	assert.Equal(t, 5, history.lastLimit)
}

func TestHistoryCmd_Empty(t *testing.T) {
	cleanup := setupServices(Services{History: &mockHistoryService{}})
	defer cleanup()

	out, err := executeCommand("history")

	require.NoError(t, err)
	assert.Contains(t, out, "No runs recorded.")
}

func TestHistoryCmd_ListError(t *testing.T) {
	cleanup := setupServices(Services{History: &mockHistoryService{err: errors.New("database locked")}})
	defer cleanup()

	_, err := executeCommand("history")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "database locked")
}

func TestHistoryCmd_Show(t *testing.T) {
	run := succeededRun()
	run.Advisories = []string{"xml extraction failed: no root element"}
	cleanup := setupServices(Services{History: &mockHistoryService{run: run}})
	defer cleanup()

	out, err := executeCommand("history", "show", run.ID)

	require.NoError(t, err)
	assert.Contains(t, out, "Run "+run.ID)
	assert.Contains(t, out, "Output:     /home/test/.tecy/report.final.txt")
	assert.Contains(t, out, "Lines:      2 kept of 3")
	assert.Contains(t, out, "Encoding:   utf-8")
	assert.Contains(t, out, "Notice:     xml extraction failed: no root element")
}

func TestHistoryCmd_ShowFailedRun(t *testing.T) {
	run := failedRun()
	cleanup := setupServices(Services{History: &mockHistoryService{run: &run}})
	defer cleanup()

	out, err := executeCommand("history", "show", run.ID)

	require.NoError(t, err)
	assert.Contains(t, out, "Error:      gone.pdf: not found")
	assert.NotContains(t, out, "Output:")
}

func TestHistoryCmd_ShowNotFound(t *testing.T) {
	history := &mockHistoryService{err: fmt.Errorf("run x: %w", domain.ErrNotFound)}
	cleanup := setupServices(Services{History: history})
	defer cleanup()

	_, err := executeCommand("history", "show", "x")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "run x not found")
}

func TestHistoryCmd_Clear(t *testing.T) {
	history := &mockHistoryService{}
	cleanup := setupServices(Services{History: history})
	defer cleanup()

	out, err := executeCommand("history", "clear")

	require.NoError(t, err)
	assert.True(t, history.cleared)
	assert.Contains(t, out, "History cleared.")
}

func TestHistoryCmd_NoService(t *testing.T) {
	cleanup := setupServices(Services{})
	defer cleanup()

	for _, args := range [][]string{{"history"}, {"history", "show", "x"}, {"history", "clear"}} {
		_, err := executeCommand(args...)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "history service not configured")
	}
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "3f2a9c1e", shortID("3f2a9c1e-0000-4000-8000-000000000001"))
	assert.Equal(t, "abc", shortID("abc"))
	assert.Equal(t, "", shortID(""))
}
