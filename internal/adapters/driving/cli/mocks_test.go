package cli

import (
	"context"

	"github.com/custodia-labs/tecy/internal/core/domain"
	"github.com/custodia-labs/tecy/internal/core/ports/driving"
)

// mockCleanerService implements driving.CleanerService for testing.
type mockCleanerService struct {
	run      *domain.Run
	err      error
	lastPath string
}

func (m *mockCleanerService) Process(_ context.Context, path string) (*domain.Run, error) {
	m.lastPath = path
	return m.run, m.err
}

func (m *mockCleanerService) CleanText(_ string) domain.CleanedDocument {
	return domain.CleanedDocument{}
}

func (m *mockCleanerService) OutputDir() string {
	return "/home/test/.tecy"
}

// mockHistoryService implements driving.HistoryService for testing.
type mockHistoryService struct {
	runs      []domain.Run
	run       *domain.Run
	err       error
	lastLimit int
	cleared   bool
}

func (m *mockHistoryService) Recent(_ context.Context, limit int) ([]domain.Run, error) {
	m.lastLimit = limit
	return m.runs, m.err
}

func (m *mockHistoryService) Get(_ context.Context, _ string) (*domain.Run, error) {
	return m.run, m.err
}

func (m *mockHistoryService) Clear(_ context.Context) error {
	if m.err == nil {
		m.cleared = true
	}
	return m.err
}

// mockSettingsService implements driving.SettingsService for testing.
type mockSettingsService struct {
	caps           domain.Capabilities
	historyEnabled bool
	err            error
	lastFormat     domain.Format
	lastEnabled    bool
}

func (m *mockSettingsService) Capabilities() domain.Capabilities {
	return m.caps
}

func (m *mockSettingsService) SetExtractorEnabled(format domain.Format, enabled bool) error {
	m.lastFormat = format
	m.lastEnabled = enabled
	return m.err
}

func (m *mockSettingsService) HistoryEnabled() bool {
	return m.historyEnabled
}

func (m *mockSettingsService) ConfigPath() string {
	return "/home/test/.tecy/config.toml"
}

// mockWatchService implements driving.WatchService for testing.
// It replays the configured runs through the observer.
type mockWatchService struct {
	runs []*domain.Run
	errs []error
	err  error
}

func (m *mockWatchService) Watch(_ context.Context, _ string, observe driving.RunObserver) error {
	for i, run := range m.runs {
		var err error
		if i < len(m.errs) {
			err = m.errs[i]
		}
		observe(run, err)
	}
	return m.err
}

// setupServices swaps in the given services and returns a restore func.
func setupServices(s Services) func() {
	old := Services{
		Cleaner:  cleanerService,
		History:  historyService,
		Settings: settingsService,
		Watch:    watchService,
	}
	SetServices(s)
	return func() {
		SetServices(old)
	}
}
