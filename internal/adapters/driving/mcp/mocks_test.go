package mcp

import (
	"context"

	"github.com/custodia-labs/tecy/internal/core/domain"
)

// mockCleanerService is a mock implementation of driving.CleanerService.
type mockCleanerService struct {
	run      *domain.Run
	err      error
	doc      domain.CleanedDocument
	lastPath string
	lastText string
}

func (m *mockCleanerService) Process(_ context.Context, path string) (*domain.Run, error) {
	m.lastPath = path
	return m.run, m.err
}

func (m *mockCleanerService) CleanText(text string) domain.CleanedDocument {
	m.lastText = text
	return m.doc
}

func (m *mockCleanerService) OutputDir() string {
	return "/home/test/.tecy"
}

// mockHistoryService is a mock implementation of driving.HistoryService.
type mockHistoryService struct {
	runs []domain.Run
	run  *domain.Run
	err  error
}

func (m *mockHistoryService) Recent(_ context.Context, _ int) ([]domain.Run, error) {
	return m.runs, m.err
}

func (m *mockHistoryService) Get(_ context.Context, _ string) (*domain.Run, error) {
	return m.run, m.err
}

func (m *mockHistoryService) Clear(_ context.Context) error {
	return m.err
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	caps domain.Capabilities
	err  error
}

func (m *mockSettingsService) Capabilities() domain.Capabilities {
	return m.caps
}

func (m *mockSettingsService) SetExtractorEnabled(_ domain.Format, _ bool) error {
	return m.err
}

func (m *mockSettingsService) HistoryEnabled() bool {
	return true
}

func (m *mockSettingsService) ConfigPath() string {
	return "/home/test/.tecy/config.toml"
}
