package services

import (
	"github.com/custodia-labs/tecy/internal/core/domain"
	"github.com/custodia-labs/tecy/internal/core/ports/driven"
	"github.com/custodia-labs/tecy/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyExtractorPrefix = "extractors."
	keyHistoryEnabled  = "history.enabled"
)

// SettingsService manages extractor capability flags.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// ExtractorKey returns the config key holding the flag for a format.
func ExtractorKey(format domain.Format) string {
	return keyExtractorPrefix + format.String()
}

// Capabilities resolves the flag of every optional extractor.
// Missing or non-boolean values keep the format's default.
func (s *SettingsService) Capabilities() domain.Capabilities {
	caps := domain.DefaultCapabilities()
	if s.configStore == nil {
		return caps
	}
	for _, f := range domain.OptionalFormats() {
		if enabled, ok := s.configStore.GetBool(ExtractorKey(f)); ok {
			caps[f] = enabled
		}
	}
	return caps
}

// SetExtractorEnabled persists the flag for an optional format.
func (s *SettingsService) SetExtractorEnabled(format domain.Format, enabled bool) error {
	if !format.IsOptional() {
		return domain.ErrUnsupportedType
	}
	if s.configStore == nil {
		return domain.ErrInvalidInput
	}
	return s.configStore.Set(ExtractorKey(format), enabled)
}

// HistoryEnabled reports whether runs should be recorded. Defaults to true.
func (s *SettingsService) HistoryEnabled() bool {
	if s.configStore == nil {
		return true
	}
	if enabled, ok := s.configStore.GetBool(keyHistoryEnabled); ok {
		return enabled
	}
	return true
}

// ConfigPath returns the location of the configuration file.
func (s *SettingsService) ConfigPath() string {
	if s.configStore == nil {
		return ""
	}
	return s.configStore.Path()
}
