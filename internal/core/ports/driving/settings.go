package driving

import "github.com/custodia-labs/tecy/internal/core/domain"

// SettingsService manages the persisted extractor capability flags.
type SettingsService interface {
	// Capabilities resolves which optional extractors are enabled.
	// Formats without a stored flag default to enabled.
	Capabilities() domain.Capabilities

	// SetExtractorEnabled stores the flag for an optional format.
	// Returns domain.ErrUnsupportedType for formats that cannot be switched.
	SetExtractorEnabled(format domain.Format, enabled bool) error

	// HistoryEnabled reports whether runs should be recorded.
	HistoryEnabled() bool

	// ConfigPath returns the location of the configuration file.
	ConfigPath() string
}
