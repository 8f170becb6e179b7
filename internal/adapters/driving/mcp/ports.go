package mcp

import (
	"github.com/custodia-labs/tecy/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Cleaner runs the extraction and cleaning pipeline.
	Cleaner driving.CleanerService

	// History lists recorded runs.
	History driving.HistoryService

	// Settings reports extractor availability.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Cleaner == nil {
		return ErrMissingCleanerService
	}
	// History and Settings are optional
	return nil
}
