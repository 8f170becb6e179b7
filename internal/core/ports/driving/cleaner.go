package driving

import (
	"context"

	"github.com/custodia-labs/tecy/internal/core/domain"
)

// CleanerService runs the extraction and cleaning pipeline.
type CleanerService interface {
	// Process cleans the file at path and writes the output artifact.
	// The returned run is populated even when an error is returned,
	// as far as processing got.
	Process(ctx context.Context, path string) (*domain.Run, error)

	// CleanText cleans an in-memory text blob line by line without
	// touching the filesystem.
	CleanText(text string) domain.CleanedDocument

	// OutputDir returns the directory artifacts are written to.
	OutputDir() string
}
