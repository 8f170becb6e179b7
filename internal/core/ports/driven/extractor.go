package driven

import (
	"context"

	"github.com/custodia-labs/tecy/internal/core/domain"
)

// Extractor turns one input file into a raw text blob.
// Each extractor handles a single format and reports its result as a
// tagged domain.Outcome; it never returns an error or panics out.
type Extractor interface {
	// Name returns the extractor name for logging and history (e.g., "pdf").
	Name() string

	// Format returns the format this extractor handles.
	Format() domain.Format

	// Extract reads the file at path.
	// It returns NotApplicable when the file is not of its format,
	// Failed when reading or parsing fails, and Ok with the text otherwise.
	Extract(ctx context.Context, path string) domain.Outcome
}
