package driven

import "github.com/custodia-labs/tecy/internal/core/domain"

// LineStep rewrites a single raw line. Steps run in a fixed order and each
// one assumes the previous ones already ran.
type LineStep interface {
	// Name returns the step name for logging.
	Name() string

	// Apply returns the rewritten line.
	Apply(line string) string
}

// LineCleaner reduces a raw line to letter-only tokens.
type LineCleaner interface {
	// CleanLine returns the tokens of line.
	// The boolean is false when nothing survives and the line must be dropped.
	CleanLine(line string) (domain.CleanedLine, bool)
}
