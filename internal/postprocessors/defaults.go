package postprocessors

import "github.com/custodia-labs/tecy/internal/core/domain"

// Default returns the line normaliser with its steps in the required order:
// compose and trim, strip URLs, strip digits, keep letters only.
// Reordering breaks cleaning; URLs in particular must go before the letter filter.
func Default() *Pipeline {
	return NewPipeline(
		ComposeStep{},
		URLStep{},
		DigitStep{},
		LetterStep{},
	)
}

var defaultPipeline = Default()

// CleanLine normalises a single line with the default pipeline.
func CleanLine(line string) (domain.CleanedLine, bool) {
	return defaultPipeline.CleanLine(line)
}
