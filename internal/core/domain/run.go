package domain

import (
	"path/filepath"
	"strings"
	"time"
)

// OutputExtension is the extension of every output artifact.
const OutputExtension = ".txt"

// RunStatus is the final state of a pipeline invocation.
type RunStatus string

const (
	// RunSucceeded indicates the output artifact was written.
	RunSucceeded RunStatus = "succeeded"

	// RunFailed indicates the run ended without output.
	RunFailed RunStatus = "failed"
)

// Run records one invocation of the cleaning pipeline.
type Run struct {
	// ID is the unique identifier for the run.
	ID string

	// InputPath is the file that was processed.
	InputPath string

	// OutputPath is the artifact written. Empty if the run failed before writing.
	OutputPath string

	// Format is the format detected from the input extension.
	Format Format

	// Extractor names the strategy that produced the raw text.
	Extractor string

	// Encoding is set when the plain-text fallback produced the raw text.
	Encoding string

	// RawLines is the number of lines in the raw document.
	RawLines int

	// CleanedLines is the number of lines written.
	CleanedLines int

	// Status is the final state.
	Status RunStatus

	// Error holds the failure message for failed runs.
	Error string

	// Advisories repeats the dispatcher notices raised during the run.
	Advisories []string

	// StartedAt is when processing began.
	StartedAt time.Time

	// Duration is how long the run took.
	Duration time.Duration
}

// Succeeded returns true if the run wrote its artifact.
func (r *Run) Succeeded() bool {
	return r.Status == RunSucceeded
}

// OutputName derives the artifact file name from an input path:
// the base name with its last extension replaced by ".txt".
// "report.final.csv" becomes "report.final.txt".
func OutputName(inputPath string) string {
	base := filepath.Base(inputPath)
	ext := filepath.Ext(base)
	if ext != "" && ext != base {
		base = strings.TrimSuffix(base, ext)
	}
	return base + OutputExtension
}
