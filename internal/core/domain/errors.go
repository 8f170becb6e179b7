package domain

import "errors"

// Domain errors represent pipeline failures.
// Only ErrNotFound, ErrDecodeFailed and ErrWriteFailed end a run; the
// extractor errors are converted into a fallback to the next strategy.
var (
	// ErrNotFound indicates the input file (or a stored run) does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown format or extractor name.
	ErrUnsupportedType = errors.New("unsupported type")

	// Extraction Errors.

	// ErrExtractorFailed indicates a format-specific extractor could not
	// produce text. The dispatcher falls through to the next strategy.
	ErrExtractorFailed = errors.New("extractor failed")

	// ErrCapabilityUnavailable indicates an extractor was disabled at startup.
	// It is handled exactly like ErrExtractorFailed.
	ErrCapabilityUnavailable = errors.New("capability unavailable")

	// ErrDecodeFailed indicates no encoding in the fallback list could decode the file.
	ErrDecodeFailed = errors.New("could not decode file with any known encoding")

	// Output Errors.

	// ErrWriteFailed indicates the output artifact could not be written.
	ErrWriteFailed = errors.New("write failed")
)
