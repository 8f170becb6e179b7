package domain

import "fmt"

// OutcomeKind tags the result of a single extraction attempt.
type OutcomeKind int

const (
	// OutcomeNotApplicable means the extractor does not handle the input.
	OutcomeNotApplicable OutcomeKind = iota

	// OutcomeOK means the extractor produced text.
	OutcomeOK

	// OutcomeFailed means the extractor handles the input but could not read it.
	OutcomeFailed
)

// String returns a human-readable representation.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeOK:
		return "ok"
	case OutcomeFailed:
		return "failed"
	default:
		return "not_applicable"
	}
}

// Outcome is the tagged result of an extractor: Ok(text), NotApplicable or Failed(reason).
type Outcome struct {
	// Kind tags the outcome.
	Kind OutcomeKind

	// Text is the extracted blob when Kind is OutcomeOK.
	Text string

	// Encoding is set by the plain-text extractor to the encoding that succeeded.
	Encoding string

	// Reason explains a failure when Kind is OutcomeFailed.
	Reason error
}

// Ok returns a successful outcome carrying text.
func Ok(text string) Outcome {
	return Outcome{Kind: OutcomeOK, Text: text}
}

// NotApplicable returns an outcome signalling the extractor does not apply.
func NotApplicable() Outcome {
	return Outcome{Kind: OutcomeNotApplicable}
}

// Failed returns a failed outcome. The reason always wraps ErrExtractorFailed
// unless it already wraps a more specific domain error.
func Failed(reason error) Outcome {
	if reason == nil {
		reason = ErrExtractorFailed
	}
	return Outcome{Kind: OutcomeFailed, Reason: reason}
}

// Failedf builds a failed outcome wrapping ErrExtractorFailed with a message.
func Failedf(format string, args ...any) Outcome {
	return Failed(fmt.Errorf("%w: %s", ErrExtractorFailed, fmt.Sprintf(format, args...)))
}

// IsOK returns true if the outcome carries text.
func (o Outcome) IsOK() bool {
	return o.Kind == OutcomeOK
}
