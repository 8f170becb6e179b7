package postprocessors

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/custodia-labs/tecy/internal/core/ports/driven"
)

// Ensure steps implement the interface.
var (
	_ driven.LineStep = ComposeStep{}
	_ driven.LineStep = URLStep{}
	_ driven.LineStep = DigitStep{}
	_ driven.LineStep = LetterStep{}
)

// ComposeStep normalises a line to NFC and trims surrounding whitespace.
type ComposeStep struct{}

// Name returns the step name.
func (ComposeStep) Name() string { return "compose" }

// Apply composes the line and trims it.
func (ComposeStep) Apply(line string) string {
	return strings.TrimSpace(norm.NFC.String(line))
}

// urlPattern matches http://, https:// or www. followed by non-space runes.
var urlPattern = regexp.MustCompile(`(?:https?://|www\.)[^\s\p{Z}]+`)

// URLStep replaces URL-like runs with a single space.
// It must run before LetterStep, which would otherwise leave URL letters behind.
type URLStep struct{}

// Name returns the step name.
func (URLStep) Name() string { return "urls" }

// Apply removes URLs.
func (URLStep) Apply(line string) string {
	return urlPattern.ReplaceAllString(line, " ")
}

// DigitStep replaces every decimal digit with a space.
type DigitStep struct{}

// Name returns the step name.
func (DigitStep) Name() string { return "digits" }

// Apply removes digits.
func (DigitStep) Apply(line string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return ' '
		}
		return r
	}, line)
}

// accentedLetters are the non-ASCII letters kept by LetterStep.
const accentedLetters = "ÁÉÍÓÚÜÑáéíóúüñ"

// LetterStep replaces every rune that is neither an ASCII letter, one of
// the Spanish accented letters, nor whitespace with a space.
type LetterStep struct{}

// Name returns the step name.
func (LetterStep) Name() string { return "letters" }

// Apply keeps letters and whitespace only.
func (LetterStep) Apply(line string) string {
	return strings.Map(func(r rune) rune {
		if isKeptLetter(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, line)
}

func isKeptLetter(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	case r < 0x80:
		return false
	default:
		return strings.ContainsRune(accentedLetters, r)
	}
}
