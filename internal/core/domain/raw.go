package domain

import "unicode/utf8"

// RawDocument is the text pulled out of an input file by one extractor.
// It is built once per run and discarded after cleaning.
type RawDocument struct {
	// Path is the input file the text was extracted from.
	Path string

	// Format is the format detected from the file extension.
	Format Format

	// Extractor names the strategy that produced Text (e.g., "pdf", "plaintext").
	Extractor string

	// Encoding is the character encoding used by the plain-text fallback.
	// Empty for specialised extractors.
	Encoding string

	// Text is the raw multi-line text blob.
	Text string

	// Advisories collects the non-fatal notices raised while dispatching,
	// such as a disabled or failing extractor.
	Advisories []string
}

// Lines splits Text on line boundaries (see SplitLines).
// A trailing line break does not produce an empty final line.
func (d *RawDocument) Lines() []string {
	return SplitLines(d.Text)
}

// SplitLines splits text on \n, \r\n and \r, and also on the other line
// boundaries recognised by Unicode-aware tools: vertical tab, form feed,
// the file, group and record separators (\x1c to \x1e), NEL (U+0085) and
// the line and paragraph separators (U+2028, U+2029).
// A trailing line break does not produce an empty final line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}

	var lines []string
	start := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !isLineBreak(r) {
			i += size
			continue
		}
		lines = append(lines, text[start:i])
		i += size
		if r == '\r' && i < len(text) && text[i] == '\n' {
			i++
		}
		start = i
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', 0x1c, 0x1d, 0x1e, 0x85, 0x2028, 0x2029:
		return true
	}
	return false
}
