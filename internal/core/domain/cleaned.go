package domain

import "strings"

// TokenSeparator joins the tokens of a cleaned line in the output file.
const TokenSeparator = ":"

// CleanedLine is an ordered, non-empty sequence of letter-only tokens.
// Lines that clean to zero tokens are dropped, never represented.
type CleanedLine []string

// String joins the tokens with TokenSeparator.
func (l CleanedLine) String() string {
	return strings.Join(l, TokenSeparator)
}

// CleanedDocument is the ordered list of cleaned lines written for a run.
type CleanedDocument struct {
	// Lines holds the surviving lines in input order.
	Lines []CleanedLine

	// SourceLines is the number of raw lines that were cleaned.
	SourceLines int
}

// Len returns the number of cleaned lines.
func (d CleanedDocument) Len() int {
	return len(d.Lines)
}

// Dropped returns how many raw lines cleaned to nothing.
func (d CleanedDocument) Dropped() int {
	return d.SourceLines - len(d.Lines)
}

// String serialises the document: one line per cleaned line, joined by \n,
// with no trailing newline.
func (d CleanedDocument) String() string {
	var sb strings.Builder
	for i, line := range d.Lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(line.String())
	}
	return sb.String()
}
