package extractors

import "strings"

// ElementLines collects the raw lines of a markup tree. For each element,
// visited in document order, the direct text comes first and then the
// attribute values in attribute order.
type ElementLines struct {
	lines []string
}

// Element records one element. Direct text is trimmed and skipped when it
// is only whitespace; attribute values are kept as they are.
func (c *ElementLines) Element(directText string, attrValues ...string) {
	if text := strings.TrimSpace(directText); text != "" {
		c.lines = append(c.lines, text)
	}
	c.lines = append(c.lines, attrValues...)
}

// Lines returns the collected lines.
func (c *ElementLines) Lines() []string {
	return c.lines
}

// Text returns the collected lines joined with "\n".
func (c *ElementLines) Text() string {
	return strings.Join(c.lines, "\n")
}
