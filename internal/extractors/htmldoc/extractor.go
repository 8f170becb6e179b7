// Package htmldoc provides a lenient Extractor for HTML that is not
// well-formed XML.
package htmldoc

import (
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/custodia-labs/tecy/internal/core/domain"
	"github.com/custodia-labs/tecy/internal/core/ports/driven"
	"github.com/custodia-labs/tecy/internal/extractors"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor parses HTML the way browsers do.
type Extractor struct{}

// New creates a new HTML extractor.
func New() *Extractor {
	return &Extractor{}
}

// Name returns the extractor name.
func (e *Extractor) Name() string {
	return "html"
}

// Format returns the format this extractor handles.
func (e *Extractor) Format() domain.Format {
	return domain.FormatHTML
}

// Extract parses the file and visits every element in document order,
// recording its direct text and attribute values. Text that follows a
// child element is recorded where it appears, so nothing is lost to
// inline tags such as <br>.
func (e *Extractor) Extract(ctx context.Context, path string) domain.Outcome {
	if err := ctx.Err(); err != nil {
		return domain.Failed(err)
	}

	f, err := os.Open(path)
	if err != nil {
		return domain.Failed(fmt.Errorf("reading file: %w", err))
	}
	defer f.Close()

	doc, err := html.Parse(f)
	if err != nil {
		return domain.Failedf("parsing HTML: %v", err)
	}

	var lines extractors.ElementLines
	visit(doc, &lines)
	return domain.Ok(lines.Text())
}

func visit(n *html.Node, lines *extractors.ElementLines) {
	if n.Type == html.ElementNode {
		lines.Element(directText(n), attrValues(n)...)
	}
	seenElement := false
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode:
			seenElement = true
			visit(c, lines)
		case html.TextNode:
			if seenElement {
				lines.Element(c.Data)
			}
		default:
			visit(c, lines)
		}
	}
}

// directText returns the text before the first child element.
func directText(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode:
			return sb.String()
		case html.TextNode:
			sb.WriteString(c.Data)
		}
	}
	return sb.String()
}

func attrValues(n *html.Node) []string {
	values := make([]string, len(n.Attr))
	for i, a := range n.Attr {
		values[i] = a.Val
	}
	return values
}
