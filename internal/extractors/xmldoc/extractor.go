// Package xmldoc provides an Extractor for XML documents.
package xmldoc

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/custodia-labs/tecy/internal/core/domain"
	"github.com/custodia-labs/tecy/internal/core/ports/driven"
	"github.com/custodia-labs/tecy/internal/extractors"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor reads well-formed XML. It is also tried first for HTML files.
type Extractor struct{}

// New creates a new XML extractor.
func New() *Extractor {
	return &Extractor{}
}

// Name returns the extractor name.
func (e *Extractor) Name() string {
	return "xml"
}

// Format returns the format this extractor handles.
func (e *Extractor) Format() domain.Format {
	return domain.FormatXML
}

// Extract parses the file and visits every element in document order.
func (e *Extractor) Extract(ctx context.Context, path string) domain.Outcome {
	if err := ctx.Err(); err != nil {
		return domain.Failed(err)
	}

	f, err := os.Open(path)
	if err != nil {
		return domain.Failed(fmt.Errorf("reading file: %w", err))
	}
	defer f.Close()

	doc, err := xmlquery.Parse(f)
	if err != nil {
		return domain.Failedf("parsing XML: %v", err)
	}
	if root := firstElement(doc); root == nil {
		return domain.Failedf("parsing XML: no root element")
	}

	var lines extractors.ElementLines
	visit(doc, &lines)
	return domain.Ok(lines.Text())
}

// visit walks n in pre-order and records every element.
func visit(n *xmlquery.Node, lines *extractors.ElementLines) {
	if n.Type == xmlquery.ElementNode {
		lines.Element(directText(n), attrValues(n)...)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		visit(c, lines)
	}
}

// directText returns the character data before the first child element.
// Comments and processing instructions do not interrupt it.
func directText(n *xmlquery.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case xmlquery.ElementNode:
			return sb.String()
		case xmlquery.TextNode, xmlquery.CharDataNode:
			sb.WriteString(c.Data)
		}
	}
	return sb.String()
}

// attrValues returns attribute values in order, without namespace declarations.
func attrValues(n *xmlquery.Node) []string {
	values := make([]string, 0, len(n.Attr))
	for _, a := range n.Attr {
		if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
			continue
		}
		values = append(values, a.Value)
	}
	return values
}

func firstElement(doc *xmlquery.Node) *xmlquery.Node {
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			return c
		}
	}
	return nil
}
