package domain

import (
	"path/filepath"
	"strings"
)

// Format identifies how an input file is read before cleaning.
type Format string

// Recognised formats, in dispatch priority order.
const (
	// FormatPDF is a PDF document read page by page.
	FormatPDF Format = "pdf"

	// FormatSpreadsheet is an Excel workbook read sheet by sheet.
	FormatSpreadsheet Format = "spreadsheet"

	// FormatJSON is a JSON document whose string leaves become lines.
	FormatJSON Format = "json"

	// FormatXML is an XML document whose element text and attributes become lines.
	FormatXML Format = "xml"

	// FormatHTML is an HTML document. It is tried as XML first; the lenient
	// HTML parser only runs when switched on.
	FormatHTML Format = "html"

	// FormatText is the plain-text fallback used for everything else, CSV included.
	FormatText Format = "text"
)

// FormatInfo describes a format and the extensions routed to it.
type FormatInfo struct {
	// Format is the format identifier.
	Format Format
	// Name is the human-readable display name.
	Name string
	// Extensions lists lower-case extensions including the leading dot.
	Extensions []string
	// Optional is true when the backing extractor can be switched off.
	Optional bool
	// OffByDefault is true when the extractor only runs once switched on.
	OffByDefault bool
}

// formatTable is ordered by dispatch priority.
var formatTable = []FormatInfo{
	{Format: FormatPDF, Name: "PDF", Extensions: []string{".pdf"}, Optional: true},
	{
		Format:     FormatSpreadsheet,
		Name:       "Spreadsheet",
		Extensions: []string{".xlsx", ".xlsm", ".xltx", ".xltm", ".xls"},
		Optional:   true,
	},
	{Format: FormatJSON, Name: "JSON", Extensions: []string{".json"}, Optional: true},
	{Format: FormatXML, Name: "XML", Extensions: []string{".xml"}, Optional: true},
	{
		Format:       FormatHTML,
		Name:         "HTML",
		Extensions:   []string{".html", ".htm", ".xhtml"},
		Optional:     true,
		OffByDefault: true,
	},
	{Format: FormatText, Name: "Plain text", Extensions: nil, Optional: false},
}

// SupportedFormats returns every format in dispatch priority order.
func SupportedFormats() []FormatInfo {
	out := make([]FormatInfo, len(formatTable))
	copy(out, formatTable)
	return out
}

// OptionalFormats returns the formats backed by a switchable extractor.
func OptionalFormats() []Format {
	var out []Format
	for _, info := range formatTable {
		if info.Optional {
			out = append(out, info.Format)
		}
	}
	return out
}

// DetectFormat returns the format for a path based on its extension.
// Unknown extensions map to FormatText.
func DetectFormat(path string) Format {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return FormatText
	}
	for _, info := range formatTable {
		for _, e := range info.Extensions {
			if e == ext {
				return info.Format
			}
		}
	}
	return FormatText
}

// ParseFormat converts a user-supplied name into a Format.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, info := range formatTable {
		if info.Format == f {
			return f, nil
		}
	}
	return "", ErrUnsupportedType
}

// IsOptional returns true if the format's extractor can be switched off.
func (f Format) IsOptional() bool {
	for _, info := range formatTable {
		if info.Format == f {
			return info.Optional
		}
	}
	return false
}

// String returns the string representation.
func (f Format) String() string {
	return string(f)
}

// Capabilities records which optional extractors are available for a run.
// It is resolved once at startup and handed to the dispatcher.
type Capabilities map[Format]bool

// AllCapabilities returns a Capabilities value with every optional extractor enabled.
func AllCapabilities() Capabilities {
	caps := make(Capabilities)
	for _, f := range OptionalFormats() {
		caps[f] = true
	}
	return caps
}

// DefaultCapabilities returns the flags used when nothing is configured.
// Every optional extractor is on except the ones marked OffByDefault.
func DefaultCapabilities() Capabilities {
	caps := make(Capabilities)
	for _, info := range formatTable {
		if info.Optional {
			caps[info.Format] = !info.OffByDefault
		}
	}
	return caps
}

// Enabled reports whether the extractor for f may be used.
// The plain-text fallback is always enabled; absent entries are disabled.
func (c Capabilities) Enabled(f Format) bool {
	if !f.IsOptional() {
		return true
	}
	return c[f]
}
