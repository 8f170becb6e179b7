// Package jsondoc provides an Extractor for JSON documents. Every string
// leaf of the document becomes one raw line, in document order.
package jsondoc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/tecy/internal/core/domain"
	"github.com/custodia-labs/tecy/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor collects the string leaves of a JSON document.
type Extractor struct{}

// New creates a new JSON extractor.
func New() *Extractor {
	return &Extractor{}
}

// Name returns the extractor name.
func (e *Extractor) Name() string {
	return "json"
}

// Format returns the format this extractor handles.
func (e *Extractor) Format() domain.Format {
	return domain.FormatJSON
}

// Extract parses the file and returns one line per string leaf.
// Object keys, numbers, booleans and null are ignored.
func (e *Extractor) Extract(ctx context.Context, path string) domain.Outcome {
	if err := ctx.Err(); err != nil {
		return domain.Failed(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Failed(fmt.Errorf("reading file: %w", err))
	}

	// encoding/json replaces bad bytes with U+FFFD; such files are left to
	// the plain-text fallback and its legacy encodings instead.
	if !utf8.Valid(data) {
		return domain.Failedf("parsing JSON: invalid UTF-8")
	}

	leaves, err := StringLeaves(data)
	if err != nil {
		return domain.Failedf("parsing JSON: %v", err)
	}
	return domain.Ok(strings.Join(leaves, "\n"))
}

// StringLeaves walks a JSON document and returns its string values in
// document order. Object members are visited in the order they appear; a
// repeated key replaces the earlier value but keeps the earlier position.
func StringLeaves(data []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	leaves, err := walk(dec)
	if err != nil {
		return nil, err
	}

	// Trailing data after the top-level value is a syntax error.
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after top-level value")
		}
		return nil, err
	}
	return leaves, nil
}

// walk consumes exactly one JSON value from dec and returns its string leaves.
func walk(dec *json.Decoder) ([]string, error) {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}

	switch v := tok.(type) {
	case json.Delim:
		var leaves []string
		switch v {
		case '{':
			leaves, err = walkObject(dec)
		case '[':
			leaves, err = walkArray(dec)
		default:
			err = fmt.Errorf("unexpected delimiter %q", v)
		}
		if err != nil {
			return nil, err
		}
		// Closing delimiter.
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return leaves, nil
	case string:
		return []string{v}, nil
	}
	return nil, nil
}

func walkArray(dec *json.Decoder) ([]string, error) {
	var leaves []string
	for dec.More() {
		item, err := walk(dec)
		if err != nil {
			return nil, err
		}
		leaves = append(leaves, item...)
	}
	return leaves, nil
}

func walkObject(dec *json.Decoder) ([]string, error) {
	var keys []string
	members := make(map[string][]string)
	for dec.More() {
		// Member name; keys are not values.
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := tok.(string)

		value, err := walk(dec)
		if err != nil {
			return nil, err
		}
		if _, seen := members[key]; !seen {
			keys = append(keys, key)
		}
		members[key] = value
	}

	var leaves []string
	for _, k := range keys {
		leaves = append(leaves, members[k]...)
	}
	return leaves, nil
}
