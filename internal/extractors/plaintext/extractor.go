// Package plaintext provides the fallback extractor: it decodes the file as
// text, trying a fixed list of character encodings in order.
package plaintext

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/custodia-labs/tecy/internal/core/domain"
	"github.com/custodia-labs/tecy/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// errInvalidBytes is returned by a decoder that cannot represent the input.
var errInvalidBytes = errors.New("invalid byte sequence")

// Encoding is a named decoder tried by the fallback.
type Encoding struct {
	Name   string
	Decode func(data []byte) (string, error)
}

// DefaultEncodings is the fallback order: UTF-8, ISO-8859-1, Windows-1252.
var DefaultEncodings = []Encoding{
	{Name: "utf-8", Decode: decodeUTF8},
	{Name: "latin-1", Decode: charmapDecoder(charmap.ISO8859_1)},
	{Name: "windows-1252", Decode: charmapDecoder(charmap.Windows1252)},
}

// Extractor decodes files as plain text.
type Extractor struct {
	encodings []Encoding
}

// New creates a plain-text extractor.
// With no encodings given, DefaultEncodings is used.
func New(encodings ...Encoding) *Extractor {
	if len(encodings) == 0 {
		encodings = DefaultEncodings
	}
	return &Extractor{encodings: encodings}
}

// Name returns the extractor name.
func (e *Extractor) Name() string {
	return "plaintext"
}

// Format returns the format this extractor handles.
func (e *Extractor) Format() domain.Format {
	return domain.FormatText
}

// Encodings returns the encoding names in the order they are tried.
func (e *Extractor) Encodings() []string {
	names := make([]string, len(e.encodings))
	for i, enc := range e.encodings {
		names[i] = enc.Name
	}
	return names
}

// Extract reads the file and returns the text decoded with the first
// encoding that succeeds. A failing encoding silently moves to the next.
func (e *Extractor) Extract(ctx context.Context, path string) domain.Outcome {
	if err := ctx.Err(); err != nil {
		return domain.Failed(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Failed(fmt.Errorf("reading file: %w", err))
	}

	for _, enc := range e.encodings {
		text, err := enc.Decode(data)
		if err != nil {
			continue
		}
		out := domain.Ok(text)
		out.Encoding = enc.Name
		return out
	}

	return domain.Failed(fmt.Errorf("%w (tried %s)", domain.ErrDecodeFailed, strings.Join(e.Encodings(), ", ")))
}

func decodeUTF8(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", errInvalidBytes
	}
	return string(data), nil
}

// charmapDecoder decodes single-byte encodings strictly: bytes the code
// page leaves undefined fail the attempt instead of becoming U+FFFD.
func charmapDecoder(cm *charmap.Charmap) func([]byte) (string, error) {
	return func(data []byte) (string, error) {
		for _, b := range data {
			if r := cm.DecodeByte(b); r == utf8.RuneError {
				return "", errInvalidBytes
			}
		}
		out, err := decodeWith(cm, data)
		if err != nil {
			return "", err
		}
		return out, nil
	}
}

func decodeWith(enc encoding.Encoding, data []byte) (string, error) {
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
