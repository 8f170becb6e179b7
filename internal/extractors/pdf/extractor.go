// Package pdf provides an Extractor for PDF documents. Text is read page by
// page with a primary engine and, when that yields nothing, from the raw page
// content streams.
package pdf

import (
	"context"
	"fmt"
	"os"
	"strings"

	lpdf "github.com/ledongthuc/pdf"

	"github.com/custodia-labs/tecy/internal/core/domain"
	"github.com/custodia-labs/tecy/internal/core/ports/driven"
	"github.com/custodia-labs/tecy/internal/logger"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Engine reads the text of every page of a PDF file.
type Engine struct {
	Name  string
	Pages func(path string) ([]string, error)
}

// DefaultEngines lists the engines in the order they are tried.
var DefaultEngines = []Engine{
	{Name: "ledongthuc", Pages: plainTextPages},
	{Name: "pdfcpu", Pages: contentStreamPages},
}

// Extractor reads PDF text.
type Extractor struct {
	engines []Engine
}

// New creates a PDF extractor. With no engines given, DefaultEngines is used.
func New(engines ...Engine) *Extractor {
	if len(engines) == 0 {
		engines = DefaultEngines
	}
	return &Extractor{engines: engines}
}

// Name returns the extractor name.
func (e *Extractor) Name() string {
	return "pdf"
}

// Format returns the format this extractor handles.
func (e *Extractor) Format() domain.Format {
	return domain.FormatPDF
}

// Extract returns the page texts joined with "\n". Engines are tried in order
// until one produces non-empty text. A document without any text is Ok with
// empty text when at least one engine could read it.
func (e *Extractor) Extract(ctx context.Context, path string) domain.Outcome {
	if err := ctx.Err(); err != nil {
		return domain.Failed(err)
	}
	if _, err := os.Stat(path); err != nil {
		return domain.Failed(fmt.Errorf("reading file: %w", err))
	}

	var (
		lastErr error
		readOK  bool
	)
	for _, engine := range e.engines {
		pages, err := safePages(engine, path)
		if err != nil {
			logger.Debug("pdf engine %s failed on %s: %v", engine.Name, path, err)
			lastErr = err
			continue
		}
		readOK = true

		text := strings.Join(pages, "\n")
		if strings.TrimSpace(text) != "" {
			logger.Debug("pdf engine %s read %d pages", engine.Name, len(pages))
			return domain.Ok(text)
		}
		logger.Debug("pdf engine %s found no text", engine.Name)
	}

	if readOK {
		return domain.Ok("")
	}
	if lastErr == nil {
		return domain.Failedf("no PDF engine configured")
	}
	return domain.Failedf("%v", lastErr)
}

// safePages runs an engine and turns a panic into an error. Both engines
// panic on some malformed files.
func safePages(engine Engine, path string) (pages []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = fmt.Errorf("%s: panic: %v", engine.Name, r)
		}
	}()
	return engine.Pages(path)
}

// plainTextPages reads each page with ledongthuc/pdf.
func plainTextPages(path string) ([]string, error) {
	f, reader, err := lpdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening pdf: %w", err)
	}
	defer f.Close()

	count := reader.NumPage()
	pages := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i, err)
		}
		pages = append(pages, strings.TrimRight(text, "\n"))
	}
	return pages, nil
}
