package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/tecy/internal/core/domain"
	"github.com/custodia-labs/tecy/internal/core/ports/driven"
	"github.com/custodia-labs/tecy/internal/logger"
)

// routes lists, per detected format, the extractor formats to try in order.
// HTML is attempted as XML first; the lenient HTML parser is opt-in.
var routes = map[domain.Format][]domain.Format{
	domain.FormatPDF:         {domain.FormatPDF},
	domain.FormatSpreadsheet: {domain.FormatSpreadsheet},
	domain.FormatJSON:        {domain.FormatJSON},
	domain.FormatXML:         {domain.FormatXML},
	domain.FormatHTML:        {domain.FormatXML, domain.FormatHTML},
}

// Dispatcher selects extractors by file extension and falls back through
// plain-text decoding when no specialised extractor produced text.
type Dispatcher struct {
	extractors map[domain.Format]driven.Extractor
	fallback   driven.Extractor
	caps       domain.Capabilities
}

// NewDispatcher creates a dispatcher.
// caps decides which optional extractors may run; it is resolved once at startup.
// A nil caps uses domain.DefaultCapabilities.
// fallback is the plain-text extractor and always runs last.
func NewDispatcher(caps domain.Capabilities, fallback driven.Extractor, extractors ...driven.Extractor) *Dispatcher {
	if caps == nil {
		caps = domain.DefaultCapabilities()
	}
	byFormat := make(map[domain.Format]driven.Extractor, len(extractors))
	for _, ex := range extractors {
		byFormat[ex.Format()] = ex
	}
	return &Dispatcher{
		extractors: byFormat,
		fallback:   fallback,
		caps:       caps,
	}
}

// Capabilities returns the capability flags the dispatcher was built with.
func (d *Dispatcher) Capabilities() domain.Capabilities {
	return d.caps
}

// Extract returns the raw document for path.
// Specialised extractor failures are swallowed and recorded as advisories;
// only a failure of the plain-text fallback is returned as an error.
func (d *Dispatcher) Extract(ctx context.Context, path string) (*domain.RawDocument, error) {
	if path == "" {
		return nil, domain.ErrInvalidInput
	}

	format := domain.DetectFormat(path)
	raw := &domain.RawDocument{
		Path:   path,
		Format: format,
	}

	logger.Section("Extraction")
	logger.Debug("Path: %s", path)
	logger.Debug("Detected format: %s", format)

	route := routes[format]
	for i, target := range route {
		ex, err := d.available(target)
		if err != nil {
			logger.Debug("%s: %v", target, err)
			// Only the primary extractor of a route is worth a notice.
			if i == 0 {
				d.advise(raw, "%s support unavailable, falling back to %s", target, d.nextStep(route[1:]))
			}
			continue
		}

		logger.Debug("Trying %s extractor", ex.Name())
		out := attempt(ctx, ex, path)

		switch out.Kind {
		case domain.OutcomeOK:
			logger.Info("Extracted with %s", ex.Name())
			raw.Extractor = ex.Name()
			raw.Text = out.Text
			return raw, nil
		case domain.OutcomeFailed:
			d.advise(raw, "%s extraction failed: %v", ex.Name(), out.Reason)
		default:
			logger.Debug("%s extractor not applicable", ex.Name())
		}
	}

	if d.fallback == nil {
		return raw, fmt.Errorf("reading %s: %w", path, domain.ErrDecodeFailed)
	}

	logger.Debug("Using %s fallback", d.fallback.Name())
	out := attempt(ctx, d.fallback, path)
	if !out.IsOK() {
		reason := out.Reason
		if reason == nil {
			reason = domain.ErrDecodeFailed
		}
		return raw, fmt.Errorf("reading %s: %w", path, reason)
	}

	raw.Extractor = d.fallback.Name()
	raw.Encoding = out.Encoding
	raw.Text = out.Text
	logger.Info("Decoded as %s", out.Encoding)
	return raw, nil
}

// available returns the extractor for format, or ErrCapabilityUnavailable
// when it is switched off or was never registered.
func (d *Dispatcher) available(format domain.Format) (driven.Extractor, error) {
	ex, ok := d.extractors[format]
	if !ok || !d.caps.Enabled(format) {
		return nil, fmt.Errorf("%s extractor: %w", format, domain.ErrCapabilityUnavailable)
	}
	return ex, nil
}

// nextStep names what runs after a skipped extractor.
func (d *Dispatcher) nextStep(rest []domain.Format) string {
	for _, f := range rest {
		if _, err := d.available(f); err == nil {
			return f.String()
		}
	}
	return "plain text"
}

// advise records a non-fatal notice on the document and logs it.
func (d *Dispatcher) advise(raw *domain.RawDocument, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	raw.Advisories = append(raw.Advisories, msg)
	logger.Warn("%s", msg)
}

// attempt runs one extractor, converting a panic into a failed outcome.
func attempt(ctx context.Context, ex driven.Extractor, path string) (out domain.Outcome) {
	defer logger.Timed(ex.Name() + " extractor")()
	defer func() {
		if r := recover(); r != nil {
			out = domain.Failedf("%s extractor panicked: %v", ex.Name(), r)
		}
	}()
	return ex.Extract(ctx, path)
}
