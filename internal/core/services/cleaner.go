package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/tecy/internal/core/domain"
	"github.com/custodia-labs/tecy/internal/core/ports/driven"
	"github.com/custodia-labs/tecy/internal/core/ports/driving"
	"github.com/custodia-labs/tecy/internal/logger"
)

// Ensure CleanerService implements the interface.
var _ driving.CleanerService = (*CleanerService)(nil)

// CleanerService drives a run: dispatch, split, clean, join, write, record.
type CleanerService struct {
	dispatcher *Dispatcher
	cleaner    driven.LineCleaner
	writer     driven.ArtifactWriter
	runStore   driven.RunStore
	now        func() time.Time
}

// NewCleanerService creates a new cleaner service.
// runStore may be nil, in which case runs are not recorded.
func NewCleanerService(
	dispatcher *Dispatcher,
	cleaner driven.LineCleaner,
	writer driven.ArtifactWriter,
	runStore driven.RunStore,
) *CleanerService {
	return &CleanerService{
		dispatcher: dispatcher,
		cleaner:    cleaner,
		writer:     writer,
		runStore:   runStore,
		now:        time.Now,
	}
}

// Process cleans the file at path and writes <output dir>/<base>.txt.
func (s *CleanerService) Process(ctx context.Context, path string) (*domain.Run, error) {
	run := &domain.Run{
		ID:        uuid.New().String(),
		InputPath: path,
		Format:    domain.DetectFormat(path),
		Status:    domain.RunFailed,
		StartedAt: s.now(),
	}

	err := s.process(ctx, path, run)
	run.Duration = s.now().Sub(run.StartedAt)
	if err != nil {
		run.Error = err.Error()
	} else {
		run.Status = domain.RunSucceeded
	}

	s.record(ctx, run)
	return run, err
}

func (s *CleanerService) process(ctx context.Context, path string, run *domain.Run) error {
	if path == "" {
		return domain.ErrInvalidInput
	}
	if s.dispatcher == nil || s.cleaner == nil || s.writer == nil {
		return errors.New("cleaner service not configured")
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s: %w", path, domain.ErrNotFound)
		}
		return fmt.Errorf("checking %s: %w", path, err)
	}

	raw, err := s.dispatcher.Extract(ctx, path)
	if raw != nil {
		run.Advisories = raw.Advisories
	}
	if err != nil {
		return err
	}
	run.Extractor = raw.Extractor
	run.Encoding = raw.Encoding

	doc := s.clean(raw.Lines())
	run.RawLines = doc.SourceLines
	run.CleanedLines = doc.Len()

	logger.Section("Cleaning")
	logger.Debug("Raw lines: %d, kept: %d, dropped: %d", doc.SourceLines, doc.Len(), doc.Dropped())

	outPath, err := s.writer.Write(ctx, domain.OutputName(path), []byte(doc.String()))
	if err != nil {
		return err
	}
	run.OutputPath = outPath

	logger.Info("Wrote %s", outPath)
	return nil
}

// CleanText cleans a text blob line by line without touching the filesystem.
func (s *CleanerService) CleanText(text string) domain.CleanedDocument {
	return s.clean(domain.SplitLines(text))
}

// OutputDir returns the directory artifacts are written to.
func (s *CleanerService) OutputDir() string {
	if s.writer == nil {
		return ""
	}
	return s.writer.Dir()
}

func (s *CleanerService) clean(lines []string) domain.CleanedDocument {
	doc := domain.CleanedDocument{SourceLines: len(lines)}
	if s.cleaner == nil {
		return doc
	}
	for _, line := range lines {
		if tokens, ok := s.cleaner.CleanLine(line); ok {
			doc.Lines = append(doc.Lines, tokens)
		}
	}
	return doc
}

// record stores the run. History failures never fail the run.
func (s *CleanerService) record(ctx context.Context, run *domain.Run) {
	if s.runStore == nil {
		return
	}
	if err := s.runStore.Save(ctx, *run); err != nil {
		logger.Warn("Failed to record run %s: %v", run.ID, err)
	}
}
