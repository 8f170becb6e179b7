package services

import (
	"context"

	"github.com/custodia-labs/tecy/internal/core/domain"
	"github.com/custodia-labs/tecy/internal/core/ports/driven"
	"github.com/custodia-labs/tecy/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// DefaultHistoryLimit is used when a caller asks for zero or fewer runs.
const DefaultHistoryLimit = 20

// HistoryService exposes recorded runs.
type HistoryService struct {
	runStore driven.RunStore
}

// NewHistoryService creates a new history service.
func NewHistoryService(runStore driven.RunStore) *HistoryService {
	return &HistoryService{runStore: runStore}
}

// Recent returns up to limit runs, newest first.
func (s *HistoryService) Recent(ctx context.Context, limit int) ([]domain.Run, error) {
	if s.runStore == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return s.runStore.List(ctx, limit)
}

// Get returns a single run by ID.
func (s *HistoryService) Get(ctx context.Context, id string) (*domain.Run, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	if s.runStore == nil {
		return nil, domain.ErrNotFound
	}
	return s.runStore.Get(ctx, id)
}

// Clear removes all recorded runs.
func (s *HistoryService) Clear(ctx context.Context) error {
	if s.runStore == nil {
		return nil
	}
	return s.runStore.Clear(ctx)
}
