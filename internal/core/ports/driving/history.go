package driving

import (
	"context"

	"github.com/custodia-labs/tecy/internal/core/domain"
)

// HistoryService exposes previously recorded runs.
type HistoryService interface {
	// Recent returns up to limit runs, newest first.
	Recent(ctx context.Context, limit int) ([]domain.Run, error)

	// Get returns a single run by ID.
	Get(ctx context.Context, id string) (*domain.Run, error)

	// Clear removes all recorded runs.
	Clear(ctx context.Context) error
}
