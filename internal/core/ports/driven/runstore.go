package driven

import (
	"context"

	"github.com/custodia-labs/tecy/internal/core/domain"
)

// RunStore persists the history of pipeline runs.
type RunStore interface {
	// Save stores a run record.
	Save(ctx context.Context, run domain.Run) error

	// Get retrieves a run by ID.
	// Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, id string) (*domain.Run, error)

	// List returns the most recent runs first, at most limit entries.
	// A limit of zero or less returns every run.
	List(ctx context.Context, limit int) ([]domain.Run, error)

	// Clear removes every stored run.
	Clear(ctx context.Context) error
}
