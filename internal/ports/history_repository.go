package ports

import (
	"context"

	"github.com/renato0307/arlon/internal/domain"
)

// HistoryReader reads recorded comparison runs
type HistoryReader interface {
	// List returns the most recent runs first. A limit of 0 or less returns all runs.
	List(ctx context.Context, limit int) ([]domain.ComparisonRun, error)
}

// HistoryWriter records comparison runs
type HistoryWriter interface {
	Add(ctx context.Context, run domain.ComparisonRun) error
}

// HistoryRepository is the composite interface
type HistoryRepository interface {
	HistoryReader
	HistoryWriter
	Close() error
}
