package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/renato0307/arlon/internal/domain"
	"github.com/renato0307/arlon/internal/logging"
	"github.com/renato0307/arlon/internal/ports"
)

// HistoryService records and lists comparison runs
type HistoryService struct {
	historyRepo ports.HistoryRepository
	now         func() time.Time
}

// NewHistoryService creates a new HistoryService
func NewHistoryService(historyRepo ports.HistoryRepository) *HistoryService {
	return &HistoryService{
		historyRepo: historyRepo,
		now:         time.Now,
	}
}

// Record stores a successful comparison run
func (s *HistoryService) Record(ctx context.Context, kind domain.ComparisonKind, branch, repoPath string, resultCount int) (domain.ComparisonRun, error) {
	run := domain.ComparisonRun{
		Branch:      branch,
		ID:          uuid.New().String(),
		Kind:        kind,
		RanAt:       s.now().UTC(),
		RepoPath:    repoPath,
		ResultCount: resultCount,
	}

	logging.Logger.Debug("Recording comparison run",
		"id", run.ID,
		"kind", run.Kind,
		"branch", run.Branch,
		"result_count", run.ResultCount)

	if err := s.historyRepo.Add(ctx, run); err != nil {
		logging.Logger.Error("Failed to record comparison run", "id", run.ID, "error", err)
		return domain.ComparisonRun{}, fmt.Errorf("failed to record comparison run: %w", err)
	}
	return run, nil
}

// List returns up to limit recorded runs, newest first
func (s *HistoryService) List(ctx context.Context, limit int) ([]HistoryRecord, error) {
	runs, err := s.historyRepo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list comparison runs: %w", err)
	}

	records := make([]HistoryRecord, 0, len(runs))
	for _, run := range runs {
		records = append(records, NewHistoryRecord(run))
	}
	return records, nil
}
