package services

import (
	"context"
	"fmt"

	"github.com/renato0307/arlon/internal/domain"
	"github.com/renato0307/arlon/internal/logging"
	"github.com/renato0307/arlon/internal/ports"
)

// CompareFilesService lists the file changes between a branch and HEAD
type CompareFilesService struct {
	changeReader ports.FileChangeReader
}

// NewCompareFilesService creates a new CompareFilesService
func NewCompareFilesService(changeReader ports.FileChangeReader) *CompareFilesService {
	return &CompareFilesService{
		changeReader: changeReader,
	}
}

// Execute validates rawBranch and returns the changes going from the branch tip
// tree to the HEAD tree
func (s *CompareFilesService) Execute(ctx context.Context, rawBranch string) ([]FileRecord, error) {
	branch, err := domain.NewBranchName(rawBranch)
	if err != nil {
		logging.Logger.Debug("Rejected branch name", "branch", rawBranch, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidBranchName, err)
	}

	logging.Logger.Info("Comparing files", "branch", branch.String())

	changes, err := s.changeReader.FileChangesBetween(ctx, domain.BranchReference(branch), domain.HeadReference())
	if err != nil {
		logging.Logger.Error("Failed to diff trees", "branch", branch.String(), "error", err)
		return nil, fmt.Errorf("%w: %w", ErrRepository, err)
	}

	records := make([]FileRecord, 0, len(changes))
	for _, fc := range changes {
		records = append(records, NewFileRecord(fc))
	}

	logging.Logger.Debug("Files compared", "branch", branch.String(), "changes", len(records))
	return records, nil
}
