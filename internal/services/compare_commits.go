package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/renato0307/arlon/internal/domain"
	"github.com/renato0307/arlon/internal/logging"
	"github.com/renato0307/arlon/internal/ports"
)

// CompareCommitsService finds the commits on HEAD that a branch does not have
type CompareCommitsService struct {
	commitReader ports.CommitReader
}

// NewCompareCommitsService creates a new CompareCommitsService
func NewCompareCommitsService(commitReader ports.CommitReader) *CompareCommitsService {
	return &CompareCommitsService{
		commitReader: commitReader,
	}
}

// Execute validates rawBranch and returns the commits reachable from HEAD but
// not from the branch, newest first
func (s *CompareCommitsService) Execute(ctx context.Context, rawBranch string) ([]CommitRecord, error) {
	branch, err := domain.NewBranchName(rawBranch)
	if err != nil {
		logging.Logger.Debug("Rejected branch name", "branch", rawBranch, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidBranchName, err)
	}

	logging.Logger.Info("Comparing commits", "branch", branch.String())

	// HEAD and branch walks are independent
	var headCommits, branchCommits []domain.Commit
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		commits, err := s.commitReader.CommitsFrom(gctx, domain.HeadReference())
		if err != nil {
			return err
		}
		headCommits = commits
		return nil
	})

	g.Go(func() error {
		commits, err := s.commitReader.CommitsFrom(gctx, domain.BranchReference(branch))
		if err != nil {
			return err
		}
		branchCommits = commits
		return nil
	})

	if err := g.Wait(); err != nil {
		logging.Logger.Error("Failed to read commits", "branch", branch.String(), "error", err)
		return nil, fmt.Errorf("%w: %w", ErrRepository, err)
	}

	missing := domain.CommitsNotInBranch(headCommits, branchCommits)

	logging.Logger.Debug("Commits compared",
		"branch", branch.String(),
		"head_commits", len(headCommits),
		"branch_commits", len(branchCommits),
		"not_in_branch", len(missing))

	records := make([]CommitRecord, 0, len(missing))
	for _, c := range missing {
		records = append(records, NewCommitRecord(c))
	}
	return records, nil
}
