package ports

import (
	"context"

	"github.com/renato0307/arlon/internal/domain"
)

// CommitReader lists commits reachable from a reference
type CommitReader interface {
	// CommitsFrom walks history backwards from ref, newest first.
	// Returns an error matching domain.ErrBranchNotFound when ref names a missing branch.
	CommitsFrom(ctx context.Context, ref domain.Reference) ([]domain.Commit, error)
}

// FileChangeReader diffs the trees of two references
type FileChangeReader interface {
	// FileChangesBetween returns one change per path going from the tree of
	// from to the tree of to. Deleted paths are reported with their old name.
	FileChangesBetween(ctx context.Context, from, to domain.Reference) ([]domain.FileChange, error)
}

// BranchLister lists local branches
type BranchLister interface {
	ListBranches(ctx context.Context) ([]domain.BranchName, error)
}

// GitRepository is the composite interface
type GitRepository interface {
	BranchLister
	CommitReader
	FileChangeReader
	Close() error
}
