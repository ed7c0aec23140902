//go:build libgit2

package git

import (
	"context"
	"sort"

	git2go "github.com/libgit2/git2go/v34"

	"github.com/renato0307/arlon/internal/domain"
	"github.com/renato0307/arlon/internal/logging"
	"github.com/renato0307/arlon/internal/ports"
)

// Libgit2Repository implements ports.GitRepository on top of libgit2.
// Only built with the libgit2 build tag since it needs cgo and the C library.
type Libgit2Repository struct {
	repo *git2go.Repository
}

// Verify interface compliance at compile time
var _ ports.GitRepository = (*Libgit2Repository)(nil)

// NewLibgit2Repository opens the repository containing path
func NewLibgit2Repository(path string) (*Libgit2Repository, error) {
	root, err := git2go.Discover(path, false, nil)
	if err != nil {
		return nil, operationFailed("discover repository", err)
	}
	repo, err := git2go.OpenRepository(root)
	if err != nil {
		return nil, operationFailed("open repository", err)
	}
	return &Libgit2Repository{repo: repo}, nil
}

func openLibgit2Repository(path string) (ports.GitRepository, error) {
	return NewLibgit2Repository(path)
}

// CommitsFrom implements CommitReader.CommitsFrom
func (r *Libgit2Repository) CommitsFrom(ctx context.Context, ref domain.Reference) ([]domain.Commit, error) {
	logging.Logger.Debug("Walking commits", "backend", BackendLibgit2, "ref", ref.String())

	oid, err := r.resolve(ref)
	if err != nil {
		return nil, err
	}

	walk, err := r.repo.Walk()
	if err != nil {
		return nil, operationFailed("create revwalk", err)
	}
	defer walk.Free()

	walk.Sorting(git2go.SortTime)
	if err := walk.Push(oid); err != nil {
		return nil, operationFailed("push "+ref.String(), err)
	}

	var commits []domain.Commit
	var walkErr error
	err = walk.Iterate(func(c *git2go.Commit) bool {
		defer c.Free()
		if walkErr = ctx.Err(); walkErr != nil {
			return false
		}
		author := c.Author()
		commit, err := newCommit(c.Id().String(), author.Name, author.Email, c.Committer().When.Unix(), c.Message())
		if err != nil {
			walkErr = err
			return false
		}
		commits = append(commits, commit)
		return true
	})
	if walkErr != nil {
		return nil, walkErr
	}
	if err != nil {
		return nil, operationFailed("walk "+ref.String(), err)
	}

	logging.Logger.Debug("Commits walked", "ref", ref.String(), "count", len(commits))
	return commits, nil
}

// FileChangesBetween implements FileChangeReader.FileChangesBetween
func (r *Libgit2Repository) FileChangesBetween(ctx context.Context, from, to domain.Reference) ([]domain.FileChange, error) {
	logging.Logger.Debug("Diffing trees", "backend", BackendLibgit2, "from", from.String(), "to", to.String())

	fromTree, err := r.tree(from)
	if err != nil {
		return nil, err
	}
	defer fromTree.Free()

	toTree, err := r.tree(to)
	if err != nil {
		return nil, err
	}
	defer toTree.Free()

	opts, err := git2go.DefaultDiffOptions()
	if err != nil {
		return nil, operationFailed("diff options", err)
	}
	opts.Flags |= git2go.DiffIncludeTypeChange

	diff, err := r.repo.DiffTreeToTree(fromTree, toTree, &opts)
	if err != nil {
		return nil, operationFailed("diff trees", err)
	}
	defer func() { _ = diff.Free() }()

	n, err := diff.NumDeltas()
	if err != nil {
		return nil, operationFailed("count deltas", err)
	}

	changes := make([]domain.FileChange, 0, n)
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		delta, err := diff.Delta(i)
		if err != nil {
			return nil, operationFailed("read delta", err)
		}
		if fc, ok := newFileChange(delta.NewFile.Path, delta.OldFile.Path, statusFromDelta(delta.Status)); ok {
			changes = append(changes, fc)
		}
	}

	logging.Logger.Debug("Trees diffed", "from", from.String(), "to", to.String(), "changes", len(changes))
	return changes, nil
}

// ListBranches implements BranchLister.ListBranches
func (r *Libgit2Repository) ListBranches(ctx context.Context) ([]domain.BranchName, error) {
	iter, err := r.repo.NewBranchIterator(git2go.BranchLocal)
	if err != nil {
		return nil, operationFailed("list branches", err)
	}
	defer iter.Free()

	var branches []domain.BranchName
	err = iter.ForEach(func(b *git2go.Branch, _ git2go.BranchType) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		name, err := b.Name()
		if err != nil {
			return err
		}
		branch, err := domain.NewBranchName(name)
		if err != nil {
			logging.Logger.Debug("Skipping branch", "branch", name, "error", err)
			return nil
		}
		branches = append(branches, branch)
		return nil
	})
	if err != nil {
		return nil, operationFailed("list branches", err)
	}

	sort.Slice(branches, func(i, j int) bool {
		return branches[i].String() < branches[j].String()
	})
	return branches, nil
}

// Close implements GitRepository.Close
func (r *Libgit2Repository) Close() error {
	if r.repo != nil {
		r.repo.Free()
		r.repo = nil
	}
	return nil
}

func (r *Libgit2Repository) resolve(ref domain.Reference) (*git2go.Oid, error) {
	branch, ok := ref.Branch()
	if !ok {
		head, err := r.repo.Head()
		if err != nil {
			return nil, operationFailed("resolve HEAD", err)
		}
		defer head.Free()
		return head.Target(), nil
	}

	b, err := r.repo.LookupBranch(branch.String(), git2go.BranchLocal)
	if err != nil {
		if git2go.IsErrorCode(err, git2go.ErrorCodeNotFound) {
			return nil, domain.NewBranchNotFoundError(branch)
		}
		return nil, operationFailed("resolve branch "+branch.String(), err)
	}
	defer b.Free()

	resolved, err := b.Resolve()
	if err != nil {
		return nil, operationFailed("resolve branch "+branch.String(), err)
	}
	defer resolved.Free()
	return resolved.Target(), nil
}

func (r *Libgit2Repository) tree(ref domain.Reference) (*git2go.Tree, error) {
	oid, err := r.resolve(ref)
	if err != nil {
		return nil, err
	}
	commit, err := r.repo.LookupCommit(oid)
	if err != nil {
		return nil, operationFailed("read commit "+ref.String(), err)
	}
	defer commit.Free()

	tree, err := commit.Tree()
	if err != nil {
		return nil, operationFailed("read tree "+ref.String(), err)
	}
	return tree, nil
}

func statusFromDelta(delta git2go.Delta) domain.FileChangeStatus {
	switch delta {
	case git2go.DeltaAdded:
		return domain.StatusAdded
	case git2go.DeltaDeleted:
		return domain.StatusDeleted
	case git2go.DeltaModified:
		return domain.StatusModified
	case git2go.DeltaRenamed:
		return domain.StatusRenamed
	case git2go.DeltaCopied:
		return domain.StatusCopied
	case git2go.DeltaIgnored:
		return domain.StatusIgnored
	case git2go.DeltaUntracked:
		return domain.StatusUntracked
	case git2go.DeltaTypeChange:
		return domain.StatusTypechange
	case git2go.DeltaUnreadable:
		return domain.StatusUnreadable
	case git2go.DeltaConflicted:
		return domain.StatusConflicted
	default:
		return domain.StatusUnmodified
	}
}
