package git

import (
	"context"
	"errors"
	"sort"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/filemode"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/utils/merkletrie"

	"github.com/renato0307/arlon/internal/domain"
	"github.com/renato0307/arlon/internal/logging"
	"github.com/renato0307/arlon/internal/ports"
)

// GoGitRepository implements ports.GitRepository with the pure Go git
// implementation. It is the default backend.
type GoGitRepository struct {
	repo *gogit.Repository
}

// Verify interface compliance at compile time
var _ ports.GitRepository = (*GoGitRepository)(nil)

// NewGoGitRepository opens the repository containing path
func NewGoGitRepository(path string) (*GoGitRepository, error) {
	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, operationFailed("open repository", err)
	}
	return &GoGitRepository{repo: repo}, nil
}

// CommitsFrom implements CommitReader.CommitsFrom
func (r *GoGitRepository) CommitsFrom(ctx context.Context, ref domain.Reference) ([]domain.Commit, error) {
	logging.Logger.Debug("Walking commits", "backend", BackendGoGit, "ref", ref.String())

	hash, err := r.resolve(ref)
	if err != nil {
		return nil, err
	}

	iter, err := r.repo.Log(&gogit.LogOptions{From: hash, Order: gogit.LogOrderCommitterTime})
	if err != nil {
		return nil, operationFailed("log "+ref.String(), err)
	}
	defer iter.Close()

	var commits []domain.Commit
	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		commit, err := newCommit(c.Hash.String(), c.Author.Name, c.Author.Email, c.Committer.When.Unix(), c.Message)
		if err != nil {
			return err
		}
		commits = append(commits, commit)
		return nil
	})
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	if err != nil {
		if errors.Is(err, domain.ErrInvalidData) {
			return nil, err
		}
		return nil, operationFailed("walk "+ref.String(), err)
	}

	logging.Logger.Debug("Commits walked", "ref", ref.String(), "count", len(commits))
	return commits, nil
}

// FileChangesBetween implements FileChangeReader.FileChangesBetween
func (r *GoGitRepository) FileChangesBetween(ctx context.Context, from, to domain.Reference) ([]domain.FileChange, error) {
	logging.Logger.Debug("Diffing trees", "backend", BackendGoGit, "from", from.String(), "to", to.String())

	fromTree, err := r.tree(from)
	if err != nil {
		return nil, err
	}
	toTree, err := r.tree(to)
	if err != nil {
		return nil, err
	}

	changes, err := object.DiffTreeWithOptions(ctx, fromTree, toTree, &object.DiffTreeOptions{})
	if err != nil {
		return nil, operationFailed("diff trees", err)
	}

	result := make([]domain.FileChange, 0, len(changes))
	for _, change := range changes {
		action, err := change.Action()
		if err != nil {
			return nil, operationFailed("classify change", err)
		}
		status := statusFromAction(action)
		if action == merkletrie.Modify && entryKind(change.From.TreeEntry.Mode) != entryKind(change.To.TreeEntry.Mode) {
			status = domain.StatusTypechange
		}
		fc, ok := newFileChange(change.To.Name, change.From.Name, status)
		if ok {
			result = append(result, fc)
		}
	}

	// Match git's path ordering regardless of how the merkle trie walked
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Path().String() < result[j].Path().String()
	})

	logging.Logger.Debug("Trees diffed", "from", from.String(), "to", to.String(), "changes", len(result))
	return result, nil
}

// ListBranches implements BranchLister.ListBranches
func (r *GoGitRepository) ListBranches(ctx context.Context) ([]domain.BranchName, error) {
	iter, err := r.repo.Branches()
	if err != nil {
		return nil, operationFailed("list branches", err)
	}
	defer iter.Close()

	var branches []domain.BranchName
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		branch, err := domain.NewBranchName(ref.Name().Short())
		if err != nil {
			logging.Logger.Debug("Skipping branch", "ref", ref.Name().String(), "error", err)
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
func (r *GoGitRepository) Close() error {
	return nil
}

// resolve returns the commit id ref points at
func (r *GoGitRepository) resolve(ref domain.Reference) (plumbing.Hash, error) {
	branch, ok := ref.Branch()
	if !ok {
		head, err := r.repo.Head()
		if err != nil {
			return plumbing.ZeroHash, operationFailed("resolve HEAD", err)
		}
		return head.Hash(), nil
	}

	branchRef, err := r.repo.Reference(plumbing.NewBranchReferenceName(branch.String()), true)
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return plumbing.ZeroHash, domain.NewBranchNotFoundError(branch)
	}
	if err != nil {
		return plumbing.ZeroHash, operationFailed("resolve branch "+branch.String(), err)
	}
	return branchRef.Hash(), nil
}

func (r *GoGitRepository) tree(ref domain.Reference) (*object.Tree, error) {
	hash, err := r.resolve(ref)
	if err != nil {
		return nil, err
	}
	commit, err := r.repo.CommitObject(hash)
	if err != nil {
		return nil, operationFailed("read commit "+ref.String(), err)
	}
	tree, err := commit.Tree()
	if err != nil {
		return nil, operationFailed("read tree "+ref.String(), err)
	}
	return tree, nil
}

func statusFromAction(action merkletrie.Action) domain.FileChangeStatus {
	switch action {
	case merkletrie.Insert:
		return domain.StatusAdded
	case merkletrie.Delete:
		return domain.StatusDeleted
	case merkletrie.Modify:
		return domain.StatusModified
	default:
		return domain.StatusUnmodified
	}
}

type entryKindValue int

const (
	kindFile entryKindValue = iota
	kindSymlink
	kindSubmodule
	kindOther
)

// entryKind groups modes the way git does when it reports a type change.
// Regular and executable files are the same kind.
func entryKind(mode filemode.FileMode) entryKindValue {
	switch mode {
	case filemode.Regular, filemode.Executable, filemode.Deprecated:
		return kindFile
	case filemode.Symlink:
		return kindSymlink
	case filemode.Submodule:
		return kindSubmodule
	default:
		return kindOther
	}
}
