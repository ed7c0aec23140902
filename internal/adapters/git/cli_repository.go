package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/renato0307/arlon/internal/domain"
	"github.com/renato0307/arlon/internal/logging"
	"github.com/renato0307/arlon/internal/ports"
)

const (
	fieldSep  = "\x1f"
	logFormat = "%H%x1f%an%x1f%ae%x1f%ct%x1f%B"
)

// CLIRepository implements ports.GitRepository using local git commands
type CLIRepository struct {
	root string
}

// Verify interface compliance at compile time
var _ ports.GitRepository = (*CLIRepository)(nil)

// NewCLIRepository creates a new CLIRepository for the repository containing path
func NewCLIRepository(path string) (*CLIRepository, error) {
	logging.Logger.Debug("Checking if directory is git repo", "path", path)

	output, err := runGit(context.Background(), path, "rev-parse", "--show-toplevel")
	if err != nil {
		return nil, operationFailed("open repository", err)
	}

	root := strings.TrimSpace(string(output))
	logging.Logger.Debug("Found git repository", "repo_root", root)
	return &CLIRepository{root: root}, nil
}

// CommitsFrom implements CommitReader.CommitsFrom
func (r *CLIRepository) CommitsFrom(ctx context.Context, ref domain.Reference) ([]domain.Commit, error) {
	logging.Logger.Debug("Walking commits", "backend", BackendCLI, "ref", ref.String())

	rev, err := r.resolve(ctx, ref)
	if err != nil {
		return nil, err
	}

	// Override log.showSignature and color config so the records stay parseable
	output, err := runGit(ctx, r.root, "log", "-z", "--no-show-signature", "--no-color", "--format="+logFormat, rev)
	if err != nil {
		return nil, operationFailed("log "+ref.String(), err)
	}

	commits, err := parseLog(output)
	if err != nil {
		return nil, err
	}

	logging.Logger.Debug("Commits walked", "ref", ref.String(), "count", len(commits))
	return commits, nil
}

// FileChangesBetween implements FileChangeReader.FileChangesBetween
func (r *CLIRepository) FileChangesBetween(ctx context.Context, from, to domain.Reference) ([]domain.FileChange, error) {
	logging.Logger.Debug("Diffing trees", "backend", BackendCLI, "from", from.String(), "to", to.String())

	fromRev, err := r.resolve(ctx, from)
	if err != nil {
		return nil, err
	}
	toRev, err := r.resolve(ctx, to)
	if err != nil {
		return nil, err
	}

	output, err := runGit(ctx, r.root, "diff-tree", "-r", "-z", "--name-status", "--no-renames", fromRev, toRev)
	if err != nil {
		return nil, operationFailed("diff trees", err)
	}

	changes, err := parseNameStatus(output)
	if err != nil {
		return nil, err
	}

	logging.Logger.Debug("Trees diffed", "from", from.String(), "to", to.String(), "changes", len(changes))
	return changes, nil
}

// ListBranches implements BranchLister.ListBranches
func (r *CLIRepository) ListBranches(ctx context.Context) ([]domain.BranchName, error) {
	output, err := runGit(ctx, r.root, "for-each-ref", "--sort=refname", "--format=%(refname:short)", "refs/heads")
	if err != nil {
		return nil, operationFailed("list branches", err)
	}

	var branches []domain.BranchName
	for _, line := range strings.Split(strings.TrimSpace(string(output)), "\n") {
		if line == "" {
			continue
		}
		branch, err := domain.NewBranchName(line)
		if err != nil {
			logging.Logger.Debug("Skipping branch", "branch", line, "error", err)
			continue
		}
		branches = append(branches, branch)
	}
	return branches, nil
}

// Close implements GitRepository.Close
func (r *CLIRepository) Close() error {
	return nil
}

// resolve returns the commit id ref points at
func (r *CLIRepository) resolve(ctx context.Context, ref domain.Reference) (string, error) {
	rev := domain.HeadName
	branch, isBranch := ref.Branch()
	if isBranch {
		rev = "refs/heads/" + branch.String()
	}

	output, err := runGit(ctx, r.root, "rev-parse", "--verify", "--quiet", rev+"^{commit}")
	if err != nil {
		var exitErr *exec.ExitError
		if isBranch && errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return "", domain.NewBranchNotFoundError(branch)
		}
		return "", operationFailed("resolve "+ref.String(), err)
	}
	return strings.TrimSpace(string(output)), nil
}

// parseLog parses NUL separated records written with logFormat
func parseLog(output []byte) ([]domain.Commit, error) {
	var commits []domain.Commit
	for _, record := range bytes.Split(output, []byte{0}) {
		record = bytes.TrimLeft(record, "\n")
		if len(record) == 0 {
			continue
		}

		fields := strings.SplitN(string(record), fieldSep, 5)
		if len(fields) != 5 {
			return nil, fmt.Errorf("%w: malformed log record %q", domain.ErrInvalidData, record)
		}

		timestamp, err := strconv.ParseInt(fields[3], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed commit time %q", domain.ErrInvalidData, fields[3])
		}

		commit, err := newCommit(fields[0], fields[1], fields[2], timestamp, fields[4])
		if err != nil {
			return nil, err
		}
		commits = append(commits, commit)
	}
	return commits, nil
}

// parseNameStatus parses the -z output of diff-tree --name-status, which
// alternates status letters and paths. Copies and renames carry two paths.
func parseNameStatus(output []byte) ([]domain.FileChange, error) {
	fields := strings.Split(strings.TrimRight(string(output), "\x00"), "\x00")

	var changes []domain.FileChange
	for i := 0; i < len(fields); i++ {
		letter := fields[i]
		if letter == "" {
			continue
		}

		status := statusFromLetter(letter[0])
		paths := 1
		if status == domain.StatusRenamed || status == domain.StatusCopied {
			paths = 2
		}
		if i+paths >= len(fields) {
			return nil, fmt.Errorf("%w: truncated diff entry %q", domain.ErrInvalidData, letter)
		}

		oldPath, newPath := fields[i+1], fields[i+paths]
		i += paths

		if fc, ok := newFileChange(newPath, oldPath, status); ok {
			changes = append(changes, fc)
		}
	}
	return changes, nil
}

func statusFromLetter(letter byte) domain.FileChangeStatus {
	switch letter {
	case 'A':
		return domain.StatusAdded
	case 'D':
		return domain.StatusDeleted
	case 'M':
		return domain.StatusModified
	case 'R':
		return domain.StatusRenamed
	case 'C':
		return domain.StatusCopied
	case 'T':
		return domain.StatusTypechange
	case 'U':
		return domain.StatusConflicted
	case 'X':
		return domain.StatusUnreadable
	default:
		return domain.StatusUnmodified
	}
}

// runGit runs git in dir and returns stdout. Stderr is folded into the error.
func runGit(ctx context.Context, dir string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("git %s: %w: %s", args[0], err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, fmt.Errorf("git %s: %w", args[0], err)
	}
	return output, nil
}
