package git

import (
	"errors"
	"fmt"
	"strings"

	"github.com/renato0307/arlon/internal/domain"
	"github.com/renato0307/arlon/internal/logging"
	"github.com/renato0307/arlon/internal/ports"
)

// Backend names accepted by NewRepository
const (
	BackendCLI     = "cli"
	BackendGoGit   = "gogit"
	BackendLibgit2 = "libgit2"
)

// Backend selection errors
var (
	ErrUnknownBackend     = errors.New("unknown git backend")
	ErrBackendUnavailable = errors.New("git backend not available in this build")
)

// Backends returns the accepted backend names
func Backends() []string {
	return []string{BackendGoGit, BackendCLI, BackendLibgit2}
}

// NewRepository opens the repository containing path with the given backend
func NewRepository(backend, path string) (ports.GitRepository, error) {
	logging.Logger.Debug("Opening repository", "backend", backend, "path", path)

	switch backend {
	case "", BackendGoGit:
		return NewGoGitRepository(path)
	case BackendCLI:
		return NewCLIRepository(path)
	case BackendLibgit2:
		return openLibgit2Repository(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

// commitSummary returns the first paragraph of a commit message with its
// lines joined by single spaces, which is what git calls the subject
func commitSummary(message string) string {
	message = strings.TrimLeft(message, "\r\n\t ")
	if idx := strings.Index(message, "\n\n"); idx >= 0 {
		message = message[:idx]
	}
	return strings.Join(strings.Fields(message), " ")
}

// newCommit validates the raw provider fields and builds a domain.Commit
func newCommit(rawHash, author, email string, timestamp int64, message string) (domain.Commit, error) {
	hash, err := domain.NewCommitHash(rawHash)
	if err != nil {
		return domain.Commit{}, fmt.Errorf("%w: %w", domain.ErrInvalidData, err)
	}
	return domain.NewCommit(hash, author, email, timestamp, commitSummary(message)), nil
}

// newFileChange builds a domain.FileChange, preferring the new path and falling
// back to the old one. ok is false when neither path is usable.
func newFileChange(newPath, oldPath string, status domain.FileChangeStatus) (domain.FileChange, bool) {
	raw := newPath
	if raw == "" {
		raw = oldPath
	}
	path, err := domain.NewFilePath(raw)
	if err != nil {
		logging.Logger.Debug("Skipping change without path", "status", status.String())
		return domain.FileChange{}, false
	}
	return domain.NewFileChange(path, status), true
}

func operationFailed(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrOperationFailed, op, err)
}
