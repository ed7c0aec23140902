package cmd

import (
	"errors"

	adaptergit "github.com/renato0307/arlon/internal/adapters/git"
	adapterstorage "github.com/renato0307/arlon/internal/adapters/storage"
	"github.com/renato0307/arlon/internal/logging"
	"github.com/renato0307/arlon/internal/ports"
	"github.com/renato0307/arlon/internal/services"
)

// Container holds all dependencies for the application.
// Adapters are opened on first use so that commands only touch what they need:
// history never opens the git repository and a plain comparison never creates
// the history database.
type Container struct {
	backend       string
	historyDBPath string
	repoPath      string

	gitRepo     ports.GitRepository
	historyRepo ports.HistoryRepository

	openGitRepository     func(backend, path string) (ports.GitRepository, error)
	openHistoryRepository func(dbPath string) (ports.HistoryRepository, error)
}

// NewContainer creates a new Container wired to the real adapters
func NewContainer(backend, repoPath, historyDBPath string) *Container {
	return &Container{
		backend:           backend,
		historyDBPath:     historyDBPath,
		repoPath:          repoPath,
		openGitRepository: adaptergit.NewRepository,
		openHistoryRepository: func(dbPath string) (ports.HistoryRepository, error) {
			return adapterstorage.NewSQLiteHistoryRepository(dbPath)
		},
	}
}

// RepoPath returns the repository path the container was created for
func (c *Container) RepoPath() string {
	return c.repoPath
}

// GitRepository returns the repository provider, opening it on first use
func (c *Container) GitRepository() (ports.GitRepository, error) {
	if c.gitRepo == nil {
		repo, err := c.openGitRepository(c.backend, c.repoPath)
		if err != nil {
			return nil, err
		}
		c.gitRepo = repo
	}
	return c.gitRepo, nil
}

// CompareCommitsService returns the commits use case
func (c *Container) CompareCommitsService() (*services.CompareCommitsService, error) {
	repo, err := c.GitRepository()
	if err != nil {
		return nil, err
	}
	return services.NewCompareCommitsService(repo), nil
}

// CompareFilesService returns the files use case
func (c *Container) CompareFilesService() (*services.CompareFilesService, error) {
	repo, err := c.GitRepository()
	if err != nil {
		return nil, err
	}
	return services.NewCompareFilesService(repo), nil
}

// HistoryService returns the history use case, opening the database on first use
func (c *Container) HistoryService() (*services.HistoryService, error) {
	if c.historyRepo == nil {
		repo, err := c.openHistoryRepository(c.historyDBPath)
		if err != nil {
			return nil, err
		}
		c.historyRepo = repo
	}
	return services.NewHistoryService(c.historyRepo), nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	var errs []error
	if c.gitRepo != nil {
		errs = append(errs, c.gitRepo.Close())
	}
	if c.historyRepo != nil {
		errs = append(errs, c.historyRepo.Close())
	}
	if err := errors.Join(errs...); err != nil {
		logging.Logger.Warn("Failed to close resources", "error", err)
		return err
	}
	return nil
}
