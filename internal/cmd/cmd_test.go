package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/arlon/internal/config"
	"github.com/renato0307/arlon/internal/domain"
	"github.com/renato0307/arlon/internal/ports"
	portsmocks "github.com/renato0307/arlon/internal/ports/mocks"
	"github.com/renato0307/arlon/internal/services"
)

type fakePicker struct {
	interactive bool
	choice      string
	offered     []string
}

func (p *fakePicker) Interactive() bool { return p.interactive }

func (p *fakePicker) Pick(_ context.Context, branches []domain.BranchName) (string, error) {
	for _, b := range branches {
		p.offered = append(p.offered, b.String())
	}
	return p.choice, nil
}

func newTestCLI(t *testing.T, gitRepo ports.GitRepository, historyRepo ports.HistoryRepository) (*CLI, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	cli := &CLI{
		Container: &Container{
			repoPath: "/work/project",
			openGitRepository: func(string, string) (ports.GitRepository, error) {
				if gitRepo == nil {
					return nil, errors.New("no repository")
				}
				return gitRepo, nil
			},
			openHistoryRepository: func(string) (ports.HistoryRepository, error) {
				if historyRepo == nil {
					return nil, errors.New("no history")
				}
				return historyRepo, nil
			},
		},
		settings: &config.Settings{},
		stdout:   &buf,
		picker:   &fakePicker{},
	}
	return cli, &buf
}

func testCommit(t *testing.T, hash, message string) domain.Commit {
	t.Helper()
	h, err := domain.NewCommitHash(hash)
	require.NoError(t, err)
	return domain.NewCommit(h, "Test", "test@test.com", 1634567890, message)
}

const (
	hashA = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	hashB = "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
)

func TestCommitsCmd_Run(t *testing.T) {
	repo := portsmocks.NewMockGitRepository(t)
	repo.EXPECT().CommitsFrom(mock.Anything, domain.HeadReference()).
		Return([]domain.Commit{testCommit(t, hashB, "Second"), testCommit(t, hashA, "First")}, nil)
	repo.EXPECT().CommitsFrom(mock.Anything, mock.Anything).
		Return([]domain.Commit{testCommit(t, hashA, "First")}, nil)

	cli, buf := newTestCLI(t, repo, nil)

	err := (&CommitsCmd{Branch: "main", Format: "simple"}).Run(cli, context.Background())

	require.NoError(t, err)
	assert.Equal(t, hashB+" 2021-10-18 14:38:10 Second\n", buf.String())
}

func TestCommitsCmd_Run_InvalidBranch(t *testing.T) {
	repo := portsmocks.NewMockGitRepository(t)
	cli, buf := newTestCLI(t, repo, nil)

	err := (&CommitsCmd{Branch: "", Format: "simple"}).Run(cli, context.Background())

	assert.ErrorIs(t, err, services.ErrInvalidBranchName)
	assert.Empty(t, buf.String())
}

func TestCommitsCmd_Run_RecordsHistory(t *testing.T) {
	repo := portsmocks.NewMockGitRepository(t)
	repo.EXPECT().CommitsFrom(mock.Anything, mock.Anything).Return(nil, nil).Twice()

	history := portsmocks.NewMockHistoryRepository(t)
	history.EXPECT().Add(mock.Anything, mock.MatchedBy(func(run domain.ComparisonRun) bool {
		return run.Kind == domain.KindCommits && run.Branch == "main" && run.RepoPath == "/work/project" && run.ResultCount == 0
	})).Return(nil)

	cli, _ := newTestCLI(t, repo, history)

	err := (&CommitsCmd{Branch: "main", Format: "json", Record: true}).Run(cli, context.Background())

	require.NoError(t, err)
}

func TestCommitsCmd_Run_RecordFromSettings(t *testing.T) {
	repo := portsmocks.NewMockGitRepository(t)
	repo.EXPECT().CommitsFrom(mock.Anything, mock.Anything).Return(nil, nil).Twice()

	history := portsmocks.NewMockHistoryRepository(t)
	history.EXPECT().Add(mock.Anything, mock.Anything).Return(nil)

	cli, _ := newTestCLI(t, repo, history)
	record := true
	cli.settings.RecordHistory = &record

	require.NoError(t, (&CommitsCmd{Branch: "main", Format: "simple"}).Run(cli, context.Background()))
}

func TestCommitsCmd_Run_NoRecordByDefault(t *testing.T) {
	repo := portsmocks.NewMockGitRepository(t)
	repo.EXPECT().CommitsFrom(mock.Anything, mock.Anything).Return(nil, nil).Twice()

	// A nil history repository makes any attempt to open it fail
	cli, _ := newTestCLI(t, repo, nil)

	require.NoError(t, (&CommitsCmd{Branch: "main", Format: "simple"}).Run(cli, context.Background()))
}

func TestFilesCmd_Run(t *testing.T) {
	path, err := domain.NewFilePath("docs/readme.md")
	require.NoError(t, err)

	repo := portsmocks.NewMockGitRepository(t)
	repo.EXPECT().FileChangesBetween(mock.Anything, mock.Anything, domain.HeadReference()).
		Return([]domain.FileChange{domain.NewFileChange(path, domain.StatusModified)}, nil)

	cli, buf := newTestCLI(t, repo, nil)

	err = (&FilesCmd{Branch: "main", Format: "json"}).Run(cli, context.Background())

	require.NoError(t, err)
	assert.JSONEq(t, `[{"path":"docs/readme.md","status":"modified"}]`, buf.String())
}

func TestFilesCmd_Run_BranchNotFound(t *testing.T) {
	b, err := domain.NewBranchName("ghost")
	require.NoError(t, err)

	repo := portsmocks.NewMockGitRepository(t)
	repo.EXPECT().FileChangesBetween(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domain.NewBranchNotFoundError(b))

	cli, _ := newTestCLI(t, repo, nil)

	err = (&FilesCmd{Branch: "ghost", Format: "simple"}).Run(cli, context.Background())

	assert.ErrorIs(t, err, services.ErrRepository)
	assert.ErrorIs(t, err, domain.ErrBranchNotFound)
	assert.Contains(t, err.Error(), "ghost")
}

func TestFilesCmd_Run_FormatFromSettings(t *testing.T) {
	repo := portsmocks.NewMockGitRepository(t)
	repo.EXPECT().FileChangesBetween(mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)

	cli, buf := newTestCLI(t, repo, nil)
	cli.settings.DefaultFormat = "json"

	require.NoError(t, (&FilesCmd{Branch: "main", Format: config.DefaultFormat}).Run(cli, context.Background()))
	assert.Equal(t, "[]\n", buf.String())
}

func TestFilesCmd_Run_PicksBranchInteractively(t *testing.T) {
	mainBranch, err := domain.NewBranchName("main")
	require.NoError(t, err)
	dev, err := domain.NewBranchName("dev")
	require.NoError(t, err)

	repo := portsmocks.NewMockGitRepository(t)
	repo.EXPECT().ListBranches(mock.Anything).Return([]domain.BranchName{dev, mainBranch}, nil)
	repo.EXPECT().FileChangesBetween(mock.Anything, domain.BranchReference(dev), domain.HeadReference()).Return(nil, nil)

	cli, _ := newTestCLI(t, repo, nil)
	picker := &fakePicker{interactive: true, choice: "dev"}
	cli.picker = picker

	require.NoError(t, (&FilesCmd{Format: "simple"}).Run(cli, context.Background()))
	assert.Equal(t, []string{"dev", "main"}, picker.offered)
}

func TestHistoryCmd_Run(t *testing.T) {
	history := portsmocks.NewMockHistoryRepository(t)
	history.EXPECT().List(mock.Anything, 5).Return([]domain.ComparisonRun{
		{ID: "run-1", Kind: domain.KindFiles, Branch: "main", RepoPath: "/repo", ResultCount: 3},
	}, nil)

	cli, buf := newTestCLI(t, nil, history)
	limit := 5
	cli.settings.HistoryLimit = &limit

	require.NoError(t, (&HistoryCmd{Format: "simple", Limit: config.DefaultHistoryLimit}).Run(cli, context.Background()))
	assert.Contains(t, buf.String(), "files main 3 /repo run-1")
}

func TestSettingsCmd_Run(t *testing.T) {
	t.Setenv("ARLON_HOME", t.TempDir())
	cli, buf := newTestCLI(t, nil, nil)

	require.NoError(t, (&SettingsCmd{Format: "json"}).Run(cli))

	assert.Contains(t, buf.String(), `"settings_file"`)
	assert.Contains(t, buf.String(), `"record_history"`)
}

func TestCLI_AfterApply_SettingsPrecedence(t *testing.T) {
	t.Setenv("ARLON_BACKEND", "")
	os.Unsetenv("ARLON_BACKEND")
	t.Setenv("ARLON_DEBUG", "")
	os.Unsetenv("ARLON_DEBUG")

	t.Run("settings apply over defaults", func(t *testing.T) {
		cli := &CLI{Backend: config.DefaultBackend, MaxLogFiles: 1000, Repo: "."}
		cli.SetSettings(&config.Settings{Backend: "cli"})

		require.NoError(t, cli.AfterApply())
		assert.Equal(t, "cli", cli.Backend)
		assert.NotNil(t, cli.Container)
	})

	t.Run("flag wins over settings", func(t *testing.T) {
		cli := &CLI{Backend: "libgit2", MaxLogFiles: 1000, Repo: "."}
		cli.SetSettings(&config.Settings{Backend: "cli"})

		require.NoError(t, cli.AfterApply())
		assert.Equal(t, "libgit2", cli.Backend)
	})
}

func TestCLI_Close_WithoutContainer(t *testing.T) {
	assert.NoError(t, (&CLI{}).Close())
}

// End to end through kong against a real repository

func runGitIn(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=Test",
		"GIT_AUTHOR_EMAIL=test@test.com",
		"GIT_COMMITTER_NAME=Test",
		"GIT_COMMITTER_EMAIL=test@test.com",
		"GIT_AUTHOR_DATE=@1634567890 +0000",
		"GIT_COMMITTER_DATE=@1634567890 +0000",
	)
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v failed: %s", args, out)
	return strings.TrimSpace(string(out))
}

func setupComparedRepo(t *testing.T) (dir, c3 string) {
	t.Helper()
	dir = t.TempDir()
	runGitIn(t, dir, "init", "-q")
	runGitIn(t, dir, "config", "commit.gpgsign", "false")

	write := func(name, content string) {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		runGitIn(t, dir, "add", name)
	}

	write("README.md", "# Test")
	runGitIn(t, dir, "commit", "-q", "-m", "C1")
	write("docs/readme.md", "v1")
	runGitIn(t, dir, "commit", "-q", "-m", "C2")
	runGitIn(t, dir, "branch", "base")
	write("docs/readme.md", "v2")
	runGitIn(t, dir, "commit", "-q", "-m", "C3")
	return dir, runGitIn(t, dir, "rev-parse", "HEAD")
}

func parseAndRun(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("ARLON_HOME", t.TempDir())

	var buf bytes.Buffer
	cli := CLI{stdout: &buf, picker: &fakePicker{}}
	cli.SetSettings(&config.Settings{})

	parser, err := kong.New(&cli,
		kong.Name("arlon"),
		kong.Vars{"version": "test"},
		kong.Bind(&cli),
		kong.BindTo(context.Background(), (*context.Context)(nil)),
	)
	require.NoError(t, err)

	kctx, err := parser.Parse(args)
	require.NoError(t, err)
	defer cli.Close()

	err = kctx.Run()
	return buf.String(), err
}

func TestEndToEnd_Commits(t *testing.T) {
	dir, c3 := setupComparedRepo(t)

	for _, backend := range []string{"gogit", "cli"} {
		t.Run(backend, func(t *testing.T) {
			out, err := parseAndRun(t, "--repo", dir, "--backend", backend, "commits", "base")

			require.NoError(t, err)
			assert.Equal(t, c3+" 2021-10-18 14:38:10 C3\n", out)
		})
	}
}

func TestEndToEnd_Files(t *testing.T) {
	dir, _ := setupComparedRepo(t)

	out, err := parseAndRun(t, "--repo", dir, "files", "base", "-f", "json")

	require.NoError(t, err)
	assert.JSONEq(t, `[{"path":"docs/readme.md","status":"modified"}]`, out)
}

func TestEndToEnd_RecordAndHistory(t *testing.T) {
	dir, _ := setupComparedRepo(t)
	home := t.TempDir()

	run := func(args ...string) string {
		var buf bytes.Buffer
		cli := CLI{stdout: &buf, picker: &fakePicker{}}
		cli.SetSettings(&config.Settings{HistoryDBPath: filepath.Join(home, "history.db")})

		parser, err := kong.New(&cli,
			kong.Name("arlon"),
			kong.Vars{"version": "test"},
			kong.Bind(&cli),
			kong.BindTo(context.Background(), (*context.Context)(nil)),
		)
		require.NoError(t, err)
		kctx, err := parser.Parse(args)
		require.NoError(t, err)
		require.NoError(t, kctx.Run())
		require.NoError(t, cli.Close())
		return buf.String()
	}

	run("--repo", dir, "files", "base", "--record")
	out := run("history", "-f", "json")

	assert.Contains(t, out, `"kind": "files"`)
	assert.Contains(t, out, `"branch": "base"`)
	assert.Contains(t, out, `"result_count": 1`)
}

func TestEndToEnd_NonexistentBranch(t *testing.T) {
	dir, _ := setupComparedRepo(t)

	_, err := parseAndRun(t, "--repo", dir, "commits", "does-not-exist")

	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrRepository)
	var notFound *domain.BranchNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "does-not-exist", notFound.Branch)
}
