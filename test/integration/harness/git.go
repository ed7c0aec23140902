package harness

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// baseTimestamp is the author and committer time of the first fixture commit.
// Each later commit is one minute after the previous one.
const baseTimestamp int64 = 1634567890

// TestGitSetup is a local repository with deterministic commit times.
type TestGitSetup struct {
	RepoPath string
	commits  int
	tb       testing.TB
}

// NewTestGitSetup creates an empty repository on branch "main".
func NewTestGitSetup(tb testing.TB) *TestGitSetup {
	tb.Helper()

	g := &TestGitSetup{RepoPath: tb.TempDir(), tb: tb}
	g.git("init", "-q", "-b", "main")
	g.git("config", "user.email", "test@example.com")
	g.git("config", "user.name", "Test User")
	g.git("config", "commit.gpgsign", "false")
	return g
}

// NewComparedRepo builds the usual comparison fixture:
//
//	C1 README.md added
//	C2 docs/readme.md added      <- branch "base"
//	C3 docs/readme.md modified   <- HEAD (main)
//
// It returns the setup and the hash of C3.
func NewComparedRepo(tb testing.TB) (*TestGitSetup, string) {
	tb.Helper()

	g := NewTestGitSetup(tb)
	g.CommitFile("README.md", "# Test Repo\n", "C1")
	g.CommitFile("docs/readme.md", "v1\n", "C2")
	g.CreateBranch("base")
	c3 := g.CommitFile("docs/readme.md", "v2\n", "C3")
	return g, c3
}

// CommitFile writes content to path, commits it with message and returns the new hash.
func (g *TestGitSetup) CommitFile(path, content, message string) string {
	g.tb.Helper()

	full := filepath.Join(g.RepoPath, path)
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		g.tb.Fatalf("Failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(full, []byte(content), 0644); err != nil {
		g.tb.Fatalf("Failed to write %s: %v", path, err)
	}
	g.git("add", path)
	return g.commit(message)
}

// RemoveFile deletes path, commits the removal and returns the new hash.
func (g *TestGitSetup) RemoveFile(path, message string) string {
	g.tb.Helper()
	g.git("rm", "-q", path)
	return g.commit(message)
}

// CreateBranch creates a branch at HEAD without switching to it.
func (g *TestGitSetup) CreateBranch(name string) {
	g.tb.Helper()
	g.git("branch", name)
}

// HeadHash returns the full hash HEAD points at.
func (g *TestGitSetup) HeadHash() string {
	g.tb.Helper()
	return g.git("rev-parse", "HEAD")
}

func (g *TestGitSetup) commit(message string) string {
	g.tb.Helper()

	date := fmt.Sprintf("@%d +0000", baseTimestamp+int64(g.commits)*60)
	g.commits++
	runGitCommand(g.tb, g.RepoPath, []string{
		"GIT_AUTHOR_DATE=" + date,
		"GIT_COMMITTER_DATE=" + date,
	}, "commit", "-q", "-m", message)
	return g.HeadHash()
}

func (g *TestGitSetup) git(args ...string) string {
	g.tb.Helper()
	return runGitCommand(g.tb, g.RepoPath, nil, args...)
}

// runGitCommand executes a git command in the specified directory and returns
// its trimmed output.
func runGitCommand(tb testing.TB, dir string, extraEnv []string, args ...string) string {
	tb.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=Test User",
		"GIT_AUTHOR_EMAIL=test@example.com",
		"GIT_COMMITTER_NAME=Test User",
		"GIT_COMMITTER_EMAIL=test@example.com",
	)
	cmd.Env = append(cmd.Env, extraEnv...)

	output, err := cmd.CombinedOutput()
	if err != nil {
		tb.Fatalf("git %v failed in %s: %v\nOutput: %s", args, dir, err, output)
	}
	return strings.TrimSpace(string(output))
}
