package integration_test

import (
	"testing"

	"github.com/renato0307/arlon/test/integration/harness"
)

func TestErrors(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		inRepo     bool
		wantStderr string
	}{
		{
			name:       "nonexistent branch",
			args:       []string{"commits", "does-not-exist"},
			inRepo:     true,
			wantStderr: "branch not found: does-not-exist",
		},
		{
			name:       "nonexistent branch with cli backend",
			args:       []string{"--backend", "cli", "files", "does-not-exist"},
			inRepo:     true,
			wantStderr: "branch not found: does-not-exist",
		},
		{
			name:       "invalid branch name",
			args:       []string{"commits", "bad..name"},
			inRepo:     true,
			wantStderr: "invalid branch name",
		},
		{
			name:       "no branch without a terminal",
			args:       []string{"files"},
			inRepo:     true,
			wantStderr: "branch name cannot be empty",
		},
		{
			name:       "not a repository",
			args:       []string{"commits", "main"},
			wantStderr: "failed to open repository",
		},
		{
			name:       "libgit2 backend not compiled in",
			args:       []string{"--backend", "libgit2", "commits", "main"},
			inRepo:     true,
			wantStderr: "rebuild with -tags libgit2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			if tt.inRepo {
				repo, _ := harness.NewComparedRepo(t)
				env.WorkDir = repo.RepoPath
			}

			result := harness.RunCommand(t, env, tt.args...)

			harness.AssertExitCode(t, result, 1)
			harness.AssertStdoutEmpty(t, result)
			harness.AssertStderrContains(t, result, "Error: ")
			harness.AssertStderrContains(t, result, tt.wantStderr)
		})
	}
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown backend", args: []string{"--backend", "svn", "commits", "main"}},
		{name: "unknown format", args: []string{"commits", "main", "-f", "xml"}},
		{name: "unknown command", args: []string{"status"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)

			result := harness.RunCommand(t, env, tt.args...)

			harness.AssertFailure(t, result)
		})
	}
}
