package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renato0307/arlon/test/integration/harness"
)

func TestCommits(t *testing.T) {
	for _, backend := range []string{"gogit", "cli"} {
		t.Run(backend, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			repo, c3 := harness.NewComparedRepo(t)

			result := harness.RunCommand(t, env, "--repo", repo.RepoPath, "--backend", backend, "commits", "base")

			harness.AssertSuccess(t, result)
			harness.AssertStdoutLines(t, result, c3+" 2021-10-18 14:40:10 C3")
			harness.AssertStderrEmpty(t, result)
		})
	}
}

func TestCommits_FromInsideRepository(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	repo, c3 := harness.NewComparedRepo(t)
	env.WorkDir = repo.RepoPath

	result := harness.RunCommand(t, env, "commits", "base")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, c3)
}

func TestCommits_SameBranch(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	repo, _ := harness.NewComparedRepo(t)

	result := harness.RunCommand(t, env, "--repo", repo.RepoPath, "commits", "main")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutEmpty(t, result)
}

func TestCommits_NewestFirst(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	repo, c3 := harness.NewComparedRepo(t)
	c4 := repo.CommitFile("notes.txt", "n\n", "C4\n\nLonger body that is not shown")

	result := harness.RunCommand(t, env, "--repo", repo.RepoPath, "commits", "base")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutLines(t, result,
		c4+" 2021-10-18 14:41:10 C4",
		c3+" 2021-10-18 14:40:10 C3",
	)
}

func TestCommits_JSON(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	repo, c3 := harness.NewComparedRepo(t)

	result := harness.RunCommand(t, env, "--repo", repo.RepoPath, "commits", "base", "--format", "json")

	harness.AssertSuccess(t, result)
	records := harness.AssertJSONArrayLen(t, result, 1)
	assert.Equal(t, c3, records[0]["hash"])
	assert.Equal(t, "Test User", records[0]["author"])
	assert.Equal(t, "test@example.com", records[0]["email"])
	assert.Equal(t, "2021-10-18 14:40:10", records[0]["date"])
	assert.Equal(t, "C3", records[0]["message"])
}

func TestCommits_Table(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	repo, c3 := harness.NewComparedRepo(t)

	result := harness.RunCommand(t, env, "--repo", repo.RepoPath, "commits", "base", "-f", "table")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, c3[:7])
	harness.AssertStdoutContains(t, result, "C3")
	harness.AssertStdoutNotContains(t, result, c3)
}

func TestCommits_FormatFromEnv(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.SetEnv("ARLON_FORMAT", "json")
	repo, _ := harness.NewComparedRepo(t)

	result := harness.RunCommand(t, env, "--repo", repo.RepoPath, "commits", "base")

	harness.AssertSuccess(t, result)
	harness.AssertJSONArrayLen(t, result, 1)
}

func TestCommits_FormatFromSettings(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.WriteSettings(`{"default_format": "json"}`)
	repo, _ := harness.NewComparedRepo(t)

	result := harness.RunCommand(t, env, "--repo", repo.RepoPath, "commits", "base")

	harness.AssertSuccess(t, result)
	harness.AssertJSONArrayLen(t, result, 1)
}

func TestCommits_SeveralAheadOfBranch(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	repo := harness.NewTestGitSetup(t)
	repo.CommitFile("go.mod", "module example\n", "Initial module")
	repo.CreateBranch("release")
	first := repo.CommitFile("main.go", "package main\n", "Add main")
	repo.CommitFile("main.go", "package main\n\nfunc main() {}\n", "Fill in main")
	head := repo.HeadHash()

	result := harness.RunCommand(t, env, "--repo", repo.RepoPath, "commits", "release")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutLines(t, result,
		head+" 2021-10-18 14:40:10 Fill in main",
		first+" 2021-10-18 14:39:10 Add main",
	)
}
