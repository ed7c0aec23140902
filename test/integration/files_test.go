package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renato0307/arlon/test/integration/harness"
)

func TestFiles(t *testing.T) {
	for _, backend := range []string{"gogit", "cli"} {
		t.Run(backend, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			repo, _ := harness.NewComparedRepo(t)

			result := harness.RunCommand(t, env, "--repo", repo.RepoPath, "--backend", backend, "files", "base")

			harness.AssertSuccess(t, result)
			harness.AssertStdoutLines(t, result, "modified docs/readme.md")
		})
	}
}

func TestFiles_AddedAndDeleted(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	repo, _ := harness.NewComparedRepo(t)
	repo.CommitFile("src/new.go", "package src\n", "Add new.go")
	repo.RemoveFile("README.md", "Drop README")

	result := harness.RunCommand(t, env, "--repo", repo.RepoPath, "files", "base", "-f", "json")

	harness.AssertSuccess(t, result)
	records := harness.AssertJSONArrayLen(t, result, 3)
	assert.Equal(t, map[string]any{"path": "README.md", "status": "deleted"}, records[0])
	assert.Equal(t, map[string]any{"path": "docs/readme.md", "status": "modified"}, records[1])
	assert.Equal(t, map[string]any{"path": "src/new.go", "status": "added"}, records[2])
}

func TestFiles_SameTree(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	repo, _ := harness.NewComparedRepo(t)

	result := harness.RunCommand(t, env, "--repo", repo.RepoPath, "files", "main", "-f", "json")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutLines(t, result, "[]")
}

func TestFiles_Table(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	repo, _ := harness.NewComparedRepo(t)

	result := harness.RunCommand(t, env, "--repo", repo.RepoPath, "files", "base", "-f", "table")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "docs/readme.md")
	harness.AssertStdoutContains(t, result, "modified")
}
