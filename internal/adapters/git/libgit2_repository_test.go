//go:build libgit2

package git

import "github.com/renato0307/arlon/internal/ports"

func init() {
	buildTaggedBackends[BackendLibgit2] = func(path string) (ports.GitRepository, error) {
		return NewLibgit2Repository(path)
	}
}
