//go:build !libgit2

package git

import (
	"fmt"

	"github.com/renato0307/arlon/internal/ports"
)

func openLibgit2Repository(string) (ports.GitRepository, error) {
	return nil, fmt.Errorf("%w: rebuild with -tags libgit2", ErrBackendUnavailable)
}
