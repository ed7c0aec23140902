package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/renato0307/arlon/internal/domain"
	"github.com/renato0307/arlon/internal/logging"
	"github.com/renato0307/arlon/internal/theme"
)

// ErrSelectionAborted is returned when the branch picker is cancelled
var ErrSelectionAborted = errors.New("branch selection aborted")

// branchPicker asks the user to choose one of branches
type branchPicker interface {
	Interactive() bool
	Pick(ctx context.Context, branches []domain.BranchName) (string, error)
}

// huhPicker prompts with a huh select form on the terminal
type huhPicker struct{}

// Interactive reports whether both stdin and stdout are terminals
func (huhPicker) Interactive() bool {
	return isTerminal(os.Stdin.Fd()) && isTerminal(os.Stdout.Fd())
}

// Pick implements branchPicker.Pick
func (huhPicker) Pick(ctx context.Context, branches []domain.BranchName) (string, error) {
	options := make([]huh.Option[string], 0, len(branches))
	for _, b := range branches {
		options = append(options, huh.NewOption(b.String(), b.String()))
	}

	var selected string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(theme.TitleStyle.Render("Compare HEAD against which branch?")).
				Options(options...).
				Value(&selected),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", ErrSelectionAborted
		}
		return "", fmt.Errorf("failed to run branch picker: %w", err)
	}
	return selected, nil
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// resolveBranch returns branch unchanged unless it is empty and a terminal is
// attached, in which case the user picks one of the local branches. An empty
// result is passed on so the use case reports it as invalid.
func resolveBranch(ctx context.Context, cli *CLI, branch string) (string, error) {
	if branch != "" {
		return branch, nil
	}

	picker := cli.picker
	if picker == nil {
		picker = huhPicker{}
	}
	if !picker.Interactive() {
		return branch, nil
	}

	repo, err := cli.Container.GitRepository()
	if err != nil {
		return "", fmt.Errorf("failed to open repository: %w", err)
	}

	branches, err := repo.ListBranches(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list branches: %w", err)
	}
	if len(branches) == 0 {
		logging.Logger.Debug("No local branches to pick from")
		return branch, nil
	}

	selected, err := picker.Pick(ctx, branches)
	if err != nil {
		return "", err
	}

	logging.Logger.Debug("Branch picked", "branch", selected)
	return selected, nil
}
