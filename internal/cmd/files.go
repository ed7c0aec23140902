package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/arlon/internal/adapters/output"
	"github.com/renato0307/arlon/internal/domain"
)

// FilesCmd lists file changes between a branch tip and HEAD
type FilesCmd struct {
	Branch string `arg:"" optional:"" help:"Local branch to compare HEAD against (prompted for when omitted on a terminal)"`
	Format string `help:"Output format: simple, json or table" short:"f" enum:"simple,json,table" default:"simple" env:"ARLON_FORMAT"`
	Record bool   `help:"Record this run in the history database"`
}

// Run executes the files command
func (f *FilesCmd) Run(cli *CLI, ctx context.Context) error {
	branch, err := resolveBranch(ctx, cli, f.Branch)
	if err != nil {
		return err
	}

	formatter, err := output.NewFormatter(cli.resolveFormat(f.Format), cli.out())
	if err != nil {
		return err
	}

	svc, err := cli.Container.CompareFilesService()
	if err != nil {
		return fmt.Errorf("failed to open repository: %w", err)
	}

	records, err := svc.Execute(ctx, branch)
	if err != nil {
		return err
	}

	if err := formatter.RenderFiles(records); err != nil {
		return err
	}

	return recordRun(ctx, cli, f.Record, domain.KindFiles, branch, len(records))
}

// recordRun stores a successful comparison when history recording is enabled
func recordRun(ctx context.Context, cli *CLI, flag bool, kind domain.ComparisonKind, branch string, resultCount int) error {
	if !cli.shouldRecord(flag) {
		return nil
	}

	svc, err := cli.Container.HistoryService()
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}

	_, err = svc.Record(ctx, kind, branch, cli.Container.RepoPath(), resultCount)
	return err
}
