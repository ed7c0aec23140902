package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/arlon/internal/adapters/output"
	"github.com/renato0307/arlon/internal/domain"
)

// CommitsCmd lists the commits reachable from HEAD but not from a branch
type CommitsCmd struct {
	Branch string `arg:"" optional:"" help:"Local branch to compare HEAD against (prompted for when omitted on a terminal)"`
	Format string `help:"Output format: simple, json or table" short:"f" enum:"simple,json,table" default:"simple" env:"ARLON_FORMAT"`
	Record bool   `help:"Record this run in the history database"`
}

// Run executes the commits command
func (c *CommitsCmd) Run(cli *CLI, ctx context.Context) error {
	branch, err := resolveBranch(ctx, cli, c.Branch)
	if err != nil {
		return err
	}

	formatter, err := output.NewFormatter(cli.resolveFormat(c.Format), cli.out())
	if err != nil {
		return err
	}

	svc, err := cli.Container.CompareCommitsService()
	if err != nil {
		return fmt.Errorf("failed to open repository: %w", err)
	}

	records, err := svc.Execute(ctx, branch)
	if err != nil {
		return err
	}

	if err := formatter.RenderCommits(records); err != nil {
		return err
	}

	return recordRun(ctx, cli, c.Record, domain.KindCommits, branch, len(records))
}
