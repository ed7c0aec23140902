package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/arlon/internal/adapters/output"
)

// HistoryCmd lists recorded comparison runs
type HistoryCmd struct {
	Format string `help:"Output format: simple, json or table" short:"f" enum:"simple,json,table" default:"simple" env:"ARLON_FORMAT"`
	Limit  int    `help:"Maximum number of runs to show (0 = all)" short:"n" default:"20"`
}

// Run executes the history command
func (h *HistoryCmd) Run(cli *CLI, ctx context.Context) error {
	formatter, err := output.NewFormatter(cli.resolveFormat(h.Format), cli.out())
	if err != nil {
		return err
	}

	svc, err := cli.Container.HistoryService()
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}

	records, err := svc.List(ctx, cli.historyLimit(h.Limit))
	if err != nil {
		return err
	}

	return formatter.RenderHistory(records)
}
