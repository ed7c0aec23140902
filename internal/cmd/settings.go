package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/renato0307/arlon/internal/config"
)

// SettingsCmd shows the settings file location and the available options
type SettingsCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the settings command
func (s *SettingsCmd) Run(cli *CLI) error {
	settingsFile := config.GetSettingsPath()
	options := config.GetSettingsExample()

	if s.Format == "json" {
		data, err := json.MarshalIndent(map[string]any{
			"settings_file": settingsFile,
			"options":       options,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(cli.out(), string(data))
		return nil
	}

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.DrawBorder = false
	tbl.Style().Options.SeparateColumns = false
	tbl.AppendHeader(table.Row{"Key", "Example"})
	for _, o := range options {
		value, err := json.Marshal(o.Example)
		if err != nil {
			return fmt.Errorf("failed to marshal example for %s: %w", o.Key, err)
		}
		tbl.AppendRow(table.Row{o.Key, string(value)})
	}

	out := cli.out()
	fmt.Fprintf(out, "Settings file: %s\n\n", settingsFile)
	fmt.Fprintln(out, tbl.Render())
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Create or edit this file to configure arlon.")
	fmt.Fprintln(out, "All settings are optional and have sensible defaults.")
	return nil
}
