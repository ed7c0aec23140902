package cmd

import (
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/renato0307/arlon/internal/config"
	"github.com/renato0307/arlon/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	Repo        string           `help:"Path inside the repository to inspect" default:"." type:"path"`
	Backend     string           `help:"Git backend: gogit, cli or libgit2" enum:"gogit,cli,libgit2" default:"gogit" env:"ARLON_BACKEND"`

	Commits  CommitsCmd  `cmd:"commits" help:"List commits reachable from HEAD but not from a branch"`
	Files    FilesCmd    `cmd:"files" help:"List file changes between a branch tip and HEAD"`
	History  HistoryCmd  `cmd:"history" help:"List recorded comparison runs"`
	Settings SettingsCmd `cmd:"settings" help:"Show settings file location and available options"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
	stdout    io.Writer        `kong:"-"`
	picker    branchPicker     `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.json > defaults.
	// A settings value only applies while the flag still holds its default.
	if c.settings != nil {
		if c.MaxLogFiles == logging.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("ARLON_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("ARLON_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}

		if c.Backend == config.DefaultBackend {
			if _, hasEnv := os.LookupEnv("ARLON_BACKEND"); !hasEnv {
				if c.settings.Backend != "" {
					c.Backend = c.settings.Backend
				}
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Export after initialization so git subprocesses log to the same file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("ARLON_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("ARLON_DEBUG_FILE", logFilePath)
		}
	}

	// Container is created after logging so adapters never log to a stale handler
	c.Container = NewContainer(c.Backend, c.Repo, c.settings.ResolvedHistoryDBPath())

	logging.Logger.Debug("CLI initialized",
		"backend", c.Backend,
		"repo", c.Repo,
		"debug", c.Debug)
	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

func (c *CLI) out() io.Writer {
	if c.stdout != nil {
		return c.stdout
	}
	return os.Stdout
}

// resolveFormat applies default_format from settings when the flag was left at its default
func (c *CLI) resolveFormat(flag string) string {
	if flag != config.DefaultFormat || c.settings == nil {
		return flag
	}
	if _, hasEnv := os.LookupEnv("ARLON_FORMAT"); hasEnv {
		return flag
	}
	if c.settings.DefaultFormat != "" {
		return c.settings.DefaultFormat
	}
	return flag
}

// shouldRecord reports whether a comparison run is stored in the history
func (c *CLI) shouldRecord(flag bool) bool {
	if flag {
		return true
	}
	return c.settings != nil && c.settings.RecordHistory != nil && *c.settings.RecordHistory
}

// historyLimit applies history_limit from settings when the flag was left at its default
func (c *CLI) historyLimit(flag int) int {
	if flag != config.DefaultHistoryLimit || c.settings == nil || c.settings.HistoryLimit == nil {
		return flag
	}
	return *c.settings.HistoryLimit
}
