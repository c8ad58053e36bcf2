// Package root contains the root command for the application
package root

import (
	"fmt"
	"time"

	"fjacquet/spend-tracker/internal/config"
	"fjacquet/spend-tracker/internal/container"
	"fjacquet/spend-tracker/internal/logging"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to all commands
type CommonFlags struct {
	LogLevel string
	Backend  string
	DataDir  string
}

var (
	// Log is the shared logger instance for commands
	Log = logging.NewLogrusAdapter("info", "text")

	// AppContainer holds the wired dependencies of the running command.
	AppContainer *container.Container

	// Now is the clock used to date expenses.
	Now = time.Now

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "spend-tracker",
		Short: "A CLI tool to log expenses from free text and track them against budgets.",
		Long: `spend-tracker is a CLI tool that turns short free-text notes such as "Lunch 15"
into categorized expenses, stores them, and reports spending against fixed
per-category monthly budgets.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv(Log)

			cfg, err := config.InitializeConfig()
			if err != nil {
				return err
			}
			if err := ApplyFlags(cfg, SharedFlags); err != nil {
				return err
			}

			c, err := container.NewContainer(cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}
			AppContainer = c
			Log = c.GetLogger()
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if AppContainer == nil {
				return
			}
			if err := AppContainer.Close(); err != nil {
				Log.WithError(err).Warn("Failed to close expense store")
			}
			AppContainer = nil
		},
	}

	// SharedFlags are the persistent flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.Backend, "backend", "", "Storage backend (csv or sqlite)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.DataDir, "data-dir", "", "Directory holding the expense and category files")
}

// ApplyFlags overrides configuration values with the command-line flags that
// were set, then validates the result.
func ApplyFlags(cfg *config.Config, flags CommonFlags) error {
	if flags.LogLevel != "" {
		cfg.Log.Level = flags.LogLevel
	}
	if flags.Backend != "" {
		cfg.Storage.Backend = flags.Backend
	}
	if flags.DataDir != "" {
		cfg.Data.Directory = flags.DataDir
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// GetContainer returns the container built for the running command.
func GetContainer() (*container.Container, error) {
	if AppContainer == nil {
		return nil, fmt.Errorf("application not initialized")
	}
	return AppContainer, nil
}
