package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tick/internal/cli"
	"github.com/thenoetrevino/tick/internal/cli/setup"
	"github.com/thenoetrevino/tick/internal/cli/styles"
	"github.com/thenoetrevino/tick/internal/cli/task"
	"github.com/thenoetrevino/tick/internal/cli/tutorial"
	"github.com/thenoetrevino/tick/internal/config"
	"github.com/thenoetrevino/tick/internal/launcher"
	"github.com/thenoetrevino/tick/internal/logging"
)

// NewRootCmd builds the tick command tree. Without a subcommand it starts the TUI.
func NewRootCmd() *cobra.Command {
	var (
		dbPath     string
		configPath string
		logLevel   string
	)

	rootCmd := &cobra.Command{
		Use:   "tick",
		Short: "tick - a local to-do list",
		Long: `tick keeps a single-user to-do list in a local sqlite file.

Run without arguments for the interactive view, or use the subcommands
for scripting. Every subcommand accepts --json and --quiet.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			formatter := &cli.OutputFormatter{}

			cfg, err := config.Load(configPath)
			if err != nil {
				return cli.Fail(formatter, cli.ExitUsage, "CONFIG_ERROR", err.Error(),
					"Check the file printed by 'tick config path'")
			}

			if dbPath != "" {
				cfg.Database.Path = dbPath
			}
			if logLevel != "" {
				cfg.Log.Level = logLevel
			}

			if err := logging.Init(cfg.Log.Dir, cfg.Log.Level); err != nil {
				return cli.Fail(formatter, cli.ExitUsage, "LOGGING_ERROR",
					fmt.Sprintf("failed to initialize logging: %v", err),
					"Valid log levels are: debug, info, warn, error")
			}
			styles.Init(cfg.ColorScheme)

			cmd.SetContext(cli.WithConfig(cmd.Context(), cfg))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return launcher.Launch(cmd.Context(), cli.ConfigFromContext(cmd.Context()))
		},
	}

	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the task database (default $XDG_DATA_HOME/tick/tick.db)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(task.Commands()...)
	rootCmd.AddCommand(setup.ConfigCmd())
	rootCmd.AddCommand(tutorial.TutorialCmd())
	rootCmd.AddCommand(VersionCmd())

	return rootCmd
}

// Execute runs the root command. Errors that carry an exit code have
// already been reported; anything else is printed to stderr.
func Execute(ctx context.Context) error {
	err := NewRootCmd().ExecuteContext(ctx)

	var codeErr *cli.CodeError
	if err != nil && !errors.As(err, &codeErr) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}
