// Package setup holds the commands that manage the tick config file
package setup

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tick/internal/cli"
	"github.com/thenoetrevino/tick/internal/config"
	"gopkg.in/yaml.v3"
)

// ConfigCmd returns the config command
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
		Long: `Create and inspect the tick configuration file.

The file lives at $XDG_CONFIG_HOME/tick/config.yaml (or ~/.config/tick/config.yaml)
unless --config is given. TICK_DB_PATH, TICK_PER_OPERATION, TICK_LOG_LEVEL and
TICK_LOG_DIR override values from the file.
`,
	}

	cmd.AddCommand(InitCmd())
	cmd.AddCommand(PathCmd())
	cmd.AddCommand(ShowCmd())

	return cmd
}

// InitCmd returns the config init subcommand
func InitCmd() *cobra.Command {
	var forceFlag bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with every default filled in",
		Long: `Write a config file with every default filled in.

Examples:
  # Create ~/.config/tick/config.yaml
  tick config init

  # Overwrite an existing file
  tick config init --force

  # Write somewhere else
  tick --config ./tick.yaml config init
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := &cli.OutputFormatter{}

			path, err := configPath(cmd)
			if err != nil {
				return cli.Fail(formatter, cli.ExitError, "CONFIG_PATH_ERROR", err.Error(), "")
			}

			if _, err := os.Stat(path); err == nil && !forceFlag {
				return cli.Fail(formatter, cli.ExitUsage, "CONFIG_EXISTS",
					fmt.Sprintf("config file already exists: %s", path),
					"Use --force to overwrite it")
			}

			data, err := yaml.Marshal(config.Default())
			if err != nil {
				return cli.Fail(formatter, cli.ExitError, "CONFIG_WRITE_ERROR", err.Error(), "")
			}
			if err := writeConfig(path, data); err != nil {
				return cli.Fail(formatter, cli.ExitError, "CONFIG_WRITE_ERROR", err.Error(), "")
			}

			fmt.Printf("✓ Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&forceFlag, "force", false, "Overwrite an existing config file")

	return cmd
}

// PathCmd returns the config path subcommand
func PathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the location of the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath(cmd)
			if err != nil {
				return cli.Fail(&cli.OutputFormatter{}, cli.ExitError, "CONFIG_PATH_ERROR", err.Error(), "")
			}
			fmt.Println(path)
			return nil
		},
	}
}

// ShowCmd returns the config show subcommand
func ShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Long:  "Print the configuration after defaults, environment variables and flags are applied.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := &cli.OutputFormatter{}

			cfg := cli.ConfigFromContext(cmd.Context())
			if cfg == nil {
				loaded, err := config.Load(flagValue(cmd, "config"))
				if err != nil {
					return cli.Fail(formatter, cli.ExitError, "CONFIG_READ_ERROR", err.Error(), "")
				}
				cfg = loaded
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return cli.Fail(formatter, cli.ExitError, "CONFIG_READ_ERROR", err.Error(), "")
			}
			fmt.Print(string(data))
			return nil
		},
	}
}

// configPath returns --config when set, or the default location
func configPath(cmd *cobra.Command) (string, error) {
	if path := flagValue(cmd, "config"); path != "" {
		return path, nil
	}
	return config.Path()
}

// flagValue looks up a string flag on cmd or any of its parents
func flagValue(cmd *cobra.Command, name string) string {
	flag := cmd.Flag(name)
	if flag == nil {
		return ""
	}
	return flag.Value.String()
}

// writeConfig writes data next to path and renames it into place
func writeConfig(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".config-*.yaml")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	return os.Rename(tmp.Name(), path)
}
