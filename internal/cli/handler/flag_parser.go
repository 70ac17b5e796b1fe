// Package handler provides flag parsing utilities shared by the task commands
package handler

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tick/internal/cli"
	"github.com/thenoetrevino/tick/internal/models"
)

// FlagParser provides common flag extraction patterns. Parse failures are
// reported through the formatter and returned as exit-coded errors.
type FlagParser struct {
	cmd       *cobra.Command
	formatter *cli.OutputFormatter
}

// NewFlagParser creates a parser whose formatter honours --json and --quiet
func NewFlagParser(cmd *cobra.Command) *FlagParser {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	return &FlagParser{
		cmd:       cmd,
		formatter: &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode},
	}
}

// Formatter returns the output formatter for the command
func (p *FlagParser) Formatter() *cli.OutputFormatter {
	return p.formatter
}

// TaskID parses the positional task ID
func (p *FlagParser) TaskID(args []string) (int, error) {
	if len(args) == 0 {
		return 0, cli.Fail(p.formatter, cli.ExitUsage, "MISSING_TASK_ID",
			"a task ID is required", "Usage: "+p.cmd.UseLine())
	}
	taskID, err := cli.ParseTaskID(args[0])
	if err != nil {
		return 0, cli.Fail(p.formatter, cli.ExitUsage, "INVALID_TASK_ID",
			"task ID must be a positive integer", "Usage: "+p.cmd.UseLine())
	}
	return taskID, nil
}

// String extracts a string flag
func (p *FlagParser) String(flagName string) string {
	value, _ := p.cmd.Flags().GetString(flagName)
	return value
}

// Bool extracts a boolean flag
func (p *FlagParser) Bool(flagName string) bool {
	value, _ := p.cmd.Flags().GetBool(flagName)
	return value
}

// Changed reports whether the flag was given on the command line
func (p *FlagParser) Changed(flagName string) bool {
	return p.cmd.Flags().Changed(flagName)
}

// Priority parses a priority name flag
func (p *FlagParser) Priority(flagName string) (models.Priority, error) {
	priority, err := cli.ParsePriority(p.String(flagName))
	if err != nil {
		return 0, cli.Fail(p.formatter, cli.ExitValidation, "INVALID_PRIORITY", err.Error(),
			"Valid priorities are: high, medium, low")
	}
	return priority, nil
}

// Description reads a description flag, taking stdin when the value is "-"
func (p *FlagParser) Description(flagName string) (string, error) {
	description, err := cli.ReadDescription(p.String(flagName), p.cmd.InOrStdin())
	if err != nil {
		return "", cli.Fail(p.formatter, cli.ExitDataErr, "STDIN_READ_ERROR", err.Error(), "")
	}
	return description, nil
}
