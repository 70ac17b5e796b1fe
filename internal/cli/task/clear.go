package task

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tick/internal/cli"
	"github.com/thenoetrevino/tick/internal/cli/handler"
)

// ClearCmd returns the clear subcommand
func ClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all tasks",
		Long: `Delete every task, open and completed.

Clearing an empty list succeeds and reports zero deleted tasks.`,
		Args: cobra.NoArgs,
		RunE: runClear,
	}

	cmd.Flags().Bool("force", false, "Skip confirmation")
	addOutputFlags(cmd)

	return cmd
}

func runClear(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	parser := handler.NewFlagParser(cmd)
	force := parser.Bool("force")
	formatter := parser.Formatter()

	cliInstance, closeFn, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeFn()

	if !force && !formatter.Quiet && !formatter.JSON {
		if !confirm(cmd.InOrStdin(), "Delete ALL tasks?") {
			fmt.Println("Cancelled")
			return nil
		}
	}

	deleted, err := cliInstance.App.TaskService.DeleteAllTasks(ctx)
	if err != nil {
		return cli.FailService(formatter, 0, err)
	}

	return formatter.Success(cli.Result{
		Quiet:  []any{deleted},
		Fields: map[string]interface{}{"deleted": deleted},
		Human: func() string {
			return fmt.Sprintf("✓ Deleted %d task(s)", deleted)
		},
	})
}
