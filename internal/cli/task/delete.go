package task

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tick/internal/cli"
	"github.com/thenoetrevino/tick/internal/cli/handler"
)

// DeleteCmd returns the delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <task_id>",
		Short: "Delete a task",
		Long:  "Delete a task by ID (requires confirmation unless --force, --quiet or --json).",
		Args:  cobra.ExactArgs(1),
		RunE:  runDelete,
	}

	cmd.Flags().Bool("force", false, "Skip confirmation")
	addOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	parser := handler.NewFlagParser(cmd)
	force := parser.Bool("force")
	formatter := parser.Formatter()

	taskID, err := parser.TaskID(args)
	if err != nil {
		return err
	}

	cliInstance, closeFn, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeFn()

	// Get task details for confirmation
	task, err := cliInstance.App.TaskService.GetTask(ctx, taskID)
	if err != nil {
		return cli.FailService(formatter, taskID, err)
	}

	// Ask for confirmation unless force or non-interactive output
	if !force && !formatter.Quiet && !formatter.JSON {
		if !confirm(cmd.InOrStdin(), fmt.Sprintf("Delete task #%d: '%s'?", taskID, task.Name)) {
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := cliInstance.App.TaskService.DeleteTask(ctx, taskID); err != nil {
		return cli.FailService(formatter, taskID, err)
	}

	return formatter.Success(cli.Result{
		Fields: map[string]interface{}{"task_id": taskID},
		Human: func() string {
			return fmt.Sprintf("✓ Task %d deleted successfully", taskID)
		},
	})
}
