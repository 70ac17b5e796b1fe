package task

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tick/internal/cli"
	"github.com/thenoetrevino/tick/internal/cli/handler"
	"github.com/thenoetrevino/tick/internal/models"
)

// DoneCmd returns the done subcommand
func DoneCmd() *cobra.Command {
	return statusCmd("done", "Mark a task as completed", models.StatusCompleted)
}

// ReopenCmd returns the reopen subcommand
func ReopenCmd() *cobra.Command {
	return statusCmd("reopen", "Mark a completed task as open again", models.StatusOpen)
}

func statusCmd(use, short string, status models.Status) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use + " <task_id>",
		Short: short,
		Long: fmt.Sprintf(`%s.

Examples:
  tick %[2]s 42
  tick %[2]s 42 --json
  tick %[2]s 42 --quiet
`, short, use),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetStatus(cmd, args, status)
		},
	}

	addOutputFlags(cmd)

	return cmd
}

func runSetStatus(cmd *cobra.Command, args []string, status models.Status) error {
	ctx := cmd.Context()
	parser := handler.NewFlagParser(cmd)
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

	task, err := cliInstance.App.TaskService.SetStatus(ctx, taskID, status)
	if err != nil {
		return cli.FailService(formatter, taskID, err)
	}

	return formatter.Success(cli.Result{
		Quiet: []any{task.ID},
		Fields: map[string]interface{}{
			"task_id": task.ID,
			"status":  task.Status.String(),
		},
		Human: func() string {
			if task.Status.IsCompleted() {
				return fmt.Sprintf("✓ Task %d marked as done", task.ID)
			}
			return fmt.Sprintf("✓ Task %d reopened", task.ID)
		},
	})
}
