package task

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tick/internal/cli"
	"github.com/thenoetrevino/tick/internal/cli/handler"
	taskservice "github.com/thenoetrevino/tick/internal/services/task"
)

// EditCmd returns the edit subcommand
func EditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <task_id>",
		Short: "Edit a task",
		Long: `Change the fields of an existing task. Only the flags given are changed.

Examples:
  tick edit 3 --name="Buy oat milk"
  tick edit 3 --priority=low --deadline="2025-06-02 09:00"
  tick edit 3 --clear-deadline
  echo "new notes" | tick edit 3 --description=-
`,
		Args: cobra.ExactArgs(1),
		RunE: runEdit,
	}

	cmd.Flags().String("name", "", "New task name")
	cmd.Flags().String("description", "", "New description (use - for stdin)")
	cmd.Flags().String("priority", "", "New priority: high, medium, low")
	cmd.Flags().String("deadline", "", "New deadline as \"YYYY-MM-DD HH:MM\"")
	cmd.Flags().Bool("clear-deadline", false, "Remove the deadline")
	cmd.MarkFlagsMutuallyExclusive("deadline", "clear-deadline")

	addOutputFlags(cmd)

	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	parser := handler.NewFlagParser(cmd)
	formatter := parser.Formatter()

	taskID, err := parser.TaskID(args)
	if err != nil {
		return err
	}

	req := taskservice.UpdateTaskRequest{TaskID: taskID}

	if parser.Changed("name") {
		name := parser.String("name")
		req.Name = &name
	}
	if parser.Changed("description") {
		description, err := parser.Description("description")
		if err != nil {
			return err
		}
		req.Description = &description
	}
	if parser.Changed("priority") {
		priority, err := parser.Priority("priority")
		if err != nil {
			return err
		}
		req.Priority = &priority
	}
	if parser.Changed("deadline") {
		deadline := parser.String("deadline")
		req.Deadline = &deadline
	}
	req.ClearDeadline = parser.Bool("clear-deadline")

	if req.Name == nil && req.Description == nil && req.Priority == nil && req.Deadline == nil && !req.ClearDeadline {
		return cli.Fail(formatter, cli.ExitUsage, "NO_CHANGES", "nothing to change",
			"Pass at least one of --name, --description, --priority, --deadline, --clear-deadline")
	}

	cliInstance, closeFn, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeFn()

	task, err := cliInstance.App.TaskService.UpdateTask(ctx, req)
	if err != nil {
		return cli.FailService(formatter, taskID, err)
	}

	return formatter.Success(taskResult(task, func() string {
		return fmt.Sprintf("✓ Task %d updated successfully", task.ID)
	}))
}
