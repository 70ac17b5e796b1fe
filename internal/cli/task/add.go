package task

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tick/internal/cli"
	"github.com/thenoetrevino/tick/internal/cli/handler"
	"github.com/thenoetrevino/tick/internal/cli/styles"
	"github.com/thenoetrevino/tick/internal/models"
	taskservice "github.com/thenoetrevino/tick/internal/services/task"
)

// AddCmd returns the add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new task",
		Long: `Add a new open task.

Examples:
  # Simple task (human-readable output)
  tick add --name="Buy milk"

  # JSON output for agents
  tick add --name="Buy milk" --json

  # Quiet mode for bash capture
  TASK_ID=$(tick add --name="Buy milk" --quiet)

  # Full example with all options
  tick add \
    --name="Buy milk" \
    --description="2%" \
    --priority=high \
    --deadline="2025-06-01 18:00"

  # Description from stdin
  cat notes.md | tick add --name="Write report" --description=-
`,
		Args: cobra.NoArgs,
		RunE: runAdd,
	}

	// Required flags
	cmd.Flags().String("name", "", "Task name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	// Optional flags
	cmd.Flags().String("description", "", "Task description (use - for stdin)")
	cmd.Flags().String("priority", models.DefaultPriority.String(), "Priority: high, medium, low")
	cmd.Flags().String("deadline", "", "Deadline as \"YYYY-MM-DD HH:MM\"")

	addOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	parser := handler.NewFlagParser(cmd)
	formatter := parser.Formatter()

	priority, err := parser.Priority("priority")
	if err != nil {
		return err
	}

	description, err := parser.Description("description")
	if err != nil {
		return err
	}

	cliInstance, closeFn, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeFn()

	task, err := cliInstance.App.TaskService.CreateTask(ctx, taskservice.CreateTaskRequest{
		Name:        parser.String("name"),
		Description: description,
		Priority:    priority,
		Deadline:    parser.String("deadline"),
	})
	if err != nil {
		return cli.FailService(formatter, 0, err)
	}

	return formatter.Success(taskResult(task, func() string {
		var b strings.Builder
		fmt.Fprintf(&b, "✓ Task '%s' created successfully (ID: %d)\n", task.Name, task.ID)
		fmt.Fprintf(&b, "  Priority: %s", styles.Priority(task.Priority))
		if task.Deadline != nil {
			fmt.Fprintf(&b, "\n  Deadline: %s", *task.Deadline)
		}
		return b.String()
	}))
}
