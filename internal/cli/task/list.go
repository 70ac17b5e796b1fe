package task

import (
	"context"
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tick/internal/cli"
	"github.com/thenoetrevino/tick/internal/cli/handler"
	"github.com/thenoetrevino/tick/internal/cli/styles"
	"github.com/thenoetrevino/tick/internal/models"
	taskservice "github.com/thenoetrevino/tick/internal/services/task"
)

// ListCmd returns the list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List tasks in creation order.

Examples:
  tick list
  tick list --status=open
  tick list --status=done --json
`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().String("status", string(cli.FilterAll), "Which tasks to show: open, done, all")
	addOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	parser := handler.NewFlagParser(cmd)
	formatter := parser.Formatter()

	filter, err := cli.ParseStatusFilter(parser.String("status"))
	if err != nil {
		return cli.Fail(formatter, cli.ExitUsage, "INVALID_STATUS", err.Error(),
			"Valid statuses are: open, done, all")
	}

	cliInstance, closeFn, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeFn()

	tasks, err := listTasks(ctx, cliInstance.App.TaskService, filter)
	if err != nil {
		return cli.FailService(formatter, 0, err)
	}

	ids := make([]any, 0, len(tasks))
	items := make([]map[string]interface{}, 0, len(tasks))
	for _, task := range tasks {
		ids = append(ids, task.ID)
		items = append(items, taskJSON(task))
	}

	return formatter.Success(cli.Result{
		Quiet:  ids,
		Fields: map[string]interface{}{"tasks": items},
		Human: func() string {
			if len(tasks) == 0 {
				return "No tasks found"
			}
			return renderTable(tasks)
		},
	})
}

func listTasks(ctx context.Context, svc taskservice.Service, filter cli.StatusFilter) ([]*models.Task, error) {
	switch filter {
	case cli.FilterOpen:
		return svc.ListOpenTasks(ctx)
	case cli.FilterDone:
		return svc.ListCompletedTasks(ctx)
	default:
		return svc.ListTasks(ctx)
	}
}

// renderTable lays tasks out in aligned columns
func renderTable(tasks []*models.Task) string {
	idWidth := len("ID")
	nameWidth := len("Name")
	for _, task := range tasks {
		idWidth = max(idWidth, len(fmt.Sprint(task.ID)))
		nameWidth = max(nameWidth, lipgloss.Width(task.Name))
	}
	nameWidth = min(nameWidth, 40)

	cell := func(s string, width int) string {
		return lipgloss.NewStyle().Width(width).MaxWidth(width).Render(s)
	}

	var b strings.Builder
	header := strings.Join([]string{
		cell("ID", idWidth),
		cell("Name", nameWidth),
		cell("Priority", 8),
		cell("Deadline", 16),
		"Status",
	}, "  ")
	b.WriteString(styles.HeaderStyle.Render(header))

	for _, task := range tasks {
		name := task.Name
		if task.Status.IsCompleted() {
			name = styles.DoneStyle.Render(name)
		}
		deadline := task.DeadlineString()
		if deadline == "" {
			deadline = "-"
		}

		b.WriteString("\n")
		b.WriteString(strings.Join([]string{
			cell(fmt.Sprint(task.ID), idWidth),
			cell(name, nameWidth),
			cell(styles.Priority(task.Priority), 8),
			cell(deadline, 16),
			styles.Title(task.Status.String()),
		}, "  "))
	}

	return b.String()
}
