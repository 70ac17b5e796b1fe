package task

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tick/internal/cli"
	"github.com/thenoetrevino/tick/internal/cli/handler"
	"github.com/thenoetrevino/tick/internal/cli/styles"
	"github.com/thenoetrevino/tick/internal/models"
	"github.com/thenoetrevino/tick/internal/render"
)

// ShowCmd returns the show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <task_id>",
		Short: "Show task details",
		Long:  "Display all details of a task. The description is rendered as markdown.",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}

	addOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
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

	task, err := cliInstance.App.TaskService.GetTask(ctx, taskID)
	if err != nil {
		return cli.FailService(formatter, taskID, err)
	}

	return formatter.Success(taskResult(task, func() string {
		return renderCard(task)
	}))
}

func renderCard(task *models.Task) string {
	var content strings.Builder

	// Header
	header := styles.TitleStyle.Render(fmt.Sprintf("#%d: %s", task.ID, task.Name))
	content.WriteString(header)
	content.WriteString("\n\n")

	// Metadata row
	metaLine := fmt.Sprintf("%s %s  %s %s",
		styles.LabelStyle.Render("Priority:"),
		styles.Priority(task.Priority),
		styles.LabelStyle.Render("Status:"),
		styles.Status(task.Status),
	)
	content.WriteString(metaLine)
	content.WriteString("\n")

	if task.Deadline != nil {
		content.WriteString(styles.LabelStyle.Render("Deadline:"))
		content.WriteString(" ")
		content.WriteString(styles.ValueStyle.Render(*task.Deadline))
		content.WriteString("\n")
	}

	// Description
	content.WriteString(styles.SectionStyle.Render("Description"))
	content.WriteString("\n")
	content.WriteString(render.Markdown(task.Description, styles.CardWidth-6))

	return styles.CardStyle.Render(content.String())
}
