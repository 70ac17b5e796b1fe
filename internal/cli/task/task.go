package task

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tick/internal/cli"
	"github.com/thenoetrevino/tick/internal/models"
)

// Commands returns every task subcommand, registered directly on the root command
func Commands() []*cobra.Command {
	return []*cobra.Command{
		AddCmd(),
		ListCmd(),
		ShowCmd(),
		EditCmd(),
		DoneCmd(),
		ReopenCmd(),
		DeleteCmd(),
		ClearCmd(),
	}
}

// addOutputFlags adds the agent-friendly flags every command carries
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}

// openCLI returns the CLI for cmd and reports initialization failures
func openCLI(cmd *cobra.Command, formatter *cli.OutputFormatter) (*cli.CLI, func(), error) {
	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return nil, nil, cli.Fail(formatter, cli.ExitError, "INITIALIZATION_ERROR", err.Error(), "")
	}
	closeFn := func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}
	return cliInstance, closeFn, nil
}

// confirm asks a y/N question on stdout and reads the answer from in
func confirm(in io.Reader, question string) bool {
	fmt.Printf("%s (y/N): ", question)
	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && response == "" {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}

// taskResult reports a single task: its id in quiet mode, the task object
// in JSON and human() otherwise
func taskResult(task *models.Task, human func() string) cli.Result {
	return cli.Result{
		Quiet:  []any{task.ID},
		Fields: map[string]interface{}{"task": taskJSON(task)},
		Human:  human,
	}
}

// taskJSON is the JSON shape of a task in command output
func taskJSON(task *models.Task) map[string]interface{} {
	var deadline interface{}
	if task.Deadline != nil {
		deadline = *task.Deadline
	}
	return map[string]interface{}{
		"id":             task.ID,
		"name":           task.Name,
		"description":    task.Description,
		"priority":       task.Priority.String(),
		"priority_level": task.Priority.Level(),
		"deadline":       deadline,
		"status":         task.Status.String(),
		"completed":      task.Status.IsCompleted(),
	}
}
