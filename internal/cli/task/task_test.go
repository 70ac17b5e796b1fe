package task

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tick/internal/app"
	tickcli "github.com/thenoetrevino/tick/internal/cli"
	"github.com/thenoetrevino/tick/internal/database"
	"github.com/thenoetrevino/tick/internal/models"
	"github.com/thenoetrevino/tick/internal/testutil"
	"github.com/thenoetrevino/tick/internal/testutil/cli"
)

func run(t *testing.T, a *app.App, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	return cli.ExecuteCLICommand(t, a, cmd, args)
}

func setup(t *testing.T) (*database.Repository, *app.App) {
	t.Helper()
	return cli.SetupCLITest(t)
}

func TestCommands(t *testing.T) {
	names := make(map[string]bool)
	for _, cmd := range Commands() {
		names[cmd.Name()] = true
	}
	for _, want := range []string{"add", "list", "show", "edit", "done", "reopen", "delete", "clear"} {
		assert.True(t, names[want], "missing command %s", want)
	}
}

// ============================================================================
// add
// ============================================================================

func TestAdd(t *testing.T) {
	repo, a := setup(t)

	t.Run("quiet prints only the ID", func(t *testing.T) {
		output, err := run(t, a, AddCmd(), "--name", "Buy milk", "--quiet")
		require.NoError(t, err)

		idStr := strings.TrimSpace(output)
		assert.Regexp(t, `^\d+$`, idStr)

		var id int
		_, _ = fmt.Sscanf(idStr, "%d", &id)
		task := testutil.GetTestTask(t, repo, id)
		assert.Equal(t, "Buy milk", task.Name)
		assert.Equal(t, models.PriorityMedium, task.Priority)
		assert.Equal(t, models.StatusOpen, task.Status)
	})

	t.Run("all fields with JSON output", func(t *testing.T) {
		output, err := run(t, a, AddCmd(),
			"--name", "Water plants",
			"--description", "balcony",
			"--priority", "high",
			"--deadline", "2025-06-01 18:00",
			"--json")
		require.NoError(t, err)

		result := testutil.ParseJSON(t, output)
		assert.Equal(t, true, result["success"])
		task := result["task"].(map[string]interface{})
		assert.Equal(t, "Water plants", task["name"])
		assert.Equal(t, "balcony", task["description"])
		assert.Equal(t, "high", task["priority"])
		assert.Equal(t, float64(1), task["priority_level"])
		assert.Equal(t, "2025-06-01 18:00", task["deadline"])
		assert.Equal(t, false, task["completed"])
	})

	t.Run("human readable output", func(t *testing.T) {
		output, err := run(t, a, AddCmd(), "--name", "Call mom")
		require.NoError(t, err)
		assert.Contains(t, output, "✓ Task 'Call mom' created successfully")
	})

	t.Run("description from stdin", func(t *testing.T) {
		cmd := AddCmd()
		cmd.SetIn(strings.NewReader("line one\nline two\n"))
		output, err := run(t, a, cmd, "--name", "Notes", "--description", "-", "--quiet")
		require.NoError(t, err)

		var id int
		_, _ = fmt.Sscanf(strings.TrimSpace(output), "%d", &id)
		task := testutil.GetTestTask(t, repo, id)
		assert.Equal(t, "line one\nline two", task.Description)
	})
}

func TestAdd_Negative(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
	}{
		{"blank name", []string{"--name", "   "}, tickcli.ExitValidation},
		{"invalid priority", []string{"--name", "x", "--priority", "urgent"}, tickcli.ExitValidation},
		{"malformed deadline", []string{"--name", "x", "--deadline", "tomorrow"}, tickcli.ExitValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, a := setup(t)

			_, err := run(t, a, AddCmd(), append(tt.args, "--json")...)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, tickcli.ExitCode(err))
			assert.Equal(t, 0, testutil.CountTasks(t, repo))
		})
	}

	t.Run("missing name flag", func(t *testing.T) {
		_, a := setup(t)
		_, err := run(t, a, AddCmd())
		assert.Error(t, err)
	})
}

// ============================================================================
// list
// ============================================================================

func TestList(t *testing.T) {
	repo, a := setup(t)

	openID := testutil.CreateTestTask(t, repo, "Open task")
	doneID := testutil.CreateTestTask(t, repo, "Finished task")
	_, err := a.TaskService.SetStatus(t.Context(), doneID, models.StatusCompleted)
	require.NoError(t, err)

	t.Run("all as JSON", func(t *testing.T) {
		output, err := run(t, a, ListCmd(), "--json")
		require.NoError(t, err)

		tasks := testutil.ParseJSON(t, output)["tasks"].([]interface{})
		require.Len(t, tasks, 2)
		assert.Equal(t, float64(openID), tasks[0].(map[string]interface{})["id"])
		assert.Equal(t, float64(doneID), tasks[1].(map[string]interface{})["id"])
	})

	t.Run("open only", func(t *testing.T) {
		output, err := run(t, a, ListCmd(), "--status", "open", "--quiet")
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("%d\n", openID), output)
	})

	t.Run("done only", func(t *testing.T) {
		output, err := run(t, a, ListCmd(), "--status", "done", "--quiet")
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("%d\n", doneID), output)
	})

	t.Run("human table", func(t *testing.T) {
		output, err := run(t, a, ListCmd())
		require.NoError(t, err)

		plain := ansi.Strip(output)
		assert.Contains(t, plain, "Open task")
		assert.Contains(t, plain, "Finished task")
		assert.Contains(t, plain, "Priority")
	})

	t.Run("human table is unstyled when piped", func(t *testing.T) {
		output, err := run(t, a, ListCmd())
		require.NoError(t, err)
		assert.NotContains(t, output, "\x1b[")
	})

	t.Run("invalid status", func(t *testing.T) {
		_, err := run(t, a, ListCmd(), "--status", "someday", "--json")
		assert.Equal(t, tickcli.ExitUsage, tickcli.ExitCode(err))
	})
}

func TestList_Empty(t *testing.T) {
	_, a := setup(t)

	output, err := run(t, a, ListCmd())
	require.NoError(t, err)
	assert.Contains(t, output, "No tasks found")

	output, err = run(t, a, ListCmd(), "--json")
	require.NoError(t, err)
	tasks := testutil.ParseJSON(t, output)["tasks"].([]interface{})
	assert.Empty(t, tasks)
}

// ============================================================================
// show
// ============================================================================

func TestShow(t *testing.T) {
	repo, a := setup(t)
	id := testutil.CreateTestTask(t, repo, "Read book")

	output, err := run(t, a, ShowCmd(), fmt.Sprint(id), "--json")
	require.NoError(t, err)
	task := testutil.ParseJSON(t, output)["task"].(map[string]interface{})
	assert.Equal(t, "Read book", task["name"])
	assert.Nil(t, task["deadline"])

	output, err = run(t, a, ShowCmd(), fmt.Sprint(id))
	require.NoError(t, err)
	assert.Contains(t, output, "Read book")
	assert.Contains(t, output, "Description")
}

func TestShow_Negative(t *testing.T) {
	_, a := setup(t)

	_, err := run(t, a, ShowCmd(), "999", "--json")
	assert.Equal(t, tickcli.ExitNotFound, tickcli.ExitCode(err))

	_, err = run(t, a, ShowCmd(), "abc", "--json")
	assert.Equal(t, tickcli.ExitUsage, tickcli.ExitCode(err))
}

// ============================================================================
// edit
// ============================================================================

func TestEdit(t *testing.T) {
	repo, a := setup(t)
	id := testutil.CreateTestTask(t, repo, "Draft")

	_, err := run(t, a, EditCmd(), fmt.Sprint(id),
		"--name", "Final",
		"--priority", "low",
		"--deadline", "2025-12-24 18:00",
		"--quiet")
	require.NoError(t, err)

	task := testutil.GetTestTask(t, repo, id)
	assert.Equal(t, "Final", task.Name)
	assert.Equal(t, models.PriorityLow, task.Priority)
	require.NotNil(t, task.Deadline)
	assert.Equal(t, "2025-12-24 18:00", *task.Deadline)

	_, err = run(t, a, EditCmd(), fmt.Sprint(id), "--clear-deadline", "--quiet")
	require.NoError(t, err)
	assert.Nil(t, testutil.GetTestTask(t, repo, id).Deadline)
	assert.Equal(t, "Final", testutil.GetTestTask(t, repo, id).Name, "unchanged fields are kept")
}

func TestEdit_Negative(t *testing.T) {
	repo, a := setup(t)
	id := testutil.CreateTestTask(t, repo, "Stable")

	_, err := run(t, a, EditCmd(), fmt.Sprint(id), "--json")
	assert.Equal(t, tickcli.ExitUsage, tickcli.ExitCode(err), "no flags means nothing to change")

	_, err = run(t, a, EditCmd(), "4242", "--name", "ghost", "--json")
	assert.Equal(t, tickcli.ExitNotFound, tickcli.ExitCode(err))

	_, err = run(t, a, EditCmd(), fmt.Sprint(id), "--name", "", "--json")
	assert.Equal(t, tickcli.ExitValidation, tickcli.ExitCode(err))

	assert.Equal(t, "Stable", testutil.GetTestTask(t, repo, id).Name)
}

// ============================================================================
// done / reopen
// ============================================================================

func TestDoneAndReopen(t *testing.T) {
	repo, a := setup(t)
	id := testutil.CreateTestTask(t, repo, "Toggle me")

	output, err := run(t, a, DoneCmd(), fmt.Sprint(id))
	require.NoError(t, err)
	assert.Contains(t, output, fmt.Sprintf("Task %d marked as done", id))
	assert.True(t, testutil.GetTestTask(t, repo, id).Status.IsCompleted())

	output, err = run(t, a, ReopenCmd(), fmt.Sprint(id), "--json")
	require.NoError(t, err)
	result := testutil.ParseJSON(t, output)
	assert.Equal(t, "open", result["status"])
	assert.False(t, testutil.GetTestTask(t, repo, id).Status.IsCompleted())

	_, err = run(t, a, DoneCmd(), "31337", "--quiet")
	assert.Equal(t, tickcli.ExitNotFound, tickcli.ExitCode(err))
}

// ============================================================================
// delete / clear
// ============================================================================

func TestDelete(t *testing.T) {
	repo, a := setup(t)

	t.Run("force", func(t *testing.T) {
		id := testutil.CreateTestTask(t, repo, "Gone")
		output, err := run(t, a, DeleteCmd(), fmt.Sprint(id), "--force")
		require.NoError(t, err)
		assert.Contains(t, output, fmt.Sprintf("✓ Task %d deleted successfully", id))

		_, err = run(t, a, DeleteCmd(), fmt.Sprint(id), "--force")
		assert.Equal(t, tickcli.ExitNotFound, tickcli.ExitCode(err), "second delete finds nothing")
	})

	t.Run("confirmed", func(t *testing.T) {
		id := testutil.CreateTestTask(t, repo, "Confirm me")
		cmd := DeleteCmd()
		cmd.SetIn(strings.NewReader("y\n"))
		_, err := run(t, a, cmd, fmt.Sprint(id))
		require.NoError(t, err)
		assert.Equal(t, 0, testutil.CountTasks(t, repo))
	})

	t.Run("declined", func(t *testing.T) {
		id := testutil.CreateTestTask(t, repo, "Keep me")
		cmd := DeleteCmd()
		cmd.SetIn(strings.NewReader("n\n"))
		output, err := run(t, a, cmd, fmt.Sprint(id))
		require.NoError(t, err)
		assert.Contains(t, output, "Cancelled")
		assert.Equal(t, "Keep me", testutil.GetTestTask(t, repo, id).Name)
	})
}

func TestClear(t *testing.T) {
	repo, a := setup(t)

	output, err := run(t, a, ClearCmd(), "--json")
	require.NoError(t, err, "clearing an empty list succeeds")
	assert.Equal(t, float64(0), testutil.ParseJSON(t, output)["deleted"])

	testutil.CreateTestTask(t, repo, "a")
	testutil.CreateTestTask(t, repo, "b")

	output, err = run(t, a, ClearCmd(), "--quiet")
	require.NoError(t, err)
	assert.Equal(t, "2\n", output)
	assert.Equal(t, 0, testutil.CountTasks(t, repo))
}

func TestStorageFault(t *testing.T) {
	repo, a := setup(t)
	require.NoError(t, repo.Close())

	_, err := run(t, a, ListCmd(), "--json")
	assert.Equal(t, tickcli.ExitError, tickcli.ExitCode(err))

	_, err = run(t, a, AddCmd(), "--name", "late", "--json")
	assert.Equal(t, tickcli.ExitError, tickcli.ExitCode(err))
}
