package tui

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tick/internal/database"
	"github.com/thenoetrevino/tick/internal/models"
	taskservice "github.com/thenoetrevino/tick/internal/services/task"
	"github.com/thenoetrevino/tick/internal/testutil"
)

// ============================================================================
// Test Helpers
// ============================================================================

func setupModel(t *testing.T) (*Model, taskservice.Service, *database.Repository) {
	t.Helper()
	repo := testutil.SetupTestDB(t)
	svc := taskservice.NewService(repo)
	return New(context.Background(), svc, nil), svc, repo
}

func createTask(t *testing.T, svc taskservice.Service, name string, completed bool) *models.Task {
	t.Helper()
	task, err := svc.CreateTask(context.Background(), taskservice.CreateTaskRequest{Name: name})
	require.NoError(t, err)
	if completed {
		task, err = svc.SetStatus(context.Background(), task.ID, models.StatusCompleted)
		require.NoError(t, err)
	}
	return task
}

func press(m *Model, k tea.Key) tea.Cmd {
	_, cmd := m.Update(tea.KeyPressMsg(k))
	return cmd
}

func pressRune(m *Model, r rune) tea.Cmd {
	return press(m, tea.Key{Code: r, Text: string(r)})
}

func ctrlS(m *Model) tea.Cmd {
	return press(m, tea.Key{Code: 's', Mod: tea.ModCtrl})
}

// ============================================================================
// Views and navigation
// ============================================================================

func TestNew_LoadsBothViews(t *testing.T) {
	_, svc, _ := setupModel(t)
	createTask(t, svc, "Buy milk", false)
	createTask(t, svc, "Call mom", false)
	createTask(t, svc, "Pay rent", true)

	m := New(context.Background(), svc, nil)

	assert.Equal(t, OpenView, m.view)
	require.Len(t, m.visibleTasks(), 2)
	assert.Equal(t, "Buy milk", m.visibleTasks()[0].Name)

	press(m, tea.Key{Code: tea.KeyTab})
	assert.Equal(t, CompletedView, m.view)
	require.Len(t, m.visibleTasks(), 1)
	assert.Equal(t, "Pay rent", m.visibleTasks()[0].Name)

	press(m, tea.Key{Code: tea.KeyTab})
	assert.Equal(t, OpenView, m.view)
}

func TestNavigation_StaysInBounds(t *testing.T) {
	_, svc, _ := setupModel(t)
	createTask(t, svc, "first", false)
	createTask(t, svc, "second", false)
	m := New(context.Background(), svc, nil)

	pressRune(m, 'k')
	assert.Equal(t, "first", m.selectedTask().Name)

	pressRune(m, 'j')
	pressRune(m, 'j')
	pressRune(m, 'j')
	assert.Equal(t, "second", m.selectedTask().Name)

	press(m, tea.Key{Code: tea.KeyUp})
	assert.Equal(t, "first", m.selectedTask().Name)
}

func TestEmptyView(t *testing.T) {
	m, _, _ := setupModel(t)

	assert.Nil(t, m.selectedTask())
	assert.Nil(t, press(m, tea.Key{Code: tea.KeySpace}), "toggle on an empty view does nothing")
	pressRune(m, 'd')
	assert.Equal(t, NormalMode, m.mode)
	assert.Contains(t, m.render(), "No open tasks")
}

// ============================================================================
// Mutations
// ============================================================================

func TestToggle_MovesTaskBetweenViews(t *testing.T) {
	_, svc, _ := setupModel(t)
	task := createTask(t, svc, "Water plants", false)
	m := New(context.Background(), svc, nil)

	cmd := press(m, tea.Key{Code: tea.KeySpace})
	assert.NotNil(t, cmd, "a notification is scheduled for removal")
	require.NotNil(t, m.notification)
	assert.Equal(t, "Task completed", m.notification.Message)
	assert.Empty(t, m.visibleTasks())

	stored, err := svc.GetTask(context.Background(), task.ID)
	require.NoError(t, err)
	assert.True(t, stored.Status.IsCompleted())

	press(m, tea.Key{Code: tea.KeyTab})
	press(m, tea.Key{Code: tea.KeySpace})
	assert.Equal(t, "Task reopened", m.notification.Message)
	assert.Empty(t, m.visibleTasks())
}

func TestDelete_Confirm(t *testing.T) {
	_, svc, _ := setupModel(t)
	createTask(t, svc, "Keep", false)
	createTask(t, svc, "Remove", false)
	m := New(context.Background(), svc, nil)

	pressRune(m, 'j')
	pressRune(m, 'd')
	assert.Equal(t, DeleteConfirmMode, m.mode)
	assert.Contains(t, m.render(), "Delete task 'Remove'?")

	pressRune(m, 'y')
	assert.Equal(t, NormalMode, m.mode)
	assert.Equal(t, "Task deleted", m.notification.Message)
	require.Len(t, m.visibleTasks(), 1)
	assert.Equal(t, "Keep", m.visibleTasks()[0].Name)
	assert.Equal(t, "Keep", m.selectedTask().Name, "cursor is clamped after delete")
}

func TestDelete_Declined(t *testing.T) {
	_, svc, _ := setupModel(t)
	createTask(t, svc, "Keep", false)
	m := New(context.Background(), svc, nil)

	pressRune(m, 'd')
	pressRune(m, 'n')

	assert.Equal(t, NormalMode, m.mode)
	assert.Nil(t, m.notification)
	assert.Len(t, m.visibleTasks(), 1)
}

func TestAddForm(t *testing.T) {
	m, svc, _ := setupModel(t)

	pressRune(m, 'a')
	require.Equal(t, FormMode, m.mode)
	require.NotNil(t, m.form)
	assert.False(t, m.form.isEdit())
	assert.Equal(t, models.PriorityMedium, m.form.priority)
	assert.Contains(t, m.render(), "New Task")

	m.form.name = "Buy milk"
	m.form.description = "2%"
	m.form.priority = models.PriorityHigh
	m.form.deadline = "2025-06-01 18:00"
	ctrlS(m)

	assert.Equal(t, NormalMode, m.mode)
	assert.Equal(t, "Task added", m.notification.Message)

	tasks, err := svc.ListTasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Buy milk", tasks[0].Name)
	assert.Equal(t, models.PriorityHigh, tasks[0].Priority)
	assert.Equal(t, "2025-06-01 18:00", tasks[0].DeadlineString())
	assert.Len(t, m.visibleTasks(), 1, "list is re-read after the mutation")
}

func TestAddForm_Invalid(t *testing.T) {
	m, svc, _ := setupModel(t)

	pressRune(m, 'a')
	m.form.name = "   "
	ctrlS(m)

	require.NotNil(t, m.notification)
	assert.Equal(t, LevelError, m.notification.Level)
	assert.Equal(t, "Failed to add task: task name cannot be empty", m.notification.Message)

	tasks, err := svc.ListTasks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestAddForm_Escape(t *testing.T) {
	m, svc, _ := setupModel(t)

	pressRune(m, 'a')
	m.form.name = "Never saved"
	press(m, tea.Key{Code: tea.KeyEscape})

	assert.Equal(t, NormalMode, m.mode)
	assert.Nil(t, m.form)
	tasks, err := svc.ListTasks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestEditForm(t *testing.T) {
	_, svc, _ := setupModel(t)
	task, err := svc.CreateTask(context.Background(), taskservice.CreateTaskRequest{
		Name:     "Draft",
		Priority: models.PriorityLow,
		Deadline: "2025-01-01 09:00",
	})
	require.NoError(t, err)
	m := New(context.Background(), svc, nil)

	pressRune(m, 'e')
	require.Equal(t, FormMode, m.mode)
	assert.True(t, m.form.isEdit())
	assert.Equal(t, "Draft", m.form.name)
	assert.Equal(t, models.PriorityLow, m.form.priority)
	assert.Equal(t, "2025-01-01 09:00", m.form.deadline)

	m.form.name = "Final"
	m.form.deadline = ""
	ctrlS(m)

	assert.Equal(t, "Task updated", m.notification.Message)
	stored, err := svc.GetTask(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.ID, stored.ID)
	assert.Equal(t, "Final", stored.Name)
	assert.Nil(t, stored.Deadline)
}

func TestStorageFault_ShowsError(t *testing.T) {
	m, svc, repo := setupModel(t)
	createTask(t, svc, "Doomed", false)
	require.NoError(t, m.reload())
	require.NoError(t, repo.Close())

	assert.NotPanics(t, func() {
		press(m, tea.Key{Code: tea.KeySpace})
	})
	require.NotNil(t, m.notification)
	assert.Equal(t, LevelError, m.notification.Level)
	assert.Equal(t, "Failed to update task", m.notification.Message)
	assert.Len(t, m.visibleTasks(), 1, "the previous list is kept")
}

// ============================================================================
// Notifications, help and quit
// ============================================================================

func TestNotification_OnlyLatestIsCleared(t *testing.T) {
	m, _, _ := setupModel(t)

	m.notify(LevelInfo, "first")
	stale := clearNotificationMsg{seq: m.notificationSeq}
	m.notify(LevelInfo, "second")

	m.Update(stale)
	require.NotNil(t, m.notification)
	assert.Equal(t, "second", m.notification.Message)

	m.Update(clearNotificationMsg{seq: m.notificationSeq})
	assert.Nil(t, m.notification)
}

func TestHelpMode(t *testing.T) {
	m, _, _ := setupModel(t)

	pressRune(m, '?')
	assert.Equal(t, HelpMode, m.mode)
	assert.Contains(t, m.render(), "Keys")

	pressRune(m, 'x')
	assert.Equal(t, NormalMode, m.mode)
}

func TestQuit(t *testing.T) {
	m, _, _ := setupModel(t)

	cmd := pressRune(m, 'q')
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestRender_TabsAndDetails(t *testing.T) {
	_, svc, _ := setupModel(t)
	_, err := svc.CreateTask(context.Background(), taskservice.CreateTaskRequest{
		Name:        "Read book",
		Description: "chapter three",
	})
	require.NoError(t, err)
	createTask(t, svc, "Done thing", true)
	m := New(context.Background(), svc, nil)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	out := m.render()
	assert.Contains(t, out, "Open (1)")
	assert.Contains(t, out, "Completed (1)")
	assert.Contains(t, out, "Read book")
	assert.NotContains(t, out, "chapter three")

	press(m, tea.Key{Code: tea.KeyEnter})
	assert.Contains(t, m.render(), "chapter three")
}
