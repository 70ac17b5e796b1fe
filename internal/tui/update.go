package tui

import (
	"errors"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/tick/internal/models"
	taskservice "github.com/thenoetrevino/tick/internal/services/task"
)

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.SetWidth(msg.Width)
		return m, nil
	case clearNotificationMsg:
		m.clearNotification(msg)
		return m, nil
	}

	// Forms need to receive ALL messages, not just key presses
	if m.mode == FormMode {
		return m, m.updateForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch m.mode {
	case DeleteConfirmMode:
		return m, m.updateDeleteConfirm(keyMsg)
	case HelpMode:
		return m, m.updateHelp(keyMsg)
	default:
		return m, m.updateNormal(keyMsg)
	}
}

func (m *Model) updateNormal(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.visibleTasks())-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Switch):
		if m.view == OpenView {
			m.view = CompletedView
		} else {
			m.view = OpenView
		}
		m.cursor = 0

	case key.Matches(msg, m.keys.View):
		m.showDetails = !m.showDetails

	case key.Matches(msg, m.keys.Toggle):
		return m.toggleSelected()

	case key.Matches(msg, m.keys.Add):
		m.form = newTaskForm(nil)
		m.mode = FormMode
		return m.form.form.Init()

	case key.Matches(msg, m.keys.Edit):
		task := m.selectedTask()
		if task == nil {
			return nil
		}
		m.form = newTaskForm(task)
		m.mode = FormMode
		return m.form.form.Init()

	case key.Matches(msg, m.keys.Delete):
		task := m.selectedTask()
		if task == nil {
			return nil
		}
		m.deleting = task
		m.mode = DeleteConfirmMode

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = true
		m.mode = HelpMode
	}

	return nil
}

func (m *Model) updateHelp(msg tea.KeyPressMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}
	m.help.ShowAll = false
	m.mode = NormalMode
	return nil
}

func (m *Model) updateDeleteConfirm(msg tea.KeyPressMsg) tea.Cmd {
	task := m.deleting
	m.deleting = nil
	m.mode = NormalMode

	if !strings.EqualFold(msg.String(), "y") {
		return nil
	}

	ctx, cancel := m.dbContext()
	defer cancel()

	if err := m.service.DeleteTask(ctx, task.ID); err != nil {
		return m.notify(LevelError, failure("Failed to delete task", err))
	}
	return m.afterMutation("Task deleted")
}

// toggleSelected flips the status of the task under the cursor. The task
// leaves the current view, so the cursor stays on the next one.
func (m *Model) toggleSelected() tea.Cmd {
	task := m.selectedTask()
	if task == nil {
		return nil
	}

	status := models.StatusCompleted
	message := "Task completed"
	if task.Status.IsCompleted() {
		status = models.StatusOpen
		message = "Task reopened"
	}

	ctx, cancel := m.dbContext()
	defer cancel()

	if _, err := m.service.SetStatus(ctx, task.ID, status); err != nil {
		return m.notify(LevelError, failure("Failed to update task", err))
	}
	return m.afterMutation(message)
}

func (m *Model) updateForm(msg tea.Msg) tea.Cmd {
	if m.form == nil {
		m.mode = NormalMode
		return nil
	}

	// Check for keyboard shortcuts before passing to form
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch {
		case keyMsg.String() == "esc":
			m.closeForm()
			return nil
		case key.Matches(keyMsg, m.keys.Save):
			m.form.confirm = true
			m.form.form.State = huh.StateCompleted
			return m.submitForm()
		}
	}

	model, cmd := m.form.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.form.form = f
	}

	switch m.form.form.State {
	case huh.StateCompleted:
		return m.submitForm()
	case huh.StateAborted:
		m.closeForm()
		return nil
	}

	return cmd
}

func (m *Model) closeForm() {
	m.form = nil
	m.mode = NormalMode
}

// submitForm saves the form values through the task service
func (m *Model) submitForm() tea.Cmd {
	f := m.form
	m.closeForm()

	if !f.confirm {
		return nil
	}

	ctx, cancel := m.dbContext()
	defer cancel()

	if f.isEdit() {
		req := taskservice.UpdateTaskRequest{
			TaskID:      f.taskID,
			Name:        &f.name,
			Description: &f.description,
			Priority:    &f.priority,
		}
		if strings.TrimSpace(f.deadline) == "" {
			req.ClearDeadline = true
		} else {
			req.Deadline = &f.deadline
		}

		if _, err := m.service.UpdateTask(ctx, req); err != nil {
			return m.notify(LevelError, failure("Failed to update task", err))
		}
		return m.afterMutation("Task updated")
	}

	_, err := m.service.CreateTask(ctx, taskservice.CreateTaskRequest{
		Name:        f.name,
		Description: f.description,
		Priority:    f.priority,
		Deadline:    f.deadline,
	})
	if err != nil {
		return m.notify(LevelError, failure("Failed to add task", err))
	}
	return m.afterMutation("Task added")
}

// afterMutation re-reads the full list and reports success
func (m *Model) afterMutation(message string) tea.Cmd {
	if err := m.reload(); err != nil {
		return m.notify(LevelError, "Failed to load tasks")
	}
	return m.notify(LevelInfo, message)
}

// failure builds the notification text for a failed operation
func failure(action string, err error) string {
	switch {
	case errors.Is(err, taskservice.ErrNotFound):
		return action + ": task no longer exists"
	case errors.Is(err, taskservice.ErrValidation):
		return action + ": " + strings.TrimPrefix(err.Error(), taskservice.ErrValidation.Error()+": ")
	default:
		return action
	}
}
