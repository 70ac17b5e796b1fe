// Package tui is the interactive terminal interface: two lists of tasks,
// Open and Completed, with dialogs for adding, editing and deleting.
package tui

import (
	"context"
	"log/slog"
	"time"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tick/internal/config"
	"github.com/thenoetrevino/tick/internal/models"
	taskservice "github.com/thenoetrevino/tick/internal/services/task"
)

// Timeout constant for database operations
const timeoutDB = 30 * time.Second

// View selects which partition of the task list is shown
type View int

const (
	OpenView View = iota
	CompletedView
)

func (v View) String() string {
	if v == CompletedView {
		return "Completed"
	}
	return "Open"
}

// Mode is the current interaction mode
type Mode int

const (
	NormalMode Mode = iota
	FormMode
	DeleteConfirmMode
	HelpMode
)

// Model is the bubbletea model of the TUI
type Model struct {
	ctx     context.Context
	service taskservice.Service

	keys   keyMap
	help   help.Model
	styles styles

	// tasks is the last full list read from the store
	tasks       []*models.Task
	view        View
	cursor      int
	mode        Mode
	showDetails bool

	form     *taskForm
	deleting *models.Task

	notification    *Notification
	notificationSeq int

	width  int
	height int
}

// New creates the model and loads the task list
func New(ctx context.Context, service taskservice.Service, cfg *config.Config) *Model {
	if cfg == nil {
		cfg = config.Default()
	}

	m := &Model{
		ctx:     ctx,
		service: service,
		keys:    newKeyMap(cfg.KeyMappings),
		help:    help.New(),
		styles:  newStyles(cfg.ColorScheme),
	}
	m.reload()
	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// dbContext creates a child context with timeout for database operations
func (m *Model) dbContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(m.ctx, timeoutDB)
}

// reload re-reads the full list. On failure the previous list is kept.
func (m *Model) reload() error {
	ctx, cancel := m.dbContext()
	defer cancel()

	tasks, err := m.service.ListTasks(ctx)
	if err != nil {
		slog.Error("Error loading tasks", "error", err)
		return err
	}
	m.tasks = tasks
	m.clampCursor()
	return nil
}

// visibleTasks returns the tasks of the current view, in list order
func (m *Model) visibleTasks() []*models.Task {
	return models.FilterByStatus(m.tasks, m.view == CompletedView)
}

// selectedTask returns the task under the cursor, or nil for an empty view
func (m *Model) selectedTask() *models.Task {
	tasks := m.visibleTasks()
	if m.cursor < 0 || m.cursor >= len(tasks) {
		return nil
	}
	return tasks[m.cursor]
}

func (m *Model) clampCursor() {
	n := len(m.visibleTasks())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
