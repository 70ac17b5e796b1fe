package tui

import (
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/huh/v2"
	clistyles "github.com/thenoetrevino/tick/internal/cli/styles"
	"github.com/thenoetrevino/tick/internal/models"
	taskservice "github.com/thenoetrevino/tick/internal/services/task"
)

// taskForm is the add/edit dialog. Field values live here so the huh form
// can write to them through pointers.
type taskForm struct {
	form *huh.Form

	// taskID is 0 when adding
	taskID int

	name        string
	description string
	priority    models.Priority
	deadline    string
	confirm     bool
}

// newTaskForm creates the dialog, prefilled from task when editing
func newTaskForm(task *models.Task) *taskForm {
	f := &taskForm{
		priority: models.DefaultPriority,
		confirm:  true,
	}
	if task != nil {
		f.taskID = task.ID
		f.name = task.Name
		f.description = task.Description
		f.priority = task.Priority
		f.deadline = task.DeadlineString()
	}

	options := make([]huh.Option[models.Priority], 0, len(models.Priorities))
	for _, p := range models.Priorities {
		options = append(options, huh.NewOption(clistyles.Title(p.String()), p))
	}

	f.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Key("name").
			Title("Name").
			Placeholder("Enter task name...").
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return taskservice.ErrEmptyName
				}
				return nil
			}).
			Value(&f.name),
		huh.NewText().
			Key("description").
			Title("Description").
			Placeholder("Markdown is fine").
			CharLimit(5000).
			Lines(4).
			Value(&f.description),
		huh.NewSelect[models.Priority]().
			Key("priority").
			Title("Priority").
			Options(options...).
			Value(&f.priority),
		huh.NewInput().
			Key("deadline").
			Title("Deadline").
			Placeholder(models.DeadlineLayout + " (optional)").
			Validate(func(s string) error {
				_, err := models.ParseDeadline(s)
				return err
			}).
			Value(&f.deadline),
		huh.NewConfirm().
			Key("confirm").
			Title("Save this task?").
			Affirmative("Yes").
			Negative("No").
			Value(&f.confirm),
	))

	return f.withKeyMap()
}

// withKeyMap adds shift+enter as a newline key. Esc and the save key are
// handled by the model before messages reach the form.
func (f *taskForm) withKeyMap() *taskForm {
	keymap := huh.NewDefaultKeyMap()
	keymap.Text.NewLine = key.NewBinding(
		key.WithKeys("shift+enter", "alt+enter", "ctrl+j"),
		key.WithHelp("shift+enter / alt+enter / ctrl+j", "new line"),
	)
	keymap.Quit = key.NewBinding(key.WithKeys("ctrl+c"))

	f.form = f.form.WithKeyMap(keymap).WithShowHelp(false)
	return f
}

func (f *taskForm) isEdit() bool {
	return f.taskID != 0
}
