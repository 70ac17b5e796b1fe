package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tick/internal/models"
	"github.com/thenoetrevino/tick/internal/render"
)

const defaultWidth = 80

// View implements tea.Model
func (m *Model) View() tea.View {
	var view tea.View
	view.AltScreen = true // Use alternate screen buffer
	view.Content = m.render()
	return view
}

func (m *Model) render() string {
	switch m.mode {
	case FormMode:
		if m.form != nil {
			return m.place(m.renderForm())
		}
	case DeleteConfirmMode:
		if m.deleting != nil {
			return m.place(m.renderDeleteConfirm())
		}
	case HelpMode:
		return m.place(m.styles.helpBox.Render("Keys\n\n" + m.help.View(m.keys)))
	}

	sections := []string{m.renderTabs(), "", m.renderList()}
	if m.showDetails {
		if task := m.selectedTask(); task != nil {
			sections = append(sections, "", m.renderDetails(task))
		}
	}
	sections = append(sections, "", m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// place centers content when the terminal size is known
func (m *Model) place(content string) string {
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) contentWidth() int {
	if m.width == 0 {
		return defaultWidth
	}
	return m.width
}

// renderTabs renders the view names with their task counts, followed by
// the current notification
func (m *Model) renderTabs() string {
	open := len(models.FilterByStatus(m.tasks, false))
	done := len(m.tasks) - open

	tabs := make([]string, 0, 3)
	for _, v := range []View{OpenView, CompletedView} {
		count := open
		if v == CompletedView {
			count = done
		}
		label := fmt.Sprintf("%s (%d)", v, count)
		if v == m.view {
			tabs = append(tabs, m.styles.activeTab.Render(label))
		} else {
			tabs = append(tabs, m.styles.inactiveTab.Render(label))
		}
	}
	if note := m.renderNotification(); note != "" {
		tabs = append(tabs, "  "+note)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Model) renderList() string {
	tasks := m.visibleTasks()
	if len(tasks) == 0 {
		return m.styles.subtle.Render(fmt.Sprintf("  No %s tasks", strings.ToLower(m.view.String())))
	}

	rows := make([]string, 0, len(tasks))
	for i, task := range tasks {
		style := m.styles.row
		if i == m.cursor {
			style = m.styles.selectedRow
		}
		rows = append(rows, style.Render(m.renderRow(task)))
	}
	return strings.Join(rows, "\n")
}

func (m *Model) renderRow(task *models.Task) string {
	check := "☐"
	name := task.Name
	if task.Status.IsCompleted() {
		check = "✓"
		name = m.styles.doneName.Render(name)
	}

	row := fmt.Sprintf("%s %s  %s", check, name, m.styles.priority[task.Priority].Render(task.Priority.String()))
	if task.Deadline != nil {
		row += m.styles.subtle.Render("  due " + *task.Deadline)
	}
	return row
}

// renderDetails renders the full task under the list
func (m *Model) renderDetails(task *models.Task) string {
	width := m.contentWidth() - 6

	var b strings.Builder
	b.WriteString(m.styles.detailTitle.Render(fmt.Sprintf("#%d %s", task.ID, task.Name)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Priority: %s  Status: %s", task.Priority, task.Status)
	if task.Deadline != nil {
		fmt.Fprintf(&b, "  Deadline: %s", *task.Deadline)
	}
	b.WriteString("\n\n")

	if strings.TrimSpace(task.Description) == "" {
		b.WriteString(render.Placeholder("No description"))
	} else {
		b.WriteString(render.Wrap(task.Description, width))
	}

	return m.styles.detailBox.Width(width + 4).Render(b.String())
}

func (m *Model) renderForm() string {
	title := "New Task"
	box := m.styles.createBox
	if m.form.isEdit() {
		title = fmt.Sprintf("Edit Task #%d", m.form.taskID)
		box = m.styles.editBox
	}

	hint := m.styles.subtle.Render(fmt.Sprintf("%s save · esc cancel", m.keys.Save.Help().Key))
	return box.Width(m.contentWidth() / 2).Render(title + "\n\n" + m.form.form.View() + "\n" + hint)
}

func (m *Model) renderDeleteConfirm() string {
	return m.styles.deleteBox.Render(fmt.Sprintf("Delete task '%s'?\n\n(y/N)", m.deleting.Name))
}
