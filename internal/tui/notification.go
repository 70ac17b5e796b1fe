package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// notificationTTL is how long a notification stays on screen
const notificationTTL = 3 * time.Second

// NotificationLevel is the severity of a notification
type NotificationLevel int

const (
	LevelInfo NotificationLevel = iota
	LevelError
)

// Notification is a transient message shown after a mutation
type Notification struct {
	Level   NotificationLevel
	Message string
}

// clearNotificationMsg removes the notification with the given sequence number
type clearNotificationMsg struct {
	seq int
}

// notify replaces the current notification and schedules its removal.
// Older clear messages are ignored once a newer notification is shown.
func (m *Model) notify(level NotificationLevel, message string) tea.Cmd {
	m.notificationSeq++
	m.notification = &Notification{Level: level, Message: message}

	seq := m.notificationSeq
	return tea.Tick(notificationTTL, func(time.Time) tea.Msg {
		return clearNotificationMsg{seq: seq}
	})
}

func (m *Model) clearNotification(msg clearNotificationMsg) {
	if msg.seq == m.notificationSeq {
		m.notification = nil
	}
}

// renderNotification renders the notification as a single inline line
func (m *Model) renderNotification() string {
	if m.notification == nil {
		return ""
	}
	if m.notification.Level == LevelError {
		return m.styles.errorNote.Render("✗ " + m.notification.Message)
	}
	return m.styles.infoNote.Render("✓ " + m.notification.Message)
}
