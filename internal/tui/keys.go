package tui

import (
	"strings"

	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/tick/internal/config"
)

// keyMap holds the bindings of the list view. It implements help.KeyMap.
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Switch key.Binding
	Toggle key.Binding
	View   key.Binding
	Add    key.Binding
	Edit   key.Binding
	Delete key.Binding
	Save   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// newKeyMap builds bindings from the configured key mappings
func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		Up:     binding("up", km.PrevTask, "up"),
		Down:   binding("down", km.NextTask, "down"),
		Switch: binding("", km.SwitchView, "switch view"),
		Toggle: binding("", km.ToggleStatus, "toggle done"),
		View:   binding("", km.ViewTask, "details"),
		Add:    binding("", km.AddTask, "add"),
		Edit:   binding("", km.EditTask, "edit"),
		Delete: binding("", km.DeleteTask, "delete"),
		Save:   binding("", km.SaveForm, "save form"),
		Help:   binding("", km.ShowHelp, "help"),
		Quit:   binding("ctrl+c", km.Quit, "quit"),
	}
}

// binding creates a binding for the configured key, plus an optional fixed alias
func binding(alias, configured, help string) key.Binding {
	keys := []string{configured}
	helpKey := configured
	if alias != "" && alias != configured {
		keys = append(keys, alias)
	}
	if configured == " " {
		helpKey = "space"
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.TrimSpace(helpKey), help),
	)
}

// ShortHelp returns the bindings shown in the footer
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Switch, k.Toggle, k.Add, k.Delete, k.Help, k.Quit}
}

// FullHelp returns every binding, grouped by column
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Switch, k.View},
		{k.Toggle, k.Add, k.Edit, k.Delete},
		{k.Save, k.Help, k.Quit},
	}
}
