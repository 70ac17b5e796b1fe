package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Tasks
	AddTask      string `yaml:"add_task"`
	EditTask     string `yaml:"edit_task"`
	DeleteTask   string `yaml:"delete_task"`
	ToggleStatus string `yaml:"toggle_status"`
	ViewTask     string `yaml:"view_task"`

	// Forms
	SaveForm string `yaml:"save_form"`

	// Navigation
	PrevTask   string `yaml:"prev_task"`
	NextTask   string `yaml:"next_task"`
	SwitchView string `yaml:"switch_view"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Tasks
		AddTask:      "a",
		EditTask:     "e",
		DeleteTask:   "d",
		ToggleStatus: "space",
		ViewTask:     "enter",
		SaveForm:     "ctrl+s",

		// Navigation
		PrevTask:   "k",
		NextTask:   "j",
		SwitchView: "tab",

		// Other
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.AddTask == "" {
		k.AddTask = defaults.AddTask
	}
	if k.EditTask == "" {
		k.EditTask = defaults.EditTask
	}
	if k.DeleteTask == "" {
		k.DeleteTask = defaults.DeleteTask
	}
	if k.ToggleStatus == "" {
		k.ToggleStatus = defaults.ToggleStatus
	}
	if k.ViewTask == "" {
		k.ViewTask = defaults.ViewTask
	}
	if k.SaveForm == "" {
		k.SaveForm = defaults.SaveForm
	}
	if k.PrevTask == "" {
		k.PrevTask = defaults.PrevTask
	}
	if k.NextTask == "" {
		k.NextTask = defaults.NextTask
	}
	if k.SwitchView == "" {
		k.SwitchView = defaults.SwitchView
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
