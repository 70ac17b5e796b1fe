package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Semantic colors
	Create string `yaml:"create"` // Green - add dialogs
	Edit   string `yaml:"edit"`   // Blue - edit dialogs
	Delete string `yaml:"delete"` // Red - delete confirmations

	// List colors
	Border     string `yaml:"border"`
	SelectedBg string `yaml:"selected_bg"`
	Completed  string `yaml:"completed"` // Struck-through finished tasks

	// Priority colors
	PriorityHigh   string `yaml:"priority_high"`
	PriorityMedium string `yaml:"priority_medium"`
	PriorityLow    string `yaml:"priority_low"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg  string `yaml:"info_fg"`
	InfoBg  string `yaml:"info_bg"`
	ErrorFg string `yaml:"error_fg"`
	ErrorBg string `yaml:"error_bg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}

	fill(&c.Accent, preset.Accent)
	fill(&c.Create, preset.Create)
	fill(&c.Edit, preset.Edit)
	fill(&c.Delete, preset.Delete)
	fill(&c.Border, preset.Border)
	fill(&c.SelectedBg, preset.SelectedBg)
	fill(&c.Completed, preset.Completed)
	fill(&c.PriorityHigh, preset.PriorityHigh)
	fill(&c.PriorityMedium, preset.PriorityMedium)
	fill(&c.PriorityLow, preset.PriorityLow)
	fill(&c.Title, preset.Title)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
	fill(&c.InfoFg, preset.InfoFg)
	fill(&c.InfoBg, preset.InfoBg)
	fill(&c.ErrorFg, preset.ErrorFg)
	fill(&c.ErrorBg, preset.ErrorBg)
}

// MergeFrom overrides colors with every non-empty value of other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	merge := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}

	merge(&c.Preset, other.Preset)
	merge(&c.Accent, other.Accent)
	merge(&c.Create, other.Create)
	merge(&c.Edit, other.Edit)
	merge(&c.Delete, other.Delete)
	merge(&c.Border, other.Border)
	merge(&c.SelectedBg, other.SelectedBg)
	merge(&c.Completed, other.Completed)
	merge(&c.PriorityHigh, other.PriorityHigh)
	merge(&c.PriorityMedium, other.PriorityMedium)
	merge(&c.PriorityLow, other.PriorityLow)
	merge(&c.Title, other.Title)
	merge(&c.Subtle, other.Subtle)
	merge(&c.Normal, other.Normal)
	merge(&c.InfoFg, other.InfoFg)
	merge(&c.InfoBg, other.InfoBg)
	merge(&c.ErrorFg, other.ErrorFg)
	merge(&c.ErrorBg, other.ErrorBg)
}
