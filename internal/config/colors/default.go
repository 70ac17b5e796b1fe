package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#874BFD",

		// Semantic
		Create: "#5FD75F",
		Edit:   "#5F87D7",
		Delete: "#FF0000",

		// List
		Border:     "#585858",
		SelectedBg: "#3A3A3A",
		Completed:  "#6C6C6C",

		// Priorities
		PriorityHigh:   "#FF5F5F",
		PriorityMedium: "#FFD700",
		PriorityLow:    "#5FAFFF",

		// Text
		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// Notifications
		InfoFg:  "#00AFFF",
		InfoBg:  "#00005F",
		ErrorFg: "#FF0000",
		ErrorBg: "#5F0000",
	}
}
