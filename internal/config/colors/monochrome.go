package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		Create: "#FFFFFF",
		Edit:   "#FFFFFF",
		Delete: "#FFFFFF",

		Border:     "#808080",
		SelectedBg: "#303030",
		Completed:  "#808080",

		PriorityHigh:   "#FFFFFF",
		PriorityMedium: "#C0C0C0",
		PriorityLow:    "#808080",

		Title:  "#FFFFFF",
		Subtle: "#808080",
		Normal: "#C0C0C0",

		InfoFg:  "#FFFFFF",
		InfoBg:  "#303030",
		ErrorFg: "#000000",
		ErrorBg: "#FFFFFF",
	}
}
