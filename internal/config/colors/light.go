package colors

// Ocean returns the default color scheme (light blue and indigo)
func Ocean() *ColorScheme {
	return &ColorScheme{
		Preset: "default",
		Name:   "Ocean Blue",
		Icon:   "🌊",

		Accent: "#6366F1",

		Background:       "#EEF2FF",
		ColumnBackground: "#E0E7FF",

		ColumnBorder:   "#818CF8",
		TaskBorder:     "#C7D2FE",
		TaskBackground: "#FFFFFF",
		SelectedBorder: "#3B82F6",
		SelectedBg:     "#DBEAFE",
		DragBorder:     "#F59E0B",

		Title:  "#4338CA",
		Subtle: "#6B7280",
		Normal: "#1F2937",

		PriorityLow:    "#15803D",
		PriorityMedium: "#A16207",
		PriorityHigh:   "#B91C1C",

		InfoFg:    "#1D4ED8",
		InfoBg:    "#DBEAFE",
		WarningFg: "#92400E",
		WarningBg: "#FEF3C7",
		ErrorFg:   "#991B1B",
		ErrorBg:   "#FEE2E2",
	}
}

// Sunrise returns a warm rose and orange scheme
func Sunrise() *ColorScheme {
	return &ColorScheme{
		Preset: "sunrise",
		Name:   "Sunrise",
		Icon:   "🌅",

		Accent: "#F97316",

		Background:       "#FFF7ED",
		ColumnBackground: "#FFE4E6",

		ColumnBorder:   "#FB7185",
		TaskBorder:     "#FED7AA",
		TaskBackground: "#FFFFFF",
		SelectedBorder: "#F43F5E",
		SelectedBg:     "#FFEDD5",
		DragBorder:     "#D97706",

		Title:  "#C2410C",
		Subtle: "#78716C",
		Normal: "#292524",

		PriorityLow:    "#15803D",
		PriorityMedium: "#A16207",
		PriorityHigh:   "#B91C1C",

		InfoFg:    "#9A3412",
		InfoBg:    "#FFEDD5",
		WarningFg: "#92400E",
		WarningBg: "#FEF3C7",
		ErrorFg:   "#9F1239",
		ErrorBg:   "#FFE4E6",
	}
}

// Nature returns the forest green scheme
func Nature() *ColorScheme {
	return &ColorScheme{
		Preset: "nature",
		Name:   "Forest Green",
		Icon:   "🌿",

		Accent: "#10B981",

		Background:       "#ECFDF5",
		ColumnBackground: "#D1FAE5",

		ColumnBorder:   "#14B8A6",
		TaskBorder:     "#A7F3D0",
		TaskBackground: "#FFFFFF",
		SelectedBorder: "#059669",
		SelectedBg:     "#CCFBF1",
		DragBorder:     "#CA8A04",

		Title:  "#047857",
		Subtle: "#6B7280",
		Normal: "#1F2937",

		PriorityLow:    "#15803D",
		PriorityMedium: "#A16207",
		PriorityHigh:   "#B91C1C",

		InfoFg:    "#0F766E",
		InfoBg:    "#CCFBF1",
		WarningFg: "#92400E",
		WarningBg: "#FEF3C7",
		ErrorFg:   "#991B1B",
		ErrorBg:   "#FEE2E2",
	}
}

// Lavender returns a purple and pink scheme
func Lavender() *ColorScheme {
	return &ColorScheme{
		Preset: "lavender",
		Name:   "Lavender Dreams",
		Icon:   "💜",

		Accent: "#A855F7",

		Background:       "#FAF5FF",
		ColumnBackground: "#F3E8FF",

		ColumnBorder:   "#C084FC",
		TaskBorder:     "#E9D5FF",
		TaskBackground: "#FFFFFF",
		SelectedBorder: "#EC4899",
		SelectedBg:     "#FCE7F3",
		DragBorder:     "#D946EF",

		Title:  "#7E22CE",
		Subtle: "#6B7280",
		Normal: "#1F2937",

		PriorityLow:    "#15803D",
		PriorityMedium: "#A16207",
		PriorityHigh:   "#B91C1C",

		InfoFg:    "#6B21A8",
		InfoBg:    "#F3E8FF",
		WarningFg: "#92400E",
		WarningBg: "#FEF3C7",
		ErrorFg:   "#9D174D",
		ErrorBg:   "#FCE7F3",
	}
}

// Cherry returns the cherry blossom scheme
func Cherry() *ColorScheme {
	return &ColorScheme{
		Preset: "cherry",
		Name:   "Cherry Blossom",
		Icon:   "🌸",

		Accent: "#F43F5E",

		Background:       "#FFF1F2",
		ColumnBackground: "#FCE7F3",

		ColumnBorder:   "#F472B6",
		TaskBorder:     "#FECDD3",
		TaskBackground: "#FFFFFF",
		SelectedBorder: "#E11D48",
		SelectedBg:     "#FFE4E6",
		DragBorder:     "#EF4444",

		Title:  "#BE123C",
		Subtle: "#78716C",
		Normal: "#292524",

		PriorityLow:    "#15803D",
		PriorityMedium: "#A16207",
		PriorityHigh:   "#B91C1C",

		InfoFg:    "#9D174D",
		InfoBg:    "#FCE7F3",
		WarningFg: "#92400E",
		WarningBg: "#FEF3C7",
		ErrorFg:   "#991B1B",
		ErrorBg:   "#FEE2E2",
	}
}
