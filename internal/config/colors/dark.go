package colors

// Dark returns the gray dark mode scheme
func Dark() *ColorScheme {
	return &ColorScheme{
		Preset: "dark",
		Name:   "Dark Mode",
		Icon:   "🌙",
		Dark:   true,

		Accent: "#874BFD",

		Background:       "#111827",
		ColumnBackground: "#1F2937",

		ColumnBorder:   "#4B5563",
		TaskBorder:     "#374151",
		TaskBackground: "#1F2937",
		SelectedBorder: "#D75FD7",
		SelectedBg:     "#374151",
		DragBorder:     "#FFD700",

		Title:  "#D75FD7",
		Subtle: "#6B7280",
		Normal: "#E5E7EB",

		PriorityLow:    "#5FD75F",
		PriorityMedium: "#FFD700",
		PriorityHigh:   "#FF5F5F",

		InfoFg:    "#00AFFF",
		InfoBg:    "#00005F",
		WarningFg: "#FFD700",
		WarningBg: "#875F00",
		ErrorFg:   "#FF0000",
		ErrorBg:   "#5F0000",
	}
}

// Midnight returns the indigo and violet night scheme
func Midnight() *ColorScheme {
	return &ColorScheme{
		Preset: "midnight",
		Name:   "Midnight Purple",
		Icon:   "🌃",
		Dark:   true,

		Accent: "#8B5CF6",

		Background:       "#1E1B4B",
		ColumnBackground: "#312E81",

		ColumnBorder:   "#6366F1",
		TaskBorder:     "#4338CA",
		TaskBackground: "#3730A3",
		SelectedBorder: "#C4B5FD",
		SelectedBg:     "#4C1D95",
		DragBorder:     "#FBBF24",

		Title:  "#C4B5FD",
		Subtle: "#A5B4FC",
		Normal: "#EEF2FF",

		PriorityLow:    "#86EFAC",
		PriorityMedium: "#FDE68A",
		PriorityHigh:   "#FCA5A5",

		InfoFg:    "#BAE6FD",
		InfoBg:    "#1E3A8A",
		WarningFg: "#FDE68A",
		WarningBg: "#78350F",
		ErrorFg:   "#FECACA",
		ErrorBg:   "#7F1D1D",
	}
}

// Cosmic returns the slate and purple space scheme
func Cosmic() *ColorScheme {
	return &ColorScheme{
		Preset: "cosmic",
		Name:   "Cosmic",
		Icon:   "✨",
		Dark:   true,

		Accent: "#9333EA",

		Background:       "#0F172A",
		ColumnBackground: "#1E293B",

		ColumnBorder:   "#7E22CE",
		TaskBorder:     "#334155",
		TaskBackground: "#1E293B",
		SelectedBorder: "#E879F9",
		SelectedBg:     "#581C87",
		DragBorder:     "#FACC15",

		Title:  "#E879F9",
		Subtle: "#94A3B8",
		Normal: "#F1F5F9",

		PriorityLow:    "#4ADE80",
		PriorityMedium: "#FACC15",
		PriorityHigh:   "#F87171",

		InfoFg:    "#7DD3FC",
		InfoBg:    "#0C4A6E",
		WarningFg: "#FDE047",
		WarningBg: "#713F12",
		ErrorFg:   "#FCA5A5",
		ErrorBg:   "#7F1D1D",
	}
}
