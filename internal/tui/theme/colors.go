package theme

import "github.com/thenoetrevino/taskflow/internal/config/colors"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight      string
	Background     string
	ColumnBg       string
	ColumnBorder   string
	Subtle         string
	Normal         string
	Title          string
	SelectedBorder string
	SelectedBg     string
	DragBorder     string
	TaskBorder     string
	TaskBg         string
	PriorityLow    string
	PriorityMedium string
	PriorityHigh   string
	InfoFg         string
	InfoBg         string
	WarningFg      string
	WarningBg      string
	ErrorFg        string
	ErrorBg        string
	Dark           bool
)

func init() {
	Init(*colors.GetPreset(colors.DefaultPreset))
}

// Init initializes the theme colors from the given color scheme
func Init(scheme colors.ColorScheme) {
	Highlight = scheme.Accent
	Background = scheme.Background
	ColumnBg = scheme.ColumnBackground
	ColumnBorder = scheme.ColumnBorder
	Subtle = scheme.Subtle
	Normal = scheme.Normal
	Title = scheme.Title
	SelectedBorder = scheme.SelectedBorder
	SelectedBg = scheme.SelectedBg
	DragBorder = scheme.DragBorder
	TaskBorder = scheme.TaskBorder
	TaskBg = scheme.TaskBackground
	PriorityLow = scheme.PriorityLow
	PriorityMedium = scheme.PriorityMedium
	PriorityHigh = scheme.PriorityHigh
	InfoFg = scheme.InfoFg
	InfoBg = scheme.InfoBg
	WarningFg = scheme.WarningFg
	WarningBg = scheme.WarningBg
	ErrorFg = scheme.ErrorFg
	ErrorBg = scheme.ErrorBg
	Dark = scheme.Dark
}
