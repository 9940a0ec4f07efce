package colors

import "slices"

// DefaultPreset is the theme used when none is chosen or the stored one is unknown
const DefaultPreset = "default"

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "midnight")
	Preset string `yaml:"preset,omitempty"`

	// Display metadata, fixed per preset
	Name string `yaml:"-"`
	Icon string `yaml:"-"`
	Dark bool   `yaml:"-"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent,omitempty"`

	// Background colors
	Background       string `yaml:"background,omitempty"`
	ColumnBackground string `yaml:"column_background,omitempty"`

	// UI element colors
	ColumnBorder   string `yaml:"column_border,omitempty"`
	TaskBorder     string `yaml:"task_border,omitempty"`
	TaskBackground string `yaml:"task_background,omitempty"`
	SelectedBorder string `yaml:"selected_border,omitempty"`
	SelectedBg     string `yaml:"selected_bg,omitempty"`
	DragBorder     string `yaml:"drag_border,omitempty"`

	// Text colors
	Title  string `yaml:"title,omitempty"`
	Subtle string `yaml:"subtle,omitempty"` // Muted/placeholder text
	Normal string `yaml:"normal,omitempty"`

	// Priority badges
	PriorityLow    string `yaml:"priority_low,omitempty"`
	PriorityMedium string `yaml:"priority_medium,omitempty"`
	PriorityHigh   string `yaml:"priority_high,omitempty"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg,omitempty"`
	InfoBg    string `yaml:"info_bg,omitempty"`
	WarningFg string `yaml:"warning_fg,omitempty"`
	WarningBg string `yaml:"warning_bg,omitempty"`
	ErrorFg   string `yaml:"error_fg,omitempty"`
	ErrorBg   string `yaml:"error_bg,omitempty"`
}

// presets in display order
var presets = []func() *ColorScheme{
	Ocean,
	Dark,
	Midnight,
	Sunrise,
	Nature,
	Lavender,
	Cherry,
	Cosmic,
}

// Names returns every preset name in display order
func Names() []string {
	names := make([]string, 0, len(presets))
	for _, p := range presets {
		names = append(names, p().Preset)
	}
	return names
}

// Presets returns every preset in display order
func Presets() []ColorScheme {
	out := make([]ColorScheme, 0, len(presets))
	for _, p := range presets {
		out = append(out, *p())
	}
	return out
}

// IsPreset reports whether name is a known preset
func IsPreset(name string) bool {
	return slices.Contains(Names(), name)
}

// GetPreset returns a preset color scheme by name.
// Unknown names get the default preset.
func GetPreset(name string) *ColorScheme {
	for _, p := range presets {
		if scheme := p(); scheme.Preset == name {
			return scheme
		}
	}
	return Ocean()
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	c.Preset = preset.Preset
	c.Name = preset.Name
	c.Icon = preset.Icon
	c.Dark = preset.Dark

	fill(&c.Accent, preset.Accent)
	fill(&c.Background, preset.Background)
	fill(&c.ColumnBackground, preset.ColumnBackground)
	fill(&c.ColumnBorder, preset.ColumnBorder)
	fill(&c.TaskBorder, preset.TaskBorder)
	fill(&c.TaskBackground, preset.TaskBackground)
	fill(&c.SelectedBorder, preset.SelectedBorder)
	fill(&c.SelectedBg, preset.SelectedBg)
	fill(&c.DragBorder, preset.DragBorder)
	fill(&c.Title, preset.Title)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
	fill(&c.PriorityLow, preset.PriorityLow)
	fill(&c.PriorityMedium, preset.PriorityMedium)
	fill(&c.PriorityHigh, preset.PriorityHigh)
	fill(&c.InfoFg, preset.InfoFg)
	fill(&c.InfoBg, preset.InfoBg)
	fill(&c.WarningFg, preset.WarningFg)
	fill(&c.WarningBg, preset.WarningBg)
	fill(&c.ErrorFg, preset.ErrorFg)
	fill(&c.ErrorBg, preset.ErrorBg)
}

// MergeFrom copies every non-empty color from other onto c
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&c.Accent, other.Accent)
	set(&c.Background, other.Background)
	set(&c.ColumnBackground, other.ColumnBackground)
	set(&c.ColumnBorder, other.ColumnBorder)
	set(&c.TaskBorder, other.TaskBorder)
	set(&c.TaskBackground, other.TaskBackground)
	set(&c.SelectedBorder, other.SelectedBorder)
	set(&c.SelectedBg, other.SelectedBg)
	set(&c.DragBorder, other.DragBorder)
	set(&c.Title, other.Title)
	set(&c.Subtle, other.Subtle)
	set(&c.Normal, other.Normal)
	set(&c.PriorityLow, other.PriorityLow)
	set(&c.PriorityMedium, other.PriorityMedium)
	set(&c.PriorityHigh, other.PriorityHigh)
	set(&c.InfoFg, other.InfoFg)
	set(&c.InfoBg, other.InfoBg)
	set(&c.WarningFg, other.WarningFg)
	set(&c.WarningBg, other.WarningBg)
	set(&c.ErrorFg, other.ErrorFg)
	set(&c.ErrorBg, other.ErrorBg)
}

func fill(dst *string, v string) {
	if *dst == "" {
		*dst = v
	}
}
