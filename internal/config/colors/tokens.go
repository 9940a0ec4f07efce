package colors

// tokens maps the color names used for columns and collaborators to hex values
var tokens = map[string]string{
	"blue":   "#3B82F6",
	"yellow": "#EAB308",
	"green":  "#22C55E",
	"red":    "#EF4444",
	"orange": "#F97316",
	"purple": "#A855F7",
	"pink":   "#EC4899",
	"indigo": "#6366F1",
	"teal":   "#14B8A6",
	"gray":   "#6B7280",
}

// Token resolves a color token to a hex value. Values that are not a known
// token (such as "#FF0000") are returned unchanged.
func Token(name string) string {
	if hex, ok := tokens[name]; ok {
		return hex
	}
	return name
}
