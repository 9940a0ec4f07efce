package components

import (
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/thenoetrevino/taskflow/internal/tui/theme"
)

type DescriptionProps struct {
	Description string
	Width       int
	Dark        bool
}

type rendererKey struct {
	width int
	dark  bool
}

// Cache Glamour renderers by width and style to avoid expensive re-creation
var (
	rendererCache sync.Map // map[rendererKey]*glamour.TermRenderer
)

// getRenderer returns a cached renderer for the given width and background
func getRenderer(width int, dark bool) (*glamour.TermRenderer, error) {
	key := rendererKey{width: width, dark: dark}
	if cached, ok := rendererCache.Load(key); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	style := "light"
	if dark {
		style = "dark"
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(key, renderer)
	return renderer, nil
}

// RenderDescription renders markdown, falling back to the raw text
func RenderDescription(props DescriptionProps) string {
	if strings.TrimSpace(props.Description) != "" {
		renderer, err := getRenderer(props.Width, props.Dark)
		if err == nil {
			renderedDesc, err := renderer.Render(props.Description)
			if err == nil {
				return strings.TrimSpace(renderedDesc)
			}
		}
		return props.Description
	}

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Italic(true).
		Render("No description")
}
