package pane

import "github.com/charmbracelet/lipgloss"

// Theme maps symbolic color names to terminal colors. Lookup is
// fail-open: an unknown name resolves to the caller's fallback, never
// an error, because color resolution happens mid-render.
type Theme struct {
	name   string
	colors map[string]Color
}

// NewTheme creates an empty theme with the given name.
func NewTheme(name string) *Theme {
	return &Theme{name: name, colors: make(map[string]Color)}
}

// Name returns the theme's name.
func (t *Theme) Name() string { return t.name }

// Set registers or overrides a named color.
func (t *Theme) Set(key string, c Color) *Theme {
	t.colors[key] = c
	return t
}

// Color resolves a symbolic name, returning fallback when the theme
// is nil or the name is unknown.
func (t *Theme) Color(key string, fallback Color) Color {
	if t == nil || key == "" {
		return fallback
	}
	if c, ok := t.colors[key]; ok {
		return c
	}
	return fallback
}

// Built-in themes. Keys follow "<area>.<role>" naming; components
// resolve through them so an application can restyle wholesale.

// ThemeDark is the default theme: light text on the terminal's dark
// background.
func ThemeDark() *Theme {
	return NewTheme("dark").
		Set("text", lipgloss.Color("7")).
		Set("text.muted", lipgloss.Color("8")).
		Set("accent", lipgloss.Color("14")).
		Set("error", lipgloss.Color("9")).
		Set("panel.border", lipgloss.Color("8")).
		Set("panel.background", lipgloss.Color("0")).
		Set("grid.lines", lipgloss.Color("8")).
		Set("focus.border", lipgloss.Color("14")).
		Set("button.label", lipgloss.Color("15")).
		Set("button.focus", lipgloss.Color("14")).
		Set("input.text", lipgloss.Color("15")).
		Set("input.placeholder", lipgloss.Color("8")).
		Set("dialog.border", lipgloss.Color("12")).
		Set("dialog.background", lipgloss.Color("0"))
}

// ThemeLight targets light terminal backgrounds.
func ThemeLight() *Theme {
	return NewTheme("light").
		Set("text", lipgloss.Color("0")).
		Set("text.muted", lipgloss.Color("8")).
		Set("accent", lipgloss.Color("4")).
		Set("error", lipgloss.Color("1")).
		Set("panel.border", lipgloss.Color("7")).
		Set("panel.background", lipgloss.Color("15")).
		Set("grid.lines", lipgloss.Color("7")).
		Set("focus.border", lipgloss.Color("4")).
		Set("button.label", lipgloss.Color("0")).
		Set("button.focus", lipgloss.Color("4")).
		Set("input.text", lipgloss.Color("0")).
		Set("input.placeholder", lipgloss.Color("8")).
		Set("dialog.border", lipgloss.Color("4")).
		Set("dialog.background", lipgloss.Color("15"))
}

// ThemeMono uses no colors at all; everything renders in the
// terminal's defaults.
func ThemeMono() *Theme {
	return NewTheme("mono")
}

// LookupTheme returns a built-in theme by name, defaulting to dark.
func LookupTheme(name string) *Theme {
	switch name {
	case "light":
		return ThemeLight()
	case "mono":
		return ThemeMono()
	default:
		return ThemeDark()
	}
}
