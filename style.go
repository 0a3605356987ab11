package pane

import "github.com/charmbracelet/lipgloss"

// Color is a terminal color. nil means the terminal default.
type Color = lipgloss.TerminalColor

// Style describes how a cell is drawn.
type Style struct {
	FG, BG Color

	Bold      bool
	Faint     bool
	Italic    bool
	Underline bool
	Reverse   bool
}

// DefaultStyle returns a style using terminal default colors.
func DefaultStyle() Style {
	return Style{}
}

// Equal reports whether two styles render identically.
func (s Style) Equal(o Style) bool {
	return s == o
}

// Foreground returns a copy of the style with the foreground set.
func (s Style) Foreground(c Color) Style {
	s.FG = c
	return s
}

// Background returns a copy of the style with the background set.
func (s Style) Background(c Color) Style {
	s.BG = c
	return s
}

// Inverted returns a copy of the style with reverse video toggled on.
func (s Style) Inverted() Style {
	s.Reverse = true
	return s
}

// lip converts the style to a lipgloss style for terminal emission.
func (s Style) lip() lipgloss.Style {
	st := lipgloss.NewStyle()
	if s.FG != nil {
		st = st.Foreground(s.FG)
	}
	if s.BG != nil {
		st = st.Background(s.BG)
	}
	if s.Bold {
		st = st.Bold(true)
	}
	if s.Faint {
		st = st.Faint(true)
	}
	if s.Italic {
		st = st.Italic(true)
	}
	if s.Underline {
		st = st.Underline(true)
	}
	if s.Reverse {
		st = st.Reverse(true)
	}
	return st
}
