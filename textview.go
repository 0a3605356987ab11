package pane

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TextView displays multi-line text with word wrapping and line
// scrolling. Content is re-wrapped only when the text or the content
// width changes.
type TextView struct {
	Panel
	text     string
	colorKey string

	lines     []string
	wrapped   string
	wrapWidth int
	scroll    int
}

// NewTextView creates an empty text view.
func NewTextView(name string) *TextView {
	return &TextView{Panel: *NewPanel(name)}
}

// Text returns the unwrapped content.
func (tv *TextView) Text() string { return tv.text }

// SetText replaces the content and scrolls back to the top.
func (tv *TextView) SetText(s string) {
	tv.text = s
	tv.scroll = 0
	tv.Invalidate()
}

// AppendLine adds a line to the content.
func (tv *TextView) AppendLine(s string) {
	if tv.text == "" {
		tv.text = s
	} else {
		tv.text += "\n" + s
	}
	tv.Invalidate()
}

// Color sets the theme color key for the text (default "text").
func (tv *TextView) Color(key string) *TextView {
	tv.colorKey = key
	return tv
}

// ScrollBy moves the viewport by n lines, clamped to the content.
func (tv *TextView) ScrollBy(n int) {
	tv.scroll += n
	tv.clampScroll()
	tv.Invalidate()
}

// ScrollToTop resets the viewport to the first line.
func (tv *TextView) ScrollToTop() {
	tv.scroll = 0
	tv.Invalidate()
}

// ScrollToBottom shows the last page of content.
func (tv *TextView) ScrollToBottom() {
	tv.scroll = len(tv.lines)
	tv.clampScroll()
	tv.Invalidate()
}

func (tv *TextView) clampScroll() {
	page := ContentBounds(tv).Height
	max := len(tv.lines) - page
	if max < 0 {
		max = 0
	}
	if tv.scroll > max {
		tv.scroll = max
	}
	if tv.scroll < 0 {
		tv.scroll = 0
	}
}

// HandleInput implements Component: arrows and Home/End scroll when
// the view is focusable and focused.
func (tv *TextView) HandleInput(k Key) bool {
	switch k.Kind {
	case KeyUp:
		tv.ScrollBy(-1)
	case KeyDown:
		tv.ScrollBy(1)
	case KeyHome:
		tv.ScrollToTop()
	case KeyEnd:
		tv.ScrollToBottom()
	default:
		return false
	}
	return true
}

// rewrap rebuilds the line cache when text or width changed.
func (tv *TextView) rewrap(width int) {
	if width <= 0 {
		tv.lines = nil
		tv.wrapWidth = width
		return
	}
	if tv.text == tv.wrapped && width == tv.wrapWidth {
		return
	}
	tv.lines = tv.lines[:0]
	for _, para := range strings.Split(tv.text, "\n") {
		tv.lines = append(tv.lines, wrapLine(para, width)...)
	}
	tv.wrapped = tv.text
	tv.wrapWidth = width
	tv.clampScroll()
}

// wrapLine breaks one paragraph into lines no wider than width,
// preferring word boundaries and hard-splitting words that do not fit.
func wrapLine(s string, width int) []string {
	if runewidth.StringWidth(s) <= width {
		return []string{s}
	}
	var out []string
	var line string
	lineW := 0
	for _, word := range strings.Fields(s) {
		w := runewidth.StringWidth(word)
		for w > width {
			// hard split an over-long word
			if lineW > 0 {
				out = append(out, line)
				line, lineW = "", 0
			}
			cut := runewidth.Truncate(word, width, "")
			out = append(out, cut)
			word = word[len(cut):]
			w = runewidth.StringWidth(word)
		}
		switch {
		case lineW == 0:
			line, lineW = word, w
		case lineW+1+w <= width:
			line += " " + word
			lineW += 1 + w
		default:
			out = append(out, line)
			line, lineW = word, w
		}
	}
	if lineW > 0 || len(out) == 0 {
		out = append(out, line)
	}
	return out
}

// Render implements Component.
func (tv *TextView) Render(buf *Buffer, th *Theme) {
	tv.paintFrame(buf, th)
	area := ContentBounds(tv)
	if area.Empty() {
		return
	}
	tv.rewrap(area.Width)

	key := tv.colorKey
	if key == "" {
		key = "text"
	}
	st := Style{FG: th.Color(key, nil)}
	for i := 0; i < area.Height; i++ {
		idx := tv.scroll + i
		if idx >= len(tv.lines) {
			break
		}
		buf.WriteText(area.X, area.Y+i, tv.lines[idx], st, area.Width)
	}
}
