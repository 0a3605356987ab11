package pane

import "github.com/mattn/go-runewidth"

// Label is a non-focusable single line of text.
type Label struct {
	Panel
	text     string
	colorKey string
	align    HAlign
}

// NewLabel creates a label sized to its text. Parent layout owns the
// final geometry.
func NewLabel(text string) *Label {
	l := &Label{Panel: *NewPanel(""), text: text}
	l.bounds.Width = runewidth.StringWidth(text)
	l.bounds.Height = 1
	return l
}

// Text returns the label text.
func (l *Label) Text() string { return l.text }

// SetText updates the label text and its preferred width, so layout
// and dialog measurement see the new length.
func (l *Label) SetText(s string) {
	l.text = s
	l.bounds.Width = runewidth.StringWidth(s)
	l.Invalidate()
}

// Color sets the theme color key for the text (default "text").
func (l *Label) Color(key string) *Label {
	l.colorKey = key
	return l
}

// Align sets horizontal alignment of the text within the label.
func (l *Label) Align(a HAlign) *Label {
	l.align = a
	return l
}

// Render implements Component.
func (l *Label) Render(buf *Buffer, th *Theme) {
	l.paintFrame(buf, th)
	area := ContentBounds(l)
	if area.Empty() {
		return
	}
	key := l.colorKey
	if key == "" {
		key = "text"
	}
	st := Style{FG: th.Color(key, nil)}
	w := runewidth.StringWidth(l.text)
	if w > area.Width {
		w = area.Width
	}
	x, _ := alignSpan(int(l.align), area.X, area.Width, w)
	if l.align == AlignHStretch {
		x = area.X
	}
	buf.WriteText(x, area.Y, l.text, st, area.Width)
}

// Button is a focusable push button. Enter or space presses it.
type Button struct {
	Panel
	label string

	// OnPress fires on activation. Panics are recovered and logged,
	// matching the rest of the input path.
	OnPress func()
}

// NewButton creates a button.
func NewButton(label string, onPress func()) *Button {
	b := &Button{Panel: *NewPanel("button-" + label), label: label, OnPress: onPress}
	b.focusable = true
	b.bounds.Width = runewidth.StringWidth(label) + 4
	b.bounds.Height = 1
	return b
}

// Label returns the button text.
func (b *Button) Label() string { return b.label }

// HandleInput implements Component.
func (b *Button) HandleInput(k Key) bool {
	if !b.enabled {
		return false
	}
	if k.Kind == KeyEnter || (k.Kind == KeyRune && k.Rune == ' ') {
		safeCall("press", b.name, b.OnPress)
		return true
	}
	return false
}

// Render implements Component.
func (b *Button) Render(buf *Buffer, th *Theme) {
	b.paintFrame(buf, th)
	area := ContentBounds(b)
	if area.Empty() {
		return
	}
	st := Style{FG: th.Color("button.label", nil)}
	switch {
	case !b.enabled:
		st.FG = th.Color("text.muted", nil)
	case b.focused:
		st = Style{FG: th.Color("button.focus", nil), Bold: true, Reverse: true}
	}
	text := "[ " + b.label + " ]"
	w := runewidth.StringWidth(text)
	x, _ := alignSpan(2, area.X, area.Width, w) // centered
	buf.WriteText(x, area.Y, text, st, area.Width)
}

// TextBox is a focusable single-line text input.
type TextBox struct {
	Panel
	value       []rune
	cursor      int
	scroll      int
	placeholder string

	OnChange func(string)
	OnSubmit func(string)
}

// NewTextBox creates an empty text box.
func NewTextBox(name string) *TextBox {
	t := &TextBox{Panel: *NewPanel(name)}
	t.focusable = true
	t.bounds.Width = 20
	t.bounds.Height = 1
	return t
}

// Placeholder sets the hint shown while empty.
func (t *TextBox) Placeholder(s string) *TextBox {
	t.placeholder = s
	return t
}

// Value returns the current text.
func (t *TextBox) Value() string { return string(t.value) }

// SetValue replaces the text and moves the cursor to the end.
func (t *TextBox) SetValue(s string) {
	t.value = []rune(s)
	t.cursor = len(t.value)
	t.Invalidate()
}

func (t *TextBox) changed() {
	if t.OnChange != nil {
		v := t.Value()
		safeCall("change", t.name, func() { t.OnChange(v) })
	}
	t.Invalidate()
}

// HandleInput implements Component.
func (t *TextBox) HandleInput(k Key) bool {
	if !t.enabled {
		return false
	}
	switch k.Kind {
	case KeyRune:
		t.value = append(t.value[:t.cursor], append([]rune{k.Rune}, t.value[t.cursor:]...)...)
		t.cursor++
		t.changed()
	case KeyBackspace:
		if t.cursor > 0 {
			t.value = append(t.value[:t.cursor-1], t.value[t.cursor:]...)
			t.cursor--
			t.changed()
		}
	case KeyDelete:
		if t.cursor < len(t.value) {
			t.value = append(t.value[:t.cursor], t.value[t.cursor+1:]...)
			t.changed()
		}
	case KeyLeft:
		if t.cursor > 0 {
			t.cursor--
			t.Invalidate()
		}
	case KeyRight:
		if t.cursor < len(t.value) {
			t.cursor++
			t.Invalidate()
		}
	case KeyHome:
		t.cursor = 0
		t.Invalidate()
	case KeyEnd:
		t.cursor = len(t.value)
		t.Invalidate()
	case KeyEnter:
		if t.OnSubmit != nil {
			v := t.Value()
			safeCall("submit", t.name, func() { t.OnSubmit(v) })
		}
	default:
		return false
	}
	return true
}

// Render implements Component.
func (t *TextBox) Render(buf *Buffer, th *Theme) {
	t.paintFrame(buf, th)
	area := ContentBounds(t)
	if area.Empty() {
		return
	}

	// keep the cursor inside the visible window
	if t.cursor < t.scroll {
		t.scroll = t.cursor
	}
	if t.cursor-t.scroll >= area.Width {
		t.scroll = t.cursor - area.Width + 1
	}

	st := Style{FG: th.Color("input.text", nil)}
	if len(t.value) == 0 && t.placeholder != "" {
		buf.WriteText(area.X, area.Y, t.placeholder,
			Style{FG: th.Color("input.placeholder", nil), Faint: true}, area.Width)
	} else {
		visible := t.value[min(t.scroll, len(t.value)):]
		buf.WriteText(area.X, area.Y, string(visible), st, area.Width)
	}

	if t.focused {
		cx := area.X + t.cursor - t.scroll
		cur := buf.Get(cx, area.Y)
		if cur.Rune == 0 {
			cur.Rune = ' '
		}
		cur.Style = st.Inverted()
		buf.Set(cx, area.Y, cur)
	}
}
