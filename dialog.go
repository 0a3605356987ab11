package pane

// Dialog is a modal panel drawn over the screen. It is its own focus
// scope: while open, Tab cycles through the dialog's own focusables
// and never escapes to the screen behind it.
type Dialog struct {
	Panel
	message *Label
	buttons []*Button

	// OnClose fires after the dialog is dismissed, with the label of
	// the pressed button ("" when dismissed with Esc).
	OnClose func(choice string)

	// installed by the host app while the dialog is open
	closer       func()
	requestFocus func(Component) bool
}

// NewDialog builds a modal with a message and one button per choice.
func NewDialog(title, message string, choices ...string) *Dialog {
	d := &Dialog{Panel: *NewPanel("dialog-" + title)}
	d.focusScope = true
	d.showBorder = true
	d.borderKind = BorderDouble
	d.title = title
	d.borderColor = "dialog.border"
	d.background = "dialog.background"
	d.padding = 1

	d.message = NewLabel(message).Align(AlignHCenter)
	body := NewStack("dialog-body", Vertical).Spacing(1).
		AlignHorizontal(AlignHCenter)
	body.AddChild(d.message)

	row := NewStack("dialog-buttons", Horizontal).Spacing(2).
		AlignVertical(AlignTop)
	rowWidth := 0
	for i, choice := range choices {
		choice := choice
		btn := NewButton(choice, func() { d.dismiss(choice) })
		d.buttons = append(d.buttons, btn)
		row.AddChild(btn)
		if i > 0 {
			rowWidth += 2
		}
		rowWidth += btn.bounds.Width
	}
	row.bounds.Width = rowWidth
	row.bounds.Height = 1
	body.AddChild(row)
	d.AddChild(body)

	d.ScopeMoveFocus = d.cycleButtons
	return d
}

// Buttons returns the dialog's buttons in declaration order.
func (d *Dialog) Buttons() []*Button { return d.buttons }

// CalculateLayout fills the content area with the dialog body.
func (d *Dialog) CalculateLayout() (res LayoutResult) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("dialog layout failed", "panel", d.name, "panic", r)
			res = LayoutResult{}
		}
	}()

	area := ContentBounds(d)
	if area.Width < 0 {
		area.Width = 0
	}
	if area.Height < 0 {
		area.Height = 0
	}
	res.Placements = make([]Placement, 0, len(d.children))
	for _, c := range d.children {
		n := c.Node()
		if !n.visible {
			continue
		}
		n.setPlacement(area)
		res.Placements = append(res.Placements, Placement{Child: c, Bounds: area})
	}
	d.layout = res
	d.dirty = false
	return res
}

// HandleInput implements Component. Esc dismisses without a choice.
func (d *Dialog) HandleInput(k Key) bool {
	if k.Kind == KeyEsc {
		d.dismiss("")
		return true
	}
	return false
}

// cycleButtons keeps Tab navigation inside the dialog, wrapping at
// either end.
func (d *Dialog) cycleButtons(reverse bool) bool {
	if len(d.buttons) == 0 {
		return false
	}
	cur := -1
	for i, b := range d.buttons {
		if b.focused {
			cur = i
			break
		}
	}
	var next int
	switch {
	case cur == -1:
		next = 0
		if reverse {
			next = len(d.buttons) - 1
		}
	case reverse:
		next = (cur - 1 + len(d.buttons)) % len(d.buttons)
	default:
		next = (cur + 1) % len(d.buttons)
	}
	if d.requestFocus == nil {
		return false
	}
	return d.requestFocus(d.buttons[next])
}

func (d *Dialog) dismiss(choice string) {
	if d.closer != nil {
		fn := d.closer
		d.closer = nil
		fn()
	}
	if d.OnClose != nil {
		cb := d.OnClose
		safeCall("dialog close", d.name, func() { cb(choice) })
	}
}

// measure returns the dialog's preferred outer size from its content.
func (d *Dialog) measure() (w, h int) {
	msgW := d.message.bounds.Width
	btnW := 0
	for i, b := range d.buttons {
		if i > 0 {
			btnW += 2
		}
		btnW += b.bounds.Width
	}
	w = msgW
	if btnW > w {
		w = btnW
	}
	w += 2 * (d.padding + 1) // padding plus border on both sides
	h = 2                    // message row and button row
	if len(d.buttons) == 0 {
		h = 1
	} else {
		h++ // spacing row between them
	}
	h += 2 * (d.padding + 1)
	return w, h
}
