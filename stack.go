package pane

// StackPanel arranges visible children in a line along its main axis.
// Children keep their own main-axis size; the cross axis is governed
// by the stack's alignment (the zero value stretches children to the
// full cross size).
type StackPanel struct {
	Panel
	orientation Orientation
	spacing     int
	hAlign      HAlign
	vAlign      VAlign
}

// NewStack creates a stack panel with the given orientation.
func NewStack(name string, o Orientation) *StackPanel {
	s := &StackPanel{Panel: *NewPanel(name), orientation: o}
	return s
}

// VStack creates a vertical stack from children.
func VStack(children ...Component) *StackPanel {
	s := NewStack("", Vertical)
	for _, c := range children {
		s.AddChild(c)
	}
	return s
}

// HStack creates a horizontal stack from children.
func HStack(children ...Component) *StackPanel {
	s := NewStack("", Horizontal)
	for _, c := range children {
		s.AddChild(c)
	}
	return s
}

// Spacing sets the gap between children on the main axis.
func (s *StackPanel) Spacing(n int) *StackPanel {
	if n < 0 {
		n = 0
	}
	s.spacing = n
	s.Invalidate()
	return s
}

// AlignHorizontal sets the horizontal alignment.
func (s *StackPanel) AlignHorizontal(a HAlign) *StackPanel {
	s.hAlign = a
	s.Invalidate()
	return s
}

// AlignVertical sets the vertical alignment.
func (s *StackPanel) AlignVertical(a VAlign) *StackPanel {
	s.vAlign = a
	s.Invalidate()
	return s
}

// Orientation returns the stack's main axis.
func (s *StackPanel) Orientation() Orientation { return s.orientation }

// CalculateLayout positions visible children along the main axis and
// writes their geometry. Idempotent for unchanged inputs. The dirty
// flag is cleared only when the pass completes, so a failure is
// retried on the next render.
func (s *StackPanel) CalculateLayout() (res LayoutResult) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("stack layout failed",
				"panel", s.name, "orientation", int(s.orientation), "panic", r)
			res = LayoutResult{}
		}
	}()

	bounds := ContentBounds(s)
	if bounds.Width < 0 {
		bounds.Width = 0
	}
	if bounds.Height < 0 {
		bounds.Height = 0
	}

	var visible []Component
	for _, c := range s.children {
		if c.Node().visible {
			visible = append(visible, c)
		}
	}
	if len(visible) == 0 {
		s.layout = LayoutResult{}
		s.dirty = false
		return s.layout
	}

	// Measure pass: total main-axis extent and max cross extent.
	var totalMain int
	for _, c := range visible {
		b := c.Node().bounds
		if s.orientation == Vertical {
			totalMain += b.Height
		} else {
			totalMain += b.Width
		}
	}
	totalMain += s.spacing * (len(visible) - 1)

	// Main-axis start offset from the main-axis alignment. Stretch on
	// the main axis behaves like start; stretching only applies
	// cross-axis.
	var mainStart, mainSize, crossStart, crossSize int
	var mainMode, crossMode int
	if s.orientation == Vertical {
		mainStart, mainSize = bounds.Y, bounds.Height
		crossStart, crossSize = bounds.X, bounds.Width
		mainMode, crossMode = int(s.vAlign), int(s.hAlign)
	} else {
		mainStart, mainSize = bounds.X, bounds.Width
		crossStart, crossSize = bounds.Y, bounds.Height
		mainMode, crossMode = int(s.hAlign), int(s.vAlign)
	}
	cursor, _ := alignSpan(mainMode, mainStart, mainSize, totalMain)

	// Placement pass: cross-axis position and size per child, main
	// axis advances by the child's own extent plus spacing. Geometry
	// written here is authoritative.
	res.Placements = make([]Placement, 0, len(visible))
	for _, c := range visible {
		n := c.Node()
		b := n.bounds
		var childMain int
		var r Rect
		if s.orientation == Vertical {
			x, w := alignSpan(crossMode, crossStart, crossSize, b.Width)
			r = Rect{X: x, Y: cursor, Width: w, Height: b.Height}
			childMain = b.Height
		} else {
			y, h := alignSpan(crossMode, crossStart, crossSize, b.Height)
			r = Rect{X: cursor, Y: y, Width: b.Width, Height: h}
			childMain = b.Width
		}
		n.setPlacement(r)
		res.Placements = append(res.Placements, Placement{Child: c, Bounds: r})
		cursor += childMain + s.spacing
	}

	s.layout = res
	s.dirty = false
	return res
}
