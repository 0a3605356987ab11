package pane

import "sort"

// Orientation is the main axis of a stack panel.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

// HAlign positions a child horizontally within the space its parent
// assigned. The zero value stretches.
type HAlign int

const (
	AlignHStretch HAlign = iota
	AlignLeft
	AlignHCenter
	AlignRight
)

// VAlign positions a child vertically. The zero value stretches.
type VAlign int

const (
	AlignVStretch VAlign = iota
	AlignTop
	AlignVCenter
	AlignBottom
)

// alignSpan places a span of the given size inside [start, start+total)
// according to a generic four-way alignment expressed as an int
// (stretch=0, start=1, center=2, end=3). Stretch returns the full
// space. Center ties round down.
func alignSpan(mode, start, total, size int) (pos, outSize int) {
	switch mode {
	case 1: // start
		return start, size
	case 2: // center
		return start + (total-size)/2, size
	case 3: // end
		return start + total - size, size
	default: // stretch
		return start, total
	}
}

// Placement records where layout put one child.
type Placement struct {
	Child  Component
	Bounds Rect
}

// LayoutResult is the output of one layout pass. Grid layouts also
// expose their track tables so the renderer can draw separators.
type LayoutResult struct {
	Placements []Placement

	// Grid track tables (nil for stacks). Offsets are relative to the
	// panel's content origin; offset 0 is the first track.
	RowSizes, ColSizes     []int
	RowOffsets, ColOffsets []int
}

// RenderTree renders a component subtree into the buffer: recompute
// layout where the dirty flag is set, paint the panel itself, then
// recurse into visible children in stacking order (zIndex, insertion
// order as tie-break).
func RenderTree(c Component, buf *Buffer, th *Theme) {
	if c == nil {
		return
	}
	n := c.Node()
	if !n.visible {
		return
	}
	if n.dirty {
		if l, ok := c.(Layouter); ok {
			l.CalculateLayout()
		} else {
			n.dirty = false
		}
	}
	c.Render(buf, th)

	if len(n.children) == 0 {
		return
	}
	order := make([]Component, len(n.children))
	copy(order, n.children)
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].Node().zIndex < order[j].Node().zIndex
	})
	for _, child := range order {
		RenderTree(child, buf, th)
	}
}
