package pane

// Rect is a rectangle in terminal cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Empty reports whether the rectangle has no usable area.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Contains reports whether the point is inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset returns the rectangle shrunk by n cells on every side.
// The result may have negative width or height; callers treat that
// as zero available space.
func (r Rect) Inset(n int) Rect {
	return Rect{
		X:      r.X + n,
		Y:      r.Y + n,
		Width:  r.Width - 2*n,
		Height: r.Height - 2*n,
	}
}

// ContentBounds returns the rectangle inside a panel's margin, padding
// and border where children are placed. Negative sizes are returned
// as-is; layout code treats them as zero space rather than an error.
func ContentBounds(c Component) Rect {
	if c == nil {
		return Rect{}
	}
	n := c.Node()
	inset := n.margin + n.padding
	if n.showBorder {
		inset++
	}
	return n.bounds.Inset(inset)
}
