package pane

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Cell is one terminal cell. A zero Rune marks the shadowed half of a
// double-width character.
type Cell struct {
	Rune  rune
	Style Style
}

// EmptyCell returns a blank cell with default style.
func EmptyCell() Cell {
	return Cell{Rune: ' '}
}

// Buffer is a 2D grid of cells that panels draw into. The screen
// diffs and flushes it; tests read it back as strings.
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a cleared buffer with the given dimensions.
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	b := &Buffer{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
	}
	b.Clear()
	return b
}

// Width returns the buffer width in cells.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in cells.
func (b *Buffer) Height() int { return b.height }

// InBounds reports whether the coordinates fall inside the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at x,y, or an empty cell out of bounds.
func (b *Buffer) Get(x, y int) Cell {
	if !b.InBounds(x, y) {
		return EmptyCell()
	}
	return b.cells[y*b.width+x]
}

// Set writes the cell at x,y. Out-of-bounds writes are dropped.
// Box-drawing runes are merged with any box-drawing rune already in
// the cell, so crossing lines form junctions.
func (b *Buffer) Set(x, y int, c Cell) {
	if !b.InBounds(x, y) {
		return
	}
	i := y*b.width + x
	if merged, ok := mergeBoxRunes(b.cells[i].Rune, c.Rune); ok {
		c.Rune = merged
	}
	b.cells[i] = c
}

// Clear resets every cell to blank with default style.
func (b *Buffer) Clear() {
	empty := EmptyCell()
	for i := range b.cells {
		b.cells[i] = empty
	}
}

// FillRect fills a rectangle with the given cell, clipped to the
// buffer.
func (b *Buffer) FillRect(r Rect, c Cell) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			b.Set(x, y, c)
		}
	}
}

// WriteChar writes a single rune at x,y.
func (b *Buffer) WriteChar(x, y int, r rune, st Style) {
	b.Set(x, y, Cell{Rune: r, Style: st})
}

// WriteText writes a string starting at x,y and returns the number of
// columns consumed. Double-width runes occupy two cells; the second
// is a zero-rune shadow the flusher skips. maxWidth <= 0 means no
// clipping beyond the buffer edge.
func (b *Buffer) WriteText(x, y int, s string, st Style, maxWidth int) int {
	written := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if maxWidth > 0 && written+w > maxWidth {
			break
		}
		if x >= b.width {
			break
		}
		b.Set(x, y, Cell{Rune: r, Style: st})
		if w == 2 {
			b.Set(x+1, y, Cell{Rune: 0, Style: st})
		}
		x += w
		written += w
	}
	return written
}

// HLine draws a horizontal box-drawing line.
func (b *Buffer) HLine(x, y, length int, st Style) {
	for i := 0; i < length; i++ {
		b.Set(x+i, y, Cell{Rune: lineH, Style: st})
	}
}

// VLine draws a vertical box-drawing line.
func (b *Buffer) VLine(x, y, length int, st Style) {
	for i := 0; i < length; i++ {
		b.Set(x, y+i, Cell{Rune: lineV, Style: st})
	}
}

// WriteBox draws a rectangular border with an optional title embedded
// in the top edge. Rectangles thinner than 2x2 are skipped.
func (b *Buffer) WriteBox(r Rect, kind BorderKind, st Style, title string) {
	if r.Width < 2 || r.Height < 2 {
		return
	}
	runes := kind.runes()

	b.Set(r.X, r.Y, Cell{Rune: runes.topLeft, Style: st})
	b.Set(r.Right()-1, r.Y, Cell{Rune: runes.topRight, Style: st})
	b.Set(r.X, r.Bottom()-1, Cell{Rune: runes.bottomLeft, Style: st})
	b.Set(r.Right()-1, r.Bottom()-1, Cell{Rune: runes.bottomRight, Style: st})
	for i := 1; i < r.Width-1; i++ {
		b.Set(r.X+i, r.Y, Cell{Rune: runes.horizontal, Style: st})
		b.Set(r.X+i, r.Bottom()-1, Cell{Rune: runes.horizontal, Style: st})
	}
	for i := 1; i < r.Height-1; i++ {
		b.Set(r.X, r.Y+i, Cell{Rune: runes.vertical, Style: st})
		b.Set(r.Right()-1, r.Y+i, Cell{Rune: runes.vertical, Style: st})
	}

	if title != "" && r.Width > 4 {
		label := " " + title + " "
		b.WriteText(r.X+1, r.Y, label, st, r.Width-2)
	}
}

// Line returns row y as a string with trailing spaces removed.
func (b *Buffer) Line(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for x := 0; x < b.width; x++ {
		r := b.cells[y*b.width+x].Rune
		if r == 0 {
			continue
		}
		sb.WriteRune(r)
	}
	return strings.TrimRight(sb.String(), " ")
}

// String renders the buffer as newline-joined rows, trailing spaces
// trimmed. Intended for tests and debugging.
func (b *Buffer) String() string {
	lines := make([]string, b.height)
	for y := 0; y < b.height; y++ {
		lines[y] = b.Line(y)
	}
	return strings.Join(lines, "\n")
}

// Resize grows or shrinks the buffer, preserving overlapping content.
func (b *Buffer) Resize(width, height int) {
	if width == b.width && height == b.height {
		return
	}
	nb := NewBuffer(width, height)
	for y := 0; y < height && y < b.height; y++ {
		copy(nb.cells[y*width:y*width+min(width, b.width)],
			b.cells[y*b.width:y*b.width+min(width, b.width)])
	}
	b.cells = nb.cells
	b.width = width
	b.height = height
}
