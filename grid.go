package pane

import (
	"fmt"
	"strconv"
	"strings"
)

// TrackSpec is one row or column definition: a fixed cell count or a
// proportional ("star") share of the space left after fixed tracks.
type TrackSpec struct {
	Size   int     // fixed size in cells
	Weight float64 // star weight; > 0 marks a proportional track
}

func (t TrackSpec) star() bool { return t.Weight > 0 }

// ParseTrack parses a track definition string: "12" is a fixed track,
// "*" a star track of weight 1, "2*" or "0.5*" a weighted star track.
func ParseTrack(s string) (TrackSpec, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return TrackSpec{}, fmt.Errorf("%w: empty", ErrInvalidTrackSpec)
	}
	if strings.HasSuffix(s, "*") {
		prefix := s[:len(s)-1]
		if prefix == "" {
			return TrackSpec{Weight: 1}, nil
		}
		w, err := strconv.ParseFloat(prefix, 64)
		if err != nil || w <= 0 {
			return TrackSpec{}, fmt.Errorf("%w: %q", ErrInvalidTrackSpec, s)
		}
		return TrackSpec{Weight: w}, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return TrackSpec{}, fmt.Errorf("%w: %q", ErrInvalidTrackSpec, s)
	}
	return TrackSpec{Size: n}, nil
}

// computeTracks sizes every track against the total. Star tracks share
// the space remaining after fixed tracks, floored; any discrepancy
// left by flooring is added to the last star track so the tracks
// consume the total exactly.
func computeTracks(specs []TrackSpec, total int) []int {
	if len(specs) == 0 {
		return nil
	}
	var fixed int
	var weights float64
	lastStar := -1
	for i, t := range specs {
		if t.star() {
			weights += t.Weight
			lastStar = i
		} else {
			fixed += t.Size
		}
	}
	remaining := total - fixed
	if remaining < 0 {
		remaining = 0
	}

	sizes := make([]int, len(specs))
	sum := 0
	for i, t := range specs {
		if t.star() {
			sizes[i] = int(float64(remaining) * t.Weight / weights)
		} else {
			sizes[i] = t.Size
		}
		sum += sizes[i]
	}
	// Flooring can only undershoot; hand the leftover cells to the last
	// star track. When fixed tracks already overflow the total there is
	// nothing to hand out.
	if lastStar >= 0 && sum < total {
		sizes[lastStar] += total - sum
	}
	return sizes
}

// trackOffsets returns cumulative start offsets; track 0 starts at 0.
func trackOffsets(sizes []int) []int {
	offsets := make([]int, len(sizes))
	pos := 0
	for i, s := range sizes {
		offsets[i] = pos
		pos += s
	}
	return offsets
}

// GridProps are the placement hints a grid parent attaches to a child
// edge. Zero values mean row/column 0, a single-cell span, and
// stretch alignment.
type GridProps struct {
	Row, Col         int
	RowSpan, ColSpan int
	HAlign           HAlign
	VAlign           VAlign
}

func defaultGridProps() GridProps {
	return GridProps{RowSpan: 1, ColSpan: 1}
}

func (gp GridProps) normalized() GridProps {
	if gp.Row < 0 {
		gp.Row = 0
	}
	if gp.Col < 0 {
		gp.Col = 0
	}
	if gp.RowSpan < 1 {
		gp.RowSpan = 1
	}
	if gp.ColSpan < 1 {
		gp.ColSpan = 1
	}
	return gp
}

// GridPanel arranges children in rows and columns defined by track
// specs. Definitions default to a single star track per axis.
type GridPanel struct {
	Panel
	rowDefs []string
	colDefs []string

	showGridLines bool
	gridLineColor string // theme key
}

// NewGrid creates an empty grid panel.
func NewGrid(name string) *GridPanel {
	return &GridPanel{Panel: *NewPanel(name)}
}

// Rows sets the row definitions. Specs are validated at layout time.
func (g *GridPanel) Rows(specs ...string) *GridPanel {
	g.rowDefs = specs
	g.Invalidate()
	return g
}

// Columns sets the column definitions.
func (g *GridPanel) Columns(specs ...string) *GridPanel {
	g.colDefs = specs
	g.Invalidate()
	return g
}

// GridLines toggles drawing of separator lines between tracks.
func (g *GridPanel) GridLines(show bool) *GridPanel {
	g.showGridLines = show
	return g
}

// GridLineColor sets the theme color key used for separators.
func (g *GridPanel) GridLineColor(key string) *GridPanel {
	g.gridLineColor = key
	return g
}

// AddItem attaches a child at the given grid position. The props
// replace any earlier layout hints on the child wholesale.
func (g *GridPanel) AddItem(child Component, props GridProps) error {
	if err := g.AddChild(child); err != nil {
		return err
	}
	child.Node().gridProps = props.normalized()
	return nil
}

func (g *GridPanel) parseDefs(defs []string) ([]TrackSpec, error) {
	if len(defs) == 0 {
		return []TrackSpec{{Weight: 1}}, nil
	}
	specs := make([]TrackSpec, len(defs))
	for i, d := range defs {
		t, err := ParseTrack(d)
		if err != nil {
			return nil, err
		}
		specs[i] = t
	}
	return specs, nil
}

// CalculateLayout sizes the tracks against the content area and
// places each visible child in its (possibly spanned) cell. Malformed
// track specs fail the whole pass: the error is logged, an empty
// result returned, and the dirty flag left set for retry.
func (g *GridPanel) CalculateLayout() (res LayoutResult) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("grid layout failed", "panel", g.name, "panic", r)
			res = LayoutResult{}
		}
	}()

	bounds := ContentBounds(g)
	if bounds.Width < 0 {
		bounds.Width = 0
	}
	if bounds.Height < 0 {
		bounds.Height = 0
	}

	rows, err := g.parseDefs(g.rowDefs)
	if err != nil {
		logger.Warn("grid layout: bad row definition", "panel", g.name, "err", err)
		return LayoutResult{}
	}
	cols, err := g.parseDefs(g.colDefs)
	if err != nil {
		logger.Warn("grid layout: bad column definition", "panel", g.name, "err", err)
		return LayoutResult{}
	}

	res.RowSizes = computeTracks(rows, bounds.Height)
	res.ColSizes = computeTracks(cols, bounds.Width)
	res.RowOffsets = trackOffsets(res.RowSizes)
	res.ColOffsets = trackOffsets(res.ColSizes)

	for _, c := range g.children {
		n := c.Node()
		if !n.visible {
			continue
		}
		gp := n.gridProps.normalized()

		row := clampIndex(gp.Row, len(rows))
		col := clampIndex(gp.Col, len(cols))
		rowSpan := clampSpan(gp.RowSpan, row, len(rows))
		colSpan := clampSpan(gp.ColSpan, col, len(cols))

		cell := Rect{
			X:      bounds.X + res.ColOffsets[col],
			Y:      bounds.Y + res.RowOffsets[row],
			Width:  spanSize(res.ColSizes, col, colSpan),
			Height: spanSize(res.RowSizes, row, rowSpan),
		}

		b := n.bounds
		x, w := alignSpan(int(gp.HAlign), cell.X, cell.Width, b.Width)
		y, h := alignSpan(int(gp.VAlign), cell.Y, cell.Height, b.Height)
		r := Rect{X: x, Y: y, Width: w, Height: h}
		n.setPlacement(r)
		res.Placements = append(res.Placements, Placement{Child: c, Bounds: r})
	}

	g.layout = res
	g.dirty = false
	return res
}

func clampIndex(i, count int) int {
	if i < 0 {
		return 0
	}
	if i > count-1 {
		return count - 1
	}
	return i
}

func clampSpan(span, start, count int) int {
	if span < 1 {
		span = 1
	}
	if span > count-start {
		span = count - start
	}
	return span
}

func spanSize(sizes []int, start, span int) int {
	total := 0
	for i := start; i < start+span && i < len(sizes); i++ {
		total += sizes[i]
	}
	return total
}

// Render paints the frame and, when enabled, separator lines between
// tracks using the cached offset tables.
func (g *GridPanel) Render(buf *Buffer, th *Theme) {
	g.paintFrame(buf, th)
	if !g.showGridLines || g.dirty {
		return
	}
	bounds := ContentBounds(g)
	if bounds.Empty() {
		return
	}
	st := Style{FG: th.Color(g.gridLineColor, th.Color("grid.lines", nil))}
	for i := 1; i < len(g.layout.ColOffsets); i++ {
		buf.VLine(bounds.X+g.layout.ColOffsets[i], bounds.Y, bounds.Height, st)
	}
	for i := 1; i < len(g.layout.RowOffsets); i++ {
		buf.HLine(bounds.X, bounds.Y+g.layout.RowOffsets[i], bounds.Width, st)
	}
}
