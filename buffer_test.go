package pane

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferSetGet(t *testing.T) {
	b := NewBuffer(10, 4)
	b.Set(3, 2, Cell{Rune: 'x'})
	assert.Equal(t, 'x', b.Get(3, 2).Rune)
	assert.Equal(t, ' ', b.Get(0, 0).Rune)

	// out of bounds reads are empty, writes are dropped
	assert.Equal(t, ' ', b.Get(-1, 0).Rune)
	assert.Equal(t, ' ', b.Get(10, 0).Rune)
	b.Set(10, 0, Cell{Rune: 'x'})
	b.Set(0, -1, Cell{Rune: 'x'})
}

func TestWriteTextClipsAtMaxWidth(t *testing.T) {
	b := NewBuffer(20, 2)
	n := b.WriteText(0, 0, "hello world", Style{}, 5)
	assert.Equal(t, 5, n)
	assert.Equal(t, "hello", b.Line(0))
}

func TestWriteTextWideRunes(t *testing.T) {
	b := NewBuffer(10, 1)
	n := b.WriteText(0, 0, "日本", Style{}, 0)
	assert.Equal(t, 4, n)
	assert.Equal(t, '日', b.Get(0, 0).Rune)
	assert.Equal(t, rune(0), b.Get(1, 0).Rune, "second column is a shadow cell")
	assert.Equal(t, '本', b.Get(2, 0).Rune)

	// a wide rune that would straddle the clip boundary is dropped whole
	b2 := NewBuffer(10, 1)
	n = b2.WriteText(0, 0, "a日", Style{}, 2)
	assert.Equal(t, 1, n)
}

func TestWriteBox(t *testing.T) {
	b := NewBuffer(10, 4)
	b.WriteBox(Rect{Width: 6, Height: 3}, BorderSingle, Style{}, "")
	assert.Equal(t, "┌────┐", b.Line(0))
	assert.Equal(t, "│    │", b.Line(1))
	assert.Equal(t, "└────┘", b.Line(2))
}

func TestWriteBoxTitle(t *testing.T) {
	b := NewBuffer(12, 3)
	b.WriteBox(Rect{Width: 10, Height: 3}, BorderRounded, Style{}, "hi")
	assert.Equal(t, "╭ hi ────╮", b.Line(0))
}

func TestWriteBoxTooSmallSkipped(t *testing.T) {
	b := NewBuffer(10, 4)
	b.WriteBox(Rect{Width: 1, Height: 3}, BorderSingle, Style{}, "")
	assert.Equal(t, "", b.Line(0))
}

func TestBoxRunesMergeIntoJunctions(t *testing.T) {
	b := NewBuffer(12, 6)
	b.WriteBox(Rect{Width: 6, Height: 3}, BorderSingle, Style{}, "")
	b.WriteBox(Rect{Y: 2, Width: 6, Height: 3}, BorderSingle, Style{}, "")

	// the shared edge becomes tee junctions
	assert.Equal(t, '├', b.Get(0, 2).Rune)
	assert.Equal(t, '┤', b.Get(5, 2).Rune)
}

func TestCrossingLinesFormCross(t *testing.T) {
	b := NewBuffer(5, 5)
	b.HLine(0, 2, 5, Style{})
	b.VLine(2, 0, 5, Style{})
	assert.Equal(t, '┼', b.Get(2, 2).Rune)
}

func TestFillRectClips(t *testing.T) {
	b := NewBuffer(4, 4)
	b.FillRect(Rect{X: 2, Y: 2, Width: 10, Height: 10}, Cell{Rune: '#'})
	assert.Equal(t, '#', b.Get(3, 3).Rune)
	assert.Equal(t, ' ', b.Get(1, 1).Rune)
}

func TestBufferResizePreservesOverlap(t *testing.T) {
	b := NewBuffer(6, 3)
	b.WriteText(0, 0, "hello", Style{}, 0)
	b.WriteText(0, 2, "below", Style{}, 0)

	b.Resize(4, 2)
	assert.Equal(t, 4, b.Width())
	assert.Equal(t, 2, b.Height())
	assert.Equal(t, "hell", b.Line(0))

	b.Resize(8, 3)
	assert.Equal(t, "hell", b.Line(0))
	assert.Equal(t, "", b.Line(2), "rows lost to a shrink stay lost")
}

func TestBufferString(t *testing.T) {
	b := NewBuffer(6, 2)
	b.WriteText(0, 0, "ab", Style{}, 0)
	assert.Equal(t, "ab\n", b.String())
}

func TestNegativeDimensions(t *testing.T) {
	b := NewBuffer(-3, -1)
	assert.Equal(t, 0, b.Width())
	assert.Equal(t, 0, b.Height())
	assert.Equal(t, "", b.String())
}
