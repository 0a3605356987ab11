package pane

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScreenResizeAdoptsNewSize(t *testing.T) {
	var out bytes.Buffer
	s := NewScreen(&out)

	s.Resize(Size{Width: 40, Height: 12})
	assert.Equal(t, Size{Width: 40, Height: 12}, s.Size())
	assert.Equal(t, 40, s.Back().Width())
	assert.Equal(t, 12, s.Back().Height())
	assert.Contains(t, out.String(), "\x1b[2J", "full wipe before the repaint")

	out.Reset()
	s.Resize(Size{Width: 40, Height: 12})
	assert.Zero(t, out.Len(), "same size is a no-op")
}

func TestScreenResizeBetweenRenderPasses(t *testing.T) {
	s := NewScreen(io.Discard)
	first := s.Size()

	back := s.Back()
	back.Clear()
	back.FillRect(Rect{Width: first.Width, Height: first.Height}, Cell{Rune: 'x'})
	s.Flush()

	// shrink, then run the same render pattern against the old extent
	s.Resize(Size{Width: 20, Height: 10})
	back = s.Back()
	back.Clear()
	require.NotPanics(t, func() {
		back.FillRect(Rect{Width: first.Width, Height: first.Height}, Cell{Rune: 'y'})
		s.Flush()
	})

	assert.Equal(t, 20, back.Width())
	assert.Equal(t, 10, back.Height())
	assert.Equal(t, 'y', back.Get(19, 9).Rune)
	assert.Equal(t, ' ', back.Get(25, 5).Rune, "writes past the new edge are dropped")
}

func TestScreenResizeClearsForRepaint(t *testing.T) {
	s := NewScreen(io.Discard)
	small := Size{Width: 10, Height: 4}
	s.Resize(small)
	s.Back().WriteText(0, 0, "keep", Style{}, 0)

	s.Resize(Size{Width: 30, Height: 12})
	assert.Equal(t, 30, s.Back().Width())
	// both buffers cleared for the repaint
	assert.Equal(t, ' ', s.Back().Get(0, 0).Rune)
}
