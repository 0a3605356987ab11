package pane

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialogButtonsAndScope(t *testing.T) {
	d := NewDialog("Confirm", "Delete everything?", "OK", "Cancel")
	require.Len(t, d.Buttons(), 2)
	assert.True(t, d.Node().focusScope)
	assert.NotNil(t, d.ScopeMoveFocus)
}

func TestDialogButtonDismissesWithChoice(t *testing.T) {
	d := NewDialog("Confirm", "Proceed?", "OK", "Cancel")
	var choice string
	closed := 0
	d.OnClose = func(c string) { choice = c }
	d.closer = func() { closed++ }

	require.True(t, d.Buttons()[0].HandleInput(Key{Kind: KeyEnter}))
	assert.Equal(t, "OK", choice)
	assert.Equal(t, 1, closed)

	// a second activation must not re-close
	d.Buttons()[1].HandleInput(Key{Kind: KeyEnter})
	assert.Equal(t, 1, closed)
}

func TestDialogEscDismissesWithoutChoice(t *testing.T) {
	d := NewDialog("Confirm", "Proceed?", "OK")
	var choice = "unset"
	d.OnClose = func(c string) { choice = c }

	require.True(t, d.HandleInput(Key{Kind: KeyEsc}))
	assert.Equal(t, "", choice)
	assert.False(t, d.HandleInput(Runes('x')))
}

func TestDialogCycleButtonsWraps(t *testing.T) {
	d := NewDialog("Confirm", "Proceed?", "A", "B", "C")
	var focused []*Button
	d.requestFocus = func(c Component) bool {
		for _, b := range d.Buttons() {
			b.Node().focused = false
		}
		btn := c.(*Button)
		btn.Node().focused = true
		focused = append(focused, btn)
		return true
	}

	require.True(t, d.cycleButtons(false)) // nothing focused: first
	require.True(t, d.cycleButtons(false))
	require.True(t, d.cycleButtons(false))
	require.True(t, d.cycleButtons(false)) // wraps to first

	require.Len(t, focused, 4)
	assert.Equal(t, "A", focused[0].Label())
	assert.Equal(t, "B", focused[1].Label())
	assert.Equal(t, "C", focused[2].Label())
	assert.Equal(t, "A", focused[3].Label())

	require.True(t, d.cycleButtons(true))
	assert.Equal(t, "C", focused[4].Label(), "reverse wraps to the end")
}

func TestDialogCycleWithoutHostDeclines(t *testing.T) {
	d := NewDialog("Confirm", "Proceed?", "OK")
	assert.False(t, d.cycleButtons(false), "no host hook means navigation falls through")
}

func TestDialogLayoutFillsContentArea(t *testing.T) {
	d := NewDialog("Confirm", "Proceed?", "OK")
	d.SetBounds(Rect{X: 10, Y: 5, Width: 30, Height: 8})

	res := d.CalculateLayout()
	require.Len(t, res.Placements, 1)
	// border plus one cell of padding on each side
	assert.Equal(t, Rect{X: 12, Y: 7, Width: 26, Height: 4}, res.Placements[0].Bounds)
	assert.False(t, d.Dirty())
}

func TestDialogMeasureFitsContent(t *testing.T) {
	d := NewDialog("Confirm", "A fairly long question to ask?", "OK", "Cancel")
	w, h := d.measure()
	assert.GreaterOrEqual(t, w, 30+4, "message width plus frame")
	assert.Equal(t, 7, h, "message, gap, buttons, frame")
}

func TestDialogMeasureTracksMessageChanges(t *testing.T) {
	d := NewDialog("Confirm", "short", "OK")
	w1, h1 := d.measure()

	d.message.SetText("a considerably longer message body")
	w2, h2 := d.measure()
	assert.Greater(t, w2, w1)
	assert.Equal(t, 38, w2, "message width plus padding and border")
	assert.Equal(t, h1, h2)
}
