package pane

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appWithButtons(t *testing.T) (*App, *Button, *Button) {
	t.Helper()
	one := NewButton("one", nil)
	two := NewButton("two", nil)
	one.SetBounds(Rect{Y: 0, Width: 7, Height: 1})
	two.SetBounds(Rect{Y: 1, Width: 7, Height: 1})
	root := NewStack("root", Vertical)
	require.NoError(t, root.AddChild(one))
	require.NoError(t, root.AddChild(two))

	app := NewApp(root)
	app.layoutRoot(Size{Width: 40, Height: 10})
	app.focus.RegisterScreen(root)
	return app, one, two
}

func TestAppTabMovesFocus(t *testing.T) {
	app, one, two := appWithButtons(t)
	require.Same(t, one.Node(), app.focus.Focused().Node())

	app.handleKey(Key{Kind: KeyTab})
	assert.Same(t, two.Node(), app.focus.Focused().Node())
	app.handleKey(Key{Kind: KeyShiftTab})
	assert.Same(t, one.Node(), app.focus.Focused().Node())
}

func TestAppDispatchesToFocused(t *testing.T) {
	app, one, _ := appWithButtons(t)
	pressed := 0
	one.OnPress = func() { pressed++ }

	app.handleKey(Key{Kind: KeyEnter})
	assert.Equal(t, 1, pressed)
}

func TestAppCtrlCQuits(t *testing.T) {
	app, _, _ := appWithButtons(t)
	app.handleKey(Ctrl('c'))
	select {
	case <-app.quitCh:
	default:
		t.Fatal("expected quit channel to be closed")
	}
}

func TestAppDialogLifecycle(t *testing.T) {
	app, one, _ := appWithButtons(t)
	require.Same(t, one.Node(), app.focus.Focused().Node())

	var choice string
	d := NewDialog("Confirm", "Sure?", "OK", "Cancel")
	d.OnClose = func(c string) { choice = c }
	app.ShowDialog(d)

	require.Same(t, d.Node(), app.focus.ActiveScope())
	require.Same(t, d.Buttons()[0].Node(), app.focus.Focused().Node())

	// Tab cycles inside the dialog, not the screen behind it
	app.handleKey(Key{Kind: KeyTab})
	assert.Same(t, d.Buttons()[1].Node(), app.focus.Focused().Node())
	app.handleKey(Key{Kind: KeyTab})
	assert.Same(t, d.Buttons()[0].Node(), app.focus.Focused().Node())

	// Enter activates the focused dialog button and closes the dialog
	app.handleKey(Key{Kind: KeyEnter})
	assert.Equal(t, "OK", choice)
	assert.Nil(t, app.dialog)
	assert.Nil(t, app.focus.ActiveScope())
	assert.Same(t, one.Node(), app.focus.Focused().Node(), "prior focus restored")
}

func TestAppDialogEscCloses(t *testing.T) {
	app, one, _ := appWithButtons(t)
	d := NewDialog("Confirm", "Sure?", "OK")
	app.ShowDialog(d)

	app.handleKey(Key{Kind: KeyEsc})
	assert.Nil(t, app.dialog)
	assert.Same(t, one.Node(), app.focus.Focused().Node())
}

func TestAppSecondDialogIgnoredWhileOpen(t *testing.T) {
	app, _, _ := appWithButtons(t)
	first := NewDialog("First", "?", "OK")
	second := NewDialog("Second", "?", "OK")
	app.ShowDialog(first)
	app.ShowDialog(second)
	assert.Same(t, first, app.dialog)
}

func TestAppRequestRenderCoalesces(t *testing.T) {
	app, _, _ := appWithButtons(t)
	for i := 0; i < 10; i++ {
		app.RequestRender()
	}
	<-app.renderCh
	select {
	case <-app.renderCh:
		t.Fatal("expected a single pending render")
	default:
	}
}

func TestAppResizeRelayoutsTree(t *testing.T) {
	app, _, _ := appWithButtons(t)
	app.screen = NewScreen(io.Discard)

	// what the run loop does when a size arrives
	size := Size{Width: 32, Height: 8}
	app.screen.Resize(size)
	app.layoutRoot(size)
	app.render()

	assert.Equal(t, size, app.screen.Size())
	assert.Equal(t, 32, app.screen.Back().Width())
	assert.Equal(t, 8, app.screen.Back().Height())
	assert.Equal(t, 32, app.root.Node().Bounds().Width)
}

func TestAppPlaceDialogCenters(t *testing.T) {
	app, _, _ := appWithButtons(t)
	d := NewDialog("Confirm", "Sure?", "OK")
	app.dialog = d
	app.placeDialog()

	size := app.screen.Size()
	b := d.Bounds()
	assert.Equal(t, (size.Width-b.Width)/2, b.X)
	assert.Equal(t, (size.Height-b.Height)/2, b.Y)
	assert.LessOrEqual(t, b.Width, size.Width)
}
