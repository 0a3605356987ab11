package pane

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTreeComputesNestedLayout(t *testing.T) {
	outer := NewStack("outer", Vertical).Spacing(1)
	outer.SetBounds(Rect{Width: 20, Height: 12})
	inner := NewStack("inner", Horizontal)
	inner.bounds.Height = 2
	require.NoError(t, outer.AddChild(inner))
	require.NoError(t, inner.AddChild(sized("leaf", 4, 2)))
	require.NoError(t, outer.AddChild(sized("below", 5, 3)))

	buf := NewBuffer(20, 12)
	RenderTree(outer, buf, ThemeDark())

	// the pass settles the whole tree: nothing left dirty
	assert.False(t, outer.Dirty())
	assert.False(t, inner.Dirty())
	assert.Equal(t, Rect{X: 0, Y: 0, Width: 20, Height: 2}, inner.Bounds())
	leaf := inner.Children()[0].Node()
	assert.Equal(t, Rect{X: 0, Y: 0, Width: 4, Height: 2}, leaf.Bounds())
}

func TestRenderTreeSkipsInvisible(t *testing.T) {
	root := NewStack("root", Vertical)
	root.SetBounds(Rect{Width: 20, Height: 5})
	hidden := NewLabel("should not appear")
	require.NoError(t, root.AddChild(hidden))
	hidden.Hide()

	buf := NewBuffer(20, 5)
	RenderTree(root, buf, ThemeDark())
	assert.NotContains(t, buf.String(), "should not appear")
}

func TestRenderTreeZIndexOrdersSiblings(t *testing.T) {
	root := NewPanel("root")
	root.SetBounds(Rect{Width: 10, Height: 1})

	under := NewLabel("UNDER")
	under.SetBounds(Rect{Width: 5, Height: 1})
	under.ZIndex(5)
	over := NewLabel("OVER.")
	over.SetBounds(Rect{Width: 5, Height: 1})
	over.ZIndex(10)

	// insertion order deliberately disagrees with z order
	require.NoError(t, root.AddChild(over))
	require.NoError(t, root.AddChild(under))

	buf := NewBuffer(10, 1)
	RenderTree(root, buf, ThemeDark())
	assert.Equal(t, "OVER.", buf.Line(0))
}

func TestFocusLayoutIntegration(t *testing.T) {
	// a spaced column of focusable rows: layout settles geometry, then
	// the focus walk follows visual order
	column := NewStack("column", Vertical).Spacing(1)
	column.SetBounds(Rect{Width: 30, Height: 24})
	names := []string{"first", "second", "third"}
	for _, name := range names {
		row := sized(name, 10, 2)
		row.Focusable(true)
		require.NoError(t, column.AddChild(row))
	}

	buf := NewBuffer(30, 24)
	RenderTree(column, buf, ThemeDark())

	rows := column.Children()
	assert.Equal(t, 0, rows[0].Node().Bounds().Y)
	assert.Equal(t, 3, rows[1].Node().Bounds().Y)
	assert.Equal(t, 6, rows[2].Node().Bounds().Y)

	m := NewFocusManager(nil)
	m.RegisterScreen(column)
	var visited []string
	visited = append(visited, m.Focused().Node().Name())
	for i := 0; i < 2; i++ {
		require.True(t, m.MoveFocus(false, true))
		visited = append(visited, m.Focused().Node().Name())
	}
	assert.Equal(t, names, visited)
}

func TestRenderedFrameLooksRight(t *testing.T) {
	panel := NewStack("framed", Vertical)
	panel.SetBounds(Rect{Width: 12, Height: 4})
	panel.Border(BorderSingle).Title("Log")
	require.NoError(t, panel.AddChild(NewLabel("ready")))

	buf := NewBuffer(12, 4)
	RenderTree(panel, buf, ThemeDark())

	lines := strings.Split(buf.String(), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "┌ Log ─────┐", lines[0])
	assert.Equal(t, "│ready     │", lines[1])
	assert.Equal(t, "└──────────┘", lines[3])
}
