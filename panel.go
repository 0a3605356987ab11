package pane

import (
	"errors"

	"github.com/google/uuid"
)

// Validation errors surfaced by tree and layout operations. Public
// entry points on the render/input path never propagate these as
// panics; they log and return a safe default instead.
var (
	ErrNilChild         = errors.New("child must not be nil")
	ErrCycle            = errors.New("child is an ancestor of its parent")
	ErrInvalidTrackSpec = errors.New("invalid grid definition")
)

// Component is the interface every node in the panel tree implements.
// Panel provides tree structure, geometry, visibility and focus state;
// concrete types add rendering and input behavior.
type Component interface {
	// Node returns the underlying layout node.
	Node() *Panel

	// Render paints the component's own background, border and
	// content. Children render themselves: a parent only computes
	// where they go.
	Render(buf *Buffer, th *Theme)

	// HandleInput processes a key aimed at this component and
	// reports whether it was consumed.
	HandleInput(k Key) bool
}

// Layouter is implemented by panels that compute child placement.
// CalculateLayout clears the node's dirty flag only on success, so a
// failed computation is retried on the next render.
type Layouter interface {
	CalculateLayout() LayoutResult
}

// Panel is the base node of the layout tree. It is itself a renderable
// Component (background plus optional border) and is embedded by
// StackPanel, GridPanel and the leaf components.
type Panel struct {
	name   string
	bounds Rect

	margin     int
	padding    int
	showBorder bool
	borderKind BorderKind
	title      string

	// theme color keys; empty means the theme default / transparent
	borderColor string
	background  string

	zIndex     int
	visible    bool
	enabled    bool
	focusable  bool
	focused    bool
	tabIndex   int
	focusScope bool

	// parent is a back-reference only; ownership runs strictly
	// downward through children.
	parent   *Panel
	children []Component

	// gridProps belong to the parent-child edge: the parent writes
	// them at attach time, grid layout reads them.
	gridProps GridProps

	dirty  bool
	layout LayoutResult

	// Focus lifecycle hooks, invoked by the FocusManager. Panics in
	// these are recovered and logged, never propagated.
	OnFocus      func()
	OnBlur       func()
	OnScopeEnter func()
	OnScopeLeave func()

	// ScopeMoveFocus lets a focus scope implement its own tab
	// cycling. Return true to mark the navigation handled.
	ScopeMoveFocus func(reverse bool) bool
}

// NewPanel creates a panel. An empty name gets a generated one; names
// are used for logging and debugging only.
func NewPanel(name string) *Panel {
	if name == "" {
		name = "panel-" + uuid.NewString()[:8]
	}
	return &Panel{
		name:       name,
		visible:    true,
		enabled:    true,
		borderKind: BorderSingle,
		dirty:      true,
	}
}

// Node implements Component.
func (p *Panel) Node() *Panel { return p }

// Render paints the panel's background and border. Content is the
// business of concrete component types.
func (p *Panel) Render(buf *Buffer, th *Theme) {
	p.paintFrame(buf, th)
}

// HandleInput implements Component. The base panel consumes nothing;
// input is delegated to focused leaf components, never broadcast.
func (p *Panel) HandleInput(Key) bool { return false }

// paintFrame fills the background and draws the border within the
// panel's margin box.
func (p *Panel) paintFrame(buf *Buffer, th *Theme) {
	frame := p.bounds.Inset(p.margin)
	if frame.Empty() {
		return
	}
	if p.background != "" {
		if bg := th.Color(p.background, nil); bg != nil {
			buf.FillRect(frame, Cell{Rune: ' ', Style: Style{BG: bg}})
		}
	}
	if p.showBorder {
		st := Style{FG: th.Color(p.borderColor, th.Color("panel.border", nil))}
		buf.WriteBox(frame, p.borderKind, st, p.title)
	}
}

// Name returns the panel's debug name.
func (p *Panel) Name() string { return p.name }

// Bounds returns the panel's outer rectangle.
func (p *Panel) Bounds() Rect { return p.bounds }

// SetBounds sets the panel's outer rectangle and invalidates layout.
// Layout algorithms call this on their children; the values they
// write are authoritative.
func (p *Panel) SetBounds(r Rect) {
	if p.bounds == r {
		return
	}
	p.bounds = r
	p.Invalidate()
}

// setPlacement is SetBounds without upward invalidation, used by
// layout algorithms: a moved child must recompute its own children,
// but repositioning must not re-dirty the ancestors mid-pass.
func (p *Panel) setPlacement(r Rect) {
	if p.bounds == r {
		return
	}
	p.bounds = r
	p.dirty = true
}

// Parent returns the panel's parent node, or nil at the root.
func (p *Panel) Parent() *Panel { return p.parent }

// Children returns the child list in insertion order. Insertion order
// is the default stacking order and the focus tie-break.
func (p *Panel) Children() []Component { return p.children }

// Visible reports the panel's own visibility flag.
func (p *Panel) Visible() bool { return p.visible }

// Enabled reports whether the panel accepts interaction.
func (p *Panel) Enabled() bool { return p.enabled }

// IsFocusable reports whether the panel participates in tab order.
func (p *Panel) IsFocusable() bool { return p.focusable }

// Focused reports whether the panel currently holds focus.
func (p *Panel) Focused() bool { return p.focused }

// TabIndexValue returns the explicit tab index (default 0).
func (p *Panel) TabIndexValue() int { return p.tabIndex }

// Dirty reports whether cached layout must be recomputed before the
// next render of this subtree.
func (p *Panel) Dirty() bool { return p.dirty }

// LastLayout returns the most recently computed layout result. It is
// only trustworthy while Dirty reports false.
func (p *Panel) LastLayout() LayoutResult { return p.layout }

// GridProperties returns the per-edge grid placement hints written by
// the panel's parent.
func (p *Panel) GridProperties() GridProps { return p.gridProps }

// --- Fluent configuration ---

// Margin sets a symmetric outer inset.
func (p *Panel) Margin(n int) *Panel { p.margin = n; p.Invalidate(); return p }

// Padding sets a symmetric inner inset.
func (p *Panel) Padding(n int) *Panel { p.padding = n; p.Invalidate(); return p }

// Size sets the panel's preferred extent. Parent layouts read it on
// the axes they do not govern.
func (p *Panel) Size(w, h int) *Panel {
	p.bounds.Width = w
	p.bounds.Height = h
	p.Invalidate()
	return p
}

// Width sets the preferred width.
func (p *Panel) Width(w int) *Panel {
	p.bounds.Width = w
	p.Invalidate()
	return p
}

// Height sets the preferred height.
func (p *Panel) Height(h int) *Panel {
	p.bounds.Height = h
	p.Invalidate()
	return p
}

// Border enables the border with the given style.
func (p *Panel) Border(k BorderKind) *Panel {
	p.showBorder = true
	p.borderKind = k
	p.Invalidate()
	return p
}

// Title sets the text drawn in the top border.
func (p *Panel) Title(s string) *Panel { p.title = s; return p }

// BorderColor sets the theme color key used for the border.
func (p *Panel) BorderColor(key string) *Panel { p.borderColor = key; return p }

// Background sets the theme color key used to fill the panel.
func (p *Panel) Background(key string) *Panel { p.background = key; return p }

// ZIndex sets the advisory stacking index. Higher values render later
// among siblings.
func (p *Panel) ZIndex(z int) *Panel { p.zIndex = z; return p }

// Focusable marks the panel as a tab stop.
func (p *Panel) Focusable(v bool) *Panel { p.focusable = v; return p }

// TabIndex sets the explicit tab order index. Lower values come first;
// ties fall back to reading order (top-to-bottom, left-to-right).
func (p *Panel) TabIndex(n int) *Panel { p.tabIndex = n; return p }

// SetEnabled toggles interaction. Disabled panels are skipped during
// tab navigation.
func (p *Panel) SetEnabled(v bool) { p.enabled = v }

// FocusScope marks the panel as a focus scope boundary (e.g. a
// dialog owning its own tab cycling).
func (p *Panel) FocusScope(v bool) *Panel { p.focusScope = v; return p }

// --- Tree operations ---

// AddChild appends a child. The child's previous parent edge, if any,
// is severed first; its per-edge layout props are reset wholesale. If
// this panel is hidden the child is hidden once at attach time.
func (p *Panel) AddChild(child Component) error {
	if child == nil {
		logger.Warn("AddChild: nil child", "panel", p.name)
		return ErrNilChild
	}
	n := child.Node()
	if n == nil {
		logger.Warn("AddChild: child has no node", "panel", p.name)
		return ErrNilChild
	}
	for a := p; a != nil; a = a.parent {
		if a == n {
			logger.Warn("AddChild: cycle rejected", "panel", p.name, "child", n.name)
			return ErrCycle
		}
	}
	if n.parent != nil && n.parent != p {
		n.parent.RemoveChild(child)
	}
	n.parent = p
	n.gridProps = defaultGridProps()
	p.children = append(p.children, child)
	if !p.visible {
		n.visible = false
	}
	p.Invalidate()
	return nil
}

// RemoveChild detaches a child. Absent children are a no-op, not an
// error.
func (p *Panel) RemoveChild(child Component) {
	if child == nil {
		return
	}
	n := child.Node()
	for i, c := range p.children {
		if c.Node() == n {
			p.children = append(p.children[:i], p.children[i+1:]...)
			if n.parent == p {
				n.parent = nil
			}
			p.Invalidate()
			return
		}
	}
}

// ClearChildren detaches every child and empties the list.
func (p *Panel) ClearChildren() {
	if len(p.children) == 0 {
		return
	}
	for _, c := range p.children {
		if n := c.Node(); n != nil && n.parent == p {
			n.parent = nil
		}
	}
	p.children = p.children[:0]
	p.Invalidate()
}

// Show makes the panel and its whole subtree visible. Idempotent: a
// second call in the same state does not re-invalidate.
func (p *Panel) Show() {
	if p.visible {
		return
	}
	p.visible = true
	for _, c := range p.children {
		c.Node().Show()
	}
	p.Invalidate()
}

// Hide makes the panel and its whole subtree invisible. Idempotent.
func (p *Panel) Hide() {
	if !p.visible {
		return
	}
	p.visible = false
	for _, c := range p.children {
		c.Node().Hide()
	}
	p.Invalidate()
}

// Invalidate marks this panel's cached layout stale and propagates to
// the root. The tree invariant (no cycles) bounds the walk.
func (p *Panel) Invalidate() {
	p.dirty = true
	if p.parent != nil {
		p.parent.Invalidate()
	}
}
