package pane

import (
	"sort"
	"time"
)

// Focus change reasons recorded in history and carried on events.
const (
	ReasonInitialFocus  = "InitialFocus"
	ReasonTabNavigation = "TabNavigation"
	ReasonNoFocusable   = "NoFocusableComponents"
	ReasonRequest       = "Request"
)

// maxFocusHistory bounds the diagnostic history ring.
const maxFocusHistory = 50

// FocusRecord is one diagnostic history entry. Nothing behavioral
// depends on it.
type FocusRecord struct {
	Name   string
	Time   time.Time
	Reason string
}

// FocusManager tracks the focused component and the screen's tab
// order, and navigates between focusable components. It indexes
// panels but never owns them; registering a new screen replaces the
// index wholesale.
//
// Every public method is non-panicking: focus operations run inside
// the keystroke path, where an escaped panic would take down the
// whole session. Internal failures are logged and reported as a safe
// default return.
type FocusManager struct {
	screen      Component
	focused     Component
	tabOrder    []Component
	activeScope *Panel
	scopeStack  []*Panel
	history     []FocusRecord

	bus     *Bus
	repaint func()
}

// NewFocusManager creates a focus manager publishing focus/blur
// events on the given bus (which may be nil).
func NewFocusManager(bus *Bus) *FocusManager {
	return &FocusManager{bus: bus}
}

// SetRepaint installs the repaint request hook, called after every
// successful focus mutation. Best-effort; nil is fine.
func (m *FocusManager) SetRepaint(fn func()) { m.repaint = fn }

// Focused returns the currently focused component, or nil.
func (m *FocusManager) Focused() Component { return m.focused }

// TabOrder returns the current tab order.
func (m *FocusManager) TabOrder() []Component { return m.tabOrder }

// ActiveScope returns the focus scope containing focus, or nil.
func (m *FocusManager) ActiveScope() *Panel { return m.activeScope }

// History returns the bounded focus-change history, oldest first.
func (m *FocusManager) History() []FocusRecord { return m.history }

// RegisterScreen rebuilds the tab order from a screen root: a
// depth-first walk of its children collecting focusable visible
// nodes, sorted by explicit tab index, then reading order (top to
// bottom, left to right; DFS order breaks full ties). The active
// scope is cleared. If the current focus is absent from the new
// order, focus moves to the first entry; an empty order clears focus.
func (m *FocusManager) RegisterScreen(screen Component) {
	defer m.boundary("RegisterScreen")()

	m.screen = screen
	m.rebuildTabOrder()
	m.activeScope = nil

	if len(m.tabOrder) == 0 {
		m.RequestFocus(nil, false, ReasonNoFocusable)
		return
	}
	if m.focused == nil || !m.inTabOrder(m.focused) {
		m.RequestFocus(m.tabOrder[0], false, ReasonInitialFocus)
	}
}

// rebuildTabOrder re-collects and re-sorts the tab order from the
// registered screen without touching focus.
func (m *FocusManager) rebuildTabOrder() {
	type entry struct {
		c        Component
		tabIndex int
		y, x     int
	}
	var entries []entry
	var walk func(c Component)
	walk = func(c Component) {
		n := c.Node()
		if !n.visible {
			return
		}
		if n.focusable {
			entries = append(entries, entry{c, n.tabIndex, n.bounds.Y, n.bounds.X})
		}
		for _, child := range n.children {
			walk(child)
		}
	}
	if m.screen != nil {
		for _, child := range m.screen.Node().children {
			walk(child)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.tabIndex != b.tabIndex {
			return a.tabIndex < b.tabIndex
		}
		if a.y != b.y {
			return a.y < b.y
		}
		return a.x < b.x
	})
	m.tabOrder = m.tabOrder[:0]
	for _, e := range entries {
		m.tabOrder = append(m.tabOrder, e.c)
	}
}

func (m *FocusManager) inTabOrder(c Component) bool {
	n := c.Node()
	for _, o := range m.tabOrder {
		if o.Node() == n {
			return true
		}
	}
	return false
}

// RequestFocus moves focus to the component. A nil component clears
// focus. Returns false (and logs) when the target is not focusable or
// not visible; the previous focus is untouched in that case. Blur,
// focus and scope enter/leave callbacks fire in order; a panicking
// callback is recovered and logged, and the transition still
// completes. When updateTabOrder is set and the target is missing
// from the tab order, the order is rebuilt from the screen.
func (m *FocusManager) RequestFocus(c Component, updateTabOrder bool, reason string) (ok bool) {
	defer m.boundaryBool("RequestFocus", &ok)()

	if c != nil {
		n := c.Node()
		if n == nil || !n.focusable || !n.visible {
			logger.Debug("RequestFocus rejected",
				"component", componentName(c), "reason", reason)
			return false
		}
	}

	sameTarget := m.focused != nil && c != nil && m.focused.Node() == c.Node()
	if m.focused != nil && !sameTarget {
		old := m.focused.Node()
		old.focused = false
		safeCall("blur", old.name, old.OnBlur)
		if m.bus != nil {
			m.bus.Publish(EventBlur, FocusEvent{Name: old.name, Component: m.focused, Reason: reason})
		}
	}

	m.enterScopeOf(c)

	m.focused = c
	if c != nil {
		n := c.Node()
		n.focused = true
		safeCall("focus", n.name, n.OnFocus)
		if m.bus != nil {
			m.bus.Publish(EventFocus, FocusEvent{Name: n.name, Component: c, Reason: reason})
		}
		if updateTabOrder && !m.inTabOrder(c) {
			m.rebuildTabOrder()
		}
	}

	m.record(c, reason)
	if m.repaint != nil {
		m.repaint()
	}
	return true
}

// ClearFocus removes focus from whatever holds it.
func (m *FocusManager) ClearFocus(reason string) {
	m.RequestFocus(nil, false, reason)
}

// enterScopeOf swaps the active scope to the nearest scope ancestor
// of c, firing leave/enter callbacks on a change.
func (m *FocusManager) enterScopeOf(c Component) {
	var scope *Panel
	if c != nil {
		for n := c.Node(); n != nil; n = n.parent {
			if n.focusScope {
				scope = n
				break
			}
		}
	}
	if scope == m.activeScope {
		return
	}
	if m.activeScope != nil {
		safeCall("scope leave", m.activeScope.name, m.activeScope.OnScopeLeave)
	}
	m.activeScope = scope
	if scope != nil {
		safeCall("scope enter", scope.name, scope.OnScopeEnter)
	}
}

// MoveFocus advances focus through the tab order. An active scope
// with its own ScopeMoveFocus hook gets first refusal. With wrap
// disabled, a move past either end is a no-op returning false and
// focus stays where it was. Candidates that are invisible, not
// focusable or disabled are skipped, with at most one full cycle of
// attempts before failing soft.
func (m *FocusManager) MoveFocus(reverse, wrap bool) (ok bool) {
	defer m.boundaryBool("MoveFocus", &ok)()

	if m.activeScope != nil && m.activeScope.ScopeMoveFocus != nil {
		if scopeHandled(m.activeScope, reverse) {
			return true
		}
	}
	if len(m.tabOrder) == 0 {
		logger.Debug("MoveFocus: no focusable components")
		return false
	}

	cur := -1
	if m.focused != nil {
		n := m.focused.Node()
		for i, c := range m.tabOrder {
			if c.Node() == n {
				cur = i
				break
			}
		}
	}

	idx := cur
	for attempt := 0; attempt < len(m.tabOrder); attempt++ {
		if idx == -1 {
			// nothing focused: jump to an end
			if reverse {
				idx = len(m.tabOrder) - 1
			} else {
				idx = 0
			}
		} else if reverse {
			idx--
			if idx < 0 {
				if !wrap {
					return false
				}
				idx = len(m.tabOrder) - 1
			}
		} else {
			idx++
			if idx >= len(m.tabOrder) {
				if !wrap {
					return false
				}
				idx = 0
			}
		}

		cand := m.tabOrder[idx]
		n := cand.Node()
		if n.visible && n.focusable && n.enabled {
			return m.RequestFocus(cand, false, ReasonTabNavigation)
		}
	}

	logger.Debug("MoveFocus: no valid candidate after full cycle")
	return false
}

// scopeHandled runs a scope's custom navigation hook behind a
// recover boundary.
func scopeHandled(scope *Panel, reverse bool) (handled bool) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("scope navigation panicked", "scope", scope.name, "panic", r)
			handled = false
		}
	}()
	return scope.ScopeMoveFocus(reverse)
}

// PushScope makes the component a focus scope and the active one,
// e.g. when a dialog opens over a screen.
func (m *FocusManager) PushScope(c Component) {
	if c == nil {
		return
	}
	n := c.Node()
	n.focusScope = true
	m.scopeStack = append(m.scopeStack, n)
	if m.activeScope != n {
		if m.activeScope != nil {
			safeCall("scope leave", m.activeScope.name, m.activeScope.OnScopeLeave)
		}
		m.activeScope = n
		safeCall("scope enter", n.name, n.OnScopeEnter)
	}
}

// PopScope removes the top scope and restores the previous one (or
// none) as active.
func (m *FocusManager) PopScope() {
	if len(m.scopeStack) == 0 {
		return
	}
	top := m.scopeStack[len(m.scopeStack)-1]
	m.scopeStack = m.scopeStack[:len(m.scopeStack)-1]
	safeCall("scope leave", top.name, top.OnScopeLeave)

	var next *Panel
	if len(m.scopeStack) > 0 {
		next = m.scopeStack[len(m.scopeStack)-1]
	}
	m.activeScope = next
	if next != nil {
		safeCall("scope enter", next.name, next.OnScopeEnter)
	}
}

func (m *FocusManager) record(c Component, reason string) {
	m.history = append(m.history, FocusRecord{
		Name:   componentName(c),
		Time:   time.Now(),
		Reason: reason,
	})
	if len(m.history) > maxFocusHistory {
		m.history = m.history[len(m.history)-maxFocusHistory:]
	}
}

func componentName(c Component) string {
	if c == nil {
		return "(none)"
	}
	if n := c.Node(); n != nil {
		return n.name
	}
	return "(unnamed)"
}

// safeCall invokes a user callback, recovering and logging any panic
// so the registry's own state transition still completes.
func safeCall(op, name string, fn func()) {
	if fn == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			logger.Error("callback panicked", "callback", op, "component", name, "panic", r)
		}
	}()
	fn()
}

// boundary returns a deferred recover handler for void operations.
func (m *FocusManager) boundary(op string) func() {
	return func() {
		if r := recover(); r != nil {
			logger.Error("focus operation failed", "op", op, "panic", r)
		}
	}
}

// boundaryBool is boundary for operations reporting success; on a
// recovered panic the result is forced to false.
func (m *FocusManager) boundaryBool(op string, ok *bool) func() {
	return func() {
		if r := recover(); r != nil {
			logger.Error("focus operation failed", "op", op, "panic", r)
			*ok = false
		}
	}
}
