package pane

import (
	"fmt"
	"os"
	"sync"
)

// App runs a panel tree against a terminal: one goroutine reads keys,
// the run loop owns every tree mutation and render, so components can
// stay lock-free.
type App struct {
	screen *Screen
	root   Component
	focus  *FocusManager
	bus    *Bus
	theme  *Theme

	dialog    *Dialog
	prevFocus Component

	keys     chan Key
	renderCh chan struct{}
	quitCh   chan struct{}
	quitOnce sync.Once
}

// NewApp creates an app for the given root component.
func NewApp(root Component) *App {
	bus := NewBus()
	a := &App{
		screen:   NewScreen(nil),
		root:     root,
		bus:      bus,
		focus:    NewFocusManager(bus),
		theme:    ThemeDark(),
		keys:     make(chan Key, 8),
		renderCh: make(chan struct{}, 1),
		quitCh:   make(chan struct{}),
	}
	a.focus.SetRepaint(a.RequestRender)
	return a
}

// Theme swaps the color theme.
func (a *App) Theme(th *Theme) *App {
	if th != nil {
		a.theme = th
		a.RequestRender()
	}
	return a
}

// Bus returns the app's event bus.
func (a *App) Bus() *Bus { return a.bus }

// Focus returns the app's focus manager.
func (a *App) Focus() *FocusManager { return a.focus }

// RequestRender schedules a render pass. Coalescing: multiple requests
// before the loop wakes produce one pass.
func (a *App) RequestRender() {
	select {
	case a.renderCh <- struct{}{}:
	default:
	}
}

// Quit stops the run loop. Safe to call from any goroutine and from
// component callbacks.
func (a *App) Quit() {
	a.quitOnce.Do(func() { close(a.quitCh) })
}

// ShowDialog opens a modal over the screen. Focus moves to the first
// button and Tab cycles inside the dialog until it closes.
func (a *App) ShowDialog(d *Dialog) {
	if d == nil || a.dialog != nil {
		return
	}
	a.dialog = d
	a.prevFocus = a.focus.Focused()
	d.closer = func() { a.CloseDialog() }
	d.requestFocus = func(c Component) bool {
		return a.focus.RequestFocus(c, false, ReasonRequest)
	}
	a.focus.PushScope(d)
	if len(d.buttons) > 0 {
		a.focus.RequestFocus(d.buttons[0], false, ReasonRequest)
	}
	a.RequestRender()
}

// CloseDialog dismisses the open dialog, restoring the prior scope and
// focus. No-op when nothing is open.
func (a *App) CloseDialog() {
	if a.dialog == nil {
		return
	}
	a.dialog.closer = nil
	a.dialog.requestFocus = nil
	a.dialog = nil
	a.focus.PopScope()
	if a.prevFocus != nil {
		a.focus.RequestFocus(a.prevFocus, false, ReasonRequest)
		a.prevFocus = nil
	}
	a.RequestRender()
}

// Run takes over the terminal until Quit or Ctrl-C.
func (a *App) Run() error {
	if err := a.screen.Enter(); err != nil {
		return err
	}
	defer a.screen.Leave()

	go a.readKeys()

	a.layoutRoot(a.screen.Size())
	a.focus.RegisterScreen(a.root)
	a.render()

	for {
		select {
		case <-a.quitCh:
			return nil
		case k := <-a.keys:
			a.handleKey(k)
		case size := <-a.screen.ResizeChan():
			a.screen.Resize(size)
			a.layoutRoot(size)
			a.render()
		case <-a.renderCh:
			a.render()
		}
	}
}

func (a *App) readKeys() {
	kr := NewKeyReader(os.Stdin)
	for {
		k, err := kr.ReadKey()
		if err != nil {
			a.Quit()
			return
		}
		select {
		case a.keys <- k:
		case <-a.quitCh:
			return
		}
	}
}

func (a *App) layoutRoot(size Size) {
	n := a.root.Node()
	n.setPlacement(Rect{Width: size.Width, Height: size.Height})
	n.Invalidate()
}

func (a *App) handleKey(k Key) {
	switch {
	case k.Kind == KeyCtrl && (k.Rune == 'c' || k.Rune == 'q'):
		a.Quit()
		return
	case k.Kind == KeyTab:
		a.focus.MoveFocus(false, true)
		return
	case k.Kind == KeyShiftTab:
		a.focus.MoveFocus(true, true)
		return
	}

	if a.dialog != nil {
		if a.dialog.HandleInput(k) {
			a.RequestRender()
			return
		}
	}
	if f := a.focus.Focused(); f != nil {
		if dispatch(f, k) {
			a.RequestRender()
			return
		}
	}
	if a.dialog == nil && dispatch(a.root, k) {
		a.RequestRender()
	}
}

// dispatch delivers a key behind a recover boundary so a misbehaving
// component cannot end the session.
func dispatch(c Component, k Key) (handled bool) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("input handler panicked",
				"component", componentName(c), "panic", r)
			handled = false
		}
	}()
	return c.HandleInput(k)
}

func (a *App) render() {
	back := a.screen.Back()
	back.Clear()
	RenderTree(a.root, back, a.theme)
	if a.dialog != nil {
		a.placeDialog()
		RenderTree(a.dialog, back, a.theme)
	}
	a.screen.Flush()
}

// placeDialog centers the dialog over the screen at its measured size,
// clamped to the terminal.
func (a *App) placeDialog() {
	size := a.screen.Size()
	w, h := a.dialog.measure()
	if w > size.Width {
		w = size.Width
	}
	if h > size.Height {
		h = size.Height
	}
	r := Rect{
		X:      (size.Width - w) / 2,
		Y:      (size.Height - h) / 2,
		Width:  w,
		Height: h,
	}
	a.dialog.Node().setPlacement(r)
}

// RunApp is a convenience wrapper building and running an app.
func RunApp(root Component) {
	if err := NewApp(root).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "pane:", err)
	}
}
