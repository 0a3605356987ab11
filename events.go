package pane

// Event names published by the focus manager. Delivery is
// best-effort: no subscriber is required.
const (
	EventFocus = "component.focus"
	EventBlur  = "component.blur"
)

// FocusEvent is the payload for focus/blur notifications.
type FocusEvent struct {
	Name      string
	Component Component
	Reason    string
}

// Bus is a synchronous publish/subscribe event bus. Handlers run
// inline on the single UI thread; a panicking handler is recovered
// and logged so one bad subscriber cannot abort input processing.
type Bus struct {
	subs map[string][]func(payload any)
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[string][]func(any))}
}

// Subscribe registers a handler for an event name and returns an
// unsubscribe func. Unsubscribing zeroes the slot rather than
// reordering, so it is safe during delivery.
func (b *Bus) Subscribe(event string, fn func(payload any)) func() {
	b.subs[event] = append(b.subs[event], fn)
	i := len(b.subs[event]) - 1
	return func() {
		b.subs[event][i] = nil
	}
}

// Publish delivers the payload to every subscriber of the event, in
// subscription order.
func (b *Bus) Publish(event string, payload any) {
	for _, fn := range b.subs[event] {
		if fn == nil {
			continue
		}
		b.deliver(event, fn, payload)
	}
}

func (b *Bus) deliver(event string, fn func(any), payload any) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("event handler panicked", "event", event, "panic", r)
		}
	}()
	fn(payload)
}
