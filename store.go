package pane

// Value is an observable single value. Screens subscribe to re-render
// when application state changes; all access happens on the UI thread.
type Value[T any] struct {
	v         T
	listeners []func(old, new T)
}

// NewValue creates an observable holding the initial value.
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{v: initial}
}

// Get returns the current value.
func (v *Value[T]) Get() T { return v.v }

// Set replaces the value and notifies listeners. A panicking listener
// is recovered and logged; the rest still run.
func (v *Value[T]) Set(next T) {
	old := v.v
	v.v = next
	for _, fn := range v.listeners {
		if fn != nil {
			deliverValue(fn, old, next)
		}
	}
}

func deliverValue[T any](fn func(old, new T), old, next T) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("value listener panicked", "panic", r)
		}
	}()
	fn(old, next)
}

// Update applies fn to the current value and notifies listeners.
func (v *Value[T]) Update(fn func(T) T) {
	v.Set(fn(v.v))
}

// Subscribe registers a change listener and returns an unsubscribe
// func. Slots are zeroed rather than reordered on unsubscribe.
func (v *Value[T]) Subscribe(fn func(old, new T)) func() {
	v.listeners = append(v.listeners, fn)
	i := len(v.listeners) - 1
	return func() { v.listeners[i] = nil }
}

// ListChangeKind describes a mutation to a ListStore.
type ListChangeKind int

const (
	ListAdd ListChangeKind = iota
	ListUpdate
	ListRemove
	ListReset
)

// ListChange describes one mutation.
type ListChange[T any] struct {
	Kind  ListChangeKind
	Index int
	Item  T // new value for Add/Update
	Old   T // previous value for Update/Remove
}

// ListStore is an observable list, typically feeding a panel that
// rebuilds its children on change.
type ListStore[T any] struct {
	items     []T
	listeners []func(ListChange[T])
}

// NewListStore creates an empty observable list.
func NewListStore[T any]() *ListStore[T] {
	return &ListStore[T]{}
}

// Items returns the backing slice; callers must not mutate it.
func (l *ListStore[T]) Items() []T { return l.items }

// Len returns the item count.
func (l *ListStore[T]) Len() int { return len(l.items) }

// At returns the item at i, or the zero value out of range.
func (l *ListStore[T]) At(i int) T {
	if i < 0 || i >= len(l.items) {
		var zero T
		return zero
	}
	return l.items[i]
}

// Add appends an item.
func (l *ListStore[T]) Add(item T) {
	l.items = append(l.items, item)
	l.notify(ListChange[T]{Kind: ListAdd, Index: len(l.items) - 1, Item: item})
}

// UpdateAt replaces the item at i in place.
func (l *ListStore[T]) UpdateAt(i int, fn func(*T)) {
	if i < 0 || i >= len(l.items) {
		return
	}
	old := l.items[i]
	fn(&l.items[i])
	l.notify(ListChange[T]{Kind: ListUpdate, Index: i, Item: l.items[i], Old: old})
}

// RemoveAt deletes the item at i.
func (l *ListStore[T]) RemoveAt(i int) {
	if i < 0 || i >= len(l.items) {
		return
	}
	old := l.items[i]
	l.items = append(l.items[:i], l.items[i+1:]...)
	l.notify(ListChange[T]{Kind: ListRemove, Index: i, Old: old})
}

// Reset replaces the whole list.
func (l *ListStore[T]) Reset(items []T) {
	l.items = items
	l.notify(ListChange[T]{Kind: ListReset})
}

// Subscribe registers a change listener and returns an unsubscribe
// func.
func (l *ListStore[T]) Subscribe(fn func(ListChange[T])) func() {
	l.listeners = append(l.listeners, fn)
	i := len(l.listeners) - 1
	return func() { l.listeners[i] = nil }
}

func (l *ListStore[T]) notify(c ListChange[T]) {
	for _, fn := range l.listeners {
		if fn != nil {
			deliverChange(fn, c)
		}
	}
}

func deliverChange[T any](fn func(ListChange[T]), c ListChange[T]) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("list listener panicked", "panic", r)
		}
	}()
	fn(c)
}
