package engine

// ListenerID identifies a subscription so it can be removed later.
// The zero ID is never issued.
type ListenerID uint32

// Event is a multi-cast event without arguments.
type Event struct {
	inner EventWithArg[struct{}]
}

// AddListener adds a callback to be invoked when the event fires.
// A nil callback is ignored and yields the zero ID.
func (e *Event) AddListener(callback func()) ListenerID {
	if callback == nil {
		return 0
	}
	return e.inner.AddListener(func(struct{}) { callback() })
}

func (e *Event) RemoveListener(id ListenerID) bool {
	return e.inner.RemoveListener(id)
}

func (e *Event) RemoveAllListeners() {
	e.inner.RemoveAllListeners()
}

func (e *Event) Invoke() {
	e.inner.Invoke(struct{}{})
}

func (e *Event) ListenerCount() int {
	return e.inner.ListenerCount()
}

type listener[T any] struct {
	id ListenerID
	fn func(T)
}

// EventWithArg is a generic event with one argument.
type EventWithArg[T any] struct {
	listeners []listener[T]
	nextID    ListenerID
}

func (e *EventWithArg[T]) AddListener(callback func(T)) ListenerID {
	if callback == nil {
		return 0
	}
	e.nextID++
	e.listeners = append(e.listeners, listener[T]{id: e.nextID, fn: callback})
	return e.nextID
}

// RemoveListener unsubscribes the callback behind id. It reports false if id is unknown.
func (e *EventWithArg[T]) RemoveListener(id ListenerID) bool {
	for i, l := range e.listeners {
		if l.id == id {
			e.listeners = append(e.listeners[:i:i], e.listeners[i+1:]...)
			return true
		}
	}
	return false
}

func (e *EventWithArg[T]) RemoveAllListeners() {
	e.listeners = nil
}

// Invoke calls every listener in subscription order. Listeners added or removed while
// the event is firing take effect from the next Invoke.
func (e *EventWithArg[T]) Invoke(arg T) {
	for _, l := range e.listeners {
		l.fn(arg)
	}
}

func (e *EventWithArg[T]) ListenerCount() int {
	return len(e.listeners)
}
