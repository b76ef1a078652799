package scene

import "slices"

// EventType names a point-in-time notification. Listeners receive the target
// only; there is no payload.
type EventType uint8

const (
	// EventEnterFrame fires on the System at the start of every tick.
	EventEnterFrame EventType = iota
	// EventExitFrame fires on the System at the end of every tick.
	EventExitFrame
	// EventTransformed fires on a node whose committed measured box changed.
	EventTransformed
	// EventMaxSizeChanged fires on a node whose parent assigned it a new max size.
	EventMaxSizeChanged
	// EventPositionChanged fires on a node whose committed position changed.
	EventPositionChanged
	// EventDataRangeChanged fires for a data consumer after its range validated.
	EventDataRangeChanged
	// EventError fires on a node after it raised a critical error.
	EventError

	numEventTypes
)

func (t EventType) String() string {
	switch t {
	case EventEnterFrame:
		return "enterframe"
	case EventExitFrame:
		return "exitframe"
	case EventTransformed:
		return "transformed"
	case EventMaxSizeChanged:
		return "maxsizechanged"
	case EventPositionChanged:
		return "positionchanged"
	case EventDataRangeChanged:
		return "datarangechanged"
	case EventError:
		return "error"
	default:
		return "unknown"
	}
}

// Unbind removes a listener. Calling it more than once is safe.
type Unbind func()

// Dispatcher delivers notifications about targets of type T.
// The zero value is ready to use. It is not safe for concurrent use; like
// everything that touches the scene graph it belongs to the tick goroutine.
type Dispatcher[T any] struct {
	nextID    uint64
	listeners [numEventTypes][]listener[T]
}

type listener[T any] struct {
	id uint64
	fn func(T)
}

// On registers fn for events of type t.
func (d *Dispatcher[T]) On(t EventType, fn func(T)) Unbind {
	d.nextID++
	id := d.nextID
	d.listeners[t] = append(d.listeners[t], listener[T]{id: id, fn: fn})
	return func() { d.off(t, id) }
}

func (d *Dispatcher[T]) off(t EventType, id uint64) {
	ls := d.listeners[t]
	for i, l := range ls {
		if l.id == id {
			// Copy so an Emit already ranging over the old slice is unaffected.
			d.listeners[t] = slices.Delete(slices.Clone(ls), i, i+1)
			return
		}
	}
}

// Emit calls every listener registered for t with target.
func (d *Dispatcher[T]) Emit(t EventType, target T) {
	for _, l := range d.listeners[t] {
		l.fn(target)
	}
}

// Has reports whether any listener is registered for t.
func (d *Dispatcher[T]) Has(t EventType) bool {
	return len(d.listeners[t]) > 0
}

// Clear drops every listener.
func (d *Dispatcher[T]) Clear() {
	for i := range d.listeners {
		d.listeners[i] = nil
	}
}
