package reactive

import (
	"math"
	"sync"
)

// Listener receives the value passed to Set.
type Listener func(value any)

// Reactive is anything holding a current value that can be observed.
// Changeable and all of its variants implement it.
type Reactive interface {
	// Value returns the current value. It never blocks and never
	// subscribes the caller to anything.
	Value() any

	// OnChange appends a listener. Listeners fire synchronously on every
	// Set, in registration order. The returned Subscription removes the
	// listener; discarding it keeps the listener for the cell's lifetime.
	OnChange(l Listener) *Subscription
}

// Subscription is a handle for a registered listener. Remove is
// idempotent; calling it twice is not an error.
type Subscription struct {
	once   sync.Once
	remove func()
}

// Remove unregisters the listener this subscription was returned for.
func (s *Subscription) Remove() {
	if s == nil {
		return
	}
	s.once.Do(s.remove)
}

// Changeable is the base reactive cell: a current value plus an ordered
// listener list. The zero value is usable and starts with no value set.
type Changeable struct {
	mu        sync.Mutex
	value     any
	listeners []*listenerEntry
}

type listenerEntry struct {
	fn Listener
}

// NewChangeable creates an empty cell. Its value is nil until the first
// Set.
func NewChangeable() *Changeable {
	return &Changeable{}
}

// Value returns the current value.
func (c *Changeable) Value() any {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// OnChange implements Reactive.
func (c *Changeable) OnChange(l Listener) *Subscription {
	entry := &listenerEntry{fn: l}

	c.mu.Lock()
	c.listeners = append(c.listeners, entry)
	c.mu.Unlock()

	return &Subscription{remove: func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, e := range c.listeners {
			if e == entry {
				// Shift rather than swap so surviving listeners keep
				// their registration order.
				c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
				return
			}
		}
	}}
}

// Set stores the value and notifies every listener registered at the
// moment of the call, synchronously and in registration order. There is
// no equality short-circuit: setting the same value again still notifies.
// A panicking listener aborts delivery to the listeners after it.
func (c *Changeable) Set(value any) {
	c.mu.Lock()
	c.value = value
	entries := make([]*listenerEntry, len(c.listeners))
	copy(entries, c.listeners)
	c.mu.Unlock()

	// Lock released before notification so listeners can re-enter Set
	// (on this cell or others) without deadlock.
	for _, e := range entries {
		e.fn(value)
	}
}

// ValueOf unwraps x if it is Reactive and returns it unchanged otherwise.
// It is the universal "maybe-reactive" accessor: APIs built on it accept
// either a plain value or a cell resolving to one.
func ValueOf(x any) any {
	if r, ok := x.(Reactive); ok {
		return r.Value()
	}
	return x
}

// Truthy reports whether v counts as a usable value for resolution
// purposes: nil, false, numeric zero, NaN and the empty string are falsy,
// everything else (including empty maps and slices) is truthy.
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case int:
		return x != 0
	case int8:
		return x != 0
	case int16:
		return x != 0
	case int32:
		return x != 0
	case int64:
		return x != 0
	case uint:
		return x != 0
	case uint8:
		return x != 0
	case uint16:
		return x != 0
	case uint32:
		return x != 0
	case uint64:
		return x != 0
	case float32:
		return x != 0 && !math.IsNaN(float64(x))
	case float64:
		return x != 0 && !math.IsNaN(x)
	default:
		return true
	}
}
