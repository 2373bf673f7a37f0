package reactive

import "sync"

// PropertyListener receives the key and new value of a Dictionary write.
type PropertyListener func(key string, value any)

// Dictionary is a mutable keyed container with an open schema: writes to
// any key, including keys absent at construction, notify every registered
// property listener synchronously with (key, value). Reads are
// unintercepted.
//
// Go has no ambient property interception, so the container is an
// explicit map behind Get/Set accessors; the notification contract is
// the same as if every field write were trapped.
type Dictionary struct {
	mu       sync.RWMutex
	fields   map[string]any
	watchers []*watcherEntry
}

type watcherEntry struct {
	fn PropertyListener
}

// NewDictionary creates a Dictionary seeded with a shallow copy of
// initial. A nil map yields an empty Dictionary.
func NewDictionary(initial map[string]any) *Dictionary {
	fields := make(map[string]any, len(initial))
	for k, v := range initial {
		fields[k] = v
	}
	return &Dictionary{fields: fields}
}

// Get returns the value stored under key, or nil if absent.
func (d *Dictionary) Get(key string) any {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.fields[key]
}

// Has reports whether key is present.
func (d *Dictionary) Has(key string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.fields[key]
	return ok
}

// Len returns the number of stored keys.
func (d *Dictionary) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.fields)
}

// Keys returns the stored keys in unspecified order.
func (d *Dictionary) Keys() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	keys := make([]string, 0, len(d.fields))
	for k := range d.fields {
		keys = append(keys, k)
	}
	return keys
}

// Set stores value under key and notifies every property listener
// registered at the moment of the call, in registration order, with
// (key, value). Writing a key that was never declared notifies all the
// same; writing an unchanged value notifies too.
func (d *Dictionary) Set(key string, value any) {
	d.mu.Lock()
	d.fields[key] = value
	watchers := make([]*watcherEntry, len(d.watchers))
	copy(watchers, d.watchers)
	d.mu.Unlock()

	for _, w := range watchers {
		w.fn(key, value)
	}
}

// OnPropertyChange registers a listener for every subsequent write. The
// returned Subscription removes exactly that listener; Remove is
// idempotent.
func (d *Dictionary) OnPropertyChange(l PropertyListener) *Subscription {
	entry := &watcherEntry{fn: l}

	d.mu.Lock()
	d.watchers = append(d.watchers, entry)
	d.mu.Unlock()

	return &Subscription{remove: func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		for i, w := range d.watchers {
			if w == entry {
				d.watchers = append(d.watchers[:i], d.watchers[i+1:]...)
				return
			}
		}
	}}
}
