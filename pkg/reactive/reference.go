package reactive

import "fmt"

// Reference is a Changeable whose value tracks container[key]. Both the
// container and the key may be Reactive (resolving to a container or a
// key) or plain values. The Reference re-resolves whenever either input
// changes and, if the resolved container is a Dictionary, whenever the
// currently resolved key is written on that Dictionary.
//
// If either resolved input is falsy (see Truthy) the value is forced to
// nil rather than attempting a lookup. That guard is a deliberate
// simplification: falsy-but-valid keys such as 0 or "" are unsupported.
type Reference struct {
	Changeable

	object any
	key    any

	// tracked is the Dictionary the Reference is currently subscribed
	// to, if the resolved container is one. The subscription must be
	// released before tracking a different container, otherwise a stale
	// subscription keeps firing for the old Dictionary.
	tracked    *Dictionary
	trackedSub *Subscription
}

// NewReference creates a Reference on (object, key), subscribes to each
// input that is Reactive, and resolves immediately.
func NewReference(object, key any) *Reference {
	r := &Reference{object: object, key: key}
	if ro, ok := object.(Reactive); ok {
		ro.OnChange(func(any) { r.update() })
	}
	if rk, ok := key.(Reactive); ok {
		rk.OnChange(func(any) { r.update() })
	}
	r.update()
	return r
}

// update re-resolves the reference: value first, subscription rewiring
// second, so listeners observing the Set see consistent bookkeeping on
// re-entry.
func (r *Reference) update() {
	obj := ValueOf(r.object)
	key := ValueOf(r.key)

	if Truthy(obj) && Truthy(key) {
		r.Set(lookup(obj, keyString(key)))
	} else {
		r.Set(nil)
	}

	dict, _ := obj.(*Dictionary)
	if dict != r.tracked {
		if r.trackedSub != nil {
			r.trackedSub.Remove()
			r.trackedSub = nil
		}
		if dict != nil {
			r.trackedSub = dict.OnPropertyChange(func(changed string, _ any) {
				// The key is re-resolved at fire time, not capture time,
				// so a reactive key stays correct after it changes.
				if changed == keyString(ValueOf(r.key)) {
					r.update()
				}
			})
		}
		r.tracked = dict
	}
}

// lookup reads key out of a resolved container. Dictionaries and plain
// string-keyed maps are supported; anything else resolves to nil.
func lookup(container any, key string) any {
	switch c := container.(type) {
	case *Dictionary:
		return c.Get(key)
	case map[string]any:
		return c[key]
	default:
		return nil
	}
}

// keyString normalizes a resolved key. Keys are expected to be strings;
// other types are formatted, which keeps lookups total.
func keyString(key any) string {
	if s, ok := key.(string); ok {
		return s
	}
	return fmt.Sprint(key)
}
