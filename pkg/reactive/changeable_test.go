package reactive

import (
	"testing"
)

func TestChangeableSetNotifiesInOrder(t *testing.T) {
	c := NewChangeable()

	var order []int
	c.OnChange(func(any) { order = append(order, 1) })
	c.OnChange(func(any) { order = append(order, 2) })
	c.OnChange(func(any) { order = append(order, 3) })

	c.Set("x")

	if len(order) != 3 {
		t.Fatalf("expected 3 notifications, got %d", len(order))
	}
	for i, got := range order {
		if got != i+1 {
			t.Errorf("notification %d fired out of order: got listener %d", i, got)
		}
	}
	if c.Value() != "x" {
		t.Errorf("expected value %q, got %v", "x", c.Value())
	}
}

func TestChangeableSetSameValueStillNotifies(t *testing.T) {
	c := NewChangeable()

	calls := 0
	c.OnChange(func(any) { calls++ })

	c.Set(5)
	c.Set(5)

	if calls != 2 {
		t.Errorf("expected 2 notifications for repeated value, got %d", calls)
	}
}

func TestChangeableListenerReceivesSetArgument(t *testing.T) {
	c := NewChangeable()

	var got []any
	c.OnChange(func(v any) { got = append(got, v) })

	c.Set(1)
	c.Set("two")
	c.Set(nil)

	want := []any{1, "two", nil}
	if len(got) != len(want) {
		t.Fatalf("expected %d notifications, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("notification %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestChangeableLateListenerMissesEarlierSets(t *testing.T) {
	c := NewChangeable()
	c.Set(1)

	calls := 0
	c.OnChange(func(any) { calls++ })
	if calls != 0 {
		t.Fatalf("listener fired on registration")
	}

	c.Set(2)
	if calls != 1 {
		t.Errorf("expected exactly 1 notification, got %d", calls)
	}
}

func TestChangeableSubscriptionRemove(t *testing.T) {
	c := NewChangeable()

	var order []string
	c.OnChange(func(any) { order = append(order, "a") })
	sub := c.OnChange(func(any) { order = append(order, "b") })
	c.OnChange(func(any) { order = append(order, "c") })

	sub.Remove()
	sub.Remove() // idempotent

	c.Set(0)

	if len(order) != 2 || order[0] != "a" || order[1] != "c" {
		t.Errorf("expected surviving listeners a,c in order, got %v", order)
	}
}

func TestChangeableReentrantSet(t *testing.T) {
	a := NewChangeable()
	b := NewChangeable()

	// A listener on a drives b; propagation is depth-first and
	// synchronous, so b's listener completes before a.Set returns.
	var seen []any
	b.OnChange(func(v any) { seen = append(seen, v) })
	a.OnChange(func(v any) { b.Set(v.(int) * 10) })

	a.Set(4)

	if len(seen) != 1 || seen[0] != 40 {
		t.Errorf("expected cascaded value 40, got %v", seen)
	}
	if b.Value() != 40 {
		t.Errorf("expected b to hold 40, got %v", b.Value())
	}
}

func TestChangeablePanickingListenerAbortsDelivery(t *testing.T) {
	c := NewChangeable()

	var order []int
	c.OnChange(func(any) { order = append(order, 1) })
	c.OnChange(func(any) { panic("listener failure") })
	c.OnChange(func(any) { order = append(order, 3) })

	func() {
		defer func() {
			if recover() == nil {
				t.Fatalf("expected panic to propagate out of Set")
			}
		}()
		c.Set("x")
	}()

	// The panic aborts the rest of the pass; listener 3 never runs.
	if len(order) != 1 || order[0] != 1 {
		t.Errorf("expected only listener 1 to fire, got %v", order)
	}
	// The value was stored before notification began.
	if c.Value() != "x" {
		t.Errorf("expected value %q despite panic, got %v", "x", c.Value())
	}
}

func TestChangeableRemoveDuringDelivery(t *testing.T) {
	c := NewChangeable()

	var order []string
	var subC *Subscription
	c.OnChange(func(any) {
		order = append(order, "a")
		subC.Remove()
	})
	c.OnChange(func(any) { order = append(order, "b") })
	subC = c.OnChange(func(any) { order = append(order, "c") })

	// Set snapshots the listener list before delivering, so c still
	// fires in this pass even though a removed it mid-flight, and the
	// survivors keep their order.
	c.Set(1)
	if len(order) != 3 || order[0] != "a" || order[1] != "b" || order[2] != "c" {
		t.Errorf("expected a,b,c on the first pass, got %v", order)
	}

	order = nil
	c.Set(2)
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Errorf("expected a,b on the second pass, got %v", order)
	}
}

func TestValueOf(t *testing.T) {
	v := NewValue(7)
	if got := ValueOf(v); got != 7 {
		t.Errorf("expected unwrapped 7, got %v", got)
	}

	// Idempotent on plain values.
	if got := ValueOf(ValueOf("plain")); got != "plain" {
		t.Errorf("expected plain passthrough, got %v", got)
	}
	if got := ValueOf(nil); got != nil {
		t.Errorf("expected nil passthrough, got %v", got)
	}
}

func TestValueInitial(t *testing.T) {
	v := NewValue("hello")
	if v.Value() != "hello" {
		t.Errorf("expected initial value, got %v", v.Value())
	}

	v.Set("bye")
	if v.Value() != "bye" {
		t.Errorf("expected updated value, got %v", v.Value())
	}
}

func TestTruthy(t *testing.T) {
	falsy := []any{nil, false, 0, int64(0), uint(0), 0.0, ""}
	for _, v := range falsy {
		if Truthy(v) {
			t.Errorf("expected %#v to be falsy", v)
		}
	}

	truthy := []any{true, 1, -1, 0.5, "a", map[string]any{}, []int{}, NewDictionary(nil)}
	for _, v := range truthy {
		if !Truthy(v) {
			t.Errorf("expected %#v to be truthy", v)
		}
	}
}
