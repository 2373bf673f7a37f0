package reactive

import "testing"

func TestReferenceRoundTrip(t *testing.T) {
	d := NewDictionary(map[string]any{"a": 1})
	r := NewReference(d, "a")

	if r.Value() != 1 {
		t.Fatalf("expected initial resolution 1, got %v", r.Value())
	}

	d.Set("a", 2)
	if r.Value() != 2 {
		t.Errorf("expected re-resolution to 2 after write, got %v", r.Value())
	}
}

func TestReferenceOtherKeyDoesNotTrigger(t *testing.T) {
	d := NewDictionary(map[string]any{"a": 1, "b": 2})
	r := NewReference(d, "a")

	calls := 0
	r.OnChange(func(any) { calls++ })

	d.Set("b", 3)
	if calls != 0 {
		t.Errorf("write to unrelated key triggered the reference %d times", calls)
	}

	d.Set("a", 4)
	if calls != 1 || r.Value() != 4 {
		t.Errorf("expected one trigger and value 4, got %d triggers, value %v", calls, r.Value())
	}
}

func TestReferenceContainerSwap(t *testing.T) {
	d1 := NewDictionary(map[string]any{"k": "old"})
	d2 := NewDictionary(map[string]any{"k": "x"})
	container := NewValue(d1)

	r := NewReference(container, "k")
	if r.Value() != "old" {
		t.Fatalf("expected old, got %v", r.Value())
	}

	container.Set(d2)
	if r.Value() != "x" {
		t.Fatalf("expected x after container swap, got %v", r.Value())
	}

	// The old dictionary's subscription must have been released.
	calls := 0
	r.OnChange(func(any) { calls++ })
	d1.Set("k", "stale")
	if calls != 0 {
		t.Errorf("mutation of the abandoned dictionary triggered the reference")
	}
	if r.Value() != "x" {
		t.Errorf("value drifted after stale mutation: %v", r.Value())
	}

	d2.Set("k", "y")
	if r.Value() != "y" {
		t.Errorf("expected y after current dictionary write, got %v", r.Value())
	}
}

func TestReferenceReactiveKey(t *testing.T) {
	d := NewDictionary(map[string]any{"a": 1, "b": 2})
	key := NewValue("a")

	r := NewReference(d, key)
	if r.Value() != 1 {
		t.Fatalf("expected 1, got %v", r.Value())
	}

	key.Set("b")
	if r.Value() != 2 {
		t.Fatalf("expected 2 after key change, got %v", r.Value())
	}

	// The dictionary subscription re-checks the key at fire time: a
	// write to the currently resolved key must trigger even though the
	// subscription predates the key change.
	d.Set("b", 20)
	if r.Value() != 20 {
		t.Errorf("expected 20 after write to current key, got %v", r.Value())
	}

	d.Set("a", 10)
	if r.Value() != 20 {
		t.Errorf("write to the former key moved the value: %v", r.Value())
	}
}

func TestReferenceFalsyGuard(t *testing.T) {
	if r := NewReference(NewValue(nil), "a"); r.Value() != nil {
		t.Errorf("nil container should resolve to nil, got %v", r.Value())
	}

	// Falsy key short-circuits even though a lookup would be possible.
	r := NewReference(NewValue(map[string]any{"a": 1}), NewValue(""))
	if r.Value() != nil {
		t.Errorf("falsy key should force nil, got %v", r.Value())
	}

	if r := NewReference(false, "a"); r.Value() != nil {
		t.Errorf("false container should resolve to nil, got %v", r.Value())
	}
}

func TestReferencePlainMapContainer(t *testing.T) {
	m := map[string]any{"name": "veldt"}
	r := NewReference(m, "name")
	if r.Value() != "veldt" {
		t.Errorf("expected lookup on a plain map, got %v", r.Value())
	}
}

func TestReferenceContainerBecomesFalsy(t *testing.T) {
	d := NewDictionary(map[string]any{"k": 1})
	container := NewValue(d)
	r := NewReference(container, "k")

	container.Set(nil)
	if r.Value() != nil {
		t.Errorf("expected nil after container cleared, got %v", r.Value())
	}

	// Old dictionary is no longer tracked.
	calls := 0
	r.OnChange(func(any) { calls++ })
	d.Set("k", 2)
	if calls != 0 {
		t.Errorf("cleared reference still tracked the old dictionary")
	}
}
