package veldt

import (
	"fmt"
	"testing"

	"github.com/veldt-dev/veldt/pkg/component"
	"github.com/veldt-dev/veldt/pkg/dom"
	"github.com/veldt-dev/veldt/pkg/vdom"
)

// badge renders a div tagged with its dependency's value.
type badge struct {
	component.Base
	n *Value
}

func (b *badge) Init(component.Options) []Reactive {
	return []Reactive{b.n}
}

func (b *badge) Render(values ...any) *VNode {
	return vdom.El("div", vdom.Text(fmt.Sprint(values[0])))
}

func TestPublicSurfaceEndToEnd(t *testing.T) {
	// Dictionary -> Reference -> Computed cascade through the
	// re-exported constructors.
	state := NewDictionary(map[string]any{"n": 2})
	ref := NewReference(state, "n")
	sum := NewComputed([]Reactive{ref}, func(values []any) (any, error) {
		return values[0].(int) + 1, nil
	})

	if sum.Value() != 3 {
		t.Fatalf("expected 3, got %v", sum.Value())
	}

	state.Set("n", 9)
	if sum.Value() != 10 {
		t.Fatalf("expected 10 after dictionary write, got %v", sum.Value())
	}

	// El drives a mount from the graph.
	reg := dom.NewRegistry()
	target := dom.NewElement("div", "app")
	reg.Add(target)

	n := NewValue(1)
	el, err := NewEl(&badge{n: n}, reg, "#app", nil, component.WithMerger(TreeMerger()))
	if err != nil {
		t.Fatalf("controller construction failed: %v", err)
	}
	defer el.Destroy()

	if target.FirstChild().Children[0].Text != "1" {
		t.Errorf("initial mount not tagged 1")
	}
	n.Set(2)
	if target.FirstChild().Children[0].Text != "2" {
		t.Errorf("re-render did not reach the mount")
	}

	if got := ValueOf("plain"); got != "plain" {
		t.Errorf("ValueOf passthrough broken: %v", got)
	}
}
