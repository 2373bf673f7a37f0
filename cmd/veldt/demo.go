package main

import (
	"fmt"

	"github.com/veldt-dev/veldt/pkg/component"
	"github.com/veldt-dev/veldt/pkg/reactive"
	"github.com/veldt-dev/veldt/pkg/vdom"
)

// demoComponent is the built-in counter the CLI serves and exports. It
// references the "count" and "label" keys of the session state, so a
// live client can drive either through event frames.
type demoComponent struct {
	component.Base

	count *reactive.Reference
	label *reactive.Reference
	total *reactive.Computed
}

func newDemo(state *reactive.Dictionary) (component.Component, component.Options) {
	count := reactive.NewReference(state, "count")
	label := reactive.NewReference(state, "label")
	total := reactive.NewComputed([]reactive.Reactive{count}, func(values []any) (any, error) {
		n, ok := values[0].(float64)
		if !ok {
			if i, isInt := values[0].(int); isInt {
				n = float64(i)
			}
		}
		return n * 10, nil
	})

	return &demoComponent{count: count, label: label, total: total}, nil
}

func (d *demoComponent) Init(component.Options) []reactive.Reactive {
	return []reactive.Reactive{d.count, d.label, d.total}
}

func (d *demoComponent) Render(values ...any) *vdom.VNode {
	return vdom.El("section",
		vdom.El("h1", vdom.Text(fmt.Sprint(values[1]))),
		vdom.El("p", vdom.Text(fmt.Sprintf("count: %v", values[0]))).WithProps(vdom.Props{"class": "count"}),
		vdom.El("p", vdom.Text(fmt.Sprintf("total: %v", values[2]))).WithProps(vdom.Props{"class": "total"}),
	)
}

func demoState() map[string]any {
	return map[string]any{
		"count": 0,
		"label": "veldt demo",
	}
}
