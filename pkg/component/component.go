// Package component implements the component lifecycle controller. An
// El owns a set of mount targets and a fixed dependency list produced by
// its Component's Init; it renders once at construction and re-renders
// from the current values of all dependencies whenever any one of them
// changes.
package component

import (
	"log/slog"

	"github.com/veldt-dev/veldt/pkg/reactive"
	"github.com/veldt-dev/veldt/pkg/vdom"
)

// Options carries construction parameters through to Init.
type Options map[string]any

// Component is the behavior an El drives. Implementations return their
// dependency list from Init once; Render is called with the current
// dependency values, positionally in Init's order, on every (re)render.
// Destroy releases whatever external resources the component holds; the
// controller never calls it implicitly.
type Component interface {
	Init(opts Options) []reactive.Reactive
	Render(values ...any) *vdom.VNode
	Destroy()
}

// Base is an embeddable default Component. A component that embeds Base
// and overrides nothing renders nothing: Init logs a missing-override
// warning and returns no dependencies, Destroy is a no-op.
type Base struct{}

// Init returns no dependencies and warns that it was not overridden.
func (Base) Init(Options) []reactive.Reactive {
	slog.Warn("component does not override Init, using empty dependency list")
	return nil
}

// Destroy is a no-op.
func (Base) Destroy() {}
