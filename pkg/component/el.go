package component

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/veldt-dev/veldt/pkg/dom"
	"github.com/veldt-dev/veldt/pkg/reactive"
	"github.com/veldt-dev/veldt/pkg/vdom"
)

var (
	// ErrNilDependency is returned when Init produces a nil slot in its
	// dependency list.
	ErrNilDependency = errors.New("component: Init returned a nil dependency")

	// ErrNilNode is returned when Render produces no node.
	ErrNilNode = errors.New("component: Render returned a nil node")

	// ErrDestroyed is returned for operations on a destroyed controller.
	ErrDestroyed = errors.New("component: controller is destroyed")
)

// mount pairs a resolved target with the node currently placed on it.
type mount struct {
	target dom.MountTarget
	node   *vdom.VNode
}

// El drives one component instance: it resolves mount targets once,
// obtains the dependency list once, renders immediately, and re-renders
// every mount from the current values of all dependencies whenever any
// dependency changes. There is no partial evaluation; the render always
// sees every current value.
//
// Render passes are serialized. A Render implementation must not write
// its own dependencies: the change notification re-enters the render
// path on the same goroutine, and the controller's mutex is not
// re-entrant, so that pass deadlocks permanently.
type El struct {
	name   string
	comp   Component
	logger *slog.Logger

	mounts []*mount
	deps   []reactive.Reactive
	subs   []*reactive.Subscription

	merger    Merger
	observers []Observer
	patchSink PatchSink

	mu        sync.Mutex
	destroyed bool
}

// New constructs a controller for comp mounted at every target selector
// resolves to. Init is called exactly once with opts; a malformed
// dependency list or a failing initial render aborts construction.
func New(comp Component, resolver dom.Resolver, selector string, opts Options, elOpts ...Option) (*El, error) {
	e := &El{
		comp:   comp,
		name:   fmt.Sprintf("%T", comp),
		logger: slog.Default(),
	}
	for _, opt := range elOpts {
		opt(e)
	}

	for _, target := range resolver.Resolve(selector) {
		e.mounts = append(e.mounts, &mount{target: target})
	}

	deps := comp.Init(opts)
	for i, dep := range deps {
		if dep == nil {
			return nil, fmt.Errorf("%w (slot %d)", ErrNilDependency, i)
		}
	}
	e.deps = deps

	for _, dep := range deps {
		// The changed value is ignored: a re-render always recomputes
		// from all current dependency values.
		sub := dep.OnChange(func(any) {
			if err := e.rerender(); err != nil {
				e.logger.Error("re-render failed", "component", e.name, "error", err)
			}
		})
		e.subs = append(e.subs, sub)
	}

	if err := e.rerender(); err != nil {
		e.teardown()
		return nil, err
	}
	return e, nil
}

// Name returns the component name used in logs and observations.
func (e *El) Name() string {
	return e.name
}

// Node returns the node currently placed on the first mount, or nil if
// the controller has no mounts.
func (e *El) Node() *vdom.VNode {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.mounts) == 0 {
		return nil
	}
	return e.mounts[0].node
}

// RenderNow forces a render pass outside the dependency graph, for
// callers that need the current tree synchronously.
func (e *El) RenderNow() error {
	return e.rerender()
}

// render gathers the current value of every dependency, in order, and
// produces a fresh node.
func (e *El) render() (*vdom.VNode, error) {
	values := make([]any, len(e.deps))
	for i, dep := range e.deps {
		values[i] = dep.Value()
	}

	node := e.comp.Render(values...)
	if node == nil {
		return nil, ErrNilNode
	}
	return node, nil
}

// rerender runs one full render pass over every mount.
func (e *El) rerender() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.destroyed {
		return ErrDestroyed
	}

	start := time.Now()
	err := e.renderLocked()
	for _, o := range e.observers {
		o.ObserveRender(e.name, time.Since(start), err)
	}
	return err
}

func (e *El) renderLocked() error {
	for _, m := range e.mounts {
		next, err := e.render()
		if err != nil {
			return err
		}

		switch {
		case m.node == nil:
			m.target.InsertNode(next)
			m.node = next
		case e.merger != nil:
			// The mounted node is mutated toward the fresh tree; the
			// fresh tree itself is discarded.
			patches := e.merger.Merge(m.node, next)
			if e.patchSink != nil && len(patches) > 0 {
				e.patchSink(patches)
			}
		default:
			m.target.ReplaceNode(next, m.node)
			m.node = next
		}
	}
	return nil
}

// Destroy removes the controller's dependency listeners and calls the
// component's Destroy. Rendered nodes are left on their mounts; clearing
// them is the caller's concern. Destroy is idempotent.
func (e *El) Destroy() {
	e.mu.Lock()
	if e.destroyed {
		e.mu.Unlock()
		return
	}
	e.destroyed = true
	e.mu.Unlock()

	e.teardown()
	e.comp.Destroy()
}

func (e *El) teardown() {
	for _, sub := range e.subs {
		sub.Remove()
	}
	e.subs = nil
}
