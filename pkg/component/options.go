package component

import (
	"log/slog"
	"time"

	"github.com/veldt-dev/veldt/pkg/vdom"
)

// Merger is the optional in-place merge strategy. When present, a
// re-render merges the fresh tree onto the mounted one and the returned
// patches describe what changed; when absent, the controller replaces
// the mounted node wholesale, which is always correct.
type Merger interface {
	Merge(prev, next *vdom.VNode) []vdom.Patch
}

// MergerFunc adapts a function to the Merger interface.
type MergerFunc func(prev, next *vdom.VNode) []vdom.Patch

// Merge implements Merger.
func (f MergerFunc) Merge(prev, next *vdom.VNode) []vdom.Patch {
	return f(prev, next)
}

// TreeMerger returns the package vdom merge algorithm as a strategy.
func TreeMerger() Merger {
	return MergerFunc(vdom.Merge)
}

// Observer is notified after every render pass. Middleware packages
// provide Prometheus and OpenTelemetry implementations.
type Observer interface {
	ObserveRender(component string, d time.Duration, err error)
}

// PatchSink receives the patches applied by each merging re-render.
// Replacement renders and initial mounts do not produce patches.
type PatchSink func(patches []vdom.Patch)

// Option configures an El.
type Option func(*El)

// WithMerger injects the in-place merge strategy.
func WithMerger(m Merger) Option {
	return func(e *El) { e.merger = m }
}

// WithLogger sets the controller's logger. Defaults to slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(e *El) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithName sets the component name used in logs, metrics and traces.
// Defaults to the component's Go type name.
func WithName(name string) Option {
	return func(e *El) { e.name = name }
}

// WithObserver registers a render observer. Repeatable.
func WithObserver(o Observer) Option {
	return func(e *El) {
		if o != nil {
			e.observers = append(e.observers, o)
		}
	}
}

// WithPatchSink registers the receiver for merge patch streams.
func WithPatchSink(sink PatchSink) Option {
	return func(e *El) { e.patchSink = sink }
}
