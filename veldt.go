// Package veldt provides the public API for the Veldt reactive engine.
//
// This is the recommended import for most applications:
//
//	import "github.com/veldt-dev/veldt"
//
// Usage:
//
//	count := veldt.NewValue(0)
//	doubled := veldt.NewComputed([]veldt.Reactive{count}, func(values []any) (any, error) {
//	    return values[0].(int) * 2, nil
//	})
//	count.Set(3) // doubled.Value() == 6
package veldt

import (
	"github.com/veldt-dev/veldt/pkg/component"
	"github.com/veldt-dev/veldt/pkg/reactive"
	"github.com/veldt-dev/veldt/pkg/vdom"
)

// =============================================================================
// Reactive core (re-export from pkg/reactive)
// =============================================================================

// Changeable is the base reactive cell.
type Changeable = reactive.Changeable

// Value is a Changeable with an explicit starting value.
type Value = reactive.Value

// Reference tracks container[key] across reactive inputs.
type Reference = reactive.Reference

// Computed derives a value from a fixed dependency list.
type Computed = reactive.Computed

// Dictionary is the observable keyed container.
type Dictionary = reactive.Dictionary

// Reactive is anything holding an observable current value.
type Reactive = reactive.Reactive

// Subscription removes a registered listener.
type Subscription = reactive.Subscription

// NewChangeable creates an empty cell.
var NewChangeable = reactive.NewChangeable

// NewValue creates a cell holding an initial value.
var NewValue = reactive.NewValue

// NewReference creates a reference on (container, key).
var NewReference = reactive.NewReference

// NewComputed creates a synchronous derived cell.
var NewComputed = reactive.NewComputed

// NewAsyncComputed creates a derived cell evaluated on a goroutine.
var NewAsyncComputed = reactive.NewAsyncComputed

// NewDictionary creates an observable keyed container.
var NewDictionary = reactive.NewDictionary

// ValueOf unwraps a Reactive and passes plain values through.
var ValueOf = reactive.ValueOf

// =============================================================================
// Rendering shell (re-export from pkg/component and pkg/vdom)
// =============================================================================

// Component is the behavior an El drives.
type Component = component.Component

// El is the component lifecycle controller.
type El = component.El

// VNode is a virtual node.
type VNode = vdom.VNode

// NewEl constructs a component controller.
var NewEl = component.New

// TreeMerger returns the in-place merge strategy; pass it through
// component.WithMerger to enable merging re-renders.
var TreeMerger = component.TreeMerger
