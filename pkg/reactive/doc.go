// Package reactive implements the core dependency/observer graph.
//
// A Changeable is a reactive cell holding a value and an ordered list of
// change listeners. Set stores a new value and notifies every listener
// synchronously, in registration order, before returning. Everything else
// in the package is built from that single primitive:
//
//   - Value is a Changeable with an explicit starting value.
//   - Dictionary is an observable keyed container whose writes emit
//     (key, value) notifications, including writes to keys that were not
//     present at construction.
//   - Reference tracks container[key], where the container and the key may
//     each be reactive or plain, rewiring its Dictionary subscription when
//     the resolved container changes identity.
//   - Computed derives a value from a fixed dependency list and recomputes
//     on every dependency change, optionally on a goroutine.
//
// Propagation is push-based and synchronous: a Set call is the sole
// trigger, and a listener that itself calls Set causes depth-first
// re-entrant propagation. There is no cycle detection; a listener chain
// that feeds back into its own source recurses until the stack runs out.
package reactive
