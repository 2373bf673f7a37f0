// Package vdom provides the virtual node tree the rendering shell works
// on, plus the optional in-place merge capability.
//
// Render functions build a fresh *VNode tree on every pass. Merge
// mutates the previously mounted tree toward the fresh one and reports
// the operations it applied as a patch list, which doubles as the wire
// format for live updates. Merging is purely a performance path: a
// mount that replaces its node wholesale on every change is always
// correct.
package vdom
