// Package dom is the thin mount shell: an in-memory DOM-like container
// tree plus selector-based mount discovery. The component controller
// only needs the two capabilities defined here; swapping in a different
// render target is a matter of implementing them.
package dom

import (
	"sync"

	"github.com/veldt-dev/veldt/pkg/vdom"
)

// MountTarget is an external container capable of holding rendered
// nodes. A controller inserts its first render and thereafter replaces
// or merges in place.
type MountTarget interface {
	// InsertNode places node as the target's first child.
	InsertNode(node *vdom.VNode)

	// ReplaceNode swaps oldNode for newNode in place. An oldNode the
	// target does not hold is ignored.
	ReplaceNode(newNode, oldNode *vdom.VNode)
}

// Resolver turns a selector string into zero or more mount targets.
type Resolver interface {
	Resolve(selector string) []MountTarget
}

// Element is an in-memory mount target identified by id and tag.
type Element struct {
	ID  string
	Tag string

	mu       sync.Mutex
	children []*vdom.VNode
}

// NewElement creates an element with the given tag and id.
func NewElement(tag, id string) *Element {
	return &Element{ID: id, Tag: tag}
}

// InsertNode implements MountTarget.
func (e *Element) InsertNode(node *vdom.VNode) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.children = append([]*vdom.VNode{node}, e.children...)
}

// ReplaceNode implements MountTarget.
func (e *Element) ReplaceNode(newNode, oldNode *vdom.VNode) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, c := range e.children {
		if c == oldNode {
			e.children[i] = newNode
			return
		}
	}
}

// Children returns the currently held nodes, first child first.
func (e *Element) Children() []*vdom.VNode {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]*vdom.VNode, len(e.children))
	copy(out, e.children)
	return out
}

// FirstChild returns the first held node, or nil.
func (e *Element) FirstChild() *vdom.VNode {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.children) == 0 {
		return nil
	}
	return e.children[0]
}

// Registry resolves selectors against a registered element set. "#id"
// matches by id, anything else matches by tag name; matches are
// returned in registration order.
type Registry struct {
	mu       sync.Mutex
	elements []*Element
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add registers an element.
func (r *Registry) Add(elements ...*Element) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.elements = append(r.elements, elements...)
}

// Resolve implements Resolver.
func (r *Registry) Resolve(selector string) []MountTarget {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []MountTarget
	for _, e := range r.elements {
		if len(selector) > 0 && selector[0] == '#' {
			if e.ID == selector[1:] {
				out = append(out, e)
			}
			continue
		}
		if e.Tag == selector {
			out = append(out, e)
		}
	}
	return out
}
