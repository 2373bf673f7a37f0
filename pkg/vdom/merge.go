package vdom

import "fmt"

// Merge mutates prev in place toward next's shape and returns the
// operations that were applied. prev remains the mounted tree; next can
// be discarded afterwards. Patches come out in application order, so
// replaying them against a mirror of prev's old state reproduces the
// new state.
func Merge(prev, next *VNode) []Patch {
	var patches []Patch
	merge(prev, next, nil, &patches)
	return patches
}

// Diff returns the patches that would transform prev into next without
// mutating either tree.
func Diff(prev, next *VNode) []Patch {
	return Merge(prev.Clone(), next)
}

func merge(prev, next *VNode, path []int, patches *[]Patch) {
	if prev == nil || next == nil {
		return
	}

	// Different kind or element tag: merge cannot help, replace wholesale.
	if prev.Kind != next.Kind || (prev.Kind == KindElement && prev.Tag != next.Tag) {
		replacement := next.Clone()
		*prev = *replacement
		*patches = append(*patches, Patch{Op: PatchReplaceNode, Path: pathCopy(path), Node: replacement})
		return
	}

	switch prev.Kind {
	case KindText:
		if prev.Text != next.Text {
			prev.Text = next.Text
			*patches = append(*patches, Patch{Op: PatchSetText, Path: pathCopy(path), Value: next.Text})
		}
	case KindElement:
		prev.Key = next.Key
		mergeProps(prev, next, path, patches)
		mergeChildren(prev, next, path, patches)
	case KindFragment:
		mergeChildren(prev, next, path, patches)
	}
}

func mergeProps(prev, next *VNode, path []int, patches *[]Patch) {
	for key := range prev.Props {
		if _, exists := next.Props[key]; !exists {
			delete(prev.Props, key)
			*patches = append(*patches, Patch{Op: PatchRemoveAttr, Path: pathCopy(path), Key: key})
		}
	}
	for key, nextVal := range next.Props {
		prevVal, exists := prev.Props[key]
		if exists && prevVal == nextVal {
			continue
		}
		if prev.Props == nil {
			prev.Props = make(Props)
		}
		prev.Props[key] = nextVal
		*patches = append(*patches, Patch{Op: PatchSetAttr, Path: pathCopy(path), Key: key, Value: attrString(nextVal)})
	}
}

func mergeChildren(prev, next *VNode, path []int, patches *[]Patch) {
	if hasKeys(prev.Children) || hasKeys(next.Children) {
		mergeKeyedChildren(prev, next, path, patches)
		return
	}

	n := len(prev.Children)
	if len(next.Children) < n {
		n = len(next.Children)
	}

	for i := 0; i < n; i++ {
		merge(prev.Children[i], next.Children[i], append(path, i), patches)
	}

	// Extra old children are removed from the end so earlier indices
	// stay valid while replaying the patch stream.
	for i := len(prev.Children) - 1; i >= len(next.Children); i-- {
		*patches = append(*patches, Patch{Op: PatchRemoveChild, Path: pathCopy(path), Index: i})
	}
	if len(prev.Children) > len(next.Children) {
		prev.Children = prev.Children[:len(next.Children)]
	}

	for i := n; i < len(next.Children); i++ {
		child := next.Children[i].Clone()
		prev.Children = append(prev.Children, child)
		*patches = append(*patches, Patch{Op: PatchInsertChild, Path: pathCopy(path), Index: i, Node: child})
	}
}

// mergeKeyedChildren reconciles children by key: a next child with a key
// reuses the old child carrying the same key wherever it sits, moving it
// into position; unkeyed children match the first unkeyed leftover.
func mergeKeyedChildren(prev, next *VNode, path []int, patches *[]Patch) {
	work := make([]*VNode, len(prev.Children))
	copy(work, prev.Children)

	for i, nc := range next.Children {
		j := findMatch(work, i, nc)

		switch {
		case j < 0:
			child := nc.Clone()
			work = append(work, nil)
			copy(work[i+1:], work[i:])
			work[i] = child
			*patches = append(*patches, Patch{Op: PatchInsertChild, Path: pathCopy(path), Index: i, Node: child})
			continue
		case j != i:
			moved := work[j]
			copy(work[i+1:j+1], work[i:j])
			work[i] = moved
			*patches = append(*patches, Patch{Op: PatchMoveChild, Path: pathCopy(path), From: j, Index: i})
		}

		merge(work[i], nc, append(path, i), patches)
	}

	for i := len(work) - 1; i >= len(next.Children); i-- {
		*patches = append(*patches, Patch{Op: PatchRemoveChild, Path: pathCopy(path), Index: i})
	}
	prev.Children = work[:len(next.Children)]
}

// findMatch locates the reusable old child for nc at or after position i.
func findMatch(work []*VNode, i int, nc *VNode) int {
	for j := i; j < len(work); j++ {
		if work[j] == nil {
			continue
		}
		if nc.Key != "" {
			if work[j].Key == nc.Key {
				return j
			}
			continue
		}
		if work[j].Key == "" && work[j].Kind == nc.Kind && work[j].Tag == nc.Tag {
			return j
		}
	}
	return -1
}

func hasKeys(children []*VNode) bool {
	for _, c := range children {
		if c != nil && c.Key != "" {
			return true
		}
	}
	return false
}

func pathCopy(path []int) []int {
	if len(path) == 0 {
		return []int{}
	}
	out := make([]int, len(path))
	copy(out, path)
	return out
}

func attrString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		if x {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprint(x)
	}
}
