package vdom

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement  VKind = iota // <div>, <button>, etc.
	KindText                  // Plain text node
	KindFragment              // Grouping without wrapper
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	default:
		return "Unknown"
	}
}

// Props holds element attributes.
type Props map[string]any

// VNode is a virtual node. Trees are built fresh on every render pass
// and either replace the previously mounted tree or are merged into it.
type VNode struct {
	Kind     VKind    `json:"kind"`
	Tag      string   `json:"tag,omitempty"`
	Props    Props    `json:"props,omitempty"`
	Children []*VNode `json:"children,omitempty"`
	Key      string   `json:"key,omitempty"` // Reconciliation key
	Text     string   `json:"text,omitempty"`
}

// El creates an element node.
func El(tag string, children ...*VNode) *VNode {
	return &VNode{Kind: KindElement, Tag: tag, Children: children}
}

// Text creates a text node.
func Text(s string) *VNode {
	return &VNode{Kind: KindText, Text: s}
}

// Fragment groups children without a wrapper element.
func Fragment(children ...*VNode) *VNode {
	return &VNode{Kind: KindFragment, Children: children}
}

// WithProps sets attributes and returns the node for chaining.
func (v *VNode) WithProps(props Props) *VNode {
	if v.Props == nil {
		v.Props = make(Props, len(props))
	}
	for k, val := range props {
		v.Props[k] = val
	}
	return v
}

// WithKey sets the reconciliation key and returns the node.
func (v *VNode) WithKey(key string) *VNode {
	v.Key = key
	return v
}

// Clone returns a deep copy of the node.
func (v *VNode) Clone() *VNode {
	if v == nil {
		return nil
	}
	c := &VNode{Kind: v.Kind, Tag: v.Tag, Key: v.Key, Text: v.Text}
	if v.Props != nil {
		c.Props = make(Props, len(v.Props))
		for k, val := range v.Props {
			c.Props[k] = val
		}
	}
	if v.Children != nil {
		c.Children = make([]*VNode, len(v.Children))
		for i, child := range v.Children {
			c.Children[i] = child.Clone()
		}
	}
	return c
}

// Equal reports deep structural equality of two trees.
func (v *VNode) Equal(other *VNode) bool {
	if v == nil || other == nil {
		return v == other
	}
	if v.Kind != other.Kind || v.Tag != other.Tag || v.Key != other.Key || v.Text != other.Text {
		return false
	}
	if len(v.Props) != len(other.Props) {
		return false
	}
	for k, val := range v.Props {
		if ov, ok := other.Props[k]; !ok || ov != val {
			return false
		}
	}
	if len(v.Children) != len(other.Children) {
		return false
	}
	for i := range v.Children {
		if !v.Children[i].Equal(other.Children[i]) {
			return false
		}
	}
	return true
}
