package vdom

// PatchOp is the type of patch operation.
type PatchOp uint8

const (
	PatchSetText     PatchOp = 0x01 // Update text content
	PatchSetAttr     PatchOp = 0x02 // Set/update attribute
	PatchRemoveAttr  PatchOp = 0x03 // Remove attribute
	PatchReplaceNode PatchOp = 0x04 // Replace node entirely
	PatchInsertChild PatchOp = 0x05 // Insert child at index
	PatchRemoveChild PatchOp = 0x06 // Remove child at index
	PatchMoveChild   PatchOp = 0x07 // Move child to new index
)

// String returns the string representation of the PatchOp.
func (op PatchOp) String() string {
	switch op {
	case PatchSetText:
		return "SetText"
	case PatchSetAttr:
		return "SetAttr"
	case PatchRemoveAttr:
		return "RemoveAttr"
	case PatchReplaceNode:
		return "ReplaceNode"
	case PatchInsertChild:
		return "InsertChild"
	case PatchRemoveChild:
		return "RemoveChild"
	case PatchMoveChild:
		return "MoveChild"
	default:
		return "Unknown"
	}
}

// Patch is a single tree operation. Nodes are addressed by their child
// index path from the mounted root; an empty path is the root itself.
// Child operations address the parent and carry indices.
type Patch struct {
	Op    PatchOp `json:"op"`
	Path  []int   `json:"path"`
	Key   string  `json:"key,omitempty"`   // Attribute key
	Value string  `json:"value,omitempty"` // New text or attribute value
	Node  *VNode  `json:"node,omitempty"`  // For ReplaceNode/InsertChild
	Index int     `json:"index,omitempty"` // Child index
	From  int     `json:"from,omitempty"`  // Source index for MoveChild
}
