package rowan

// Host is the boundary an external tree reconciler drives. It is a thin,
// host-config style veneer over the typed factory and mutation operations:
// the reconciler owns diffing and scheduling, the Host owns translating
// its create/attach/commit calls into backend mutations.
//
// Text leaves are plain Go strings, never SceneNodes; they are folded into
// their parent's resolved content by the Shape and Text appliers.
type Host struct {
	Surface Surface
}

// NewHost returns a Host driving the given surface.
func NewHost(s Surface) *Host {
	return &Host{Surface: s}
}

// CreateInstance creates a retained node. Panics on an unknown kind.
func (h *Host) CreateInstance(kind NodeKind, props *Props) *SceneNode {
	return NewInstance(h.Surface, kind, props)
}

// CreateTextInstance returns the literal string unchanged: text leaves
// have no retained representation of their own.
func (h *Host) CreateTextInstance(text string) string {
	return text
}

// AppendInitialChild attaches child during initial tree construction.
// String children are a no-op — they are resolved through the parent's
// property snapshot, not attached as nodes.
func (h *Host) AppendInitialChild(parent *SceneNode, child any) {
	if node, ok := child.(*SceneNode); ok {
		parent.AppendChild(node)
	}
}

// AppendChild attaches child as the last child of parent, detaching it
// from any previous parent first.
func (h *Host) AppendChild(parent, child *SceneNode) {
	parent.AppendChild(child)
}

// AppendChildToContainer attaches child at the container (surface root)
// level.
func (h *Host) AppendChildToContainer(container Handle, child *SceneNode) {
	AppendToContainer(container, child)
}

// InsertBefore attaches child immediately preceding before. Panics if
// child and before are the same node.
func (h *Host) InsertBefore(parent, child, before *SceneNode) {
	parent.InsertChildBefore(child, before)
}

// InsertInContainerBefore attaches child immediately preceding before at
// container level.
func (h *Host) InsertInContainerBefore(container Handle, child, before *SceneNode) {
	InsertInContainerBefore(container, child, before)
}

// RemoveChild releases child's subscriptions and detaches it.
func (h *Host) RemoveChild(parent, child *SceneNode) {
	parent.RemoveChild(child)
}

// RemoveChildFromContainer releases child's subscriptions and detaches it
// from the container.
func (h *Host) RemoveChildFromContainer(container Handle, child *SceneNode) {
	RemoveFromContainer(container, child)
}

// CommitUpdate applies the old → new property diff through the applier
// bound to the node at creation.
func (h *Host) CommitUpdate(n *SceneNode, old, next *Props) {
	n.CommitUpdate(old, next)
}

// CommitTextUpdate is a no-op: string children take effect through the
// parent's CommitUpdate.
func (h *Host) CommitTextUpdate(oldText, newText string) {}

// ResetTextContent is a no-op at this layer.
func (h *Host) ResetTextContent(n *SceneNode) {}

// CommitMount is a no-op: all mount effects happen in CreateInstance.
func (h *Host) CommitMount(n *SceneNode) {}

// ShouldSetTextContent reports whether a node's children should be treated
// as literal text content: true when the only child is a string or a
// number.
func (h *Host) ShouldSetTextContent(props *Props) bool {
	if len(props.Children) != 1 {
		return false
	}
	switch props.Children[0].(type) {
	case string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	return false
}
