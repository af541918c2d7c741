package rowan

// SceneNode is a retained scene element: the opaque backend handle plus
// the bookkeeping the differ needs to avoid redundant backend calls. All
// fields below the handle are caches of the last state pushed to the
// backend; they are owned by this package and never mutated by callers.
//
// A node is exclusively owned by the tree position it occupies. It is
// created by NewInstance, mutated by CommitUpdate, and dies when removed
// from its parent, at which point its event subscriptions are released.
type SceneNode struct {
	Kind   NodeKind
	handle Handle

	parent Handle // backend handle of the current parent, nil when detached

	// Last transform pushed to the backend. transformSet distinguishes
	// "never applied" from an applied zero matrix (possible with scale 0).
	transform    Matrix
	transformSet bool

	// Event tables (events.go).
	handlers    [numEventTypes]Handler
	unsubscribe [numEventTypes]func()

	// Recorded container sizing (Group, ClippingRectangle).
	width, height float64

	// Shape draw cache: the declared path pointer, its delta counter at
	// draw time, and the string source when the path came from children.
	prevPath   *Path
	prevDelta  uint64
	prevSource string
	drawnShape bool

	// Text draw cache.
	prevString string
	drawnText  bool
}

// NewInstance creates a retained node of the given kind on the surface and
// runs its applier against an empty previous snapshot, so initial
// properties flow through exactly the same diff machinery as updates.
// Panics if kind is not one of the four known tags.
func NewInstance(s Surface, kind NodeKind, props *Props) *SceneNode {
	var h Handle
	switch kind {
	case NodeKindGroup:
		h = s.NewGroup()
	case NodeKindClippingRectangle:
		h = s.NewClippingRectangle()
	case NodeKindShape:
		h = s.NewShape()
	case NodeKindText:
		h = s.NewText(childrenString(props.Children), props.Font, props.Alignment, props.TextPath)
	default:
		panic("rowan: unknown node kind " + kind.String())
	}
	n := &SceneNode{Kind: kind, handle: h}
	n.CommitUpdate(nil, props)
	return n
}

// Handle returns the backend handle. Callers must not mutate the handle
// directly; doing so would desynchronize the differ's caches.
func (n *SceneNode) Handle() Handle {
	return n.handle
}

// Size returns the width and height recorded by the last commit. Only
// Group and ClippingRectangle nodes record their size.
func (n *SceneNode) Size() (width, height float64) {
	return n.width, n.height
}

// CommitUpdate applies the diff between two property snapshots to the
// backend, firing only the operations whose inputs actually changed. A nil
// old snapshot is treated as empty, which marks every declared field as
// changed. The applier is selected by the node's immutable kind tag.
func (n *SceneNode) CommitUpdate(old, next *Props) {
	if old == nil {
		old = &Props{}
	}
	switch n.Kind {
	case NodeKindGroup, NodeKindClippingRectangle:
		n.applyContainerProps(old, next)
	case NodeKindShape:
		n.applyShapeProps(old, next)
	case NodeKindText:
		n.applyTextProps(old, next)
	}
}

// applyCoreProps applies the properties shared by every node kind:
// transform, cursor/title indication, opacity, visibility, and the six
// event subscriptions.
func (n *SceneNode) applyCoreProps(old, next *Props) {
	n.applyTransform(next)

	if next.Cursor != old.Cursor || next.Title != old.Title {
		n.handle.Indicate(next.Cursor, next.Title)
	}

	if b, ok := n.handle.(Blender); ok {
		if next.opacity() != old.opacity() {
			b.SetOpacity(next.opacity())
		}
	}

	if next.visible() != old.visible() {
		if next.visible() {
			n.handle.Show()
		} else {
			n.handle.Hide()
		}
	}

	for e := EventType(0); e < numEventTypes; e++ {
		n.listenTo(e, next.handler(e))
	}
}

// applyContainerProps is the Group/ClippingRectangle applier: the core
// properties plus the recorded size. Size is a stored field, not a backend
// operation, so it is written unconditionally.
func (n *SceneNode) applyContainerProps(old, next *Props) {
	n.applyCoreProps(old, next)
	n.width = next.Width
	n.height = next.Height
	if s, ok := n.handle.(Sizer); ok {
		s.SetSize(next.Width, next.Height)
	}
}

// applyPaintProps applies fill and stroke to a drawable node.
func (n *SceneNode) applyPaintProps(old, next *Props) {
	d := n.handle.(DrawableHandle)

	if !fillsEqual(next.Fill, old.Fill) {
		if next.Fill != nil {
			next.Fill.applyFill(d)
		} else {
			d.FillSolid(Color{})
		}
	}

	if !strokesEqual(old, next) {
		d.SetStroke(next.Stroke, next.StrokeWidth, next.StrokeCap, next.StrokeJoin, next.StrokeDash)
	}
}

// applyShapeProps is the Shape applier. The path source is the declared
// path if present, else the concatenation of string children parsed as SVG
// path data. Redraw fires when the path identity changed, when the path
// was mutated in place (delta counter), when the string source changed, or
// when the declared width/height changed.
func (n *SceneNode) applyShapeProps(old, next *Props) {
	n.applyCoreProps(old, next)
	n.applyPaintProps(old, next)

	sh := n.handle.(ShapeHandle)

	path := next.D
	source := ""
	if path == nil {
		source = childrenString(next.Children)
	}

	dirty := !n.drawnShape || next.Width != old.Width || next.Height != old.Height
	if path != nil {
		dirty = dirty || path != n.prevPath || path.Delta() != n.prevDelta
	} else {
		dirty = dirty || n.prevPath != nil || source != n.prevSource
	}
	if !dirty {
		return
	}

	drawn := path
	if drawn == nil {
		parsed, err := ParsePath(source)
		if err != nil {
			panic(err.Error())
		}
		drawn = parsed
	}
	sh.DrawPath(drawn, next.StrokeWidth, next.Stroke)

	n.prevPath = path
	n.prevSource = source
	n.drawnShape = true
	if path != nil {
		n.prevDelta = path.Delta()
	} else {
		n.prevDelta = 0
	}
}

// applyTextProps is the Text applier. The content is the concatenation of
// string children. Redraw fires when the resolved string differs from the
// last drawn one, when the font is not structurally equal to the previous
// font, or when alignment or layout path changed.
func (n *SceneNode) applyTextProps(old, next *Props) {
	n.applyCoreProps(old, next)
	n.applyPaintProps(old, next)

	th := n.handle.(TextHandle)

	content := childrenString(next.Children)
	if n.drawnText &&
		content == n.prevString &&
		fontsEqual(next.Font, old.Font) &&
		next.Alignment == old.Alignment &&
		next.TextPath == old.TextPath {
		return
	}
	th.DrawText(content, next.Font, next.Alignment, next.TextPath)
	n.prevString = content
	n.drawnText = true
}

// --- Tree mutation ---

// AppendChild attaches child as the last child of n. If child is already
// attached somewhere, it is detached first, so re-parenting is a single
// call.
func (n *SceneNode) AppendChild(child *SceneNode) {
	appendNode(n.handle, child)
}

// InsertChildBefore attaches child immediately preceding before in n's
// child order. Panics if child and before are the same node.
func (n *SceneNode) InsertChildBefore(child, before *SceneNode) {
	insertNodeBefore(n.handle, child, before)
}

// RemoveChild releases child's event subscriptions and detaches it from n.
// The child must not be used afterwards.
func (n *SceneNode) RemoveChild(child *SceneNode) {
	removeNode(n.handle, child)
}

// AppendToContainer attaches child as the last child of a container-level
// backend handle (typically the surface root). Same semantics as
// SceneNode.AppendChild.
func AppendToContainer(container Handle, child *SceneNode) {
	appendNode(container, child)
}

// InsertInContainerBefore attaches child immediately preceding before at
// container level. Panics if child and before are the same node.
func InsertInContainerBefore(container Handle, child, before *SceneNode) {
	insertNodeBefore(container, child, before)
}

// RemoveFromContainer releases child's event subscriptions and detaches it
// from a container-level backend handle.
func RemoveFromContainer(container Handle, child *SceneNode) {
	removeNode(container, child)
}

func appendNode(parent Handle, child *SceneNode) {
	child.detach()
	parent.AppendChild(child.handle)
	child.parent = parent
}

func insertNodeBefore(parent Handle, child, before *SceneNode) {
	if child == before {
		panic("rowan: cannot insert a node before itself")
	}
	child.detach()
	parent.InsertChildBefore(child.handle, before.handle)
	child.parent = parent
}

func removeNode(parent Handle, child *SceneNode) {
	child.releaseSubscriptions()
	parent.RemoveChild(child.handle)
	child.parent = nil
}

// detach removes the node from its current parent, if any, without
// releasing subscriptions. Used by the attach paths for re-parenting.
func (n *SceneNode) detach() {
	if n.parent != nil {
		n.parent.RemoveChild(n.handle)
		n.parent = nil
	}
}
