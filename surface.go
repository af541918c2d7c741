package rowan

// Surface is the retained-mode drawing backend this core drives. It hands
// out opaque node handles; the core never inspects them beyond the
// operations declared here.
//
// Text nodes receive their initial content through the constructor because
// retained text backends typically need it for layout before the first
// property commit.
type Surface interface {
	NewGroup() Handle
	NewClippingRectangle() Handle
	NewShape() ShapeHandle
	NewText(content string, font *Font, align TextAlign, path *Path) TextHandle
}

// Handle is a retained backend node. Every operation is an imperative
// mutation; the core guarantees it never issues a redundant one (see
// SceneNode.CommitUpdate).
type Handle interface {
	// SetTransform replaces the node's affine transform.
	SetTransform(m Matrix)

	// Indicate updates the pointer cursor and hover title shown while the
	// pointer is over this node. The two always travel together.
	Indicate(cursor, title string)

	// Show and Hide toggle visibility without detaching the node.
	Show()
	Hide()

	// Subscribe registers fn for the given event type and returns the
	// function that cancels the registration. The core keeps at most one
	// active subscription per (node, event type).
	Subscribe(e EventType, fn func(Event)) (unsubscribe func())

	// Child ordering. The child handle must have been created by the same
	// Surface. InsertChildBefore places child immediately preceding before.
	AppendChild(child Handle)
	InsertChildBefore(child, before Handle)
	RemoveChild(child Handle)
}

// Sizer is implemented by handles that retain the declared width and
// height for rendering — clipping regions need their extent. Size is a
// cheap stored field, not a draw operation, so the core pushes it on every
// commit without a dirty check.
type Sizer interface {
	SetSize(width, height float64)
}

// Blender is implemented by handles whose kind supports opacity blending.
// The core probes for it with a type assertion; handles without it (for
// example clipping regions on some backends) simply never receive opacity.
type Blender interface {
	SetOpacity(opacity float64)
}

// DrawableHandle is a Handle that can be painted: shapes and text.
type DrawableHandle interface {
	Handle
	Blender

	// FillSolid sets a flat fill color. Structured fills arrive through
	// the descriptor-specific operations below; each Fill variant knows
	// which one to invoke.
	FillSolid(c Color)
	FillLinearGradient(g *LinearGradient)
	FillRadialGradient(g *RadialGradient)
	FillPattern(p *Pattern)

	// SetStroke replaces the whole stroke state. Backends receive all five
	// parameters together even when only one changed; there is no partial
	// stroke update. A nil color means "no stroke".
	SetStroke(c *Color, width float64, cap StrokeCap, join StrokeJoin, dash []float64)
}

// ShapeHandle is a drawable handle whose geometry is a vector path.
type ShapeHandle interface {
	DrawableHandle

	// DrawPath retessellates the shape. strokeWidth and stroke are passed
	// alongside the path because stroke geometry affects the dirty region.
	DrawPath(path *Path, strokeWidth float64, stroke *Color)
}

// TextHandle is a drawable handle whose geometry is a text run.
type TextHandle interface {
	DrawableHandle

	// DrawText relays out and redraws the text run. path, when non-nil, is
	// the layout path the glyphs follow.
	DrawText(content string, font *Font, align TextAlign, path *Path)
}
