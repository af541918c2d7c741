package rowan

// Props is an immutable snapshot of a node's declared state at one point in
// time. The reconciler builds a fresh Props for every commit; the core only
// ever compares two snapshots field by field, it never mutates one.
//
// Optional numeric fields use pointers so that "absent" is distinguishable
// from an explicit zero: per-axis scale takes precedence over the shared
// Scale, which takes precedence over 1; Opacity defaults to 1; Visible
// defaults to true.
type Props struct {
	// Geometry
	X, Y             float64
	Rotation         float64 // radians
	Scale            *float64
	ScaleX, ScaleY   *float64
	OriginX, OriginY float64
	Transform        *Matrix // explicit transform, post-multiplied onto the composed one

	// Presentation
	Cursor  string
	Title   string
	Opacity *float64
	Visible *bool

	// Pointer event handlers, one per EventType. A nil handler means "not
	// subscribed".
	OnClick     Handler
	OnMouseMove Handler
	OnMouseOver Handler
	OnMouseOut  Handler
	OnMouseUp   Handler
	OnMouseDown Handler

	// Container sizing (Group, ClippingRectangle; also part of the Shape
	// redraw check).
	Width, Height float64

	// Paint (Shape, Text)
	Fill        Fill
	Stroke      *Color
	StrokeWidth float64
	StrokeCap   StrokeCap
	StrokeJoin  StrokeJoin
	StrokeDash  []float64

	// Shape geometry: explicit path data. When nil, the concatenation of
	// string-valued Children is parsed as SVG path data instead.
	D *Path

	// Text layout
	Font      *Font
	Alignment TextAlign
	TextPath  *Path // layout path the glyphs follow

	// Declarative children as the reconciler saw them. The core only reads
	// string-valued entries (Shape path data, Text content); everything
	// else is tree structure owned by the reconciler.
	Children []any
}

// Float returns a pointer to v, for populating optional Props fields.
func Float(v float64) *float64 { return &v }

// Bool returns a pointer to v, for populating optional Props fields.
func Bool(v bool) *bool { return &v }

// opacity resolves the effective opacity: absent means fully opaque.
func (p *Props) opacity() float64 {
	if p.Opacity == nil {
		return 1
	}
	return *p.Opacity
}

// visible resolves the effective visibility: absent means visible.
func (p *Props) visible() bool {
	return p.Visible == nil || *p.Visible
}

// scale resolves the per-axis scale factors. Explicit per-axis values win,
// then the shared Scale, then 1.
func (p *Props) scale() (sx, sy float64) {
	sx, sy = 1, 1
	if p.Scale != nil {
		sx, sy = *p.Scale, *p.Scale
	}
	if p.ScaleX != nil {
		sx = *p.ScaleX
	}
	if p.ScaleY != nil {
		sy = *p.ScaleY
	}
	return sx, sy
}

// handler returns the handler declared for the given event type, or nil.
func (p *Props) handler(e EventType) Handler {
	switch e {
	case EventClick:
		return p.OnClick
	case EventMouseMove:
		return p.OnMouseMove
	case EventMouseOver:
		return p.OnMouseOver
	case EventMouseOut:
		return p.OnMouseOut
	case EventMouseUp:
		return p.OnMouseUp
	case EventMouseDown:
		return p.OnMouseDown
	default:
		return nil
	}
}

// childrenString concatenates the string-valued children in order.
// Non-string children are ignored; no children yields the empty string.
func childrenString(children []any) string {
	switch len(children) {
	case 0:
		return ""
	case 1:
		s, _ := children[0].(string)
		return s
	}
	var out string
	for _, c := range children {
		if s, ok := c.(string); ok {
			out += s
		}
	}
	return out
}

// --- Font ---

// Font describes a typeface request. Fonts are compared structurally: two
// fonts are equal when all five fields match, regardless of identity, so a
// freshly constructed but identical Font never forces a text redraw.
type Font struct {
	FontSize    float64
	FontStyle   string // "normal", "italic", "oblique"
	FontVariant string // "normal", "small-caps"
	FontWeight  string // "normal", "bold", or a numeric weight
	FontFamily  string
}

// fontsEqual reports structural font equality, treating nil as "no font".
func fontsEqual(a, b *Font) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return *a == *b
}
