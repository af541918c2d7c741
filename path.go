package rowan

// PathVerb identifies a path element kind.
type PathVerb uint8

const (
	VerbMoveTo  PathVerb = iota // start a new subpath at (X, Y)
	VerbLineTo                  // straight line to (X, Y)
	VerbQuadTo                  // quadratic Bézier via (X1, Y1) to (X, Y)
	VerbCubicTo                 // cubic Bézier via (X1, Y1), (X2, Y2) to (X, Y)
	VerbClose                   // close the current subpath
)

// PathElement is one command of a Path. Only the control points the verb
// uses are meaningful: QuadTo uses (X1, Y1), CubicTo uses both pairs,
// MoveTo/LineTo use neither, Close uses none.
type PathElement struct {
	Verb           PathVerb
	X1, Y1, X2, Y2 float64
	X, Y           float64
}

// Path is a mutable sequence of vector path commands. Every mutation bumps
// an internal revision counter (the "delta"), which is the authoritative
// dirtiness signal for paths that are edited in place without changing
// identity — the shape applier compares the counter it last drew against
// the current one.
type Path struct {
	elements []PathElement
	delta    uint64
	cx, cy   float64 // current pen position
	sx, sy   float64 // subpath start, for Close
}

// NewPath returns an empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at (x, y). Returns p for chaining.
func (p *Path) MoveTo(x, y float64) *Path {
	p.elements = append(p.elements, PathElement{Verb: VerbMoveTo, X: x, Y: y})
	p.cx, p.cy = x, y
	p.sx, p.sy = x, y
	p.delta++
	return p
}

// LineTo appends a straight line to (x, y). Returns p for chaining.
func (p *Path) LineTo(x, y float64) *Path {
	p.elements = append(p.elements, PathElement{Verb: VerbLineTo, X: x, Y: y})
	p.cx, p.cy = x, y
	p.delta++
	return p
}

// QuadTo appends a quadratic Bézier with control point (x1, y1) ending at
// (x, y). Returns p for chaining.
func (p *Path) QuadTo(x1, y1, x, y float64) *Path {
	p.elements = append(p.elements, PathElement{Verb: VerbQuadTo, X1: x1, Y1: y1, X: x, Y: y})
	p.cx, p.cy = x, y
	p.delta++
	return p
}

// CubicTo appends a cubic Bézier with control points (x1, y1) and (x2, y2)
// ending at (x, y). Returns p for chaining.
func (p *Path) CubicTo(x1, y1, x2, y2, x, y float64) *Path {
	p.elements = append(p.elements, PathElement{
		Verb: VerbCubicTo, X1: x1, Y1: y1, X2: x2, Y2: y2, X: x, Y: y,
	})
	p.cx, p.cy = x, y
	p.delta++
	return p
}

// Close closes the current subpath. Returns p for chaining.
func (p *Path) Close() *Path {
	p.elements = append(p.elements, PathElement{Verb: VerbClose, X: p.sx, Y: p.sy})
	p.cx, p.cy = p.sx, p.sy
	p.delta++
	return p
}

// Reset empties the path without releasing its storage.
func (p *Path) Reset() {
	p.elements = p.elements[:0]
	p.cx, p.cy = 0, 0
	p.sx, p.sy = 0, 0
	p.delta++
}

// Elements returns the command list. The returned slice MUST NOT be
// mutated by the caller.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Delta returns the path's revision counter.
func (p *Path) Delta() uint64 {
	return p.delta
}

// Pos returns the current pen position.
func (p *Path) Pos() (x, y float64) {
	return p.cx, p.cy
}

// Bounds returns the control-point bounding box of the path. Control
// points of Béziers are included, so the box may be slightly larger than
// the exact curve extent; backends use it for hit testing and dirty
// regions, where a conservative box is fine. Returns all zeros for an
// empty path.
func (p *Path) Bounds() (minX, minY, maxX, maxY float64) {
	if len(p.elements) == 0 {
		return 0, 0, 0, 0
	}
	first := true
	grow := func(x, y float64) {
		if first {
			minX, minY, maxX, maxY = x, y, x, y
			first = false
			return
		}
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}
	for _, el := range p.elements {
		switch el.Verb {
		case VerbCubicTo:
			grow(el.X1, el.Y1)
			grow(el.X2, el.Y2)
			grow(el.X, el.Y)
		case VerbQuadTo:
			grow(el.X1, el.Y1)
			grow(el.X, el.Y)
		case VerbMoveTo, VerbLineTo:
			grow(el.X, el.Y)
		}
	}
	return minX, minY, maxX, maxY
}
