package rowan

import (
	"image"
	"slices"
)

// Fill describes how a drawable node is painted. Solid is a comparable
// value; the three structured descriptors are pointer types compared by
// identity — changing any parameter of a gradient or pattern means
// constructing a new descriptor, which the diff always treats as a changed
// fill. Each variant invokes its own backend fill operation.
type Fill interface {
	applyFill(h DrawableHandle)
}

// Solid is a flat color fill.
type Solid struct {
	Color Color
}

func (s Solid) applyFill(h DrawableHandle) { h.FillSolid(s.Color) }

// GradientStop is one color stop of a gradient, at Offset in [0, 1] along
// the gradient axis.
type GradientStop struct {
	Offset float64
	Color  Color
}

// LinearGradient fills along the axis from (X1, Y1) to (X2, Y2).
type LinearGradient struct {
	Stops  []GradientStop
	X1, Y1 float64
	X2, Y2 float64
}

func (g *LinearGradient) applyFill(h DrawableHandle) { h.FillLinearGradient(g) }

// RadialGradient fills outward from the focus point (FX, FY) to the ellipse
// with center (CX, CY) and radii (RX, RY).
type RadialGradient struct {
	Stops  []GradientStop
	FX, FY float64
	RX, RY float64
	CX, CY float64
}

func (g *RadialGradient) applyFill(h DrawableHandle) { h.FillRadialGradient(g) }

// Pattern tiles an image over the filled region, offset by (Left, Top) and
// scaled to Width x Height per tile.
type Pattern struct {
	Image         image.Image
	Width, Height float64
	Left, Top     float64
}

func (p *Pattern) applyFill(h DrawableHandle) { h.FillPattern(p) }

// fillsEqual reports whether two fills are equal for diff purposes: solid
// fills by value, structured descriptors by identity.
func fillsEqual(a, b Fill) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	sa, aok := a.(Solid)
	sb, bok := b.(Solid)
	if aok || bok {
		return aok && bok && sa == sb
	}
	return a == b
}

// strokesEqual reports whether two stroke parameter tuples are equal:
// the color by value, the dash pattern element-wise.
func strokesEqual(old, next *Props) bool {
	switch {
	case old.Stroke == nil && next.Stroke != nil,
		old.Stroke != nil && next.Stroke == nil:
		return false
	case old.Stroke != nil && *old.Stroke != *next.Stroke:
		return false
	}
	return old.StrokeWidth == next.StrokeWidth &&
		old.StrokeCap == next.StrokeCap &&
		old.StrokeJoin == next.StrokeJoin &&
		slices.Equal(old.StrokeDash, next.StrokeDash)
}
