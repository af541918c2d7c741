package rowan

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func matricesClose(a, b Matrix) bool {
	return math.Abs(a.XX-b.XX) < epsilon &&
		math.Abs(a.YX-b.YX) < epsilon &&
		math.Abs(a.XY-b.XY) < epsilon &&
		math.Abs(a.YY-b.YY) < epsilon &&
		math.Abs(a.X-b.X) < epsilon &&
		math.Abs(a.Y-b.Y) < epsilon
}

// --- Composition ---

func TestComposeDefaultIsIdentity(t *testing.T) {
	m := composeTransform(&Props{})
	if m != Identity {
		t.Errorf("composeTransform(empty) = %+v, want identity", m)
	}
}

func TestComposeTranslateOnly(t *testing.T) {
	m := composeTransform(&Props{X: 10, Y: -4})
	want := Matrix{XX: 1, YY: 1, X: 10, Y: -4}
	if m != want {
		t.Errorf("m = %+v, want %+v", m, want)
	}
}

func TestComposeRotationAboutOrigin(t *testing.T) {
	// Rotating a point at (1, 0) by 90° about (0, 0) lands at (0, 1).
	m := composeTransform(&Props{Rotation: math.Pi / 2})
	x, y := m.Apply(1, 0)
	if math.Abs(x) > epsilon || math.Abs(y-1) > epsilon {
		t.Errorf("rotated point = (%v, %v), want (0, 1)", x, y)
	}
}

func TestComposeRotationAboutOriginPoint(t *testing.T) {
	// The origin point itself is a fixed point of the rotation.
	m := composeTransform(&Props{Rotation: 1.234, OriginX: 5, OriginY: 7})
	x, y := m.Apply(5, 7)
	if math.Abs(x-5) > epsilon || math.Abs(y-7) > epsilon {
		t.Errorf("origin moved to (%v, %v), want (5, 7)", x, y)
	}
}

func TestComposeScaleAboutOriginPoint(t *testing.T) {
	m := composeTransform(&Props{Scale: Float(2), OriginX: 10, OriginY: 10})
	if x, y := m.Apply(10, 10); x != 10 || y != 10 {
		t.Errorf("origin moved to (%v, %v), want (10, 10)", x, y)
	}
	if x, y := m.Apply(11, 10); x != 12 || y != 10 {
		t.Errorf("(11, 10) scaled to (%v, %v), want (12, 10)", x, y)
	}
}

func TestComposeOrderTranslateThenRotate(t *testing.T) {
	// Translation is applied to the already-rotated local point:
	// local (1, 0) rotated 90° is (0, 1), then moved by (100, 0).
	m := composeTransform(&Props{X: 100, Rotation: math.Pi / 2})
	x, y := m.Apply(1, 0)
	if math.Abs(x-100) > epsilon || math.Abs(y-1) > epsilon {
		t.Errorf("point = (%v, %v), want (100, 1)", x, y)
	}
}

func TestComposeExplicitTransformPostMultiplied(t *testing.T) {
	explicit := Translate(3, 4)
	m := composeTransform(&Props{X: 10, Transform: &explicit})
	// The explicit transform applies first in point space.
	x, y := m.Apply(0, 0)
	if x != 13 || y != 4 {
		t.Errorf("point = (%v, %v), want (13, 4)", x, y)
	}
}

func TestComposeDeterministic(t *testing.T) {
	p := &Props{X: 3, Y: 5, Rotation: 0.7, Scale: Float(1.5), OriginX: 2, OriginY: 2}
	a := composeTransform(p)
	b := composeTransform(p)
	if a != b {
		t.Errorf("two compositions differ: %+v vs %+v", a, b)
	}
}

// --- Scale precedence ---

func TestScalePrecedence(t *testing.T) {
	tests := []struct {
		name     string
		props    Props
		sx, sy   float64
	}{
		{"per-axis wins over shared", Props{ScaleX: Float(2), Scale: Float(5)}, 2, 5},
		{"shared applies to both", Props{Scale: Float(5)}, 5, 5},
		{"absent means 1", Props{}, 1, 1},
		{"explicit zero respected", Props{ScaleX: Float(0), Scale: Float(5)}, 0, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sx, sy := tt.props.scale()
			if sx != tt.sx || sy != tt.sy {
				t.Errorf("scale() = (%v, %v), want (%v, %v)", sx, sy, tt.sx, tt.sy)
			}
		})
	}
}

// --- Dirty check ---

func TestTransformAppliedOnceForIdenticalInputs(t *testing.T) {
	s := newRecordingSurface()
	n := NewInstance(s, NodeKindGroup, &Props{X: 5, Rotation: 0.3})
	h := backendHandle(t, n)
	if len(h.transforms) != 1 {
		t.Fatalf("transforms after create = %d, want 1", len(h.transforms))
	}

	n.CommitUpdate(&Props{X: 5, Rotation: 0.3}, &Props{X: 5, Rotation: 0.3})
	if len(h.transforms) != 1 {
		t.Errorf("transforms after identical commit = %d, want 1", len(h.transforms))
	}

	n.CommitUpdate(&Props{X: 5, Rotation: 0.3}, &Props{X: 6, Rotation: 0.3})
	if len(h.transforms) != 2 {
		t.Errorf("transforms after changed commit = %d, want 2", len(h.transforms))
	}
}

func TestTransformZeroScaleApplied(t *testing.T) {
	// A composed zero matrix must still be distinguishable from "never
	// applied".
	s := newRecordingSurface()
	n := NewInstance(s, NodeKindGroup, &Props{Scale: Float(0)})
	h := backendHandle(t, n)
	if len(h.transforms) != 1 {
		t.Fatalf("transforms = %d, want 1", len(h.transforms))
	}
	n.CommitUpdate(&Props{Scale: Float(0)}, &Props{Scale: Float(0)})
	if len(h.transforms) != 1 {
		t.Errorf("transforms after identical commit = %d, want 1", len(h.transforms))
	}
}

// --- Matrix ops ---

func TestMatrixMulIdentity(t *testing.T) {
	m := Matrix{XX: 2, YX: 0.5, XY: -1, YY: 3, X: 7, Y: -2}
	if got := m.Mul(Identity); got != m {
		t.Errorf("m * I = %+v, want %+v", got, m)
	}
	if got := Identity.Mul(m); got != m {
		t.Errorf("I * m = %+v, want %+v", got, m)
	}
}

func TestMatrixInvertRoundTrip(t *testing.T) {
	m := Translate(4, 5).Mul(Rotate(0.6, 0, 0)).Mul(Scale(2, 3, 0, 0))
	round := m.Mul(m.Invert())
	if !matricesClose(round, Identity) {
		t.Errorf("m * m⁻¹ = %+v, want identity", round)
	}
}

func TestMatrixInvertSingular(t *testing.T) {
	if got := (Matrix{}).Invert(); got != Identity {
		t.Errorf("singular inverse = %+v, want identity", got)
	}
}
