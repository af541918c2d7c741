package rowan

import "math"

// Matrix is a 2D affine transform.
//
//	| XX  XY  X |
//	| YX  YY  Y |
//	|  0   0  1 |
//
// Matrix is a comparable value type: the transform composer builds each
// result on the stack and the dirty check is a plain struct comparison, so
// no scratch matrix is ever shared between nodes or scenes.
type Matrix struct {
	XX, YX, XY, YY, X, Y float64
}

// Identity is the identity transform.
var Identity = Matrix{XX: 1, YY: 1}

// Mul returns m * o, i.e. o applied first, then m.
func (m Matrix) Mul(o Matrix) Matrix {
	return Matrix{
		XX: m.XX*o.XX + m.XY*o.YX,
		YX: m.YX*o.XX + m.YY*o.YX,
		XY: m.XX*o.XY + m.XY*o.YY,
		YY: m.YX*o.XY + m.YY*o.YY,
		X:  m.XX*o.X + m.XY*o.Y + m.X,
		Y:  m.YX*o.X + m.YY*o.Y + m.Y,
	}
}

// Translate returns a translation by (x, y).
func Translate(x, y float64) Matrix {
	return Matrix{XX: 1, YY: 1, X: x, Y: y}
}

// Rotate returns a rotation by angle radians about the point (cx, cy).
func Rotate(angle, cx, cy float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{
		XX: cos, YX: sin,
		XY: -sin, YY: cos,
		X: cx - cos*cx + sin*cy,
		Y: cy - sin*cx - cos*cy,
	}
}

// Scale returns a scale by (sx, sy) about the point (cx, cy).
func Scale(sx, sy, cx, cy float64) Matrix {
	return Matrix{
		XX: sx, YY: sy,
		X: cx - sx*cx,
		Y: cy - sy*cy,
	}
}

// Apply transforms the point (x, y) by m.
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m.XX*x + m.XY*y + m.X, m.YX*x + m.YY*y + m.Y
}

// Invert returns the inverse of m, or Identity if m is singular.
func (m Matrix) Invert() Matrix {
	det := m.XX*m.YY - m.XY*m.YX
	if det > -1e-12 && det < 1e-12 {
		return Identity
	}
	invDet := 1.0 / det
	xx := m.YY * invDet
	yx := -m.YX * invDet
	xy := -m.XY * invDet
	yy := m.XX * invDet
	return Matrix{
		XX: xx, YX: yx, XY: xy, YY: yy,
		X: -(xx*m.X + xy*m.Y),
		Y: -(yx*m.X + yy*m.Y),
	}
}

// composeTransform builds a node's transform from its declared properties.
//
// Composition order is fixed: identity, translate by (X, Y), rotate about
// the origin point, scale about the origin point, then post-multiply the
// explicit transform if one is declared. Each step appends onto the result
// the way a drawing context's transform stack would.
func composeTransform(p *Props) Matrix {
	m := Translate(p.X, p.Y)
	if p.Rotation != 0 {
		m = m.Mul(Rotate(p.Rotation, p.OriginX, p.OriginY))
	}
	sx, sy := p.scale()
	if sx != 1 || sy != 1 {
		m = m.Mul(Scale(sx, sy, p.OriginX, p.OriginY))
	}
	if p.Transform != nil {
		m = m.Mul(*p.Transform)
	}
	return m
}

// applyTransform composes the transform for next and pushes it to the
// backend only when at least one of the six coefficients differs from the
// node's currently-applied transform.
func (n *SceneNode) applyTransform(next *Props) {
	m := composeTransform(next)
	if n.transformSet && m == n.transform {
		return
	}
	n.transform = m
	n.transformSet = true
	n.handle.SetTransform(m)
}
