package ebitencanvas

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/rowan"
)

// Draw renders the scene into dst. World transforms are recomputed from
// the retained local transforms on every call; tessellation happened when
// the core issued DrawPath/SetStroke, so a frame with no commits costs
// only vertex transformation.
func (c *Canvas) Draw(dst *ebiten.Image) {
	c.drawNode(dst, c.root, rowan.Identity, 1)
}

func (c *Canvas) drawNode(dst *ebiten.Image, n *node, parent rowan.Matrix, parentAlpha float64) {
	if !n.visible {
		return
	}
	n.world = parent.Mul(n.transform)
	alpha := parentAlpha * n.opacity

	switch n.kind {
	case kindShape:
		c.drawShape(dst, n, alpha)
	case kindText:
		c.drawText(dst, n, alpha)
	case kindClip:
		dst = n.clipDst(dst)
	}

	for _, child := range n.children {
		c.drawNode(dst, child, n.world, alpha)
	}
}

// clipDst restricts dst to the node's world-space extent. Only the
// axis-aligned bounding rectangle is honored; a rotated clip region
// degrades to its bounding box.
func (n *node) clipDst(dst *ebiten.Image) *ebiten.Image {
	if n.width <= 0 || n.height <= 0 {
		return dst
	}
	x0, y0 := n.world.Apply(0, 0)
	x1, y1 := n.world.Apply(n.width, n.height)
	rect := image.Rect(
		int(math.Floor(math.Min(x0, x1))),
		int(math.Floor(math.Min(y0, y1))),
		int(math.Ceil(math.Max(x0, x1))),
		int(math.Ceil(math.Max(y0, y1))),
	)
	return dst.SubImage(rect.Intersect(dst.Bounds())).(*ebiten.Image)
}

// --- Shape tessellation ---

// buildVectorPath converts a rowan path to an ebiten vector path in local
// coordinates.
func buildVectorPath(p *rowan.Path) *vector.Path {
	var vp vector.Path
	for _, el := range p.Elements() {
		switch el.Verb {
		case rowan.VerbMoveTo:
			vp.MoveTo(float32(el.X), float32(el.Y))
		case rowan.VerbLineTo:
			vp.LineTo(float32(el.X), float32(el.Y))
		case rowan.VerbQuadTo:
			vp.QuadTo(float32(el.X1), float32(el.Y1), float32(el.X), float32(el.Y))
		case rowan.VerbCubicTo:
			vp.CubicTo(float32(el.X1), float32(el.Y1), float32(el.X2), float32(el.Y2), float32(el.X), float32(el.Y))
		case rowan.VerbClose:
			vp.Close()
		}
	}
	return &vp
}

// tessellateFill rebuilds the fill triangles from the drawn path.
func (n *node) tessellateFill() {
	n.fillVerts = n.fillVerts[:0]
	n.fillInds = n.fillInds[:0]
	if n.path == nil || len(n.path.Elements()) == 0 {
		return
	}
	vp := buildVectorPath(n.path)
	n.fillVerts, n.fillInds = vp.AppendVerticesAndIndicesForFilling(n.fillVerts, n.fillInds)
	n.recolorFill()
}

// tessellateStroke rebuilds the stroke triangles from the drawn path and
// the current stroke parameters.
//
// TODO: dashed strokes need manual path segmentation before tessellation;
// ebitengine's vector package has no dash support.
func (n *node) tessellateStroke() {
	n.strkVerts = n.strkVerts[:0]
	n.strkInds = n.strkInds[:0]
	if n.path == nil || len(n.path.Elements()) == 0 || n.stroke == nil || n.strokeWidth <= 0 {
		return
	}
	op := &vector.StrokeOptions{
		Width:      float32(n.strokeWidth),
		MiterLimit: 10,
	}
	switch n.strokeCap {
	case rowan.StrokeCapRound:
		op.LineCap = vector.LineCapRound
	case rowan.StrokeCapSquare:
		op.LineCap = vector.LineCapSquare
	default:
		op.LineCap = vector.LineCapButt
	}
	switch n.strokeJoin {
	case rowan.StrokeJoinRound:
		op.LineJoin = vector.LineJoinRound
	case rowan.StrokeJoinBevel:
		op.LineJoin = vector.LineJoinBevel
	default:
		op.LineJoin = vector.LineJoinMiter
	}
	vp := buildVectorPath(n.path)
	n.strkVerts, n.strkInds = vp.AppendVerticesAndIndicesForStroke(n.strkVerts, n.strkInds, op)
	recolorSolid(n.strkVerts, *n.stroke)
}

// recolorFill writes per-vertex colors for the current fill. Solid fills
// tint every vertex; gradients evaluate the vertex position against the
// gradient geometry (a per-vertex approximation that is exact for the
// two-stop linear case on flat geometry); patterns map vertex positions
// into source image coordinates.
func (n *node) recolorFill() {
	if len(n.fillVerts) == 0 {
		return
	}
	switch n.fillMode {
	case fillSolid:
		recolorSolid(n.fillVerts, n.fillColor)
	case fillLinear:
		g := n.linear
		dx, dy := g.X2-g.X1, g.Y2-g.Y1
		lenSq := dx*dx + dy*dy
		for i := range n.fillVerts {
			v := &n.fillVerts[i]
			t := 0.0
			if lenSq > 0 {
				t = ((float64(v.DstX)-g.X1)*dx + (float64(v.DstY)-g.Y1)*dy) / lenSq
			}
			setVertexColor(v, gradientAt(g.Stops, t))
		}
	case fillRadial:
		g := n.radial
		for i := range n.fillVerts {
			v := &n.fillVerts[i]
			ex, ey := float64(v.DstX)-g.CX, float64(v.DstY)-g.CY
			t := 0.0
			if g.RX > 0 && g.RY > 0 {
				nx, ny := ex/g.RX, ey/g.RY
				t = math.Sqrt(nx*nx + ny*ny)
			}
			setVertexColor(v, gradientAt(g.Stops, t))
		}
	case fillPattern:
		p := n.pattern
		img := n.canvas.patternImage(p)
		bounds := img.Bounds()
		sw, sh := float64(bounds.Dx()), float64(bounds.Dy())
		tw, th := p.Width, p.Height
		if tw <= 0 {
			tw = sw
		}
		if th <= 0 {
			th = sh
		}
		for i := range n.fillVerts {
			v := &n.fillVerts[i]
			v.SrcX = float32((float64(v.DstX) - p.Left) / tw * sw)
			v.SrcY = float32((float64(v.DstY) - p.Top) / th * sh)
			v.ColorR, v.ColorG, v.ColorB, v.ColorA = 1, 1, 1, 1
		}
	}
}

func recolorSolid(vs []ebiten.Vertex, c rowan.Color) {
	for i := range vs {
		setVertexColor(&vs[i], c)
	}
}

func setVertexColor(v *ebiten.Vertex, c rowan.Color) {
	v.SrcX, v.SrcY = 1.5, 1.5
	v.ColorR = float32(c.R)
	v.ColorG = float32(c.G)
	v.ColorB = float32(c.B)
	v.ColorA = float32(c.A)
}

// gradientAt evaluates the stop list at t in [0, 1].
func gradientAt(stops []rowan.GradientStop, t float64) rowan.Color {
	if len(stops) == 0 {
		return rowan.Color{}
	}
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if t >= last.Offset {
		return last.Color
	}
	for i := 1; i < len(stops); i++ {
		if t <= stops[i].Offset {
			a, b := stops[i-1], stops[i]
			span := b.Offset - a.Offset
			f := 0.0
			if span > 0 {
				f = (t - a.Offset) / span
			}
			return rowan.Color{
				R: a.Color.R + (b.Color.R-a.Color.R)*f,
				G: a.Color.G + (b.Color.G-a.Color.G)*f,
				B: a.Color.B + (b.Color.B-a.Color.B)*f,
				A: a.Color.A + (b.Color.A-a.Color.A)*f,
			}
		}
	}
	return last.Color
}

// patternImage returns (and caches) the ebiten image for a pattern fill.
func (c *Canvas) patternImage(p *rowan.Pattern) *ebiten.Image {
	if img, ok := c.patterns[p]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(p.Image)
	c.patterns[p] = img
	return img
}

// --- Shape and text rendering ---

func (c *Canvas) drawShape(dst *ebiten.Image, n *node, alpha float64) {
	if len(n.fillInds) > 0 {
		src := c.white
		op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
		if n.fillMode == fillPattern {
			src = c.patternImage(n.pattern)
			op.Address = ebiten.AddressRepeat
		}
		dst.DrawTriangles(n.transformed(n.fillVerts, alpha), n.fillInds, src, op)
	}
	if len(n.strkInds) > 0 {
		op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
		dst.DrawTriangles(n.transformed(n.strkVerts, alpha), n.strkInds, c.white, op)
	}
}

// transformed applies the node's world matrix and alpha to a local-space
// vertex slice, reusing a scratch buffer across frames.
func (n *node) transformed(vs []ebiten.Vertex, alpha float64) []ebiten.Vertex {
	if cap(n.scratch) < len(vs) {
		n.scratch = make([]ebiten.Vertex, len(vs))
	}
	n.scratch = n.scratch[:len(vs)]
	m := n.world
	for i, v := range vs {
		x, y := m.Apply(float64(v.DstX), float64(v.DstY))
		v.DstX = float32(x)
		v.DstY = float32(y)
		v.ColorA *= float32(alpha)
		n.scratch[i] = v
	}
	return n.scratch
}

func (c *Canvas) drawText(dst *ebiten.Image, n *node, alpha float64) {
	if n.text == "" {
		return
	}
	face := c.face(n.font)
	if face == nil {
		return
	}
	// TODO: text-on-path layout (n.textPath) needs per-glyph placement
	// along the path's arc length; glyphs currently follow the node
	// transform only.
	op := &text.DrawOptions{}
	m := n.world
	op.GeoM.SetElement(0, 0, m.XX)
	op.GeoM.SetElement(0, 1, m.XY)
	op.GeoM.SetElement(0, 2, m.X)
	op.GeoM.SetElement(1, 0, m.YX)
	op.GeoM.SetElement(1, 1, m.YY)
	op.GeoM.SetElement(1, 2, m.Y)
	switch n.align {
	case rowan.TextAlignCenter:
		op.PrimaryAlign = text.AlignCenter
	case rowan.TextAlignRight:
		op.PrimaryAlign = text.AlignEnd
	default:
		op.PrimaryAlign = text.AlignStart
	}
	fc := n.fillColor
	if n.fillMode != fillSolid {
		// Gradient and pattern text is approximated by the first stop /
		// opaque white; per-glyph shading is not supported.
		fc = rowan.Color{R: 1, G: 1, B: 1, A: 1}
		if n.fillMode == fillLinear && len(n.linear.Stops) > 0 {
			fc = n.linear.Stops[0].Color
		}
		if n.fillMode == fillRadial && len(n.radial.Stops) > 0 {
			fc = n.radial.Stops[0].Color
		}
	}
	op.ColorScale.Scale(float32(fc.R), float32(fc.G), float32(fc.B), float32(fc.A))
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(dst, n.text, face, op)
}
