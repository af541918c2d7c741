// Package ebitencanvas is a retained-mode drawing backend for rowan built
// on [Ebitengine]. It implements rowan.Surface: shapes are tessellated
// with ebiten/v2/vector and rendered as triangles, text is rendered with
// ebiten/v2/text/v2, and pointer input is translated into rowan's six
// event kinds once per Update.
//
// The canvas is single-threaded like the core: Update, Draw, and all
// mutations must run on the same goroutine.
//
// [Ebitengine]: https://ebitengine.org
package ebitencanvas

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/phanxgames/rowan"
)

type nodeKind uint8

const (
	kindGroup nodeKind = iota
	kindClip
	kindShape
	kindText
)

// Canvas is the drawing surface. Create one with New, hand it to the rowan
// factory as its Surface, attach top-level nodes under Root, and call
// Update and Draw from the Ebitengine game loop.
type Canvas struct {
	root  *node
	white *ebiten.Image

	// Registered typeface sources, keyed by font family.
	faces map[string]*text.GoTextFaceSource

	// Cached ebiten images for pattern fills, keyed by descriptor.
	patterns map[*rowan.Pattern]*ebiten.Image

	// Input state (input.go).
	hover       *node
	pressTarget *node
	lastX       int
	lastY       int
	subID       int
}

// New creates an empty canvas.
func New() *Canvas {
	c := &Canvas{
		faces:    map[string]*text.GoTextFaceSource{},
		patterns: map[*rowan.Pattern]*ebiten.Image{},
	}
	c.root = &node{canvas: c, kind: kindGroup, visible: true, opacity: 1, transform: rowan.Identity}
	c.white = ebiten.NewImage(3, 3)
	c.white.Fill(color.White)
	return c
}

// Root returns the container handle top-level scene nodes attach under.
func (c *Canvas) Root() rowan.Handle {
	return c.root
}

// RegisterFace registers a typeface source for a font family. Text nodes
// whose Font.FontFamily has no registered source are not drawn.
func (c *Canvas) RegisterFace(family string, src *text.GoTextFaceSource) {
	c.faces[family] = src
}

// face resolves a rowan font request to an ebiten text face.
func (c *Canvas) face(f *rowan.Font) text.Face {
	if f == nil {
		return nil
	}
	src, ok := c.faces[f.FontFamily]
	if !ok {
		return nil
	}
	return &text.GoTextFace{Source: src, Size: f.FontSize}
}

// --- Surface ---

// NewGroup creates a container node.
func (c *Canvas) NewGroup() rowan.Handle {
	return c.newNode(kindGroup)
}

// NewClippingRectangle creates a container that clips its children to its
// declared size. Clipping is axis-aligned: rotated clip regions degrade to
// their bounding rectangle.
func (c *Canvas) NewClippingRectangle() rowan.Handle {
	return c.newNode(kindClip)
}

// NewShape creates a vector path node.
func (c *Canvas) NewShape() rowan.ShapeHandle {
	return c.newNode(kindShape)
}

// NewText creates a text node.
func (c *Canvas) NewText(content string, font *rowan.Font, align rowan.TextAlign, path *rowan.Path) rowan.TextHandle {
	n := c.newNode(kindText)
	n.text = content
	n.font = font
	n.align = align
	n.textPath = path
	return n
}

func (c *Canvas) newNode(kind nodeKind) *node {
	return &node{
		canvas:    c,
		kind:      kind,
		visible:   true,
		opacity:   1,
		transform: rowan.Identity,
		fillColor: rowan.ColorBlack,
	}
}

// --- Retained node ---

type fillKind uint8

const (
	fillSolid fillKind = iota
	fillLinear
	fillRadial
	fillPattern
)

type subscriber struct {
	id int
	fn func(rowan.Event)
}

// node is the retained backend element. One flat struct serves all four
// kinds; the kind tag selects behavior at draw and hit-test time.
type node struct {
	canvas   *Canvas
	kind     nodeKind
	parent   *node
	children []*node

	transform rowan.Matrix
	world     rowan.Matrix // recomputed each frame during Update/Draw

	visible bool
	opacity float64
	cursor  string
	title   string

	width, height float64 // clip extent

	// Paint state.
	fillMode    fillKind
	fillColor   rowan.Color
	linear      *rowan.LinearGradient
	radial      *rowan.RadialGradient
	pattern     *rowan.Pattern
	stroke      *rowan.Color
	strokeWidth float64
	strokeCap   rowan.StrokeCap
	strokeJoin  rowan.StrokeJoin
	strokeDash  []float64

	// Shape geometry: the drawn path and its tessellations in local
	// coordinates (draw.go). scratch holds the world-transformed copy
	// rebuilt each frame.
	path      *rowan.Path
	fillVerts []ebiten.Vertex
	fillInds  []uint16
	strkVerts []ebiten.Vertex
	strkInds  []uint16
	scratch   []ebiten.Vertex

	// Text state.
	text     string
	font     *rowan.Font
	align    rowan.TextAlign
	textPath *rowan.Path

	subs [6][]subscriber
}

// --- rowan.Handle ---

func (n *node) SetTransform(m rowan.Matrix) {
	n.transform = m
}

func (n *node) Indicate(cursor, title string) {
	n.cursor = cursor
	n.title = title
}

func (n *node) Show() { n.visible = true }

func (n *node) Hide() { n.visible = false }

func (n *node) SetOpacity(opacity float64) {
	n.opacity = opacity
}

// SetSize retains the declared extent; clipping rectangles clip their
// children to it.
func (n *node) SetSize(width, height float64) {
	n.width = width
	n.height = height
}

func (n *node) Subscribe(e rowan.EventType, fn func(rowan.Event)) func() {
	n.canvas.subID++
	id := n.canvas.subID
	n.subs[e] = append(n.subs[e], subscriber{id: id, fn: fn})
	return func() {
		list := n.subs[e]
		for i, s := range list {
			if s.id == id {
				copy(list[i:], list[i+1:])
				n.subs[e] = list[:len(list)-1]
				return
			}
		}
	}
}

func (n *node) AppendChild(child rowan.Handle) {
	ch := child.(*node)
	if ch.parent != nil {
		ch.parent.removeChildByPtr(ch)
	}
	ch.parent = n
	n.children = append(n.children, ch)
}

func (n *node) InsertChildBefore(child, before rowan.Handle) {
	ch := child.(*node)
	ref := before.(*node)
	if ch.parent != nil {
		ch.parent.removeChildByPtr(ch)
	}
	idx := len(n.children)
	for i, c := range n.children {
		if c == ref {
			idx = i
			break
		}
	}
	ch.parent = n
	n.children = append(n.children, nil)
	copy(n.children[idx+1:], n.children[idx:])
	n.children[idx] = ch
}

func (n *node) RemoveChild(child rowan.Handle) {
	ch := child.(*node)
	if ch.parent != n {
		return
	}
	n.removeChildByPtr(ch)
	ch.parent = nil
	if n.canvas.hover == ch {
		n.canvas.hover = nil
	}
	if n.canvas.pressTarget == ch {
		n.canvas.pressTarget = nil
	}
}

// removeChildByPtr removes child from n.children without clearing
// child.parent. Uses copy+nil to avoid retaining a dangling pointer in the
// backing array.
func (n *node) removeChildByPtr(child *node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// --- rowan.DrawableHandle ---

func (n *node) FillSolid(c rowan.Color) {
	n.fillMode = fillSolid
	n.fillColor = c
	n.recolorFill()
}

func (n *node) FillLinearGradient(g *rowan.LinearGradient) {
	n.fillMode = fillLinear
	n.linear = g
	n.recolorFill()
}

func (n *node) FillRadialGradient(g *rowan.RadialGradient) {
	n.fillMode = fillRadial
	n.radial = g
	n.recolorFill()
}

func (n *node) FillPattern(p *rowan.Pattern) {
	n.fillMode = fillPattern
	n.pattern = p
	n.recolorFill()
}

func (n *node) SetStroke(c *rowan.Color, width float64, cap rowan.StrokeCap, join rowan.StrokeJoin, dash []float64) {
	n.stroke = c
	n.strokeWidth = width
	n.strokeCap = cap
	n.strokeJoin = join
	n.strokeDash = dash
	n.tessellateStroke()
}

// --- rowan.ShapeHandle ---

func (n *node) DrawPath(path *rowan.Path, strokeWidth float64, stroke *rowan.Color) {
	n.path = path
	n.strokeWidth = strokeWidth
	n.stroke = stroke
	n.tessellateFill()
	n.tessellateStroke()
}

// --- rowan.TextHandle ---

func (n *node) DrawText(content string, font *rowan.Font, align rowan.TextAlign, path *rowan.Path) {
	n.text = content
	n.font = font
	n.align = align
	n.textPath = path
}
