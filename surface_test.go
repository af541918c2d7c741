package rowan

import "testing"

// recordingSurface is a spy backend: every handle records the mutation
// calls it receives so tests can assert that exactly the right operations
// fired, and no others.
type recordingSurface struct {
	created []*recordingHandle
}

type strokeCall struct {
	color *Color
	width float64
	cap   StrokeCap
	join  StrokeJoin
	dash  []float64
}

type drawCall struct {
	path        *Path
	strokeWidth float64
	stroke      *Color
}

type textDrawCall struct {
	content string
	font    *Font
	align   TextAlign
	path    *Path
}

type recordingHandle struct {
	kind string

	// Total mutation calls, for idempotence assertions.
	mutations int

	transforms   []Matrix
	indicates    [][2]string
	opacities    []float64
	shows, hides int
	sizes        [][2]float64

	solidFills   []Color
	linearFills  []*LinearGradient
	radialFills  []*RadialGradient
	patternFills []*Pattern
	strokes      []strokeCall
	draws        []drawCall
	textDraws    []textDrawCall

	subscribes   map[EventType]int
	unsubscribes map[EventType]int
	active       map[EventType]func(Event)

	children []*recordingHandle

	initContent string
	initFont    *Font
	initAlign   TextAlign
	initPath    *Path
}

func newRecordingSurface() *recordingSurface {
	return &recordingSurface{}
}

func (s *recordingSurface) newHandle(kind string) *recordingHandle {
	h := &recordingHandle{
		kind:         kind,
		subscribes:   map[EventType]int{},
		unsubscribes: map[EventType]int{},
		active:       map[EventType]func(Event){},
	}
	s.created = append(s.created, h)
	return h
}

func (s *recordingSurface) NewGroup() Handle              { return s.newHandle("group") }
func (s *recordingSurface) NewClippingRectangle() Handle  { return s.newHandle("clip") }
func (s *recordingSurface) NewShape() ShapeHandle         { return s.newHandle("shape") }
func (s *recordingSurface) NewText(content string, font *Font, align TextAlign, path *Path) TextHandle {
	h := s.newHandle("text")
	h.initContent = content
	h.initFont = font
	h.initAlign = align
	h.initPath = path
	return h
}

func (h *recordingHandle) SetTransform(m Matrix) {
	h.mutations++
	h.transforms = append(h.transforms, m)
}

func (h *recordingHandle) Indicate(cursor, title string) {
	h.mutations++
	h.indicates = append(h.indicates, [2]string{cursor, title})
}

func (h *recordingHandle) SetOpacity(o float64) {
	h.mutations++
	h.opacities = append(h.opacities, o)
}

func (h *recordingHandle) Show() { h.mutations++; h.shows++ }
func (h *recordingHandle) Hide() { h.mutations++; h.hides++ }

func (h *recordingHandle) SetSize(w, ht float64) {
	h.sizes = append(h.sizes, [2]float64{w, ht})
}

func (h *recordingHandle) Subscribe(e EventType, fn func(Event)) func() {
	h.mutations++
	h.subscribes[e]++
	h.active[e] = fn
	return func() {
		h.mutations++
		h.unsubscribes[e]++
		delete(h.active, e)
	}
}

func (h *recordingHandle) AppendChild(child Handle) {
	h.children = append(h.children, child.(*recordingHandle))
}

func (h *recordingHandle) InsertChildBefore(child, before Handle) {
	ch := child.(*recordingHandle)
	ref := before.(*recordingHandle)
	idx := len(h.children)
	for i, c := range h.children {
		if c == ref {
			idx = i
			break
		}
	}
	h.children = append(h.children, nil)
	copy(h.children[idx+1:], h.children[idx:])
	h.children[idx] = ch
}

func (h *recordingHandle) RemoveChild(child Handle) {
	ch := child.(*recordingHandle)
	for i, c := range h.children {
		if c == ch {
			h.children = append(h.children[:i], h.children[i+1:]...)
			return
		}
	}
}

func (h *recordingHandle) FillSolid(c Color) {
	h.mutations++
	h.solidFills = append(h.solidFills, c)
}

func (h *recordingHandle) FillLinearGradient(g *LinearGradient) {
	h.mutations++
	h.linearFills = append(h.linearFills, g)
}

func (h *recordingHandle) FillRadialGradient(g *RadialGradient) {
	h.mutations++
	h.radialFills = append(h.radialFills, g)
}

func (h *recordingHandle) FillPattern(p *Pattern) {
	h.mutations++
	h.patternFills = append(h.patternFills, p)
}

func (h *recordingHandle) SetStroke(c *Color, width float64, cap StrokeCap, join StrokeJoin, dash []float64) {
	h.mutations++
	h.strokes = append(h.strokes, strokeCall{color: c, width: width, cap: cap, join: join, dash: dash})
}

func (h *recordingHandle) DrawPath(path *Path, strokeWidth float64, stroke *Color) {
	h.mutations++
	h.draws = append(h.draws, drawCall{path: path, strokeWidth: strokeWidth, stroke: stroke})
}

func (h *recordingHandle) DrawText(content string, font *Font, align TextAlign, path *Path) {
	h.mutations++
	h.textDraws = append(h.textDraws, textDrawCall{content: content, font: font, align: align, path: path})
}

// fire simulates the backend delivering an event of the given type.
func (h *recordingHandle) fire(e EventType, ev Event) {
	if fn, ok := h.active[e]; ok {
		fn(ev)
	}
}

// backendHandle extracts the spy handle from a node.
func backendHandle(t *testing.T, n *SceneNode) *recordingHandle {
	t.Helper()
	h, ok := n.Handle().(*recordingHandle)
	if !ok {
		t.Fatalf("handle is %T, want *recordingHandle", n.Handle())
	}
	return h
}
