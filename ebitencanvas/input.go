package ebitencanvas

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/phanxgames/rowan"
)

// Update polls pointer input and dispatches rowan events to subscribed
// nodes. Call it once per frame from the game loop, before Draw.
//
// Dispatch targets the topmost visible shape or text node under the
// cursor; events do not bubble — bubbling, if desired, belongs to the
// embedding component framework.
func (c *Canvas) Update() {
	c.refreshWorld(c.root, rowan.Identity)

	mx, my := ebiten.CursorPosition()
	gx, gy := float64(mx), float64(my)
	target := c.hitTest(c.root, gx, gy)

	// Hover transitions fire mouseover/mouseout.
	if target != c.hover {
		if c.hover != nil {
			c.emit(c.hover, rowan.EventMouseOut, gx, gy, rowan.MouseButtonLeft)
		}
		if target != nil {
			c.emit(target, rowan.EventMouseOver, gx, gy, rowan.MouseButtonLeft)
		}
		c.hover = target
	}
	c.updateCursorShape(target)

	if (mx != c.lastX || my != c.lastY) && target != nil {
		c.emit(target, rowan.EventMouseMove, gx, gy, rowan.MouseButtonLeft)
	}
	c.lastX, c.lastY = mx, my

	for eb, rb := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(eb) {
			if target != nil {
				c.emit(target, rowan.EventMouseDown, gx, gy, rb)
			}
			c.pressTarget = target
		}
		if inpututil.IsMouseButtonJustReleased(eb) {
			if target != nil {
				c.emit(target, rowan.EventMouseUp, gx, gy, rb)
				// A click is a press and a release over the same node.
				if target == c.pressTarget {
					c.emit(target, rowan.EventClick, gx, gy, rb)
				}
			}
			c.pressTarget = nil
		}
	}
}

var mouseButtons = map[ebiten.MouseButton]rowan.MouseButton{
	ebiten.MouseButtonLeft:   rowan.MouseButtonLeft,
	ebiten.MouseButtonRight:  rowan.MouseButtonRight,
	ebiten.MouseButtonMiddle: rowan.MouseButtonMiddle,
}

// refreshWorld recomputes world transforms ahead of hit testing, so input
// is correct even if Draw has not run since the last commit.
func (c *Canvas) refreshWorld(n *node, parent rowan.Matrix) {
	n.world = parent.Mul(n.transform)
	for _, child := range n.children {
		c.refreshWorld(child, n.world)
	}
}

// hitTest returns the topmost visible shape or text node containing the
// world-space point, walking children in reverse draw order.
func (c *Canvas) hitTest(n *node, gx, gy float64) *node {
	if !n.visible {
		return nil
	}
	if n.kind == kindClip && n.width > 0 && n.height > 0 {
		lx, ly := n.world.Invert().Apply(gx, gy)
		if lx < 0 || ly < 0 || lx > n.width || ly > n.height {
			return nil
		}
	}
	for i := len(n.children) - 1; i >= 0; i-- {
		if hit := c.hitTest(n.children[i], gx, gy); hit != nil {
			return hit
		}
	}
	if n.contains(c, gx, gy) {
		return n
	}
	return nil
}

// contains reports whether the world-space point falls inside this node's
// own geometry (shape path bounds or measured text box).
func (n *node) contains(c *Canvas, gx, gy float64) bool {
	lx, ly := n.world.Invert().Apply(gx, gy)
	switch n.kind {
	case kindShape:
		if n.path == nil || len(n.path.Elements()) == 0 {
			return false
		}
		minX, minY, maxX, maxY := n.path.Bounds()
		return lx >= minX && lx <= maxX && ly >= minY && ly <= maxY
	case kindText:
		if n.text == "" {
			return false
		}
		face := c.face(n.font)
		if face == nil {
			return false
		}
		w, h := text.Measure(n.text, face, face.Metrics().HLineGap)
		x0 := 0.0
		switch n.align {
		case rowan.TextAlignCenter:
			x0 = -w / 2
		case rowan.TextAlignRight:
			x0 = -w
		}
		return lx >= x0 && lx <= x0+w && ly >= 0 && ly <= h
	}
	return false
}

// emit delivers an event to the node's subscribers for that type.
func (c *Canvas) emit(n *node, e rowan.EventType, gx, gy float64, button rowan.MouseButton) {
	subs := n.subs[e]
	if len(subs) == 0 {
		return
	}
	lx, ly := n.world.Invert().Apply(gx, gy)
	ev := rowan.Event{
		Type:    e,
		GlobalX: gx,
		GlobalY: gy,
		LocalX:  lx,
		LocalY:  ly,
		Button:  button,
	}
	// Copy: a handler may unsubscribe during dispatch.
	for _, s := range append([]subscriber(nil), subs...) {
		s.fn(ev)
	}
}

// updateCursorShape reflects the hovered node's declared cursor. Only the
// pointer shape is distinguished; anything else falls back to the default.
func (c *Canvas) updateCursorShape(target *node) {
	shape := ebiten.CursorShapeDefault
	for n := target; n != nil; n = n.parent {
		if n.cursor == "pointer" {
			shape = ebiten.CursorShapePointer
			break
		}
	}
	ebiten.SetCursorShape(shape)
}
