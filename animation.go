package rowan

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// PropsTween animates a node between two property snapshots. Each Update
// builds an interpolated snapshot and commits it through the normal diff
// machinery, so backend operations still fire only for properties that
// actually moved: tweening opacity alone never re-sends the transform.
//
// Position, rotation, resolved scale, and opacity are interpolated; every
// other field is taken from the destination snapshot. There is no global
// animation manager — callers drive Update themselves, typically once per
// frame.
type PropsTween struct {
	node     *SceneNode
	from, to *Props
	tween    *gween.Tween
	prev     *Props
	Done     bool
}

// NewPropsTween creates a tween from the node's current snapshot to a
// target snapshot over duration seconds. The from snapshot must be the
// one most recently committed to the node.
func NewPropsTween(node *SceneNode, from, to *Props, duration float32, fn ease.TweenFunc) *PropsTween {
	return &PropsTween{
		node:  node,
		from:  from,
		to:    to,
		tween: gween.New(0, 1, duration, fn),
		prev:  from,
	}
}

// Update advances the tween by dt seconds and commits the interpolated
// snapshot. Once the tween finishes, Done is set and further calls are
// no-ops.
func (t *PropsTween) Update(dt float32) {
	if t.Done {
		return
	}
	progress, finished := t.tween.Update(dt)
	cur := lerpProps(t.from, t.to, float64(progress))
	t.node.CommitUpdate(t.prev, cur)
	t.prev = cur
	t.Done = finished
}

// lerpProps interpolates the animatable fields between two snapshots at
// parameter v in [0, 1]; all other fields come from the destination.
func lerpProps(from, to *Props, v float64) *Props {
	out := *to

	out.X = lerp(from.X, to.X, v)
	out.Y = lerp(from.Y, to.Y, v)
	out.Rotation = lerp(from.Rotation, to.Rotation, v)

	fsx, fsy := from.scale()
	tsx, tsy := to.scale()
	out.Scale = nil
	out.ScaleX = Float(lerp(fsx, tsx, v))
	out.ScaleY = Float(lerp(fsy, tsy, v))

	out.Opacity = Float(lerp(from.opacity(), to.opacity(), v))

	return &out
}

func lerp(a, b, v float64) float64 {
	return a + (b-a)*v
}
