// Package rowan synchronizes a declarative description of a vector scene
// with a retained-mode drawing backend.
//
// Rowan sits between a tree reconciler and a drawing surface. The
// reconciler decides when nodes are created, moved, and destroyed, and
// hands rowan pairs of property snapshots (old, new); rowan decides which
// imperative backend operations must fire to bring the retained node in
// sync, and fires the minimum necessary set — never a redundant transform,
// fill, or redraw call.
//
// # Nodes and properties
//
// Every retained element is a [SceneNode] of one of four kinds: group,
// clipping rectangle, shape, or text. A node's desired state at one point
// in time is a [Props] snapshot:
//
//	shape := rowan.NewInstance(surface, rowan.NodeKindShape, &rowan.Props{
//		D:           rowan.NewPath().MoveTo(0, 0).LineTo(80, 0).LineTo(40, 60).Close(),
//		Fill:        rowan.Solid{Color: rowan.Color{R: 0.3, G: 0.7, B: 1, A: 1}},
//		Stroke:      &rowan.Color{A: 1},
//		StrokeWidth: 2,
//	})
//	rowan.AppendToContainer(canvas.Root(), shape)
//
// Updating is a commit of the old and new snapshots; only operations whose
// inputs changed reach the backend:
//
//	shape.CommitUpdate(oldProps, newProps)
//
// # Backends
//
// The backend is any implementation of [Surface]; its node handles are
// opaque to rowan beyond the [Handle] operations. The ebitencanvas
// subpackage provides a reference backend on [Ebitengine].
//
// # Reconcilers
//
// [Host] exposes the host-config style call table (create instance, append
// child, insert before, commit update, ...) an external reconciler drives.
//
// # Concurrency
//
// Rowan is single-threaded and synchronous: every operation runs to
// completion on the caller's goroutine, and the embedding reconciler is
// responsible for serializing all mutations to a scene. Separate scenes
// are fully independent and may live on separate goroutines.
//
// [Ebitengine]: https://ebitengine.org
package rowan
