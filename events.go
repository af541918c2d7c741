package rowan

// Event subscription management. Each SceneNode keeps two fixed-size
// tables indexed by EventType: the current handler values (read at
// dispatch time) and the active backend unsubscribe functions. The two are
// deliberately decoupled — replacing a handler value is free, only
// presence transitions touch the backend.

// listenTo reconciles one event type against the handler declared in the
// latest property snapshot.
//
//   - handler present, no subscription: subscribe once and keep the
//     unsubscribe function.
//   - handler present, subscription active: structurally a no-op; the
//     dispatcher reads the stored handler value at dispatch time.
//   - handler absent, subscription active: unsubscribe and clear.
//   - handler absent, none active: no-op.
func (n *SceneNode) listenTo(e EventType, h Handler) {
	n.handlers[e] = h
	switch {
	case h != nil && n.unsubscribe[e] == nil:
		n.unsubscribe[e] = n.handle.Subscribe(e, func(ev Event) {
			n.dispatch(e, ev)
		})
	case h == nil && n.unsubscribe[e] != nil:
		n.unsubscribe[e]()
		n.unsubscribe[e] = nil
	}
}

// dispatch delivers a backend event through the handler currently stored
// for its type. A node whose handler was cleared between the backend
// callback firing and delivery simply drops the event.
func (n *SceneNode) dispatch(e EventType, ev Event) {
	if h := n.handlers[e]; h != nil {
		h.HandleEvent(ev)
	}
}

// releaseSubscriptions tears down every active subscription and clears the
// handler table. Called when the node is removed from the tree, before the
// handle is discarded, so no backend callback can target a dead node.
func (n *SceneNode) releaseSubscriptions() {
	for e := range n.unsubscribe {
		if n.unsubscribe[e] != nil {
			n.unsubscribe[e]()
			n.unsubscribe[e] = nil
		}
		n.handlers[e] = nil
	}
}
