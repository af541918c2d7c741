package rowan

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication, if required, occurs inside the backend.
type Color struct {
	R, G, B, A float64
}

// ColorBlack is the default paint value (opaque black, matching the
// conventional default of vector-drawing surfaces).
var ColorBlack = Color{0, 0, 0, 1}

// NodeKind distinguishes the apply algorithm bound to a SceneNode.
// The kind is fixed at creation time and immutable thereafter.
type NodeKind uint8

const (
	NodeKindGroup             NodeKind = iota // container with no visual output of its own
	NodeKindClippingRectangle                 // container that clips children to a rectangle
	NodeKindShape                             // drawable vector path
	NodeKindText                              // drawable text run, optionally laid out on a path
)

// String returns the kind's name for diagnostics.
func (k NodeKind) String() string {
	switch k {
	case NodeKindGroup:
		return "Group"
	case NodeKindClippingRectangle:
		return "ClippingRectangle"
	case NodeKindShape:
		return "Shape"
	case NodeKindText:
		return "Text"
	default:
		return "Unknown"
	}
}

// EventType identifies one of the fixed pointer event kinds a node can
// subscribe to.
type EventType uint8

const (
	EventClick     EventType = iota // press then release over the same node
	EventMouseMove                  // pointer moved while over the node
	EventMouseOver                  // pointer entered the node's bounds
	EventMouseOut                   // pointer left the node's bounds
	EventMouseUp                    // pointer button released over the node
	EventMouseDown                  // pointer button pressed over the node

	numEventTypes = 6
)

// eventNames maps each EventType to the backend event name it subscribes
// under. The table is fixed; backends key their subscription storage on it.
var eventNames = [numEventTypes]string{
	"click", "mousemove", "mouseover", "mouseout", "mouseup", "mousedown",
}

// String returns the backend event name for this event type.
func (e EventType) String() string {
	if int(e) < len(eventNames) {
		return eventNames[e]
	}
	return "unknown"
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button
)

// Event carries the data delivered to a subscribed handler when a backend
// pointer event fires on a node.
type Event struct {
	Type             EventType
	GlobalX, GlobalY float64
	LocalX, LocalY   float64
	Button           MouseButton
}

// Handler receives events dispatched to a node. Handlers are read from the
// node's property snapshot at dispatch time, so replacing a handler value
// between commits never requires resubscription.
type Handler interface {
	HandleEvent(Event)
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc func(Event)

// HandleEvent calls f(e).
func (f HandlerFunc) HandleEvent(e Event) { f(e) }

// TextAlign controls horizontal text alignment.
type TextAlign uint8

const (
	TextAlignLeft   TextAlign = iota // align text to the left edge (default)
	TextAlignCenter                  // center text horizontally
	TextAlignRight                   // align text to the right edge
)

// StrokeCap selects the line cap style for stroked paths.
type StrokeCap uint8

const (
	StrokeCapButt   StrokeCap = iota // flat cap at the endpoint (default)
	StrokeCapRound                   // semicircular cap
	StrokeCapSquare                  // square cap extending half the width
)

// StrokeJoin selects the join style where stroked segments meet.
type StrokeJoin uint8

const (
	StrokeJoinMiter StrokeJoin = iota // sharp corner (default)
	StrokeJoinRound                   // rounded corner
	StrokeJoinBevel                   // flattened corner
)
