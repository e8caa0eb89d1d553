package grasp

import "time"

// GestureType identifies one class of recognized gesture.
type GestureType uint8

const (
	Tap       GestureType = iota // quick touch and release without movement
	DoubleTap                    // two taps at the same spot within the double-tap window
	LongPress                    // touch held in place past the long-press window
	Swipe                        // fast directional flick, confirmed at release
	Pinch                        // two-finger scale change
	Pan                          // slow drag, continuous updates
	Rotate                       // two-finger angular change

	gestureTypeCount
)

// String returns the wire name of the gesture type ("tap", "double-tap", ...).
func (t GestureType) String() string {
	switch t {
	case Tap:
		return "tap"
	case DoubleTap:
		return "double-tap"
	case LongPress:
		return "long-press"
	case Swipe:
		return "swipe"
	case Pinch:
		return "pinch"
	case Pan:
		return "pan"
	case Rotate:
		return "rotate"
	default:
		return "unknown"
	}
}

// AllGestureTypes lists every gesture type, in declaration order.
func AllGestureTypes() []GestureType {
	return []GestureType{Tap, DoubleTap, LongPress, Swipe, Pinch, Pan, Rotate}
}

// Direction is the dominant axis and sign of a swipe. The coordinate system
// has its origin at the top-left with Y increasing downward, so DirectionDown
// means increasing Y.
type Direction uint8

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
)

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "none"
	}
}

// TargetID is an opaque handle naming one interactive surface. Callers choose
// the naming scheme ("display", "keypad", "history-panel"); the engine only
// compares IDs for equality. One gesture session is tracked per target
// regardless of how many listeners are registered on it.
type TargetID string

// TouchPoint is an immutable snapshot of one contact point. Snapshots are
// retained in a point's history for velocity and direction computation.
type TouchPoint struct {
	ID   int
	X, Y float64
	Time time.Time
}

// Event is one confirmed gesture instance, emitted once per confirmation
// (continuous gestures additionally emit update events while active).
// Fields beyond Type, Target, and Time are valid per gesture type:
//
//	Tap, DoubleTap, LongPress: Duration
//	Swipe:                     Duration, Direction, Velocity, DeltaX, DeltaY
//	Pan:                       Duration, Velocity, DeltaX, DeltaY
//	Pinch:                     Scale
//	Rotate:                    Rotation
type Event struct {
	Type   GestureType
	Target TargetID
	Time   time.Time

	Duration  time.Duration
	Direction Direction
	Scale     float64
	Velocity  float64 // px/sec
	DeltaX    float64
	DeltaY    float64
	Rotation  float64 // degrees, positive clockwise
}
