package grasp

import "time"

// Phase is the lifecycle stage of one pointer contact.
type Phase uint8

const (
	Press   Phase = iota // contact started
	Move                 // contact moved
	Release              // contact ended normally
	Cancel               // contact ended abnormally (no gesture may confirm)
)

// String returns the lowercase phase name.
func (p Phase) String() string {
	switch p {
	case Press:
		return "press"
	case Move:
		return "move"
	case Release:
		return "release"
	case Cancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// PointerEvent is a normalized platform input event: one contact identity,
// one position, one instant. Platform sources (see Source) translate native
// input into these; tests and replayed traces feed them directly.
//
// A zero Time is filled from the engine clock on ingestion. The engine is
// defensive about ordering: a Move or Release for an untracked ID is
// ignored, and a duplicate Press for a live ID updates the existing point
// rather than duplicating it.
type PointerEvent struct {
	Target TargetID
	ID     int
	Phase  Phase
	X, Y   float64
	Time   time.Time
}
