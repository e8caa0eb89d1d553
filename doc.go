// Package grasp is a multitouch gesture recognition engine.
//
// Grasp converts raw, unordered pointer and touch events into disambiguated
// semantic gestures (tap, double-tap, long-press, swipe, pan, pinch, and
// rotate) with configurable timing and distance thresholds. It was extracted
// from the touch layer of a calculator front-end and has no opinion about
// what a gesture should do: it only classifies and emits, and callers attach
// meaning through listeners.
//
// # Quick start
//
// Create an engine, register a listener for the gestures you care about, and
// feed it pointer events:
//
//	engine := grasp.New()
//	engine.AddGestureListener("keypad", []grasp.GestureType{grasp.Tap, grasp.Swipe},
//		func(ev grasp.Event) {
//			fmt.Println(ev.Type, ev.Direction)
//		}, nil)
//
//	engine.ProcessEvent(grasp.PointerEvent{Target: "keypad", Phase: grasp.Press, X: 10, Y: 10})
//	engine.ProcessEvent(grasp.PointerEvent{Target: "keypad", Phase: grasp.Release, X: 10, Y: 10})
//	engine.Update() // advances timers (double-tap window, long-press, cleanup)
//
// In an [Ebitengine] game, attach a [Source] instead and call [Source.Update]
// once per frame; it polls the mouse and touch state and pumps the engine
// for you.
//
// # Model
//
// The engine is cooperative and single-goroutine, like a game loop: all
// state transitions happen synchronously inside [Engine.ProcessEvent] and
// [Engine.Update], and listener callbacks are invoked synchronously during
// dispatch. Timing windows (tap vs. double-tap, long-press, session
// abandonment) are cancellable deadlines advanced by the engine clock rather
// than background timers, so recognition is deterministic and testable.
// An Engine must not be shared across goroutines without external locking.
//
// Per-registration configuration is merged over the engine defaults exactly
// once, at registration time, with [MergeConfig]. Recognition statistics are
// available at any time through [Engine.GetStats].
//
// Recorded interactions can be saved and replayed as JSON traces; see
// [Trace] and [Recorder].
//
// [Ebitengine]: https://ebitengine.org
package grasp
