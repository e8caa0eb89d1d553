package grasp

import "time"

// Synthetic input injection: convenience builders that synthesize complete,
// correctly-timed pointer sequences for demos and automated interaction
// tests. Injected sequences are backdated so they never push the engine
// clock ahead of real time.

// Injected contacts use a high ID range so they cannot collide with live
// platform pointers (a Source uses small slot indices).
const injectPointerID = 900

// InjectPress feeds a single press for the injected contact at (x, y).
func (e *Engine) InjectPress(target TargetID, x, y float64) {
	e.ProcessEvent(PointerEvent{Target: target, ID: injectPointerID, Phase: Press, X: x, Y: y, Time: e.clock()})
}

// InjectMove feeds a single move for the injected contact to (x, y).
func (e *Engine) InjectMove(target TargetID, x, y float64) {
	e.ProcessEvent(PointerEvent{Target: target, ID: injectPointerID, Phase: Move, X: x, Y: y, Time: e.clock()})
}

// InjectRelease feeds a single release for the injected contact at (x, y).
func (e *Engine) InjectRelease(target TargetID, x, y float64) {
	e.ProcessEvent(PointerEvent{Target: target, ID: injectPointerID, Phase: Release, X: x, Y: y, Time: e.clock()})
}

// InjectTap synthesizes a 50 ms press-and-release at (x, y). The tap is held
// through the double-tap window like any other, so it reaches listeners on a
// later Update (or immediately forms a double-tap with a second InjectTap).
func (e *Engine) InjectTap(target TargetID, x, y float64) {
	now := e.clock()
	e.ProcessEvent(PointerEvent{Target: target, ID: injectPointerID, Phase: Press, X: x, Y: y, Time: now.Add(-50 * time.Millisecond)})
	e.ProcessEvent(PointerEvent{Target: target, ID: injectPointerID, Phase: Release, X: x, Y: y, Time: now})
}

// InjectLongPress synthesizes a hold at (x, y) long enough to confirm a
// long-press under the target's configured window.
func (e *Engine) InjectLongPress(target TargetID, x, y float64) {
	hold := e.targetConfig(target).LongPressTimeout + 50*time.Millisecond
	now := e.clock()
	e.ProcessEvent(PointerEvent{Target: target, ID: injectPointerID, Phase: Press, X: x, Y: y, Time: now.Add(-hold)})
	e.ProcessEvent(PointerEvent{Target: target, ID: injectPointerID, Phase: Release, X: x, Y: y, Time: now})
}

// InjectSwipe synthesizes a straight drag from (fromX, fromY) to
// (toX, toY) over the given duration, with interpolated moves, releasing at
// the destination. Fast short durations produce swipes; slow long ones
// produce pans; classification is up to the engine, same as live input.
func (e *Engine) InjectSwipe(target TargetID, fromX, fromY, toX, toY float64, duration time.Duration) {
	const steps = 8
	if duration <= 0 {
		duration = 100 * time.Millisecond
	}
	end := e.clock()
	start := end.Add(-duration)
	e.ProcessEvent(PointerEvent{Target: target, ID: injectPointerID, Phase: Press, X: fromX, Y: fromY, Time: start})
	for i := 1; i <= steps; i++ {
		f := float64(i) / (steps + 1)
		e.ProcessEvent(PointerEvent{
			Target: target,
			ID:     injectPointerID,
			Phase:  Move,
			X:      fromX + (toX-fromX)*f,
			Y:      fromY + (toY-fromY)*f,
			Time:   start.Add(time.Duration(f * float64(duration))),
		})
	}
	e.ProcessEvent(PointerEvent{Target: target, ID: injectPointerID, Phase: Release, X: toX, Y: toY, Time: end})
}

// InjectPinch synthesizes a two-finger horizontal pinch centered at
// (cx, cy), spreading the contacts from fromDist to toDist apart over
// 100 ms. fromDist < toDist zooms in; the reverse zooms out.
func (e *Engine) InjectPinch(target TargetID, cx, cy, fromDist, toDist float64) {
	const steps = 8
	const duration = 100 * time.Millisecond
	id0, id1 := injectPointerID, injectPointerID+1

	end := e.clock()
	start := end.Add(-duration)
	e.ProcessEvent(PointerEvent{Target: target, ID: id0, Phase: Press, X: cx - fromDist/2, Y: cy, Time: start})
	e.ProcessEvent(PointerEvent{Target: target, ID: id1, Phase: Press, X: cx + fromDist/2, Y: cy, Time: start})
	for i := 1; i <= steps; i++ {
		f := float64(i) / steps
		d := fromDist + (toDist-fromDist)*f
		t := start.Add(time.Duration(f * float64(duration)))
		e.ProcessEvent(PointerEvent{Target: target, ID: id0, Phase: Move, X: cx - d/2, Y: cy, Time: t})
		e.ProcessEvent(PointerEvent{Target: target, ID: id1, Phase: Move, X: cx + d/2, Y: cy, Time: t})
	}
	e.ProcessEvent(PointerEvent{Target: target, ID: id0, Phase: Release, X: cx - toDist/2, Y: cy, Time: end})
	e.ProcessEvent(PointerEvent{Target: target, ID: id1, Phase: Release, X: cx + toDist/2, Y: cy, Time: end})
}
