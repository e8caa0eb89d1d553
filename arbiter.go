package grasp

import "time"

// pendingTap is a confirmed tap held back while the double-tap window is
// open. If a second matching tap lands inside the window the pair becomes a
// double-tap; otherwise the deadline promotes it to a plain tap.
type pendingTap struct {
	target   TargetID
	x, y     float64
	pressed  time.Time
	released time.Time
	duration time.Duration
	deadline time.Time
	cfg      Config
}

// The arbiter resolves competing classifier outcomes. It is the single
// authority over the engine's deadlines (long-press, double-tap window,
// session abandonment), so no two timers can race for the same session.
// All of it runs synchronously inside ProcessEvent and Update.

// advance fires every deadline that has elapsed by now: pending taps are
// promoted, held points become long-presses, and stuck sessions are
// abandoned. ProcessEvent calls this before applying each event, so
// deadline ordering is deterministic regardless of how often Update runs.
func (e *Engine) advance(now time.Time) {
	for _, pt := range e.pending {
		if !now.Before(pt.deadline) {
			e.promoteTap(pt)
		}
	}
	for target, s := range e.sessions {
		if classifyLongPress(s, now) == confirmed {
			at := s.longPressAt
			s.longPressed = true
			s.longPressAt = time.Time{}
			e.dispatch(Event{
				Type:     LongPress,
				Target:   target,
				Time:     at,
				Duration: s.cfg.LongPressTimeout,
			}, true)
		}
		if !now.Before(s.abandonAt) {
			// Release events never arrived; force-clear without emitting.
			delete(e.sessions, target)
		}
	}
}

// promoteTap dispatches a pending tap as a plain tap.
func (e *Engine) promoteTap(pt *pendingTap) {
	delete(e.pending, pt.target)
	e.dispatch(Event{
		Type:     Tap,
		Target:   pt.target,
		Time:     pt.released,
		Duration: pt.duration,
	}, true)
}

// handlePress routes a press into a new or existing session.
func (e *Engine) handlePress(ev PointerEvent) {
	s := e.sessions[ev.Target]
	if s == nil {
		e.sessions[ev.Target] = newSession(ev.Target, e.targetConfig(ev.Target), ev)
		return
	}
	had := len(s.points)
	s.addPoint(ev)
	if len(s.points) == 2 && had < 2 {
		s.beginPair()
	}
}

// handleMove updates the session and evaluates the continuous classifiers:
// pan for single-point sessions, pinch and rotate for two-point sessions.
func (e *Engine) handleMove(s *session, ev PointerEvent) {
	p, ok := s.points[ev.ID]
	if !ok {
		return // move for an untracked contact
	}
	p.update(ev.X, ev.Y, ev.Time)
	s.recomputeCentroid(ev.Time)
	s.touch(ev.Time)

	if s.soleSingle() {
		e.moveSingle(s, p, ev)
		return
	}
	if len(s.points) == 2 {
		e.movePair(s, ev)
	}
}

func (e *Engine) moveSingle(s *session, p *point, ev PointerEvent) {
	if !s.moved && p.displacement() > s.cfg.TapThreshold {
		// Tap and long-press are out of the race.
		s.moved = true
		s.longPressAt = time.Time{}
	}
	if s.longPressed {
		return
	}
	if classifyPan(s, p) != confirmed {
		return
	}
	if !s.panning {
		s.panning = true
		// The confirmation update covers all movement since the press.
		e.dispatch(Event{
			Type:     Pan,
			Target:   s.target,
			Time:     ev.Time,
			Duration: ev.Time.Sub(p.start),
			Velocity: p.instantVelocity(),
			DeltaX:   p.x - p.startX,
			DeltaY:   p.y - p.startY,
		}, true)
	} else {
		e.dispatch(Event{
			Type:     Pan,
			Target:   s.target,
			Time:     ev.Time,
			Duration: ev.Time.Sub(p.start),
			Velocity: p.instantVelocity(),
			DeltaX:   p.x - s.prevX,
			DeltaY:   p.y - s.prevY,
		}, false)
	}
	s.prevX, s.prevY = p.x, p.y
}

// movePair evaluates pinch and rotate independently; both may fire for the
// same update.
func (e *Engine) movePair(s *session, ev PointerEvent) {
	dist, angle := s.pairDistAngle()

	if classifyPinch(s, dist) == confirmed {
		first := !s.pinching
		s.pinching = true
		e.dispatch(Event{
			Type:   Pinch,
			Target: s.target,
			Time:   ev.Time,
			Scale:  clampScale(s.cfg, dist, s.baseDist),
		}, first)
	}
	if classifyRotate(s, angle) == confirmed {
		first := !s.rotating
		s.rotating = true
		e.dispatch(Event{
			Type:     Rotate,
			Target:   s.target,
			Time:     ev.Time,
			Rotation: angleDeltaDeg(s.baseAngle, angle),
		}, first)
	}
}

// handleRelease removes the contact and, when the session empties, runs the
// single-point release race.
func (e *Engine) handleRelease(s *session, ev PointerEvent) {
	if p, ok := s.points[ev.ID]; ok {
		p.update(ev.X, ev.Y, ev.Time)
	}
	p := s.removePoint(ev.ID, ev.Time)
	if p == nil {
		return // release for an untracked contact
	}
	if len(s.points) > 0 {
		if len(s.points) == 2 {
			s.beginPair() // the surviving pair gets a fresh baseline
		}
		return
	}
	if !s.multi && !s.longPressed {
		e.finishSingle(s, p, ev)
	}
	delete(e.sessions, s.target)
}

// finishSingle arbitrates a completed single-point interaction at release:
// swipe is attempted first, then tap (held pending for the double-tap
// window), then a terminal pan update. At most one branch emits.
func (e *Engine) finishSingle(s *session, p *point, ev PointerEvent) {
	duration := ev.Time.Sub(p.start)
	dx := p.x - p.startX
	dy := p.y - p.startY

	if classifySwipe(s, p) == confirmed {
		e.dispatch(Event{
			Type:      Swipe,
			Target:    s.target,
			Time:      ev.Time,
			Duration:  duration,
			Direction: dominantDirection(dx, dy),
			Velocity:  p.averageVelocity(),
			DeltaX:    dx,
			DeltaY:    dy,
		}, true)
		return
	}

	if classifyTap(s, p, ev.Time) == confirmed {
		prev := e.pending[s.target]
		if classifyDoubleTap(prev, p.x, p.y, ev.Time) == confirmed {
			delete(e.pending, s.target)
			e.dispatch(Event{
				Type:     DoubleTap,
				Target:   s.target,
				Time:     ev.Time,
				Duration: ev.Time.Sub(prev.pressed),
			}, true)
			return
		}
		if prev != nil {
			// The earlier tap never found a partner; let it out now.
			e.promoteTap(prev)
		}
		e.pending[s.target] = &pendingTap{
			target:   s.target,
			x:        p.x,
			y:        p.y,
			pressed:  p.start,
			released: ev.Time,
			duration: duration,
			deadline: ev.Time.Add(s.cfg.DoubleTapTimeout),
			cfg:      s.cfg,
		}
		return
	}

	if s.panning {
		e.dispatch(Event{
			Type:     Pan,
			Target:   s.target,
			Time:     ev.Time,
			Duration: duration,
			Velocity: p.instantVelocity(),
			DeltaX:   p.x - s.prevX,
			DeltaY:   p.y - s.prevY,
		}, false)
	}
}

// handleCancel drops the contact without letting any gesture confirm.
func (e *Engine) handleCancel(s *session, ev PointerEvent) {
	if s.removePoint(ev.ID, ev.Time) == nil {
		return
	}
	if len(s.points) == 2 {
		s.beginPair()
	}
	if len(s.points) == 0 {
		delete(e.sessions, s.target)
	}
}
