package grasp

import (
	"math"
	"time"
)

// verdict is a classifier outcome for the current session state.
type verdict uint8

const (
	pending   verdict = iota // thresholds not crossed yet; keep evaluating
	confirmed                // gesture recognized
	rejected                 // gesture impossible for this interaction
)

// Classifiers are small state machines re-evaluated on every session update.
// Each reads session state and one merged Config; none mutates the session.
// Tap, double-tap, long-press, swipe, and pan are mutually exclusive
// single-point outcomes; pinch and rotate evaluate independently on
// two-point sessions and may both confirm.

// classifyTap evaluates a single-point release as a tap.
func classifyTap(s *session, p *point, released time.Time) verdict {
	if s.multi || s.moved || s.panning || s.longPressed {
		return rejected
	}
	// The release coordinates count even when no move event was reported.
	if p.displacement() > s.cfg.TapThreshold {
		return rejected
	}
	if released.Sub(p.start) > s.cfg.TapTimeout {
		return rejected
	}
	return confirmed
}

// classifyDoubleTap evaluates a just-confirmed tap against the previous
// pending tap on the same target.
func classifyDoubleTap(prev *pendingTap, x, y float64, released time.Time) verdict {
	if prev == nil {
		return pending
	}
	if released.Sub(prev.released) > prev.cfg.DoubleTapTimeout {
		return rejected
	}
	if math.Hypot(x-prev.x, y-prev.y) > prev.cfg.TapThreshold {
		return rejected
	}
	return confirmed
}

// classifyLongPress evaluates a held single point against its deadline.
func classifyLongPress(s *session, now time.Time) verdict {
	if !s.soleSingle() || s.moved || s.longPressed || s.longPressAt.IsZero() {
		return rejected
	}
	if now.Before(s.longPressAt) {
		return pending
	}
	return confirmed
}

// classifySwipe evaluates a single-point release as a swipe: enough net
// displacement and enough average velocity. A rejected swipe falls through
// to tap or a terminal pan update in the arbiter.
func classifySwipe(s *session, p *point) verdict {
	if s.multi || s.longPressed {
		return rejected
	}
	if p.displacement() < s.cfg.SwipeThreshold {
		return rejected
	}
	if p.averageVelocity() < s.cfg.SwipeVelocity {
		return rejected
	}
	return confirmed
}

// classifyPan evaluates single-point movement as a pan. Pan is the residual
// classification for drags; once confirmed it stays confirmed until release.
func classifyPan(s *session, p *point) verdict {
	if s.multi || s.longPressed {
		return rejected
	}
	if s.panning {
		return confirmed
	}
	if p.displacement() < s.cfg.PanThreshold {
		return pending
	}
	return confirmed
}

// classifyPinch evaluates two-point distance change. A third active contact
// suspends it until the session is back to exactly two points.
func classifyPinch(s *session, dist float64) verdict {
	if len(s.points) != 2 {
		return rejected
	}
	if s.pinching {
		return confirmed
	}
	if math.Abs(dist-s.baseDist) < s.cfg.PinchThreshold {
		return pending
	}
	return confirmed
}

// classifyRotate evaluates two-point angular change. Like pinch, it requires
// exactly two active points.
func classifyRotate(s *session, angle float64) verdict {
	if len(s.points) != 2 {
		return rejected
	}
	if s.rotating {
		return confirmed
	}
	if math.Abs(angleDeltaDeg(s.baseAngle, angle)) < s.cfg.RotationThreshold {
		return pending
	}
	return confirmed
}

// dominantDirection maps a net displacement onto the dominant axis and sign.
// Ties go to the horizontal axis.
func dominantDirection(dx, dy float64) Direction {
	if math.Abs(dx) >= math.Abs(dy) {
		if dx >= 0 {
			return DirectionRight
		}
		return DirectionLeft
	}
	if dy >= 0 {
		return DirectionDown
	}
	return DirectionUp
}

// clampScale converts a distance ratio to a pinch scale within
// [MinScale, MaxScale].
func clampScale(cfg Config, dist, baseDist float64) float64 {
	scale := 1.0
	if baseDist > 0 {
		scale = dist / baseDist
	}
	if scale < cfg.MinScale {
		scale = cfg.MinScale
	}
	if scale > cfg.MaxScale {
		scale = cfg.MaxScale
	}
	return scale
}

// angleDeltaDeg returns the angular change from base to angle in degrees,
// normalized to (-180, 180].
func angleDeltaDeg(base, angle float64) float64 {
	deg := (angle - base) * 180 / math.Pi
	for deg > 180 {
		deg -= 360
	}
	for deg <= -180 {
		deg += 360
	}
	return deg
}
