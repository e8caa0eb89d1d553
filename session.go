package grasp

import (
	"math"
	"time"
)

// maxHistory caps the number of snapshots retained per contact point.
// Old snapshots are dropped; the start position is kept separately so net
// displacement never loses precision.
const maxHistory = 64

// point is the live state of one contact, from press to release.
type point struct {
	id     int
	startX float64
	startY float64
	start  time.Time

	x, y float64
	t    time.Time

	history []TouchPoint
}

func newPoint(id int, x, y float64, t time.Time) *point {
	p := &point{id: id, startX: x, startY: y, start: t, x: x, y: y, t: t}
	p.history = append(p.history, TouchPoint{ID: id, X: x, Y: y, Time: t})
	return p
}

// update records a new snapshot for the point.
func (p *point) update(x, y float64, t time.Time) {
	p.x, p.y = x, y
	p.t = t
	if len(p.history) == maxHistory {
		copy(p.history, p.history[1:])
		p.history = p.history[:maxHistory-1]
	}
	p.history = append(p.history, TouchPoint{ID: p.id, X: x, Y: y, Time: t})
}

// displacement is the net distance from the point's start position.
func (p *point) displacement() float64 {
	return math.Hypot(p.x-p.startX, p.y-p.startY)
}

// averageVelocity is net displacement over total contact time, in units/sec.
func (p *point) averageVelocity() float64 {
	dt := p.t.Sub(p.start).Seconds()
	if dt <= 0 {
		return 0
	}
	return p.displacement() / dt
}

// instantVelocity is the velocity between the last two snapshots.
func (p *point) instantVelocity() float64 {
	n := len(p.history)
	if n < 2 {
		return 0
	}
	a, b := p.history[n-2], p.history[n-1]
	dt := b.Time.Sub(a.Time).Seconds()
	if dt <= 0 {
		return 0
	}
	return math.Hypot(b.X-a.X, b.Y-a.Y) / dt
}

// session tracks all active contacts on one target from first press to full
// release. It owns no gesture-specific thresholds or verdicts; classifiers
// read its state and the arbiter owns its deadlines.
type session struct {
	target TargetID
	cfg    Config // snapshot of the target's merged config at session start

	points map[int]*point
	order  []int // point IDs in press order

	start         time.Time
	last          time.Time // time of the most recent event
	startCentroid TouchPoint
	lastCentroid  TouchPoint
	maxPoints     int

	// Single-point classification state.
	moved       bool      // movement exceeded TapThreshold
	panning     bool      // pan confirmed
	longPressAt time.Time // long-press deadline; zero once cancelled
	longPressed bool      // long-press confirmed
	prevX       float64   // last reported pan position
	prevY       float64

	// Two-point classification state.
	multi     bool // session ever held two or more points
	baseDist  float64
	baseAngle float64 // radians
	pinching  bool
	rotating  bool

	abandonAt time.Time
}

func newSession(target TargetID, cfg Config, first PointerEvent) *session {
	s := &session{
		target:    target,
		cfg:       cfg,
		points:    make(map[int]*point, 2),
		start:     first.Time,
		last:      first.Time,
		maxPoints: 1,
		prevX:     first.X,
		prevY:     first.Y,
	}
	s.points[first.ID] = newPoint(first.ID, first.X, first.Y, first.Time)
	s.order = append(s.order, first.ID)
	s.startCentroid = TouchPoint{X: first.X, Y: first.Y, Time: first.Time}
	s.lastCentroid = s.startCentroid
	s.longPressAt = first.Time.Add(cfg.LongPressTimeout)
	s.touch(first.Time)
	return s
}

// touch refreshes the last-event time and pushes out the abandonment
// deadline.
func (s *session) touch(t time.Time) {
	if t.After(s.last) {
		s.last = t
	}
	s.abandonAt = s.last.Add(s.cfg.sessionTimeout())
}

// addPoint registers a new contact. A duplicate press for a live ID updates
// the existing point in place.
func (s *session) addPoint(ev PointerEvent) {
	if p, ok := s.points[ev.ID]; ok {
		p.update(ev.X, ev.Y, ev.Time)
	} else {
		s.points[ev.ID] = newPoint(ev.ID, ev.X, ev.Y, ev.Time)
		s.order = append(s.order, ev.ID)
		if len(s.points) > s.maxPoints {
			s.maxPoints = len(s.points)
		}
	}
	s.recomputeCentroid(ev.Time)
	s.touch(ev.Time)
}

// removePoint drops a contact and returns its final state, or nil if the ID
// was never tracked.
func (s *session) removePoint(id int, t time.Time) *point {
	p, ok := s.points[id]
	if !ok {
		return nil
	}
	delete(s.points, id)
	for i, pid := range s.order {
		if pid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	if len(s.points) > 0 {
		s.recomputeCentroid(t)
	}
	s.touch(t)
	return p
}

func (s *session) recomputeCentroid(t time.Time) {
	if len(s.points) == 0 {
		return
	}
	var cx, cy float64
	for _, p := range s.points {
		cx += p.x
		cy += p.y
	}
	n := float64(len(s.points))
	s.lastCentroid = TouchPoint{X: cx / n, Y: cy / n, Time: t}
}

// pair returns the two oldest active points, in press order.
// Valid only while at least two points are active.
func (s *session) pair() (*point, *point) {
	return s.points[s.order[0]], s.points[s.order[1]]
}

// pairDistAngle is the distance and angle (radians) of the line between the
// two oldest active points.
func (s *session) pairDistAngle() (float64, float64) {
	a, b := s.pair()
	dx := b.x - a.x
	dy := b.y - a.y
	return math.Hypot(dx, dy), math.Atan2(dy, dx)
}

// beginPair snapshots the two-point baseline and resets the continuous
// two-point gesture instances. Called whenever the active point count
// reaches two, so a lift-and-repress starts fresh instances.
func (s *session) beginPair() {
	s.multi = true
	s.baseDist, s.baseAngle = s.pairDistAngle()
	s.pinching = false
	s.rotating = false
	// Two-point interactions bypass the single-point classifiers.
	s.longPressAt = time.Time{}
	s.panning = false
}

// soleSingle reports whether the session is a plain single-point interaction:
// exactly one active point and never more than one.
func (s *session) soleSingle() bool {
	return len(s.points) == 1 && !s.multi
}
