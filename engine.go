package grasp

import (
	"log"
	"time"
)

// registration binds one target, one gesture subset, one callback, and one
// merged config. One target may hold any number of registrations.
type registration struct {
	id     uint32
	target TargetID
	types  uint8 // bitmask over GestureType
	fn     func(Event)
	cfg    Config
}

// Engine owns all gesture state: listener registrations, per-target touch
// sessions, pending deadlines, and recognition statistics. It is a plain
// dependency-injected object: create one per input surface and share it by
// reference.
//
// The engine is single-goroutine by design, like a game loop: feed it from
// one goroutine and invoke Update from the same one.
type Engine struct {
	clock     func() time.Time
	logf      func(format string, args ...any)
	enabled   bool
	supported bool

	defaults Config
	regs     []registration
	nextID   uint32

	sessions map[TargetID]*session
	pending  map[TargetID]*pendingTap

	stats statsAccumulator

	cbBuf []func(Event) // reused dispatch snapshot buffer
}

// New creates an enabled engine with default thresholds. Engines built with
// New report Supported() == true; platform sources may mark an engine
// unsupported when the environment has no pointer capability.
func New() *Engine {
	return &Engine{
		clock:     time.Now,
		logf:      log.Printf,
		enabled:   true,
		supported: true,
		defaults:  DefaultConfig(),
		sessions:  make(map[TargetID]*session),
		pending:   make(map[TargetID]*pendingTap),
	}
}

// AddGestureListener registers fn for the given gesture types on target.
// overrides (may be nil) is merged over the engine defaults field by field,
// once, now; later default changes do not affect existing registrations.
// An empty types slice subscribes to every gesture type.
//
// On an unsupported engine this is a no-op, so callers may register
// unconditionally.
func (e *Engine) AddGestureListener(target TargetID, types []GestureType, fn func(Event), overrides *Overrides) {
	if !e.supported || fn == nil {
		return
	}
	var mask uint8
	if len(types) == 0 {
		mask = 1<<gestureTypeCount - 1
	}
	for _, t := range types {
		if t < gestureTypeCount {
			mask |= 1 << t
		}
	}
	e.nextID++
	e.regs = append(e.regs, registration{
		id:     e.nextID,
		target: target,
		types:  mask,
		fn:     fn,
		cfg:    MergeConfig(e.defaults, overrides),
	})
}

// RemoveGestureListener removes every registration for target and tears
// down its session and pending deadlines. Idempotent: removing an unknown
// target has no observable effect.
func (e *Engine) RemoveGestureListener(target TargetID) {
	kept := e.regs[:0]
	for _, r := range e.regs {
		if r.target != target {
			kept = append(kept, r)
		}
	}
	for i := len(kept); i < len(e.regs); i++ {
		e.regs[i] = registration{}
	}
	e.regs = kept
	delete(e.sessions, target)
	delete(e.pending, target)
}

// SetEnabled is the global kill switch. While disabled the engine keeps
// ingesting pointer events so session state stays consistent, but no
// callbacks are invoked and no statistics are recorded.
func (e *Engine) SetEnabled(enabled bool) {
	e.enabled = enabled
}

// Enabled reports whether dispatch is active.
func (e *Engine) Enabled() bool {
	return e.enabled
}

// Supported reports the capability flag probed at construction.
func (e *Engine) Supported() bool {
	return e.supported
}

// SetDefaults replaces the engine default config used by future
// registrations. The value is sanitized; existing registrations keep their
// merged configs.
func (e *Engine) SetDefaults(cfg Config) {
	e.defaults = sanitizeConfig(cfg)
}

// Defaults returns the current engine default config.
func (e *Engine) Defaults() Config {
	return e.defaults
}

// ProcessEvent ingests one normalized pointer event. Deadlines that elapsed
// before the event's timestamp fire first, then the event is applied to its
// target's session. Events for targets with no registrations are dropped.
func (e *Engine) ProcessEvent(ev PointerEvent) {
	if ev.Time.IsZero() {
		ev.Time = e.clock()
	}
	e.advance(ev.Time)

	if !e.hasRegistration(ev.Target) {
		return
	}
	if ev.Phase == Press {
		e.handlePress(ev)
		return
	}
	s := e.sessions[ev.Target]
	if s == nil {
		return // defensive: move/release for an untracked target
	}
	switch ev.Phase {
	case Move:
		e.handleMove(s, ev)
	case Release:
		e.handleRelease(s, ev)
	case Cancel:
		e.handleCancel(s, ev)
	}
}

// Update advances the engine clock: pending taps past the double-tap window
// are promoted, held points past the long-press window confirm, and
// abandoned sessions are cleared. Call once per frame (a Source does this
// for you).
func (e *Engine) Update() {
	e.advance(e.clock())
}

// GetStats returns a snapshot of the recognition statistics.
func (e *Engine) GetStats() Stats {
	return e.stats.snapshot()
}

// ResetStats clears all recognition statistics.
func (e *Engine) ResetStats() {
	e.stats.reset()
}

// SetLogger replaces the logger used for recovered listener panics.
// The default is log.Printf; a nil fn silences logging.
func (e *Engine) SetLogger(fn func(format string, args ...any)) {
	if fn == nil {
		fn = func(string, ...any) {}
	}
	e.logf = fn
}

func (e *Engine) hasRegistration(target TargetID) bool {
	for i := range e.regs {
		if e.regs[i].target == target {
			return true
		}
	}
	return false
}

// targetConfig is the merged config governing a target's session: the config
// of the earliest surviving registration for that target. Sessions snapshot
// it at creation.
func (e *Engine) targetConfig(target TargetID) Config {
	for i := range e.regs {
		if e.regs[i].target == target {
			return e.regs[i].cfg
		}
	}
	return e.defaults
}

// dispatch delivers one confirmed gesture event to every matching listener,
// synchronously and in registration order. The matching callbacks are
// snapshotted first so a listener that mutates the registry mid-dispatch
// cannot skip or double-deliver. countStat records the event in the stats
// aggregator; continuous gestures pass it only on instance confirmation.
func (e *Engine) dispatch(ev Event, countStat bool) {
	if !e.enabled {
		return
	}
	// Detach the reuse buffer: a listener may feed the engine again and
	// trigger a nested dispatch, which must not clobber this snapshot.
	buf := e.cbBuf[:0]
	e.cbBuf = nil
	for _, r := range e.regs {
		if r.target == ev.Target && r.types&(1<<ev.Type) != 0 {
			buf = append(buf, r.fn)
		}
	}
	for _, fn := range buf {
		e.invoke(fn, ev)
	}
	e.cbBuf = buf
	if countStat {
		e.stats.record(ev)
	}
}

// invoke runs one listener, isolating panics so a failing listener cannot
// interrupt dispatch to the rest or corrupt session state.
func (e *Engine) invoke(fn func(Event), ev Event) {
	defer func() {
		if r := recover(); r != nil {
			e.logf("grasp: listener panic for %s on %q: %v", ev.Type, ev.Target, r)
		}
	}()
	fn(ev)
}
