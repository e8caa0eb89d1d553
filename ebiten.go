package grasp

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// Source polls Ebitengine mouse and touch state once per frame and feeds
// the engine normalized pointer events. Volatile ebiten.TouchIDs are mapped
// to stable pointer slots so a contact keeps one identity for its lifetime.
//
// The resolver maps a screen position to the target under it at press time;
// the interaction then stays bound to that target until release, even if
// the pointer wanders off it. A resolver returning the empty TargetID
// declines the press. Registration hints (PreventDefault, PassiveListeners)
// have no meaning under Ebitengine and are ignored here.
//
// The capability probe runs once, at construction: Ebitengine always
// exposes mouse and touch polling, so a Source-driven engine reports
// supported on every platform ebiten builds for.
type Source struct {
	engine  *Engine
	resolve func(x, y float64) TargetID

	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID

	down    [maxPointers]bool
	targets [maxPointers]TargetID
	lastX   [maxPointers]float64
	lastY   [maxPointers]float64
}

// NewSource attaches a polling source to the engine. resolve must not be
// nil; use a constant function for a single-surface window.
func NewSource(e *Engine, resolve func(x, y float64) TargetID) *Source {
	return &Source{engine: e, resolve: resolve}
}

// Update polls input and pumps the engine. Call once per frame from your
// ebiten.Game Update method.
func (s *Source) Update() {
	now := s.engine.clock()
	s.pollMouse(now)
	s.pollTouches(now)
	s.engine.advance(now)
}

// pollMouse drives pointer slot 0 from the cursor and left button.
func (s *Source) pollMouse(now time.Time) {
	x, y := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	s.pointer(0, float64(x), float64(y), pressed, now)
}

// pollTouches drives pointer slots 1-9 from active touches, synthesizing
// releases for touches that vanished since the last frame.
func (s *Source) pollTouches(now time.Time) {
	touchIDs := ebiten.AppendTouchIDs(s.prevTouchIDs[:0])
	s.prevTouchIDs = touchIDs

	var active [maxPointers]bool
	for _, tid := range touchIDs {
		slot := s.touchSlot(tid)
		if slot < 0 {
			continue
		}
		active[slot] = true
		tx, ty := ebiten.TouchPosition(tid)
		s.pointer(slot, float64(tx), float64(ty), true, now)
	}

	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && !active[i] {
			if s.down[i] {
				s.pointer(i, s.lastX[i], s.lastY[i], false, now)
			}
			s.touchUsed[i] = false
			s.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9). Returns the
// existing slot or allocates a new one; -1 if all slots are taken.
func (s *Source) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && s.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !s.touchUsed[i] {
			s.touchUsed[i] = true
			s.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// pointer runs the per-slot edge detector and emits press/move/release
// events into the engine.
func (s *Source) pointer(slot int, x, y float64, pressed bool, now time.Time) {
	switch {
	case pressed && !s.down[slot]:
		target := s.resolve(x, y)
		if target == "" {
			return
		}
		s.down[slot] = true
		s.targets[slot] = target
		s.lastX[slot], s.lastY[slot] = x, y
		s.engine.ProcessEvent(PointerEvent{Target: target, ID: slot, Phase: Press, X: x, Y: y, Time: now})

	case pressed && s.down[slot]:
		if x == s.lastX[slot] && y == s.lastY[slot] {
			return
		}
		s.lastX[slot], s.lastY[slot] = x, y
		s.engine.ProcessEvent(PointerEvent{Target: s.targets[slot], ID: slot, Phase: Move, X: x, Y: y, Time: now})

	case !pressed && s.down[slot]:
		s.down[slot] = false
		s.engine.ProcessEvent(PointerEvent{Target: s.targets[slot], ID: slot, Phase: Release, X: x, Y: y, Time: now})
		s.targets[slot] = ""
	}
}
