package grasp

import (
	"encoding/json"
	"fmt"
	"time"
)

// Trace is a recorded pointer event stream that can be saved as JSON and
// replayed through an engine. Timestamps are stored as millisecond offsets
// from the first event, so a trace replays identically regardless of when
// it was captured.
type Trace struct {
	// SettleMs is how long Replay keeps advancing the engine clock after
	// the last event, so pending taps and long-presses resolve. Zero means
	// one second.
	SettleMs int          `json:"settleMs,omitempty"`
	Events   []TraceEvent `json:"events"`
}

// TraceEvent is one pointer event in a trace.
type TraceEvent struct {
	Target string  `json:"target"`
	ID     int     `json:"id"`
	Phase  string  `json:"phase"` // "press", "move", "release", "cancel"
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Ms     int     `json:"ms"` // offset from trace start
}

const defaultSettleMs = 1000

// LoadTrace parses and validates a JSON trace.
func LoadTrace(data []byte) (*Trace, error) {
	var tr Trace
	if err := json.Unmarshal(data, &tr); err != nil {
		return nil, fmt.Errorf("parse trace: %w", err)
	}
	if len(tr.Events) == 0 {
		return nil, fmt.Errorf("parse trace: no events")
	}
	for i, ev := range tr.Events {
		if _, err := parsePhase(ev.Phase); err != nil {
			return nil, fmt.Errorf("parse trace: event %d: %w", i, err)
		}
		if ev.Ms < 0 {
			return nil, fmt.Errorf("parse trace: event %d: negative offset %d", i, ev.Ms)
		}
	}
	return &tr, nil
}

// Encode renders the trace as indented JSON.
func (t *Trace) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode trace: %w", err)
	}
	return data, nil
}

// Replay feeds every event through the engine with timestamps rebased onto
// the engine clock, then advances past the settle window so every pending
// deadline resolves. Events are fed in stored order.
func (t *Trace) Replay(e *Engine) {
	base := e.clock()
	last := 0
	for _, ev := range t.Events {
		phase, err := parsePhase(ev.Phase)
		if err != nil {
			continue // validated by LoadTrace; skip defensively for hand-built traces
		}
		e.ProcessEvent(PointerEvent{
			Target: TargetID(ev.Target),
			ID:     ev.ID,
			Phase:  phase,
			X:      ev.X,
			Y:      ev.Y,
			Time:   base.Add(time.Duration(ev.Ms) * time.Millisecond),
		})
		if ev.Ms > last {
			last = ev.Ms
		}
	}
	settle := t.SettleMs
	if settle <= 0 {
		settle = defaultSettleMs
	}
	e.advance(base.Add(time.Duration(last+settle) * time.Millisecond))
}

func parsePhase(s string) (Phase, error) {
	switch s {
	case "press":
		return Press, nil
	case "move":
		return Move, nil
	case "release":
		return Release, nil
	case "cancel":
		return Cancel, nil
	default:
		return 0, fmt.Errorf("unknown phase %q", s)
	}
}

// Recorder captures a live pointer event stream into a Trace. Wrap an
// engine's feed with Record to capture and process in one step:
//
//	rec := grasp.NewRecorder()
//	rec.Record(e, ev) // instead of e.ProcessEvent(ev)
type Recorder struct {
	base  time.Time
	trace Trace
}

// NewRecorder creates an empty recorder. The first recorded event sets the
// trace origin.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record appends the event to the trace and forwards it to the engine
// (which may be nil to record without processing).
func (r *Recorder) Record(e *Engine, ev PointerEvent) {
	if ev.Time.IsZero() && e != nil {
		ev.Time = e.clock()
	}
	if r.base.IsZero() {
		r.base = ev.Time
	}
	r.trace.Events = append(r.trace.Events, TraceEvent{
		Target: string(ev.Target),
		ID:     ev.ID,
		Phase:  ev.Phase.String(),
		X:      ev.X,
		Y:      ev.Y,
		Ms:     int(ev.Time.Sub(r.base) / time.Millisecond),
	})
	if e != nil {
		e.ProcessEvent(ev)
	}
}

// Trace returns the captured trace. The returned value shares the
// recorder's event slice; encode or replay it before recording more.
func (r *Recorder) Trace() *Trace {
	return &r.trace
}

// Len reports how many events have been recorded.
func (r *Recorder) Len() int {
	return len(r.trace.Events)
}
