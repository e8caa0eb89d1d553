package grasp

import "time"

// Stats summarizes every gesture the engine has dispatched since creation
// or the last reset. TotalGestures always equals the sum of ByType.
type Stats struct {
	TotalGestures   int
	AverageDuration time.Duration
	ByType          map[GestureType]int
	LastGestureTime time.Time
}

// statsAccumulator derives counters and timing summaries from dispatched
// events. It holds no classification logic and no event history: the mean
// duration is maintained incrementally (Welford), so memory stays constant.
type statsAccumulator struct {
	total    int
	byType   [gestureTypeCount]int
	durCount int
	durMean  float64 // seconds
	last     time.Time
}

// record folds one dispatched event into the counters. Continuous gestures
// are recorded once per instance, at confirmation. Events without a duration
// (pinch, rotate) count toward totals but not the duration mean.
func (a *statsAccumulator) record(ev Event) {
	a.total++
	if ev.Type < gestureTypeCount {
		a.byType[ev.Type]++
	}
	if ev.Duration > 0 {
		a.durCount++
		a.durMean += (ev.Duration.Seconds() - a.durMean) / float64(a.durCount)
	}
	if ev.Time.After(a.last) {
		a.last = ev.Time
	}
}

// snapshot returns a copy safe for the caller to retain. Only gesture types
// seen at least once appear in ByType.
func (a *statsAccumulator) snapshot() Stats {
	s := Stats{
		TotalGestures:   a.total,
		AverageDuration: time.Duration(a.durMean * float64(time.Second)),
		ByType:          make(map[GestureType]int),
		LastGestureTime: a.last,
	}
	for t, n := range a.byType {
		if n > 0 {
			s.ByType[GestureType(t)] = n
		}
	}
	return s
}

// reset clears every counter.
func (a *statsAccumulator) reset() {
	*a = statsAccumulator{}
}
