package grasp

import (
	"testing"
	"time"
)

func TestStatsRecord(t *testing.T) {
	var a statsAccumulator
	a.record(Event{Type: Tap, Time: at(100), Duration: 100 * time.Millisecond})
	a.record(Event{Type: Tap, Time: at(500), Duration: 200 * time.Millisecond})
	a.record(Event{Type: Swipe, Time: at(900), Duration: 300 * time.Millisecond})

	s := a.snapshot()
	if s.TotalGestures != 3 {
		t.Errorf("TotalGestures = %d, want 3", s.TotalGestures)
	}
	if s.ByType[Tap] != 2 || s.ByType[Swipe] != 1 {
		t.Errorf("ByType = %v, want 2 taps and 1 swipe", s.ByType)
	}
	want := 200 * time.Millisecond
	if diff := s.AverageDuration - want; diff < -time.Millisecond || diff > time.Millisecond {
		t.Errorf("AverageDuration = %v, want ~%v", s.AverageDuration, want)
	}
	if s.LastGestureTime != at(900) {
		t.Errorf("LastGestureTime = %v, want %v", s.LastGestureTime, at(900))
	}
}

func TestStatsZeroDurationSkipsMean(t *testing.T) {
	var a statsAccumulator
	a.record(Event{Type: Tap, Time: at(0), Duration: 100 * time.Millisecond})
	a.record(Event{Type: Pinch, Time: at(10)})
	a.record(Event{Type: Rotate, Time: at(20)})

	s := a.snapshot()
	if s.TotalGestures != 3 {
		t.Errorf("TotalGestures = %d, want 3", s.TotalGestures)
	}
	if s.AverageDuration != 100*time.Millisecond {
		t.Errorf("AverageDuration = %v; duration-less events must not dilute the mean", s.AverageDuration)
	}
}

func TestStatsTotalEqualsSumOfTypes(t *testing.T) {
	var a statsAccumulator
	for i, typ := range AllGestureTypes() {
		for j := 0; j <= i; j++ {
			a.record(Event{Type: typ, Time: at(i * 10)})
		}
	}
	s := a.snapshot()
	sum := 0
	for _, n := range s.ByType {
		sum += n
	}
	if s.TotalGestures != sum {
		t.Errorf("TotalGestures = %d, sum of ByType = %d", s.TotalGestures, sum)
	}
}

func TestStatsLastTimeNeverMovesBackward(t *testing.T) {
	var a statsAccumulator
	a.record(Event{Type: Tap, Time: at(500)})
	a.record(Event{Type: Tap, Time: at(100)}) // late-arriving older event
	if got := a.snapshot().LastGestureTime; got != at(500) {
		t.Errorf("LastGestureTime = %v, want %v", got, at(500))
	}
}

func TestStatsSnapshotIsACopy(t *testing.T) {
	var a statsAccumulator
	a.record(Event{Type: Tap, Time: at(0)})

	s1 := a.snapshot()
	s1.ByType[Swipe] = 99

	s2 := a.snapshot()
	if s2.ByType[Swipe] != 0 {
		t.Error("mutating a snapshot leaked into the accumulator")
	}
	if _, ok := s2.ByType[Swipe]; ok {
		t.Error("never-seen types must not appear in ByType")
	}
}

func TestStatsReset(t *testing.T) {
	e := newTestEngine()
	collect(e, "pad", nil, nil)
	e.ProcessEvent(pe("pad", 0, Press, 0, 0, 0))
	e.ProcessEvent(pe("pad", 0, Release, 0, 0, 50))
	e.advance(at(2000))

	if e.GetStats().TotalGestures != 1 {
		t.Fatal("expected one recorded gesture before reset")
	}
	e.ResetStats()
	s := e.GetStats()
	if s.TotalGestures != 0 || len(s.ByType) != 0 || !s.LastGestureTime.IsZero() || s.AverageDuration != 0 {
		t.Errorf("stats after reset = %+v, want zero value", s)
	}
}
