package grasp

import (
	"math"
	"testing"
)

func TestDominantDirection(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		want   Direction
	}{
		{"right", 80, 10, DirectionRight},
		{"left", -80, 10, DirectionLeft},
		{"down", 10, 80, DirectionDown},
		{"up", 10, -80, DirectionUp},
		{"diagonal tie goes horizontal", 50, 50, DirectionRight},
		{"negative tie goes horizontal", -50, -50, DirectionLeft},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dominantDirection(tt.dx, tt.dy); got != tt.want {
				t.Errorf("dominantDirection(%v, %v) = %v, want %v", tt.dx, tt.dy, got, tt.want)
			}
		})
	}
}

func TestClampScale(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinScale = 0.5
	cfg.MaxScale = 3

	tests := []struct {
		name           string
		dist, baseDist float64
		want           float64
	}{
		{"double", 200, 100, 2},
		{"half", 50, 100, 0.5},
		{"clamped high", 500, 100, 3},
		{"clamped low", 10, 100, 0.5},
		{"zero baseline keeps identity", 100, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clampScale(cfg, tt.dist, tt.baseDist); got != tt.want {
				t.Errorf("clampScale(%v, %v) = %v, want %v", tt.dist, tt.baseDist, got, tt.want)
			}
		})
	}
}

func TestAngleDeltaDeg(t *testing.T) {
	tests := []struct {
		name        string
		base, angle float64 // radians
		want        float64 // degrees
	}{
		{"quarter turn", 0, math.Pi / 2, 90},
		{"negative quarter", 0, -math.Pi / 2, -90},
		{"wraps past pi", 3, -3, 360 - 6*180/math.Pi},
		{"zero", 1.2, 1.2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := angleDeltaDeg(tt.base, tt.angle)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("angleDeltaDeg(%v, %v) = %v, want %v", tt.base, tt.angle, got, tt.want)
			}
			if got <= -180 || got > 180 {
				t.Errorf("angleDeltaDeg out of (-180, 180]: %v", got)
			}
		})
	}
}

func TestClassifySwipe_Thresholds(t *testing.T) {
	cfg := DefaultConfig() // 50 px at 300 px/s

	tests := []struct {
		name string
		dist float64
		ms   int
		want verdict
	}{
		{"fast and far", 80, 100, confirmed},
		{"far but slow", 80, 2000, rejected},
		{"fast but short", 20, 20, rejected},
		{"exactly at thresholds", 60, 200, confirmed}, // 300 px/s
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSession("t", cfg, pe("t", 0, Press, 0, 0, 0))
			p := s.points[0]
			p.update(tt.dist, 0, at(tt.ms))
			if got := classifySwipe(s, p); got != tt.want {
				t.Errorf("classifySwipe = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassifySwipe_RejectedAfterLongPress(t *testing.T) {
	s := newSession("t", DefaultConfig(), pe("t", 0, Press, 0, 0, 0))
	s.longPressed = true
	p := s.points[0]
	p.update(200, 0, at(100))
	if got := classifySwipe(s, p); got != rejected {
		t.Errorf("classifySwipe after long-press = %v, want rejected", got)
	}
}

func TestClassifyPan_ResidualAndSticky(t *testing.T) {
	s := newSession("t", DefaultConfig(), pe("t", 0, Press, 0, 0, 0))
	p := s.points[0]

	if got := classifyPan(s, p); got != pending {
		t.Errorf("pan before movement = %v, want pending", got)
	}
	p.update(5, 0, at(50))
	if got := classifyPan(s, p); got != pending {
		t.Errorf("pan under threshold = %v, want pending", got)
	}
	p.update(30, 0, at(100))
	if got := classifyPan(s, p); got != confirmed {
		t.Errorf("pan past threshold = %v, want confirmed", got)
	}
	// Once confirmed, pan stays confirmed even if the point returns home.
	s.panning = true
	p.update(0, 0, at(150))
	if got := classifyPan(s, p); got != confirmed {
		t.Errorf("confirmed pan reverted to %v", got)
	}
}

func TestClassifyLongPress_DeadlineAndMovement(t *testing.T) {
	s := newSession("t", DefaultConfig(), pe("t", 0, Press, 0, 0, 0))

	if got := classifyLongPress(s, at(100)); got != pending {
		t.Errorf("long-press before deadline = %v, want pending", got)
	}
	if got := classifyLongPress(s, at(500)); got != confirmed {
		t.Errorf("long-press at deadline = %v, want confirmed", got)
	}

	s.moved = true
	if got := classifyLongPress(s, at(600)); got != rejected {
		t.Errorf("long-press after movement = %v, want rejected", got)
	}
}

func TestGestureTypeString(t *testing.T) {
	want := map[GestureType]string{
		Tap:       "tap",
		DoubleTap: "double-tap",
		LongPress: "long-press",
		Swipe:     "swipe",
		Pinch:     "pinch",
		Pan:       "pan",
		Rotate:    "rotate",
	}
	for typ, name := range want {
		if typ.String() != name {
			t.Errorf("%d.String() = %q, want %q", typ, typ.String(), name)
		}
	}
	if got := GestureType(200).String(); got != "unknown" {
		t.Errorf("out-of-range String() = %q, want %q", got, "unknown")
	}
	if len(AllGestureTypes()) != int(gestureTypeCount) {
		t.Errorf("AllGestureTypes lists %d types, want %d", len(AllGestureTypes()), gestureTypeCount)
	}
}

func TestDirectionString(t *testing.T) {
	want := map[Direction]string{
		DirectionNone:  "none",
		DirectionUp:    "up",
		DirectionDown:  "down",
		DirectionLeft:  "left",
		DirectionRight: "right",
	}
	for d, name := range want {
		if d.String() != name {
			t.Errorf("Direction(%d).String() = %q, want %q", d, d.String(), name)
		}
	}
}
