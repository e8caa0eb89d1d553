package grasp

import (
	"testing"
	"time"
)

func TestDefaultConfigIsSane(t *testing.T) {
	c := DefaultConfig()
	if c != sanitizeConfig(c) {
		t.Error("DefaultConfig should survive sanitization unchanged")
	}
	if c.MinScale >= c.MaxScale {
		t.Errorf("MinScale %v should be below MaxScale %v", c.MinScale, c.MaxScale)
	}
}

func TestMergeConfig_NilOverrides(t *testing.T) {
	def := DefaultConfig()
	if got := MergeConfig(def, nil); got != def {
		t.Errorf("MergeConfig(def, nil) = %+v, want defaults", got)
	}
}

func TestMergeConfig_FieldByField(t *testing.T) {
	def := DefaultConfig()
	tap := 150 * time.Millisecond
	swipe := 80.0
	pd := false

	got := MergeConfig(def, &Overrides{
		TapTimeout:     &tap,
		SwipeThreshold: &swipe,
		PreventDefault: &pd,
	})

	if got.TapTimeout != tap {
		t.Errorf("TapTimeout = %v, want %v", got.TapTimeout, tap)
	}
	if got.SwipeThreshold != swipe {
		t.Errorf("SwipeThreshold = %v, want %v", got.SwipeThreshold, swipe)
	}
	if got.PreventDefault != pd {
		t.Errorf("PreventDefault = %v, want %v", got.PreventDefault, pd)
	}
	// Untouched fields inherit defaults.
	if got.LongPressTimeout != def.LongPressTimeout {
		t.Errorf("LongPressTimeout = %v, want default %v", got.LongPressTimeout, def.LongPressTimeout)
	}
	if got.MinScale != def.MinScale || got.MaxScale != def.MaxScale {
		t.Error("scale bounds should inherit defaults")
	}
}

func TestMergeConfig_DoesNotMutateInputs(t *testing.T) {
	def := DefaultConfig()
	was := def
	tap := time.Millisecond
	o := &Overrides{TapTimeout: &tap}
	MergeConfig(def, o)
	if def != was {
		t.Error("MergeConfig mutated the defaults")
	}
	if *o.TapTimeout != time.Millisecond {
		t.Error("MergeConfig mutated the overrides")
	}
}

func TestMergeConfig_CorrectsInvalidValues(t *testing.T) {
	def := DefaultConfig()
	negDur := -time.Second
	zero := 0.0
	neg := -5.0
	minHigh := 4.0
	maxLow := 2.0

	tests := []struct {
		name  string
		o     *Overrides
		check func(t *testing.T, c Config)
	}{
		{
			"negative timeout reverts to default",
			&Overrides{LongPressTimeout: &negDur},
			func(t *testing.T, c Config) {
				if c.LongPressTimeout != defaultLongPressTimeout {
					t.Errorf("LongPressTimeout = %v, want %v", c.LongPressTimeout, defaultLongPressTimeout)
				}
			},
		},
		{
			"zero threshold reverts to default",
			&Overrides{TapThreshold: &zero},
			func(t *testing.T, c Config) {
				if c.TapThreshold != defaultTapThreshold {
					t.Errorf("TapThreshold = %v, want %v", c.TapThreshold, defaultTapThreshold)
				}
			},
		},
		{
			"negative velocity reverts to default",
			&Overrides{SwipeVelocity: &neg},
			func(t *testing.T, c Config) {
				if c.SwipeVelocity != defaultSwipeVelocity {
					t.Errorf("SwipeVelocity = %v, want %v", c.SwipeVelocity, defaultSwipeVelocity)
				}
			},
		},
		{
			"minScale above maxScale resets both",
			&Overrides{MinScale: &minHigh, MaxScale: &maxLow},
			func(t *testing.T, c Config) {
				if c.MinScale != defaultMinScale || c.MaxScale != defaultMaxScale {
					t.Errorf("scale bounds = [%v, %v], want defaults", c.MinScale, c.MaxScale)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, MergeConfig(def, tt.o))
		})
	}
}

func TestSessionTimeout_TwiceLongestWindow(t *testing.T) {
	c := DefaultConfig()
	c.TapTimeout = 100 * time.Millisecond
	c.DoubleTapTimeout = 250 * time.Millisecond
	c.LongPressTimeout = 400 * time.Millisecond
	if got := c.sessionTimeout(); got != 800*time.Millisecond {
		t.Errorf("sessionTimeout = %v, want 800ms", got)
	}

	c.DoubleTapTimeout = time.Second
	if got := c.sessionTimeout(); got != 2*time.Second {
		t.Errorf("sessionTimeout = %v, want 2s", got)
	}
}
