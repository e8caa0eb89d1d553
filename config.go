package grasp

import "time"

// Default thresholds. Distances are in the caller's coordinate units
// (pixels, for the Ebitengine source); velocities are units per second.
const (
	defaultTapTimeout        = 300 * time.Millisecond
	defaultDoubleTapTimeout  = 300 * time.Millisecond
	defaultLongPressTimeout  = 500 * time.Millisecond
	defaultTapThreshold      = 10.0
	defaultSwipeThreshold    = 50.0
	defaultSwipeVelocity     = 300.0
	defaultPanThreshold      = 10.0
	defaultPinchThreshold    = 10.0
	defaultMinScale          = 0.5
	defaultMaxScale          = 3.0
	defaultRotationThreshold = 15.0 // degrees
)

// Config holds every timing and distance threshold used during gesture
// classification. Every field is always populated: build configs with
// DefaultConfig and MergeConfig rather than by hand, so no partial config
// ever reaches a classifier.
type Config struct {
	TapTimeout       time.Duration // max press-to-release time for a tap
	DoubleTapTimeout time.Duration // max gap between two taps
	LongPressTimeout time.Duration // hold time before a long-press confirms

	TapThreshold   float64 // max movement for tap/long-press
	SwipeThreshold float64 // min net displacement for a swipe
	SwipeVelocity  float64 // min average velocity (px/sec) for a swipe
	PanThreshold   float64 // movement before a pan confirms
	PinchThreshold float64 // inter-point distance change before a pinch confirms

	MinScale float64 // lower clamp for pinch scale
	MaxScale float64 // upper clamp for pinch scale

	RotationThreshold float64 // degrees of angular change before a rotate confirms

	// Platform hints forwarded to event sources per registration. Sources
	// with no notion of default actions or passive listeners (such as the
	// Ebitengine Source) ignore them.
	PreventDefault   bool
	PassiveListeners bool
}

// DefaultConfig returns the engine's built-in thresholds.
func DefaultConfig() Config {
	return Config{
		TapTimeout:        defaultTapTimeout,
		DoubleTapTimeout:  defaultDoubleTapTimeout,
		LongPressTimeout:  defaultLongPressTimeout,
		TapThreshold:      defaultTapThreshold,
		SwipeThreshold:    defaultSwipeThreshold,
		SwipeVelocity:     defaultSwipeVelocity,
		PanThreshold:      defaultPanThreshold,
		PinchThreshold:    defaultPinchThreshold,
		MinScale:          defaultMinScale,
		MaxScale:          defaultMaxScale,
		RotationThreshold: defaultRotationThreshold,
		PreventDefault:    true,
		PassiveListeners:  false,
	}
}

// Overrides is a partial Config for per-registration tuning. Nil fields
// inherit the engine defaults.
type Overrides struct {
	TapTimeout       *time.Duration
	DoubleTapTimeout *time.Duration
	LongPressTimeout *time.Duration

	TapThreshold   *float64
	SwipeThreshold *float64
	SwipeVelocity  *float64
	PanThreshold   *float64
	PinchThreshold *float64

	MinScale *float64
	MaxScale *float64

	RotationThreshold *float64

	PreventDefault   *bool
	PassiveListeners *bool
}

// MergeConfig layers o over def field by field and corrects invalid values.
// It is pure: neither argument is mutated, and it is applied exactly once,
// at registration time. A nil o yields a sanitized copy of def.
func MergeConfig(def Config, o *Overrides) Config {
	c := def
	if o != nil {
		if o.TapTimeout != nil {
			c.TapTimeout = *o.TapTimeout
		}
		if o.DoubleTapTimeout != nil {
			c.DoubleTapTimeout = *o.DoubleTapTimeout
		}
		if o.LongPressTimeout != nil {
			c.LongPressTimeout = *o.LongPressTimeout
		}
		if o.TapThreshold != nil {
			c.TapThreshold = *o.TapThreshold
		}
		if o.SwipeThreshold != nil {
			c.SwipeThreshold = *o.SwipeThreshold
		}
		if o.SwipeVelocity != nil {
			c.SwipeVelocity = *o.SwipeVelocity
		}
		if o.PanThreshold != nil {
			c.PanThreshold = *o.PanThreshold
		}
		if o.PinchThreshold != nil {
			c.PinchThreshold = *o.PinchThreshold
		}
		if o.MinScale != nil {
			c.MinScale = *o.MinScale
		}
		if o.MaxScale != nil {
			c.MaxScale = *o.MaxScale
		}
		if o.RotationThreshold != nil {
			c.RotationThreshold = *o.RotationThreshold
		}
		if o.PreventDefault != nil {
			c.PreventDefault = *o.PreventDefault
		}
		if o.PassiveListeners != nil {
			c.PassiveListeners = *o.PassiveListeners
		}
	}
	return sanitizeConfig(c)
}

// sanitizeConfig replaces non-positive or contradictory values with the
// built-in defaults. Bad configuration is corrected, never fatal.
func sanitizeConfig(c Config) Config {
	if c.TapTimeout <= 0 {
		c.TapTimeout = defaultTapTimeout
	}
	if c.DoubleTapTimeout <= 0 {
		c.DoubleTapTimeout = defaultDoubleTapTimeout
	}
	if c.LongPressTimeout <= 0 {
		c.LongPressTimeout = defaultLongPressTimeout
	}
	if c.TapThreshold <= 0 {
		c.TapThreshold = defaultTapThreshold
	}
	if c.SwipeThreshold <= 0 {
		c.SwipeThreshold = defaultSwipeThreshold
	}
	if c.SwipeVelocity <= 0 {
		c.SwipeVelocity = defaultSwipeVelocity
	}
	if c.PanThreshold <= 0 {
		c.PanThreshold = defaultPanThreshold
	}
	if c.PinchThreshold <= 0 {
		c.PinchThreshold = defaultPinchThreshold
	}
	if c.MinScale <= 0 {
		c.MinScale = defaultMinScale
	}
	if c.MaxScale <= 0 || c.MaxScale < c.MinScale {
		c.MinScale = defaultMinScale
		c.MaxScale = defaultMaxScale
	}
	if c.RotationThreshold <= 0 {
		c.RotationThreshold = defaultRotationThreshold
	}
	return c
}

// sessionTimeout is the session-abandonment deadline: twice the longest
// configured timing window. It guards against platforms that drop release
// events so a stuck session cannot leak.
func (c Config) sessionTimeout() time.Duration {
	longest := c.TapTimeout
	if c.DoubleTapTimeout > longest {
		longest = c.DoubleTapTimeout
	}
	if c.LongPressTimeout > longest {
		longest = c.LongPressTimeout
	}
	return 2 * longest
}
