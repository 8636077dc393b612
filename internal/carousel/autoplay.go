package carousel

import "time"

// Autoplay timing defaults.
const (
	DefaultInterval    = 3600 * time.Millisecond
	DefaultScrollPause = 1600 * time.Millisecond
	DefaultDragPause   = 1200 * time.Millisecond
	DefaultTogglePause = 800 * time.Millisecond
	DefaultMountDelay  = 60 * time.Millisecond
)

// AutoplayState is derived from the enabled flag and the pause window.
type AutoplayState int

const (
	Disabled AutoplayState = iota
	Armed
	Paused
)

func (s AutoplayState) String() string {
	switch s {
	case Armed:
		return "armed"
	case Paused:
		return "paused"
	default:
		return "disabled"
	}
}

// Autoplay ticks on a fixed interval while enabled. A tick that lands inside
// the pause window is consumed without advancing.
type Autoplay struct {
	enabled    bool
	interval   time.Duration
	pauseUntil time.Time
	nextTick   time.Time
}

// NewAutoplay returns a scheduler with the given tick interval. A non-positive
// interval uses DefaultInterval.
func NewAutoplay(interval time.Duration) *Autoplay {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Autoplay{interval: interval}
}

// SetEnabled turns ticking on or off. Enabling restarts the interval at now.
func (a *Autoplay) SetEnabled(enabled bool, now time.Time) {
	if enabled && !a.enabled {
		a.nextTick = now.Add(a.interval)
	}
	a.enabled = enabled
}

func (a *Autoplay) Enabled() bool { return a.enabled }

func (a *Autoplay) Interval() time.Duration { return a.interval }

func (a *Autoplay) PauseUntil() time.Time { return a.pauseUntil }

// Pause suppresses advancing until the given time. Manual interaction calls
// this; it never disables autoplay.
func (a *Autoplay) Pause(until time.Time) {
	a.pauseUntil = until
}

// State reports the scheduler state at now.
func (a *Autoplay) State(now time.Time) AutoplayState {
	switch {
	case !a.enabled:
		return Disabled
	case now.Before(a.pauseUntil):
		return Paused
	default:
		return Armed
	}
}

// Due consumes every interval boundary up to now and reports whether the
// carousel should advance. Missed boundaries collapse into a single tick.
func (a *Autoplay) Due(now time.Time) bool {
	if !a.enabled || now.Before(a.nextTick) {
		return false
	}
	for !now.Before(a.nextTick) {
		a.nextTick = a.nextTick.Add(a.interval)
	}
	return !now.Before(a.pauseUntil)
}
