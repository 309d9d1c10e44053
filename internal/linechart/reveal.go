package linechart

import (
	"math"
	"time"
)

// Curve is an easing function over [0,1]. Implementations must map 0 to 0
// and 1 to 1.
type Curve func(t float64) float64

// Easing curves for the reveal animation.
var (
	Linear Curve = func(t float64) float64 { return t }

	EaseIn Curve = func(t float64) float64 { return t * t }

	EaseOut Curve = func(t float64) float64 { return t * (2 - t) }

	EaseInOut Curve = func(t float64) float64 {
		if t < 0.5 {
			return 2 * t * t
		}
		return -1 + (4-2*t)*t
	}
)

// AnimationConfig controls the reveal animation. When Disabled is set the
// reveal is purely binary and no intermediate frame is ever produced.
type AnimationConfig struct {
	Disabled bool
	Duration time.Duration
	Curve    Curve
}

// DefaultAnimation is an ease-in-out reveal over one second.
func DefaultAnimation() AnimationConfig {
	return AnimationConfig{Duration: time.Second, Curve: EaseInOut}
}

// Reveal is the appear/disappear progress state machine. It owns no timer:
// the host frame loop supplies time to Appear, Disappear, and Progress, so
// each frame is an instantaneous read. Hidden is progress 0, shown is
// progress 1; transitions interpolate between them through the configured
// curve, starting from wherever progress was when the transition began.
type Reveal struct {
	cfg     AnimationConfig
	visible bool
	from    float64   // progress when the current transition started
	start   time.Time // when the current transition started
}

// NewReveal returns a hidden controller.
func NewReveal(cfg AnimationConfig) *Reveal {
	if cfg.Curve == nil {
		cfg.Curve = EaseInOut
	}
	return &Reveal{cfg: cfg}
}

// Appear starts animating toward shown. With animation disabled it jumps
// straight there.
func (r *Reveal) Appear(now time.Time) {
	r.retarget(true, now)
}

// Disappear starts animating toward hidden, or jumps there when disabled.
func (r *Reveal) Disappear(now time.Time) {
	r.retarget(false, now)
}

func (r *Reveal) retarget(visible bool, now time.Time) {
	r.from = r.Progress(now)
	r.visible = visible
	r.start = now
}

// Visible reports the current target state.
func (r *Reveal) Visible() bool {
	return r.visible
}

// Done reports whether the controller has settled at its target.
func (r *Reveal) Done(now time.Time) bool {
	if r.cfg.Disabled {
		return true
	}
	return now.Sub(r.start) >= r.cfg.Duration
}

// Progress returns the reveal fraction in [0,1] at the given instant.
// Disabled animation pins it to exactly 0 or 1.
func (r *Reveal) Progress(now time.Time) float64 {
	target := 0.0
	if r.visible {
		target = 1.0
	}
	if r.cfg.Disabled || r.cfg.Duration <= 0 {
		return target
	}
	if r.start.IsZero() {
		return target
	}
	elapsed := now.Sub(r.start)
	if elapsed >= r.cfg.Duration {
		return target
	}
	if elapsed < 0 {
		elapsed = 0
	}
	t := r.cfg.Curve(float64(elapsed) / float64(r.cfg.Duration))
	return clamp01(r.from + (target-r.from)*t)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
