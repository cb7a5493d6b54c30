package retained

import (
	"math"
	"time"
)

// EasingFunc maps time progress in [0,1] to value progress.
type EasingFunc func(t float64) float64

var (
	EaseLinear EasingFunc = func(t float64) float64 { return t }

	EaseInQuad EasingFunc = func(t float64) float64 { return t * t }

	EaseOutQuad EasingFunc = func(t float64) float64 { return t * (2 - t) }

	EaseInOutQuad EasingFunc = func(t float64) float64 {
		if t < 0.5 {
			return 2 * t * t
		}
		return -1 + (4-2*t)*t
	}

	EaseOutCubic EasingFunc = func(t float64) float64 {
		t--
		return t*t*t + 1
	}

	EaseInOutCubic EasingFunc = func(t float64) float64 {
		if t < 0.5 {
			return 4 * t * t * t
		}
		return (t-1)*(2*t-2)*(2*t-2) + 1
	}

	// EaseOutBack overshoots slightly before settling.
	EaseOutBack EasingFunc = func(t float64) float64 {
		const c1 = 1.70158
		const c3 = c1 + 1
		u := t - 1
		return 1 + c3*u*u*u + c1*u*u
	}

	EaseOutElastic EasingFunc = func(t float64) float64 {
		if t == 0 || t == 1 {
			return t
		}
		c4 := (2 * math.Pi) / 3
		return math.Pow(2, -10*t)*math.Sin((t*10-0.75)*c4) + 1
	}
)

// EasingByName returns the easing function for a CSS-like name, or nil.
func EasingByName(name string) EasingFunc {
	switch name {
	case "linear":
		return EaseLinear
	case "ease-in":
		return EaseInQuad
	case "ease-out":
		return EaseOutQuad
	case "ease", "ease-in-out":
		return EaseInOutQuad
	case "cubic":
		return EaseInOutCubic
	case "ease-out-cubic":
		return EaseOutCubic
	case "back":
		return EaseOutBack
	case "elastic":
		return EaseOutElastic
	default:
		return nil
	}
}

// Tween interpolates From to To over Duration, starting Delay after the
// elapsed clock it is sampled with. Screens sample it with their own
// elapsed time, so it needs no registry or wall clock.
type Tween struct {
	Delay    time.Duration
	Duration time.Duration
	From, To float32
	Easing   EasingFunc
}

// Progress returns the eased progress in [0,1] at elapsed.
func (a Tween) Progress(elapsed time.Duration) float64 {
	t := elapsed - a.Delay
	switch {
	case t <= 0:
		return 0
	case a.Duration <= 0 || t >= a.Duration:
		return 1
	}
	p := float64(t) / float64(a.Duration)
	if a.Easing != nil {
		p = a.Easing(p)
	}
	return p
}

// At returns the interpolated value at elapsed.
func (a Tween) At(elapsed time.Duration) float32 {
	return lerp(a.From, a.To, float32(a.Progress(elapsed)))
}

// Done reports whether the tween reached its end value.
func (a Tween) Done(elapsed time.Duration) bool {
	return elapsed >= a.Delay+a.Duration
}

// Fade returns an opacity that stays 1 until start, then falls to 0 over
// length using easing.
func Fade(elapsed, start, length time.Duration, easing EasingFunc) float32 {
	return Tween{Delay: start, Duration: length, From: 1, To: 0, Easing: easing}.At(elapsed)
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}
