// Package motion provides the animation clock math for the terminal
// dashboard.
//
// Every function is a pure function of elapsed time since the view
// started, so a frame can be rendered again for the same instant and
// produce identical output.
package motion

import (
	"fmt"
	"math"
	"time"
)

// Spring parameters for node entrance: stiffness 100, damping 12,
// mass 1. That gives an undamped frequency of 10 rad/s and a damping
// ratio of 0.6.
const (
	springOmega   = 10.0
	springZeta    = 0.6
	springOmegaD  = springOmega * 0.8 // omega * sqrt(1 - zeta^2)
	springDecay   = springZeta * springOmega
	springSettled = 1500 * time.Millisecond
)

// Settled is a point in time at which every one-shot transition has
// finished. Static renders use it as their frame time.
const Settled = 2 * time.Second

// PulsePeriod is the cycle of the slow opacity pulse.
const PulsePeriod = 2 * time.Second

// Turn returns how far through its current revolution a loop with the
// given period is, in [0, 1).
func Turn(elapsed, period time.Duration) float64 {
	if period <= 0 {
		return 0
	}
	r := elapsed % period
	if r < 0 {
		r += period
	}
	return float64(r) / float64(period)
}

// Angle returns the rotation in radians of a loop. Reverse loops turn
// counter-clockwise.
func Angle(elapsed, period time.Duration, reverse bool) float64 {
	a := 2 * math.Pi * Turn(elapsed, period)
	if reverse {
		return -a
	}
	return a
}

// Step returns which of n discrete phases a loop is in.
func Step(elapsed, period time.Duration, n int) int {
	if n <= 0 {
		return 0
	}
	s := int(Turn(elapsed, period) * float64(n))
	if s >= n {
		s = n - 1
	}
	return s
}

// PulseLevel returns the pulse opacity in [0.5, 1]. It starts at full
// opacity, dims at mid-cycle and recovers.
func PulseLevel(elapsed time.Duration) float64 {
	return 0.75 + 0.25*math.Cos(2*math.Pi*Turn(elapsed, PulsePeriod))
}

// PulseBright reports whether the pulse is in its bright half.
func PulseBright(elapsed time.Duration) bool {
	return PulseLevel(elapsed) >= 0.75
}

// Spring returns the scale of a one-shot spring entrance from 0 to 1.
// It overshoots slightly before settling and is exactly 1 once the
// transition is over.
func Spring(elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	if elapsed >= springSettled {
		return 1
	}
	t := elapsed.Seconds()
	envelope := math.Exp(-springDecay * t)
	return 1 - envelope*(math.Cos(springOmegaD*t)+(springDecay/springOmegaD)*math.Sin(springOmegaD*t))
}

// FormatClock formats elapsed time for the status bar as "MM:SS".
// Hours roll into minutes.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// FrameInterval converts frames per second into a tick interval.
func FrameInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = 1
	}
	return time.Second / time.Duration(fps)
}
