package sim

import "math"

// Autopilot drives headless runs: full throttle while level, coasting as the
// tilt grows and braking close to a flip. Airborne, it pushes the nose down.
func Autopilot(v Vehicle, flipThreshold float64) Intent {
	if flipThreshold <= 0 {
		return Intent{Accelerate: true}
	}
	tilt := math.Abs(v.Rotation) / flipThreshold

	return Intent{
		Accelerate: tilt < 0.6,
		Brake:      tilt >= 0.8,
		Dive:       !v.Grounded,
	}
}
