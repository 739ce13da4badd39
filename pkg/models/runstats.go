package models

import "math"

// DistanceScale converts scrolled pixels into displayed distance units
const DistanceScale = 10.0

// SpeedDisplayScale converts pixels per tick into displayed speed units
const SpeedDisplayScale = 10.0

// CoinScore is what each coin collected this run adds to the final score
const CoinScore = 10

// RunStats accumulates the statistics of a single run. The lifetime coin
// total lives on Progression.
type RunStats struct {
	Distance     int
	CoinsThisRun int
	TopSpeed     int
	CurrentSpeed int
}

// Observe updates distance and speed readings from the scroll offset and raw speed
func (s *RunStats) Observe(scroll, speed float64) {
	s.Distance = int(math.Floor(scroll / DistanceScale))
	s.CurrentSpeed = int(math.Floor(speed * SpeedDisplayScale))
	if s.CurrentSpeed > s.TopSpeed {
		s.TopSpeed = s.CurrentSpeed
	}
}

// Score is the composite end-of-run score
func (s RunStats) Score() int {
	return s.Distance + CoinScore*s.CoinsThisRun
}
