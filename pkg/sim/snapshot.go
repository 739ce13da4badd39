package sim

import (
	"math"

	"github.com/golangdaddy/hillclimber/pkg/particle"
	"github.com/golangdaddy/hillclimber/pkg/pickup"
	"github.com/golangdaddy/hillclimber/pkg/terrain"
	"github.com/golangdaddy/hillclimber/pkg/vehicle"
)

// Stability classifies how close the vehicle is to flipping
type Stability int

const (
	Stable Stability = iota
	Careful
	Danger
)

func (s Stability) String() string {
	switch s {
	case Stable:
		return "STABLE"
	case Careful:
		return "CAREFUL"
	}
	return "DANGER!"
}

// HUD is what the in-game overlay shows
type HUD struct {
	Distance    int
	Coins       int // Lifetime balance
	RunCoins    int
	Speed       int
	Fuel        float64
	FuelPercent float64
	LowFuel     bool
	Danger      float64 // |rotation| as a fraction of the flip threshold
	Stability   Stability
}

// Summary is the result of a finished run
type Summary struct {
	Vehicle  vehicle.ID
	Reason   Reason
	Distance int
	Coins    int // Coins collected during the run
	TopSpeed int
	Score    int
	Ticks    uint64
}

// Snapshot is a read-only copy of everything the renderer needs
type Snapshot struct {
	State         State
	Reason        Reason
	Tick          uint64
	Scroll        float64
	Vehicle       Vehicle
	Profile       vehicle.Profile
	Terrain       []terrain.Point // World-space points covering the viewport
	Coins         []pickup.Coin
	Cans          []pickup.FuelCan
	Particles     []particle.Particle
	HUD           HUD
	Notifications []Notification
}

// StabilityFor maps a danger ratio onto the three tiers
func StabilityFor(danger float64) Stability {
	switch {
	case danger < 0.4:
		return Stable
	case danger < 0.7:
		return Careful
	}
	return Danger
}

// HUD derives the overlay readings from the current state
func (c *Context) HUD() HUD {
	v := c.Vehicle
	danger := 0.0
	if c.cfg.Physics.FlipThreshold > 0 {
		danger = math.Abs(v.Rotation) / c.cfg.Physics.FlipThreshold
	}
	ratio := v.FuelRatio()

	h := HUD{
		Distance:    c.Stats.Distance,
		RunCoins:    c.Stats.CoinsThisRun,
		Speed:       c.Stats.CurrentSpeed,
		Fuel:        v.Fuel,
		FuelPercent: ratio * 100,
		LowFuel:     ratio < c.cfg.Physics.LowFuelRatio,
		Danger:      danger,
		Stability:   StabilityFor(danger),
	}
	if c.Progression != nil {
		h.Coins = c.Progression.Balance()
	}
	return h
}

// Summary returns the end-of-run figures for the current run
func (c *Context) Summary() Summary {
	s := Summary{
		Reason:   c.Reason,
		Distance: c.Stats.Distance,
		Coins:    c.Stats.CoinsThisRun,
		TopSpeed: c.Stats.TopSpeed,
		Score:    c.Stats.Score(),
		Ticks:    c.Tick,
	}
	if c.profile != nil {
		s.Vehicle = c.profile.ID()
	}
	return s
}

// Snapshot copies the visible part of the world
func (c *Context) Snapshot() Snapshot {
	width := c.cfg.Terrain.ScreenWidth
	seg := c.Terrain.Config().SegmentWidth
	from, to := c.Scroll-seg, c.Scroll+width+seg

	return Snapshot{
		State:         c.State,
		Reason:        c.Reason,
		Tick:          c.Tick,
		Scroll:        c.Scroll,
		Vehicle:       c.Vehicle,
		Profile:       c.profile,
		Terrain:       c.Terrain.Window(from, to),
		Coins:         c.Pickups.VisibleCoins(c.Scroll-100, c.Scroll+width+100),
		Cans:          c.Pickups.VisibleCans(c.Scroll-100, c.Scroll+width+100),
		Particles:     c.Particles.Snapshot(),
		HUD:           c.HUD(),
		Notifications: c.Notes.Active(),
	}
}
