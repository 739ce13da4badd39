package particle

import (
	"image/color"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// Gravity is added to every particle's vertical velocity each tick
const Gravity = 0.1

// DefaultMax caps the number of live particles
const DefaultMax = 512

// Particle is a short-lived visual effect in camera space
type Particle struct {
	Pos     mgl64.Vec2
	Vel     mgl64.Vec2
	Life    int
	MaxLife int
	Size    float64
	Color   color.RGBA
}

// Alpha returns the remaining-life fraction used to fade the particle out
func (p Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return float64(p.Life) / float64(p.MaxLife)
}

// Burst describes a radial spray of identical particles
type Burst struct {
	Count  int
	Spread float64 // Velocity components are drawn from [-Spread/2, Spread/2]
	Lift   float64 // Added to the vertical velocity (negative is upward)
	Life   int
	Size   float64
	Color  color.RGBA
}

// System owns every live particle. When full, new particles overwrite the oldest slot.
type System struct {
	Max    int
	P      []Particle
	rng    *rand.Rand
	ovrIdx int
}

// NewSystem creates an empty particle system
func NewSystem(maxParticles int, rng *rand.Rand) *System {
	if maxParticles <= 0 {
		maxParticles = DefaultMax
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &System{
		Max: maxParticles,
		P:   make([]Particle, 0, maxParticles),
		rng: rng,
	}
}

// Clear removes every particle
func (s *System) Clear() {
	s.P = s.P[:0]
	s.ovrIdx = 0
}

// Add inserts a particle, overwriting in a ring once Max is reached
func (s *System) Add(p Particle) {
	if len(s.P) < s.Max {
		s.P = append(s.P, p)
		return
	}
	if s.ovrIdx >= s.Max {
		s.ovrIdx = 0
	}
	s.P[s.ovrIdx] = p
	s.ovrIdx++
}

// Emit sprays a burst of particles from origin
func (s *System) Emit(origin mgl64.Vec2, b Burst) {
	for i := 0; i < b.Count; i++ {
		vel := mgl64.Vec2{
			(s.rng.Float64() - 0.5) * b.Spread,
			(s.rng.Float64()-0.5)*b.Spread + b.Lift,
		}
		s.Add(Particle{
			Pos:     origin,
			Vel:     vel,
			Life:    b.Life,
			MaxLife: b.Life,
			Size:    b.Size,
			Color:   b.Color,
		})
	}
}

// Update moves every particle one tick, applies gravity and drops the expired ones
func (s *System) Update() {
	live := s.P[:0]
	for _, p := range s.P {
		p.Pos = p.Pos.Add(p.Vel)
		p.Vel[1] += Gravity
		p.Life--
		if p.Life <= 0 {
			continue
		}
		live = append(live, p)
	}
	s.P = live
	if s.ovrIdx > len(s.P) {
		s.ovrIdx = 0
	}
}

// Len returns the number of live particles
func (s *System) Len() int {
	return len(s.P)
}

// Snapshot returns a copy of the live particles for rendering
func (s *System) Snapshot() []Particle {
	return append([]Particle(nil), s.P...)
}
