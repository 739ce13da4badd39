package sim

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golangdaddy/hillclimber/pkg/models"
	"github.com/golangdaddy/hillclimber/pkg/particle"
	"github.com/golangdaddy/hillclimber/pkg/pickup"
	"github.com/golangdaddy/hillclimber/pkg/terrain"
	"github.com/golangdaddy/hillclimber/pkg/vehicle"
	"github.com/rs/zerolog"
)

// State is the run lifecycle
type State int

const (
	Idle State = iota
	Running
	Paused
	Ended
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Ended:
		return "ended"
	}
	return "unknown"
}

// Reason explains why a run ended
type Reason string

const (
	ReasonNone Reason = ""
	OutOfFuel  Reason = "Out of Fuel"
	Flipped    Reason = "Flipped"
	Crashed    Reason = "Crashed"
	FellOff    Reason = "Fell Off"
	Stopped    Reason = "Stopped" // Ended by the driver rather than by the physics
)

// Intent is the control state sampled by the next tick. Every field is a level;
// the jump edge is detected by the context.
type Intent struct {
	Accelerate bool
	Brake      bool
	Jump       bool
	Dive       bool
}

// Vehicle is the live vehicle of a run. X is fixed in camera space.
type Vehicle struct {
	X          float64
	Y          float64 // Top edge in screen pixels
	Width      float64
	Height     float64
	Speed      float64
	Rotation   float64
	VelocityY  float64
	Fuel       float64
	Grounded   bool
	WheelAngle float64
	Stats      vehicle.Stats
}

// Center returns the camera-space center of the vehicle's footprint
func (v Vehicle) Center() mgl64.Vec2 {
	return mgl64.Vec2{v.X + v.Width/2, v.Y + v.Height/2}
}

// FuelRatio returns the fraction of the tank that is left
func (v Vehicle) FuelRatio() float64 {
	if v.Stats.MaxFuel <= 0 {
		return 0
	}
	return v.Fuel / v.Stats.MaxFuel
}

// PickupKind names a collectible type
type PickupKind string

const (
	PickupCoin PickupKind = "coin"
	PickupFuel PickupKind = "fuel"
)

// Observer is told about run events. Callbacks run inside the tick and must not
// call back into the context.
type Observer interface {
	OnRunStarted(id vehicle.ID)
	OnPickup(kind PickupKind)
	OnRunEnded(s Summary)
}

// NopObserver can be embedded to implement only some of the callbacks
type NopObserver struct{}

func (NopObserver) OnRunStarted(vehicle.ID) {}
func (NopObserver) OnPickup(PickupKind)     {}
func (NopObserver) OnRunEnded(Summary)      {}

// Context is the whole simulation of one game session. It is mutated only by
// Step and the lifecycle methods, always from a single goroutine.
type Context struct {
	cfg Config
	log zerolog.Logger
	rng *rand.Rand

	State   State
	Reason  Reason
	Tick    uint64
	Scroll  float64
	Vehicle Vehicle
	Stats   models.RunStats

	Terrain     *terrain.Generator
	Pickups     *pickup.Streamer
	Particles   *particle.System
	Notes       *Notifier
	Progression *models.Progression

	profile   vehicle.Profile
	intent    Intent
	jumpHeld  bool
	jumpArmed bool
	observers []Observer
}

// NewContext creates an idle simulation. A nil rng seeds from the global source.
func NewContext(cfg Config, progression *models.Progression, rng *rand.Rand, log zerolog.Logger) *Context {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Context{
		cfg:         cfg,
		log:         log.With().Str("component", "sim").Logger(),
		rng:         rng,
		Terrain:     terrain.NewGenerator(cfg.Terrain, rng),
		Pickups:     pickup.NewStreamer(cfg.Pickups, cfg.Terrain.ScreenWidth, rng),
		Particles:   particle.NewSystem(cfg.Physics.MaxParticles, rng),
		Notes:       NewNotifier(cfg.Physics.NotificationTicks),
		Progression: progression,
	}
}

// Config returns the tuning the context was built with
func (c *Context) Config() Config {
	return c.cfg
}

// Profile returns the vehicle profile of the current run, nil before the first Start
func (c *Context) Profile() vehicle.Profile {
	return c.profile
}

// AddObserver registers an observer for run events
func (c *Context) AddObserver(o Observer) {
	c.observers = append(c.observers, o)
}

// SetIntent records the control state for the next tick. A jump is armed when the
// jump level rises and disarmed when it falls, so holding jump never repeats it.
func (c *Context) SetIntent(in Intent) {
	if in.Jump && !c.jumpHeld {
		c.jumpArmed = true
	}
	if !in.Jump {
		c.jumpArmed = false
	}
	c.jumpHeld = in.Jump
	c.intent = in
}

// Intent returns the last recorded control state
func (c *Context) Intent() Intent {
	return c.intent
}

// groundAt samples the terrain at a camera-space X
func (c *Context) groundAt(screenX float64) float64 {
	return c.Terrain.HeightAt(c.Scroll + screenX)
}
