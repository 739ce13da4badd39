package sim

import (
	"math"

	"github.com/golangdaddy/hillclimber/pkg/pickup"
	"github.com/golangdaddy/hillclimber/pkg/terrain"
)

// Physics holds the vehicle tunables that do not depend on the archetype
type Physics struct {
	StartX            float64 `mapstructure:"startX"` // Fixed camera-space X of the vehicle's back edge
	StartY            float64 `mapstructure:"startY"`
	Gravity           float64 `mapstructure:"gravity"`
	JumpImpulse       float64 `mapstructure:"jumpImpulse"`
	JumpFuelCost      float64 `mapstructure:"jumpFuelCost"`
	DiveForce         float64 `mapstructure:"diveForce"`
	BrakeFactor       float64 `mapstructure:"brakeFactor"` // Braking removes BrakeFactor * acceleration per tick
	RotationSmoothing float64 `mapstructure:"rotationSmoothing"`
	GroundMargin      float64 `mapstructure:"groundMargin"`
	BounceThreshold   float64 `mapstructure:"bounceThreshold"`
	BounceDamping     float64 `mapstructure:"bounceDamping"`
	StopThreshold     float64 `mapstructure:"stopThreshold"` // Below this an empty tank ends the run
	FlipThreshold     float64 `mapstructure:"flipThreshold"` // Radians
	CrashTolerance    float64 `mapstructure:"crashTolerance"`
	WheelSpin         float64 `mapstructure:"wheelSpin"`
	ExhaustChance     float64 `mapstructure:"exhaustChance"`
	FuelRefill        float64 `mapstructure:"fuelRefill"`
	LowFuelRatio      float64 `mapstructure:"lowFuelRatio"`
	NotificationTicks int     `mapstructure:"notificationTicks"`
	MaxParticles      int     `mapstructure:"maxParticles"`
}

// DefaultPhysics returns the tuning used by the game
func DefaultPhysics() Physics {
	return Physics{
		StartX:            150,
		StartY:            400,
		Gravity:           0.5,
		JumpImpulse:       15,
		JumpFuelCost:      0.5,
		DiveForce:         1.2,
		BrakeFactor:       2,
		RotationSmoothing: 0.15,
		GroundMargin:      5,
		BounceThreshold:   5,
		BounceDamping:     0.2,
		StopThreshold:     0.1,
		FlipThreshold:     math.Pi / 2.2,
		CrashTolerance:    10,
		WheelSpin:         0.3,
		ExhaustChance:     0.4,
		FuelRefill:        30,
		LowFuelRatio:      0.2,
		NotificationTicks: 180,
		MaxParticles:      512,
	}
}

// Config bundles everything a simulation context is built from
type Config struct {
	Terrain terrain.Config `mapstructure:"terrain"`
	Pickups pickup.Config  `mapstructure:"pickups"`
	Physics Physics        `mapstructure:"physics"`
}

// DefaultConfig returns the game's default tuning
func DefaultConfig() Config {
	return Config{
		Terrain: terrain.DefaultConfig(),
		Pickups: pickup.DefaultConfig(),
		Physics: DefaultPhysics(),
	}
}
