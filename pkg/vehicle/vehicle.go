package vehicle

import "image/color"

// ID identifies an archetype in the catalog
type ID string

const (
	Jeep     ID = "jeep"
	Bike     ID = "bike"
	Truck    ID = "truck"
	Supercar ID = "supercar"
	Monster  ID = "monster"
	Racer    ID = "racer"
)

// MaxUpgradeLevel is the highest level any upgrade track can reach
const MaxUpgradeLevel = 5

// Upgrades holds the three independent upgrade tracks, each in [1, MaxUpgradeLevel]
type Upgrades struct {
	Engine int
	Fuel   int
	Grip   int
}

// BaseUpgrades is the level every track starts at
func BaseUpgrades() Upgrades {
	return Upgrades{Engine: 1, Fuel: 1, Grip: 1}
}

// Stats are the tunables a run's vehicle is built from
type Stats struct {
	MaxSpeed        float64 // pixels per tick
	Acceleration    float64 // pixels per tick, per tick
	MaxFuel         float64
	FuelConsumption float64 // fuel per tick while accelerating
	Grip            float64 // speed multiplier per tick, in (0, 1)
	Width           float64
	Height          float64
}

// BodyStyle selects how the renderer paints a vehicle
type BodyStyle int

const (
	BodyJeep BodyStyle = iota
	BodyBike
	BodyTruck
	BodySupercar
	BodyMonster
	BodyRacer
)

// Visual describes how a vehicle should be drawn
type Visual struct {
	Body   BodyStyle
	Color  color.RGBA
	Accent color.RGBA
	Wheel  color.RGBA
}

// Profile is everything a run needs to know about the selected vehicle.
// It is chosen once at run start.
type Profile interface {
	ID() ID
	Archetype() Archetype
	Stats(u Upgrades) Stats
	Visual() Visual
}
