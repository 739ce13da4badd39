package vehicle

import (
	"fmt"
	"image/color"
)

// Archetype is an immutable catalog entry
type Archetype struct {
	ID              ID
	Name            string
	MaxSpeed        float64
	Acceleration    float64
	FuelCapacity    float64
	FuelConsumption float64
	Width           float64
	Height          float64
	Visual          Visual
	Price           int
	Locked          bool // Locked until purchased
}

// archetypeProfile derives run stats from an archetype and the upgrade levels
type archetypeProfile struct {
	a Archetype
}

// NewProfile wraps an archetype in the standard stat derivation
func NewProfile(a Archetype) Profile {
	return archetypeProfile{a: a}
}

func (p archetypeProfile) ID() ID               { return p.a.ID }
func (p archetypeProfile) Archetype() Archetype { return p.a }
func (p archetypeProfile) Visual() Visual       { return p.a.Visual }

// Stats applies the engine, fuel and grip upgrades on top of the archetype
func (p archetypeProfile) Stats(u Upgrades) Stats {
	u = u.clamped()
	engine := float64(u.Engine - 1)
	fuel := float64(u.Fuel - 1)
	grip := float64(u.Grip - 1)

	return Stats{
		MaxSpeed:        p.a.MaxSpeed + engine*2,
		Acceleration:    p.a.Acceleration + engine*0.05,
		MaxFuel:         p.a.FuelCapacity + fuel*20,
		FuelConsumption: p.a.FuelConsumption * (1 - fuel*0.1),
		Grip:            0.99 - grip*0.005,
		Width:           p.a.Width,
		Height:          p.a.Height,
	}
}

func (u Upgrades) clamped() Upgrades {
	clamp := func(v int) int {
		if v < 1 {
			return 1
		}
		if v > MaxUpgradeLevel {
			return MaxUpgradeLevel
		}
		return v
	}
	return Upgrades{Engine: clamp(u.Engine), Fuel: clamp(u.Fuel), Grip: clamp(u.Grip)}
}

func rgb(hex uint32) color.RGBA {
	return color.RGBA{uint8(hex >> 16), uint8(hex >> 8), uint8(hex), 255}
}

var archetypes = []Archetype{
	{
		ID: Jeep, Name: "Jeep",
		MaxSpeed: 12, Acceleration: 0.25, FuelCapacity: 100, FuelConsumption: 0.08,
		Width: 80, Height: 50,
		Visual: Visual{Body: BodyJeep, Color: rgb(0xE74C3C), Accent: rgb(0xC0392B), Wheel: rgb(0x2C3E50)},
		Price:  0,
	},
	{
		ID: Bike, Name: "Bike",
		MaxSpeed: 18, Acceleration: 0.4, FuelCapacity: 80, FuelConsumption: 0.12,
		Width: 65, Height: 45,
		Visual: Visual{Body: BodyBike, Color: rgb(0x3498DB), Accent: rgb(0x2980B9), Wheel: rgb(0x2C3E50)},
		Price:  1000, Locked: true,
	},
	{
		ID: Truck, Name: "Truck",
		MaxSpeed: 8, Acceleration: 0.18, FuelCapacity: 150, FuelConsumption: 0.06,
		Width: 95, Height: 60,
		Visual: Visual{Body: BodyTruck, Color: rgb(0xF39C12), Accent: rgb(0xE67E22), Wheel: rgb(0x34495E)},
		Price:  1000, Locked: true,
	},
	{
		ID: Supercar, Name: "Super Car",
		MaxSpeed: 22, Acceleration: 0.5, FuelCapacity: 90, FuelConsumption: 0.15,
		Width: 85, Height: 45,
		Visual: Visual{Body: BodySupercar, Color: rgb(0xE91E63), Accent: rgb(0xC2185B), Wheel: rgb(0x1A1A1A)},
		Price:  1000, Locked: true,
	},
	{
		ID: Monster, Name: "Monster Truck",
		MaxSpeed: 10, Acceleration: 0.22, FuelCapacity: 180, FuelConsumption: 0.05,
		Width: 100, Height: 70,
		Visual: Visual{Body: BodyMonster, Color: rgb(0x4CAF50), Accent: rgb(0x388E3C), Wheel: rgb(0x1B5E20)},
		Price:  1000, Locked: true,
	},
	{
		ID: Racer, Name: "Racing Car",
		MaxSpeed: 20, Acceleration: 0.45, FuelCapacity: 85, FuelConsumption: 0.13,
		Width: 82, Height: 42,
		Visual: Visual{Body: BodyRacer, Color: rgb(0xFF5722), Accent: rgb(0xE64A19), Wheel: rgb(0x212121)},
		Price:  1000, Locked: true,
	},
}

// Catalog is the read-only list of purchasable vehicles
type Catalog struct {
	profiles []Profile
	byID     map[ID]Profile
}

// DefaultCatalog returns the built-in vehicles in shop order
func DefaultCatalog() *Catalog {
	profiles := make([]Profile, 0, len(archetypes))
	for _, a := range archetypes {
		profiles = append(profiles, NewProfile(a))
	}
	return NewCatalog(profiles...)
}

// NewCatalog builds a catalog from the given profiles
func NewCatalog(profiles ...Profile) *Catalog {
	c := &Catalog{
		profiles: profiles,
		byID:     make(map[ID]Profile, len(profiles)),
	}
	for _, p := range profiles {
		c.byID[p.ID()] = p
	}
	return c
}

// Profile looks up a vehicle by ID
func (c *Catalog) Profile(id ID) (Profile, error) {
	p, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("unknown vehicle %q", id)
	}
	return p, nil
}

// All returns every profile in shop order
func (c *Catalog) All() []Profile {
	return append([]Profile(nil), c.profiles...)
}

// Default returns the free starting vehicle
func (c *Catalog) Default() Profile {
	for _, p := range c.profiles {
		if p.Archetype().Price == 0 {
			return p
		}
	}
	if len(c.profiles) > 0 {
		return c.profiles[0]
	}
	return nil
}
