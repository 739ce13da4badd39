package models

import (
	"errors"
	"fmt"

	"github.com/golangdaddy/hillclimber/pkg/vehicle"
)

var (
	ErrInsufficientFunds = errors.New("not enough coins")
	ErrMaxLevel          = errors.New("upgrade already at max level")
	ErrUnknownVehicle    = errors.New("unknown vehicle")
	ErrNotOwned          = errors.New("vehicle not owned")
	ErrUnknownUpgrade    = errors.New("unknown upgrade")
)

// Track names one of the three upgrade paths
type Track string

const (
	Engine Track = "engine"
	Fuel   Track = "fuel"
	Grip   Track = "grip"
)

// Tracks lists the upgrade tracks in shop order
var Tracks = []Track{Engine, Fuel, Grip}

// UpgradeCost is the coin price of one level on each track
var UpgradeCost = map[Track]int{
	Engine: 50,
	Fuel:   40,
	Grip:   30,
}

// Progression holds everything that survives between runs: the coin balance,
// owned vehicles, the selection and upgrade levels. It is the only thing that
// mutates any of them.
type Progression struct {
	catalog  *vehicle.Catalog
	balance  int
	owned    map[vehicle.ID]bool
	selected vehicle.ID
	levels   vehicle.Upgrades
}

// NewProgression creates a fresh progression owning only the catalog's free vehicle
func NewProgression(catalog *vehicle.Catalog) *Progression {
	p := &Progression{
		catalog: catalog,
		owned:   make(map[vehicle.ID]bool),
		levels:  vehicle.BaseUpgrades(),
	}
	if def := catalog.Default(); def != nil {
		p.owned[def.ID()] = true
		p.selected = def.ID()
	}
	return p
}

// Catalog returns the vehicle catalog the progression is bound to
func (p *Progression) Catalog() *vehicle.Catalog {
	return p.catalog
}

// Balance returns the spendable lifetime coin total
func (p *Progression) Balance() int {
	return p.balance
}

// Deposit adds collected coins to the balance. Non-positive amounts are ignored.
func (p *Progression) Deposit(coins int) {
	if coins > 0 {
		p.balance += coins
	}
}

// Owns reports whether the vehicle has been bought
func (p *Progression) Owns(id vehicle.ID) bool {
	return p.owned[id]
}

// Owned returns the owned vehicle IDs in catalog order
func (p *Progression) Owned() []vehicle.ID {
	var out []vehicle.ID
	for _, prof := range p.catalog.All() {
		if p.owned[prof.ID()] {
			out = append(out, prof.ID())
		}
	}
	return out
}

// Selected returns the profile a new run will be built from
func (p *Progression) Selected() vehicle.Profile {
	prof, err := p.catalog.Profile(p.selected)
	if err != nil {
		return p.catalog.Default()
	}
	return prof
}

// Select makes an owned vehicle the active one
func (p *Progression) Select(id vehicle.ID) error {
	if _, err := p.catalog.Profile(id); err != nil {
		return fmt.Errorf("%w: %s", ErrUnknownVehicle, id)
	}
	if !p.owned[id] {
		return fmt.Errorf("%w: %s", ErrNotOwned, id)
	}
	p.selected = id
	return nil
}

// Purchase buys a vehicle and selects it. Buying an owned vehicle just selects it.
// Nothing changes when the balance is short.
func (p *Progression) Purchase(id vehicle.ID) error {
	prof, err := p.catalog.Profile(id)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrUnknownVehicle, id)
	}
	if p.owned[id] {
		p.selected = id
		return nil
	}

	price := prof.Archetype().Price
	if price > p.balance {
		return fmt.Errorf("%w: %s costs %d, have %d", ErrInsufficientFunds, id, price, p.balance)
	}

	p.balance -= price
	p.owned[id] = true
	p.selected = id
	return nil
}

// Levels returns the current upgrade levels
func (p *Progression) Levels() vehicle.Upgrades {
	return p.levels
}

// Level returns the level of a single track
func (p *Progression) Level(t Track) int {
	switch t {
	case Engine:
		return p.levels.Engine
	case Fuel:
		return p.levels.Fuel
	case Grip:
		return p.levels.Grip
	}
	return 0
}

// CanUpgrade reports whether the track is below max level and affordable
func (p *Progression) CanUpgrade(t Track) bool {
	cost, ok := UpgradeCost[t]
	return ok && p.Level(t) < vehicle.MaxUpgradeLevel && cost <= p.balance
}

// Upgrade buys one level on a track
func (p *Progression) Upgrade(t Track) error {
	cost, ok := UpgradeCost[t]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownUpgrade, t)
	}
	if p.Level(t) >= vehicle.MaxUpgradeLevel {
		return fmt.Errorf("%w: %s", ErrMaxLevel, t)
	}
	if cost > p.balance {
		return fmt.Errorf("%w: %s upgrade costs %d, have %d", ErrInsufficientFunds, t, cost, p.balance)
	}

	p.balance -= cost
	switch t {
	case Engine:
		p.levels.Engine++
	case Fuel:
		p.levels.Fuel++
	case Grip:
		p.levels.Grip++
	}
	return nil
}

// Stats derives the selected vehicle's tunables from the current upgrade levels
func (p *Progression) Stats() vehicle.Stats {
	return p.Selected().Stats(p.levels)
}
