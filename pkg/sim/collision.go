package sim

import (
	"fmt"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golangdaddy/hillclimber/pkg/particle"
)

var (
	coinBurst = particle.Burst{
		Count:  12,
		Spread: 8,
		Lift:   -2,
		Life:   25,
		Size:   5,
		Color:  color.RGBA{0xFF, 0xD7, 0x00, 0xFF},
	}
	fuelBurst = particle.Burst{
		Count:  10,
		Spread: 6,
		Lift:   -3,
		Life:   20,
		Size:   6,
		Color:  color.RGBA{0x06, 0xFF, 0xA5, 0xFF},
	}
)

// resolveCollisions collects every uncollected coin and can touching the vehicle
func (c *Context) resolveCollisions() {
	v := c.Vehicle
	center := v.Center()

	for i, coin := range c.Pickups.Coins() {
		if coin.Collected {
			continue
		}
		pos := mgl64.Vec2{coin.X - c.Scroll, coin.Y}
		if pos.Sub(center).Len() >= coin.Radius+v.Width/3 {
			continue
		}
		if !c.Pickups.CollectCoin(i) {
			continue
		}
		c.Stats.CoinsThisRun++
		c.Progression.Deposit(1)
		c.Particles.Emit(pos, coinBurst)
		c.Notes.Push("+1 COIN", NoteCoin)
		c.notifyPickup(PickupCoin)
	}

	for i, can := range c.Pickups.Cans() {
		if can.Collected {
			continue
		}
		cx, cy := can.Center()
		pos := mgl64.Vec2{cx - c.Scroll, cy}
		if pos.Sub(center).Len() >= v.Width/2+can.Width/2 {
			continue
		}
		if !c.Pickups.CollectCan(i) {
			continue
		}
		refill := c.cfg.Physics.FuelRefill
		c.Vehicle.Fuel = math.Min(c.Vehicle.Fuel+refill, c.Vehicle.Stats.MaxFuel)
		c.Particles.Emit(pos, fuelBurst)
		c.Notes.Push(fmt.Sprintf("+%.0f FUEL", refill), NoteFuel)
		c.notifyPickup(PickupFuel)
	}
}

func (c *Context) notifyPickup(kind PickupKind) {
	for _, o := range c.observers {
		o.OnPickup(kind)
	}
}
