package sim

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golangdaddy/hillclimber/pkg/particle"
)

// Step advances the simulation by one tick. It is a no-op unless the run is Running.
func (c *Context) Step() {
	if c.State != Running {
		return
	}
	c.Tick++

	p := c.cfg.Physics
	v := &c.Vehicle
	in := c.intent

	// Throttle and brake
	throttling := in.Accelerate && v.Fuel > 0
	if throttling {
		v.Speed += v.Stats.Acceleration
		v.Fuel = math.Max(0, v.Fuel-v.Stats.FuelConsumption)
	}
	if in.Brake && v.Speed > 0 {
		v.Speed -= p.BrakeFactor * v.Stats.Acceleration
	}

	// Jump, consumed once it fires
	if c.jumpArmed && v.Grounded && v.Fuel > 0 {
		v.VelocityY = -p.JumpImpulse
		v.Grounded = false
		v.Fuel = math.Max(0, v.Fuel-p.JumpFuelCost)
		c.jumpArmed = false
	}

	if in.Dive && !v.Grounded {
		v.VelocityY += p.DiveForce
	}

	v.Speed *= v.Stats.Grip
	v.Speed = math.Max(0, math.Min(v.Stats.MaxSpeed, v.Speed))

	c.Scroll += v.Speed
	c.Stats.Observe(c.Scroll, v.Speed)

	c.Terrain.Extend(c.Scroll)
	c.Pickups.Update(c.Scroll, c.Terrain)

	// Tilt toward the slope under the footprint
	back := c.groundAt(v.X)
	front := c.groundAt(v.X + v.Width)
	target := math.Atan2(front-back, v.Width)
	v.Rotation += (target - v.Rotation) * p.RotationSmoothing

	v.VelocityY += p.Gravity
	v.Y += v.VelocityY

	c.settle(v.Y)
	c.checkTerminal()
	if c.State != Running {
		return
	}

	v.WheelAngle += v.Speed * p.WheelSpin
	if throttling && c.rng.Float64() < p.ExhaustChance {
		c.exhaust()
	}

	c.resolveCollisions()
	c.Particles.Update()
}

// settle rests the vehicle on the highest of the three ground samples under it
func (c *Context) settle(y float64) {
	p := c.cfg.Physics
	v := &c.Vehicle

	ground := math.Min(c.groundAt(v.X+v.Width/2), math.Min(c.groundAt(v.X+v.Width), c.groundAt(v.X)))
	if y+v.Height < ground-p.GroundMargin {
		v.Grounded = false
		return
	}

	v.Y = ground - v.Height - p.GroundMargin
	if v.VelocityY > p.BounceThreshold {
		v.VelocityY = -v.VelocityY * p.BounceDamping
	} else {
		v.VelocityY = 0
	}
	v.Grounded = true
}

// checkTerminal ends the run on the first matching condition
func (c *Context) checkTerminal() {
	p := c.cfg.Physics
	v := c.Vehicle

	switch {
	case v.Fuel <= 0 && v.Speed < p.StopThreshold:
		c.End(OutOfFuel)
	case math.Abs(v.Rotation) > p.FlipThreshold:
		c.End(Flipped)
	// settle keeps the centre above this line, so only a hand-placed vehicle lands here
	case v.Center()[1] >= c.groundAt(v.X+v.Width/2)-p.CrashTolerance:
		c.End(Crashed)
	case v.Y > c.cfg.Terrain.ScreenHeight:
		c.End(FellOff)
	}
}

// exhaust puffs a grey particle out of the back of the vehicle
func (c *Context) exhaust() {
	v := c.Vehicle
	origin := mgl64.Vec2{
		v.X - v.Width/2 + math.Cos(v.Rotation)*10,
		v.Y + v.Height/2 + math.Sin(v.Rotation)*10,
	}
	a := c.rng.Float64()*0.5 + 0.3
	shade := uint8(100 * a)
	c.Particles.Add(particle.Particle{
		Pos:     origin,
		Vel:     mgl64.Vec2{-c.rng.Float64()*4 - v.Speed*0.3, c.rng.Float64()*3 - 1.5},
		Life:    25,
		MaxLife: 25,
		Size:    c.rng.Float64()*6 + 4,
		Color:   color.RGBA{shade, shade, shade, uint8(255 * a)},
	})
}
