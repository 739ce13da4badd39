package sim

import "github.com/golangdaddy/hillclimber/pkg/models"

// Start resets everything run-scoped and begins a new run with the selected
// vehicle and current upgrades. It can be called from any state.
func (c *Context) Start() {
	c.profile = c.Progression.Selected()
	stats := c.profile.Stats(c.Progression.Levels())

	c.Vehicle = Vehicle{
		X:      c.cfg.Physics.StartX,
		Y:      c.cfg.Physics.StartY,
		Width:  stats.Width,
		Height: stats.Height,
		Fuel:   stats.MaxFuel,
		Stats:  stats,
	}
	c.Scroll = 0
	c.Tick = 0
	c.Stats = models.RunStats{}
	c.Reason = ReasonNone

	c.Terrain.Reset()
	c.Pickups.Seed(c.Terrain.Points(), c.Terrain)
	c.Particles.Clear()

	c.intent = Intent{}
	c.jumpHeld = false
	c.jumpArmed = false
	c.State = Running

	c.log.Info().
		Str("vehicle", string(c.profile.ID())).
		Interface("upgrades", c.Progression.Levels()).
		Msg("run started")
	for _, o := range c.observers {
		o.OnRunStarted(c.profile.ID())
	}
}

// Pause freezes a running simulation
func (c *Context) Pause() {
	if c.State == Running {
		c.State = Paused
	}
}

// Resume continues a paused simulation
func (c *Context) Resume() {
	if c.State == Paused {
		c.State = Running
	}
}

// TogglePause flips between Running and Paused
func (c *Context) TogglePause() {
	switch c.State {
	case Running:
		c.State = Paused
	case Paused:
		c.State = Running
	}
}

// Abandon drops a running or paused run without a result
func (c *Context) Abandon() {
	if c.State != Running && c.State != Paused {
		return
	}
	c.State = Idle
	c.Particles.Clear()
	c.log.Info().Int("distance", c.Stats.Distance).Msg("run abandoned")
}

// End finishes the run with the given reason. Ending a run that is not live is a no-op.
func (c *Context) End(reason Reason) {
	if c.State != Running && c.State != Paused {
		return
	}
	c.State = Ended
	c.Reason = reason

	sum := c.Summary()
	c.log.Info().
		Str("reason", string(reason)).
		Int("distance", sum.Distance).
		Int("coins", sum.Coins).
		Int("topSpeed", sum.TopSpeed).
		Int("score", sum.Score).
		Uint64("ticks", sum.Ticks).
		Msg("run ended")
	for _, o := range c.observers {
		o.OnRunEnded(sum)
	}
}
