package sim

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Driver steps a context at a fixed rate on its own goroutine. Intents arrive over
// a channel so the context keeps a single writer.
type Driver struct {
	sim     *Context
	tps     int
	intents chan Intent
	log     zerolog.Logger
}

// NewDriver creates a driver. A tps of zero or less steps as fast as possible.
func NewDriver(c *Context, tps int, log zerolog.Logger) *Driver {
	return &Driver{
		sim:     c,
		tps:     tps,
		intents: make(chan Intent, 1),
		log:     log.With().Str("component", "driver").Logger(),
	}
}

// Send queues an intent for the next tick, replacing one that has not been read yet
func (d *Driver) Send(in Intent) {
	for {
		select {
		case d.intents <- in:
			return
		default:
		}
		select {
		case <-d.intents:
		default:
		}
	}
}

// Run starts a fresh run and steps it until it ends, maxTicks is reached (when
// non-zero) or ctx is cancelled. onTick, if set, receives a snapshot after every
// tick on the driver goroutine.
func (d *Driver) Run(ctx context.Context, maxTicks uint64, onTick func(Snapshot)) (Summary, error) {
	var tick <-chan time.Time
	if d.tps > 0 {
		t := time.NewTicker(time.Second / time.Duration(d.tps))
		defer t.Stop()
		tick = t.C
	}

	d.sim.Start()
	d.log.Debug().Int("tps", d.tps).Uint64("maxTicks", maxTicks).Msg("driver started")

	for {
		if tick != nil {
			select {
			case <-ctx.Done():
				return d.sim.Summary(), ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return d.sim.Summary(), err
		}

		select {
		case in := <-d.intents:
			d.sim.SetIntent(in)
		default:
		}

		d.sim.Step()
		d.sim.Notes.Update()
		if onTick != nil {
			onTick(d.sim.Snapshot())
		}

		if d.sim.State == Ended {
			return d.sim.Summary(), nil
		}
		if maxTicks > 0 && d.sim.Tick >= maxTicks {
			d.sim.End(Stopped)
			return d.sim.Summary(), nil
		}
	}
}
