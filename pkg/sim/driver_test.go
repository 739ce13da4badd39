package sim

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/golangdaddy/hillclimber/pkg/models"
	"github.com/golangdaddy/hillclimber/pkg/vehicle"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDriver(tps int) (*Driver, *Context) {
	prog := models.NewProgression(vehicle.DefaultCatalog())
	c := NewContext(flatConfig(), prog, rand.New(rand.NewSource(3)), zerolog.Nop())
	return NewDriver(c, tps, zerolog.Nop()), c
}

func TestDriver_StopsAtMaxTicks(t *testing.T) {
	d, c := newDriver(0)

	var snaps int
	sum, err := d.Run(context.Background(), 50, func(Snapshot) { snaps++ })
	require.NoError(t, err)
	assert.Equal(t, Stopped, sum.Reason)
	assert.Equal(t, uint64(50), sum.Ticks)
	assert.Equal(t, 50, snaps)
	assert.Equal(t, Ended, c.State)
}

func TestDriver_AppliesIntents(t *testing.T) {
	d, c := newDriver(0)

	_, err := d.Run(context.Background(), 120, func(s Snapshot) {
		d.Send(Intent{Accelerate: true})
	})
	require.NoError(t, err)
	assert.Greater(t, c.Scroll, 0.0)
	assert.Greater(t, c.Stats.TopSpeed, 0)
}

func TestDriver_SendReplacesPendingIntent(t *testing.T) {
	d, _ := newDriver(0)
	d.Send(Intent{Brake: true})
	d.Send(Intent{Accelerate: true})

	got := <-d.intents
	assert.Equal(t, Intent{Accelerate: true}, got)
}

func TestDriver_EndsWithRun(t *testing.T) {
	d, c := newDriver(0)

	sum, err := d.Run(context.Background(), 1000, func(s Snapshot) {
		c.Vehicle.Fuel = 0
	})
	require.NoError(t, err)
	assert.Equal(t, OutOfFuel, sum.Reason)
	assert.Equal(t, uint64(2), sum.Ticks)
}

func TestDriver_Cancel(t *testing.T) {
	d, _ := newDriver(1000)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := d.Run(ctx, 0, nil)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
