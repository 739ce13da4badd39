package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAutopilot(t *testing.T) {
	thr := DefaultPhysics().FlipThreshold

	assert.Equal(t, Intent{Accelerate: true}, Autopilot(Vehicle{Grounded: true}, thr))
	assert.Equal(t, Intent{}, Autopilot(Vehicle{Grounded: true, Rotation: -0.7 * thr}, thr))
	assert.Equal(t, Intent{Brake: true}, Autopilot(Vehicle{Grounded: true, Rotation: 0.9 * thr}, thr))
	assert.Equal(t, Intent{Accelerate: true, Dive: true}, Autopilot(Vehicle{}, thr))
	assert.Equal(t, Intent{Accelerate: true}, Autopilot(Vehicle{Rotation: 3}, 0))
}

func TestAutopilot_DrivesARun(t *testing.T) {
	c := newTestContext(t, DefaultConfig())
	thr := c.Config().Physics.FlipThreshold

	for i := 0; i < 600 && c.State == Running; i++ {
		c.SetIntent(Autopilot(c.Vehicle, thr))
		c.Step()
	}
	assert.Greater(t, c.Scroll, 0.0)
	assert.Greater(t, c.Stats.TopSpeed, 0)
}
