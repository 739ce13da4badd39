package vehicle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	all := c.All()
	require.Len(t, all, 6)
	assert.Equal(t, Jeep, all[0].ID())

	def := c.Default()
	require.NotNil(t, def)
	assert.Equal(t, Jeep, def.ID())
	assert.Equal(t, 0, def.Archetype().Price)
	assert.False(t, def.Archetype().Locked)

	for _, p := range all[1:] {
		assert.Equal(t, 1000, p.Archetype().Price, p.ID())
		assert.True(t, p.Archetype().Locked, p.ID())
	}
}

func TestCatalogProfile(t *testing.T) {
	c := DefaultCatalog()

	p, err := c.Profile(Truck)
	require.NoError(t, err)
	assert.Equal(t, "Truck", p.Archetype().Name)
	assert.Equal(t, BodyTruck, p.Visual().Body)

	_, err = c.Profile("tank")
	assert.Error(t, err)
}

func TestStats_BaseLevels(t *testing.T) {
	p, err := DefaultCatalog().Profile(Jeep)
	require.NoError(t, err)

	s := p.Stats(BaseUpgrades())
	assert.Equal(t, 12.0, s.MaxSpeed)
	assert.Equal(t, 0.25, s.Acceleration)
	assert.Equal(t, 100.0, s.MaxFuel)
	assert.Equal(t, 0.08, s.FuelConsumption)
	assert.Equal(t, 0.99, s.Grip)
	assert.Equal(t, 80.0, s.Width)
	assert.Equal(t, 50.0, s.Height)
}

func TestStats_MaxLevels(t *testing.T) {
	p, err := DefaultCatalog().Profile(Bike)
	require.NoError(t, err)

	s := p.Stats(Upgrades{Engine: 5, Fuel: 5, Grip: 5})
	assert.InDelta(t, 26, s.MaxSpeed, 1e-9)
	assert.InDelta(t, 0.6, s.Acceleration, 1e-9)
	assert.InDelta(t, 160, s.MaxFuel, 1e-9)
	assert.InDelta(t, 0.12*0.6, s.FuelConsumption, 1e-9)
	assert.InDelta(t, 0.97, s.Grip, 1e-9)
}

func TestStats_ClampsLevels(t *testing.T) {
	p := DefaultCatalog().Default()

	assert.Equal(t, p.Stats(BaseUpgrades()), p.Stats(Upgrades{}))
	assert.Equal(t, p.Stats(Upgrades{Engine: 5, Fuel: 5, Grip: 5}), p.Stats(Upgrades{Engine: 9, Fuel: 9, Grip: 9}))
}
