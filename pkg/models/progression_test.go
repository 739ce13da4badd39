package models

import (
	"testing"

	"github.com/golangdaddy/hillclimber/pkg/vehicle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProgression_OwnsDefault(t *testing.T) {
	p := NewProgression(vehicle.DefaultCatalog())

	assert.Equal(t, 0, p.Balance())
	assert.True(t, p.Owns(vehicle.Jeep))
	assert.False(t, p.Owns(vehicle.Bike))
	assert.Equal(t, vehicle.Jeep, p.Selected().ID())
	assert.Equal(t, []vehicle.ID{vehicle.Jeep}, p.Owned())
	assert.Equal(t, vehicle.BaseUpgrades(), p.Levels())
}

func TestPurchase_ExactBalance(t *testing.T) {
	p := NewProgression(vehicle.DefaultCatalog())
	p.Deposit(1000)

	require.NoError(t, p.Purchase(vehicle.Bike))
	assert.Equal(t, 0, p.Balance())
	assert.True(t, p.Owns(vehicle.Bike))
	assert.Equal(t, vehicle.Bike, p.Selected().ID())
}

func TestPurchase_InsufficientFundsDoesNotMutate(t *testing.T) {
	p := NewProgression(vehicle.DefaultCatalog())
	p.Deposit(999)

	err := p.Purchase(vehicle.Truck)
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, 999, p.Balance())
	assert.False(t, p.Owns(vehicle.Truck))
	assert.Equal(t, vehicle.Jeep, p.Selected().ID())
}

func TestPurchase_OwnedJustSelects(t *testing.T) {
	p := NewProgression(vehicle.DefaultCatalog())
	p.Deposit(1200)
	require.NoError(t, p.Purchase(vehicle.Racer))
	require.NoError(t, p.Select(vehicle.Jeep))

	require.NoError(t, p.Purchase(vehicle.Racer))
	assert.Equal(t, 200, p.Balance())
	assert.Equal(t, vehicle.Racer, p.Selected().ID())
}

func TestPurchase_Unknown(t *testing.T) {
	p := NewProgression(vehicle.DefaultCatalog())
	assert.ErrorIs(t, p.Purchase("hovercraft"), ErrUnknownVehicle)
}

func TestSelect_RequiresOwnership(t *testing.T) {
	p := NewProgression(vehicle.DefaultCatalog())

	assert.ErrorIs(t, p.Select(vehicle.Monster), ErrNotOwned)
	assert.ErrorIs(t, p.Select("nope"), ErrUnknownVehicle)
	assert.Equal(t, vehicle.Jeep, p.Selected().ID())
}

func TestUpgrade(t *testing.T) {
	p := NewProgression(vehicle.DefaultCatalog())
	p.Deposit(120)

	require.NoError(t, p.Upgrade(Engine))
	assert.Equal(t, 2, p.Level(Engine))
	assert.Equal(t, 70, p.Balance())

	require.NoError(t, p.Upgrade(Grip))
	assert.Equal(t, 40, p.Balance())

	require.NoError(t, p.Upgrade(Fuel))
	assert.Equal(t, 0, p.Balance())

	err := p.Upgrade(Grip)
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, 2, p.Level(Grip))
	assert.False(t, p.CanUpgrade(Grip))
}

func TestUpgrade_CapsAtMaxLevel(t *testing.T) {
	p := NewProgression(vehicle.DefaultCatalog())
	p.Deposit(1000)

	for i := 1; i < vehicle.MaxUpgradeLevel; i++ {
		require.NoError(t, p.Upgrade(Grip))
	}
	balance := p.Balance()

	assert.ErrorIs(t, p.Upgrade(Grip), ErrMaxLevel)
	assert.Equal(t, vehicle.MaxUpgradeLevel, p.Level(Grip))
	assert.Equal(t, balance, p.Balance())
	assert.False(t, p.CanUpgrade(Grip))
	assert.ErrorIs(t, p.Upgrade("turbo"), ErrUnknownUpgrade)
}

func TestStats_FollowUpgrades(t *testing.T) {
	p := NewProgression(vehicle.DefaultCatalog())
	base := p.Stats()

	p.Deposit(1000)
	require.NoError(t, p.Upgrade(Engine))
	require.NoError(t, p.Upgrade(Fuel))
	require.NoError(t, p.Upgrade(Grip))

	s := p.Stats()
	assert.InDelta(t, base.MaxSpeed+2, s.MaxSpeed, 1e-9)
	assert.InDelta(t, base.Acceleration+0.05, s.Acceleration, 1e-9)
	assert.InDelta(t, base.MaxFuel+20, s.MaxFuel, 1e-9)
	assert.InDelta(t, base.FuelConsumption*0.9, s.FuelConsumption, 1e-9)
	assert.InDelta(t, 0.985, s.Grip, 1e-9)
}

func TestDeposit_IgnoresNonPositive(t *testing.T) {
	p := NewProgression(vehicle.DefaultCatalog())
	p.Deposit(5)
	p.Deposit(0)
	p.Deposit(-3)
	assert.Equal(t, 5, p.Balance())
}

func TestRunStats(t *testing.T) {
	var s RunStats
	s.Observe(1234, 1.27)
	assert.Equal(t, 123, s.Distance)
	assert.Equal(t, 12, s.CurrentSpeed)
	assert.Equal(t, 12, s.TopSpeed)

	s.Observe(1300, 0.5)
	assert.Equal(t, 5, s.CurrentSpeed)
	assert.Equal(t, 12, s.TopSpeed)

	s.CoinsThisRun = 4
	assert.Equal(t, 130+40, s.Score())
}
