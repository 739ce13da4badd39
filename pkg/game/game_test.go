package game

import (
	"testing"

	"github.com/golangdaddy/hillclimber/pkg/history"
	"github.com/golangdaddy/hillclimber/pkg/metrics"
	"github.com/golangdaddy/hillclimber/pkg/models"
	"github.com/golangdaddy/hillclimber/pkg/sim"
	"github.com/golangdaddy/hillclimber/pkg/vehicle"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
)

func newTestShop(t *testing.T, coins int) (*Shop, *models.Progression, *sim.Notifier) {
	t.Helper()
	prog := models.NewProgression(vehicle.DefaultCatalog())
	prog.Deposit(coins)
	notes := sim.NewNotifier(180)
	rec, err := metrics.New(noop.NewMeterProvider().Meter("test"))
	require.NoError(t, err)
	return NewShop(prog, notes, rec, zerolog.Nop()), prog, notes
}

func TestShop_Purchase(t *testing.T) {
	shop, prog, notes := newTestShop(t, 1000)

	require.NoError(t, shop.Purchase(vehicle.Bike))
	assert.Equal(t, 0, prog.Balance())
	assert.Equal(t, vehicle.Bike, prog.Selected().ID())

	active := notes.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "BIKE PURCHASED!", active[0].Text)
}

func TestShop_PurchaseShort(t *testing.T) {
	shop, prog, notes := newTestShop(t, 250)

	err := shop.Purchase(vehicle.Truck)
	assert.ErrorIs(t, err, models.ErrInsufficientFunds)
	assert.Equal(t, 250, prog.Balance())
	assert.False(t, prog.Owns(vehicle.Truck))

	active := notes.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "Need 750 more coins!", active[0].Text)
	assert.Equal(t, sim.NoteWarning, active[0].Kind)
}

func TestShop_SelectOwnedIsQuiet(t *testing.T) {
	shop, prog, notes := newTestShop(t, 0)

	require.NoError(t, shop.Purchase(vehicle.Jeep))
	assert.Equal(t, vehicle.Jeep, prog.Selected().ID())
	assert.Empty(t, notes.Active())
}

func TestShop_Upgrade(t *testing.T) {
	shop, prog, notes := newTestShop(t, 100)

	require.NoError(t, shop.Upgrade(models.Grip))
	assert.Equal(t, 2, prog.Level(models.Grip))
	assert.Equal(t, 70, prog.Balance())

	err := shop.Upgrade(models.Engine)
	require.NoError(t, err)
	err = shop.Upgrade(models.Engine)
	assert.ErrorIs(t, err, models.ErrInsufficientFunds)

	texts := []string{}
	for _, n := range notes.Active() {
		texts = append(texts, n.Text)
	}
	assert.Equal(t, []string{"TIRE GRIP UPGRADED!", "ENGINE UPGRADED!", "Need 30 more coins!"}, texts)
}

func TestShop_UpgradeMax(t *testing.T) {
	shop, prog, notes := newTestShop(t, 1000)
	for i := 1; i < vehicle.MaxUpgradeLevel; i++ {
		require.NoError(t, shop.Upgrade(models.Fuel))
	}
	notes.Clear()

	err := shop.Upgrade(models.Fuel)
	assert.ErrorIs(t, err, models.ErrMaxLevel)
	assert.Equal(t, vehicle.MaxUpgradeLevel, prog.Level(models.Fuel))
	require.Len(t, notes.Active(), 1)
	assert.Equal(t, "Already at max level!", notes.Active()[0].Text)
}

func TestShop_NilMetrics(t *testing.T) {
	prog := models.NewProgression(vehicle.DefaultCatalog())
	prog.Deposit(50)
	shop := NewShop(prog, sim.NewNotifier(10), nil, zerolog.Nop())
	assert.NoError(t, shop.Upgrade(models.Engine))
}

func TestScoreRows(t *testing.T) {
	rows := scoreRows([]history.Run{
		{Vehicle: "jeep", Reason: "Flipped", Distance: 120, Score: 150},
		{Vehicle: "bike", Reason: "Out of Fuel", Distance: 80, Score: 90},
	})
	require.Len(t, rows, 2)
	assert.Equal(t, "jeep", rows[0].Vehicle)
	assert.Equal(t, 150, rows[0].Score)
	assert.Equal(t, "Out of Fuel", rows[1].Reason)

	assert.Empty(t, scoreRows(nil))
}
