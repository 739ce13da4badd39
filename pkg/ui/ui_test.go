package ui

import (
	"image"
	"testing"

	"github.com/golangdaddy/hillclimber/pkg/models"
	"github.com/golangdaddy/hillclimber/pkg/sim"
	"github.com/golangdaddy/hillclimber/pkg/vehicle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveCursor(t *testing.T) {
	// 3 columns, 6 cards
	assert.Equal(t, 1, moveCursor(0, 1, 0, 3, 6))
	assert.Equal(t, 0, moveCursor(0, -1, 0, 3, 6))
	assert.Equal(t, 2, moveCursor(2, 1, 0, 3, 6), "no wrap to next row")
	assert.Equal(t, 3, moveCursor(3, -1, 0, 3, 6), "no wrap to previous row")
	assert.Equal(t, 4, moveCursor(1, 0, 1, 3, 6))
	assert.Equal(t, 4, moveCursor(4, 0, 1, 3, 6))
	assert.Equal(t, 1, moveCursor(4, 0, -1, 3, 6))

	// Short last row
	assert.Equal(t, 1, moveCursor(1, 0, 1, 3, 4))
	assert.Equal(t, 3, moveCursor(3, 1, 0, 3, 4))
}

func TestButtonHit(t *testing.T) {
	b := newButton("GO", 100, 50, 80, 20)
	assert.Equal(t, image.Rect(60, 50, 140, 70), b.rect)

	assert.True(t, b.hit([]image.Point{{X: 100, Y: 60}}))
	assert.False(t, b.hit([]image.Point{{X: 100, Y: 70}}))
	assert.False(t, b.hit(nil))

	b.disabled = true
	assert.False(t, b.hit([]image.Point{{X: 100, Y: 60}}))
}

func TestUpgradeLabel(t *testing.T) {
	assert.Equal(t, "ENGINE Lv 1/5  50c", upgradeLabel(models.Engine, 1))
	assert.Equal(t, "GRIP Lv 5 MAX", upgradeLabel(models.Grip, 5))
}

type fakeShop struct {
	prog      *models.Progression
	upgrades  []models.Track
	purchases []vehicle.ID
	err       error
}

func (f *fakeShop) Purchase(id vehicle.ID) error {
	f.purchases = append(f.purchases, id)
	return f.prog.Purchase(id)
}

func (f *fakeShop) Upgrade(tr models.Track) error {
	f.upgrades = append(f.upgrades, tr)
	if f.err != nil {
		return f.err
	}
	return f.prog.Upgrade(tr)
}

func TestUpgradeRow_Refresh(t *testing.T) {
	prog := models.NewProgression(vehicle.DefaultCatalog())
	row := newUpgradeRow(prog, &fakeShop{prog: prog}, 640, 500)
	require.Len(t, row.buttons, 3)

	for _, b := range row.buttons {
		assert.True(t, b.disabled, "nothing is affordable with no coins")
	}

	prog.Deposit(45)
	row.refresh()
	assert.True(t, row.buttons[0].disabled, "engine costs 50")
	assert.False(t, row.buttons[1].disabled)
	assert.False(t, row.buttons[2].disabled)

	// Buttons do not overlap
	assert.False(t, row.buttons[0].rect.Overlaps(row.buttons[1].rect))
	assert.False(t, row.buttons[1].rect.Overlaps(row.buttons[2].rect))
}

func center(r image.Rectangle) image.Point {
	return image.Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
}

func TestUpgradeRow_Click(t *testing.T) {
	prog := models.NewProgression(vehicle.DefaultCatalog())
	prog.Deposit(45)
	shop := &fakeShop{prog: prog}
	row := newUpgradeRow(prog, shop, 640, 500)

	row.update([]image.Point{center(row.buttons[2].rect)})
	assert.Equal(t, []models.Track{models.Grip}, shop.upgrades)
	assert.Equal(t, 2, prog.Level(models.Grip))
	assert.Equal(t, 15, prog.Balance())
	assert.True(t, row.buttons[2].disabled)

	// A disabled button is not forwarded to the shop
	row.update([]image.Point{center(row.buttons[2].rect)})
	assert.Len(t, shop.upgrades, 1)
}

func TestUpgradeRow_ShopError(t *testing.T) {
	prog := models.NewProgression(vehicle.DefaultCatalog())
	prog.Deposit(100)
	shop := &fakeShop{prog: prog, err: models.ErrMaxLevel}
	row := newUpgradeRow(prog, shop, 640, 500)

	row.update([]image.Point{center(row.buttons[0].rect)})
	assert.Equal(t, []models.Track{models.Engine}, shop.upgrades)
	assert.Equal(t, 1, prog.Level(models.Engine))
	assert.Equal(t, 100, prog.Balance())
	assert.False(t, row.buttons[0].disabled)
}

func TestPriceTag(t *testing.T) {
	prog := models.NewProgression(vehicle.DefaultCatalog())
	jeep, _ := prog.Catalog().Profile(vehicle.Jeep)
	bike, _ := prog.Catalog().Profile(vehicle.Bike)

	tag, _ := priceTag(prog, jeep)
	assert.Equal(t, "SELECTED", tag)
	tag, _ = priceTag(prog, bike)
	assert.Equal(t, "LOCKED  1000c", tag)

	prog.Deposit(1000)
	tag, _ = priceTag(prog, bike)
	assert.Equal(t, "BUY  1000c", tag)

	require.NoError(t, prog.Purchase(vehicle.Bike))
	tag, _ = priceTag(prog, jeep)
	assert.Equal(t, "OWNED", tag)
}

func TestStatScale(t *testing.T) {
	profiles := vehicle.DefaultCatalog().All()
	m := statScale(profiles, vehicle.BaseUpgrades())
	for _, p := range profiles {
		s := p.Stats(vehicle.BaseUpgrades())
		assert.LessOrEqual(t, s.MaxSpeed, m.MaxSpeed)
		assert.LessOrEqual(t, s.MaxFuel, m.MaxFuel)
		assert.LessOrEqual(t, s.Acceleration, m.Acceleration)
	}
}

func TestNoteAlpha(t *testing.T) {
	assert.Equal(t, 1.0, noteAlpha(180))
	assert.Equal(t, 1.0, noteAlpha(30))
	assert.Equal(t, 0.5, noteAlpha(15))
	assert.Zero(t, noteAlpha(0))
}

func TestReasonTitle(t *testing.T) {
	assert.Equal(t, "OUT OF FUEL!", reasonTitle(sim.OutOfFuel))
	assert.Equal(t, "GAME OVER", reasonTitle(sim.ReasonNone))
}
