package ui

import (
	"fmt"
	"image"
	"strings"

	"github.com/golangdaddy/hillclimber/pkg/models"
	"github.com/golangdaddy/hillclimber/pkg/vehicle"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Shop applies the player's purchases. Failures are reported to the player by
// the implementation; screens only need the error to decide what to redraw.
type Shop interface {
	Purchase(id vehicle.ID) error
	Upgrade(t models.Track) error
}

var upgradeKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3}

// upgradeLabel renders one track's button text
func upgradeLabel(t models.Track, level int) string {
	name := strings.ToUpper(string(t))
	if level >= vehicle.MaxUpgradeLevel {
		return fmt.Sprintf("%s Lv %d MAX", name, level)
	}
	return fmt.Sprintf("%s Lv %d/%d  %dc", name, level, vehicle.MaxUpgradeLevel, models.UpgradeCost[t])
}

// upgradeRow is the three upgrade buttons side by side
type upgradeRow struct {
	prog    *models.Progression
	shop    Shop
	buttons []button
}

func newUpgradeRow(prog *models.Progression, shop Shop, centerX, y int) *upgradeRow {
	const w, h, gap = 260, 44, 20
	row := &upgradeRow{prog: prog, shop: shop}
	left := centerX - (len(models.Tracks)*w+(len(models.Tracks)-1)*gap)/2
	for i := range models.Tracks {
		x := left + i*(w+gap)
		row.buttons = append(row.buttons, button{rect: image.Rect(x, y, x+w, y+h)})
	}
	row.refresh()
	return row
}

func (r *upgradeRow) refresh() {
	for i, t := range models.Tracks {
		r.buttons[i].label = upgradeLabel(t, r.prog.Level(t))
		r.buttons[i].disabled = !r.prog.CanUpgrade(t)
	}
}

// update buys a level for a clicked button or a pressed number key
func (r *upgradeRow) update(clicks []image.Point) {
	r.refresh()
	for i, t := range models.Tracks {
		if r.buttons[i].hit(clicks) || inpututil.IsKeyJustPressed(upgradeKeys[i]) {
			_ = r.shop.Upgrade(t) // notified by the shop
			r.refresh()
		}
	}
}

func (r *upgradeRow) draw(screen *ebiten.Image) {
	for _, b := range r.buttons {
		b.draw(screen, false)
	}
}
