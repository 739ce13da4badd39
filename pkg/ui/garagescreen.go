package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/golangdaddy/hillclimber/pkg/input"
	"github.com/golangdaddy/hillclimber/pkg/models"
	"github.com/golangdaddy/hillclimber/pkg/vehicle"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const garageColumns = 3

// GarageScreen lets the player buy, select and upgrade vehicles
type GarageScreen struct {
	prog     *models.Progression
	shop     Shop
	profiles []vehicle.Profile
	cards    []image.Rectangle
	cursor   int
	start    button
	back     button
	upgrades *upgradeRow
	onStart  func()
	onBack   func()
}

// NewGarageScreen lays the garage out for a width x height screen
func NewGarageScreen(width, height int, prog *models.Progression, shop Shop, onStart, onBack func()) *GarageScreen {
	gs := &GarageScreen{
		prog:     prog,
		shop:     shop,
		profiles: prog.Catalog().All(),
		onStart:  onStart,
		onBack:   onBack,
	}

	const cardW, cardH, gap = 300, 170, 24
	rows := (len(gs.profiles) + garageColumns - 1) / garageColumns
	left := width/2 - (garageColumns*cardW+(garageColumns-1)*gap)/2
	top := 110
	for i := range gs.profiles {
		col, row := i%garageColumns, i/garageColumns
		x := left + col*(cardW+gap)
		y := top + row*(cardH+gap)
		gs.cards = append(gs.cards, image.Rect(x, y, x+cardW, y+cardH))
	}

	below := top + rows*(cardH+gap)
	gs.upgrades = newUpgradeRow(prog, shop, width/2, below)
	gs.start = newButton("START", width/2+110, height-80, 200, 50)
	gs.back = newButton("BACK", width/2-110, height-80, 200, 50)

	for i, p := range gs.profiles {
		if p.ID() == prog.Selected().ID() {
			gs.cursor = i
		}
	}
	return gs
}

// moveCursor steps a grid cursor, clamping to the cards that exist
func moveCursor(cursor, dx, dy, cols, n int) int {
	next := cursor + dx + dy*cols
	if dx != 0 && (next/cols != cursor/cols || next < 0) {
		return cursor
	}
	if next < 0 || next >= n {
		return cursor
	}
	return next
}

// Update handles input for the garage screen
func (gs *GarageScreen) Update() error {
	n := len(gs.profiles)
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		gs.cursor = moveCursor(gs.cursor, -1, 0, garageColumns, n)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		gs.cursor = moveCursor(gs.cursor, 1, 0, garageColumns, n)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		gs.cursor = moveCursor(gs.cursor, 0, -1, garageColumns, n)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		gs.cursor = moveCursor(gs.cursor, 0, 1, garageColumns, n)
	}

	clicks := input.JustClicked()
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) && gs.cursor < n {
		_ = gs.shop.Purchase(gs.profiles[gs.cursor].ID()) // notified by the shop
	}
	for i, r := range gs.cards {
		for _, pt := range clicks {
			if pt.In(r) {
				gs.cursor = i
				_ = gs.shop.Purchase(gs.profiles[i].ID()) // notified by the shop
			}
		}
	}

	gs.upgrades.update(clicks)

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || gs.start.hit(clicks) {
		if gs.onStart != nil {
			gs.onStart()
		}
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || gs.back.hit(clicks) {
		if gs.onBack != nil {
			gs.onBack()
		}
	}
	return nil
}

// statScale finds the catalog maximum of each bar so cards share a scale
func statScale(profiles []vehicle.Profile, u vehicle.Upgrades) vehicle.Stats {
	var m vehicle.Stats
	for _, p := range profiles {
		s := p.Stats(u)
		if s.MaxSpeed > m.MaxSpeed {
			m.MaxSpeed = s.MaxSpeed
		}
		if s.Acceleration > m.Acceleration {
			m.Acceleration = s.Acceleration
		}
		if s.MaxFuel > m.MaxFuel {
			m.MaxFuel = s.MaxFuel
		}
	}
	return m
}

// priceTag is the status line under a vehicle's name
func priceTag(prog *models.Progression, p vehicle.Profile) (string, color.Color) {
	switch {
	case p.ID() == prog.Selected().ID():
		return "SELECTED", success
	case prog.Owns(p.ID()):
		return "OWNED", success
	case p.Archetype().Price > prog.Balance():
		return fmt.Sprintf("LOCKED  %dc", p.Archetype().Price), danger
	}
	return fmt.Sprintf("BUY  %dc", p.Archetype().Price), gold
}

// Draw renders the garage screen
func (gs *GarageScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(color.RGBA{20, 20, 30, 255})

	centerX := float64(width) / 2
	drawText(screen, "GARAGE", centerX, 45, 48, gold)
	drawText(screen, fmt.Sprintf("COINS: %d", gs.prog.Balance()), centerX, 85, 20, white)

	levels := gs.prog.Levels()
	scale := statScale(gs.profiles, levels)
	for i, p := range gs.profiles {
		gs.drawCard(screen, gs.cards[i], p, p.Stats(levels), scale, i == gs.cursor)
	}

	gs.upgrades.draw(screen)
	gs.start.draw(screen, false)
	gs.back.draw(screen, false)

	drawText(screen, "Arrows: Choose | Space: Buy/Select | 1-3: Upgrade | Enter: Drive",
		centerX, float64(height)-15, 14, muted)
}

func (gs *GarageScreen) drawCard(screen *ebiten.Image, r image.Rectangle, p vehicle.Profile, s, scale vehicle.Stats, focused bool) {
	fill := color.Color(buttonColor)
	if focused {
		fill = activeColor
	}
	drawPanel(screen, r, fill)

	vis := p.Visual()
	x, y := float64(r.Min.X)+16, float64(r.Min.Y)
	vector.DrawFilledRect(screen, float32(x), float32(y)+14, 28, 16, vis.Color, false)
	vector.DrawFilledRect(screen, float32(x), float32(y)+24, 28, 6, vis.Accent, false)
	drawTextAt(screen, strings.ToUpper(p.Archetype().Name), x+40, y+22, 18, white)

	tag, tagColor := priceTag(gs.prog, p)
	drawTextAt(screen, tag, x, y+52, 16, tagColor)

	bars := []struct {
		label string
		ratio float64
	}{
		{"SPEED", s.MaxSpeed / scale.MaxSpeed},
		{"ACCEL", s.Acceleration / scale.Acceleration},
		{"FUEL", s.MaxFuel / scale.MaxFuel},
	}
	for i, b := range bars {
		by := y + 82 + float64(i)*26
		drawTextAt(screen, b.label, x, by, 14, muted)
		drawBar(screen, float32(x)+70, float32(by)-7, float32(r.Dx())-102, 14, b.ratio, vis.Color)
	}
}
