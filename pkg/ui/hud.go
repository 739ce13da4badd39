package ui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/golangdaddy/hillclimber/pkg/input"
	"github.com/golangdaddy/hillclimber/pkg/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// stabilityColor tints the stability readout
func stabilityColor(s sim.Stability) color.Color {
	switch s {
	case sim.Stable:
		return success
	case sim.Careful:
		return warning
	}
	return danger
}

// fuelColor picks the gauge color for a fill percentage
func fuelColor(h sim.HUD) color.Color {
	switch {
	case h.LowFuel:
		return danger
	case h.FuelPercent < 50:
		return warning
	}
	return success
}

// DrawHUD draws the in-run overlay. tick drives the low fuel blink.
func DrawHUD(screen *ebiten.Image, h sim.HUD, tick uint64) {
	width := screen.Bounds().Dx()

	drawPanel(screen, image.Rect(16, 16, 256, 130), panelColor)
	drawTextAt(screen, fmt.Sprintf("DISTANCE %dm", h.Distance), 30, 36, 18, white)
	drawTextAt(screen, fmt.Sprintf("COINS    %d (+%d)", h.Coins, h.RunCoins), 30, 64, 18, gold)
	drawTextAt(screen, fmt.Sprintf("SPEED    %d km/h", h.Speed), 30, 92, 18, white)
	drawTextAt(screen, h.Stability.String(), 30, 116, 14, stabilityColor(h.Stability))

	barW := float32(320)
	barX := float32(width)/2 - barW/2
	drawBar(screen, barX, 24, barW, 22, h.FuelPercent/100, fuelColor(h))
	drawText(screen, fmt.Sprintf("FUEL %.0f", h.Fuel), float64(width)/2, 35, 14, white)

	if h.LowFuel && (tick/20)%2 == 0 {
		drawText(screen, "LOW FUEL!", float64(width)/2, 64, 20, danger)
	}

	// Tilt gauge: fills toward the flip threshold
	drawBar(screen, float32(width)-196, 24, 180, 14, h.Danger, stabilityColor(h.Stability))
	drawTextAt(screen, "TILT", float64(width)-240, 31, 14, muted)
}

// DrawPads draws the touch controls, brighter while held
func DrawPads(screen *ebiten.Image, r *input.Reader) {
	for _, p := range r.Pads() {
		fill := color.NRGBA{255, 255, 255, 40}
		if r.Held(p.Control) {
			fill = color.NRGBA{255, 255, 255, 110}
		}
		x, y := float32(p.Rect.Min.X), float32(p.Rect.Min.Y)
		w, h := float32(p.Rect.Dx()), float32(p.Rect.Dy())
		vector.DrawFilledRect(screen, x, y, w, h, fill, false)
		vector.StrokeRect(screen, x, y, w, h, 2, color.NRGBA{255, 255, 255, 120}, false)
		drawText(screen, p.Control.String(), float64(x+w/2), float64(y+h/2), 16, white)
	}
}

// noteColor tints a notification by kind
func noteColor(k sim.NotificationKind) color.RGBA {
	switch k {
	case sim.NoteCoin:
		return gold
	case sim.NoteFuel:
		return success
	case sim.NoteWarning:
		return danger
	}
	return white
}

// noteAlpha fades a notification during its last half second
func noteAlpha(ttl int) float64 {
	const fade = 30
	if ttl >= fade {
		return 1
	}
	if ttl <= 0 {
		return 0
	}
	return float64(ttl) / fade
}

// DrawNotifications stacks the live messages under the top of the screen, newest on top
func DrawNotifications(screen *ebiten.Image, notes []sim.Notification) {
	width := screen.Bounds().Dx()
	y := 110.0
	for i := len(notes) - 1; i >= 0; i-- {
		n := notes[i]
		a := noteAlpha(n.TTL)
		c := noteColor(n.Kind)
		fg := color.NRGBA{c.R, c.G, c.B, uint8(255 * a)}

		w := textWidth(n.Text, 22) + 40
		box := image.Rect(width/2-int(w/2), int(y)-20, width/2+int(w/2), int(y)+20)
		vector.DrawFilledRect(screen, float32(box.Min.X), float32(box.Min.Y), float32(box.Dx()), float32(box.Dy()),
			color.NRGBA{15, 20, 35, uint8(200 * a)}, false)
		drawText(screen, n.Text, float64(width)/2, y, 22, fg)
		y += 48
	}
}
