package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	face = text.NewGoXFace(bitmapfont.Face)

	white       = color.RGBA{255, 255, 255, 255}
	gold        = color.RGBA{255, 200, 50, 255}
	muted       = color.RGBA{150, 150, 150, 255}
	success     = color.RGBA{0x06, 0xFF, 0xA5, 0xFF}
	danger      = color.RGBA{0xFF, 0x45, 0x45, 0xFF}
	warning     = color.RGBA{0xFF, 0xA5, 0x00, 0xFF}
	panelColor  = color.NRGBA{15, 20, 35, 200}
	borderColor = color.RGBA{80, 80, 100, 255}
	buttonColor = color.RGBA{40, 40, 60, 255}
	activeColor = color.RGBA{60, 100, 140, 255}
	offColor    = color.RGBA{35, 35, 40, 255}
)

// textWidth is the width of str drawn at size
func textWidth(str string, size float64) float64 {
	return text.Advance(str, face) * size / 16.0
}

// drawText draws text centered on centerX, centerY
func drawText(screen *ebiten.Image, str string, centerX, centerY float64, size float64, clr color.Color) {
	drawTextAt(screen, str, centerX-textWidth(str, size)/2, centerY, size, clr)
}

// drawTextAt draws text whose left edge is x and vertical center is y
func drawTextAt(screen *ebiten.Image, str string, x, y float64, size float64, clr color.Color) {
	scale := size / 16.0
	scaledHeight := 16.0 * scale

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y-scaledHeight/2)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// drawPanel fills a translucent box with a border
func drawPanel(screen *ebiten.Image, r image.Rectangle, fill color.Color) {
	x, y := float32(r.Min.X), float32(r.Min.Y)
	w, h := float32(r.Dx()), float32(r.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, fill, false)
	vector.StrokeRect(screen, x, y, w, h, 2, borderColor, false)
}

// dim darkens the whole screen behind an overlay
func dim(screen *ebiten.Image, alpha uint8) {
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), color.NRGBA{0, 0, 0, alpha}, false)
}

// button is a clickable, labelled rectangle
type button struct {
	label    string
	rect     image.Rectangle
	disabled bool
}

func newButton(label string, centerX, y, width, height int) button {
	return button{
		label: label,
		rect:  image.Rect(centerX-width/2, y, centerX+width/2, y+height),
	}
}

// hit reports whether any of the points is on an enabled button
func (b button) hit(points []image.Point) bool {
	if b.disabled {
		return false
	}
	for _, pt := range points {
		if pt.In(b.rect) {
			return true
		}
	}
	return false
}

func (b button) draw(screen *ebiten.Image, selected bool) {
	bg, fg := color.Color(buttonColor), color.Color(white)
	switch {
	case b.disabled:
		bg, fg = offColor, muted
	case selected:
		bg, fg = activeColor, color.RGBA{200, 240, 255, 255}
	}
	drawPanel(screen, b.rect, bg)

	cx := float64(b.rect.Min.X+b.rect.Max.X) / 2
	cy := float64(b.rect.Min.Y+b.rect.Max.Y) / 2
	drawText(screen, b.label, cx, cy, 16, fg)
}

// drawBar draws a horizontal gauge filled to ratio
func drawBar(screen *ebiten.Image, x, y, w, h float32, ratio float64, fill color.Color) {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	vector.DrawFilledRect(screen, x, y, w, h, color.RGBA{30, 30, 40, 255}, false)
	vector.DrawFilledRect(screen, x, y, w*float32(ratio), h, fill, false)
	vector.StrokeRect(screen, x, y, w, h, 2, borderColor, false)
}
