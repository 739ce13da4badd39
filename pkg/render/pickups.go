package render

import (
	"image/color"
	"math"

	"github.com/golangdaddy/hillclimber/pkg/sim"
	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	coinGlow   = color.NRGBA{255, 215, 0, 90}
	coinBody   = color.RGBA{0xFF, 0xD7, 0x00, 0xFF}
	coinShine  = color.RGBA{0xFF, 0xE5, 0x5C, 0xFF}
	coinEdge   = color.RGBA{0xFF, 0x8C, 0x00, 0xFF}
	coinInner  = color.RGBA{0xFF, 0xA5, 0x00, 0xFF}
	canGlow    = color.NRGBA{6, 255, 165, 70}
	canBody    = color.RGBA{0x06, 0xFF, 0xA5, 0xFF}
	canShade   = color.RGBA{0x04, 0xD9, 0x8B, 0xFF}
	canTop     = color.RGBA{0x03, 0xB8, 0x76, 0xFF}
	canShine   = color.NRGBA{255, 255, 255, 102}
	glowMargin = float32(8)
)

var labelFace = text.NewGoXFace(bitmapfont.Face)

// drawLabel centers a short string on x, y
func drawLabel(dst *ebiten.Image, s string, x, y float32, clr color.Color) {
	w := text.Advance(s, labelFace)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x)-w/2, float64(y)-8)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, labelFace, op)
}

// coinPulse breathes the coin size with the tick count
func coinPulse(tick uint64) float64 {
	return math.Sin(float64(tick)*0.083)*0.2 + 1
}

// coinSquash is the horizontal scale that makes a coin look like it spins
func coinSquash(spin float64) float64 {
	return math.Max(0.2, math.Abs(math.Cos(spin)))
}

func (r *Renderer) coinSprite(radius float32) *ebiten.Image {
	if r.coin != nil {
		return r.coin
	}
	size := int(math.Ceil(float64(2 * (radius + glowMargin))))
	img := ebiten.NewImage(size, size)
	c := float32(size) / 2

	vector.DrawFilledCircle(img, c, c, radius+glowMargin, coinGlow, true)
	vector.DrawFilledCircle(img, c, c, radius, coinBody, true)
	vector.DrawFilledCircle(img, c-radius*0.3, c-radius*0.3, radius*0.4, coinShine, true)
	vector.StrokeCircle(img, c, c, radius, 3, coinEdge, true)
	vector.StrokeCircle(img, c, c, radius*0.7, 2, coinInner, true)
	drawLabel(img, "$", c, c, coinEdge)

	r.coin = img
	return img
}

func (r *Renderer) drawCoins(screen *ebiten.Image, s sim.Snapshot) {
	pulse := coinPulse(s.Tick)
	for _, c := range s.Coins {
		if c.Collected {
			continue
		}
		sprite := r.coinSprite(float32(c.Radius))
		half := float64(sprite.Bounds().Dx()) / 2

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-half, -half)
		op.GeoM.Scale(coinSquash(c.Spin)*pulse, pulse)
		op.GeoM.Translate(c.X-s.Scroll, c.Y)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(sprite, op)
	}
}

func (r *Renderer) canSprite(w, h float32) *ebiten.Image {
	if r.can != nil {
		return r.can
	}
	glow := w * 1.5
	size := int(math.Ceil(float64(2 * glow)))
	if hs := int(math.Ceil(float64(h))); hs > size {
		size = hs
	}
	img := ebiten.NewImage(size, size)
	cx, cy := float32(size)/2, float32(size)/2
	x, y := cx-w/2, cy-h/2

	vector.DrawFilledCircle(img, cx, cy, glow, canGlow, true)
	vector.DrawFilledRect(img, x, y, w, h, canShade, true)
	vector.DrawFilledRect(img, x+w*0.2, y, w*0.6, h, canBody, true)
	vector.DrawFilledRect(img, x, y, w, 8, canTop, true)

	// Handle
	vector.StrokeLine(img, cx-w*0.3, y+4, cx-w*0.3, y-4, 3, canTop, true)
	vector.StrokeLine(img, cx-w*0.3, y-4, cx+w*0.3, y-4, 3, canTop, true)
	vector.StrokeLine(img, cx+w*0.3, y-4, cx+w*0.3, y+4, 3, canTop, true)

	for i := float32(1); i < 4; i++ {
		vector.StrokeLine(img, x, y+h*i/4, x+w, y+h*i/4, 2, ridgeColor, true)
	}
	drawLabel(img, "F", cx, cy, color.White)
	vector.DrawFilledRect(img, x+3, y+10, 6, h-20, canShine, true)

	r.can = img
	return img
}

func (r *Renderer) drawCans(screen *ebiten.Image, s sim.Snapshot) {
	for _, c := range s.Cans {
		if c.Collected {
			continue
		}
		sprite := r.canSprite(float32(c.Width), float32(c.Height))
		half := float64(sprite.Bounds().Dx()) / 2
		cx, cy := c.Center()

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(cx-s.Scroll-half, cy-half)
		screen.DrawImage(sprite, op)
	}
}
