package background

import (
	"image"
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	SunParallax   = 0.05
	CloudParallax = 0.3
	HillParallax  = 0.15
	CloudCount    = 8
	CloudSpacing  = 250
)

var (
	skyTop    = color.RGBA{0x87, 0xCE, 0xEB, 0xFF}
	skyMid    = color.RGBA{0xB0, 0xD9, 0xF1, 0xFF}
	skyLow    = color.RGBA{0xE0, 0xF6, 0xFF, 0xFF}
	sunColor  = color.RGBA{0xFF, 0xD7, 0x00, 0xFF}
	sunHalo   = color.RGBA{0x40, 0x36, 0x00, 0x40}
	cloudTint = color.RGBA{0xB3, 0xB3, 0xB3, 0xB3} // white at 0.7 alpha, premultiplied
)

// Generator creates the backdrop textures
type Generator struct {
	Width  int
	Height int
}

// NewGenerator creates a new background generator
func NewGenerator(width, height int) *Generator {
	return &Generator{
		Width:  width,
		Height: height,
	}
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), 255}
}

// SkyGradient returns a one pixel wide column to be stretched across the screen
func (g *Generator) SkyGradient() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 1, g.Height))
	for y := 0; y < g.Height; y++ {
		t := float64(y) / float64(g.Height)
		var c color.RGBA
		switch {
		case t < 0.5:
			c = lerp(skyTop, skyMid, t/0.5)
		case t < 0.7:
			c = lerp(skyMid, skyLow, (t-0.5)/0.2)
		default:
			c = skyLow
		}
		img.SetRGBA(0, y, c)
	}
	return img
}

// GenerateHills paints two layers of distant hills on a transparent image. The
// texture tiles horizontally.
func (g *Generator) GenerateHills(seed int64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	rng := rand.New(rand.NewSource(seed))

	layers := []struct {
		base  float64
		amp   float64
		color color.RGBA
	}{
		{base: 0.45, amp: 0.08, color: color.RGBA{0x9C, 0xC9, 0xA8, 0xFF}},
		{base: 0.55, amp: 0.06, color: color.RGBA{0x6F, 0xA8, 0x7C, 0xFF}},
	}

	for _, l := range layers {
		// Whole periods per width so the edges line up
		k1 := float64(1+rng.Intn(3)) * 2 * math.Pi / float64(g.Width)
		k2 := float64(3+rng.Intn(4)) * 2 * math.Pi / float64(g.Width)
		p1, p2 := rng.Float64()*2*math.Pi, rng.Float64()*2*math.Pi

		for x := 0; x < g.Width; x++ {
			h := l.base + l.amp*math.Sin(float64(x)*k1+p1) + l.amp*0.4*math.Sin(float64(x)*k2+p2)
			top := int(float64(g.Height) * h)
			if top < 0 {
				top = 0
			}
			for y := top; y < g.Height; y++ {
				img.SetRGBA(x, y, l.color)
			}
		}
	}
	return img
}

// SunX is the screen X of the sun for a scroll offset
func (g *Generator) SunX(scroll float64) float64 {
	return 150 - math.Mod(scroll*SunParallax, float64(g.Width)+300)
}

// CloudPos is the screen position of cloud i for a scroll offset
func (g *Generator) CloudPos(i int, scroll float64) (float64, float64) {
	x := math.Mod(scroll*CloudParallax+float64(i*CloudSpacing), float64(g.Width)+300) - 150
	y := 80 + math.Sin(float64(i))*100
	return x, y
}

// HillOffset is how far the hill texture has slid left, in [0, Width)
func (g *Generator) HillOffset(scroll float64) float64 {
	return math.Mod(scroll*HillParallax, float64(g.Width))
}

// Backdrop draws the sky, sun, hills and clouds behind the terrain
type Backdrop struct {
	gen   *Generator
	seed  int64
	sky   *ebiten.Image
	hills *ebiten.Image
}

// NewBackdrop creates a backdrop. Textures are built on the first Draw.
func NewBackdrop(width, height int, seed int64) *Backdrop {
	return &Backdrop{gen: NewGenerator(width, height), seed: seed}
}

// Draw paints the backdrop for the given scroll offset
func (b *Backdrop) Draw(screen *ebiten.Image, scroll float64) {
	if b.sky == nil {
		b.sky = ebiten.NewImageFromImage(b.gen.SkyGradient())
		b.hills = ebiten.NewImageFromImage(b.gen.GenerateHills(b.seed))
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(b.gen.Width), 1)
	screen.DrawImage(b.sky, op)

	sx := float32(b.gen.SunX(scroll))
	vector.DrawFilledCircle(screen, sx, 100, 70, sunHalo, true)
	vector.DrawFilledCircle(screen, sx, 100, 50, sunColor, true)

	off := b.gen.HillOffset(scroll)
	for _, x := range []float64{-off, float64(b.gen.Width) - off} {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x, 0)
		screen.DrawImage(b.hills, op)
	}

	for i := 0; i < CloudCount; i++ {
		x, y := b.gen.CloudPos(i, scroll)
		drawCloud(screen, float32(x), float32(y))
	}
}

func drawCloud(screen *ebiten.Image, x, y float32) {
	vector.DrawFilledCircle(screen, x, y, 35, cloudTint, true)
	vector.DrawFilledCircle(screen, x+25, y, 45, cloudTint, true)
	vector.DrawFilledCircle(screen, x+50, y, 38, cloudTint, true)
	vector.DrawFilledCircle(screen, x+25, y-20, 30, cloudTint, true)
}
