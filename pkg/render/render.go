package render

import (
	"image"
	"image/color"
	"math"

	"github.com/golangdaddy/hillclimber/pkg/background"
	"github.com/golangdaddy/hillclimber/pkg/sim"
	"github.com/golangdaddy/hillclimber/pkg/vehicle"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Renderer draws simulation snapshots. It owns no simulation state; everything it
// shows comes from the snapshot passed to Draw.
type Renderer struct {
	width, height int

	backdrop *background.Backdrop
	white    *ebiten.Image

	// Per-run vehicle canvas, rebuilt when the profile changes
	bodyID vehicle.ID
	paint  painter
	body   *ebiten.Image
	margin float64

	coin *ebiten.Image
	can  *ebiten.Image

	verts []ebiten.Vertex
	idx   []uint16
}

// New creates a renderer for a width x height screen. seed picks the backdrop hills.
func New(width, height int, seed int64) *Renderer {
	return &Renderer{
		width:    width,
		height:   height,
		backdrop: background.NewBackdrop(width, height, seed),
	}
}

func (r *Renderer) whiteImage() *ebiten.Image {
	if r.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		r.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return r.white
}

// Draw paints the world for one frame
func (r *Renderer) Draw(screen *ebiten.Image, s sim.Snapshot) {
	r.backdrop.Draw(screen, s.Scroll)
	r.drawTerrain(screen, s)
	r.drawCans(screen, s)
	r.drawCoins(screen, s)
	drawParticles(screen, s)
	if s.Profile != nil {
		r.drawVehicle(screen, s)
	}
}

// fillPolygon fills a convex polygon given as x, y pairs
func (r *Renderer) fillPolygon(dst *ebiten.Image, c color.Color, pts ...float32) {
	n := len(pts) / 2
	if n < 3 {
		return
	}
	cr, cg, cb, ca := vertexColor(c)
	verts := make([]ebiten.Vertex, 0, n)
	for i := 0; i < n; i++ {
		verts = append(verts, ebiten.Vertex{
			DstX: pts[2*i], DstY: pts[2*i+1],
			SrcX: 1, SrcY: 1,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		})
	}
	idx := make([]uint16, 0, 3*(n-2))
	for i := 1; i < n-1; i++ {
		idx = append(idx, 0, uint16(i), uint16(i+1))
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(verts, idx, r.whiteImage(), op)
}

// vertexColor converts c to the straight-alpha floats vertices expect
func vertexColor(c color.Color) (float32, float32, float32, float32) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return float32(n.R) / 255, float32(n.G) / 255, float32(n.B) / 255, float32(n.A) / 255
}

// scaleAlpha fades a premultiplied color
func scaleAlpha(c color.RGBA, a float64) color.RGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

func drawParticles(screen *ebiten.Image, s sim.Snapshot) {
	for _, p := range s.Particles {
		a := p.Alpha()
		radius := float32(p.Size * a)
		if radius <= 0 {
			continue
		}
		vector.DrawFilledCircle(screen, float32(p.Pos.X()), float32(p.Pos.Y()), radius, scaleAlpha(p.Color, a), true)
	}
}

// dangerTint reddens the vehicle as it nears the flip threshold
func dangerTint(danger float64) float32 {
	if danger <= 0.7 {
		return 0
	}
	return float32(math.Min(1, (danger-0.7)*3) * 0.5)
}
