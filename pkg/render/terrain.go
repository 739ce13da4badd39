package render

import (
	"image/color"

	"github.com/golangdaddy/hillclimber/pkg/sim"
	"github.com/golangdaddy/hillclimber/pkg/terrain"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	groundColor = color.RGBA{0x8B, 0x73, 0x55, 0xFF}
	grassColor  = color.RGBA{0x22, 0x8B, 0x22, 0xFF}
	bladeColor  = color.RGBA{0x2E, 0xCC, 0x71, 0xFF}
)

// terrainVertices builds one quad per segment, from the ground line down to bottom.
// Points are world space; the result is in screen space.
func terrainVertices(verts []ebiten.Vertex, idx []uint16, points []terrain.Point, scroll, bottom float64, c color.Color) ([]ebiten.Vertex, []uint16) {
	verts, idx = verts[:0], idx[:0]
	cr, cg, cb, ca := vertexColor(c)
	vtx := func(x, y float64) ebiten.Vertex {
		return ebiten.Vertex{
			DstX: float32(x), DstY: float32(y),
			SrcX: 1, SrcY: 1,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		}
	}

	for i := 0; i+1 < len(points); i++ {
		a, b := points[i], points[i+1]
		ax, bx := a.X-scroll, b.X-scroll
		base := uint16(len(verts))
		verts = append(verts,
			vtx(ax, a.Y),
			vtx(bx, b.Y),
			vtx(bx, bottom),
			vtx(ax, bottom),
		)
		idx = append(idx, base, base+1, base+2, base, base+2, base+3)
	}
	return verts, idx
}

func (r *Renderer) drawTerrain(screen *ebiten.Image, s sim.Snapshot) {
	r.verts, r.idx = terrainVertices(r.verts, r.idx, s.Terrain, s.Scroll, float64(r.height), groundColor)
	if len(r.idx) > 0 {
		op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
		screen.DrawTriangles(r.verts, r.idx, r.whiteImage(), op)
	}

	for i := 0; i+1 < len(s.Terrain); i++ {
		a, b := s.Terrain[i], s.Terrain[i+1]
		vector.StrokeLine(screen,
			float32(a.X-s.Scroll), float32(a.Y),
			float32(b.X-s.Scroll), float32(b.Y),
			6, grassColor, true)
	}

	// Tufts on every other sample, anchored to the global point index so they
	// do not shimmer as the window slides
	seg := 1.0
	if len(s.Terrain) > 1 {
		seg = s.Terrain[1].X - s.Terrain[0].X
	}
	for _, p := range s.Terrain {
		if int(p.X/seg+0.5)%2 != 0 {
			continue
		}
		x := float32(p.X - s.Scroll)
		y := float32(p.Y)
		for j := float32(0); j < 3; j++ {
			vector.StrokeLine(screen, x+j*5, y, x+j*5-3, y-12, 2, bladeColor, true)
		}
	}
}
