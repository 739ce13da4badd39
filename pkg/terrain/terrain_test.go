package terrain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator(seed int64) *Generator {
	g := NewGenerator(DefaultConfig(), rand.New(rand.NewSource(seed)))
	g.Reset()
	return g
}

func assertWellFormed(t *testing.T, g *Generator) {
	t.Helper()
	cfg := g.Config()
	pts := g.Points()
	require.GreaterOrEqual(t, len(pts), 2)
	for i, p := range pts {
		assert.GreaterOrEqual(t, p.Y, cfg.MinHeight(), "point %d above the ceiling", i)
		assert.LessOrEqual(t, p.Y, cfg.MaxHeight(), "point %d below the floor", i)
		if i > 0 {
			assert.InDelta(t, cfg.SegmentWidth, p.X-pts[i-1].X, 1e-9, "spacing at %d", i)
		}
	}
}

func TestReset_CoversInitialScreens(t *testing.T) {
	g := newTestGenerator(1)
	cfg := g.Config()

	assert.Equal(t, 0.0, g.Points()[0].X)
	assert.GreaterOrEqual(t, g.Frontier(), cfg.ScreenWidth*cfg.InitialScreens-cfg.SegmentWidth)
	assertWellFormed(t, g)
}

func TestReset_StartsNearBaseline(t *testing.T) {
	g := newTestGenerator(2)
	cfg := g.Config()
	baseline := cfg.ScreenHeight - cfg.BaselineOffset

	// One step can move at most (Amplitude + Noise/2) * Dampening
	maxStep := (cfg.Amplitude + cfg.Noise/2) * cfg.Dampening
	assert.InDelta(t, baseline, g.Points()[0].Y, maxStep)
}

func TestExtend_KeepsSpacingAndBounds(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		g := newTestGenerator(seed)
		cfg := g.Config()

		scroll := 0.0
		for i := 0; i < 2000; i++ {
			scroll += 15
			g.Extend(scroll)
		}
		assertWellFormed(t, g)
		assert.Greater(t, g.Frontier(), scroll+cfg.ScreenWidth*2)

		// Pruning only runs alongside an extension, so allow one batch of slack
		slack := float64(cfg.BatchSize+1) * cfg.SegmentWidth
		assert.GreaterOrEqual(t, g.Points()[0].X, scroll-cfg.ScreenWidth-slack)
	}
}

func TestExtend_NoopFarFromFrontier(t *testing.T) {
	g := newTestGenerator(3)
	before := g.Len()

	assert.False(t, g.Extend(0))
	assert.Equal(t, before, g.Len())
}

func TestExtend_AppendsBatch(t *testing.T) {
	g := newTestGenerator(4)
	cfg := g.Config()
	frontier := g.Frontier()

	require.True(t, g.Extend(frontier-cfg.ScreenWidth))
	assert.InDelta(t, frontier+float64(cfg.BatchSize)*cfg.SegmentWidth, g.Frontier(), 1e-9)
	assertWellFormed(t, g)
}

func TestHeightAt_InterpolatesBetweenPoints(t *testing.T) {
	g := newTestGenerator(5)
	pts := g.Points()

	for i := 0; i < len(pts)-1; i++ {
		a, b := pts[i], pts[i+1]
		for _, frac := range []float64{0, 0.25, 0.5, 0.9} {
			x := a.X + (b.X-a.X)*frac
			h := g.HeightAt(x)
			lo, hi := a.Y, b.Y
			if lo > hi {
				lo, hi = hi, lo
			}
			assert.GreaterOrEqual(t, h, lo-1e-9)
			assert.LessOrEqual(t, h, hi+1e-9)
			assert.InDelta(t, a.Y+(b.Y-a.Y)*frac, h, 1e-9)
		}
	}
}

func TestHeightAt_FallbackOutsideRange(t *testing.T) {
	g := newTestGenerator(6)
	cfg := g.Config()

	assert.Equal(t, cfg.Fallback(), g.HeightAt(-1))
	assert.Equal(t, cfg.Fallback(), g.HeightAt(g.Frontier()+1))

	empty := NewGenerator(cfg, nil)
	assert.NotPanics(t, func() {
		assert.Equal(t, cfg.Fallback(), empty.HeightAt(100))
	})
	assert.False(t, empty.Extend(1e6))
}

func TestFlatTerrain(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Amplitude = 0
	cfg.Noise = 0
	g := NewGenerator(cfg, rand.New(rand.NewSource(7)))
	g.Reset()

	want := cfg.ScreenHeight - cfg.BaselineOffset
	for _, p := range g.Points() {
		assert.Equal(t, want, p.Y)
	}
}

func TestWindowAndIndex(t *testing.T) {
	g := newTestGenerator(8)
	cfg := g.Config()

	w := g.Window(300, 600)
	require.NotEmpty(t, w)
	assert.Equal(t, 300.0, w[0].X)
	assert.Equal(t, 600.0, w[len(w)-1].X)
	assert.Equal(t, 10, g.Index(w[0]))

	g.Prune(cfg.ScreenWidth * 2)
	assert.Equal(t, 10, g.Index(Point{X: 300}))
	assert.GreaterOrEqual(t, g.Points()[0].X, cfg.ScreenWidth)
}
