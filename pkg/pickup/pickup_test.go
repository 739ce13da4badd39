package pickup

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/golangdaddy/hillclimber/pkg/terrain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flatTerrain(t *testing.T) *terrain.Generator {
	t.Helper()
	cfg := terrain.DefaultConfig()
	cfg.Amplitude = 0
	cfg.Noise = 0
	g := terrain.NewGenerator(cfg, rand.New(rand.NewSource(1)))
	g.Reset()
	return g
}

// denseConfig spawns a coin on every eligible point with no jitter
func denseConfig() Config {
	cfg := DefaultConfig()
	cfg.CoinChance = 1
	cfg.CoinJitter = 0
	cfg.CoinLiftNoise = 0
	cfg.CoinSpacing = 0
	cfg.FuelChance = 1
	cfg.FuelSpacing = 0
	return cfg
}

func TestSeed_PopulatesStridePoints(t *testing.T) {
	g := flatTerrain(t)
	cfg := g.Config()
	pc := DefaultConfig()
	pc.SeedCoinChance = 1
	pc.SeedFuelChance = 1
	pc.CoinJitter = 0
	pc.CoinLiftNoise = 0

	s := NewStreamer(pc, cfg.ScreenWidth, rand.New(rand.NewSource(2)))
	s.Seed(g.Points(), g)

	ground := cfg.ScreenHeight - cfg.BaselineOffset
	require.NotEmpty(t, s.Coins())
	for _, c := range s.Coins() {
		assert.Equal(t, 0, int(math.Round(c.X/cfg.SegmentWidth))%pc.CoinStride)
		assert.Equal(t, ground-pc.CoinLift, c.Y)
		assert.Equal(t, pc.CoinRadius, c.Radius)
	}
	require.NotEmpty(t, s.Cans())
	for _, f := range s.Cans() {
		assert.Equal(t, 0, int(math.Round(f.X/cfg.SegmentWidth))%pc.FuelStride)
		assert.Equal(t, ground-pc.FuelLift, f.Y)
	}

	// Seeded ground is never scanned again
	before := len(s.Coins())
	s.Update(1, g)
	assert.Equal(t, before, len(s.Coins()))
}

func TestUpdate_NeverScansTheSameGroundTwice(t *testing.T) {
	g := flatTerrain(t)
	width := g.Config().ScreenWidth
	s := NewStreamer(denseConfig(), width, rand.New(rand.NewSource(3)))

	seen := map[float64]int{}
	scroll := 0.0
	for i := 0; i < 600; i++ {
		scroll += 7
		g.Extend(scroll)
		s.Update(scroll, g)
		// Re-running at the same offset must not spawn anything
		s.Update(scroll, g)
		for _, c := range s.Coins() {
			seen[c.X]++
		}
		for j := range s.Coins() {
			s.CollectCoin(j)
		}
		s.Prune(scroll + 10*width)
	}

	require.NotEmpty(t, seen)
	for x, n := range seen {
		assert.Equal(t, 1, n, "coin at %v spawned %d times", x, n)
	}
}

func TestUpdate_SpawnsInsideLookaheadWindow(t *testing.T) {
	g := flatTerrain(t)
	width := g.Config().ScreenWidth
	s := NewStreamer(denseConfig(), width, rand.New(rand.NewSource(4)))

	scroll := 100.0
	s.Update(scroll, g)
	require.NotEmpty(t, s.Coins())
	for _, c := range s.Coins() {
		assert.GreaterOrEqual(t, c.X, scroll+width)
		assert.Less(t, c.X, scroll+2*width)
	}
}

func TestUpdate_RespectsCoinSpacing(t *testing.T) {
	g := flatTerrain(t)
	width := g.Config().ScreenWidth
	cfg := denseConfig()
	cfg.CoinStride = 1
	cfg.CoinSpacing = 100
	s := NewStreamer(cfg, width, rand.New(rand.NewSource(5)))

	s.Update(50, g)
	xs := make([]float64, 0, len(s.Coins()))
	for _, c := range s.Coins() {
		xs = append(xs, c.X)
	}
	sort.Float64s(xs)
	require.Greater(t, len(xs), 2)
	for i := 1; i < len(xs); i++ {
		assert.GreaterOrEqual(t, xs[i]-xs[i-1], cfg.CoinSpacing)
	}
}

func TestUpdate_CoinCadence(t *testing.T) {
	g := flatTerrain(t)
	width := g.Config().ScreenWidth
	cfg := denseConfig()
	cfg.FuelChance = 0
	s := NewStreamer(cfg, width, rand.New(rand.NewSource(8)))

	s.Update(cfg.CoinCadence-1, g)
	assert.Empty(t, s.Coins())

	s.Update(cfg.CoinCadence+1, g)
	require.NotEmpty(t, s.Coins())
	n := len(s.Coins())

	// Less than one cadence further on, the pass does not run again
	s.Update(cfg.CoinCadence*1.5, g)
	assert.Len(t, s.Coins(), n)
}

func TestUpdate_FuelCadence(t *testing.T) {
	g := flatTerrain(t)
	width := g.Config().ScreenWidth
	cfg := denseConfig()
	cfg.CoinChance = 0
	s := NewStreamer(cfg, width, rand.New(rand.NewSource(6)))

	s.Update(cfg.FuelCadence-1, g)
	assert.Empty(t, s.Cans())

	s.Update(cfg.FuelCadence+1, g)
	require.NotEmpty(t, s.Cans())
	for _, f := range s.Cans() {
		assert.Equal(t, cfg.FuelWidth, f.Width)
		assert.Equal(t, cfg.FuelHeight, f.Height)
	}
}

func TestPrune_DropsEntitiesBehind(t *testing.T) {
	s := NewStreamer(DefaultConfig(), 1000, rand.New(rand.NewSource(7)))
	s.AddCoin(Coin{X: 10, Radius: 18})
	s.AddCoin(Coin{X: 900, Radius: 18, Collected: true})
	s.AddCan(FuelCan{X: 20, Width: 30, Height: 40})
	s.AddCan(FuelCan{X: 1500, Width: 30, Height: 40})

	s.Prune(1500)
	require.Len(t, s.Coins(), 1)
	assert.Equal(t, 900.0, s.Coins()[0].X)
	require.Len(t, s.Cans(), 1)
	assert.Equal(t, 1500.0, s.Cans()[0].X)
}

func TestCollect_Idempotent(t *testing.T) {
	s := NewStreamer(DefaultConfig(), 1000, nil)
	s.AddCoin(Coin{X: 10, Radius: 18})
	s.AddCan(FuelCan{X: 20, Width: 30, Height: 40})

	assert.True(t, s.CollectCoin(0))
	assert.False(t, s.CollectCoin(0))
	assert.False(t, s.CollectCoin(5))

	assert.True(t, s.CollectCan(0))
	assert.False(t, s.CollectCan(0))
	assert.False(t, s.CollectCan(-1))

	assert.Empty(t, s.VisibleCoins(0, 100))
	assert.Empty(t, s.VisibleCans(0, 100))
}

func TestVisible(t *testing.T) {
	s := NewStreamer(DefaultConfig(), 1000, nil)
	s.AddCoin(Coin{X: 10, Radius: 18})
	s.AddCoin(Coin{X: 500, Radius: 18})
	s.AddCan(FuelCan{X: 600, Width: 30, Height: 40})

	assert.Len(t, s.VisibleCoins(0, 100), 1)
	assert.Len(t, s.VisibleCans(0, 100), 0)
	assert.Len(t, s.VisibleCans(590, 700), 1)

	cx, cy := s.Cans()[0].Center()
	assert.Equal(t, 600.0, cx)
	assert.Equal(t, 20.0, cy)
}

func TestReset(t *testing.T) {
	g := flatTerrain(t)
	s := NewStreamer(denseConfig(), g.Config().ScreenWidth, nil)
	s.Update(100, g)
	require.NotEmpty(t, s.Coins())

	s.Reset()
	assert.Empty(t, s.Coins())
	assert.Empty(t, s.Cans())
	s.Update(100, g)
	assert.NotEmpty(t, s.Coins())
}
