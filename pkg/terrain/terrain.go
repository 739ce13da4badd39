package terrain

import (
	"math"
	"math/rand"
)

// Point is a single sample of the ground line in world space
type Point struct {
	X float64 // World X position (strictly increasing along the sequence)
	Y float64 // Ground height in screen pixels (larger is lower)
}

// Config holds the heightmap tunables
type Config struct {
	ScreenWidth      float64 `mapstructure:"screenWidth"`
	ScreenHeight     float64 `mapstructure:"screenHeight"`
	SegmentWidth     float64 `mapstructure:"segmentWidth"`     // Horizontal spacing between points
	InitialScreens   float64 `mapstructure:"initialScreens"`   // Screens generated on Reset
	LookaheadScreens float64 `mapstructure:"lookaheadScreens"` // Extend when the frontier is this close
	BatchSize        int     `mapstructure:"batchSize"`        // Points appended per Extend
	Frequency        float64 `mapstructure:"frequency"`        // k1 in sin(x*k1)
	Amplitude        float64 `mapstructure:"amplitude"`        // Sine contribution
	Noise            float64 `mapstructure:"noise"`            // Width of the uniform noise band
	Dampening        float64 `mapstructure:"dampening"`        // Step scale applied to each variation
	BaselineOffset   float64 `mapstructure:"baselineOffset"`   // Starting height is ScreenHeight - BaselineOffset
	MinOffset        float64 `mapstructure:"minOffset"`        // Highest ground is ScreenHeight - MinOffset
	MaxOffset        float64 `mapstructure:"maxOffset"`        // Lowest ground is ScreenHeight - MaxOffset
	FallbackOffset   float64 `mapstructure:"fallbackOffset"`   // HeightAt outside the generated range
}

// DefaultConfig returns the tuning used by the game
func DefaultConfig() Config {
	return Config{
		ScreenWidth:      1280,
		ScreenHeight:     720,
		SegmentWidth:     30,
		InitialScreens:   4,
		LookaheadScreens: 3,
		BatchSize:        50,
		Frequency:        0.01,
		Amplitude:        80,
		Noise:            40,
		Dampening:        0.1,
		BaselineOffset:   250,
		MinOffset:        500,
		MaxOffset:        100,
		FallbackOffset:   200,
	}
}

// MinHeight is the smallest Y (highest hill) a generated point can take
func (c Config) MinHeight() float64 {
	return c.ScreenHeight - c.MinOffset
}

// MaxHeight is the largest Y (deepest valley) a generated point can take
func (c Config) MaxHeight() float64 {
	return c.ScreenHeight - c.MaxOffset
}

// Fallback is returned by HeightAt when the query falls outside the generated points
func (c Config) Fallback() float64 {
	return c.ScreenHeight - c.FallbackOffset
}

// Generator owns the heightmap and extends it as the player scrolls forward
type Generator struct {
	cfg    Config
	rng    *rand.Rand
	points []Point
}

// NewGenerator creates an empty generator. Call Reset before use.
func NewGenerator(cfg Config, rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	if cfg.SegmentWidth <= 0 {
		cfg.SegmentWidth = DefaultConfig().SegmentWidth
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultConfig().BatchSize
	}
	return &Generator{
		cfg: cfg,
		rng: rng,
	}
}

// Config returns the tuning the generator was built with
func (g *Generator) Config() Config {
	return g.cfg
}

// Reset discards all points and generates InitialScreens screen widths starting at X=0
func (g *Generator) Reset() {
	span := g.cfg.ScreenWidth * g.cfg.InitialScreens
	g.points = make([]Point, 0, int(span/g.cfg.SegmentWidth)+g.cfg.BatchSize)

	y := g.cfg.ScreenHeight - g.cfg.BaselineOffset
	for x := 0.0; x < span; x += g.cfg.SegmentWidth {
		y = g.step(x, y)
		g.points = append(g.points, Point{X: x, Y: y})
	}
	if len(g.points) == 0 {
		g.points = append(g.points, Point{X: 0, Y: y})
	}
}

// Load replaces the heightmap with the given points
// The caller is responsible for keeping X strictly increasing at SegmentWidth spacing.
func (g *Generator) Load(points []Point) {
	g.points = append(g.points[:0:0], points...)
}

// step advances the random walk by one segment
func (g *Generator) step(x, y float64) float64 {
	variation := math.Sin(x*g.cfg.Frequency)*g.cfg.Amplitude + g.rng.Float64()*g.cfg.Noise - g.cfg.Noise/2
	y += variation * g.cfg.Dampening
	return math.Max(g.cfg.MinHeight(), math.Min(g.cfg.MaxHeight(), y))
}

// NeedsExtension reports whether the scroll offset is within the lookahead of the frontier
func (g *Generator) NeedsExtension(scroll float64) bool {
	if len(g.points) == 0 {
		return false
	}
	return scroll > g.Frontier()-g.cfg.ScreenWidth*g.cfg.LookaheadScreens
}

// Extend appends a batch of points when the player nears the frontier and prunes
// points more than one screen width behind the scroll offset. Returns true if points
// were appended.
func (g *Generator) Extend(scroll float64) bool {
	if !g.NeedsExtension(scroll) {
		return false
	}

	last := g.points[len(g.points)-1]
	x, y := last.X, last.Y
	for i := 0; i < g.cfg.BatchSize; i++ {
		x += g.cfg.SegmentWidth
		y = g.step(x, y)
		g.points = append(g.points, Point{X: x, Y: y})
	}

	g.Prune(scroll)
	return true
}

// Prune drops points that are more than one screen width behind the scroll offset
func (g *Generator) Prune(scroll float64) {
	cutoff := scroll - g.cfg.ScreenWidth
	drop := 0
	// Always keep at least two points so interpolation has something to work with
	for drop < len(g.points)-2 && g.points[drop].X < cutoff {
		drop++
	}
	if drop > 0 {
		g.points = append(g.points[:0], g.points[drop:]...)
	}
}

// HeightAt returns the ground height at worldX by linear interpolation between the
// bracketing points. Outside the generated range the fallback height is returned.
func (g *Generator) HeightAt(worldX float64) float64 {
	n := len(g.points)
	if n < 2 || worldX < g.points[0].X || worldX > g.points[n-1].X {
		return g.cfg.Fallback()
	}

	// Points are evenly spaced so the bracket can be found directly
	i := int((worldX - g.points[0].X) / g.cfg.SegmentWidth)
	if i >= n-1 {
		i = n - 2
	}
	if i < 0 {
		i = 0
	}
	a, b := g.points[i], g.points[i+1]
	if b.X == a.X {
		return a.Y
	}
	t := (worldX - a.X) / (b.X - a.X)
	return a.Y + (b.Y-a.Y)*t
}

// Frontier returns the X of the last generated point
func (g *Generator) Frontier() float64 {
	if len(g.points) == 0 {
		return 0
	}
	return g.points[len(g.points)-1].X
}

// Len returns the number of live points
func (g *Generator) Len() int {
	return len(g.points)
}

// Points returns a copy of every live point
func (g *Generator) Points() []Point {
	return append([]Point(nil), g.points...)
}

// Window returns a copy of the points with X in [from, to]
func (g *Generator) Window(from, to float64) []Point {
	var out []Point
	for _, p := range g.points {
		if p.X < from {
			continue
		}
		if p.X > to {
			break
		}
		out = append(out, p)
	}
	return out
}

// Index returns the global segment index of a point, stable across pruning
func (g *Generator) Index(p Point) int {
	return int(math.Round(p.X / g.cfg.SegmentWidth))
}
