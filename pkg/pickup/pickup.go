package pickup

import (
	"math"
	"math/rand"

	"github.com/golangdaddy/hillclimber/pkg/terrain"
)

// Coin is a collectible worth one coin
type Coin struct {
	X         float64 // World X of the center
	Y         float64
	Radius    float64
	Spin      float64 // Visual rotation in radians
	Collected bool
}

// FuelCan refills the tank when driven through. X is the horizontal center, Y the top edge.
type FuelCan struct {
	X         float64
	Y         float64
	Width     float64
	Height    float64
	Collected bool
}

// Center returns the middle of the can
func (f FuelCan) Center() (float64, float64) {
	return f.X, f.Y + f.Height/2
}

// Config holds the spawn tunables
type Config struct {
	CoinCadence   float64 `mapstructure:"coinCadence"` // Scroll advance required between coin passes
	CoinStride    int     `mapstructure:"coinStride"`  // Only every Nth terrain point is eligible
	CoinChance    float64 `mapstructure:"coinChance"`
	CoinSpacing   float64 `mapstructure:"coinSpacing"` // Minimum horizontal gap to an uncollected coin
	CoinJitter    float64 `mapstructure:"coinJitter"`
	CoinLift      float64 `mapstructure:"coinLift"`
	CoinLiftNoise float64 `mapstructure:"coinLiftNoise"`
	CoinRadius    float64 `mapstructure:"coinRadius"`
	CoinSpin      float64 `mapstructure:"coinSpin"`

	FuelCadence float64 `mapstructure:"fuelCadence"`
	FuelStride  int     `mapstructure:"fuelStride"`
	FuelChance  float64 `mapstructure:"fuelChance"`
	FuelSpacing float64 `mapstructure:"fuelSpacing"`
	FuelLift    float64 `mapstructure:"fuelLift"`
	FuelWidth   float64 `mapstructure:"fuelWidth"`
	FuelHeight  float64 `mapstructure:"fuelHeight"`

	SeedCoinChance float64 `mapstructure:"seedCoinChance"` // Density of the run-start population
	SeedFuelChance float64 `mapstructure:"seedFuelChance"`
}

// DefaultConfig returns the spawn tuning used by the game
func DefaultConfig() Config {
	return Config{
		CoinCadence:   30,
		CoinStride:    6,
		CoinChance:    0.4,
		CoinSpacing:   100,
		CoinJitter:    50,
		CoinLift:      30,
		CoinLiftNoise: 20,
		CoinRadius:    18,
		CoinSpin:      0.05,

		FuelCadence: 300,
		FuelStride:  30,
		FuelChance:  0.15,
		FuelSpacing: 200,
		FuelLift:    70,
		FuelWidth:   30,
		FuelHeight:  40,

		SeedCoinChance: 0.6,
		SeedFuelChance: 0.3,
	}
}

// Terrain is the part of the heightmap the streamer scans
type Terrain interface {
	Window(from, to float64) []terrain.Point
	Index(p terrain.Point) int
	Frontier() float64
}

// watermark remembers where a spawn pass last ran and how far it has scanned
type watermark struct {
	lastCheck float64
	scannedTo float64
}

// Streamer owns the live coins and fuel cans
type Streamer struct {
	cfg         Config
	screenWidth float64
	rng         *rand.Rand

	coins []Coin
	cans  []FuelCan

	coinMark watermark
	fuelMark watermark
}

// NewStreamer creates an empty streamer for the given viewport width
func NewStreamer(cfg Config, screenWidth float64, rng *rand.Rand) *Streamer {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	if cfg.CoinStride <= 0 {
		cfg.CoinStride = 1
	}
	if cfg.FuelStride <= 0 {
		cfg.FuelStride = 1
	}
	return &Streamer{
		cfg:         cfg,
		screenWidth: screenWidth,
		rng:         rng,
	}
}

// Config returns the spawn tuning
func (s *Streamer) Config() Config {
	return s.cfg
}

// Reset drops every entity and rewinds both watermarks
func (s *Streamer) Reset() {
	s.coins = s.coins[:0]
	s.cans = s.cans[:0]
	s.coinMark = watermark{}
	s.fuelMark = watermark{}
}

// Seed populates the initial terrain at run start. Later passes only scan beyond
// the last seeded point.
func (s *Streamer) Seed(points []terrain.Point, t Terrain) {
	s.Reset()
	if len(points) == 0 {
		return
	}
	for _, p := range points {
		idx := t.Index(p)
		if idx%s.cfg.CoinStride == 0 && s.rng.Float64() < s.cfg.SeedCoinChance {
			s.coins = append(s.coins, s.newCoin(p))
		}
		if idx%s.cfg.FuelStride == 0 && s.rng.Float64() < s.cfg.SeedFuelChance {
			s.cans = append(s.cans, s.newCan(p))
		}
	}

	end := points[len(points)-1].X
	s.coinMark.scannedTo = math.Nextafter(end, math.Inf(1))
	s.fuelMark.scannedTo = s.coinMark.scannedTo
}

// Update runs whichever spawn passes are due at this scroll offset, prunes entities
// left behind and advances the coin spin.
func (s *Streamer) Update(scroll float64, t Terrain) {
	if scroll > s.coinMark.lastCheck+s.cfg.CoinCadence {
		s.coinMark.lastCheck = scroll
		s.coinPass(scroll, t)
	}
	if scroll > s.fuelMark.lastCheck+s.cfg.FuelCadence {
		s.fuelMark.lastCheck = scroll
		s.fuelPass(scroll, t)
	}
	s.Prune(scroll)

	for i := range s.coins {
		s.coins[i].Spin += s.cfg.CoinSpin
	}
}

// window returns the not-yet-scanned part of [scroll+W, scroll+2W) and advances the mark
func (s *Streamer) window(m *watermark, scroll float64, t Terrain) []terrain.Point {
	from := math.Max(m.scannedTo, scroll+s.screenWidth)
	// Never mark ground that has not been generated yet as scanned
	to := math.Min(scroll+2*s.screenWidth, math.Nextafter(t.Frontier(), math.Inf(1)))
	if from >= to {
		return nil
	}

	var out []terrain.Point
	for _, p := range t.Window(from, to) {
		if p.X >= to {
			break
		}
		out = append(out, p)
	}
	m.scannedTo = to
	return out
}

func (s *Streamer) coinPass(scroll float64, t Terrain) {
	for _, p := range s.window(&s.coinMark, scroll, t) {
		if t.Index(p)%s.cfg.CoinStride != 0 || s.rng.Float64() >= s.cfg.CoinChance {
			continue
		}
		if s.coinNear(p.X) {
			continue
		}
		s.coins = append(s.coins, s.newCoin(p))
	}
}

func (s *Streamer) fuelPass(scroll float64, t Terrain) {
	for _, p := range s.window(&s.fuelMark, scroll, t) {
		if t.Index(p)%s.cfg.FuelStride != 0 || s.rng.Float64() >= s.cfg.FuelChance {
			continue
		}
		if s.canNear(p.X) {
			continue
		}
		s.cans = append(s.cans, s.newCan(p))
	}
}

func (s *Streamer) newCoin(p terrain.Point) Coin {
	return Coin{
		X:      p.X + s.rng.Float64()*2*s.cfg.CoinJitter - s.cfg.CoinJitter,
		Y:      p.Y - s.cfg.CoinLift - s.rng.Float64()*s.cfg.CoinLiftNoise,
		Radius: s.cfg.CoinRadius,
	}
}

func (s *Streamer) newCan(p terrain.Point) FuelCan {
	return FuelCan{
		X:      p.X,
		Y:      p.Y - s.cfg.FuelLift,
		Width:  s.cfg.FuelWidth,
		Height: s.cfg.FuelHeight,
	}
}

func (s *Streamer) coinNear(x float64) bool {
	for _, c := range s.coins {
		if !c.Collected && math.Abs(c.X-x) < s.cfg.CoinSpacing {
			return true
		}
	}
	return false
}

func (s *Streamer) canNear(x float64) bool {
	for _, f := range s.cans {
		if !f.Collected && math.Abs(f.X-x) < s.cfg.FuelSpacing {
			return true
		}
	}
	return false
}

// Prune drops every coin and can more than one screen width behind the scroll offset
func (s *Streamer) Prune(scroll float64) {
	cutoff := scroll - s.screenWidth

	coins := s.coins[:0]
	for _, c := range s.coins {
		if c.X >= cutoff {
			coins = append(coins, c)
		}
	}
	s.coins = coins

	cans := s.cans[:0]
	for _, f := range s.cans {
		if f.X >= cutoff {
			cans = append(cans, f)
		}
	}
	s.cans = cans
}

// Coins returns the live coins. The slice is owned by the streamer and only
// valid until the next Update.
func (s *Streamer) Coins() []Coin {
	return s.coins
}

// Cans returns the live fuel cans, with the same lifetime as Coins
func (s *Streamer) Cans() []FuelCan {
	return s.cans
}

// CollectCoin flags the i-th coin as collected. It returns false when the coin
// was already collected or the index is out of range.
func (s *Streamer) CollectCoin(i int) bool {
	if i < 0 || i >= len(s.coins) || s.coins[i].Collected {
		return false
	}
	s.coins[i].Collected = true
	return true
}

// CollectCan flags the i-th can as collected, with the same guarantees as CollectCoin
func (s *Streamer) CollectCan(i int) bool {
	if i < 0 || i >= len(s.cans) || s.cans[i].Collected {
		return false
	}
	s.cans[i].Collected = true
	return true
}

// AddCoin inserts a coin directly, bypassing the spawn rules
func (s *Streamer) AddCoin(c Coin) {
	s.coins = append(s.coins, c)
}

// AddCan inserts a fuel can directly, bypassing the spawn rules
func (s *Streamer) AddCan(f FuelCan) {
	s.cans = append(s.cans, f)
}

// VisibleCoins returns copies of the uncollected coins with X in [from, to]
func (s *Streamer) VisibleCoins(from, to float64) []Coin {
	var out []Coin
	for _, c := range s.coins {
		if !c.Collected && c.X+c.Radius >= from && c.X-c.Radius <= to {
			out = append(out, c)
		}
	}
	return out
}

// VisibleCans returns copies of the uncollected cans with X in [from, to]
func (s *Streamer) VisibleCans(from, to float64) []FuelCan {
	var out []FuelCan
	for _, f := range s.cans {
		if !f.Collected && f.X+f.Width/2 >= from && f.X-f.Width/2 <= to {
			out = append(out, f)
		}
	}
	return out
}
