package game

import (
	"github.com/golangdaddy/hillclimber/pkg/history"
	"github.com/golangdaddy/hillclimber/pkg/metrics"
	"github.com/golangdaddy/hillclimber/pkg/render"
	"github.com/golangdaddy/hillclimber/pkg/sim"
	"github.com/golangdaddy/hillclimber/pkg/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// Screen represents a UI screen interface
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// Options wires the game to its collaborators
type Options struct {
	Width, Height int
	Seed          int64
	Sim           *sim.Context
	History       *history.Store // Optional session leaderboard
	HistoryKeep   int
	Metrics       *metrics.Recorder // Optional
	Log           zerolog.Logger
}

// Game implements the ebiten.Game interface and manages the screen flow:
// title, garage, gameplay and game over
type Game struct {
	opts          Options
	sim           *sim.Context
	shop          *Shop
	renderer      *render.Renderer
	currentScreen Screen
	log           zerolog.Logger
}

// NewGame creates a new game instance on the title screen
func NewGame(opts Options) *Game {
	log := opts.Log.With().Str("component", "game").Logger()
	g := &Game{
		opts:     opts,
		sim:      opts.Sim,
		shop:     NewShop(opts.Sim.Progression, opts.Sim.Notes, opts.Metrics, opts.Log),
		renderer: render.New(opts.Width, opts.Height, opts.Seed),
		log:      log,
	}
	g.showTitle()
	return g
}

// Update ages notifications every frame, whatever the screen, then updates the screen
func (g *Game) Update() error {
	g.sim.Notes.Update()
	if g.currentScreen != nil {
		return g.currentScreen.Update()
	}
	return nil
}

// Draw renders the current screen with the notifications on top
func (g *Game) Draw(screen *ebiten.Image) {
	if g.currentScreen != nil {
		g.currentScreen.Draw(screen)
	}
	ui.DrawNotifications(screen, g.sim.Notes.Active())
}

// Layout returns the game's logical screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.opts.Width, g.opts.Height
}

func (g *Game) showTitle() {
	g.currentScreen = ui.NewTitleScreen(g.sim.Progression.Balance, g.showGarage)
}

func (g *Game) showGarage() {
	g.currentScreen = ui.NewGarageScreen(g.opts.Width, g.opts.Height, g.sim.Progression, g.shop, g.startRun, g.showTitle)
}

func (g *Game) startRun() {
	g.currentScreen = NewGameplayScreen(g.sim, g.renderer, g.opts.Width, g.opts.Height, g.showGameOver, g.showTitle)
}

func (g *Game) showGameOver(sum sim.Summary) {
	final := g.sim.Snapshot()
	backdrop := func(screen *ebiten.Image) {
		g.renderer.Draw(screen, final)
	}
	g.currentScreen = ui.NewGameOverScreen(g.opts.Width, g.opts.Height, sum, g.leaderboard(),
		g.sim.Progression, g.shop, backdrop, g.startRun, g.showTitle)
}

// leaderboard reads the session's best runs, empty when history is off
func (g *Game) leaderboard() []ui.ScoreRow {
	if g.opts.History == nil {
		return nil
	}
	runs, err := g.opts.History.Best(g.opts.HistoryKeep)
	if err != nil {
		g.log.Error().Err(err).Msg("failed to read run history")
		return nil
	}
	return scoreRows(runs)
}

func scoreRows(runs []history.Run) []ui.ScoreRow {
	rows := make([]ui.ScoreRow, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, ui.ScoreRow{
			Vehicle:  r.Vehicle,
			Reason:   r.Reason,
			Distance: r.Distance,
			Score:    r.Score,
		})
	}
	return rows
}
