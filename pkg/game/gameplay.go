package game

import (
	"github.com/golangdaddy/hillclimber/pkg/input"
	"github.com/golangdaddy/hillclimber/pkg/render"
	"github.com/golangdaddy/hillclimber/pkg/sim"
	"github.com/golangdaddy/hillclimber/pkg/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// GameplayScreen drives one run: it samples input, steps the simulation once
// per Update and draws the resulting snapshot
type GameplayScreen struct {
	sim      *sim.Context
	renderer *render.Renderer
	input    *input.Reader
	pause    *ui.PauseMenu
	onEnd    func(sim.Summary)
	onQuit   func()
}

// NewGameplayScreen starts a fresh run on c
func NewGameplayScreen(c *sim.Context, r *render.Renderer, width, height int, onEnd func(sim.Summary), onQuit func()) *GameplayScreen {
	c.Start()
	return &GameplayScreen{
		sim:      c,
		renderer: r,
		input:    input.NewReader(width, height),
		pause:    ui.NewPauseMenu(width, height),
		onEnd:    onEnd,
		onQuit:   onQuit,
	}
}

// Update handles input and advances the simulation
func (gs *GameplayScreen) Update() error {
	if input.PausePressed() {
		gs.sim.TogglePause()
	}

	switch gs.sim.State {
	case sim.Paused:
		switch gs.pause.Update(input.JustClicked()) {
		case ui.PauseResume:
			gs.sim.Resume()
		case ui.PauseMainMenu:
			gs.sim.Abandon()
			if gs.onQuit != nil {
				gs.onQuit()
			}
		}
	case sim.Running:
		gs.sim.SetIntent(gs.input.Read())
		gs.sim.Step()
		if gs.sim.State == sim.Ended && gs.onEnd != nil {
			gs.onEnd(gs.sim.Summary())
		}
	}
	return nil
}

// Draw renders the world, the HUD and the pause overlay
func (gs *GameplayScreen) Draw(screen *ebiten.Image) {
	snap := gs.sim.Snapshot()
	gs.renderer.Draw(screen, snap)
	ui.DrawHUD(screen, snap.HUD, snap.Tick)
	ui.DrawPads(screen, gs.input)

	if snap.State == sim.Paused {
		gs.pause.Draw(screen)
	}
}
