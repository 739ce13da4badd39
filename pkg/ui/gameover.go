package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/golangdaddy/hillclimber/pkg/input"
	"github.com/golangdaddy/hillclimber/pkg/models"
	"github.com/golangdaddy/hillclimber/pkg/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ScoreRow is one line of the session leaderboard
type ScoreRow struct {
	Vehicle  string
	Reason   string
	Distance int
	Score    int
}

// GameOverScreen shows the run summary, upgrades and the session's best runs
type GameOverScreen struct {
	summary   sim.Summary
	board     []ScoreRow
	prog      *models.Progression
	upgrades  *upgradeRow
	restart   button
	menu      button
	backdrop  func(*ebiten.Image)
	onRestart func()
	onMenu    func()
}

// NewGameOverScreen builds the screen. backdrop, if set, redraws the final frame
// of the run behind the panel.
func NewGameOverScreen(width, height int, summary sim.Summary, board []ScoreRow, prog *models.Progression, shop Shop,
	backdrop func(*ebiten.Image), onRestart, onMenu func()) *GameOverScreen {
	return &GameOverScreen{
		summary:   summary,
		board:     board,
		prog:      prog,
		upgrades:  newUpgradeRow(prog, shop, width/2, height-170),
		restart:   newButton("RESTART", width/2-150, height-100, 260, 50),
		menu:      newButton("MENU", width/2+150, height-100, 260, 50),
		backdrop:  backdrop,
		onRestart: onRestart,
		onMenu:    onMenu,
	}
}

// Update handles input for the game over screen
func (gs *GameOverScreen) Update() error {
	clicks := input.JustClicked()
	gs.upgrades.update(clicks)

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyR) || gs.restart.hit(clicks) {
		if gs.onRestart != nil {
			gs.onRestart()
		}
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyM) || gs.menu.hit(clicks) {
		if gs.onMenu != nil {
			gs.onMenu()
		}
	}
	return nil
}

// reasonTitle is the headline for an end reason
func reasonTitle(r sim.Reason) string {
	if r == sim.ReasonNone {
		return "GAME OVER"
	}
	return strings.ToUpper(string(r)) + "!"
}

// Draw renders the game over screen
func (gs *GameOverScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	if gs.backdrop != nil {
		gs.backdrop(screen)
	} else {
		screen.Fill(color.RGBA{20, 20, 30, 255})
	}
	dim(screen, 170)

	centerX := float64(width) / 2
	drawText(screen, reasonTitle(gs.summary.Reason), centerX, 60, 48, danger)

	s := gs.summary
	lines := []string{
		fmt.Sprintf("DISTANCE   %dm", s.Distance),
		fmt.Sprintf("COINS      %d", s.Coins),
		fmt.Sprintf("TOP SPEED  %d km/h", s.TopSpeed),
	}
	panel := image.Rect(width/2-420, 110, width/2-20, 330)
	drawPanel(screen, panel, panelColor)
	for i, l := range lines {
		drawTextAt(screen, l, float64(panel.Min.X)+24, float64(panel.Min.Y)+36+float64(i)*40, 20, white)
	}
	drawTextAt(screen, fmt.Sprintf("SCORE      %d", s.Score), float64(panel.Min.X)+24, float64(panel.Min.Y)+170, 24, gold)

	board := image.Rect(width/2+20, 110, width/2+420, 330)
	drawPanel(screen, board, panelColor)
	drawTextAt(screen, "BEST THIS SESSION", float64(board.Min.X)+24, float64(board.Min.Y)+28, 16, gold)
	if len(gs.board) == 0 {
		drawTextAt(screen, "No history", float64(board.Min.X)+24, float64(board.Min.Y)+64, 16, muted)
	}
	for i, row := range gs.board {
		line := fmt.Sprintf("%d. %-9s %6d  %s", i+1, strings.ToUpper(row.Vehicle), row.Score, row.Reason)
		drawTextAt(screen, line, float64(board.Min.X)+24, float64(board.Min.Y)+64+float64(i)*28, 16, white)
	}

	drawText(screen, fmt.Sprintf("BALANCE: %d", gs.prog.Balance()), centerX, float64(height)-200, 20, gold)
	gs.upgrades.draw(screen)
	gs.restart.draw(screen, false)
	gs.menu.draw(screen, false)
	drawText(screen, "1-3: Upgrade | Enter: Restart | Esc: Menu", centerX, float64(height)-25, 14, muted)
}
