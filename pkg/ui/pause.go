package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PauseAction is what the player picked on the pause overlay
type PauseAction int

const (
	PauseNone PauseAction = iota
	PauseResume
	PauseMainMenu
)

// PauseMenu is the overlay shown while a run is paused
type PauseMenu struct {
	resume button
	menu   button
}

// NewPauseMenu centers the overlay on a width x height screen
func NewPauseMenu(width, height int) *PauseMenu {
	return &PauseMenu{
		resume: newButton("RESUME", width/2, height/2, 260, 50),
		menu:   newButton("MAIN MENU", width/2, height/2+70, 260, 50),
	}
}

// Update reads clicks and the menu key. Esc is left to the caller since it toggles pause.
func (pm *PauseMenu) Update(clicks []image.Point) PauseAction {
	switch {
	case pm.resume.hit(clicks):
		return PauseResume
	case pm.menu.hit(clicks) || inpututil.IsKeyJustPressed(ebiten.KeyM):
		return PauseMainMenu
	}
	return PauseNone
}

// Draw dims the frame underneath and shows the buttons
func (pm *PauseMenu) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	dim(screen, 160)
	drawText(screen, "PAUSED", float64(width)/2, float64(height)/2-70, 48, white)
	pm.resume.draw(screen, false)
	pm.menu.draw(screen, false)
	drawText(screen, "Esc: Resume | M: Main Menu", float64(width)/2, float64(height)/2+150, 14, muted)
}
