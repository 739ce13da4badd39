package ui

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/golangdaddy/hillclimber/pkg/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TitleScreen represents the main title screen
type TitleScreen struct {
	startTime      time.Time
	balance        func() int
	onStartPressed func() // Callback when user presses to start
}

// NewTitleScreen creates a new title screen. balance reports the coin balance to show.
func NewTitleScreen(balance func() int, onStartPressed func()) *TitleScreen {
	return &TitleScreen{
		startTime:      time.Now(),
		balance:        balance,
		onStartPressed: onStartPressed,
	}
}

// Update handles input for the title screen
func (ts *TitleScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		len(input.JustClicked()) > 0 {
		if ts.onStartPressed != nil {
			ts.onStartPressed()
		}
	}
	return nil
}

// Draw renders the title screen
func (ts *TitleScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(color.RGBA{15, 20, 35, 255})

	elapsed := time.Since(ts.startTime).Seconds()
	drawHills(screen, width, height, elapsed)

	centerX := float64(width) / 2
	centerY := float64(height) / 3

	// Pulsing title
	pulse := 1.0 + 0.1*math.Sin(elapsed*2.0)
	brightness := math.Min(1.0, 1.0+0.2*math.Sin(elapsed*1.5))
	titleColor := color.RGBA{
		uint8(255 * brightness),
		uint8(200 * brightness),
		uint8(50 * brightness),
		255,
	}
	drawText(screen, "HILL CLIMBER", centerX, centerY, 96*pulse, titleColor)
	drawText(screen, "Drive as far as the fuel lasts", centerX, centerY+90, 28, color.RGBA{180, 180, 200, 255})

	if ts.balance != nil {
		drawText(screen, fmt.Sprintf("COINS: %d", ts.balance()), centerX, centerY+140, 24, gold)
	}

	if int(elapsed*2)%2 == 0 {
		drawText(screen, "Press ENTER or SPACE to open the garage", centerX, float64(height)-100, 24, color.RGBA{150, 200, 255, 255})
	}
}

// drawHills draws a slowly scrolling ridge line along the bottom
func drawHills(screen *ebiten.Image, width, height int, elapsed float64) {
	lineColor := color.RGBA{50, 60, 80, 255}
	base := float64(height) * 0.8
	prevX, prevY := float32(0), float32(base)
	for x := 0; x <= width; x += 16 {
		y := base + 30*math.Sin(float64(x)*0.01+elapsed*0.5) + 15*math.Sin(float64(x)*0.027)
		vector.StrokeLine(screen, prevX, prevY, float32(x), float32(y), 3, lineColor, true)
		prevX, prevY = float32(x), float32(y)
	}
}
