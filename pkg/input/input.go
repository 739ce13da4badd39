package input

import (
	"image"

	"github.com/golangdaddy/hillclimber/pkg/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Control is one of the four driving controls
type Control int

const (
	Gas Control = iota
	Brake
	Jump
	Dive
)

func (c Control) String() string {
	switch c {
	case Gas:
		return "GAS"
	case Brake:
		return "BRAKE"
	case Jump:
		return "JUMP"
	case Dive:
		return "DOWN"
	}
	return "?"
}

// Keys maps each control to the keys that hold it
var Keys = map[Control][]ebiten.Key{
	Gas:   {ebiten.KeyArrowUp, ebiten.KeyArrowRight, ebiten.KeyW},
	Brake: {ebiten.KeyArrowDown, ebiten.KeyArrowLeft},
	Jump:  {ebiten.KeySpace},
	Dive:  {ebiten.KeyS},
}

// Pad is an on-screen button that holds a control while pressed
type Pad struct {
	Control Control
	Rect    image.Rectangle
}

// Contains reports whether a screen point is on the pad
func (p Pad) Contains(pt image.Point) bool {
	return pt.In(p.Rect)
}

// Layout places the four pads along the bottom of a width x height screen:
// brake and dive on the left, jump and gas on the right.
func Layout(width, height int) []Pad {
	size := height / 6
	if size < 48 {
		size = 48
	}
	margin := size / 4
	y := height - size - margin

	pad := func(c Control, x int) Pad {
		return Pad{Control: c, Rect: image.Rect(x, y, x+size, y+size)}
	}
	return []Pad{
		pad(Brake, margin),
		pad(Dive, 2*margin+size),
		pad(Jump, width-2*(margin+size)),
		pad(Gas, width-margin-size),
	}
}

// Resolve builds an intent from a key query and the points currently pressed on screen
func Resolve(pressed func(ebiten.Key) bool, points []image.Point, pads []Pad) sim.Intent {
	held := make(map[Control]bool, 4)
	for c, keys := range Keys {
		for _, k := range keys {
			if pressed(k) {
				held[c] = true
				break
			}
		}
	}
	for _, pt := range points {
		for _, p := range pads {
			if p.Contains(pt) {
				held[p.Control] = true
			}
		}
	}

	return sim.Intent{
		Accelerate: held[Gas],
		Brake:      held[Brake],
		Jump:       held[Jump],
		Dive:       held[Dive],
	}
}

// Reader polls keyboard, mouse and touch state into intents
type Reader struct {
	pads    []Pad
	touches []ebiten.TouchID
	points  []image.Point
}

// NewReader lays out the pads for a screen of the given size
func NewReader(width, height int) *Reader {
	return &Reader{pads: Layout(width, height)}
}

// Pads returns the on-screen buttons so they can be drawn
func (r *Reader) Pads() []Pad {
	return r.pads
}

// Read samples the current devices. Call it once per Update.
func (r *Reader) Read() sim.Intent {
	r.points = r.points[:0]
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		r.points = append(r.points, image.Pt(ebiten.CursorPosition()))
	}
	r.touches = ebiten.AppendTouchIDs(r.touches[:0])
	for _, id := range r.touches {
		r.points = append(r.points, image.Pt(ebiten.TouchPosition(id)))
	}
	return Resolve(ebiten.IsKeyPressed, r.points, r.pads)
}

// Held reports which pads are pressed in the last Read
func (r *Reader) Held(c Control) bool {
	for _, p := range r.pads {
		if p.Control != c {
			continue
		}
		for _, pt := range r.points {
			if p.Contains(pt) {
				return true
			}
		}
	}
	return false
}

// PausePressed reports a fresh press of the pause key
func PausePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP)
}

// JustClicked returns the screen points pressed this frame by mouse or touch
func JustClicked() []image.Point {
	var pts []image.Point
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		pts = append(pts, image.Pt(ebiten.CursorPosition()))
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		pts = append(pts, image.Pt(ebiten.TouchPosition(id)))
	}
	return pts
}
