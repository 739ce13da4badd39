package render

import (
	"image/color"
	"math"

	"github.com/golangdaddy/hillclimber/pkg/sim"
	"github.com/golangdaddy/hillclimber/pkg/vehicle"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	glassColor     = color.NRGBA{100, 180, 220, 178}
	darkGlassColor = color.NRGBA{50, 50, 50, 204}
	cockpitColor   = color.NRGBA{30, 30, 30, 230}
	highlightColor = color.NRGBA{255, 255, 255, 51}
	headlightColor = color.RGBA{0xFF, 0xF5, 0x9D, 0xFF}
	taillightColor = color.RGBA{0xF4, 0x43, 0x36, 0xFF}
	metalColor     = color.RGBA{0x55, 0x55, 0x55, 0xFF}
	trimColor      = color.RGBA{0x33, 0x33, 0x33, 0xFF}
	ventColor      = color.RGBA{0x22, 0x22, 0x22, 0xFF}
	strutColor     = color.RGBA{0x88, 0x88, 0x88, 0xFF}
	pipeColor      = color.RGBA{0x44, 0x44, 0x44, 0xFF}
	ridgeColor     = color.NRGBA{0, 0, 0, 77}

	tireInner  = color.RGBA{0x1A, 0x1A, 0x1A, 0xFF}
	rimColor   = color.RGBA{0x95, 0xA5, 0xA6, 0xFF}
	hubColor   = color.RGBA{0x7F, 0x8C, 0x8D, 0xFF}
	spokeColor = color.RGBA{0xBD, 0xC3, 0xC7, 0xFF}
	wheelShine = color.NRGBA{255, 255, 255, 77}
)

const wheelSpokes = 6

// pen draws in body-relative fractions of a w x h box whose top left is x, y
type pen struct {
	r          *Renderer
	dst        *ebiten.Image
	x, y, w, h float32
	vis        vehicle.Visual
}

func (p pen) px(fx float32) float32 { return p.x + fx*p.w }
func (p pen) py(fy float32) float32 { return p.y + fy*p.h }

func (p pen) rect(fx, fy, fw, fh float32, c color.Color) {
	vector.DrawFilledRect(p.dst, p.px(fx), p.py(fy), fw*p.w, fh*p.h, c, true)
}

// rectPx is rect with an absolute pixel size
func (p pen) rectPx(fx, fy, w, h float32, c color.Color) {
	vector.DrawFilledRect(p.dst, p.px(fx), p.py(fy), w, h, c, true)
}

func (p pen) circle(fx, fy, radius float32, c color.Color) {
	vector.DrawFilledCircle(p.dst, p.px(fx), p.py(fy), radius, c, true)
}

func (p pen) line(fx1, fy1, fx2, fy2, width float32, c color.Color) {
	vector.StrokeLine(p.dst, p.px(fx1), p.py(fy1), p.px(fx2), p.py(fy2), width, c, true)
}

// poly fills a convex outline given as fractional x, y pairs
func (p pen) poly(c color.Color, pts ...float32) {
	abs := make([]float32, len(pts))
	for i := 0; i+1 < len(pts); i += 2 {
		abs[i] = p.px(pts[i])
		abs[i+1] = p.py(pts[i+1])
	}
	p.r.fillPolygon(p.dst, c, abs...)
}

// painter draws a body style into the pen's box
type painter func(p pen)

var painters = map[vehicle.BodyStyle]painter{
	vehicle.BodyJeep:     paintJeep,
	vehicle.BodyBike:     paintBike,
	vehicle.BodyTruck:    paintTruck,
	vehicle.BodySupercar: paintSupercar,
	vehicle.BodyMonster:  paintMonster,
	vehicle.BodyRacer:    paintRacer,
}

// painterFor resolves the body painter, falling back to the jeep
func painterFor(style vehicle.BodyStyle) painter {
	if p, ok := painters[style]; ok {
		return p
	}
	return paintJeep
}

func paintJeep(p pen) {
	p.rect(0, 0, 1, 1, p.vis.Color)
	p.rect(0, 0.6, 1, 0.4, p.vis.Accent)
	p.rect(0.1, 0.1, 0.35, 0.45, glassColor)
	p.rect(0.55, 0.15, 0.35, 0.35, glassColor)

	// Roof rack
	vector.StrokeRect(p.dst, p.px(0.05), p.y-5, 0.9*p.w, 5, 4, metalColor, true)
	p.line(0.5, 0.2, 0.5, 1, 2, p.vis.Accent)

	p.circle(0.92, 0.4, 6, headlightColor)
	p.circle(0.05, 0.5, 5, taillightColor)
	p.rect(0, 0, 1, 0.15, highlightColor)
}

func paintBike(p pen) {
	p.line(0.3, 1, 0.5, 0.2, 6, p.vis.Color)
	p.line(0.5, 0.2, 0.7, 1, 6, p.vis.Color)
	p.line(0.4, 0.3, 0.4, 0.5, 6, p.vis.Color)
	p.line(0.5, 0.2, 0.65, 0, 6, p.vis.Color)

	// Seat
	vector.DrawFilledRect(p.dst, p.px(0.35)-15, p.py(0.3)-6, 30, 12, trimColor, true)

	p.rect(0.35, 0.55, 0.3, 0.25, p.vis.Accent)
	p.line(0.5, 0.75, 0.2, 0.85, 4, metalColor)
	p.circle(0.75, 0.15, 7, headlightColor)
}

func paintTruck(p pen) {
	p.rect(0, 0.2, 0.55, 0.8, p.vis.Accent)
	for i := float32(1); i < 4; i++ {
		p.line(0.55*i/4, 0.2, 0.55*i/4, 1, 2, ridgeColor)
	}

	p.rect(0.55, 0, 0.45, 1, p.vis.Color)
	p.rect(0.55, 0.6, 0.45, 0.4, p.vis.Accent)
	p.rect(0.6, 0.1, 0.35, 0.45, glassColor)
	p.line(0.78, 0.1, 0.78, 0.55, 3, p.vis.Color)

	p.rect(0.92, 0.3, 0.08, 0.3, trimColor)
	for i := float32(0); i < 5; i++ {
		y := 0.3 + 0.3*i/5
		p.line(0.92, y, 1, y, 1, metalColor)
	}

	p.circle(0.95, 0.25, 6, headlightColor)
	p.circle(0.95, 0.65, 6, headlightColor)

	// Mirror sticks out behind the cab
	p.rectPx(0.55, 0.25, -8, 10, p.vis.Accent)
	p.rect(0.55, 0, 0.45, 0.12, highlightColor)
}

func paintSupercar(p pen) {
	p.poly(p.vis.Color,
		0, 0.6,
		0.15, 0.3,
		0.4, 0,
		0.7, 0,
		0.85, 0.3,
		1, 0.6,
		1, 1,
		0, 1,
	)
	p.poly(darkGlassColor,
		0.42, 0.15,
		0.68, 0.15,
		0.75, 0.45,
		0.35, 0.45,
	)
	p.rect(0, 0.65, 1, 0.15, p.vis.Accent)

	// Spoiler
	p.rectPx(0.05, 0.1, 8, 0.3*p.h, p.vis.Accent)
	p.rectPx(0.05, 0.1, 0.15*p.w, 6, p.vis.Accent)

	p.circle(0.95, 0.7, 5, headlightColor)
	p.rect(0.85, 0.5, 0.12, 0.15, ventColor)
	p.rect(0.3, 0.05, 0.4, 0.08, color.NRGBA{255, 255, 255, 77})
}

func paintMonster(p pen) {
	p.rect(0.1, 0, 0.8, 0.6, p.vis.Color)
	p.rect(0.1, 0.4, 0.8, 0.2, p.vis.Accent)
	p.rect(0.2, 0.05, 0.3, 0.35, glassColor)

	// Roll cage
	p.line(0.15, 0, 0.15, -0.2, 4, metalColor)
	p.line(0.15, -0.2, 0.85, -0.2, 4, metalColor)
	p.line(0.85, -0.2, 0.85, 0, 4, metalColor)

	// Suspension
	p.line(0.25, 0.6, 0.25, 0.85, 6, strutColor)
	p.line(0.75, 0.6, 0.75, 0.85, 6, strutColor)

	p.rectPx(0.12, 0.35, 6, 0.25*p.h, pipeColor)
	p.rectPx(0.82, 0.35, 6, 0.25*p.h, pipeColor)

	for i := float32(0); i < 4; i++ {
		p.circle(0.3+i*0.15, -0.15, 5, headlightColor)
	}
	p.rect(0.1, 0, 0.8, 0.1, highlightColor)
}

func paintRacer(p pen) {
	p.poly(p.vis.Color,
		0.05, 0.5,
		0.2, 0.15,
		0.5, 0,
		0.75, 0,
		0.9, 0.25,
		1, 0.5,
		1, 1,
		0, 1,
	)
	p.poly(cockpitColor,
		0.45, 0.1,
		0.7, 0.1,
		0.75, 0.4,
		0.4, 0.4,
	)
	p.rect(0.1, 0.55, 0.8, 0.08, p.vis.Accent)

	// Front wing
	p.rectPx(0.85, 0.65, 0.15*p.w, 5, p.vis.Accent)
	p.rectPx(0.92, 0.65, 3, 0.2*p.h, p.vis.Accent)

	// Rear wing
	p.rectPx(0.08, 0.15, 5, 0.3*p.h, trimColor)
	p.rectPx(0.05, 0.15, 0.1*p.w, 4, trimColor)

	p.rect(0.55, 0.45, 0.15, 0.12, ventColor)
	drawLabel(p.dst, "1", p.px(0.35), p.py(0.3), color.White)

	p.circle(0.96, 0.6, 4, headlightColor)
	p.rect(0.4, 0.05, 0.35, 0.06, color.NRGBA{255, 255, 255, 64})
}

// drawWheel paints a tire with spokes turned by angle
func drawWheel(dst *ebiten.Image, x, y, radius float32, angle float64, tire color.Color) {
	vector.DrawFilledCircle(dst, x, y, radius, tire, true)
	vector.DrawFilledCircle(dst, x, y, radius-3, tireInner, true)
	vector.DrawFilledCircle(dst, x, y, radius*0.65, rimColor, true)
	vector.DrawFilledCircle(dst, x, y, radius*0.25, hubColor, true)

	for i := 0; i < wheelSpokes; i++ {
		a := float64(i)*2*math.Pi/wheelSpokes + angle
		cos, sin := float32(math.Cos(a)), float32(math.Sin(a))
		vector.StrokeLine(dst,
			x+cos*radius*0.3, y+sin*radius*0.3,
			x+cos*radius*0.6, y+sin*radius*0.6,
			3, spokeColor, true)
	}

	vector.DrawFilledCircle(dst, x-radius*0.2, y-radius*0.2, radius*0.15, wheelShine, true)
}

// canvasMargin is the room left around the body for wheels, the roof rack and the cage
func canvasMargin(height float64) float64 {
	return math.Ceil(height) + 10
}

// prepareVehicle resolves the painter and canvas for a new profile
func (r *Renderer) prepareVehicle(profile vehicle.Profile, v sim.Vehicle) {
	if r.body != nil && r.bodyID == profile.ID() {
		return
	}
	if r.body != nil {
		r.body.Deallocate()
	}
	r.bodyID = profile.ID()
	r.paint = painterFor(profile.Visual().Body)
	r.margin = canvasMargin(v.Height)
	w := int(math.Ceil(v.Width + 2*r.margin))
	h := int(math.Ceil(v.Height + 2*r.margin))
	r.body = ebiten.NewImage(w, h)
}

func (r *Renderer) drawVehicle(screen *ebiten.Image, s sim.Snapshot) {
	v := s.Vehicle
	r.prepareVehicle(s.Profile, v)
	vis := s.Profile.Visual()

	r.body.Clear()
	m := float32(r.margin)
	w, h := float32(v.Width), float32(v.Height)

	// Wheels sit just under the body, behind it
	radius := h * 0.4
	for _, fx := range []float32{0.25, 0.75} {
		drawWheel(r.body, m+fx*w, m+h+5, radius, v.WheelAngle, vis.Wheel)
	}
	r.paint(pen{r: r, dst: r.body, x: m, y: m, w: w, h: h, vis: vis})

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-(r.margin + v.Width/2), -(r.margin + v.Height/2))
	op.GeoM.Rotate(v.Rotation)
	op.GeoM.Translate(v.X+v.Width/2, v.Y+v.Height/2)
	if k := dangerTint(s.HUD.Danger); k > 0 {
		op.ColorScale.Scale(1, 1-k, 1-k, 1)
	}
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(r.body, op)
}
