package background

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkyGradient(t *testing.T) {
	g := NewGenerator(640, 400)
	img := g.SkyGradient()

	require.Equal(t, 1, img.Bounds().Dx())
	require.Equal(t, 400, img.Bounds().Dy())
	assert.Equal(t, skyTop, img.RGBAAt(0, 0))
	assert.Equal(t, skyLow, img.RGBAAt(0, 399))
	assert.Equal(t, uint8(255), img.RGBAAt(0, 150).A)
}

func TestGenerateHills_Deterministic(t *testing.T) {
	g := NewGenerator(200, 100)
	a := g.GenerateHills(7)
	b := g.GenerateHills(7)
	assert.Equal(t, a.Pix, b.Pix)

	// Top rows stay clear, bottom row is solid
	for x := 0; x < 200; x++ {
		assert.Zero(t, a.RGBAAt(x, 0).A)
		assert.Equal(t, uint8(255), a.RGBAAt(x, 99).A)
	}
}

func TestParallax(t *testing.T) {
	g := NewGenerator(1280, 720)

	assert.Equal(t, 150.0, g.SunX(0))
	assert.InDelta(t, 100.0, g.SunX(1000), 1e-9)

	x0, y0 := g.CloudPos(0, 0)
	assert.Equal(t, -150.0, x0)
	assert.Equal(t, 80.0, y0)

	x1, _ := g.CloudPos(0, 100)
	assert.InDelta(t, x0+30, x1, 1e-9)

	// Wraps within the padded screen width
	for s := 0.0; s < 50000; s += 777 {
		x, _ := g.CloudPos(3, s)
		assert.GreaterOrEqual(t, x, -150.0)
		assert.Less(t, x, 1280.0+150)

		off := g.HillOffset(s)
		assert.GreaterOrEqual(t, off, 0.0)
		assert.Less(t, off, 1280.0)
	}
}
