package prim

import (
	"fmt"
	"image/color"
	"math"
)

// Color is a 24-bit RGB color. It implements color.Color so it can be
// written directly into a standard library image.
type Color struct {
	R, G, B uint8
}

var (
	Black = Color{}
	White = Color{R: 255, G: 255, B: 255}
)

func NewColor(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ColorFromUnit builds a Color from components in [0, 1], clamping out of
// range input.
func ColorFromUnit(r, g, b float64) Color {
	return Color{
		R: unitToByte(r),
		G: unitToByte(g),
		B: unitToByte(b),
	}
}

// ColorFromVector treats a Vector3 as an RGB triple in [0, 1] linear space.
func ColorFromVector(v Vector3) Color {
	return ColorFromUnit(v.X, v.Y, v.Z)
}

// ColorFromNormal maps a unit normal (each component in [-1, 1]) to a
// color via n/2 + 0.5, the conventional "normal as color" visualization.
func ColorFromNormal(n Vector3) Color {
	return ColorFromUnit(n.X/2+0.5, n.Y/2+0.5, n.Z/2+0.5)
}

// ColorFromHSV builds a Color from hue in [0, 360), saturation and value
// in [0, 1].
func ColorFromHSV(h, s, v float64) Color {
	c := v * s
	hp := math.Mod(h, 360) / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))

	var r1, g1, b1 float64
	switch {
	case hp < 1:
		r1, g1, b1 = c, x, 0
	case hp < 2:
		r1, g1, b1 = x, c, 0
	case hp < 3:
		r1, g1, b1 = 0, c, x
	case hp < 4:
		r1, g1, b1 = 0, x, c
	case hp < 5:
		r1, g1, b1 = x, 0, c
	default:
		r1, g1, b1 = c, 0, x
	}

	m := v - c
	return ColorFromUnit(r1+m, g1+m, b1+m)
}

func unitToByte(x float64) uint8 {
	return uint8(Clamp(x, 0, 1)*255.0 + 0.5)
}

// Vector returns the color as a Vector3 with components in [0, 1].
func (c Color) Vector() Vector3 {
	return Vector3{X: float64(c.R) / 255.0, Y: float64(c.G) / 255.0, Z: float64(c.B) / 255.0}
}

// Mul multiplies two colors componentwise in [0, 1] linear space.
func (c Color) Mul(other Color) Color {
	return ColorFromVector(c.Vector().Mul(other.Vector()))
}

// Scale multiplies every channel by s, clamping to [0, 1].
func (c Color) Scale(s float64) Color {
	return ColorFromVector(c.Vector().Scale(s))
}

// Add adds two colors, clamping to [0, 1].
func (c Color) Add(other Color) Color {
	return ColorFromVector(c.Vector().Add(other.Vector()))
}

// Lerp linearly interpolates from c to other by t in [0, 1].
func (c Color) Lerp(other Color, t float64) Color {
	return ColorFromVector(c.Vector().Lerp(other.Vector(), t))
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = 0xffff
	return
}

var _ color.Color = Color{}
