package flagen

import "image/color"

// Color is a single flag pixel: three 8-bit channels, no alpha.
type Color struct {
	R, G, B uint8
}

// NRGBA converts the color to the stdlib color type with full opacity.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// RandomColor samples each of the three channels independently and
// uniformly from the full 8-bit range.
func (g *Generator) RandomColor() Color {
	return Color{
		R: uint8(g.rnd.Intn(256)),
		G: uint8(g.rnd.Intn(256)),
		B: uint8(g.rnd.Intn(256)),
	}
}
