package flagen

import (
	"image"
	"image/color"
)

// Flag is a rendered flag: a width×height grid of 24-bit RGB pixels,
// row-major with the origin in the top-left corner. The packed layout
// mirrors image.RGBA, minus the alpha channel.
type Flag struct {
	// Pix holds the pixel channels in R, G, B order. The pixel at (x, y)
	// starts at Pix[(y-Rect.Min.Y)*Stride + (x-Rect.Min.X)*3].
	Pix []uint8
	// Stride is the Pix distance in bytes between vertically adjacent pixels.
	Stride int
	// Rect is the flag's bounds.
	Rect image.Rectangle
}

// NewFlag allocates an all-black flag buffer with the given dimensions.
// Non-positive dimensions yield an empty flag.
func NewFlag(width, height int) *Flag {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Flag{
		Pix:    make([]uint8, 3*width*height),
		Stride: 3 * width,
		Rect:   image.Rect(0, 0, width, height),
	}
}

// ColorModel implements the image.Image interface.
func (f *Flag) ColorModel() color.Model { return color.NRGBAModel }

// Bounds implements the image.Image interface.
func (f *Flag) Bounds() image.Rectangle { return f.Rect }

// At implements the image.Image interface. Flags are fully opaque.
func (f *Flag) At(x, y int) color.Color {
	return f.RGBAt(x, y).NRGBA()
}

// PixOffset returns the index of the first Pix byte of the pixel at (x, y).
func (f *Flag) PixOffset(x, y int) int {
	return (y-f.Rect.Min.Y)*f.Stride + (x-f.Rect.Min.X)*3
}

// RGBAt returns the color of the pixel at (x, y).
func (f *Flag) RGBAt(x, y int) Color {
	if !(image.Point{X: x, Y: y}.In(f.Rect)) {
		return Color{}
	}
	i := f.PixOffset(x, y)
	return Color{R: f.Pix[i], G: f.Pix[i+1], B: f.Pix[i+2]}
}

// SetRGB overwrites the pixel at (x, y).
func (f *Flag) SetRGB(x, y int, c Color) {
	if !(image.Point{X: x, Y: y}.In(f.Rect)) {
		return
	}
	i := f.PixOffset(x, y)
	f.Pix[i], f.Pix[i+1], f.Pix[i+2] = c.R, c.G, c.B
}

// Compose renders a flag of the requested dimensions: the background
// stripes are filled in first, then the optional foreground emblem is
// rasterized over them. A nil foreground leaves the stripes bare.
// Identical inputs always produce a pixel-identical buffer; zero width
// or height produce an empty flag.
func Compose(bg *Background, fg *Foreground, width, height int) *Flag {
	img := NewFlag(width, height)

	stripes := float64(len(bg.Stripes))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// The axis position stays below 1, so the truncated index
			// never reaches the stripe count.
			pos := float64(y) / float64(height)
			if bg.Horizontal {
				pos = float64(x) / float64(width)
			}
			img.SetRGB(x, y, bg.Stripes[int(pos*stripes)])
		}
	}

	if fg != nil {
		fg.Draw(img)
	}
	return img
}
