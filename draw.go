package flagen

import (
	"image"
	"math"

	"github.com/esimov/flagen/utils"
)

// circleRadius is the emblem radius in normalized coordinates. It is also
// the fixed outer bound of the ring band, which makes wide rings thicken
// inward only.
const circleRadius = 0.8 / 2

// drawWithFn overwrites every pixel whose position satisfies the membership
// predicate, leaving the remaining pixels untouched.
func drawWithFn(img *Flag, c Color, fn func(pos image.Point) bool) {
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if fn(image.Pt(x, y)) {
				img.SetRGB(x, y, c)
			}
		}
	}
}

// Draw rasterizes the emblem over the already striped flag buffer.
// Pixel positions are normalized against the shorter image dimension, so
// on non-square flags the emblem stretches with the canvas instead of
// being corrected to a perfect circle or triangle.
func (fg *Foreground) Draw(img *Flag) {
	bounds := img.Bounds()
	scale := float64(utils.Min(bounds.Dx(), bounds.Dy()))

	switch fg.Shape.Type {
	case Circle, Ring:
		half := image.Pt(bounds.Dx()/2, bounds.Dy()/2)

		drawWithFn(img, fg.Color, func(pos image.Point) bool {
			nx := float64(pos.X-half.X) / scale
			ny := float64(pos.Y-half.Y) / scale
			dist := math.Hypot(nx, ny)

			if fg.Shape.Type == Ring {
				return dist >= circleRadius-fg.Shape.RingWidth/2 && dist <= circleRadius
			}
			return dist <= circleRadius
		})
	case LeftTriangle:
		// The triangle predicate skips the centering step: the wedge hangs
		// off the left edge, apex pointing right, widest at the vertical
		// midline.
		drawWithFn(img, fg.Color, func(pos image.Point) bool {
			nx := float64(pos.X) / scale
			ny := float64(pos.Y) / scale

			return nx+utils.Abs(ny-0.5) < 0.5
		})
	}
}
