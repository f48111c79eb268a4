package flagen

import (
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
)

// upscaled returns the image to encode, enlarged by the configured integer
// upscale factor. Nearest-neighbor sampling keeps the stripe and emblem
// edges hard; flags never get anti-aliased on the way out.
func (p *Processor) upscaled(img *Flag) image.Image {
	if p.Upscale <= 1 {
		return img
	}
	b := img.Bounds()

	return imaging.Resize(img, b.Dx()*p.Upscale, b.Dy()*p.Upscale, imaging.NearestNeighbor)
}

// encodeImg encodes the flag to a destination of type io.Writer. For
// regular files the encoder is selected by the file extension; everything
// else, the stdout pipe included, is written out as PNG.
func (p *Processor) encodeImg(w io.Writer, img *Flag) error {
	res := p.upscaled(img)

	switch w := w.(type) {
	case *os.File:
		switch ext := filepath.Ext(w.Name()); ext {
		case "", ".png":
			return errors.Wrap(png.Encode(w, res), "unable to encode the flag as png")
		case ".jpg", ".jpeg":
			return errors.Wrap(jpeg.Encode(w, res, &jpeg.Options{Quality: 100}), "unable to encode the flag as jpeg")
		case ".bmp":
			return errors.Wrap(bmp.Encode(w, res), "unable to encode the flag as bmp")
		default:
			return errors.Errorf("unsupported image format: %v", ext)
		}
	default:
		return errors.Wrap(png.Encode(w, res), "unable to encode the flag as png")
	}
}
