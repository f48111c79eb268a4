package flagen

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/bmp"
)

func TestImage_EncodePNG(t *testing.T) {
	assert := assert.New(t)

	p := &Processor{Width: 20, Height: 10}
	var buf bytes.Buffer
	assert.NoError(p.Process(&buf))

	img, err := png.Decode(&buf)
	assert.NoError(err)
	assert.Equal(20, img.Bounds().Dx())
	assert.Equal(10, img.Bounds().Dy())
}

func TestImage_EncodeBMPWithUpscale(t *testing.T) {
	assert := assert.New(t)

	p := &Processor{Width: 16, Height: 8, Upscale: 4}
	dst := filepath.Join(t.TempDir(), "flag.bmp")
	assert.NoError(p.process(dst))

	f, err := os.Open(dst)
	assert.NoError(err)
	defer f.Close()

	img, err := bmp.Decode(f)
	assert.NoError(err)
	assert.Equal(64, img.Bounds().Dx())
	assert.Equal(32, img.Bounds().Dy())
}

func TestImage_UpscaleKeepsHardEdges(t *testing.T) {
	assert := assert.New(t)

	// Nearest-neighbor enlargement of a two stripe flag must yield only the
	// two stripe colors, with the boundary still a single pixel column.
	p := &Processor{Upscale: 3}
	bg := &Background{Horizontal: true, Stripes: []Color{red, blue}}
	res := p.upscaled(Compose(bg, nil, 10, 4))

	assert.Equal(30, res.Bounds().Dx())
	assert.Equal(12, res.Bounds().Dy())

	for x := 0; x < 30; x++ {
		want := red.NRGBA()
		if x >= 15 {
			want = blue.NRGBA()
		}
		r, g, b, a := res.At(x, 6).RGBA()
		got := [4]uint32{r >> 8, g >> 8, b >> 8, a >> 8}
		assert.Equal([4]uint32{uint32(want.R), uint32(want.G), uint32(want.B), 0xff}, got, "column %d", x)
	}
}

func TestImage_UnsupportedFormat(t *testing.T) {
	p := &Processor{Width: 4, Height: 4}

	if err := p.process(filepath.Join(t.TempDir(), "flag.gif")); err == nil {
		t.Fatal("expected the gif destination to be rejected")
	}
}
