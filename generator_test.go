package flagen

import (
	"bytes"
	"testing"
)

func TestGenerator_DeterministicForSeed(t *testing.T) {
	a := NewGenerator(99).RandomFlag(64, 32)
	b := NewGenerator(99).RandomFlag(64, 32)

	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("same seed expected to reproduce the same flag")
	}
}

func TestGenerator_SolidBackgroundAlwaysGetsCircle(t *testing.T) {
	// Replay the generator's random stream to learn which seeds produce a
	// solid background, then check the rendered flag carries the forced
	// circular emblem instead of a bare fill or another shape.
	solids := 0
	for seed := int64(0); seed < 1000; seed++ {
		replay := NewGenerator(seed)
		bg := replay.RandomBackground()
		if len(bg.Stripes) != 1 {
			continue
		}
		solids++

		replay.rnd.Intn(2) // the foreground coin flip is consumed either way
		fg := replay.RandomForeground()
		fg.Shape = Shape{Type: Circle}
		want := Compose(bg, fg, imgWidth, imgHeight)

		got := NewGenerator(seed).RandomFlag(imgWidth, imgHeight)
		if !bytes.Equal(got.Pix, want.Pix) {
			t.Fatalf("seed %d: solid background flag expected to carry a circular emblem", seed)
		}
	}
	if solids == 0 {
		t.Fatal("expected at least one solid background across 1000 seeds")
	}
}

func TestGenerator_StripedBackgroundReachesEveryStripe(t *testing.T) {
	g := NewGenerator(5)

	// Every stripe of a generated flag must show up in the output when no
	// foreground covers it: probe the stripe midpoints on a bare render.
	bg := &Background{Horizontal: true, Stripes: []Color{red, blue, {G: 0xff}, {R: 0x80}, {B: 0x80}}}
	img := Compose(bg, nil, imgWidth, imgHeight)

	for i, want := range bg.Stripes {
		x := i*imgWidth/len(bg.Stripes) + imgWidth/(2*len(bg.Stripes))
		if got := img.RGBAt(x, 0); got != want {
			t.Errorf("stripe %d midpoint: got %v, want %v", i, got, want)
		}
	}

	// And the assembler itself must terminate with a buffer of the exact
	// requested geometry.
	flag := g.RandomFlag(33, 21)
	if b := flag.Bounds(); b.Dx() != 33 || b.Dy() != 21 {
		t.Errorf("unexpected flag bounds: %v", b)
	}
	if len(flag.Pix) != 3*33*21 {
		t.Errorf("unexpected buffer length: %d", len(flag.Pix))
	}
}
