package flagen

import "math/rand"

// Generator draws every random parameter of a flag from its own explicit
// random source. Independent generators can run concurrently and a fixed
// seed reproduces the exact same sequence of flags, which also makes the
// sampling rules testable.
type Generator struct {
	rnd *rand.Rand
}

// NewGenerator returns a generator backed by a fresh random stream with
// the given seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// RandomFlag assembles and renders a fully random flag of the requested
// dimensions. Half of the flags carry a foreground emblem, with one
// consistency rule: a solid, single-stripe background is never left bare,
// it always gets a foreground and that foreground is always a plain circle.
func (g *Generator) RandomFlag(width, height int) *Flag {
	bg := g.RandomBackground()
	hasForeground := g.rnd.Intn(2) == 0

	solid := len(bg.Stripes) == 1
	if solid {
		hasForeground = true
	}

	var fg *Foreground
	if hasForeground {
		fg = g.RandomForeground()
		if solid {
			fg.Shape = Shape{Type: Circle}
		}
	}

	return Compose(bg, fg, width, height)
}
