package flagen

// Stripe count limits of the background pattern.
const (
	minStripes = 1
	maxStripes = 5
)

// Background is the striped base layer of a flag: an ordered sequence of
// uniform color bands running along the horizontal or the vertical axis.
// A single stripe makes the background a solid fill.
type Background struct {
	Horizontal bool
	Stripes    []Color
}

// RandomBackground builds a background with a uniformly sampled stripe
// count between minStripes and maxStripes and a coin-flip orientation.
// The stripe colors keep their sampling order: the first sample is the
// leftmost respectively topmost band.
func (g *Generator) RandomBackground() *Background {
	n := minStripes + g.rnd.Intn(maxStripes-minStripes+1)

	stripes := make([]Color, n)
	for i := range stripes {
		stripes[i] = g.RandomColor()
	}

	return &Background{
		Horizontal: g.rnd.Intn(2) == 0,
		Stripes:    stripes,
	}
}
