package flagen

// ShapeType identifies the supported emblem variants.
type ShapeType int

const (
	Circle ShapeType = iota
	Ring
	LeftTriangle

	numShapeTypes
)

// Ring thickness sampling interval: [minRingWidth, minRingWidth+ringWidthSpan).
const (
	minRingWidth  = 0.1
	ringWidthSpan = 0.5
)

// Shape is the emblem geometry. RingWidth is the ring's radial thickness
// and is meaningful only when Type is Ring; once sampled it is used as is,
// without any re-validation.
type Shape struct {
	Type      ShapeType
	RingWidth float64
}

// Foreground is the single optional emblem overlaid on the background.
type Foreground struct {
	Color Color
	Shape Shape
}

// RandomShape selects one of the emblem variants with equal probability.
// A ring additionally gets its thickness sampled uniformly from [0.1, 0.6).
func (g *Generator) RandomShape() Shape {
	s := Shape{Type: ShapeType(g.rnd.Intn(int(numShapeTypes)))}
	if s.Type == Ring {
		s.RingWidth = minRingWidth + g.rnd.Float64()*ringWidthSpan
	}
	return s
}

// RandomForeground pairs an independently sampled color and shape.
func (g *Generator) RandomForeground() *Foreground {
	return &Foreground{
		Color: g.RandomColor(),
		Shape: g.RandomShape(),
	}
}
