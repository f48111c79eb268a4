package flagen

import (
	"image"
	"log"

	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
)

const windowTitle = "flag generator!"

// Gui hosts the interactive preview window. A new flag is generated on the
// first frame, whenever the window surface size changes and on every Space
// press; each regenerated flag is also written to the destination file,
// mirroring the batch output path.
type Gui struct {
	proc *Processor
	dst  string
	flag *Flag
	size image.Point
	ctx  layout.Context
}

// NewGUI initializes the Gio interface over the processor options.
// An empty destination disables the flag auto-save.
func NewGUI(p *Processor, dst string) *Gui {
	return &Gui{
		proc: p,
		dst:  dst,
		ctx: layout.Context{
			Ops: new(op.Ops),
			Constraints: layout.Constraints{
				Max: image.Pt(p.Width, p.Height),
			},
		},
	}
}

// Run opens the preview window and blocks until it gets closed, either by
// an ESC key press or by a window close event.
func (g *Gui) Run() error {
	w := app.NewWindow(
		app.Title(windowTitle),
		app.Size(unit.Dp(g.proc.Width), unit.Dp(g.proc.Height)),
	)

	for e := range w.Events() {
		switch e := e.(type) {
		case system.FrameEvent:
			if e.Size != g.size {
				g.size = e.Size
				g.regenerate()
			}
			g.draw(e)
		case key.Event:
			if e.State != key.Press {
				break
			}
			switch e.Name {
			case key.NameSpace:
				g.regenerate()
				w.Invalidate()
			case key.NameEscape:
				w.Perform(system.ActionClose)
			}
		case system.DestroyEvent:
			return e.Err
		}
	}
	return nil
}

// regenerate renders a new random flag at the current surface size and
// persists it in case a destination file was requested.
func (g *Gui) regenerate() {
	g.flag = g.proc.generator().RandomFlag(g.size.X, g.size.Y)

	if g.dst == "" {
		return
	}
	if err := g.proc.save(g.dst, g.flag); err != nil {
		log.Printf("could not save the generated flag: %v", err)
	}
}

// draw paints the current flag stretched over the whole window surface.
func (g *Gui) draw(e system.FrameEvent) {
	g.ctx = layout.NewContext(g.ctx.Ops, e)

	if g.flag != nil {
		src := paint.NewImageOp(g.flag)
		src.Add(g.ctx.Ops)

		widget.Image{
			Src:   src,
			Scale: 1 / float32(g.ctx.Dp(unit.Dp(1))),
			Fit:   widget.Contain,
		}.Layout(g.ctx)
	}
	e.Frame(g.ctx.Ops)
}
