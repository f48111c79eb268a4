package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"gioui.org/app"
	"github.com/esimov/flagen"
	"github.com/esimov/flagen/utils"
)

const helpBanner = `
┌─┐┬  ┌─┐┌─┐┌─┐┌┐┌
├┤ │  ├─┤│ ┬├┤ │││
└  ┴─┘┴ ┴└─┘└─┘┘└┘

Random flag generator.
    Version: %s

`

// pipeName is the file name that indicates stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	// Flags
	width   = flag.Int("width", 640, "Generated flag width")
	height  = flag.Int("height", 360, "Generated flag height")
	out     = flag.String("out", "flag.png", "Destination (a directory when -count > 1)")
	count   = flag.Int("count", 1, "Number of flags to generate")
	format  = flag.String("format", "png", "Batch output format (png, jpg, bmp)")
	seed    = flag.Int64("seed", -1, "Random seed, -1 picks a time based seed")
	upscale = flag.Int("upscale", 1, "Integer upscale factor applied before encoding")
	preview = flag.Bool("preview", false, "Show the generated flags in a preview window")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, helpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *width <= 0 || *height <= 0 {
		log.Fatal(fmt.Sprintf("%s%s",
			utils.DecorateText("Please provide a positive width and height for the generated flags!", utils.ErrorMessage),
			utils.DefaultColor,
		))
	}

	s := *seed
	if s < 0 {
		s = time.Now().UnixNano()
	}

	proc := &flagen.Processor{
		Width:   *width,
		Height:  *height,
		Count:   *count,
		Upscale: *upscale,
		Seed:    s,
		Format:  *format,
		Preview: *preview,
	}

	if proc.Preview {
		// The destination keeps receiving a copy of every flag shown in
		// the window, unless the output was redirected to the stdout pipe.
		dst := *out
		if dst == pipeName {
			dst = ""
		}
		gui := flagen.NewGUI(proc, dst)

		go func() {
			if err := gui.Run(); err != nil {
				log.Fatalf(
					utils.DecorateText("Error running the preview window: %v\n", utils.ErrorMessage),
					utils.DecorateText(err.Error(), utils.DefaultMessage),
				)
			}
			os.Exit(0)
		}()
		// Gio requires ownership of the main OS thread.
		app.Main()
	}

	op := &flagen.Ops{
		Dst:      *out,
		PipeName: pipeName,
	}
	if err := proc.Execute(op); err != nil {
		log.Fatalf(
			utils.DecorateText("Error generating the flags: %v\n", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}
}
