package flagen

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/esimov/flagen/utils"
	"golang.org/x/term"
)

// Supported output formats.
var validExtensions = []string{".png", ".jpg", ".jpeg", ".bmp"}

// Ops wraps the destination related options of a generation run.
type Ops struct {
	Dst      string
	PipeName string
}

// Processor holds the generation options shared by the CLI and the GUI.
type Processor struct {
	Width   int
	Height  int
	Count   int
	Upscale int
	Seed    int64
	Format  string
	Preview bool
	Spinner *utils.Spinner

	gen *Generator
}

// format returns the batch output extension, defaulting to png.
func (p *Processor) format() string {
	if p.Format == "" {
		return ".png"
	}
	return "." + strings.TrimPrefix(p.Format, ".")
}

// generator lazily seeds the flag generator backing this processor.
func (p *Processor) generator() *Generator {
	if p.gen == nil {
		p.gen = NewGenerator(p.Seed)
	}
	return p.gen
}

// Process renders a single random flag at the configured dimensions and
// encodes it to the output.
func (p *Processor) Process(w io.Writer) error {
	img := p.generator().RandomFlag(p.Width, p.Height)

	return p.encodeImg(w, img)
}

// Execute runs the generation process: it renders Count random flags and
// encodes each one into the destination. The destination is a single file
// (or the stdout pipe) for one flag and a directory for a batch run.
func (p *Processor) Execute(op *Ops) error {
	now := time.Now()

	defaultMsg := fmt.Sprintf("%s %s",
		utils.DecorateText("⚑ FLAGEN", utils.StatusMessage),
		utils.DecorateText("⇢ hoisting new flags...", utils.DefaultMessage),
	)
	p.Spinner = utils.NewSpinner(defaultMsg, time.Millisecond*80, true)

	// Capture CTRL-C and restore back the cursor visibility.
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signalChan
		p.Spinner.RestoreCursor()
		os.Exit(1)
	}()

	p.Spinner.Start()
	err := p.run(op)

	if err != nil {
		p.Spinner.StopMsg = fmt.Sprintf("%s %s %s",
			utils.DecorateText("⚑ FLAGEN", utils.StatusMessage),
			utils.DecorateText("⇢ generating the flags failed...", utils.DefaultMessage),
			utils.DecorateText("✘\n", utils.ErrorMessage),
		)
		p.Spinner.Stop()

		return err
	}
	p.Spinner.StopMsg = fmt.Sprintf("%s %s",
		utils.DecorateText("⚑ FLAGEN", utils.StatusMessage),
		utils.DecorateText("⇢ the flags are hoisted... ✔\n", utils.DefaultMessage),
	)
	p.Spinner.Stop()

	fmt.Fprintf(os.Stderr, "\nExecution time: %s\n",
		utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))

	return nil
}

// run dispatches the generation between the single file, the stdout pipe
// and the batch directory destinations.
func (p *Processor) run(op *Ops) error {
	if p.Count > 1 {
		ext := p.format()
		if !isValidExtension(ext, validExtensions) {
			return fmt.Errorf("%v file type not supported", ext)
		}

		// Read or create the destination directory.
		if _, err := os.Stat(op.Dst); err != nil {
			if err = os.Mkdir(op.Dst, 0755); err != nil {
				return fmt.Errorf("unable to create the destination directory: %v", err)
			}
		}

		for i := 0; i < p.Count; i++ {
			dst := filepath.Join(op.Dst, fmt.Sprintf("flag_%03d%s", i, ext))
			if err := p.process(dst); err != nil {
				return err
			}
		}
		return nil
	}

	// Check if the destination is a pipe name or a regular file.
	if op.Dst == op.PipeName {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("`-` should be used with a pipe for stdout")
		}
		return p.Process(os.Stdout)
	}

	if ext := filepath.Ext(op.Dst); !isValidExtension(ext, validExtensions) {
		return fmt.Errorf("%v file type not supported", ext)
	}
	return p.process(op.Dst)
}

// process renders one random flag into the named destination file.
func (p *Processor) process(dst string) error {
	img := p.generator().RandomFlag(p.Width, p.Height)

	return p.save(dst, img)
}

// save encodes an already rendered flag into the named destination file.
func (p *Processor) save(dst string, img *Flag) error {
	f, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("unable to create the destination file: %v", err)
	}
	defer f.Close()

	return p.encodeImg(f, img)
}

// isValidExtension checks for the supported extensions.
func isValidExtension(ext string, extensions []string) bool {
	for _, ex := range extensions {
		if ex == ext {
			return true
		}
	}
	return false
}
