package flagen

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestExec_BatchGeneratesAllFlags(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "flags")
	p := &Processor{Width: 8, Height: 8, Count: 3}

	if err := p.run(&Ops{Dst: dir, PipeName: "-"}); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		name := filepath.Join(dir, fmt.Sprintf("flag_%03d.png", i))
		if _, err := os.Stat(name); err != nil {
			t.Errorf("missing batch output: %v", err)
		}
	}
}

func TestExec_BatchHonorsOutputFormat(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "flags")
	p := &Processor{Width: 8, Height: 8, Count: 2, Format: "bmp"}

	if err := p.run(&Ops{Dst: dir, PipeName: "-"}); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 2; i++ {
		name := filepath.Join(dir, fmt.Sprintf("flag_%03d.bmp", i))
		if _, err := os.Stat(name); err != nil {
			t.Errorf("missing batch output: %v", err)
		}
	}
}

func TestExec_BatchRejectsUnknownFormat(t *testing.T) {
	p := &Processor{Width: 8, Height: 8, Count: 2, Format: "svg"}

	if err := p.run(&Ops{Dst: t.TempDir(), PipeName: "-"}); err == nil {
		t.Fatal("expected the svg batch format to be rejected")
	}
}

func TestExec_RejectsUnknownDestination(t *testing.T) {
	p := &Processor{Width: 8, Height: 8, Count: 1}

	err := p.run(&Ops{Dst: filepath.Join(t.TempDir(), "flag.svg"), PipeName: "-"})
	if err == nil {
		t.Fatal("expected the svg destination to be rejected")
	}
}

func TestExec_ValidExtensions(t *testing.T) {
	for _, ext := range []string{".png", ".jpg", ".jpeg", ".bmp"} {
		if !isValidExtension(ext, validExtensions) {
			t.Errorf("%s expected to be supported", ext)
		}
	}
	if isValidExtension(".svg", validExtensions) {
		t.Error(".svg expected to be unsupported")
	}
}
