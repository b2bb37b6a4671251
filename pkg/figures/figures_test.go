package figures

import (
	"testing"

	"github.com/cinematch/cinevis/pkg/errors"
	"github.com/cinematch/cinevis/pkg/render"
)

func TestAllOrderAndNames(t *testing.T) {
	figs, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}

	names := FileNames()
	if len(figs) != 6 || len(names) != 6 {
		t.Fatalf("got %d figures and %d names, want 6 each", len(figs), len(names))
	}
	for i, f := range figs {
		if f.FileName() != names[i] {
			t.Errorf("figure %d = %q, want %q", i, f.FileName(), names[i])
		}
		if err := errors.ValidateFileName(f.FileName()); err != nil {
			t.Errorf("figure %d: %v", i, err)
		}
		if f.Title() == "" {
			t.Errorf("figure %d has no title", i)
		}
		if fr := f.Frame(); fr.DPI != render.DefaultDPI {
			t.Errorf("figure %d dpi = %v, want %d", i, fr.DPI, render.DefaultDPI)
		}
	}
}

func TestFigureSizes(t *testing.T) {
	figs, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}

	want := map[string][2]int{
		FileComponents: {1200, 750},
		FileComparison: {1500, 600},
		FileAccuracy:   {1200, 750},
		FileSamples:    {1200, 750},
		FileTesting:    {1200, 1050},
		FileERD:        {2100, 1500},
	}
	for _, f := range figs {
		w, h := f.Frame().Pixels()
		if got := [2]int{w, h}; got != want[f.FileName()] {
			t.Errorf("%s = %dx%d, want %dx%d", f.FileName(), w, h, want[f.FileName()][0], want[f.FileName()][1])
		}
	}
}

func TestDrawEveryFigure(t *testing.T) {
	figs, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}

	for _, f := range figs {
		t.Run(f.FileName(), func(t *testing.T) {
			c, err := render.NewCanvas(f.Frame())
			if err != nil {
				t.Fatalf("NewCanvas() error = %v", err)
			}
			if err := f.Draw(c); err != nil {
				t.Fatalf("Draw() error = %v", err)
			}

			// Something other than background must have been drawn.
			img := c.Image()
			b := img.Bounds()
			for y := b.Min.Y; y < b.Max.Y; y += 5 {
				for x := b.Min.X; x < b.Max.X; x += 5 {
					if r, g, bl, _ := img.At(x, y).RGBA(); r != 0xffff || g != 0xffff || bl != 0xffff {
						return
					}
				}
			}
			t.Error("figure is blank")
		})
	}
}
