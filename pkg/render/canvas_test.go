package render

import (
	"bytes"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/plot"

	"github.com/cinematch/cinevis/pkg/errors"
)

func unitFrame() Frame {
	f := NewFrame(2, 1, Rect{Max: Pt(2, 1)})
	f.DPI = 100
	f.Margin = 0
	return f
}

func TestFramePixels(t *testing.T) {
	f := NewFrame(14, 10, Rect{Max: Pt(14, 10)})
	w, h := f.Pixels()
	if w != 2100 || h != 1500 {
		t.Errorf("Pixels() = %dx%d, want 2100x1500", w, h)
	}
}

func TestFrameValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Frame)
		wantErr bool
	}{
		{"valid", func(*Frame) {}, false},
		{"zero width", func(f *Frame) { f.Width = 0 }, true},
		{"negative height", func(f *Frame) { f.Height = -1 }, true},
		{"zero dpi", func(f *Frame) { f.DPI = 0 }, true},
		{"empty bounds", func(f *Frame) { f.Bounds = Rect{} }, true},
		{"inverted bounds", func(f *Frame) { f.Bounds = Rect{Min: Pt(1, 1), Max: Pt(0, 0)} }, true},
		{"margin too wide", func(f *Frame) { f.Margin = 3 }, true},
		{"NaN width", func(f *Frame) { f.Width = math.NaN() }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFrame(8, 5, Rect{Max: Pt(1, 1)})
			tt.mutate(&f)
			err := f.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidGeometry) {
				t.Errorf("Validate() code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidGeometry)
			}
		})
	}
}

func TestCanvasPixelMapping(t *testing.T) {
	c, err := NewCanvas(unitFrame())
	if err != nil {
		t.Fatalf("NewCanvas() error = %v", err)
	}

	tests := []struct {
		p      Point
		wx, wy float64
	}{
		{Pt(0, 0), 0, 100},
		{Pt(2, 1), 200, 0},
		{Pt(1, 0.5), 100, 50},
	}
	for _, tt := range tests {
		x, y := c.Pixel(tt.p)
		if x != tt.wx || y != tt.wy {
			t.Errorf("Pixel(%v) = (%v, %v), want (%v, %v)", tt.p, x, y, tt.wx, tt.wy)
		}
	}

	if got := c.Points(72); got != 100 {
		t.Errorf("Points(72) = %v, want 100", got)
	}
}

func TestCanvasStartsBlank(t *testing.T) {
	f := unitFrame()
	f.Background = color.NRGBA{R: 10, G: 20, B: 30, A: 255}
	c, err := NewCanvas(f)
	if err != nil {
		t.Fatalf("NewCanvas() error = %v", err)
	}

	img := c.Image()
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 100 {
		t.Fatalf("image size = %v, want 200x100", b)
	}
	r, g, b, _ := img.At(150, 20).RGBA()
	if r>>8 != 10 || g>>8 != 20 || b>>8 != 30 {
		t.Errorf("pixel = (%d, %d, %d), want background (10, 20, 30)", r>>8, g>>8, b>>8)
	}
}

func TestFillRect(t *testing.T) {
	c, err := NewCanvas(unitFrame())
	if err != nil {
		t.Fatalf("NewCanvas() error = %v", err)
	}

	red := color.NRGBA{R: 255, A: 255}
	c.FillRect(Rect{Min: Pt(0, 0), Max: Pt(1, 1)}, red, Stroke{})

	img := c.Image()
	if r, g, _, _ := img.At(50, 50).RGBA(); r>>8 != 255 || g>>8 != 0 {
		t.Errorf("inside pixel = %v, want red", img.At(50, 50))
	}
	if r, g, _, _ := img.At(150, 50).RGBA(); r>>8 != 255 || g>>8 != 255 {
		t.Errorf("outside pixel = %v, want white", img.At(150, 50))
	}
}

func TestMeasureTextMultiline(t *testing.T) {
	c, err := NewCanvas(unitFrame())
	if err != nil {
		t.Fatalf("NewCanvas() error = %v", err)
	}

	st := TextStyle{Size: 10}
	w1, h1, err := c.MeasureText("Hybrid", st)
	if err != nil {
		t.Fatalf("MeasureText() error = %v", err)
	}
	w2, h2, err := c.MeasureText("Hybrid\nApproach", st)
	if err != nil {
		t.Fatalf("MeasureText() error = %v", err)
	}
	if w1 <= 0 || h1 <= 0 {
		t.Fatalf("single line size = %vx%v, want positive", w1, h1)
	}
	if w2 <= w1 {
		t.Errorf("two-line width = %v, want wider than %v", w2, w1)
	}
	if h2 <= h1 {
		t.Errorf("two-line height = %v, want taller than %v", h2, h1)
	}
}

func TestTextRejectsBadSize(t *testing.T) {
	c, err := NewCanvas(unitFrame())
	if err != nil {
		t.Fatalf("NewCanvas() error = %v", err)
	}
	if err := c.Text("x", Pt(1, 0.5), TextStyle{}); err == nil {
		t.Error("Text() with zero size error = nil, want error")
	}
}

func TestSavePNGOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	if err := os.WriteFile(path, []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := NewCanvas(unitFrame())
	if err != nil {
		t.Fatalf("NewCanvas() error = %v", err)
	}
	if err := c.Badge("1", Pt(1, 0.5), TextStyle{Size: 12, Bold: true}, BadgeStyle{Fill: color.White, Stroke: Stroke{Color: color.Black, Width: 2}, Pad: 0.4}); err != nil {
		t.Fatalf("Badge() error = %v", err)
	}
	if err := c.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode written file: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 100 {
		t.Errorf("decoded size = %v, want 200x100", b)
	}
}

func TestSavePNGMissingDir(t *testing.T) {
	c, err := NewCanvas(unitFrame())
	if err != nil {
		t.Fatalf("NewCanvas() error = %v", err)
	}
	err = c.SavePNG(filepath.Join(t.TempDir(), "missing", "out.png"))
	if !errors.Is(err, errors.ErrCodeIO) {
		t.Errorf("SavePNG() error = %v, want %s", err, errors.ErrCodeIO)
	}
}

func TestDrawPlotCoversCanvas(t *testing.T) {
	c, err := NewCanvas(unitFrame())
	if err != nil {
		t.Fatalf("NewCanvas() error = %v", err)
	}
	p := plot.New()
	p.HideAxes()
	c.DrawPlot(p)

	if b := c.Image().Bounds(); b.Dx() != 200 || b.Dy() != 100 {
		t.Errorf("image size after plot = %v, want 200x100", b)
	}
}
