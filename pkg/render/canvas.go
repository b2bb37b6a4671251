package render

import (
	"image"
	"image/color"
	"io"
	"math"
	"os"
	"strings"

	"github.com/fogleman/gg"

	"github.com/cinematch/cinevis/pkg/errors"
	"github.com/cinematch/cinevis/pkg/fonts"
)

const (
	// DefaultDPI is the raster resolution of every exported figure.
	DefaultDPI = 150

	// DefaultMargin is the blank border, in inches, around the data area.
	DefaultMargin = 0.25

	pointsPerInch = 72
)

// Frame describes a figure's raster: its physical size, resolution and the
// data rectangle mapped onto it. Canvas units grow rightwards and upwards.
type Frame struct {
	Width, Height float64 // inches
	DPI           float64
	Bounds        Rect    // data rectangle shown on the canvas
	Margin        float64 // inches of blank border around Bounds
	Background    color.Color
}

// NewFrame returns a frame of the given size in inches showing bounds,
// at DefaultDPI on a white background.
func NewFrame(width, height float64, bounds Rect) Frame {
	return Frame{
		Width:      width,
		Height:     height,
		DPI:        DefaultDPI,
		Bounds:     bounds,
		Margin:     DefaultMargin,
		Background: color.White,
	}
}

// Pixels returns the raster size of the frame.
func (f Frame) Pixels() (int, int) {
	return int(math.Round(f.Width * f.DPI)), int(math.Round(f.Height * f.DPI))
}

// Validate checks that the frame describes a drawable raster.
func (f Frame) Validate() error {
	if !(f.Width > 0 && f.Height > 0) {
		return errors.New(errors.ErrCodeInvalidGeometry, "frame size %.2fx%.2fin must be positive", f.Width, f.Height)
	}
	if !(f.DPI > 0) {
		return errors.New(errors.ErrCodeInvalidGeometry, "frame dpi %.2f must be positive", f.DPI)
	}
	if f.Bounds.Empty() {
		return errors.New(errors.ErrCodeInvalidGeometry, "frame bounds %v have no area", f.Bounds)
	}
	if f.Margin < 0 || 2*f.Margin >= math.Min(f.Width, f.Height) {
		return errors.New(errors.ErrCodeInvalidGeometry, "frame margin %.2fin does not fit a %.2fx%.2fin frame", f.Margin, f.Width, f.Height)
	}
	return nil
}

// Stroke describes an outline. A nil Color draws no outline.
type Stroke struct {
	Color color.Color
	Width float64 // points
}

// HAlign is the horizontal alignment of text relative to its anchor.
type HAlign int

const (
	AlignLeft HAlign = iota
	AlignCenter
	AlignRight
)

// VAlign is the vertical alignment of text relative to its anchor.
type VAlign int

const (
	AlignBaseline VAlign = iota
	AlignMiddle
	AlignTop
)

// TextStyle describes how a string is drawn.
type TextStyle struct {
	Size   float64 // points
	Bold   bool
	Italic bool
	Color  color.Color
	HAlign HAlign
	VAlign VAlign
}

// BadgeStyle describes the rounded box drawn behind badge text.
type BadgeStyle struct {
	Fill   color.Color
	Stroke Stroke
	Pad    float64 // fraction of the font size
}

// lineSpacing is the distance between baselines of multi-line text,
// as a multiple of the font height.
const lineSpacing = 1.2

// Canvas is the drawing surface of one figure. Each figure gets its own
// canvas; nothing is shared between figures.
type Canvas struct {
	dc     *gg.Context
	frame  Frame
	sx, sy float64 // pixels per canvas unit
	left   float64 // pixel x of Bounds.Min.X
	top    float64 // pixel y of Bounds.Max.Y
}

// NewCanvas returns a blank canvas for f, filled with its background.
func NewCanvas(f Frame) (*Canvas, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	if f.Background == nil {
		f.Background = color.White
	}

	w, h := f.Pixels()
	dc := gg.NewContext(w, h)
	dc.SetColor(f.Background)
	dc.Clear()

	m := f.Margin * f.DPI
	return &Canvas{
		dc:    dc,
		frame: f,
		sx:    (float64(w) - 2*m) / f.Bounds.Dx(),
		sy:    (float64(h) - 2*m) / f.Bounds.Dy(),
		left:  m,
		top:   m,
	}, nil
}

// Frame returns the frame the canvas was created with.
func (c *Canvas) Frame() Frame {
	return c.frame
}

// Pixel maps a point in canvas units to raster coordinates.
func (c *Canvas) Pixel(p Point) (x, y float64) {
	b := c.frame.Bounds
	return c.left + (p.X-b.Min.X)*c.sx, c.top + (b.Max.Y-p.Y)*c.sy
}

// PixelRect maps r to raster coordinates as x, y of its top-left corner
// plus width and height.
func (c *Canvas) PixelRect(r Rect) (x, y, w, h float64) {
	x, y = c.Pixel(Point{X: r.Min.X, Y: r.Max.Y})
	return x, y, r.Dx() * c.sx, r.Dy() * c.sy
}

// Points converts a length in points to pixels.
func (c *Canvas) Points(pt float64) float64 {
	return pt * c.frame.DPI / pointsPerInch
}

// Units converts a length in canvas units to pixels using the smaller
// axis scale, so round shapes stay round on non-square frames.
func (c *Canvas) Units(u float64) float64 {
	return u * math.Min(c.sx, c.sy)
}

// FillRect draws r filled with fill and outlined with s.
func (c *Canvas) FillRect(r Rect, fill color.Color, s Stroke) {
	x, y, w, h := c.PixelRect(r)
	c.dc.DrawRectangle(x, y, w, h)
	c.paint(fill, s)
}

// RoundedRect draws r with corners of the given radius in canvas units.
func (c *Canvas) RoundedRect(r Rect, radius float64, fill color.Color, s Stroke) {
	x, y, w, h := c.PixelRect(r)
	c.dc.DrawRoundedRectangle(x, y, w, h, c.Units(radius))
	c.paint(fill, s)
}

// Line draws a straight segment from a to b.
func (c *Canvas) Line(a, b Point, s Stroke) {
	c.Polyline([]Point{a, b}, s)
}

// Polyline draws connected segments through pts.
func (c *Canvas) Polyline(pts []Point, s Stroke) {
	if len(pts) < 2 || s.Color == nil {
		return
	}
	for i, p := range pts {
		x, y := c.Pixel(p)
		if i == 0 {
			c.dc.MoveTo(x, y)
		} else {
			c.dc.LineTo(x, y)
		}
	}
	c.paint(nil, s)
}

// Text draws s anchored at p. Embedded newlines start new lines, each
// aligned on its own according to st.HAlign.
func (c *Canvas) Text(s string, p Point, st TextStyle) error {
	x, y := c.Pixel(p)
	return c.textPx(s, x, y, st)
}

// MeasureText returns the pixel width and height of s drawn with st.
func (c *Canvas) MeasureText(s string, st TextStyle) (w, h float64, err error) {
	if err := c.useFont(st); err != nil {
		return 0, 0, err
	}
	lines := strings.Split(s, "\n")
	for _, line := range lines {
		lw, _ := c.dc.MeasureString(line)
		w = math.Max(w, lw)
	}
	return w, c.blockHeight(len(lines)), nil
}

// Badge draws s centered on p inside a rounded box.
func (c *Canvas) Badge(s string, p Point, st TextStyle, b BadgeStyle) error {
	w, h, err := c.MeasureText(s, st)
	if err != nil {
		return err
	}
	pad := c.Points(st.Size) * b.Pad
	x, y := c.Pixel(p)
	c.dc.DrawRoundedRectangle(x-w/2-pad, y-h/2-pad, w+2*pad, h+2*pad, pad)
	c.paint(b.Fill, b.Stroke)

	st.HAlign, st.VAlign = AlignCenter, AlignMiddle
	return c.textPx(s, x, y, st)
}

// DrawImage composites img over the canvas with its origin at the
// top-left corner of the raster.
func (c *Canvas) DrawImage(img image.Image) {
	c.dc.DrawImage(img, 0, 0)
}

// Image returns the canvas raster.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// EncodePNG writes the canvas as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := c.dc.EncodePNG(w); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "encode png")
	}
	return nil
}

// SavePNG writes the canvas as PNG to path, replacing any existing file.
func (c *Canvas) SavePNG(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap(errors.ErrCodeIO, cerr, "close %s", path)
		}
	}()
	return c.EncodePNG(f)
}

// paint fills and then strokes the current path, and clears it.
func (c *Canvas) paint(fill color.Color, s Stroke) {
	if fill != nil {
		c.dc.SetColor(fill)
		c.dc.FillPreserve()
	}
	if s.Color != nil && s.Width > 0 {
		c.dc.SetColor(s.Color)
		c.dc.SetLineWidth(c.Points(s.Width))
		c.dc.StrokePreserve()
	}
	c.dc.ClearPath()
}

func (c *Canvas) useFont(st TextStyle) error {
	face, err := fonts.Face(fonts.Style{Bold: st.Bold, Italic: st.Italic}, st.Size, c.frame.DPI)
	if err != nil {
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "load font")
	}
	c.dc.SetFontFace(face)
	return nil
}

func (c *Canvas) blockHeight(lines int) float64 {
	fh := c.dc.FontHeight()
	return fh + float64(lines-1)*fh*lineSpacing
}

func (c *Canvas) textPx(s string, x, y float64, st TextStyle) error {
	if err := c.useFont(st); err != nil {
		return err
	}
	if st.Color == nil {
		st.Color = color.Black
	}
	c.dc.SetColor(st.Color)

	lines := strings.Split(s, "\n")
	step := c.dc.FontHeight() * lineSpacing

	ax := 0.0
	switch st.HAlign {
	case AlignCenter:
		ax = 0.5
	case AlignRight:
		ax = 1
	}

	// Lines hang from top; ay=1 puts the anchor at a line's top edge.
	top := y
	switch st.VAlign {
	case AlignMiddle:
		top = y - c.blockHeight(len(lines))/2
	case AlignBaseline:
		top = y - c.dc.FontHeight() - float64(len(lines)-1)*step
	}
	for i, line := range lines {
		c.dc.DrawStringAnchored(line, x, top+float64(i)*step, ax, 1)
	}
	return nil
}
