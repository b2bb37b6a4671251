package figures

import (
	"fmt"
	"image/color"
	"math"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/cinematch/cinevis/pkg/errors"
	"github.com/cinematch/cinevis/pkg/render"
)

const barWidth = vg.Length(45)

var gridColor = render.WithAlpha(render.MustParseColor("#808080"), 0.3)

// newChart returns a plot with the shared title and axis label styling.
func newChart(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.Title.TextStyle.Font.Weight = xfont.WeightBold
	p.Title.Padding = vg.Points(8)

	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	for _, l := range []*text.Style{&p.X.Label.TextStyle, &p.Y.Label.TextStyle} {
		l.Font.Size = vg.Points(11)
		l.Font.Weight = xfont.WeightBold
	}
	p.X.Tick.Label.Font.Size = vg.Points(9)
	p.Y.Tick.Label.Font.Size = vg.Points(9)
	return p
}

// valueLabels returns bold labels of the given size at xys, shifted by offset.
func valueLabels(xys plotter.XYs, labels []string, size vg.Length, offset vg.Point, xAlign text.XAlignment, yAlign text.YAlignment) (*plotter.Labels, error) {
	l, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return nil, err
	}
	l.Offset = offset
	for i := range l.TextStyle {
		l.TextStyle[i].Font.Size = size
		l.TextStyle[i].Font.Weight = xfont.WeightBold
		l.TextStyle[i].XAlign = xAlign
		l.TextStyle[i].YAlign = yAlign
	}
	return l, nil
}

func barOutline(c color.Color) draw.LineStyle {
	return draw.LineStyle{Color: render.Darken(c, 0.1), Width: vg.Points(0.5)}
}

func (a Accuracy) draw(c *render.Canvas) error {
	p := newChart(a.Title, a.XLabel, a.YLabel)

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	grid.Horizontal.Color = gridColor
	p.Add(grid)

	n := float64(len(a.Series))
	for i, s := range a.Series {
		col, err := render.ParseColor(s.Color)
		if err != nil {
			return err
		}
		bars, err := plotter.NewBarChart(plotter.Values(s.Values), barWidth)
		if err != nil {
			return errors.Wrap(errors.ErrCodeRenderFailed, err, "accuracy series %q", s.Label)
		}
		bars.Color = col
		bars.LineStyle = barOutline(col)
		bars.Offset = barWidth * vg.Length(float64(i)-(n-1)/2)
		p.Add(bars)
		p.Legend.Add(s.Label, bars)

		xys := make(plotter.XYs, len(s.Values))
		texts := make([]string, len(s.Values))
		for j, v := range s.Values {
			xys[j] = plotter.XY{X: float64(j), Y: v}
			texts[j] = fmt.Sprintf("%d%%", int(v))
		}
		labels, err := valueLabels(xys, texts, vg.Points(9), vg.Point{X: bars.Offset, Y: vg.Points(3)}, text.XCenter, text.YBottom)
		if err != nil {
			return errors.Wrap(errors.ErrCodeRenderFailed, err, "accuracy labels %q", s.Label)
		}
		p.Add(labels)
	}

	p.NominalX(a.Categories...)
	p.Legend.Top = true
	p.Legend.TextStyle.Font.Size = vg.Points(10)
	p.Y.Min, p.Y.Max = 0, a.YMax

	c.DrawPlot(p)
	return nil
}

func (s Samples) draw(c *render.Canvas) error {
	p := newChart(s.Title, s.XLabel, "")

	grid := plotter.NewGrid()
	grid.Horizontal.Color = nil
	grid.Vertical.Color = gridColor
	p.Add(grid)

	names := make([]string, len(s.Bars))
	xys := make(plotter.XYs, len(s.Bars))
	texts := make([]string, len(s.Bars))
	var maxCount float64
	for i, b := range s.Bars {
		col, err := render.ParseColor(b.Color)
		if err != nil {
			return err
		}
		bar, err := plotter.NewBarChart(plotter.Values{b.Count}, barWidth)
		if err != nil {
			return errors.Wrap(errors.ErrCodeRenderFailed, err, "samples bar %q", b.Label)
		}
		bar.Horizontal = true
		bar.XMin = float64(i)
		bar.Color = col
		bar.LineStyle = barOutline(col)
		p.Add(bar)

		names[i] = b.Label
		xys[i] = plotter.XY{X: b.Count, Y: float64(i)}
		texts[i] = fmt.Sprintf("%g", b.Count)
		maxCount = math.Max(maxCount, b.Count)
	}

	labels, err := valueLabels(xys, texts, vg.Points(10), vg.Point{X: vg.Points(4)}, text.XLeft, text.YCenter)
	if err != nil {
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "samples labels")
	}
	p.Add(labels)

	p.NominalY(names...)
	if maxCount == 0 {
		maxCount = 1
	}
	p.X.Min, p.X.Max = 0, maxCount*1.2

	c.DrawPlot(p)
	return nil
}
