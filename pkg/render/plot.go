package render

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// DrawPlot renders p over the whole canvas at the canvas resolution.
// The plot lays out its own axes and margins; the frame's data bounds and
// margin do not apply to it.
func (c *Canvas) DrawPlot(p *plot.Plot) {
	f := c.frame
	img := vgimg.NewWith(
		vgimg.UseWH(vg.Length(f.Width)*vg.Inch, vg.Length(f.Height)*vg.Inch),
		vgimg.UseDPI(int(f.DPI)),
		vgimg.UseBackgroundColor(f.Background),
	)
	p.Draw(draw.New(img))
	c.DrawImage(img.Image())
}
