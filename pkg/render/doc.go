// Package render provides the raster canvas every cinevis figure is drawn on.
//
// # Overview
//
// A [Canvas] wraps a fixed-size RGBA raster with a data coordinate system:
// the [Frame] names the physical size in inches, the DPI and the data
// rectangle shown, and all drawing calls take positions in those data
// units with y growing upwards. Line widths and font sizes are given in
// points and scaled by the DPI, so a figure drawn at 150 DPI matches its
// printed size.
//
// The canvas is an explicit value. Callers create one per figure, pass it
// to every drawing operation and export it once:
//
//	c, err := render.NewCanvas(render.NewFrame(14, 10, render.Rect{Max: render.Pt(14, 10)}))
//	c.RoundedRect(render.RectAround(render.Pt(7, 5), 2.2, 1.6), 0.08, fill, render.Stroke{Color: border, Width: 2.5})
//	err = c.SavePNG("docs/images/er_diagram.png")
//
// Shapes and text are drawn with [github.com/fogleman/gg]; faces come from
// the fonts package. Charts built with gonum/plot are composited onto the
// canvas with [Canvas.DrawPlot].
//
// # Colours
//
// [ParseColor] accepts CSS hex and named colours, so figure data can say
// "#4472C4" or "lightgreen" alike.
package render
