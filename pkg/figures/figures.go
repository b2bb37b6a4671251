package figures

import (
	"github.com/cinematch/cinevis/pkg/render"
)

// Output file names, in generation order.
const (
	FileComponents = "database_components.png"
	FileComparison = "algorithm_comparison.png"
	FileAccuracy   = "recommendation_accuracy.png"
	FileSamples    = "sample_data_stats.png"
	FileTesting    = "testing_results.png"
	FileERD        = "er_diagram.png"
)

var (
	unitBounds = render.Rect{Max: render.Pt(1, 1)}
	erdBounds  = render.Rect{Max: render.Pt(14, 10)}
	erdTitleAt = render.Pt(7, 9.7)

	captionColor = render.MustParseColor("#666666")
	passColor    = render.MustParseColor("green")
	passBorder   = render.MustParseColor("darkgreen")
	summaryFill  = render.MustParseColor("lightgreen")
	cellEdge     = render.MustParseColor("black")
	checkColor   = render.MustParseColor("white")
)

// Figure is one image: where it goes, how big it is and how to draw it.
type Figure struct {
	file   string
	title  string
	frame  render.Frame
	drawFn func(*render.Canvas) error
}

// FileName returns the base name of the output file.
func (f Figure) FileName() string { return f.file }

// Title returns the human-readable name used in progress output.
func (f Figure) Title() string { return f.title }

// Frame returns the raster the figure is drawn on.
func (f Figure) Frame() render.Frame { return f.frame }

// Draw draws the figure on c.
func (f Figure) Draw(c *render.Canvas) error { return f.drawFn(c) }

// All returns the six figures built from d, in generation order.
func All(d *Data) []Figure {
	componentsFrame := render.NewFrame(8, 5, render.Rect{Min: render.Pt(0, -0.25), Max: render.Pt(1, 1)})

	return []Figure{
		{FileComponents, "Database Components chart", componentsFrame, d.Components.draw},
		{FileComparison, "Algorithm Comparison chart", render.NewFrame(10, 4, unitBounds), d.Comparison.draw},
		{FileAccuracy, "Recommendation Accuracy chart", render.NewFrame(8, 5, unitBounds), d.Accuracy.draw},
		{FileSamples, "Sample Data Statistics chart", render.NewFrame(8, 5, unitBounds), d.Samples.draw},
		{FileTesting, "Testing Results chart", render.NewFrame(8, 7, unitBounds), d.Testing.draw},
		{FileERD, "ER Diagram", render.NewFrame(14, 10, erdBounds), d.ERD.draw},
	}
}

// Default loads the embedded data and returns its figures.
func Default() ([]Figure, error) {
	d, err := Load()
	if err != nil {
		return nil, err
	}
	return All(d), nil
}

// FileNames returns the output file names of the figures, in order.
func FileNames() []string {
	return []string{FileComponents, FileComparison, FileAccuracy, FileSamples, FileTesting, FileERD}
}
