package figures

import (
	_ "embed"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/cinematch/cinevis/pkg/erd"
	"github.com/cinematch/cinevis/pkg/errors"
	"github.com/cinematch/cinevis/pkg/render"
)

//go:embed cinematch.toml
var cinematchTOML string

// Data is the literal content of all figures.
type Data struct {
	Components Components `toml:"components"`
	Comparison Comparison `toml:"comparison"`
	Accuracy   Accuracy   `toml:"accuracy"`
	Samples    Samples    `toml:"samples"`
	Testing    Testing    `toml:"testing"`
	ERD        ERD        `toml:"erd"`
}

// Components is the database component overview panel.
type Components struct {
	Title          string   `toml:"title"`
	Items          []Count  `toml:"items"`
	BreakdownTitle string   `toml:"breakdown_title"`
	Breakdown      []string `toml:"breakdown"`
}

// Count is one labeled figure of the overview. Values are text so that
// approximate counts like "20+" can be shown.
type Count struct {
	Name  string `toml:"name"`
	Value string `toml:"value"`
}

// Comparison is the styled algorithm table. Rows[0] is the header.
type Comparison struct {
	Title        string     `toml:"title"`
	ColumnWidths []float64  `toml:"column_widths"`
	HeaderFill   string     `toml:"header_fill"`
	HeaderText   string     `toml:"header_text"`
	RowFills     []string   `toml:"row_fills"`
	Rows         [][]string `toml:"rows"`
}

// Accuracy is the grouped bar chart of algorithm performance.
type Accuracy struct {
	Title      string   `toml:"title"`
	XLabel     string   `toml:"x_label"`
	YLabel     string   `toml:"y_label"`
	Categories []string `toml:"categories"`
	YMax       float64  `toml:"y_max"`
	Series     []Series `toml:"series"`
}

// Series is one bar group member, one value per category.
type Series struct {
	Label  string    `toml:"label"`
	Color  string    `toml:"color"`
	Values []float64 `toml:"values"`
}

// Samples is the horizontal bar chart of sample data sizes.
type Samples struct {
	Title  string `toml:"title"`
	XLabel string `toml:"x_label"`
	Bars   []Bar  `toml:"bars"`
}

// Bar is one category of the sample data chart.
type Bar struct {
	Label string  `toml:"label"`
	Count float64 `toml:"count"`
	Color string  `toml:"color"`
}

// Testing is the checklist of passing test categories.
type Testing struct {
	Title      string   `toml:"title"`
	Subtitle   string   `toml:"subtitle"`
	Status     string   `toml:"status"`
	Summary    string   `toml:"summary"`
	Categories []string `toml:"categories"`
}

// ERD is the entity-relationship diagram.
type ERD struct {
	Title         string             `toml:"title"`
	Entities      []EntitySpec       `toml:"entities"`
	Relationships []RelationshipSpec `toml:"relationships"`
	Descriptions  []Caption          `toml:"descriptions"`
	Legend        Legend             `toml:"legend"`
}

// EntitySpec places one entity box.
type EntitySpec struct {
	Name   string  `toml:"name"`
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// RelationshipSpec places one edge. Between names the two entities the
// edge joins; From and To are its hand-tuned endpoints.
type RelationshipSpec struct {
	Between []string  `toml:"between"`
	From    []float64 `toml:"from"`
	To      []float64 `toml:"to"`
	Labels  []string  `toml:"labels"`
	Color   string    `toml:"color"`
}

// Caption is italic text under an entity.
type Caption struct {
	Text string  `toml:"text"`
	X    float64 `toml:"x"`
	Y    float64 `toml:"y"`
}

// Legend is a block of text lines hanging from X, Y.
type Legend struct {
	X     float64      `toml:"x"`
	Y     float64      `toml:"y"`
	Lines []LegendLine `toml:"lines"`
}

// LegendLine is one legend line, Drop units below the legend origin.
type LegendLine struct {
	Text   string  `toml:"text"`
	Drop   float64 `toml:"drop"`
	Size   float64 `toml:"size"`
	Bold   bool    `toml:"bold"`
	Italic bool    `toml:"italic"`
}

// Load decodes and validates the embedded CineMatch figure data.
func Load() (*Data, error) {
	return Parse(cinematchTOML)
}

// Parse decodes and validates figure data from a TOML document. Unknown
// keys are rejected so that a typo cannot silently drop a value.
func Parse(doc string) (*Data, error) {
	var d Data
	md, err := toml.Decode(doc, &d)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode figure data")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown keys in figure data: %s", strings.Join(keys, ", "))
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Validate checks the data of every figure.
func (d *Data) Validate() error {
	for _, v := range []interface{ validate() error }{
		d.Components, d.Comparison, d.Accuracy, d.Samples, d.Testing, d.ERD,
	} {
		if err := v.validate(); err != nil {
			return err
		}
	}
	return nil
}

func invalid(format string, args ...any) error {
	return errors.New(errors.ErrCodeInvalidConfig, format, args...)
}

func checkColors(where string, colors ...string) error {
	for _, c := range colors {
		if _, err := render.ParseColor(c); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", where)
		}
	}
	return nil
}

func (c Components) validate() error {
	if len(c.Items) == 0 {
		return invalid("components: no items")
	}
	for i, it := range c.Items {
		if it.Name == "" || it.Value == "" {
			return invalid("components: item %d needs a name and a value", i)
		}
	}
	return nil
}

func (c Comparison) validate() error {
	if len(c.Rows) < 2 {
		return invalid("comparison: need a header row and at least one body row")
	}
	if len(c.RowFills) == 0 {
		return invalid("comparison: no row fills")
	}
	var total float64
	for _, w := range c.ColumnWidths {
		if !(w > 0) {
			return invalid("comparison: column width %v must be positive", w)
		}
		total += w
	}
	if total > 1+1e-9 {
		return invalid("comparison: column widths sum to %v, more than the figure width", total)
	}
	for i, row := range c.Rows {
		if len(row) != len(c.ColumnWidths) {
			return invalid("comparison: row %d has %d cells, want %d", i, len(row), len(c.ColumnWidths))
		}
	}
	return checkColors("comparison", append([]string{c.HeaderFill, c.HeaderText}, c.RowFills...)...)
}

func (a Accuracy) validate() error {
	if len(a.Categories) == 0 || len(a.Series) == 0 {
		return invalid("accuracy: need categories and series")
	}
	if !(a.YMax > 0) {
		return invalid("accuracy: y_max %v must be positive", a.YMax)
	}
	for _, s := range a.Series {
		if len(s.Values) != len(a.Categories) {
			return invalid("accuracy: series %q has %d values for %d categories", s.Label, len(s.Values), len(a.Categories))
		}
		for _, v := range s.Values {
			if v < 0 || v > a.YMax {
				return invalid("accuracy: series %q value %v outside 0..%v", s.Label, v, a.YMax)
			}
		}
		if err := checkColors("accuracy series "+s.Label, s.Color); err != nil {
			return err
		}
	}
	return nil
}

func (s Samples) validate() error {
	if len(s.Bars) == 0 {
		return invalid("samples: no bars")
	}
	for _, b := range s.Bars {
		if b.Count < 0 {
			return invalid("samples: bar %q count %v is negative", b.Label, b.Count)
		}
		if err := checkColors("samples bar "+b.Label, b.Color); err != nil {
			return err
		}
	}
	return nil
}

func (t Testing) validate() error {
	if len(t.Categories) == 0 {
		return invalid("testing: no categories")
	}
	if len(t.Categories) > maxChecklistRows {
		return invalid("testing: %d categories do not fit, at most %d", len(t.Categories), maxChecklistRows)
	}
	return nil
}

func (e ERD) validate() error {
	d, err := e.Diagram()
	if err != nil {
		return err
	}
	if err := d.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "erd")
	}
	for i, r := range e.Relationships {
		if len(r.Between) != 2 {
			return invalid("erd: relationship %d must name two entities", i)
		}
		for _, name := range r.Between {
			if _, ok := d.Entity(name); !ok {
				return invalid("erd: relationship %d names unknown entity %q", i, name)
			}
		}
		for _, p := range []render.Point{d.Relationships[i].From, d.Relationships[i].To} {
			if p.X < erdBounds.Min.X || p.X > erdBounds.Max.X || p.Y < erdBounds.Min.Y || p.Y > erdBounds.Max.Y {
				return invalid("erd: relationship %d endpoint %v is off the canvas", i, p)
			}
		}
	}
	return nil
}

// Diagram converts the diagram data into a drawable diagram: entities,
// relationships, then the title, legend and captions as annotations.
func (e ERD) Diagram() (erd.Diagram, error) {
	var d erd.Diagram
	for _, s := range e.Entities {
		d.Entities = append(d.Entities, erd.Entity{
			Name:   s.Name,
			Center: render.Pt(s.X, s.Y),
			Width:  s.Width,
			Height: s.Height,
		})
	}

	for i, s := range e.Relationships {
		if len(s.From) != 2 || len(s.To) != 2 {
			return erd.Diagram{}, invalid("erd: relationship %d endpoints need two coordinates each", i)
		}
		if len(s.Labels) != 2 {
			return erd.Diagram{}, invalid("erd: relationship %d needs two labels", i)
		}
		r := erd.Relationship{
			From:      render.Pt(s.From[0], s.From[1]),
			To:        render.Pt(s.To[0], s.To[1]),
			FromLabel: s.Labels[0],
			ToLabel:   s.Labels[1],
		}
		if s.Color != "" {
			c, err := render.ParseColor(s.Color)
			if err != nil {
				return erd.Diagram{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "erd: relationship %d", i)
			}
			r.Color = c
		}
		d.Relationships = append(d.Relationships, r)
	}

	d.Annotations = append(d.Annotations, erd.Annotation{
		Text:  e.Title,
		At:    erdTitleAt,
		Style: render.TextStyle{Size: 18, Bold: true, HAlign: render.AlignCenter},
	})
	for _, l := range e.Legend.Lines {
		if !(l.Size > 0) {
			return erd.Diagram{}, invalid("erd: legend line %q size %v must be positive", l.Text, l.Size)
		}
		d.Annotations = append(d.Annotations, erd.Annotation{
			Text:  l.Text,
			At:    render.Pt(e.Legend.X, e.Legend.Y-l.Drop),
			Style: render.TextStyle{Size: l.Size, Bold: l.Bold, Italic: l.Italic},
		})
	}
	for _, c := range e.Descriptions {
		d.Annotations = append(d.Annotations, erd.Annotation{
			Text:  c.Text,
			At:    render.Pt(c.X, c.Y),
			Style: render.TextStyle{Size: 8, Italic: true, Color: captionColor, HAlign: render.AlignCenter},
		})
	}
	return d, nil
}
