package erd

import (
	"image/color"

	"github.com/cinematch/cinevis/pkg/render"
)

const (
	// LabelOffset is the distance, in canvas units, between a cardinality
	// label and its line.
	LabelOffset = 0.2

	// labelInset is how far along the line a label sits from its endpoint,
	// as a fraction of the line length.
	labelInset = 0.12
)

var (
	cardinalityColor = render.MustParseColor("#D00000")
	badgeFill        = render.MustParseColor("white")
)

// Relationship is an edge between two hand-placed endpoints, annotated
// with a cardinality label at each end.
type Relationship struct {
	From, To           render.Point
	FromLabel, ToLabel string
	Color              color.Color // nil draws in EntityColor
}

// Placement holds the label anchors computed for a relationship.
type Placement struct {
	From, To render.Point // anchors of FromLabel and ToLabel
	Offset   render.Point // perpendicular shift of the From anchor; To is shifted by its negation
}

// PlaceLabels positions the labels of r. Each label sits labelInset of the
// way in from its endpoint and is pushed LabelOffset away from the line:
// the From label to the left of the direction of travel, the To label to
// the right. When From equals To the direction is undefined and both labels
// sit on the shared point.
func PlaceLabels(r Relationship) Placement {
	d := r.To.Sub(r.From)
	length := d.Len()
	if !(length > 0) {
		return Placement{From: r.From, To: r.From}
	}

	off := d.Perp().Scale(LabelOffset / length)
	return Placement{
		From:   r.From.Add(d.Scale(labelInset)).Add(off),
		To:     r.To.Sub(d.Scale(labelInset)).Sub(off),
		Offset: off,
	}
}

// DrawRelationship draws the line of r and then its two labels, each in a
// rounded badge.
func DrawRelationship(c *render.Canvas, r Relationship) error {
	col := r.Color
	if col == nil {
		col = EntityColor
	}
	c.Line(r.From, r.To, render.Stroke{Color: render.WithAlpha(col, 0.8), Width: 2.5})

	p := PlaceLabels(r)
	st := render.TextStyle{Size: 12, Bold: true, Color: cardinalityColor}
	badge := render.BadgeStyle{
		Fill:   badgeFill,
		Stroke: render.Stroke{Color: cardinalityColor, Width: 2},
		Pad:    0.4,
	}
	if err := c.Badge(r.FromLabel, p.From, st, badge); err != nil {
		return err
	}
	return c.Badge(r.ToLabel, p.To, st, badge)
}
