package erd

import (
	"github.com/cinematch/cinevis/pkg/errors"
	"github.com/cinematch/cinevis/pkg/render"
)

const (
	titleBand    = 0.35 // height of the name band, canvas units
	shadowShift  = 0.05
	cornerRadius = 0.08
)

var (
	// EntityColor is the border and title band colour of entity boxes,
	// and the default colour of relationship lines.
	EntityColor = render.MustParseColor("#2C5F8D")

	entityFill  = render.MustParseColor("#E8F0F8")
	shadowColor = render.WithAlpha(render.MustParseColor("#888888"), 0.3)
	keyColor    = render.MustParseColor("#666666")
	nameColor   = render.MustParseColor("white")
)

// Entity is one table box of a diagram.
type Entity struct {
	Name          string
	Center        render.Point
	Width, Height float64
}

// Bounds returns the box outline: exactly Width by Height around Center.
// The drop shadow lies outside it.
func (e Entity) Bounds() render.Rect {
	return render.RectAround(e.Center, e.Width, e.Height)
}

// Validate reports an INVALID_GEOMETRY error unless both dimensions are
// positive.
func (e Entity) Validate() error {
	if !(e.Width > 0 && e.Height > 0) {
		return errors.New(errors.ErrCodeInvalidGeometry, "entity %q: size %vx%v must be positive", e.Name, e.Width, e.Height)
	}
	return nil
}

// DrawEntity draws e on c: a drop shadow, the bordered body, a title band
// holding the name and a "PK" placeholder in the middle.
func DrawEntity(c *render.Canvas, e Entity) error {
	if err := e.Validate(); err != nil {
		return err
	}

	b := e.Bounds()
	c.RoundedRect(b.Offset(render.Pt(shadowShift, -shadowShift)), cornerRadius, shadowColor, render.Stroke{})
	c.RoundedRect(b, cornerRadius, entityFill, render.Stroke{Color: EntityColor, Width: 2.5})

	bandHeight := titleBand
	if bandHeight > e.Height {
		bandHeight = e.Height
	}
	band := render.Rect{Min: render.Pt(b.Min.X, b.Max.Y-bandHeight), Max: b.Max}
	c.FillRect(band, EntityColor, render.Stroke{Color: EntityColor, Width: 1})

	if err := c.Text(e.Name, band.Center(), render.TextStyle{
		Size:   11,
		Bold:   true,
		Color:  nameColor,
		HAlign: render.AlignCenter,
		VAlign: render.AlignMiddle,
	}); err != nil {
		return err
	}
	return c.Text("PK", e.Center, render.TextStyle{
		Size:   9,
		Italic: true,
		Color:  keyColor,
		HAlign: render.AlignCenter,
		VAlign: render.AlignMiddle,
	})
}
