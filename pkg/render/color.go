package render

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"

	"github.com/cinematch/cinevis/pkg/errors"
)

// ParseColor parses a CSS colour: a hex string such as "#2C5F8D" or a
// named colour such as "darkgreen".
func ParseColor(s string) (color.Color, error) {
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse colour %q", s)
	}
	r, g, b, a := c.RGBA255()
	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}

// MustParseColor is like ParseColor but panics on error. It is meant for
// package-level palettes built from literals.
func MustParseColor(s string) color.Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// WithAlpha returns c with its opacity replaced by alpha in [0, 1].
func WithAlpha(c color.Color, alpha float64) color.Color {
	alpha = math.Max(0, math.Min(1, alpha))
	cf, ok := colorful.MakeColor(c)
	if !ok {
		// Fully transparent input carries no hue.
		return color.NRGBA{A: uint8(math.Round(alpha * 255))}
	}
	r, g, b := cf.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(alpha * 255))}
}

// Darken lowers the lightness of c by amount in HSL space.
func Darken(c color.Color, amount float64) color.Color {
	_, _, _, a := c.RGBA()
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return c
	}
	h, s, l := cf.Hsl()
	r, g, b := colorful.Hsl(h, s, l-amount).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(a >> 8)}
}
