// Package fonts provides the font faces used to draw figure text.
//
// The faces come from the Go font family shipped with golang.org/x/image,
// so rendering needs no system fonts and produces the same pixels on every
// machine.
package fonts

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// Style selects one of the four Go font variants.
type Style struct {
	Bold   bool
	Italic bool
}

// String returns the variant name, e.g. "bold-italic".
func (s Style) String() string {
	switch {
	case s.Bold && s.Italic:
		return "bold-italic"
	case s.Bold:
		return "bold"
	case s.Italic:
		return "italic"
	default:
		return "regular"
	}
}

// TTF returns the TrueType data for the variant.
func (s Style) TTF() []byte {
	switch {
	case s.Bold && s.Italic:
		return gobolditalic.TTF
	case s.Bold:
		return gobold.TTF
	case s.Italic:
		return goitalic.TTF
	default:
		return goregular.TTF
	}
}

type faceKey struct {
	style     Style
	size, dpi float64
}

// Parsed fonts and faces are cached for the life of the process.
// Faces are not safe for concurrent drawing; cinevis draws from one goroutine.
var (
	mu     sync.Mutex
	parsed = make(map[Style]*truetype.Font)
	faces  = make(map[faceKey]font.Face)
)

// Face returns a face of the given style at size points for a raster of
// the given DPI. A 12pt face at 150 DPI is 25 pixels tall.
func Face(s Style, size, dpi float64) (font.Face, error) {
	if size <= 0 || dpi <= 0 {
		return nil, fmt.Errorf("font %s: size %.2f and dpi %.2f must be positive", s, size, dpi)
	}

	mu.Lock()
	defer mu.Unlock()

	key := faceKey{style: s, size: size, dpi: dpi}
	if f, ok := faces[key]; ok {
		return f, nil
	}

	ttf, ok := parsed[s]
	if !ok {
		var err error
		ttf, err = truetype.Parse(s.TTF())
		if err != nil {
			return nil, fmt.Errorf("parse %s font: %w", s, err)
		}
		parsed[s] = ttf
	}

	f := truetype.NewFace(ttf, &truetype.Options{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	faces[key] = f
	return f, nil
}
