package figures

import (
	"image/color"

	"github.com/cinematch/cinevis/pkg/errors"
	"github.com/cinematch/cinevis/pkg/render"
)

// textOp is one string to draw; panels build a list and draw it in one go.
type textOp struct {
	s  string
	at render.Point
	st render.TextStyle
}

func drawTexts(c *render.Canvas, ops []textOp) error {
	for _, op := range ops {
		if err := c.Text(op.s, op.at, op.st); err != nil {
			return err
		}
	}
	return nil
}

func (p Components) draw(c *render.Canvas) error {
	ops := []textOp{{p.Title, render.Pt(0.5, 0.9), render.TextStyle{Size: 16, Bold: true, HAlign: render.AlignCenter, VAlign: render.AlignTop}}}

	y := 0.75
	for _, it := range p.Items {
		ops = append(ops,
			textOp{it.Name + ":", render.Pt(0.2, y), render.TextStyle{Size: 12, Bold: true}},
			textOp{it.Value, render.Pt(0.7, y), render.TextStyle{Size: 12, HAlign: render.AlignRight}},
		)
		y -= 0.12
	}

	y -= 0.05
	ops = append(ops, textOp{p.BreakdownTitle, render.Pt(0.5, y), render.TextStyle{Size: 12, Bold: true, Italic: true, HAlign: render.AlignCenter}})
	y -= 0.10
	for _, line := range p.Breakdown {
		ops = append(ops, textOp{line, render.Pt(0.5, y), render.TextStyle{Size: 10, HAlign: render.AlignCenter}})
		y -= 0.08
	}
	return drawTexts(c, ops)
}

// Table geometry in unit canvas coordinates.
const (
	tableTop    = 0.85
	tableBottom = 0.02
	tableTitleY = 0.95
)

func (t Comparison) draw(c *render.Canvas) error {
	headerFill, err := render.ParseColor(t.HeaderFill)
	if err != nil {
		return err
	}
	headerText, err := render.ParseColor(t.HeaderText)
	if err != nil {
		return err
	}
	rowFills := make([]color.Color, len(t.RowFills))
	for i, s := range t.RowFills {
		col, err := render.ParseColor(s)
		if err != nil {
			return err
		}
		rowFills[i] = col
	}

	if err := c.Text(t.Title, render.Pt(0.5, tableTitleY), render.TextStyle{Size: 14, Bold: true, HAlign: render.AlignCenter, VAlign: render.AlignMiddle}); err != nil {
		return err
	}

	var width float64
	for _, w := range t.ColumnWidths {
		width += w
	}
	left := (1 - width) / 2
	rowHeight := (tableTop - tableBottom) / float64(len(t.Rows))

	for i, row := range t.Rows {
		top := tableTop - float64(i)*rowHeight
		x := left
		for j, cell := range row {
			r := render.Rect{Min: render.Pt(x, top-rowHeight), Max: render.Pt(x+t.ColumnWidths[j], top)}
			x += t.ColumnWidths[j]

			st := render.TextStyle{Size: 9, HAlign: render.AlignCenter, VAlign: render.AlignMiddle}
			fill := headerFill
			if i == 0 {
				st.Bold, st.Color = true, headerText
			} else {
				// Body rows alternate starting from the first fill.
				fill = rowFills[(i-1)%len(rowFills)]
			}
			c.FillRect(r, fill, render.Stroke{Color: cellEdge, Width: 1})
			if err := c.Text(cell, r.Center(), st); err != nil {
				return errors.Wrap(errors.ErrCodeRenderFailed, err, "comparison cell %d,%d", i, j)
			}
		}
	}
	return nil
}
