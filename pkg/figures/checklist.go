package figures

import (
	"github.com/cinematch/cinevis/pkg/render"
)

// Checklist geometry in unit canvas coordinates.
const (
	checklistTop     = 0.85
	checklistStep    = 0.05
	checkboxSize     = 0.025
	maxChecklistRows = 15
)

var summaryBox = render.Rect{Min: render.Pt(0.1, 0.02), Max: render.Pt(0.9, 0.10)}

func (t Testing) draw(c *render.Canvas) error {
	ops := []textOp{
		{t.Title, render.Pt(0.5, 0.98), render.TextStyle{Size: 16, Bold: true, HAlign: render.AlignCenter, VAlign: render.AlignTop}},
		{t.Subtitle, render.Pt(0.5, 0.92), render.TextStyle{Size: 12, Italic: true, Color: passColor, HAlign: render.AlignCenter, VAlign: render.AlignTop}},
	}

	y := checklistTop
	for _, name := range t.Categories {
		box := render.Rect{
			Min: render.Pt(0.1, y-checkboxSize/2),
			Max: render.Pt(0.1+checkboxSize, y+checkboxSize/2),
		}
		c.FillRect(box, passColor, render.Stroke{Color: passBorder, Width: 2})
		drawCheckmark(c, box)

		ops = append(ops,
			textOp{name, render.Pt(0.15, y), render.TextStyle{Size: 10, VAlign: render.AlignMiddle}},
			textOp{t.Status, render.Pt(0.85, y), render.TextStyle{Size: 10, Bold: true, Color: passColor, VAlign: render.AlignMiddle}},
		)
		y -= checklistStep
	}

	c.RoundedRect(summaryBox, 0.01, summaryFill, render.Stroke{Color: passColor, Width: 2})
	ops = append(ops, textOp{t.Summary, summaryBox.Center(), render.TextStyle{Size: 11, Bold: true, HAlign: render.AlignCenter, VAlign: render.AlignMiddle}})

	return drawTexts(c, ops)
}

// drawCheckmark draws a tick inside box.
func drawCheckmark(c *render.Canvas, box render.Rect) {
	w, h := box.Dx(), box.Dy()
	c.Polyline([]render.Point{
		render.Pt(box.Min.X+0.2*w, box.Min.Y+0.5*h),
		render.Pt(box.Min.X+0.42*w, box.Min.Y+0.25*h),
		render.Pt(box.Min.X+0.8*w, box.Min.Y+0.78*h),
	}, render.Stroke{Color: checkColor, Width: 2})
}
