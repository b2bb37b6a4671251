package figures

import "github.com/cinematch/cinevis/pkg/render"

func (e ERD) draw(c *render.Canvas) error {
	d, err := e.Diagram()
	if err != nil {
		return err
	}
	return d.Draw(c)
}
