package erd

import (
	"github.com/cinematch/cinevis/pkg/errors"
	"github.com/cinematch/cinevis/pkg/render"
)

// Annotation is free text placed on a diagram: a title, a legend line or
// a caption under a box.
type Annotation struct {
	Text  string
	At    render.Point
	Style render.TextStyle
}

// Diagram is a complete set of boxes, edges and annotations.
type Diagram struct {
	Entities      []Entity
	Relationships []Relationship
	Annotations   []Annotation
}

// Validate checks every entity and rejects duplicate entity names.
func (d Diagram) Validate() error {
	seen := make(map[string]bool, len(d.Entities))
	for _, e := range d.Entities {
		if err := e.Validate(); err != nil {
			return err
		}
		if seen[e.Name] {
			return errors.New(errors.ErrCodeInvalidInput, "duplicate entity %q", e.Name)
		}
		seen[e.Name] = true
	}
	return nil
}

// Entity returns the entity with the given name.
func (d Diagram) Entity(name string) (Entity, bool) {
	for _, e := range d.Entities {
		if e.Name == name {
			return e, true
		}
	}
	return Entity{}, false
}

// Draw validates d and draws it on c: boxes first, then edges over them,
// then annotations.
func (d Diagram) Draw(c *render.Canvas) error {
	if err := d.Validate(); err != nil {
		return err
	}
	for _, e := range d.Entities {
		if err := DrawEntity(c, e); err != nil {
			return err
		}
	}
	for _, r := range d.Relationships {
		if err := DrawRelationship(c, r); err != nil {
			return err
		}
	}
	for _, a := range d.Annotations {
		if err := c.Text(a.Text, a.At, a.Style); err != nil {
			return err
		}
	}
	return nil
}
