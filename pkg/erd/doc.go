// Package erd draws entity-relationship diagrams made of hand-placed boxes
// and edges.
//
// Entities are rounded boxes with a title band; relationships are straight
// lines carrying a cardinality badge near each end. Nothing is laid out
// automatically: every center, size and endpoint is given by the caller,
// and overlapping boxes are drawn as they are. A diagram is a drawing, not
// a schema, so nothing here knows which table references which.
//
//	c, _ := render.NewCanvas(render.NewFrame(14, 10, render.Rect{Max: render.Pt(14, 10)}))
//	_ = erd.DrawEntity(c, erd.Entity{Name: "USERS", Center: render.Pt(2.5, 8), Width: 2.2, Height: 1.6})
//	_ = erd.DrawRelationship(c, erd.Relationship{From: render.Pt(2.5, 7.2), To: render.Pt(2.5, 5.8), FromLabel: "1", ToLabel: "*"})
package erd
