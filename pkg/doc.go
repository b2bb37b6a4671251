// Package pkg provides the libraries behind cinevis, the generator of the
// CineMatch documentation figures.
//
// # Overview
//
// The pkg directory is organized bottom-up:
//
//  1. [render] - Explicit raster canvas with a y-up data coordinate system,
//     PNG export, colour helpers and a bridge for gonum plots
//  2. [erd] - Entity boxes and relationship edges for ER diagrams
//  3. [figures] - The six documentation figures and their embedded data
//  4. [pipeline] - Sequential draw-and-export passes into an output directory
//
// Support packages: [errors] (structured error codes), [fonts] (embedded Go
// fonts), [observability] (figure hooks) and [buildinfo] (version metadata).
//
// # Data Flow
//
//	cinematch.toml (embedded)
//	         ↓
//	    [figures] package (decode, validate, build figures)
//	         ↓
//	    [pipeline] package (fresh canvas per figure, draw, export)
//	         ↓
//	    docs/images/*.png
//
// # Quick Start
//
//	figs, err := figures.Default()
//	if err != nil {
//	    return err
//	}
//	runner := pipeline.NewRunner("docs/images", logger)
//	result, err := runner.Run(ctx, pipeline.FromFigures(figs))
//
// Drawing a single entity on a canvas:
//
//	c, err := render.NewCanvas(render.NewFrame(4, 3, render.Rect{Max: render.Pt(4, 3)}))
//	if err != nil {
//	    return err
//	}
//	err = erd.DrawEntity(c, erd.Entity{Name: "Movie", Center: render.Pt(2, 1.5), Width: 2, Height: 1})
//	if err != nil {
//	    return err
//	}
//	err = c.SavePNG("movie.png")
//
// [render]: github.com/cinematch/cinevis/pkg/render
// [erd]: github.com/cinematch/cinevis/pkg/erd
// [figures]: github.com/cinematch/cinevis/pkg/figures
// [pipeline]: github.com/cinematch/cinevis/pkg/pipeline
// [errors]: github.com/cinematch/cinevis/pkg/errors
// [fonts]: github.com/cinematch/cinevis/pkg/fonts
// [observability]: github.com/cinematch/cinevis/pkg/observability
// [buildinfo]: github.com/cinematch/cinevis/pkg/buildinfo
package pkg
