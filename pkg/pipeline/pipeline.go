// Package pipeline runs the figure passes that produce the documentation
// images.
//
// Each pass is strictly sequential: announce the figure, create a fresh
// canvas, draw, export to PNG, announce completion. Only one canvas is
// alive at a time and the first failure aborts the run.
//
// # Usage
//
//	figs, err := figures.Default()
//	if err != nil {
//	    return err
//	}
//	runner := pipeline.NewRunner(pipeline.DefaultOutDir, logger)
//	result, err := runner.Run(ctx, pipeline.FromFigures(figs))
//	if err != nil {
//	    return err
//	}
//	for _, path := range result.Files {
//	    fmt.Println(path)
//	}
package pipeline

import (
	"os"
	"time"

	"github.com/cinematch/cinevis/pkg/errors"
	"github.com/cinematch/cinevis/pkg/figures"
	"github.com/cinematch/cinevis/pkg/render"
)

// DefaultOutDir is the directory figures are written to when none is given.
const DefaultOutDir = "docs/images"

// Figure is one draw-and-export pass.
type Figure interface {
	// FileName is the base name of the PNG written into the output directory.
	FileName() string
	// Title is the human-readable name used in progress output.
	Title() string
	Frame() render.Frame
	Draw(c *render.Canvas) error
}

// FromFigures adapts the project figures to the runner.
func FromFigures(figs []figures.Figure) []Figure {
	out := make([]Figure, len(figs))
	for i, f := range figs {
		out[i] = f
	}
	return out
}

// Result is the outcome of a complete run.
type Result struct {
	// Files lists the written paths in generation order.
	Files []string
	Stats []FigureStat
	// Duration is the wall time of the whole run.
	Duration time.Duration
}

// FigureStat records one completed pass.
type FigureStat struct {
	Title    string
	Path     string
	Duration time.Duration
}

// EnsureDir creates dir and any missing parents. An existing directory is
// not an error.
func EnsureDir(dir string) error {
	if err := errors.ValidateOutputDir(dir); err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create output directory %s", dir)
	}
	return nil
}

// validateFigures rejects empty runs, invalid file names and two figures
// writing the same file.
func validateFigures(figs []Figure) error {
	if len(figs) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "no figures to generate")
	}
	seen := make(map[string]bool, len(figs))
	for _, f := range figs {
		name := f.FileName()
		if err := errors.ValidateFileName(name); err != nil {
			return err
		}
		if seen[name] {
			return errors.New(errors.ErrCodeInvalidInput, "duplicate figure file name %q", name)
		}
		seen[name] = true
	}
	return nil
}
