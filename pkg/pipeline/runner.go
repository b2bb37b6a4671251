package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/cinematch/cinevis/pkg/errors"
	"github.com/cinematch/cinevis/pkg/observability"
	"github.com/cinematch/cinevis/pkg/render"
)

// Runner writes figures into an output directory.
//
// The Runner holds no state between runs; running the same figures twice
// overwrites the same files.
type Runner struct {
	OutDir string
	Logger *log.Logger
	// Hooks receives figure events. When nil the globally registered
	// observability hooks are used.
	Hooks observability.FigureHooks
}

// NewRunner creates a runner writing into outDir.
// If outDir is empty, DefaultOutDir is used.
// If logger is nil, the default charm logger is used.
func NewRunner(outDir string, logger *log.Logger) *Runner {
	if outDir == "" {
		outDir = DefaultOutDir
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{OutDir: outDir, Logger: logger}
}

// Run generates figs in order. The output directory is created first; the
// first failing figure stops the run and its error is returned wrapped
// with the figure's file name. Cancellation is checked between figures.
func (r *Runner) Run(ctx context.Context, figs []Figure) (*Result, error) {
	if err := validateFigures(figs); err != nil {
		return nil, fmt.Errorf("invalid figures: %w", err)
	}
	if err := EnsureDir(r.OutDir); err != nil {
		return nil, err
	}
	r.Logger.Debug("output directory ready", "dir", r.OutDir)

	start := time.Now()
	result := &Result{
		Files: make([]string, 0, len(figs)),
		Stats: make([]FigureStat, 0, len(figs)),
	}
	for i, f := range figs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		stat, err := r.generate(ctx, i+1, f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.FileName(), err)
		}
		result.Files = append(result.Files, stat.Path)
		result.Stats = append(result.Stats, stat)
	}
	result.Duration = time.Since(start)

	r.Logger.Info("generated figures",
		"count", len(result.Files),
		"dir", r.OutDir,
		"duration", result.Duration.Round(time.Millisecond))
	return result, nil
}

// generate runs one pass and reports it to the hooks.
func (r *Runner) generate(ctx context.Context, index int, f Figure) (FigureStat, error) {
	hooks := r.hooks()
	path := filepath.Join(r.OutDir, f.FileName())

	hooks.OnFigureStart(ctx, index, f.Title())
	start := time.Now()
	err := export(f, path)
	elapsed := time.Since(start)
	hooks.OnFigureComplete(ctx, index, path, elapsed, err)
	if err != nil {
		return FigureStat{}, err
	}

	r.Logger.Debug("saved figure",
		"figure", f.Title(),
		"path", path,
		"duration", elapsed.Round(time.Millisecond))
	return FigureStat{Title: f.Title(), Path: path, Duration: elapsed}, nil
}

func (r *Runner) hooks() observability.FigureHooks {
	if r.Hooks != nil {
		return r.Hooks
	}
	return observability.Figures()
}

// export draws f on a fresh canvas and saves it to path.
func export(f Figure, path string) error {
	c, err := render.NewCanvas(f.Frame())
	if err != nil {
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "create canvas for %s", f.Title())
	}
	if err := f.Draw(c); err != nil {
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "draw %s", f.Title())
	}
	return c.SavePNG(path)
}
