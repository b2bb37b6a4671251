package cli

import (
	"context"
	"io"

	"github.com/cinematch/cinevis/pkg/figures"
	"github.com/cinematch/cinevis/pkg/observability"
	"github.com/cinematch/cinevis/pkg/pipeline"
)

// generate draws every figure into dir, reporting progress to w.
func (c *CLI) generate(ctx context.Context, w io.Writer, dir string) error {
	sw := startStopwatch(c.Logger)

	figs, err := figures.Default()
	if err != nil {
		return err
	}
	c.Logger.Debug("loaded figure data", "figures", len(figs))

	p := &printer{w: w}
	p.title("Generating visualizations for CineMatch...")

	runner := pipeline.NewRunner(dir, c.Logger)
	runner.Hooks = observability.Multi{p, observability.Figures()}

	result, err := runner.Run(ctx, pipeline.FromFigures(figs))
	if err != nil {
		return err
	}

	p.summary(result.Files)
	sw.done("Generated visualizations")
	return nil
}
