// Package cli implements the cinevis command-line interface.
//
// Running the root command with no arguments draws every documentation
// figure into the output directory (docs/images by default) and prints a
// progress line per figure followed by a summary of the written files.
//
// # Logging
//
// Structured logs go to stderr through charmbracelet/log at info level,
// or debug level with --verbose (-v). Progress output goes to the
// command's stdout.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/cinematch/cinevis/pkg/buildinfo"
	"github.com/cinematch/cinevis/pkg/pipeline"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for the command.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command. It takes no arguments and
// generates all figures when run.
func (c *CLI) RootCommand() *cobra.Command {
	var (
		outDir  string
		verbose bool
	)

	root := &cobra.Command{
		Use:   "cinevis",
		Short: "cinevis draws the CineMatch documentation figures",
		Long: `cinevis renders the static charts, tables and the entity-relationship
diagram that illustrate the CineMatch database project, and writes them as
PNG files into the documentation folder.`,
		Version:      buildinfo.Version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			logBuildInfo(c.Logger)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.generate(cmd.Context(), cmd.OutOrStdout(), outDir)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.Flags().StringVarP(&outDir, "out", "o", pipeline.DefaultOutDir, "output directory for the PNG files")

	return root
}
