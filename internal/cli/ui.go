package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")  // Teal - headings
	colorGreen = lipgloss.Color("35")  // Green - success
	colorRed   = lipgloss.Color("167") // Soft red - errors
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleError   = lipgloss.NewStyle().Foreground(colorRed)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconArrow   = "→"
)

// =============================================================================
// Progress Output
// =============================================================================

// printer writes user-facing progress to w. It doubles as figure hooks so
// the runner drives the per-figure lines.
type printer struct {
	w io.Writer
}

func (p *printer) title(msg string) {
	fmt.Fprintln(p.w, styleTitle.Render(msg))
}

func (p *printer) OnFigureStart(_ context.Context, index int, title string) {
	fmt.Fprintf(p.w, "  %d. Creating %s...\n", index, title)
}

func (p *printer) OnFigureComplete(_ context.Context, _ int, path string, d time.Duration, err error) {
	if err != nil {
		fmt.Fprintf(p.w, "     %s %s\n", styleError.Render(iconError), styleError.Render("Failed: "+path))
		return
	}
	fmt.Fprintf(p.w, "     %s Saved: %s %s\n",
		styleSuccess.Render(iconSuccess),
		styleValue.Render(path),
		styleDim.Render(fmt.Sprintf("(%s)", d.Round(time.Millisecond))))
}

// summary prints the closing banner and the list of generated files.
func (p *printer) summary(files []string) {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, styleSuccess.Render(iconSuccess+" All visualizations generated successfully!"))
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, styleTitle.Render("Generated files:"))
	for _, f := range files {
		fmt.Fprintln(p.w, "  "+styleDim.Render(iconArrow)+" "+styleValue.Render(f))
	}
}
