package cli

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestPrinterFigureLines(t *testing.T) {
	var buf strings.Builder
	p := &printer{w: &buf}
	ctx := context.Background()

	p.OnFigureStart(ctx, 6, "ER Diagram")
	p.OnFigureComplete(ctx, 6, "docs/images/er_diagram.png", 1500*time.Microsecond, nil)
	p.OnFigureComplete(ctx, 6, "docs/images/er_diagram.png", 0, errors.New("disk full"))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), buf.String())
	}
	if lines[0] != "  6. Creating ER Diagram..." {
		t.Errorf("start line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "Saved:") || !strings.Contains(lines[1], "docs/images/er_diagram.png") {
		t.Errorf("completion line = %q", lines[1])
	}
	if !strings.Contains(lines[2], "Failed: docs/images/er_diagram.png") {
		t.Errorf("failure line = %q", lines[2])
	}
}

func TestPrinterSummary(t *testing.T) {
	var buf strings.Builder
	p := &printer{w: &buf}

	files := []string{"docs/images/database_components.png", "docs/images/er_diagram.png"}
	p.summary(files)

	out := buf.String()
	for _, want := range append([]string{"All visualizations generated successfully!", "Generated files:"}, files...) {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}
