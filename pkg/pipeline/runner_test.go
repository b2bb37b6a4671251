package pipeline

import (
	"context"
	stderrors "errors"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/cinematch/cinevis/pkg/errors"
	"github.com/cinematch/cinevis/pkg/figures"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(&strings.Builder{}, log.Options{Level: log.ErrorLevel})
}

func TestNewRunnerDefaults(t *testing.T) {
	r := NewRunner("", nil)
	if r.OutDir != DefaultOutDir {
		t.Errorf("OutDir = %q, want %q", r.OutDir, DefaultOutDir)
	}
	if r.Logger == nil {
		t.Error("Logger should default to a non-nil logger")
	}
}

func TestRunEndToEnd(t *testing.T) {
	figs, err := figures.Default()
	if err != nil {
		t.Fatalf("figures.Default() error = %v", err)
	}
	dir := filepath.Join(t.TempDir(), "docs", "images")

	result, err := NewRunner(dir, quietLogger()).Run(context.Background(), FromFigures(figs))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(result.Files) != len(figs) || len(result.Stats) != len(figs) {
		t.Fatalf("Run() wrote %d files with %d stats, want %d", len(result.Files), len(result.Stats), len(figs))
	}
	assertOnlyFiles(t, dir, figures.FileNames())

	for i, f := range figs {
		path := result.Files[i]
		if path != filepath.Join(dir, f.FileName()) {
			t.Errorf("Files[%d] = %q, want %q", i, path, filepath.Join(dir, f.FileName()))
		}
		wantW, wantH := f.Frame().Pixels()
		w, h := decodeSize(t, path)
		if w != wantW || h != wantH {
			t.Errorf("%s is %dx%d, want %dx%d", f.FileName(), w, h, wantW, wantH)
		}
	}

	// 14x10 inches at 150 dpi
	if w, h := decodeSize(t, filepath.Join(dir, figures.FileERD)); w != 2100 || h != 1500 {
		t.Errorf("%s is %dx%d, want 2100x1500", figures.FileERD, w, h)
	}
}

func TestRunTwiceOverwrites(t *testing.T) {
	dir := t.TempDir()
	figs := []Figure{stubFigure{name: "one.png"}, stubFigure{name: "two.png"}}
	r := NewRunner(dir, quietLogger())

	first, err := r.Run(context.Background(), figs)
	if err != nil {
		t.Fatalf("first Run() error = %v", err)
	}
	// Backdate so an overwrite is visible in the modification time.
	old := time.Now().Add(-time.Hour)
	for _, path := range first.Files {
		if err := os.Chtimes(path, old, old); err != nil {
			t.Fatal(err)
		}
	}

	second, err := r.Run(context.Background(), figs)
	if err != nil {
		t.Fatalf("second Run() error = %v", err)
	}

	if strings.Join(first.Files, ",") != strings.Join(second.Files, ",") {
		t.Errorf("runs wrote different files: %v vs %v", first.Files, second.Files)
	}
	assertOnlyFiles(t, dir, []string{"one.png", "two.png"})
	for _, path := range second.Files {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if !info.ModTime().After(old) {
			t.Errorf("%s was not rewritten", path)
		}
	}
}

func TestRunAbortsOnFirstFailure(t *testing.T) {
	dir := t.TempDir()
	boom := stderrors.New("boom")
	figs := []Figure{
		stubFigure{name: "ok.png"},
		stubFigure{name: "bad.png", err: boom},
		stubFigure{name: "never.png"},
	}

	result, err := NewRunner(dir, quietLogger()).Run(context.Background(), figs)
	if err == nil {
		t.Fatal("Run() should fail")
	}
	if result != nil {
		t.Errorf("Run() result = %+v, want nil on failure", result)
	}
	if !stderrors.Is(err, boom) {
		t.Errorf("error %v should wrap the draw failure", err)
	}
	if !errors.Is(err, errors.ErrCodeRenderFailed) {
		t.Errorf("error %v should carry %s", err, errors.ErrCodeRenderFailed)
	}
	if !strings.Contains(err.Error(), "bad.png") {
		t.Errorf("error %q should name the failing figure", err)
	}
	assertOnlyFiles(t, dir, []string{"ok.png"})
}

func TestRunUnwritableDirectory(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "images")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := NewRunner(blocker, quietLogger()).Run(context.Background(), []Figure{stubFigure{name: "a.png"}})
	if !errors.Is(err, errors.ErrCodeIO) {
		t.Errorf("Run() error = %v, want %s", err, errors.ErrCodeIO)
	}
}

func TestRunCanceled(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	hooks := &recordingHooks{onComplete: cancel}

	r := NewRunner(dir, quietLogger())
	r.Hooks = hooks
	_, err := r.Run(ctx, []Figure{stubFigure{name: "a.png"}, stubFigure{name: "b.png"}})
	if !stderrors.Is(err, context.Canceled) {
		t.Fatalf("Run() error = %v, want context.Canceled", err)
	}
	assertOnlyFiles(t, dir, []string{"a.png"})
}

func TestRunEmitsHooks(t *testing.T) {
	dir := t.TempDir()
	hooks := &recordingHooks{}
	r := NewRunner(dir, quietLogger())
	r.Hooks = hooks

	if _, err := r.Run(context.Background(), []Figure{stubFigure{name: "a.png"}, stubFigure{name: "b.png"}}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := []string{
		"start 1 stub a.png",
		"done 1 " + filepath.Join(dir, "a.png"),
		"start 2 stub b.png",
		"done 2 " + filepath.Join(dir, "b.png"),
	}
	if strings.Join(hooks.events, "\n") != strings.Join(want, "\n") {
		t.Errorf("events = %q, want %q", hooks.events, want)
	}
}

type recordingHooks struct {
	mu         sync.Mutex
	events     []string
	onComplete func()
}

func (h *recordingHooks) OnFigureStart(_ context.Context, index int, title string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, "start "+strconv.Itoa(index)+" "+title)
}

func (h *recordingHooks) OnFigureComplete(_ context.Context, index int, path string, _ time.Duration, _ error) {
	h.mu.Lock()
	h.events = append(h.events, "done "+strconv.Itoa(index)+" "+path)
	h.mu.Unlock()
	if h.onComplete != nil {
		h.onComplete()
	}
}

func decodeSize(t *testing.T, path string) (int, int) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

func assertOnlyFiles(t *testing.T, dir string, want []string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir(%s) error = %v", dir, err)
	}
	var got []string
	for _, e := range entries {
		got = append(got, e.Name())
	}
	want = append([]string(nil), want...)
	sort.Strings(got)
	sort.Strings(want)
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("%s contains %v, want %v", dir, got, want)
	}
}
