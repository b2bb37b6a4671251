// Package observability provides hooks for progress reporting and metrics.
//
// The figure runner announces each pass through [FigureHooks]. Consumers
// register hooks at startup, or hand them to a runner directly, to print
// progress, record timings or count failures without the runner knowing
// who listens.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetFigureHooks(&myFigureHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Figures().OnFigureStart(ctx, 1, "ER Diagram")
//	// ... draw and export ...
//	observability.Figures().OnFigureComplete(ctx, 1, "docs/images/er_diagram.png", duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Figure Hooks
// =============================================================================

// FigureHooks receives events from figure generation. Index counts from 1
// in generation order.
type FigureHooks interface {
	OnFigureStart(ctx context.Context, index int, title string)
	OnFigureComplete(ctx context.Context, index int, path string, duration time.Duration, err error)
}

// NoopFigureHooks is a no-op implementation of FigureHooks.
type NoopFigureHooks struct{}

func (NoopFigureHooks) OnFigureStart(context.Context, int, string) {}
func (NoopFigureHooks) OnFigureComplete(context.Context, int, string, time.Duration, error) {
}

// Multi fans events out to several hooks in order.
type Multi []FigureHooks

func (m Multi) OnFigureStart(ctx context.Context, index int, title string) {
	for _, h := range m {
		h.OnFigureStart(ctx, index, title)
	}
}

func (m Multi) OnFigureComplete(ctx context.Context, index int, path string, d time.Duration, err error) {
	for _, h := range m {
		h.OnFigureComplete(ctx, index, path, d, err)
	}
}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	figureHooks FigureHooks = NoopFigureHooks{}
	hooksMu     sync.RWMutex
)

// SetFigureHooks registers custom figure hooks.
// This should be called once at application startup before any figures run.
func SetFigureHooks(h FigureHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		figureHooks = h
	}
}

// Figures returns the registered figure hooks.
func Figures() FigureHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return figureHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	figureHooks = NoopFigureHooks{}
}
