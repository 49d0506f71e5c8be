// Package observability provides hooks for metrics, tracing, and logging.
//
// Conversion stages report their progress through [PipelineHooks] without
// depending on any particular backend. The default hooks do nothing; a caller
// that wants timings or counters registers its own implementation once at
// startup.
//
// # Usage
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnParseStart(ctx, path)
//	// ... parse ...
//	observability.Pipeline().OnParseComplete(ctx, path, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives events from the conversion pipeline.
type PipelineHooks interface {
	// Parse events
	OnParseStart(ctx context.Context, path string)
	OnParseComplete(ctx context.Context, path string, duration time.Duration, err error)

	// Translate events
	OnTranslateComplete(ctx context.Context, nodeCount, edgeCount int, duration time.Duration, err error)

	// Render events
	OnRenderComplete(ctx context.Context, size int, duration time.Duration)
}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnParseStart(context.Context, string)                                {}
func (NoopPipelineHooks) OnParseComplete(context.Context, string, time.Duration, error)       {}
func (NoopPipelineHooks) OnTranslateComplete(context.Context, int, int, time.Duration, error) {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, int, time.Duration)                {}

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks. A nil h is ignored.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Reset restores the no-op defaults.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
}
