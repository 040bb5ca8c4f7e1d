// Package observability provides hooks for metrics and tracing.
//
// This package enables optional instrumentation without tying the library
// packages to a backend. Consumers register hooks at startup and receive
// events about genome mutation, body generation, rendering, and cache use.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, never by libraries, so there are no import
// cycles and the core packages stay free of observability frameworks.
//
// # OpenTelemetry
//
// [OTelHooks] implements both interfaces on top of an OpenTelemetry meter,
// and [SetupStdoutMetrics] installs an SDK meter provider that prints the
// collected metrics when it shuts down:
//
//	shutdown, err := observability.SetupStdoutMetrics(os.Stderr, version)
//	hooks, err := observability.NewOTelHooks(nil)
//	observability.SetPipelineHooks(hooks)
//	observability.SetCacheHooks(hooks)
//	defer shutdown(ctx)
//
// # Usage
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnGenerateStart(ctx, g.NodeCount(), g.EdgeCount())
//	// ... generate ...
//	observability.Pipeline().OnGenerateComplete(ctx, vertices, triangles, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the generation pipeline.
type PipelineHooks interface {
	// Mutate events, emitted once per grow or descendants request.
	OnMutateStart(ctx context.Context, nodeCount int)
	OnMutateComplete(ctx context.Context, produced int, duration time.Duration, err error)

	// Generate events, emitted once per body synthesis.
	OnGenerateStart(ctx context.Context, nodeCount, edgeCount int)
	OnGenerateComplete(ctx context.Context, vertices, triangles int, duration time.Duration, err error)

	// Render events
	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnMutateStart(context.Context, int)                                 {}
func (NoopPipelineHooks) OnMutateComplete(context.Context, int, time.Duration, error)        {}
func (NoopPipelineHooks) OnGenerateStart(context.Context, int, int)                          {}
func (NoopPipelineHooks) OnGenerateComplete(context.Context, int, int, time.Duration, error) {}
func (NoopPipelineHooks) OnRenderStart(context.Context, []string)                            {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error)   {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	cacheHooks    CacheHooks    = NoopCacheHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	cacheHooks = NoopCacheHooks{}
}
