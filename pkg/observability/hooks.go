// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about make/remake calls, engine activation
// batches and artifact cache operations.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetEngineHooks(&myEngineHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Engine().OnActivate(len(batch))
package observability

import (
	"context"
	"sync"
)

// =============================================================================
// Maker Hooks
// =============================================================================

// MakerHooks receives events from make and remake entry points.
type MakerHooks interface {
	// OnMake is called once per entry point invocation. produced is the
	// number of constraints submitted; it is zero when err is non-nil.
	OnMake(target string, produced int, remake bool, err error)

	// OnTeardown is called when an element's stored constraints are released.
	OnTeardown(target string, released int)
}

// =============================================================================
// Engine Hooks
// =============================================================================

// EngineHooks receives events from the activation engine.
type EngineHooks interface {
	// OnActivate records a successfully installed batch.
	OnActivate(count int)

	// OnDeactivate records an uninstalled batch.
	OnDeactivate(count int)

	// OnReject records a batch refused by validation.
	OnReject(err error)
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

// NoopMakerHooks is a no-op implementation of MakerHooks.
type NoopMakerHooks struct{}

func (NoopMakerHooks) OnMake(string, int, bool, error) {}
func (NoopMakerHooks) OnTeardown(string, int)          {}

// NoopEngineHooks is a no-op implementation of EngineHooks.
type NoopEngineHooks struct{}

func (NoopEngineHooks) OnActivate(int)   {}
func (NoopEngineHooks) OnDeactivate(int) {}
func (NoopEngineHooks) OnReject(error)   {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	makerHooks  MakerHooks  = NoopMakerHooks{}
	engineHooks EngineHooks = NoopEngineHooks{}
	cacheHooks  CacheHooks  = NoopCacheHooks{}
	hooksMu     sync.RWMutex
)

// SetMakerHooks registers custom maker hooks.
// This should be called once at application startup.
func SetMakerHooks(h MakerHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		makerHooks = h
	}
}

// SetEngineHooks registers custom engine hooks.
// This should be called once at application startup.
func SetEngineHooks(h EngineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		engineHooks = h
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

// Maker returns the registered maker hooks.
func Maker() MakerHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return makerHooks
}

// Engine returns the registered engine hooks.
func Engine() EngineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return engineHooks
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
	makerHooks = NoopMakerHooks{}
	engineHooks = NoopEngineHooks{}
	cacheHooks = NoopCacheHooks{}
}
