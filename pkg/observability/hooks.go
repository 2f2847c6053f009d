// Package observability provides hooks for metrics, tracing, and logging.
//
// Libraries emit events through the registered hooks; binaries decide what
// to do with them. Defaults are no-ops, so nothing is recorded unless a
// consumer registers its own implementation at startup:
//
//	func main() {
//	    observability.SetPilingHooks(&myPilingHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks around units of work:
//
//	observability.Piling().OnParseComplete(ctx, text, letters, err)
//	observability.Piling().OnPileStart(ctx, group, letters)
//	// ... pile ...
//	observability.Piling().OnPileComplete(ctx, group, steps, maxDepth, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// PilingHooks receives events from word parsing and piling runs.
type PilingHooks interface {
	// OnParseComplete records the outcome of parsing a word. letters is the
	// length of the word (sum of |exponent|), zero on error.
	OnParseComplete(ctx context.Context, text string, letters int, err error)

	// OnPileStart records the start of a piling in the named group.
	OnPileStart(ctx context.Context, group string, letters int)

	// OnPileComplete records a finished piling.
	OnPileComplete(ctx context.Context, group string, steps, maxDepth int, duration time.Duration, err error)
}

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// NoopPilingHooks is a no-op implementation of PilingHooks.
type NoopPilingHooks struct{}

func (NoopPilingHooks) OnParseComplete(context.Context, string, int, error) {}
func (NoopPilingHooks) OnPileStart(context.Context, string, int)            {}
func (NoopPilingHooks) OnPileComplete(context.Context, string, int, int, time.Duration, error) {
}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

var (
	pilingHooks PilingHooks = NoopPilingHooks{}
	cacheHooks  CacheHooks  = NoopCacheHooks{}
	hooksMu     sync.RWMutex
)

// SetPilingHooks registers custom piling hooks. A nil value is ignored.
func SetPilingHooks(h PilingHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pilingHooks = h
	}
}

// SetCacheHooks registers custom cache hooks. A nil value is ignored.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Piling returns the registered piling hooks.
func Piling() PilingHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pilingHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults. Used by tests.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pilingHooks = NoopPilingHooks{}
	cacheHooks = NoopCacheHooks{}
}
