package service

import (
	"context"
	"sync"
)

// ExportedInflightGuard is an exported alias so _test packages can test the guard.
type ExportedInflightGuard = inflightGuard

// ─────────────────────────────────────────────────────────────
// inflightGuard — prevents concurrent firings of the same reminder
// ─────────────────────────────────────────────────────────────
//
// The minute sweep and the cron schedule run on separate goroutines;
// a slow notification can still be in flight when the next tick
// arrives. The guard makes the second firing a no-op instead of a
// duplicate notification.

type inflightGuard struct {
	mu      sync.Mutex
	running map[string]struct{}
	wg      sync.WaitGroup
}

// TryLock attempts to mark id as firing. Returns false if a firing for
// that id is already in flight.
func (g *inflightGuard) TryLock(id string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.running == nil {
		g.running = make(map[string]struct{})
	}
	if _, ok := g.running[id]; ok {
		return false
	}
	g.running[id] = struct{}{}
	g.wg.Add(1)
	return true
}

// Unlock marks the firing as finished. Must be called after TryLock returns true.
func (g *inflightGuard) Unlock(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.running, id)
	g.wg.Done()
}

// WaitAll blocks until all in-flight firings complete or ctx is cancelled.
func (g *inflightGuard) WaitAll(ctx context.Context) {
	done := make(chan struct{})
	go func() {
		g.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
	}
}
