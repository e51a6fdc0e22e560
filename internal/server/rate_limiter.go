package server

import (
	"sync"
	"time"
)

// generationLimiter throttles the generation endpoints per client key
// with a fixed window. Windows that have fully elapsed are pruned
// opportunistically so the key map does not grow with client churn.
type generationLimiter struct {
	limit  int
	window time.Duration

	mu        sync.Mutex
	windows   map[string]*windowCount
	lastPrune time.Time
}

type windowCount struct {
	openedAt time.Time
	hits     int
}

func newGenerationLimiter(limit int, window time.Duration) *generationLimiter {
	return &generationLimiter{
		limit:   limit,
		window:  window,
		windows: make(map[string]*windowCount),
	}
}

// Allow records one request for key and reports whether it fits within
// the current window. An empty key is never allowed.
func (g *generationLimiter) Allow(key string) bool {
	if key == "" {
		return false
	}

	now := time.Now().UTC()
	g.mu.Lock()
	defer g.mu.Unlock()

	g.pruneLocked(now)

	w := g.windows[key]
	if w == nil || now.Sub(w.openedAt) > g.window {
		w = &windowCount{openedAt: now}
		g.windows[key] = w
	}
	if w.hits >= g.limit {
		return false
	}
	w.hits++
	return true
}

// pruneLocked drops expired windows, at most once per window length.
func (g *generationLimiter) pruneLocked(now time.Time) {
	if now.Sub(g.lastPrune) < g.window {
		return
	}
	for key, w := range g.windows {
		if now.Sub(w.openedAt) > g.window {
			delete(g.windows, key)
		}
	}
	g.lastPrune = now
}
