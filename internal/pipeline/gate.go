package pipeline

import (
	"context"
	"sync"
)

// Gate is a resumable pause point. Wait returns immediately while the
// gate is open and blocks while it is paused, without polling.
type Gate struct {
	mu   sync.Mutex
	open chan struct{} // closed while the gate is open
}

// NewGate creates an open Gate.
func NewGate() *Gate {
	open := make(chan struct{})
	close(open)
	return &Gate{open: open}
}

// Pause closes the gate. Waiters block until Resume.
func (g *Gate) Pause() {
	g.mu.Lock()
	defer g.mu.Unlock()
	select {
	case <-g.open:
		// Open — replace with an unclosed channel.
		g.open = make(chan struct{})
	default:
		// Already paused.
	}
}

// Resume opens the gate, releasing all waiters.
func (g *Gate) Resume() {
	g.mu.Lock()
	defer g.mu.Unlock()
	select {
	case <-g.open:
		// Already open.
	default:
		close(g.open)
	}
}

// Paused reports whether the gate is currently closed.
func (g *Gate) Paused() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	select {
	case <-g.open:
		return false
	default:
		return true
	}
}

// Wait blocks until the gate is open or the context is done.
func (g *Gate) Wait(ctx context.Context) error {
	for {
		g.mu.Lock()
		open := g.open
		g.mu.Unlock()

		select {
		case <-open:
			// The channel may have been swapped by a Pause that raced
			// with us; re-check against the current one.
			g.mu.Lock()
			current := g.open
			g.mu.Unlock()
			if current == open {
				return nil
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
