package services

import (
	"sync/atomic"
	"time"
)

// Generation counts schema lifecycle changes for one store. SchemaService
// bumps it after every create, drop, seed or reset; MedicationService copies
// it into CatalogStats so a version issued before a reset never matches one
// issued after, even when row counts and ids line up again.
//
// A nil *Generation is valid and always reports zero.
type Generation struct {
	n atomic.Uint64
}

// NewGeneration returns a counter seeded from the wall clock, so versions
// handed out by a previous process do not collide with this one's.
func NewGeneration() *Generation {
	g := &Generation{}
	g.n.Store(uint64(time.Now().UnixNano()))
	return g
}

// Bump advances the counter.
func (g *Generation) Bump() {
	if g != nil {
		g.n.Add(1)
	}
}

// Current returns the counter value.
func (g *Generation) Current() uint64 {
	if g == nil {
		return 0
	}
	return g.n.Load()
}
