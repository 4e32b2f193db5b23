// Package registry tracks live simulation systems behind opaque handles.
// A Registry is a plain value owned by its caller; nothing here is global,
// so independent registries never share state.
package registry

import (
	"fmt"
	"log"
	"sync"

	"cosmodrift/config"
	"cosmodrift/geom"
	"cosmodrift/sim"
)

// Handle identifies a registered system. Handles start at 1; the zero
// handle is never valid, and freed handles are never reused.
type Handle uint64

// entry pairs a system with its update lock. The per-entry mutex keeps
// concurrent UpdateSystem calls on different systems independent.
type entry struct {
	mu     sync.Mutex
	system *sim.System
}

// Registry owns a set of systems plus the intersection history and effect
// queue they share.
type Registry struct {
	mu         sync.RWMutex
	nextHandle Handle
	entries    map[Handle]*entry

	tuning  config.Tuning
	history *geom.History
	effects *sim.EffectQueue
}

// New creates an empty registry with the given tuning
func New(tuning config.Tuning) *Registry {
	return &Registry{
		nextHandle: 1,
		entries:    make(map[Handle]*entry),
		tuning:     tuning,
		history:    geom.NewHistory(tuning.HistoryCapacity),
		effects:    sim.NewEffectQueue(tuning.EffectCapacity),
	}
}

// CreateSystem builds a system and returns its handle. targetCount <= 0
// keeps the tuning default; viewportPercent and fovDegrees override the
// world defaults only when positive.
func (r *Registry) CreateSystem(targetCount int, viewportPercent, fovDegrees float32, seed int64) Handle {
	system := sim.NewSystem(targetCount, viewportPercent, fovDegrees, seed,
		r.tuning, r.history, r.effects)

	r.mu.Lock()
	defer r.mu.Unlock()

	h := r.nextHandle
	r.nextHandle++
	r.entries[h] = &entry{system: system}
	return h
}

// lookup resolves a handle under the read lock
func (r *Registry) lookup(h Handle) (*entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[h]
	return e, ok
}

// UpdateSystem advances one system by dt. A tick already in progress on
// the same system is not waited for; the overlapping call is skipped so a
// slow tick cannot stack callers behind it.
func (r *Registry) UpdateSystem(h Handle, dt float32) error {
	e, ok := r.lookup(h)
	if !ok {
		return fmt.Errorf("unknown system handle %d", h)
	}

	if !e.mu.TryLock() {
		log.Printf("System %d update skipped: previous tick still running", h)
		return nil
	}
	defer e.mu.Unlock()

	return e.system.Update(dt)
}

// VisibleObjects extracts the render frame of one system
func (r *Registry) VisibleObjects(h Handle) (*sim.FrameData, error) {
	e, ok := r.lookup(h)
	if !ok {
		return nil, fmt.Errorf("unknown system handle %d", h)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.system.VisibleObjects(), nil
}

// ActiveCount reports the live, non-dormant objects of one kind
func (r *Registry) ActiveCount(h Handle, kind sim.Kind) (int, error) {
	e, ok := r.lookup(h)
	if !ok {
		return 0, fmt.Errorf("unknown system handle %d", h)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.system.ActiveCount(kind), nil
}

// System returns the registered system for direct inspection
func (r *Registry) System(h Handle) (*sim.System, bool) {
	e, ok := r.lookup(h)
	if !ok {
		return nil, false
	}
	return e.system, true
}

// RecentIntersections returns up to max recorded crossings, newest first
func (r *Registry) RecentIntersections(max int) []geom.Intersection {
	return r.history.Recent(max)
}

// UpdateEffects ages the shared effect queue and returns the survivors
func (r *Registry) UpdateEffects(dt float32) []sim.Effect {
	return r.effects.Update(dt)
}

// Effects returns the live effects without aging them
func (r *Registry) Effects() []sim.Effect {
	return r.effects.Snapshot()
}

// FreeSystem removes a system permanently. Its handle never becomes valid
// again. Freeing an unknown handle reports false.
func (r *Registry) FreeSystem(h Handle) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[h]; !ok {
		return false
	}
	delete(r.entries, h)
	return true
}

// Len returns the number of live systems
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
