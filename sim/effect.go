package sim

import (
	"sync"

	"cosmodrift/vmath"
)

// EffectKind selects the visual treatment of a crossing event
type EffectKind uint8

const (
	EffectRipple EffectKind = iota
	EffectExplosion
	EffectGlow
	EffectDistortion
)

func (k EffectKind) String() string {
	switch k {
	case EffectRipple:
		return "ripple"
	case EffectExplosion:
		return "explosion"
	case EffectGlow:
		return "glow"
	case EffectDistortion:
		return "distortion"
	}
	return "unknown"
}

// Effect is a transient visual emitted at a plane crossing
type Effect struct {
	Position  vmath.Vec3
	Color     [3]float32
	Radius    float32
	Lifetime  float32
	Age       float32
	Intensity float32
	Kind      EffectKind
}

// Expired reports whether the effect has outlived its lifetime
func (e *Effect) Expired() bool {
	return e.Age >= e.Lifetime
}

// EffectQueue is a capacity-bounded FIFO of live effects, aged and pruned
// every tick. When full, the oldest effect is evicted to admit a new one.
type EffectQueue struct {
	mu       sync.Mutex
	effects  []Effect
	capacity int
}

// NewEffectQueue creates a queue; non-positive capacity falls back to 20
func NewEffectQueue(capacity int) *EffectQueue {
	if capacity <= 0 {
		capacity = 20
	}
	return &EffectQueue{
		effects:  make([]Effect, 0, capacity),
		capacity: capacity,
	}
}

// Push admits an effect, evicting the oldest when at capacity
func (q *EffectQueue) Push(e Effect) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.effects) >= q.capacity {
		copy(q.effects, q.effects[1:])
		q.effects = q.effects[:len(q.effects)-1]
	}
	q.effects = append(q.effects, e)
}

// Update ages every effect by dt, removes expired ones, and returns a
// snapshot of the survivors
func (q *EffectQueue) Update(dt float32) []Effect {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !vmath.IsFinite(dt) || dt < 0 {
		dt = 0
	}

	alive := q.effects[:0]
	for i := range q.effects {
		q.effects[i].Age += dt
		if !q.effects[i].Expired() {
			alive = append(alive, q.effects[i])
		}
	}
	q.effects = alive

	return q.snapshotLocked()
}

// Snapshot returns a copy of the live effects without aging them
func (q *EffectQueue) Snapshot() []Effect {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.snapshotLocked()
}

// Len returns the number of live effects
func (q *EffectQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.effects)
}

func (q *EffectQueue) snapshotLocked() []Effect {
	out := make([]Effect, len(q.effects))
	copy(out, q.effects)
	return out
}
