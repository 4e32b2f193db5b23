package sim

import (
	"testing"

	"cosmodrift/vmath"
)

func TestEffectQueueEvictsOldestAtCapacity(t *testing.T) {
	q := NewEffectQueue(20)

	for i := 0; i < 30; i++ {
		q.Push(Effect{Lifetime: 10, Radius: float32(i)})
	}
	if got := q.Len(); got != 20 {
		t.Fatalf("Queue length: got %d want 20", got)
	}

	snap := q.Snapshot()
	if snap[0].Radius != 10 {
		t.Errorf("Oldest surviving effect: got radius %v want 10", snap[0].Radius)
	}
	if snap[19].Radius != 29 {
		t.Errorf("Newest effect: got radius %v want 29", snap[19].Radius)
	}
}

func TestEffectQueueAgesAndPrunes(t *testing.T) {
	q := NewEffectQueue(20)
	q.Push(Effect{Lifetime: 0.5})
	q.Push(Effect{Lifetime: 2.0})

	alive := q.Update(1.0)
	if len(alive) != 1 {
		t.Fatalf("Survivors after 1s: got %d want 1", len(alive))
	}
	if alive[0].Lifetime != 2.0 {
		t.Errorf("Wrong effect survived: %+v", alive[0])
	}
	if vmath.Abs(alive[0].Age-1.0) > 1e-5 {
		t.Errorf("Survivor age: got %v want 1.0", alive[0].Age)
	}
}

func TestEffectQueueIgnoresBadDt(t *testing.T) {
	q := NewEffectQueue(20)
	q.Push(Effect{Lifetime: 1})

	if got := len(q.Update(nan32())); got != 1 {
		t.Errorf("NaN dt must not age effects, got %d survivors", got)
	}
	if got := len(q.Update(-5)); got != 1 {
		t.Errorf("Negative dt must not age effects, got %d survivors", got)
	}
}

func TestEffectQueueDefaultCapacity(t *testing.T) {
	q := NewEffectQueue(0)
	for i := 0; i < 40; i++ {
		q.Push(Effect{Lifetime: 10})
	}
	if got := q.Len(); got != 20 {
		t.Errorf("Default capacity: got %d want 20", got)
	}
}
