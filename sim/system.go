package sim

import (
	"math/rand"

	"cosmodrift/config"
	"cosmodrift/geom"
	"cosmodrift/space"
)

// System owns one object population and the space it flies through. All
// randomness comes from a single generator seeded at construction, so two
// systems with equal seeds and tuning evolve identically.
type System struct {
	Space space.Definition

	tuning  config.Tuning
	objects []*Object
	nextID  uint64
	rng     *rand.Rand
	seed    int64
	elapsed float32

	viewingPlane geom.Plane

	history *geom.History
	effects *EffectQueue
}

// NewSystem builds a system and pre-populates it with dormant objects up to
// the target count. targetCount <= 0 keeps the tuning default; viewport and
// FOV overrides apply only when positive. history and effects may be shared
// across systems; nil creates private ones.
func NewSystem(targetCount int, viewportPercent, fovDegrees float32, seed int64,
	tuning config.Tuning, history *geom.History, effects *EffectQueue) *System {

	def := space.NewDefinition()
	if viewportPercent > 0 {
		def.ViewportSizePercent = viewportPercent
	}
	if fovDegrees > 0 {
		def.FieldOfView = fovDegrees * 3.14159265 / 180.0
	}

	if targetCount > 0 {
		tuning.TargetObjectCount = targetCount
		if tuning.MaxObjectCount < targetCount {
			tuning.MaxObjectCount = targetCount * 2
		}
	}
	if history == nil {
		history = geom.NewHistory(tuning.HistoryCapacity)
	}
	if effects == nil {
		effects = NewEffectQueue(tuning.EffectCapacity)
	}

	s := &System{
		Space:   def,
		tuning:  tuning,
		nextID:  1,
		rng:     rand.New(rand.NewSource(seed)),
		seed:    seed,
		history: history,
		effects: effects,
	}
	s.viewingPlane = s.makeViewingPlane()

	for i := 0; i < tuning.TargetObjectCount; i++ {
		s.insert(s.spawnObject())
	}
	return s
}

// makeViewingPlane centers the crossing plane at the world origin, facing
// the far plane, sized to the viewport
func (s *System) makeViewingPlane() geom.Plane {
	w, h := s.Space.ViewportDimensions()
	return geom.Plane{
		ID:         1,
		Normal:     vec3Z1,
		HalfWidth:  w / 2,
		HalfHeight: h / 2,
	}
}

// Seed returns the seed the system was constructed with
func (s *System) Seed() int64 {
	return s.seed
}

// Elapsed returns the accumulated simulation time in seconds
func (s *System) Elapsed() float32 {
	return s.elapsed
}

// ViewingPlane returns the plane objects cross
func (s *System) ViewingPlane() geom.Plane {
	return s.viewingPlane
}

// History returns the intersection record this system appends to
func (s *System) History() *geom.History {
	return s.history
}

// Effects returns the effect queue this system pushes to
func (s *System) Effects() *EffectQueue {
	return s.effects
}

// ObjectByID returns the object with the given id, or false when absent.
// Never substitutes default data for an unknown id.
func (s *System) ObjectByID(id uint64) (*Object, bool) {
	for _, o := range s.objects {
		if o.ID == id {
			return o, true
		}
	}
	return nil, false
}

// ActiveCount returns the number of live, non-dormant objects of a kind
func (s *System) ActiveCount(kind Kind) int {
	n := 0
	for _, o := range s.objects {
		if o.Active && !o.Dormant() && o.Kind == kind {
			n++
		}
	}
	return n
}

// PopulationCount returns active plus pending (dormant) objects
func (s *System) PopulationCount() int {
	n := 0
	for _, o := range s.objects {
		if o.Active {
			n++
		}
	}
	return n
}

// insert appends an object, evicting the oldest by age when the hard cap
// is reached
func (s *System) insert(o *Object) {
	if len(s.objects) >= s.tuning.MaxObjectCount {
		oldest := 0
		for i, obj := range s.objects {
			if obj.Age > s.objects[oldest].Age {
				oldest = i
			}
		}
		s.objects = append(s.objects[:oldest], s.objects[oldest+1:]...)
	}
	s.objects = append(s.objects, o)
}
