// Package sim owns the object population: spawn scheduling, per-tick
// integration, growth, viewing-plane crossing and lifecycle transitions.
// One System is advanced by exactly one caller per tick.
package sim

import (
	"cosmodrift/vmath"
)

// Kind tags a simulated object. Kind-specific state lives in the payload
// for that kind; update logic switches on the tag exhaustively instead of
// downcasting.
type Kind uint8

const (
	KindComet Kind = iota
	KindCrystal
	KindSphere
	kindCount
)

func (k Kind) String() string {
	switch k {
	case KindComet:
		return "comet"
	case KindCrystal:
		return "crystal"
	case KindSphere:
		return "sphere"
	}
	return "unknown"
}

// Object is one simulated body flying from the far plane toward the
// observer. Age is signed: negative means dormant, counting up to
// activation; it becomes non-negative only by elapsing dt.
type Object struct {
	ID   uint64 `yaml:"id"`
	Kind Kind   `yaml:"kind"`

	Position vmath.Vec3 `yaml:"position"`
	Velocity vmath.Vec3 `yaml:"velocity"`

	// Acceleration is the scalar speed gain per second; MaxSpeed caps it
	Acceleration float32 `yaml:"acceleration"`
	MaxSpeed     float32 `yaml:"max_speed"`

	Rotation vmath.Quat `yaml:"rotation"`

	Size       float32 `yaml:"size"`
	TargetSize float32 `yaml:"target_size"`
	GrowthRate float32 `yaml:"growth_rate"`

	Scale   float32 `yaml:"scale"`
	Opacity float32 `yaml:"opacity"`

	Age         float32 `yaml:"age"`
	MaxLifetime float32 `yaml:"max_lifetime"`

	Active      bool `yaml:"active"`
	PassedPlane bool `yaml:"passed_plane"`

	// DirectHit marks trajectories aimed straight at the observer
	DirectHit bool `yaml:"direct_hit"`

	// DistanceRatio is the traveled share of the planned trajectory, [0,1]
	DistanceRatio float32 `yaml:"distance_ratio"`

	Color [3]float32 `yaml:"color"`

	Comet   *CometPayload   `yaml:"comet,omitempty"`
	Crystal *CrystalPayload `yaml:"crystal,omitempty"`
	Sphere  *SpherePayload  `yaml:"sphere,omitempty"`

	// Trajectory bookkeeping for DistanceRatio
	spawnPosition vmath.Vec3
	travelLength  float32

	remove bool
}

// CometPayload holds the comet-specific state, including the owned trail
type CometPayload struct {
	TailLength     float32 `yaml:"tail_length"`
	MaxTrailLength float32 `yaml:"max_trail_length"`
	GlowIntensity  float32 `yaml:"glow_intensity"`

	Trail []TrailParticle `yaml:"-"`
}

// CrystalPayload holds the crystal-specific state
type CrystalPayload struct {
	VertexCount  int     `yaml:"vertex_count"`
	EdgeEmission float32 `yaml:"edge_emission"`
	FaceOpacity  float32 `yaml:"face_opacity"`
}

// SpherePayload holds the energy-sphere-specific state
type SpherePayload struct {
	PulseRate  float32 `yaml:"pulse_rate"`
	Turbulence float32 `yaml:"turbulence"`
}

// Dormant reports whether the object is still waiting out its spawn delay
func (o *Object) Dormant() bool {
	return o.Age < 0
}
