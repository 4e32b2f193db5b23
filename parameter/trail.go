package parameter

// Trail particles (comet-kind objects only)
const (
	// TrailCapacity bounds the per-comet particle set
	TrailCapacity = 64

	// TrailSpawnFactor scales the per-tick spawn probability:
	// p = (size / MaxObjectSize) * TrailSpawnFactor
	TrailSpawnFactor = 0.3

	// TrailMinLifetime/MaxLifetime is the per-particle lifetime draw (sec)
	TrailMinLifetime = 0.4
	TrailMaxLifetime = 1.6

	// TrailVelocityFactor of the parent velocity carries into a particle
	TrailVelocityFactor = 0.8

	// TrailVelocityJitter is the random velocity spread (units/sec)
	TrailVelocityJitter = 2.0

	// TrailOffsetBehind places particles behind the object along -velocity
	TrailOffsetBehind = 1.5

	// TrailPositionJitter is the random placement spread (units)
	TrailPositionJitter = 0.5

	// TrailColorJitter is the per-channel color variation, clamped to [0,1]
	TrailColorJitter = 0.1

	// TrailMinSize/MaxSize is the particle size draw
	TrailMinSize = 0.05
	TrailMaxSize = 0.2
)

// Comet visuals
const (
	MinTrailLength    = 5.0
	MaxTrailLength    = 15.0
	MinGlowIntensity  = 1.0
	MaxGlowIntensity  = 2.2
	GlowPulseRate     = 2.0
	GlowPulseDepth    = 0.2
	PassGlowBoost     = 1.5
)
