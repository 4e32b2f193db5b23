package parameter

// Crossing effects
const (
	// EffectCapacity bounds the FIFO effect queue
	EffectCapacity = 20

	// Ripple: viewing-plane entry
	RippleMinRadius   = 2.0
	RippleMaxRadius   = 6.0
	RippleMinLifetime = 0.8
	RippleMaxLifetime = 2.0

	// Glow: viewing-plane exit
	GlowMinRadius   = 1.5
	GlowMaxRadius   = 4.0
	GlowMinLifetime = 1.0
	GlowMaxLifetime = 2.5

	// Explosion: direct-hit trajectories
	ExplosionMinRadius   = 4.0
	ExplosionMaxRadius   = 10.0
	ExplosionMinLifetime = 0.5
	ExplosionMaxLifetime = 1.2

	// Distortion: any other classification
	DistortionMinRadius   = 3.0
	DistortionMaxRadius   = 8.0
	DistortionMinLifetime = 1.2
	DistortionMaxLifetime = 3.0

	// Intensity draw shared by all kinds
	EffectMinIntensity = 0.6
	EffectMaxIntensity = 1.8
)
