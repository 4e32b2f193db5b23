package parameter

// Lifecycle
const (
	// MaxLifetime is the default object lifespan (sec)
	MaxLifetime = 60.0

	// RemainingLifetimeFraction of MaxLifetime survives a plane crossing
	RemainingLifetimeFraction = 0.3

	// FadeInDuration ramps opacity over the first active second
	FadeInDuration = 1.0

	// FadeOutWindow scales opacity down over the final second of life
	FadeOutWindow = 1.0

	// OpacityCollapseThreshold removes a passed object once it is invisible
	OpacityCollapseThreshold = 0.01
)

// Growth and size (percent of world-relative max size)
const (
	MinTargetSize = 17.0
	MaxTargetSize = 67.0
	MaxObjectSize = 100.0
	InitialSize   = 0.01

	MinGrowthRate = 2.0
	MaxGrowthRate = 4.0

	// MinScale keeps distant objects barely visible instead of vanishing
	MinScale = 0.01

	// ScaleExponent sharpens the perspective scale response
	ScaleExponent = 1.5
)

// Acceleration
const (
	// MinAcceleration/MaxAcceleration is the per-spawn draw (units/sec²)
	MinAcceleration = 5.0
	MaxAcceleration = 30.0

	// ApproachBoostRadius is the distance band where acceleration rises
	ApproachBoostRadius = 50.0

	// ApproachBoostMax is the peak acceleration multiplier at zero distance
	ApproachBoostMax = 1.5

	// MinVisibilityTime is the minimum seconds an object must stay on screen;
	// lateral speed is reduced to honor it
	MinVisibilityTime = 0.5
)

// Rotation (radians/sec euler rates, composed per tick)
const (
	SpinBaseRate  = 0.1
	SpinRatioY    = 0.7
	SpinRatioZ    = 0.3
	CrystalSpinup = 2.0
	SphereSpinup  = 1.0
)
