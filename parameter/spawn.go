package parameter

// Spawn placement
const (
	// SpawnAreaFactor widens the far-plane spawn zone relative to the viewport
	SpawnAreaFactor = 1.5

	// CentralSpawnChance of spawns land in the central region of the zone
	CentralSpawnChance = 0.7

	// CentralRegionFactor shrinks the zone for central spawns
	CentralRegionFactor = 0.7

	// SpawnDepthJitter varies the spawn Z around the far plane
	SpawnDepthJitter = 1.0

	// MinSpawnDelay/MaxSpawnDelay is the dormant period before activation (sec)
	MinSpawnDelay = 1.0
	MaxSpawnDelay = 5.0
)

// Trajectory selection
const (
	// DirectHitChance aims the exit target straight at the observer
	DirectHitChance = 0.01

	// NearObserverChance passes the trajectory close by the observer
	NearObserverChance = 0.05

	// NearPassMinOffset/MaxOffset is the close-pass distance band
	NearPassMinOffset = 5.0
	NearPassMaxOffset = 12.0

	// MaxLateralDeviation bounds X/Y of ordinary exit targets
	MaxLateralDeviation = 40.0

	// BehindObserverChance sends the exit target past the observer
	BehindObserverChance = 0.8

	// Exit depth bands relative to the observer
	BehindExitMinDepth = 10.0
	BehindExitMaxDepth = 60.0
	FrontExitMinDepth  = 10.0
	FrontExitMaxDepth  = 25.0

	// MaxLateralDirection caps the X/Y share of the unit direction
	MaxLateralDirection = 0.6
)

// Speed shaping
const (
	// MinBaseSpeed/MaxBaseSpeed is the initial speed draw (units/sec)
	MinBaseSpeed = 12.0
	MaxBaseSpeed = 20.0

	// SpeedDistanceFactor grows speed with trajectory length
	SpeedDistanceFactor = 150.0

	// MaxSpeedDistanceBoost caps that growth
	MaxSpeedDistanceBoost = 1.8

	// MaxSpeedMultiple sets max speed as a multiple of the base draw
	MaxSpeedMultiple = 2.5

	// MaxLateralSpeed strictly bounds X/Y speed after every tick
	MaxLateralSpeed = 40.0
)
