// Package parameter holds the tuning defaults for the cosmic field. These
// are visual-tuning values, not protocol constants; config.Tuning can
// override most of them per system.
package parameter

// Population
const (
	// TargetObjectCount is the population the system self-heals toward
	TargetObjectCount = 12

	// MaxObjectCount is the hard cap; inserting beyond it evicts the oldest
	MaxObjectCount = 48

	// MaxTimeStep clamps caller-supplied dt to prevent runaway integration
	MaxTimeStep = 0.25
)

// Kind distribution weights at spawn (normalized internally)
const (
	CometWeight   = 0.6
	CrystalWeight = 0.25
	SphereWeight  = 0.15
)
