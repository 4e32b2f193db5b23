// Package space defines the world volume and the scalar perspective model.
// Visibility, scale and transparency are tuned falloff curves, not a
// projection matrix; the piecewise breakpoints are part of the contract.
package space

import (
	"math"

	"cosmodrift/vmath"
)

// Perspective curve breakpoints. These shape the visual transition and must
// not drift with tuning changes.
const (
	// MaxPerspectiveDistance normalizes observer distance for scale/fade
	MaxPerspectiveDistance = 200.0

	// NearRadius is the distance under which proximity blending applies
	NearRadius = 10.0

	// BehindObserverDepth is how far behind the observer an object stays
	// visible before culling
	BehindObserverDepth = -30.0

	// AlwaysVisibleRadius around the observer bypasses the frustum test
	AlwaysVisibleRadius = 5.0

	// FarPlaneTolerance keeps freshly spawned objects on the far plane visible
	FarPlaneTolerance = 1.0

	// FrustumExpansion widens the viewport test by 1.5x so edge objects
	// do not pop in and out
	FrustumExpansion = 0.75 // half-extent factor, 1.5x of the 0.5 half

	// FadeStartRatio is the normalized distance where the far fade begins
	FadeStartRatio = 0.75
)

// Definition holds the world bounds, observer and viewport geometry
type Definition struct {
	MinX, MaxX float32
	MinY, MaxY float32
	MinZ, MaxZ float32

	// ViewportSizePercent is the fraction of the world the viewport covers
	ViewportSizePercent float32

	ObserverPosition vmath.Vec3

	// FieldOfView in radians
	FieldOfView float32
}

// NewDefinition returns the default world: a ±100 cube, a 25% viewport and
// an observer 25 units in front of the viewing plane
func NewDefinition() Definition {
	return Definition{
		MinX: -100, MaxX: 100,
		MinY: -100, MaxY: 100,
		MinZ: -100, MaxZ: 100,
		ViewportSizePercent: 25.0,
		ObserverPosition:    vmath.Vec3{X: 0, Y: 0, Z: -25},
		FieldOfView:         float32(math.Pi / 3),
	}
}

// Dimensions returns the world extents per axis
func (d *Definition) Dimensions() vmath.Vec3 {
	return vmath.Vec3{
		X: d.MaxX - d.MinX,
		Y: d.MaxY - d.MinY,
		Z: d.MaxZ - d.MinZ,
	}
}

// ViewportDimensions returns the viewport width and height in world units
func (d *Definition) ViewportDimensions() (width, height float32) {
	dims := d.Dimensions()
	factor := d.ViewportSizePercent / 100.0
	return dims.X * factor, dims.Y * factor
}

// InViewFrustum reports whether a position is on-screen under the scalar
// approximation. Spawn positions on the far plane are always visible.
func (d *Definition) InViewFrustum(position vmath.Vec3) bool {
	if !vmath.V3Finite(position) {
		return false
	}

	// Far-plane spawns must never be invisible
	if vmath.Abs(position.Z-d.MaxZ) < FarPlaneTolerance {
		return true
	}

	toPoint := vmath.V3Sub(position, d.ObserverPosition)

	if toPoint.Z < BehindObserverDepth {
		return false
	}

	if vmath.V3Mag(toPoint) < AlwaysVisibleRadius {
		return true
	}

	vpWidth, vpHeight := d.ViewportDimensions()
	halfWidth := vpWidth * FrustumExpansion
	halfHeight := vpHeight * FrustumExpansion

	// Guard the division for objects near the observer plane
	zDist := vmath.Max(vmath.Abs(toPoint.Z), 0.01)

	// Near objects get a wider acceptance window
	expand := 1.0 + (1.0/zDist)*5.0

	projectedX := toPoint.X / zDist * d.MaxZ
	projectedY := toPoint.Y / zDist * d.MaxZ

	return vmath.Abs(projectedX) <= halfWidth*expand &&
		vmath.Abs(projectedY) <= halfHeight*expand
}

// ScaleFactor returns the pseudo-perspective size multiplier for a position.
// Base falloff is linear in normalized distance; inside NearRadius a
// proximity boost up to 1.4x avoids visual snapping at the observer.
func (d *Definition) ScaleFactor(position vmath.Vec3) float32 {
	distance := vmath.V3Dist(position, d.ObserverPosition)
	normalized := vmath.Min(distance/MaxPerspectiveDistance, 1.0)
	scale := 1.0 - normalized*0.8

	if distance < NearRadius {
		closeFactor := 1.1 + (1.0-distance/NearRadius)*0.3
		return scale * closeFactor
	}
	return scale
}

// TransparencyFactor returns the distance-based opacity for a position.
// Near the observer it ramps 0.4→0.8, the mid range is opaque, and beyond
// 75% of the normalized range it fades linearly to zero.
func (d *Definition) TransparencyFactor(position vmath.Vec3) float32 {
	distance := vmath.V3Dist(position, d.ObserverPosition)
	normalized := vmath.Min(distance/MaxPerspectiveDistance, 1.0)

	if distance < NearRadius {
		return 0.4 + (distance/NearRadius)*0.4
	}
	if normalized < FadeStartRatio {
		return 1.0
	}
	return vmath.Clamp01((1.0 - normalized) * 4.0)
}
