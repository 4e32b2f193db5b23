package geom

import (
	"cosmodrift/vmath"
)

// Plane is a finite rectangle: a center, a unit normal and half extents.
// The local axes are world X/Y, which is exact for the axis-aligned viewing
// plane this engine serves.
type Plane struct {
	ID         uint64
	Position   vmath.Vec3
	Normal     vmath.Vec3
	HalfWidth  float32
	HalfHeight float32
}

// SegmentPlane tests the motion segment start→end against a finite plane.
// Near-parallel segments are rejected (no division by near-zero). The sign
// of dot(normal, direction) selects Entry vs Exit. A hit requires the
// parametric t in [0,1] and the point inside the rectangle bounds.
func SegmentPlane(start, end vmath.Vec3, plane Plane, objectID uint64, time float32) (Intersection, bool) {
	if !vmath.V3Finite(start) || !vmath.V3Finite(end) {
		return Intersection{}, false
	}

	direction := vmath.V3Sub(end, start)
	dot := vmath.V3Dot(plane.Normal, direction)

	if vmath.Abs(dot) < vmath.Epsilon {
		return Intersection{}, false
	}

	kind := Entry
	if dot < 0 {
		kind = Exit
	}

	toStart := vmath.V3Sub(start, plane.Position)
	t := -vmath.V3Dot(plane.Normal, toStart) / dot
	if t < 0 || t > 1 {
		return Intersection{}, false
	}

	point := vmath.V3Add(start, vmath.V3Scale(direction, t))

	dx := point.X - plane.Position.X
	dy := point.Y - plane.Position.Y
	if vmath.Abs(dx) > plane.HalfWidth || vmath.Abs(dy) > plane.HalfHeight {
		return Intersection{}, false
	}

	return Intersection{
		Position: point,
		Normal:   plane.Normal,
		Distance: t * vmath.V3Mag(direction),
		Kind:     kind,
		ObjectID: objectID,
		PlaneID:  plane.ID,
		Time:     time,
		Face:     FaceNone,
	}, true
}
