package geom

import (
	"cosmodrift/vmath"
)

// Cube is an axis-aligned box, optionally carrying a rotation. The slab
// intersection always runs against the axis-aligned extents; PointInCube
// honors the rotation by inverting it first.
type Cube struct {
	ID         uint64
	Position   vmath.Vec3
	Dimensions vmath.Vec3
	Rotation   vmath.Quat
	Rotated    bool
}

// Min returns the axis-aligned lower corner
func (c *Cube) Min() vmath.Vec3 {
	return vmath.Vec3{
		X: c.Position.X - c.Dimensions.X/2,
		Y: c.Position.Y - c.Dimensions.Y/2,
		Z: c.Position.Z - c.Dimensions.Z/2,
	}
}

// Max returns the axis-aligned upper corner
func (c *Cube) Max() vmath.Vec3 {
	return vmath.Vec3{
		X: c.Position.X + c.Dimensions.X/2,
		Y: c.Position.Y + c.Dimensions.Y/2,
		Z: c.Position.Z + c.Dimensions.Z/2,
	}
}

// SegmentCube runs the slab method across the three axes, tracking the
// tightest entering bound and the canonical face it belongs to. Returns the
// entry point, the entry face's outward normal, and echoes the cube id and
// timestamp.
func SegmentCube(start, end vmath.Vec3, cube Cube, time float32) (Intersection, bool) {
	if !vmath.V3Finite(start) || !vmath.V3Finite(end) {
		return Intersection{}, false
	}

	cubeMin := cube.Min()
	cubeMax := cube.Max()
	direction := vmath.V3Sub(end, start)

	tMin := float32(0)
	tMax := float32(1)
	entryFace := FaceNegX

	for axis := 0; axis < 3; axis++ {
		d := vmath.V3Axis(direction, axis)
		s := vmath.V3Axis(start, axis)
		lo := vmath.V3Axis(cubeMin, axis)
		hi := vmath.V3Axis(cubeMax, axis)

		if vmath.Abs(d) < vmath.Epsilon {
			// Axis-parallel segment outside the slab can never enter
			if s < lo || s > hi {
				return Intersection{}, false
			}
			continue
		}

		invD := 1.0 / d
		t1 := (lo - s) * invD
		t2 := (hi - s) * invD

		if t1 > t2 {
			// Negative direction: entry is through the opposite face
			t1, t2 = t2, t1
			if t1 > tMin {
				entryFace = axis*2 + 1 // +X, +Y or +Z
			}
		} else {
			if t1 > tMin {
				entryFace = axis * 2 // -X, -Y or -Z
			}
		}

		tMin = vmath.Max(tMin, t1)
		tMax = vmath.Min(tMax, t2)
		if tMin > tMax {
			return Intersection{}, false
		}
	}

	if tMin < 0 || tMin > 1 {
		return Intersection{}, false
	}

	point := vmath.V3Add(start, vmath.V3Scale(direction, tMin))
	normal := cubeFaceNormals[entryFace]

	return Intersection{
		Position: point,
		Normal:   normal,
		Distance: tMin * vmath.V3Mag(direction),
		Kind:     Entry,
		ObjectID: 0,
		PlaneID:  cube.ID,
		Time:     time,
		Face:     uint8(entryFace),
	}, true
}

// PointInCube reports whether a point lies inside the cube. Rotated cubes
// transform the point into local space first; axis-aligned cubes test the
// world-space bounds directly.
func PointInCube(cube Cube, point vmath.Vec3) bool {
	if !vmath.V3Finite(point) {
		return false
	}

	local := vmath.V3Sub(point, cube.Position)
	if cube.Rotated {
		local = vmath.QRotate(vmath.QConjugate(cube.Rotation), local)
	}

	return vmath.Abs(local.X) <= cube.Dimensions.X/2 &&
		vmath.Abs(local.Y) <= cube.Dimensions.Y/2 &&
		vmath.Abs(local.Z) <= cube.Dimensions.Z/2
}
