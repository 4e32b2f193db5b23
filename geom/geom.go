// Package geom implements the intersection engine: segment/plane and
// segment/cube tests with face classification, and a bounded history of
// recorded crossings. All tests are pure; degenerate inputs are rejected
// before they can surface as NaN or Inf in results.
package geom

import (
	"cosmodrift/vmath"
)

// IntersectionKind classifies how a segment meets a plane
type IntersectionKind uint8

const (
	Entry IntersectionKind = iota
	Exit
	Parallel
	Contained
)

func (k IntersectionKind) String() string {
	switch k {
	case Entry:
		return "entry"
	case Exit:
		return "exit"
	case Parallel:
		return "parallel"
	case Contained:
		return "contained"
	}
	return "unknown"
}

// Cube face indices in canonical order
const (
	FaceNegX = iota
	FacePosX
	FaceNegY
	FacePosY
	FaceNegZ
	FacePosZ
	FaceNone // plane hits carry no cube face
)

// cubeFaceNormals holds the outward normal of each canonical face
var cubeFaceNormals = [6]vmath.Vec3{
	{X: -1}, {X: 1},
	{Y: -1}, {Y: 1},
	{Z: -1}, {Z: 1},
}

// Intersection is an immutable record of a recorded crossing
type Intersection struct {
	Position vmath.Vec3       `yaml:"position"`
	Normal   vmath.Vec3       `yaml:"normal"`
	Distance float32          `yaml:"distance"`
	Kind     IntersectionKind `yaml:"kind"`
	ObjectID uint64           `yaml:"object_id"`
	PlaneID  uint64           `yaml:"plane_id"`
	Time     float32          `yaml:"time"`
	Face     uint8            `yaml:"face"`
}
