package geom

import (
	"math"
	"testing"

	"cosmodrift/vmath"
)

func viewingPlane() Plane {
	return Plane{
		ID:         1,
		Position:   vmath.Vec3{},
		Normal:     vmath.Vec3{Z: 1},
		HalfWidth:  10,
		HalfHeight: 10,
	}
}

func TestSegmentPlaneEntryMidpoint(t *testing.T) {
	start := vmath.Vec3{Z: -1}
	end := vmath.Vec3{Z: 1}

	hit, ok := SegmentPlane(start, end, viewingPlane(), 42, 3.5)
	if !ok {
		t.Fatal("Expected intersection")
	}
	if hit.Kind != Entry {
		t.Errorf("Expected Entry, got %v", hit.Kind)
	}
	if vmath.V3Mag(hit.Position) > 1e-5 {
		t.Errorf("Expected origin hit, got %+v", hit.Position)
	}
	if vmath.Abs(hit.Distance-1) > 1e-5 {
		t.Errorf("Expected distance 1 (t=0.5 of length 2), got %v", hit.Distance)
	}
	if hit.ObjectID != 42 || hit.PlaneID != 1 || hit.Time != 3.5 {
		t.Errorf("Metadata not echoed: %+v", hit)
	}
}

func TestSegmentPlaneExitClassification(t *testing.T) {
	// Moving against the normal: dot < 0 selects Exit
	hit, ok := SegmentPlane(vmath.Vec3{Z: 1}, vmath.Vec3{Z: -1}, viewingPlane(), 7, 0)
	if !ok {
		t.Fatal("Expected intersection")
	}
	if hit.Kind != Exit {
		t.Errorf("Expected Exit, got %v", hit.Kind)
	}
}

func TestSegmentPlaneSameSide(t *testing.T) {
	if _, ok := SegmentPlane(vmath.Vec3{Z: 1}, vmath.Vec3{Z: 2}, viewingPlane(), 0, 0); ok {
		t.Error("Segment entirely on one side must not intersect")
	}
}

func TestSegmentPlaneParallel(t *testing.T) {
	if _, ok := SegmentPlane(vmath.Vec3{X: -5, Z: 1}, vmath.Vec3{X: 5, Z: 1}, viewingPlane(), 0, 0); ok {
		t.Error("Parallel segment must not intersect")
	}
}

func TestSegmentPlaneOutsideRectangle(t *testing.T) {
	if _, ok := SegmentPlane(vmath.Vec3{X: 50, Z: -1}, vmath.Vec3{X: 50, Z: 1}, viewingPlane(), 0, 0); ok {
		t.Error("Hit outside the plane half-extents must be rejected")
	}
}

func TestSegmentPlaneNaNInput(t *testing.T) {
	nan := float32(math.NaN())
	if _, ok := SegmentPlane(vmath.Vec3{Z: nan}, vmath.Vec3{Z: 1}, viewingPlane(), 0, 0); ok {
		t.Error("NaN input must be rejected")
	}
}

func unitCube() Cube {
	return Cube{
		ID:         9,
		Position:   vmath.Vec3{},
		Dimensions: vmath.Vec3{X: 2, Y: 2, Z: 2},
	}
}

func TestSegmentCubeEntryFaces(t *testing.T) {
	cases := []struct {
		name       string
		start, end vmath.Vec3
		wantFace   uint8
		wantNormal vmath.Vec3
	}{
		{"from -X", vmath.Vec3{X: -5}, vmath.Vec3{X: 5}, FaceNegX, vmath.Vec3{X: -1}},
		{"from +X", vmath.Vec3{X: 5}, vmath.Vec3{X: -5}, FacePosX, vmath.Vec3{X: 1}},
		{"from -Y", vmath.Vec3{Y: -5}, vmath.Vec3{Y: 5}, FaceNegY, vmath.Vec3{Y: -1}},
		{"from +Y", vmath.Vec3{Y: 5}, vmath.Vec3{Y: -5}, FacePosY, vmath.Vec3{Y: 1}},
		{"from -Z", vmath.Vec3{Z: -5}, vmath.Vec3{Z: 5}, FaceNegZ, vmath.Vec3{Z: -1}},
		{"from +Z", vmath.Vec3{Z: 5}, vmath.Vec3{Z: -5}, FacePosZ, vmath.Vec3{Z: 1}},
	}

	for _, tc := range cases {
		hit, ok := SegmentCube(tc.start, tc.end, unitCube(), 1.0)
		if !ok {
			t.Errorf("%s: expected intersection", tc.name)
			continue
		}
		if hit.Face != tc.wantFace {
			t.Errorf("%s: face got %d want %d", tc.name, hit.Face, tc.wantFace)
		}
		if hit.Normal != tc.wantNormal {
			t.Errorf("%s: normal got %+v want %+v", tc.name, hit.Normal, tc.wantNormal)
		}
		if hit.PlaneID != 9 || hit.Time != 1.0 {
			t.Errorf("%s: cube id/time not echoed: %+v", tc.name, hit)
		}
		// Entry point must sit on the cube surface
		if vmath.Abs(vmath.Abs(vmath.V3Dot(hit.Position, tc.wantNormal))-1) > 1e-5 {
			t.Errorf("%s: entry point %+v not on entry face", tc.name, hit.Position)
		}
	}
}

func TestSegmentCubeMiss(t *testing.T) {
	// Parallel to X outside the Y slab
	if _, ok := SegmentCube(vmath.Vec3{X: -5, Y: 3}, vmath.Vec3{X: 5, Y: 3}, unitCube(), 0); ok {
		t.Error("Axis-parallel segment outside slab must miss")
	}
	// Diagonal passing wide of the cube
	if _, ok := SegmentCube(vmath.Vec3{X: -5, Y: 5}, vmath.Vec3{X: 5, Y: 5}, unitCube(), 0); ok {
		t.Error("Offset segment must miss")
	}
	// Segment ending before the cube
	if _, ok := SegmentCube(vmath.Vec3{X: -10}, vmath.Vec3{X: -5}, unitCube(), 0); ok {
		t.Error("Segment stopping short must miss")
	}
}

func TestSegmentCubeFiniteOutput(t *testing.T) {
	// Oblique hit must produce finite position and normal
	hit, ok := SegmentCube(vmath.Vec3{X: -3, Y: -0.5, Z: -0.25}, vmath.Vec3{X: 3, Y: 0.5, Z: 0.25}, unitCube(), 0)
	if !ok {
		t.Fatal("Expected intersection")
	}
	if !vmath.V3Finite(hit.Position) || !vmath.V3Finite(hit.Normal) {
		t.Errorf("Non-finite output: %+v", hit)
	}
}

func TestPointInCube(t *testing.T) {
	c := unitCube()
	if !PointInCube(c, vmath.Vec3{X: 0.5, Y: -0.5, Z: 0.9}) {
		t.Error("Interior point reported outside")
	}
	if PointInCube(c, vmath.Vec3{X: 1.5}) {
		t.Error("Exterior point reported inside")
	}
}

func TestPointInRotatedCube(t *testing.T) {
	// Cube rotated 45 degrees around Z: the world point (1.2, 0, 0) is
	// outside the axis-aligned box corners but inside the rotated one
	c := Cube{
		Position:   vmath.Vec3{},
		Dimensions: vmath.Vec3{X: 2, Y: 2, Z: 2},
		Rotation:   vmath.QFromEuler(0, 0, float32(math.Pi/4)),
		Rotated:    true,
	}
	if !PointInCube(c, vmath.Vec3{X: 1.2}) {
		t.Error("Point along rotated diagonal reported outside")
	}
	if PointInCube(c, vmath.Vec3{X: 1.2, Y: 1.2}) {
		t.Error("Former corner region must now be outside")
	}
}
