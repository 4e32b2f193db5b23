package geom

import (
	"testing"

	"gopkg.in/yaml.v3"

	"cosmodrift/vmath"
)

func TestIntersectionYAMLRoundTrip(t *testing.T) {
	in := Intersection{
		Position: vmath.Vec3{X: 1.25, Y: -3.5, Z: 0},
		Normal:   vmath.Vec3{Z: 1},
		Distance: 4.75,
		Kind:     Exit,
		ObjectID: 42,
		PlaneID:  1,
		Time:     12.5,
		Face:     FaceNone,
	}

	data, err := yaml.Marshal(&in)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var out Intersection
	if err := yaml.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	const tol = 1e-5
	if vmath.V3Dist(out.Position, in.Position) > tol ||
		vmath.V3Dist(out.Normal, in.Normal) > tol {
		t.Errorf("Vectors diverged: %+v", out)
	}
	if vmath.Abs(out.Distance-in.Distance) > tol || vmath.Abs(out.Time-in.Time) > tol {
		t.Errorf("Scalars diverged: %+v", out)
	}
	if out.Kind != in.Kind || out.ObjectID != in.ObjectID ||
		out.PlaneID != in.PlaneID || out.Face != in.Face {
		t.Errorf("Identity fields diverged: %+v", out)
	}
}
