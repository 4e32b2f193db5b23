package vmath

// Vec3 is a float32 3D vector. Z is the depth axis: positive toward the
// far plane, negative behind the observer.
type Vec3 struct {
	X, Y, Z float32
}

func V3Add(a, b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3Sub(a, b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3Scale(v Vec3, s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func V3Dot(a, b Vec3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func V3MagSq(v Vec3) float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3Mag(v Vec3) float32 {
	return Sqrt(V3MagSq(v))
}

func V3Dist(a, b Vec3) float32 {
	return V3Mag(V3Sub(a, b))
}

// V3Normalize returns the unit vector, or the zero vector when the
// magnitude is below Epsilon
func V3Normalize(v Vec3) Vec3 {
	mag := V3Mag(v)
	if mag < Epsilon {
		return Vec3{}
	}
	inv := 1.0 / mag
	return Vec3{v.X * inv, v.Y * inv, v.Z * inv}
}

// V3Axis returns the i-th component (0=X, 1=Y, 2=Z)
func V3Axis(v Vec3, i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// V3Lateral returns the magnitude of the X/Y component, the speed
// perpendicular to the depth axis
func V3Lateral(v Vec3) float32 {
	return Sqrt(v.X*v.X + v.Y*v.Y)
}

// V3ClampLateral limits the X/Y speed to maxLateral, preserving the
// lateral direction and leaving Z untouched
func V3ClampLateral(v Vec3, maxLateral float32) Vec3 {
	lateral := V3Lateral(v)
	if lateral <= maxLateral || lateral < Epsilon {
		return v
	}
	scale := maxLateral / lateral
	return Vec3{v.X * scale, v.Y * scale, v.Z}
}

// V3Finite reports whether all components are finite
func V3Finite(v Vec3) bool {
	return IsFinite(v.X) && IsFinite(v.Y) && IsFinite(v.Z)
}
