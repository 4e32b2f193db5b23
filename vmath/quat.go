package vmath

import (
	"math"
)

// Quat is a float32 rotation quaternion, x y z imaginary, w real
type Quat struct {
	X, Y, Z, W float32
}

// QIdentity returns the no-rotation quaternion
func QIdentity() Quat {
	return Quat{W: 1}
}

// QFromEuler builds a quaternion from XYZ euler angles in radians,
// applied in X, Y, Z order
func QFromEuler(x, y, z float32) Quat {
	cx := float32(math.Cos(float64(x) / 2))
	sx := float32(math.Sin(float64(x) / 2))
	cy := float32(math.Cos(float64(y) / 2))
	sy := float32(math.Sin(float64(y) / 2))
	cz := float32(math.Cos(float64(z) / 2))
	sz := float32(math.Sin(float64(z) / 2))

	return Quat{
		X: sx*cy*cz - cx*sy*sz,
		Y: cx*sy*cz + sx*cy*sz,
		Z: cx*cy*sz - sx*sy*cz,
		W: cx*cy*cz + sx*sy*sz,
	}
}

// QMul composes two rotations, a then b applied as a*b
func QMul(a, b Quat) Quat {
	return Quat{
		X: a.W*b.X + a.X*b.W + a.Y*b.Z - a.Z*b.Y,
		Y: a.W*b.Y - a.X*b.Z + a.Y*b.W + a.Z*b.X,
		Z: a.W*b.Z + a.X*b.Y - a.Y*b.X + a.Z*b.W,
		W: a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
	}
}

// QConjugate inverts a unit quaternion's rotation
func QConjugate(q Quat) Quat {
	return Quat{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// QNormalize rescales to unit length; degenerate input returns identity
func QNormalize(q Quat) Quat {
	magSq := q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W
	if magSq < Epsilon {
		return QIdentity()
	}
	inv := 1.0 / Sqrt(magSq)
	return Quat{X: q.X * inv, Y: q.Y * inv, Z: q.Z * inv, W: q.W * inv}
}

// QRotate applies a unit quaternion to a vector:
// v' = v + 2 * cross(u, cross(u, v) + w*v), u the imaginary part
func QRotate(q Quat, v Vec3) Vec3 {
	u := Vec3{X: q.X, Y: q.Y, Z: q.Z}
	t := v3Cross(u, V3Add(v3Cross(u, v), V3Scale(v, q.W)))
	return V3Add(v, V3Scale(t, 2))
}

func v3Cross(a, b Vec3) Vec3 {
	return Vec3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}
