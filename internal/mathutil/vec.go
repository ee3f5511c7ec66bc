package mathutil

import "math"

// Vec3 is a point or direction in world space. Y is up; agent movement and
// most of the spatial reasoning happen on the XZ plane.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

func (v Vec3) DistanceTo(o Vec3) float64 {
	return o.Sub(v).Length()
}

// Flatten drops the vertical component, projecting onto the XZ plane.
func (v Vec3) Flatten() Vec3 {
	v.Y = 0
	return v
}

// Normalized returns the unit vector pointing the same way, or the zero
// vector when v has no usable length.
func (v Vec3) Normalized() Vec3 {
	l := v.Length()
	if l < 1e-9 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

func (v Vec3) IsZero() bool {
	return v.Length() < 1e-9
}
