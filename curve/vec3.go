package curve

import (
	"fmt"
	"math"
)

// Vec3 is a vector in 3D space. Sketch geometry itself is planar; Vec3 exists
// for arithmetic involving the normal of the plane, such as deciding which
// side of a line another vector points to.
type Vec3 struct {
	X float64
	Y float64
	Z float64
}

// Vec3Z is the unit vector along the positive z axis.
var Vec3Z = Vec3{Z: 1}

func (v Vec3) String() string {
	return fmt.Sprintf("⟨%g, %g, %g⟩", v.X, v.Y, v.Z)
}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Mul(f float64) Vec3 {
	return Vec3{v.X * f, v.Y * f, v.Z * f}
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Hypot returns the magnitude of the vector.
func (v Vec3) Hypot() float64 {
	return math.Sqrt(v.Dot(v))
}

// WithMagnitude returns a vector with the same direction as v and length m.
// The zero vector stays the zero vector.
func (v Vec3) WithMagnitude(m float64) Vec3 {
	h := v.Hypot()
	if h == 0 {
		return Vec3{}
	}
	return v.Mul(m / h)
}

// XY drops the z component.
func (v Vec3) XY() Vec2 {
	return Vec2{X: v.X, Y: v.Y}
}
