package geometry

import "math"

// Vector3 represents a 3D point or vector
type Vector3 struct {
	X, Y, Z float64
}

// NewVector3 creates a new 3D vector
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// FromSpherical converts spherical coordinates to a cartesian vector.
// phi is the polar angle measured from +Z, theta the azimuth in the XY plane.
func FromSpherical(radius, theta, phi float64) Vector3 {
	return Vector3{
		X: radius * math.Cos(theta) * math.Sin(phi),
		Y: radius * math.Sin(theta) * math.Sin(phi),
		Z: radius * math.Cos(phi),
	}
}

// Length returns the magnitude of the vector
func (v Vector3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// IsFinite reports whether every component is a finite number
func (v Vector3) IsFinite() bool {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// RotateX rotates the vector around the X axis (the Y/Z plane) by angle radians
func (v Vector3) RotateX(angle float64) Vector3 {
	sin, cos := math.Sincos(angle)
	return Vector3{
		X: v.X,
		Y: v.Y*cos - v.Z*sin,
		Z: v.Y*sin + v.Z*cos,
	}
}

// RotateY rotates the vector in the X/Z plane by angle radians.
// The sign convention matches RotateX, so positive angles move +X toward +Z.
func (v Vector3) RotateY(angle float64) Vector3 {
	sin, cos := math.Sincos(angle)
	return Vector3{
		X: v.X*cos - v.Z*sin,
		Y: v.Y,
		Z: v.X*sin + v.Z*cos,
	}
}
