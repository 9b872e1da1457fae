// Package astro provides the spherical rotation math behind the chart's
// coordinate-system conversions: equatorial, ecliptic, galactic and
// horizontal frames.
//
// Everything here is a pure rotation at a fixed epoch (J2000).
// Ephemeris-grade corrections such as precession, nutation, aberration
// and refraction are the responsibility of external astronomy
// collaborators; this package only re-expresses a direction already
// resolved by them in a different frame.
package astro

import "math"

// Vec3 is a unit direction vector in some reference frame.
type Vec3 struct {
	X, Y, Z float64
}

// FromSpherical converts a longitude/latitude pair in radians to a unit
// vector. Longitude is measured in the XY plane from +X toward +Y;
// latitude from the plane toward +Z.
func FromSpherical(lon, lat float64) Vec3 {
	sinLon, cosLon := math.Sincos(lon)
	sinLat, cosLat := math.Sincos(lat)
	return Vec3{
		X: cosLat * cosLon,
		Y: cosLat * sinLon,
		Z: sinLat,
	}
}

// ToSpherical converts a vector back to a longitude in [0, 2π) and a
// latitude in [-π/2, π/2].
func (v Vec3) ToSpherical() (lon, lat float64) {
	lon = math.Atan2(v.Y, v.X)
	if lon < 0 {
		lon += 2 * math.Pi
	}
	r := v.Norm()
	if r == 0 {
		return 0, 0
	}
	lat = math.Asin(clamp1(v.Z / r))
	return lon, lat
}

// Norm returns the magnitude of the vector.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(u Vec3) float64 {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z
}

// Cross returns the cross product v × u.
func (v Vec3) Cross(u Vec3) Vec3 {
	return Vec3{
		X: v.Y*u.Z - v.Z*u.Y,
		Y: v.Z*u.X - v.X*u.Z,
		Z: v.X*u.Y - v.Y*u.X,
	}
}

// Normalized returns a unit vector in the same direction.
func (v Vec3) Normalized() Vec3 {
	n := v.Norm()
	if n == 0 {
		return Vec3{}
	}
	return Vec3{X: v.X / n, Y: v.Y / n, Z: v.Z / n}
}

// clamp1 clamps to [-1, 1], absorbing floating point drift before
// inverse trigonometric calls.
func clamp1(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}
