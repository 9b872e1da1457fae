package skychart

import "math"

// ScreenPoint is a projected position in pixel coordinates.
// The zero value is the pixel origin; use Invalid (and IsValid) for the
// distinguished "not representable" sentinel returned when a location
// lies behind the visible hemisphere or below the horizon.
//
// A ScreenPoint is only meaningful while the Projector that produced it
// is unchanged; reconfiguring the projection invalidates prior points.
type ScreenPoint struct {
	X, Y float64
}

// Invalid is the sentinel ScreenPoint meaning "this location has no
// meaningful pixel position". It is the normal, expected result for
// off-hemisphere and below-horizon points; it is never an error.
var Invalid = ScreenPoint{X: math.NaN(), Y: math.NaN()}

// IsValid reports whether the point carries a usable pixel position.
func (p ScreenPoint) IsValid() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y)
}

// Pt is a convenience function to create a ScreenPoint.
func Pt(x, y float64) ScreenPoint {
	return ScreenPoint{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p ScreenPoint) Add(q ScreenPoint) ScreenPoint {
	return ScreenPoint{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p ScreenPoint) Sub(q ScreenPoint) ScreenPoint {
	return ScreenPoint{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p ScreenPoint) Mul(s float64) ScreenPoint {
	return ScreenPoint{X: p.X * s, Y: p.Y * s}
}

// Distance returns the distance between two points.
func (p ScreenPoint) Distance(q ScreenPoint) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// RotateAround returns the point rotated by angle radians around (cx, cy).
// This is the pole-angle rotation applied after every forward projection.
func (p ScreenPoint) RotateAround(cx, cy, angle float64) ScreenPoint {
	sin, cos := math.Sincos(angle)
	dx := p.X - cx
	dy := p.Y - cy
	return ScreenPoint{
		X: cx + dx*cos - dy*sin,
		Y: cy + dx*sin + dy*cos,
	}
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p ScreenPoint) Lerp(q ScreenPoint, t float64) ScreenPoint {
	return ScreenPoint{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Location is a position on the celestial sphere: longitude and latitude
// in radians in some coordinate system (right ascension/declination,
// azimuth/elevation, ecliptic or galactic longitude/latitude).
//
// Radius is an optional distance used as the stereo depth value by the
// anaglyph compositor; zero means "at the reference depth" (the screen
// plane). Projection itself ignores it.
type Location struct {
	Lon, Lat float64
	Radius   float64
}

// Loc is a convenience function to create a Location.
func Loc(lon, lat float64) Location {
	return Location{Lon: lon, Lat: lat}
}

// IsFinite reports whether both angles are finite numbers.
// Projection of a non-finite location fails with ErrInvalidInput.
func (l Location) IsFinite() bool {
	return !math.IsNaN(l.Lon) && !math.IsInf(l.Lon, 0) &&
		!math.IsNaN(l.Lat) && !math.IsInf(l.Lat, 0)
}

// AngularDistance returns the great-circle angle between two locations
// in the same coordinate system, in radians.
func (l Location) AngularDistance(m Location) float64 {
	s := math.Sin(l.Lat)*math.Sin(m.Lat) +
		math.Cos(l.Lat)*math.Cos(m.Lat)*math.Cos(l.Lon-m.Lon)
	if s > 1 {
		s = 1
	} else if s < -1 {
		s = -1
	}
	return math.Acos(s)
}

// wrapPi normalizes an angle to (-π, π].
func wrapPi(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a > math.Pi {
		a -= 2 * math.Pi
	} else if a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
