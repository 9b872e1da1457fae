package astro

import "math"

// Obliquity is the Earth's axial tilt at the J2000 epoch, in radians.
const Obliquity = 23.4392911 * math.Pi / 180

// J2000 equatorial coordinates of the galactic frame: the north
// galactic pole and the galactic center direction. Together they fix
// the equatorial↔galactic rotation.
const (
	galPoleRA    = 192.85948 * math.Pi / 180
	galPoleDec   = 27.12825 * math.Pi / 180
	galCenterRA  = 266.40499 * math.Pi / 180
	galCenterDec = -28.93617 * math.Pi / 180
)

// Galactic basis vectors expressed in the equatorial frame.
var galX, galY, galZ Vec3

func init() {
	galZ = FromSpherical(galPoleRA, galPoleDec)
	// The catalog galactic-center direction is not exactly orthogonal
	// to the pole; project it into the pole's plane before use.
	c := FromSpherical(galCenterRA, galCenterDec)
	d := c.Dot(galZ)
	galX = Vec3{X: c.X - d*galZ.X, Y: c.Y - d*galZ.Y, Z: c.Z - d*galZ.Z}.Normalized()
	galY = galZ.Cross(galX)
}

// EquatorialToEcliptic converts right ascension/declination to ecliptic
// longitude/latitude. All angles in radians.
func EquatorialToEcliptic(ra, dec float64) (lon, lat float64) {
	v := FromSpherical(ra, dec)
	sinE, cosE := math.Sincos(Obliquity)
	// Rotation about the +X axis (the equinox direction) by the
	// obliquity.
	return Vec3{
		X: v.X,
		Y: v.Y*cosE + v.Z*sinE,
		Z: -v.Y*sinE + v.Z*cosE,
	}.ToSpherical()
}

// EclipticToEquatorial converts ecliptic longitude/latitude to right
// ascension/declination. All angles in radians.
func EclipticToEquatorial(lon, lat float64) (ra, dec float64) {
	v := FromSpherical(lon, lat)
	sinE, cosE := math.Sincos(Obliquity)
	return Vec3{
		X: v.X,
		Y: v.Y*cosE - v.Z*sinE,
		Z: v.Y*sinE + v.Z*cosE,
	}.ToSpherical()
}

// EquatorialToGalactic converts right ascension/declination to galactic
// longitude/latitude. All angles in radians.
func EquatorialToGalactic(ra, dec float64) (l, b float64) {
	v := FromSpherical(ra, dec)
	return Vec3{
		X: v.Dot(galX),
		Y: v.Dot(galY),
		Z: v.Dot(galZ),
	}.ToSpherical()
}

// GalacticToEquatorial converts galactic longitude/latitude to right
// ascension/declination. All angles in radians.
func GalacticToEquatorial(l, b float64) (ra, dec float64) {
	v := FromSpherical(l, b)
	return Vec3{
		X: v.X*galX.X + v.Y*galY.X + v.Z*galZ.X,
		Y: v.X*galX.Y + v.Y*galY.Y + v.Z*galZ.Y,
		Z: v.X*galX.Z + v.Y*galY.Z + v.Z*galZ.Z,
	}.ToSpherical()
}
