package astro

import (
	"math"
	"time"
)

// EquatorialToHorizontal converts right ascension/declination to
// azimuth/elevation for an observer at the given geodetic latitude and
// local sidereal time. All angles in radians. Azimuth is measured from
// north through east; elevation from the horizon toward the zenith.
func EquatorialToHorizontal(ra, dec, lat, lst float64) (az, el float64) {
	ha := lst - ra
	sinHA, cosHA := math.Sincos(ha)
	sinDec, cosDec := math.Sincos(dec)
	sinLat, cosLat := math.Sincos(lat)

	el = math.Asin(clamp1(sinDec*sinLat + cosDec*cosLat*cosHA))
	az = math.Atan2(-cosDec*sinHA, sinDec*cosLat-cosDec*sinLat*cosHA)
	if az < 0 {
		az += 2 * math.Pi
	}
	return az, el
}

// HorizontalToEquatorial converts azimuth/elevation back to right
// ascension/declination for the same observer context. All angles in
// radians.
func HorizontalToEquatorial(az, el, lat, lst float64) (ra, dec float64) {
	sinAz, cosAz := math.Sincos(az)
	sinEl, cosEl := math.Sincos(el)
	sinLat, cosLat := math.Sincos(lat)

	dec = math.Asin(clamp1(sinEl*sinLat + cosEl*cosLat*cosAz))
	ha := math.Atan2(-cosEl*sinAz, sinEl*cosLat-cosEl*sinLat*cosAz)
	ra = lst - ha
	ra = math.Mod(ra, 2*math.Pi)
	if ra < 0 {
		ra += 2 * math.Pi
	}
	return ra, dec
}

// LocalSiderealTime returns the local sidereal time in radians for a
// UTC instant and an east-positive observer longitude in radians.
// Uses the IAU 1982 GMST polynomial.
func LocalSiderealTime(t time.Time, lon float64) float64 {
	jd := JulianDate(t)
	T := (jd - 2451545.0) / 36525.0

	gmstDeg := 280.46061837 +
		360.98564736629*(jd-2451545.0) +
		0.000387933*T*T -
		T*T*T/38710000.0

	lst := gmstDeg*math.Pi/180 + lon
	lst = math.Mod(lst, 2*math.Pi)
	if lst < 0 {
		lst += 2 * math.Pi
	}
	return lst
}

// JulianDate returns the Julian Date for a time instant.
func JulianDate(t time.Time) float64 {
	t = t.UTC()

	y := float64(t.Year())
	m := float64(t.Month())
	d := float64(t.Day())

	dayFrac := (float64(t.Hour()) +
		float64(t.Minute())/60 +
		float64(t.Second())/3600 +
		float64(t.Nanosecond())/3600e9) / 24.0

	// January and February count as months 13/14 of the prior year.
	if m <= 2 {
		y--
		m += 12
	}

	a := math.Floor(y / 100)
	b := 2 - a + math.Floor(a/4)

	return math.Floor(365.25*(y+4716)) +
		math.Floor(30.6001*(m+1)) +
		d + dayFrac + b - 1524.5
}
