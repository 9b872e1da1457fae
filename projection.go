package skychart

import (
	"errors"
	"math"
	"time"

	"github.com/gostellar/skychart/internal/astro"
)

// CoordinateSystem identifies the spherical frame a Location is
// expressed in.
type CoordinateSystem int

const (
	// Equatorial is right ascension / declination (J2000).
	Equatorial CoordinateSystem = iota
	// Horizontal is azimuth / elevation for a ground observer.
	Horizontal
	// Ecliptic is ecliptic longitude / latitude.
	Ecliptic
	// Galactic is galactic longitude / latitude.
	Galactic
)

// Projection identifies one of the five supported sky projections.
type Projection int

const (
	// Stereographic is the conformal azimuthal projection from the
	// point opposite the view center.
	Stereographic Projection = iota
	// Spherical is the orthographic-like sine projection without
	// perspective division.
	Spherical
	// Cylindrical is linear in longitude and latitude offsets.
	Cylindrical
	// CylindricalEquidistant additionally scales the longitude offset
	// by cos(latitude) to equalize angular spacing.
	CylindricalEquidistant
	// Polar is the azimuthal equidistant projection centered on the
	// celestial pole nearer to the configured center latitude.
	Polar
)

// Cylindrical forcing thresholds. At small fields of view the azimuthal
// projections produce visible seams on extended objects (planetary and
// lunar disks), so the engine silently substitutes the
// cylindrical-equidistant formulas. The values are empirically tuned in
// long-standing chart renderers and are preserved here as configurable
// constants rather than re-derived.
const (
	// ForceCylindricalFOV is the field of view below which forcing
	// applies when the view center is away from the poles.
	ForceCylindricalFOV = 30 * math.Pi / 180
	// ForceCylindricalMaxLat bounds the center latitude for the
	// field-of-view rule above.
	ForceCylindricalMaxLat = 80 * math.Pi / 180
	// ForceCylindricalTinyFOV forces cylindrical rendering regardless
	// of center latitude.
	ForceCylindricalTinyFOV = 1 * math.Pi / 180
)

// ErrInvalidInput reports a non-finite location or an unusable
// configuration (for example a zero or negative field of view). It is
// distinct from the Invalid sentinel, which marks geometrically
// off-screen points.
var ErrInvalidInput = errors.New("skychart: invalid input")

// ErrDegenerate reports a projection-specific numeric degeneracy, such
// as the stereographic denominator reaching zero. It distinguishes
// "undefined" from the merely off-screen Invalid sentinel.
var ErrDegenerate = errors.New("skychart: projection degenerate")

// Observer is the ground-based context needed to relate equatorial and
// horizontal frames: geodetic latitude and local sidereal time, both in
// radians. The values come from an external ephemeris/time source.
type Observer struct {
	Lat float64
	LST float64
}

// Config describes one projection session. It is consumed at Projector
// construction; later changes go through the explicit SetFOV /
// SetSystem / SetProjection calls.
type Config struct {
	// Projection selects the forward/inverse formula set.
	Projection Projection

	// System is the coordinate system Locations are expressed in.
	System CoordinateSystem

	// CenterLon and CenterLat are the sky location projected to the
	// pixel center, in radians.
	CenterLon, CenterLat float64

	// FOV is the horizontal field of view in radians. Must be > 0.
	FOV float64

	// Width and Height are the target size in pixels.
	Width, Height int

	// CenterX and CenterY override the pixel center. Both zero means
	// (Width/2, Height/2).
	CenterX, CenterY float64

	// PoleAngle rotates every projected point around the pixel center,
	// orienting "up" arbitrarily (telescope field rotation).
	PoleAngle float64

	// HorizonDepression lowers the culling horizon below elevation
	// zero, in radians (observer altitude, atmospheric dip).
	HorizonDepression float64

	// FlipHorizontal and FlipVertical mirror the output at the pixel
	// level, matching flipped telescope optics.
	FlipHorizontal, FlipVertical bool

	// ShowBelowHorizon disables horizon culling.
	ShowBelowHorizon bool

	// Observer supplies the horizontal-frame context. Required for
	// horizon culling of non-horizontal input and for conversions in
	// and out of the Horizontal system; without it those conversions
	// pass locations through unchanged.
	Observer *Observer
}

// Projector maps sky locations to pixel coordinates and back under one
// Config. It is a pure function of its configuration: Project has no
// side effects, and ScreenPoints remain meaningful only until the next
// reconfiguration call. A Projector must not be shared by concurrent
// renders.
type Projector struct {
	cfg Config
	cx  float64
	cy  float64
}

// NewProjector validates the configuration and builds a Projector.
func NewProjector(cfg Config) (*Projector, error) {
	if cfg.FOV <= 0 || math.IsNaN(cfg.FOV) || math.IsInf(cfg.FOV, 0) ||
		cfg.Width <= 0 || cfg.Height <= 0 ||
		!Loc(cfg.CenterLon, cfg.CenterLat).IsFinite() {
		return nil, ErrInvalidInput
	}
	p := &Projector{cfg: cfg}
	p.recenter()
	if forced := p.EffectiveProjection(); forced != cfg.Projection {
		Logger().Debug("cylindrical forcing active",
			"configured", cfg.Projection, "effective", forced,
			"fov", cfg.FOV, "centerLat", cfg.CenterLat)
	}
	return p, nil
}

func (p *Projector) recenter() {
	p.cx = p.cfg.CenterX
	p.cy = p.cfg.CenterY
	if p.cx == 0 && p.cy == 0 {
		p.cx = float64(p.cfg.Width) / 2
		p.cy = float64(p.cfg.Height) / 2
	}
}

// Config returns a copy of the active configuration.
func (p *Projector) Config() Config {
	return p.cfg
}

// SetFOV reconfigures the field of view. Previously returned
// ScreenPoints are invalidated.
func (p *Projector) SetFOV(fov float64) error {
	if fov <= 0 || math.IsNaN(fov) || math.IsInf(fov, 0) {
		return ErrInvalidInput
	}
	p.cfg.FOV = fov
	return nil
}

// SetSystem reconfigures the coordinate system Locations are expressed
// in. Previously returned ScreenPoints are invalidated.
func (p *Projector) SetSystem(sys CoordinateSystem) {
	p.cfg.System = sys
}

// SetProjection reconfigures the projection kind. Previously returned
// ScreenPoints are invalidated.
func (p *Projector) SetProjection(kind Projection) {
	p.cfg.Projection = kind
}

// EffectiveProjection returns the projection actually used for forward
// and inverse mapping, after cylindrical forcing.
func (p *Projector) EffectiveProjection() Projection {
	kind := p.cfg.Projection
	if kind != Stereographic && kind != Spherical {
		return kind
	}
	if p.cfg.FOV < ForceCylindricalTinyFOV {
		return CylindricalEquidistant
	}
	if p.cfg.FOV < ForceCylindricalFOV && math.Abs(p.cfg.CenterLat) < ForceCylindricalMaxLat {
		return CylindricalEquidistant
	}
	return kind
}

// Pixels-per-radian scale factors. Each one places a point at angular
// distance FOV/2 from the view center exactly half the width from the
// pixel center.
func (p *Projector) cylScale() float64 {
	return float64(p.cfg.Width) / p.cfg.FOV
}

func (p *Projector) sphericalScale() float64 {
	return float64(p.cfg.Width) / (2 * math.Sin(p.cfg.FOV/2))
}

func (p *Projector) stereographicScale() float64 {
	return float64(p.cfg.Width) / (4 * math.Tan(p.cfg.FOV/4))
}

// Project converts a sky location in the configured coordinate system
// to pixel coordinates.
//
// Geometric non-visibility (behind the hemisphere, below the horizon)
// is a normal outcome reported as the Invalid sentinel with a nil
// error. ErrInvalidInput flags non-finite input; ErrDegenerate flags a
// projection-specific zero denominator.
func (p *Projector) Project(loc Location) (ScreenPoint, error) {
	if !loc.IsFinite() {
		return Invalid, ErrInvalidInput
	}

	if !p.cfg.ShowBelowHorizon {
		if el, known := p.elevation(loc); known && el < -p.cfg.HorizonDepression {
			return Invalid, nil
		}
	}

	var pt ScreenPoint
	var err error
	switch p.EffectiveProjection() {
	case Cylindrical:
		pt = p.forwardCylindrical(loc, false)
	case CylindricalEquidistant:
		pt = p.forwardCylindrical(loc, true)
	case Spherical:
		pt = p.forwardSpherical(loc)
	case Polar:
		pt = p.forwardPolar(loc)
	default:
		pt, err = p.forwardStereographic(loc)
	}
	if err != nil || !pt.IsValid() {
		return Invalid, err
	}

	if p.cfg.PoleAngle != 0 {
		pt = pt.RotateAround(p.cx, p.cy, p.cfg.PoleAngle)
	}
	if p.cfg.FlipHorizontal {
		pt.X = 2*p.cx - pt.X
	}
	if p.cfg.FlipVertical {
		pt.Y = 2*p.cy - pt.Y
	}
	return pt, nil
}

// Invert maps a pixel position back to a sky location in the configured
// coordinate system. The second return value is false when the pixel
// lies outside the valid projected disk.
func (p *Projector) Invert(x, y float64) (Location, bool) {
	if math.IsNaN(x) || math.IsNaN(y) {
		return Location{}, false
	}

	// Undo the pixel-level transforms in reverse order.
	if p.cfg.FlipVertical {
		y = 2*p.cy - y
	}
	if p.cfg.FlipHorizontal {
		x = 2*p.cx - x
	}
	if p.cfg.PoleAngle != 0 {
		pt := Pt(x, y).RotateAround(p.cx, p.cy, -p.cfg.PoleAngle)
		x, y = pt.X, pt.Y
	}

	switch p.EffectiveProjection() {
	case Cylindrical:
		return p.inverseCylindrical(x, y, false)
	case CylindricalEquidistant:
		return p.inverseCylindrical(x, y, true)
	case Spherical:
		return p.inverseSpherical(x, y)
	case Polar:
		return p.inversePolar(x, y)
	default:
		return p.inverseStereographic(x, y)
	}
}

// elevation returns the horizontal elevation of loc, when it can be
// known. For horizontal input it is the latitude itself; other systems
// need the observer context to resolve it.
func (p *Projector) elevation(loc Location) (float64, bool) {
	if p.cfg.System == Horizontal {
		return loc.Lat, true
	}
	if p.cfg.Observer == nil {
		return 0, false
	}
	eq := p.ToEquatorial(loc)
	_, el := astro.EquatorialToHorizontal(eq.Lon, eq.Lat, p.cfg.Observer.Lat, p.cfg.Observer.LST)
	return el, true
}

func (p *Projector) forwardCylindrical(loc Location, equidistant bool) ScreenPoint {
	scale := p.cylScale()
	dLon := wrapPi(loc.Lon - p.cfg.CenterLon)
	if equidistant {
		dLon *= math.Cos(loc.Lat)
	}
	return ScreenPoint{
		X: p.cx - scale*dLon,
		Y: p.cy - scale*(loc.Lat-p.cfg.CenterLat),
	}
}

func (p *Projector) inverseCylindrical(x, y float64, equidistant bool) (Location, bool) {
	scale := p.cylScale()
	lat := p.cfg.CenterLat + (p.cy-y)/scale
	if math.Abs(lat) > math.Pi/2 {
		return Location{}, false
	}
	dLon := (p.cx - x) / scale
	if equidistant {
		cosLat := math.Cos(lat)
		if cosLat < 1e-12 {
			// At the pole every longitude collapses to one pixel
			// column; only the center column inverts.
			if math.Abs(dLon) < 1e-9 {
				return Loc(p.cfg.CenterLon, lat), true
			}
			return Location{}, false
		}
		dLon /= cosLat
	}
	return Loc(wrapTwoPi(p.cfg.CenterLon+dLon), lat), true
}

func (p *Projector) forwardSpherical(loc Location) ScreenPoint {
	sinLat0, cosLat0 := math.Sincos(p.cfg.CenterLat)
	sinLat, cosLat := math.Sincos(loc.Lat)
	dLon := wrapPi(loc.Lon - p.cfg.CenterLon)
	sinD, cosD := math.Sincos(dLon)

	// Angular distance beyond 90° puts the point on the far
	// hemisphere.
	cosC := sinLat0*sinLat + cosLat0*cosLat*cosD
	if cosC < 0 {
		return Invalid
	}

	r := p.sphericalScale()
	return ScreenPoint{
		X: p.cx - r*cosLat*sinD,
		Y: p.cy - r*(cosLat0*sinLat-sinLat0*cosLat*cosD),
	}
}

func (p *Projector) inverseSpherical(x, y float64) (Location, bool) {
	r := p.sphericalScale()
	px := (p.cx - x) / r
	py := (p.cy - y) / r
	rho := math.Hypot(px, py)
	if rho > 1 {
		if rho > 1+rimEpsilon {
			return Location{}, false
		}
		rho = 1
	}

	sinLat0, cosLat0 := math.Sincos(p.cfg.CenterLat)
	cosC := math.Sqrt(math.Max(0, 1-rho*rho))

	lat := math.Asin(clamp1(cosC*sinLat0 + py*cosLat0))
	lon := p.cfg.CenterLon + math.Atan2(px, cosC*cosLat0-py*sinLat0)
	return Loc(wrapTwoPi(lon), lat), true
}

func (p *Projector) forwardStereographic(loc Location) (ScreenPoint, error) {
	sinLat0, cosLat0 := math.Sincos(p.cfg.CenterLat)
	sinLat, cosLat := math.Sincos(loc.Lat)
	dLon := wrapPi(loc.Lon - p.cfg.CenterLon)
	sinD, cosD := math.Sincos(dLon)

	cosC := sinLat0*sinLat + cosLat0*cosLat*cosD
	den := 1 + cosC
	if den < 1e-12 {
		return Invalid, ErrDegenerate
	}
	// Restrict to the near hemisphere; the full stereographic plane
	// is unbounded and useless for charting.
	if cosC < 0 {
		return Invalid, nil
	}

	r := p.stereographicScale()
	return ScreenPoint{
		X: p.cx - r*2*cosLat*sinD/den,
		Y: p.cy - r*2*(cosLat0*sinLat-sinLat0*cosLat*cosD)/den,
	}, nil
}

func (p *Projector) inverseStereographic(x, y float64) (Location, bool) {
	r := p.stereographicScale()
	px := (p.cx - x) / r
	py := (p.cy - y) / r
	rho := math.Hypot(px, py)

	c := 2 * math.Atan(rho/2)
	if c > math.Pi/2+rimEpsilon {
		// Outside the projected hemisphere disk; the rim itself is kept.
		return Location{}, false
	}
	if rho == 0 {
		return Loc(p.cfg.CenterLon, p.cfg.CenterLat), true
	}

	sinC, cosC := math.Sincos(c)
	sinLat0, cosLat0 := math.Sincos(p.cfg.CenterLat)

	lat := math.Asin(clamp1(cosC*sinLat0 + py*sinC*cosLat0/rho))
	lon := p.cfg.CenterLon + math.Atan2(px*sinC, rho*cosC*cosLat0-py*sinC*sinLat0)
	return Loc(wrapTwoPi(lon), lat), true
}

func (p *Projector) forwardPolar(loc Location) ScreenPoint {
	scale := p.cylScale()
	dLon := wrapPi(loc.Lon - p.cfg.CenterLon)
	sinD, cosD := math.Sincos(dLon)

	if p.cfg.CenterLat >= 0 {
		// Northern branch: radius grows with colatitude from the
		// north pole.
		r := scale * (math.Pi/2 - loc.Lat)
		return ScreenPoint{X: p.cx - r*sinD, Y: p.cy - r*cosD}
	}
	// Southern branch, mirrored vertically so east stays on the same
	// side of the meridian.
	r := scale * (loc.Lat + math.Pi/2)
	return ScreenPoint{X: p.cx - r*sinD, Y: p.cy + r*cosD}
}

func (p *Projector) inversePolar(x, y float64) (Location, bool) {
	scale := p.cylScale()
	dx := p.cx - x
	north := p.cfg.CenterLat >= 0

	dy := p.cy - y
	if !north {
		dy = y - p.cy
	}

	colat := math.Hypot(dx, dy) / scale
	if colat > math.Pi {
		return Location{}, false
	}

	var lat, dLon float64
	if colat > 0 {
		dLon = math.Atan2(dx, dy)
	}
	if north {
		lat = math.Pi/2 - colat
	} else {
		lat = colat - math.Pi/2
	}
	return Loc(wrapTwoPi(p.cfg.CenterLon+dLon), lat), true
}

// ToEquatorial converts a location from the configured display system
// to equatorial coordinates. Horizontal conversions require the
// observer context; without it the location is returned unchanged.
func (p *Projector) ToEquatorial(loc Location) Location {
	out := loc
	switch p.cfg.System {
	case Ecliptic:
		out.Lon, out.Lat = astro.EclipticToEquatorial(loc.Lon, loc.Lat)
	case Galactic:
		out.Lon, out.Lat = astro.GalacticToEquatorial(loc.Lon, loc.Lat)
	case Horizontal:
		if p.cfg.Observer != nil {
			out.Lon, out.Lat = astro.HorizontalToEquatorial(loc.Lon, loc.Lat, p.cfg.Observer.Lat, p.cfg.Observer.LST)
		}
	}
	return out
}

// FromEquatorial converts an equatorial location into the configured
// display system. Horizontal conversions require the observer context;
// without it the location is returned unchanged.
func (p *Projector) FromEquatorial(loc Location) Location {
	out := loc
	switch p.cfg.System {
	case Ecliptic:
		out.Lon, out.Lat = astro.EquatorialToEcliptic(loc.Lon, loc.Lat)
	case Galactic:
		out.Lon, out.Lat = astro.EquatorialToGalactic(loc.Lon, loc.Lat)
	case Horizontal:
		if p.cfg.Observer != nil {
			out.Lon, out.Lat = astro.EquatorialToHorizontal(loc.Lon, loc.Lat, p.cfg.Observer.Lat, p.cfg.Observer.LST)
		}
	}
	return out
}

// ApparentInSystem re-expresses a location given in the configured
// display system in another system, routing through equatorial.
func (p *Projector) ApparentInSystem(loc Location, target CoordinateSystem) Location {
	if target == p.cfg.System {
		return loc
	}
	eq := p.ToEquatorial(loc)
	out := eq
	switch target {
	case Ecliptic:
		out.Lon, out.Lat = astro.EquatorialToEcliptic(eq.Lon, eq.Lat)
	case Galactic:
		out.Lon, out.Lat = astro.EquatorialToGalactic(eq.Lon, eq.Lat)
	case Horizontal:
		if p.cfg.Observer != nil {
			out.Lon, out.Lat = astro.EquatorialToHorizontal(eq.Lon, eq.Lat, p.cfg.Observer.Lat, p.cfg.Observer.LST)
		}
	}
	return out
}

// LocalSiderealTime returns the local sidereal time in radians for a
// UTC instant and an east-positive longitude in radians. It is the
// bridge between wall-clock time and the Observer context consumed by
// horizontal conversions.
func LocalSiderealTime(t time.Time, lon float64) float64 {
	return astro.LocalSiderealTime(t, lon)
}

// rimEpsilon absorbs the floating point overshoot when inverting pixels
// that sit exactly on the 90° hemisphere rim. The forward pass keeps rim
// locations (cosC == 0), so the inverse must not reject a disk radius
// one ulp past the boundary.
const rimEpsilon = 1e-9

// wrapTwoPi normalizes an angle to [0, 2π).
func wrapTwoPi(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// clamp1 clamps to [-1, 1] before inverse trigonometric calls.
func clamp1(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}
