// Package skychart provides the projection and rasterization core of an
// astronomical chart renderer.
//
// # Overview
//
// skychart maps positions on the celestial sphere, expressed in one of four
// coordinate systems (equatorial, horizontal, ecliptic, galactic), onto 2D
// pixel coordinates under one of five cartographic projections, and draws
// the resulting points, lines, ellipses and filled regions onto a software
// pixel buffer with clipping, optional anti-aliasing, dash patterns, and
// stereo (anaglyph) compositing.
//
// # Quick Start
//
//	import "github.com/gostellar/skychart"
//
//	// Configure a projection for a 180° equatorial view.
//	p, _ := skychart.NewProjector(skychart.Config{
//		Projection: skychart.CylindricalEquidistant,
//		System:     skychart.Equatorial,
//		FOV:        math.Pi,
//		Width:      640,
//		Height:     320,
//	})
//
//	// Project a sky location and plot it.
//	pm := skychart.NewPixmap(640, 320)
//	clip := skychart.Rect(0, 0, 640, 320)
//	pt, err := p.Project(skychart.Loc(ra, dec))
//	if err == nil && pt.IsValid() {
//		skychart.DrawLine(pm, pt.X, pt.Y, pt.X, pt.Y,
//			skychart.White, skychart.DefaultStroke(), clip, false)
//	}
//
// # Architecture
//
// The library is organized into:
//   - Projection: Projector, Config, Location, ScreenPoint
//   - Rasterization: Pixmap, DrawLine, DrawEllipse, Path
//   - Compositing: Anaglyph (Dubois stereo matrices, side-by-side layouts)
//   - internal/astro: coordinate-frame rotation math
//
// # Coordinate System
//
// Pixel space uses standard computer graphics coordinates: origin (0,0)
// at top-left, X increases right, Y increases down. Sky coordinates are
// radians; longitude (right ascension, azimuth, ...) increases leftward
// on screen, following chart convention for an observer looking outward
// at the sphere.
//
// # Concurrency
//
// One render pass is one synchronous call graph. A Projector and the
// Pixmaps it draws into must not be shared between concurrent renders;
// independent views need independent Projector/Pixmap pairs.
package skychart
