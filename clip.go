package skychart

// ClipRect is an axis-aligned clipping rectangle in pixel space.
// Every drawing primitive takes its clip explicitly; there is no ambient
// "current clip" state. A degenerate rectangle (W or H <= 0) turns every
// draw into a no-op rather than an error, keeping the hot path branch
// free of validation.
type ClipRect struct {
	X, Y, W, H int
}

// Rect is a convenience function to create a ClipRect.
func Rect(x, y, w, h int) ClipRect {
	return ClipRect{X: x, Y: y, W: w, H: h}
}

// Empty reports whether the rectangle clips away everything.
func (r ClipRect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether the pixel (x, y) lies inside the rectangle.
func (r ClipRect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Intersect returns the overlap of two rectangles.
// The result is degenerate when they do not overlap.
func (r ClipRect) Intersect(s ClipRect) ClipRect {
	x0 := max(r.X, s.X)
	y0 := max(r.Y, s.Y)
	x1 := min(r.X+r.W, s.X+s.W)
	y1 := min(r.Y+r.H, s.Y+s.H)
	return ClipRect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// ClipLine clips the segment (x0,y0)-(x1,y1) against the rectangle using
// the Liang–Barsky algorithm. It returns the trimmed endpoints and false
// when the segment lies entirely outside. Partially-outside segments are
// trimmed exactly to the boundary so that panning does not pop whole
// segments in and out of view.
//
// The rectangle is treated as the continuous region [X, X+W] x [Y, Y+H];
// integer rasterization afterwards stays within pixel bounds because the
// per-pixel plot still checks Contains for the boundary rows/columns.
func (r ClipRect) ClipLine(x0, y0, x1, y1 float64) (float64, float64, float64, float64, bool) {
	if r.Empty() {
		return 0, 0, 0, 0, false
	}

	dx := x1 - x0
	dy := y1 - y0

	t0, t1 := 0.0, 1.0

	// Each boundary contributes p*t <= q; update the parametric window.
	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{
		x0 - float64(r.X),
		float64(r.X+r.W) - x0,
		y0 - float64(r.Y),
		float64(r.Y+r.H) - y0,
	}

	for i := 0; i < 4; i++ {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			if t > t1 {
				return 0, 0, 0, 0, false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return 0, 0, 0, 0, false
			}
			if t < t1 {
				t1 = t
			}
		}
	}

	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

// clampSpan trims the horizontal run [x0, x1] on row y to the rectangle.
// It returns false when nothing of the span survives.
func (r ClipRect) clampSpan(x0, x1, y int) (int, int, bool) {
	if r.Empty() || y < r.Y || y >= r.Y+r.H {
		return 0, 0, false
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if x0 < r.X {
		x0 = r.X
	}
	if x1 >= r.X+r.W {
		x1 = r.X + r.W - 1
	}
	if x0 > x1 {
		return 0, 0, false
	}
	return x0, x1, true
}
