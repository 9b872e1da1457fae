package skychart

import "math"

// DrawLine draws the segment (x0,y0)-(x1,y1) clipped against clip.
//
// The segment is first trimmed with the Liang–Barsky clip test; fully
// outside segments are rejected before any pixel work. The aliased path
// uses an integer Bresenham stepper, the antialiased path a Wu-style
// stepper with a 16.16 fixed-point minor-axis accumulator blending two
// adjacent pixels per step.
//
// The dash phase restarts at the beginning of every call: no dash state
// leaks between primitives. No pixel outside clip is ever written.
func DrawLine(pm *Pixmap, x0, y0, x1, y1 float64, c Color, stroke Stroke, clip ClipRect, antialias bool) {
	if pm == nil || clip.Empty() || c.A == 0 {
		return
	}
	if stroke.IsContinuous() {
		segment(pm, x0, y0, x1, y1, c, nil, clip, antialias, false)
		return
	}
	drawSegment(pm, x0, y0, x1, y1, c, stroke, newDashCounter(stroke.Dash), clip, antialias, false)
}

// DrawPolyline draws len(xs)-1 segments pairwise. One dash counter is
// carried across the joints, so the pattern flows through corners
// instead of restarting at every vertex. The shared joint pixel is
// rendered once, by the earlier segment, so it neither double-blends
// nor consumes an extra dash tick. Used for paths sampled from curves
// (constellation figures, coordinate grids) where per-segment overhead
// matters at large point counts.
func DrawPolyline(pm *Pixmap, xs, ys []float64, c Color, stroke Stroke, clip ClipRect, antialias bool) {
	if pm == nil || clip.Empty() || c.A == 0 || len(xs) < 2 || len(xs) != len(ys) {
		return
	}
	if stroke.IsContinuous() {
		for i := 1; i < len(xs); i++ {
			segment(pm, xs[i-1], ys[i-1], xs[i], ys[i], c, nil, clip, antialias, i > 1)
		}
		return
	}
	counter := newDashCounter(stroke.Dash)
	for i := 1; i < len(xs); i++ {
		drawSegment(pm, xs[i-1], ys[i-1], xs[i], ys[i], c, stroke, counter, clip, antialias, i > 1)
	}
}

// drawSegment clips and rasterizes one segment with an existing dash
// counter. skipFirst suppresses the segment's start pixel when it was
// already rendered as the previous segment's end.
func drawSegment(pm *Pixmap, x0, y0, x1, y1 float64, c Color, stroke Stroke, counter *dashCounter, clip ClipRect, antialias, skipFirst bool) {
	width := int(math.Round(stroke.Width))
	if width <= 1 {
		segment(pm, x0, y0, x1, y1, c, counter, clip, antialias, skipFirst)
		return
	}

	// Thick strokes are approximated by parallel single-pixel passes
	// offset along the segment normal.
	dx := x1 - x0
	dy := y1 - y0
	length := math.Hypot(dx, dy)
	nx, ny := 0.0, 1.0
	if length > 0 {
		nx, ny = -dy/length, dx/length
	}
	for i := 0; i < width; i++ {
		off := float64(i) - float64(width-1)/2
		// Each pass clones the dash phase so the runs stay aligned
		// across the stroke's width.
		pass := counter
		if i > 0 {
			pass = newDashCounter(stroke.Dash)
		}
		segment(pm, x0+nx*off, y0+ny*off, x1+nx*off, y1+ny*off, c, pass, clip, antialias, skipFirst)
	}
}

// segment rasterizes a unit-width segment.
func segment(pm *Pixmap, x0, y0, x1, y1 float64, c Color, counter *dashCounter, clip ClipRect, antialias, skipFirst bool) {
	cx0, cy0, cx1, cy1, ok := clip.ClipLine(x0, y0, x1, y1)
	if !ok {
		return
	}
	// The duplicate joint pixel only exists when the segment's start
	// survived clipping.
	if skipFirst && (cx0 != x0 || cy0 != y0) {
		skipFirst = false
	}

	if antialias {
		wuLine(pm, cx0, cy0, cx1, cy1, c, counter, clip, skipFirst)
		return
	}

	ix0 := int(math.Round(cx0))
	iy0 := int(math.Round(cy0))
	ix1 := int(math.Round(cx1))
	iy1 := int(math.Round(cy1))

	// Fast paths for the degenerate shapes that dominate star fields:
	// single pixels and axis-aligned unit steps.
	if ix0 == ix1 && iy0 == iy1 {
		if skipFirst {
			return
		}
		if counter.next() {
			plot(pm, ix0, iy0, c, clip)
		}
		return
	}
	if iy0 == iy1 {
		hLine(pm, ix0, ix1, iy0, c, counter, clip, skipFirst)
		return
	}
	if ix0 == ix1 {
		vLine(pm, ix0, iy0, iy1, c, counter, clip, skipFirst)
		return
	}

	bresenham(pm, ix0, iy0, ix1, iy1, c, counter, clip, skipFirst)
}

// plot writes one pixel, blending when the color is not opaque.
func plot(pm *Pixmap, x, y int, c Color, clip ClipRect) {
	if !clip.Contains(x, y) {
		return
	}
	if c.A == 255 {
		pm.SetPixel(x, y, c)
	} else {
		pm.BlendPixel(x, y, c, c.A)
	}
}

// hLine plots a horizontal run, honoring the dash counter per pixel.
func hLine(pm *Pixmap, x0, x1, y int, c Color, counter *dashCounter, clip ClipRect, skipFirst bool) {
	step := 1
	if x1 < x0 {
		step = -1
	}
	for x := x0; ; x += step {
		if skipFirst {
			skipFirst = false
		} else if counter.next() {
			plot(pm, x, y, c, clip)
		}
		if x == x1 {
			return
		}
	}
}

// vLine plots a vertical run, honoring the dash counter per pixel.
func vLine(pm *Pixmap, x, y0, y1 int, c Color, counter *dashCounter, clip ClipRect, skipFirst bool) {
	step := 1
	if y1 < y0 {
		step = -1
	}
	for y := y0; ; y += step {
		if skipFirst {
			skipFirst = false
		} else if counter.next() {
			plot(pm, x, y, c, clip)
		}
		if y == y1 {
			return
		}
	}
}

// bresenham is the integer error-doubling line stepper.
func bresenham(pm *Pixmap, x0, y0, x1, y1 int, c Color, counter *dashCounter, clip ClipRect, skipFirst bool) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}

	xDominant := dx > dy
	var d, dInc1, dInc2 int
	if xDominant {
		d, dInc1, dInc2 = 2*dy-dx, 2*dy, 2*(dy-dx)
	} else {
		d, dInc1, dInc2 = 2*dx-dy, 2*dx, 2*(dx-dy)
	}

	for {
		if skipFirst {
			skipFirst = false
		} else if counter.next() {
			plot(pm, x0, y0, c, clip)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		if xDominant {
			if d < 0 {
				d += dInc1
			} else {
				y0 += sy
				d += dInc2
			}
			x0 += sx
			continue
		}
		if d < 0 {
			d += dInc1
		} else {
			x0 += sx
			d += dInc2
		}
		y0 += sy
	}
}

// wuLine is the antialiased stepper. The minor-axis position advances in
// 16.16 fixed point; the high byte of the fractional part weights the
// blend between the two straddled pixels, scaled by the color's alpha.
func wuLine(pm *Pixmap, x0, y0, x1, y1 float64, c Color, counter *dashCounter, clip ClipRect, skipFirst bool) {
	steep := math.Abs(y1-y0) > math.Abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	reversed := x0 > x1
	if reversed {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	xs := int(math.Round(x0))
	xe := int(math.Round(x1))

	// Single pixel after rounding: no fractional coverage to spread.
	if xs == xe {
		if !skipFirst && counter.next() {
			x, y := xs, int(math.Round(y0))
			if steep {
				x, y = y, x
			}
			blend(pm, x, y, c, c.A, clip)
		}
		return
	}

	// The segment's start column, which reversal may have moved to the
	// far end of the sweep.
	skipX := xs - 1
	if skipFirst {
		skipX = xs
		if reversed {
			skipX = xe
		}
	}

	grad := (y1 - y0) / (x1 - x0)
	pos := int32((y0 + grad*(float64(xs)-x0)) * 65536)
	inc := int32(grad * 65536)

	for x := xs; x <= xe; x++ {
		if x == skipX {
			pos += inc
			continue
		}
		if counter.next() {
			iy := int(pos >> 16)
			f := uint8(uint32(pos) >> 8)
			w0 := mulDiv255(255-f, c.A)
			w1 := mulDiv255(f, c.A)
			if steep {
				blend(pm, iy, x, c, w0, clip)
				blend(pm, iy+1, x, c, w1, clip)
			} else {
				blend(pm, x, iy, c, w0, clip)
				blend(pm, x, iy+1, c, w1, clip)
			}
		}
		pos += inc
	}
}

// blend mixes c into (x, y) with weight w, respecting the clip.
func blend(pm *Pixmap, x, y int, c Color, w uint8, clip ClipRect) {
	if !clip.Contains(x, y) {
		return
	}
	pm.BlendPixel(x, y, c, w)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
