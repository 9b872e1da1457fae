package skychart

// DrawEllipse draws the outline of an axis-aligned ellipse centered at
// (cx, cy) with semi-axes rx, ry, honoring the stroke's dash pattern.
//
// The rasterizer is a midpoint interpolator producing successive (dx,dy)
// offsets for one quadrant; the other quadrants are derived by sign
// mirroring, so no trigonometric calls are made. Negative radii are
// no-ops. The interpolation is hard-bounded to rx+ry+2 steps per region
// as a guard against malformed inputs.
func DrawEllipse(pm *Pixmap, cx, cy, rx, ry int, c Color, stroke Stroke, clip ClipRect) {
	if pm == nil || clip.Empty() || c.A == 0 || rx < 0 || ry < 0 {
		return
	}
	if rx <= 1 && ry <= 1 {
		tinyEllipse(pm, cx, cy, rx, ry, c, clip)
		return
	}
	counter := newDashCounter(stroke.Dash)
	ellipseWalk(rx, ry, func(dx, dy int) {
		if !counter.next() {
			return
		}
		plot(pm, cx+dx, cy+dy, c, clip)
		if dx != 0 {
			plot(pm, cx-dx, cy+dy, c, clip)
		}
		if dy != 0 {
			plot(pm, cx+dx, cy-dy, c, clip)
		}
		if dx != 0 && dy != 0 {
			plot(pm, cx-dx, cy-dy, c, clip)
		}
	})
}

// FillEllipse fills an axis-aligned ellipse by drawing horizontal spans
// between the leftmost and rightmost interpolated x at each row, clipped
// per row. It reuses the same midpoint interpolator as DrawEllipse.
func FillEllipse(pm *Pixmap, cx, cy, rx, ry int, c Color, clip ClipRect) {
	if pm == nil || clip.Empty() || c.A == 0 || rx < 0 || ry < 0 {
		return
	}
	if rx <= 1 && ry <= 1 {
		tinyEllipse(pm, cx, cy, rx, ry, c, clip)
		return
	}

	// Widest |dx| reached at each |dy|.
	extent := make([]int, ry+1)
	ellipseWalk(rx, ry, func(dx, dy int) {
		if dx > extent[dy] {
			extent[dy] = dx
		}
	})

	for dy := 0; dy <= ry; dy++ {
		fillSpan(pm, cx-extent[dy], cx+extent[dy], cy+dy, c, clip)
		if dy != 0 {
			fillSpan(pm, cx-extent[dy], cx+extent[dy], cy-dy, c, clip)
		}
	}
}

// tinyEllipse is the fast path for sub-pixel radii: single pixels and
// 2-pixel crosses, the common case for faint stars.
func tinyEllipse(pm *Pixmap, cx, cy, rx, ry int, c Color, clip ClipRect) {
	plot(pm, cx, cy, c, clip)
	if rx >= 1 {
		plot(pm, cx-1, cy, c, clip)
		plot(pm, cx+1, cy, c, clip)
	}
	if ry >= 1 {
		plot(pm, cx, cy-1, c, clip)
		plot(pm, cx, cy+1, c, clip)
	}
}

// ellipseWalk runs the midpoint interpolator over the first quadrant,
// calling visit with successive non-negative (dx, dy) offsets. Every row
// 0..ry and every column 0..rx is visited at least once.
func ellipseWalk(rx, ry int, visit func(dx, dy int)) {
	if rx == 0 {
		for dy := 0; dy <= ry; dy++ {
			visit(0, dy)
		}
		return
	}
	if ry == 0 {
		for dx := 0; dx <= rx; dx++ {
			visit(dx, 0)
		}
		return
	}

	rx2 := int64(rx) * int64(rx)
	ry2 := int64(ry) * int64(ry)

	x, y := 0, ry
	dx := int64(0)
	dy := 2 * rx2 * int64(y)
	d := ry2 - rx2*int64(ry) + rx2/4

	// Region 1: gradient > -1, step along x.
	steps := 0
	for dx < dy && steps <= rx+ry+2 {
		visit(x, y)
		if d < 0 {
			x++
			dx += 2 * ry2
			d += dx + ry2
		} else {
			x++
			y--
			dx += 2 * ry2
			dy -= 2 * rx2
			d += dx - dy + ry2
		}
		steps++
	}

	// Region 2: gradient <= -1, step along y.
	d = ry2*(int64(x)*int64(x)+int64(x)) + ry2/4 + rx2*(int64(y)-1)*(int64(y)-1) - rx2*ry2
	steps = 0
	for y >= 0 && steps <= rx+ry+2 {
		visit(x, y)
		if d > 0 {
			y--
			dy -= 2 * rx2
			d += rx2 - dy
		} else {
			y--
			x++
			dx += 2 * ry2
			dy -= 2 * rx2
			d += dx - dy + rx2
		}
		steps++
	}
}

// fillSpan draws the horizontal run [x0, x1] on row y.
func fillSpan(pm *Pixmap, x0, x1, y int, c Color, clip ClipRect) {
	x0, x1, ok := clip.Intersect(pm.Rect()).clampSpan(x0, x1, y)
	if !ok {
		return
	}
	if c.A == 255 {
		packed := c.Packed()
		row := y * pm.width
		for x := x0; x <= x1; x++ {
			pm.pix[row+x] = packed
		}
		return
	}
	for x := x0; x <= x1; x++ {
		pm.BlendPixel(x, y, c, c.A)
	}
}
