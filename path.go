package skychart

import "math"

// quadSegments is the number of line segments each quadratic curve is
// flattened into. Chart curves (constellation figures, nebula outlines)
// are short, so a fixed subdivision keeps flattening allocation-free of
// adaptive bookkeeping while staying below half a pixel of error at
// typical scales.
const quadSegments = 16

// pathVerb identifies one path element.
type pathVerb uint8

const (
	verbMoveTo pathVerb = iota
	verbLineTo
	verbQuadTo
	verbClose
)

// Path is a sequence of subpaths built from moves, lines and quadratic
// curves. It is the input to the region fill and stroked-outline
// compositors used for contours and filled regions (constellation
// boundaries, nebula outlines, the horizon band).
//
// The zero value is an empty path ready for use.
type Path struct {
	verbs  []pathVerb
	coords []float64 // packed (x, y) pairs; QuadTo appends control then end
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.verbs = append(p.verbs, verbMoveTo)
	p.coords = append(p.coords, x, y)
}

// LineTo appends a straight segment to (x, y).
// A leading LineTo on an empty path is treated as a MoveTo.
func (p *Path) LineTo(x, y float64) {
	if len(p.verbs) == 0 {
		p.MoveTo(x, y)
		return
	}
	p.verbs = append(p.verbs, verbLineTo)
	p.coords = append(p.coords, x, y)
}

// QuadTo appends a quadratic Bézier curve through control point
// (cx, cy) ending at (x, y).
func (p *Path) QuadTo(cx, cy, x, y float64) {
	if len(p.verbs) == 0 {
		p.MoveTo(cx, cy)
	}
	p.verbs = append(p.verbs, verbQuadTo)
	p.coords = append(p.coords, cx, cy, x, y)
}

// Close closes the current subpath back to its starting point.
func (p *Path) Close() {
	if len(p.verbs) == 0 {
		return
	}
	p.verbs = append(p.verbs, verbClose)
}

// Reset empties the path, retaining allocated capacity.
func (p *Path) Reset() {
	p.verbs = p.verbs[:0]
	p.coords = p.coords[:0]
}

// IsEmpty reports whether the path contains no elements.
func (p *Path) IsEmpty() bool {
	return len(p.verbs) == 0
}

// flatten converts the path into polylines, one per subpath. Quadratic
// curves are sampled with quadSegments chords. closeAll forces every
// subpath closed, as required by the region fill.
func (p *Path) flatten(closeAll bool) [][]float64 {
	var subpaths [][]float64
	var cur []float64
	var startX, startY, x, y float64
	i := 0

	finish := func(closed bool) {
		if len(cur) >= 4 {
			if closed && (cur[0] != cur[len(cur)-2] || cur[1] != cur[len(cur)-1]) {
				cur = append(cur, cur[0], cur[1])
			}
			subpaths = append(subpaths, cur)
		}
		cur = nil
	}

	for _, v := range p.verbs {
		switch v {
		case verbMoveTo:
			finish(closeAll)
			x, y = p.coords[i], p.coords[i+1]
			startX, startY = x, y
			cur = append(cur, x, y)
			i += 2
		case verbLineTo:
			x, y = p.coords[i], p.coords[i+1]
			cur = append(cur, x, y)
			i += 2
		case verbQuadTo:
			cx, cy := p.coords[i], p.coords[i+1]
			ex, ey := p.coords[i+2], p.coords[i+3]
			for s := 1; s <= quadSegments; s++ {
				t := float64(s) / quadSegments
				mt := 1 - t
				qx := mt*mt*x + 2*mt*t*cx + t*t*ex
				qy := mt*mt*y + 2*mt*t*cy + t*t*ey
				cur = append(cur, qx, qy)
			}
			x, y = ex, ey
			i += 4
		case verbClose:
			if len(cur) >= 2 {
				cur = append(cur, startX, startY)
			}
			finish(false)
			x, y = startX, startY
		}
	}
	finish(closeAll)
	return subpaths
}

// StrokePath draws the outline of every subpath with the line
// rasterizer. Each subpath restarts the dash phase; within a subpath the
// phase flows through the joints.
func StrokePath(pm *Pixmap, p *Path, c Color, stroke Stroke, clip ClipRect, antialias bool) {
	if pm == nil || p == nil || clip.Empty() || c.A == 0 {
		return
	}
	for _, sp := range p.flatten(false) {
		n := len(sp) / 2
		xs := make([]float64, n)
		ys := make([]float64, n)
		for i := 0; i < n; i++ {
			xs[i] = sp[2*i]
			ys[i] = sp[2*i+1]
		}
		DrawPolyline(pm, xs, ys, c, stroke, clip, antialias)
	}
}

// FillPath fills the region enclosed by the path using even-odd scanline
// filling. Open subpaths are closed implicitly. Each scanline samples
// edge crossings at the row center (y + 0.5) and fills the spans between
// alternate crossings, clipped per row.
func FillPath(pm *Pixmap, p *Path, c Color, clip ClipRect) {
	if pm == nil || p == nil || clip.Empty() || c.A == 0 {
		return
	}

	subpaths := p.flatten(true)
	if len(subpaths) == 0 {
		return
	}

	// Vertical bounds of the whole region, clamped to the clip.
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, sp := range subpaths {
		for i := 1; i < len(sp); i += 2 {
			minY = math.Min(minY, sp[i])
			maxY = math.Max(maxY, sp[i])
		}
	}
	y0 := max(int(math.Floor(minY)), clip.Y)
	y1 := min(int(math.Ceil(maxY)), clip.Y+clip.H-1)

	var xs []float64
	for y := y0; y <= y1; y++ {
		sy := float64(y) + 0.5
		xs = xs[:0]
		for _, sp := range subpaths {
			for i := 2; i < len(sp); i += 2 {
				ax, ay := sp[i-2], sp[i-1]
				bx, by := sp[i], sp[i+1]
				// Half-open rule: count the lower endpoint,
				// not the upper, so shared vertices are not
				// counted twice.
				if (ay <= sy) == (by <= sy) {
					continue
				}
				t := (sy - ay) / (by - ay)
				xs = append(xs, ax+t*(bx-ax))
			}
		}
		if len(xs) < 2 {
			continue
		}
		sortFloats(xs)
		for i := 1; i < len(xs); i += 2 {
			fillSpan(pm, int(math.Ceil(xs[i-1]-0.5)), int(math.Floor(xs[i]-0.5)), y, c, clip)
		}
	}
}

// sortFloats is an insertion sort; crossing lists per scanline are tiny.
func sortFloats(a []float64) {
	for i := 1; i < len(a); i++ {
		for j := i; j > 0 && a[j] < a[j-1]; j-- {
			a[j], a[j-1] = a[j-1], a[j]
		}
	}
}
