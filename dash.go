package skychart

import "math"

// Dash defines a dash pattern for stroking.
// A dash pattern consists of alternating on and off pixel run lengths.
// For example, [5, 3] plots 5 pixels, skips 3, and repeats.
type Dash struct {
	// Array contains alternating on/off run lengths in pixels.
	// If the array has an odd number of elements, it is logically
	// duplicated to create an even-length pattern (e.g., [5] becomes
	// [5, 5]).
	Array []float64

	// Offset is the starting offset into the pattern, in pixels.
	// The stroke begins at this point in the pattern cycle.
	Offset float64
}

// NewDash creates a dash pattern from alternating on/off run lengths.
// Negative lengths are folded to their absolute values. Returns nil if
// no lengths are provided or all lengths are zero; a nil *Dash means a
// solid stroke.
func NewDash(lengths ...float64) *Dash {
	if len(lengths) == 0 {
		return nil
	}

	any := false
	normalized := make([]float64, len(lengths))
	for i, l := range lengths {
		normalized[i] = math.Abs(l)
		if normalized[i] > 0 {
			any = true
		}
	}
	if !any {
		return nil
	}

	return &Dash{Array: normalized}
}

// WithOffset returns a new Dash with the given offset.
func (d *Dash) WithOffset(offset float64) *Dash {
	if d == nil {
		return nil
	}
	return &Dash{Array: d.Array, Offset: offset}
}

// PatternLength returns the total length of one complete pattern cycle.
// For odd-length arrays, this includes the duplicated pattern.
func (d *Dash) PatternLength() float64 {
	if d == nil || len(d.Array) == 0 {
		return 0
	}

	var total float64
	for _, l := range d.Array {
		total += l
	}
	if len(d.Array)%2 != 0 {
		total *= 2
	}
	return total
}

// IsDashed reports whether this represents a dashed stroke (not solid).
// Returns false for a nil Dash or empty/all-zero arrays.
func (d *Dash) IsDashed() bool {
	if d == nil || len(d.Array) == 0 {
		return false
	}
	for _, l := range d.Array {
		if l > 0 {
			return true
		}
	}
	return false
}

// Clone creates a deep copy of the Dash.
func (d *Dash) Clone() *Dash {
	if d == nil {
		return nil
	}
	arrayCopy := make([]float64, len(d.Array))
	copy(arrayCopy, d.Array)
	return &Dash{Array: arrayCopy, Offset: d.Offset}
}

// effectiveArray returns the array with odd-length arrays duplicated.
func (d *Dash) effectiveArray() []float64 {
	if d == nil || len(d.Array) == 0 {
		return nil
	}
	if len(d.Array)%2 == 0 {
		return d.Array
	}
	result := make([]float64, len(d.Array)*2)
	copy(result, d.Array)
	copy(result[len(d.Array):], d.Array)
	return result
}

// dashCounter walks a dash pattern one plotted pixel at a time.
// The rasterizer creates one counter per primitive, so there is no dash
// phase leakage across primitives; within a polyline the same counter is
// carried across joints so the pattern flows through corners.
type dashCounter struct {
	runs []float64 // effective even-length pattern
	idx  int       // current run index
	left float64   // pixels remaining in the current run
}

// newDashCounter builds the per-primitive counter, honoring the
// pattern's starting offset. Returns nil for solid strokes; callers
// treat a nil counter as "always on".
func newDashCounter(d *Dash) *dashCounter {
	if !d.IsDashed() {
		return nil
	}
	c := &dashCounter{runs: d.effectiveArray()}
	c.left = c.runs[0]

	// Consume the offset, normalized into one pattern cycle.
	skip := math.Mod(d.Offset, d.PatternLength())
	if skip < 0 {
		skip += d.PatternLength()
	}
	for skip > 0 {
		if skip < c.left {
			c.left -= skip
			break
		}
		skip -= c.left
		c.advance()
	}
	return c
}

// next consumes one pixel and reports whether it should be plotted.
func (c *dashCounter) next() bool {
	if c == nil {
		return true
	}
	// Zero-length runs are skipped outright.
	for c.left <= 0 {
		c.advance()
	}
	on := c.idx%2 == 0
	c.left--
	return on
}

func (c *dashCounter) advance() {
	c.idx = (c.idx + 1) % len(c.runs)
	c.left = c.runs[c.idx]
}
