package skychart

// LineCap is the shape drawn at the endpoints of a stroke.
type LineCap int

const (
	// LineCapButt ends the stroke exactly at the endpoint.
	LineCapButt LineCap = iota
	// LineCapSquare extends the stroke half a width past the endpoint.
	LineCapSquare
	// LineCapRound caps the endpoint with a filled disc.
	LineCapRound
)

// LineJoin is the shape drawn where polyline segments meet.
type LineJoin int

const (
	// LineJoinMiter extends the outer edges until they meet.
	LineJoinMiter LineJoin = iota
	// LineJoinBevel connects the outer edges with a straight edge.
	LineJoinBevel
	// LineJoinRound rounds the corner with a disc.
	LineJoinRound
)

// Stroke describes how lines, polylines and ellipse outlines are drawn.
// It is an immutable value consulted by the rasterizer; per-draw
// parameters replace any ambient "current stroke" state.
type Stroke struct {
	// Width is the line width in pixels. Default: 1.0
	Width float64

	// Cap is the shape of line endpoints. Default: LineCapButt.
	// The pixel rasterizer currently renders butt ends regardless of
	// this setting.
	Cap LineCap

	// Join is the shape of polyline joints. Default: LineJoinMiter.
	// The pixel rasterizer currently renders overlapping segment ends
	// at joints regardless of this setting.
	Join LineJoin

	// Dash is the dash pattern for the stroke.
	// nil means a solid line (no dashing).
	Dash *Dash
}

// DefaultStroke returns a Stroke with default settings: a solid
// 1-pixel line with butt caps and miter joins.
func DefaultStroke() Stroke {
	return Stroke{Width: 1.0}
}

// IsContinuous reports whether the stroke qualifies for the fast
// single-pass rasterization path: unit width and no dash pattern.
func (s Stroke) IsContinuous() bool {
	return s.Width <= 1.0 && !s.Dash.IsDashed()
}

// IsDashed reports whether this stroke has a dash pattern.
func (s Stroke) IsDashed() bool {
	return s.Dash.IsDashed()
}

// WithWidth returns a copy of the Stroke with the given width.
func (s Stroke) WithWidth(w float64) Stroke {
	s.Width = w
	return s
}

// WithCap returns a copy of the Stroke with the given line cap style.
func (s Stroke) WithCap(lineCap LineCap) Stroke {
	s.Cap = lineCap
	return s
}

// WithJoin returns a copy of the Stroke with the given line join style.
func (s Stroke) WithJoin(join LineJoin) Stroke {
	s.Join = join
	return s
}

// WithDash returns a copy of the Stroke with the given dash pattern.
// Pass nil to remove dashing and return to solid lines.
func (s Stroke) WithDash(dash *Dash) Stroke {
	s.Dash = dash.Clone()
	return s
}

// WithDashPattern returns a copy of the Stroke with a dash pattern
// created from the given on/off pixel run lengths.
//
// Example:
//
//	stroke.WithDashPattern(5, 3) // 5 pixels on, 3 pixels off
func (s Stroke) WithDashPattern(lengths ...float64) Stroke {
	s.Dash = NewDash(lengths...)
	return s
}

// Clone creates a deep copy of the Stroke.
func (s Stroke) Clone() Stroke {
	result := s
	result.Dash = s.Dash.Clone()
	return result
}
