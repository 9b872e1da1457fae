package skychart

// Eye selects which stereo pass a primitive is drawn for.
// A renderer draws each depth-carrying primitive once per eye into the
// eye's own Pixmap; the compositor owns the decision to request one pass
// or two, so drawing code never threads two buffer references through
// its call chain.
type Eye int

const (
	// Mono disables stereo: one pass, no horizontal offset.
	Mono Eye = iota
	// LeftEye is the pass composited through the left-eye matrix.
	LeftEye
	// RightEye is the pass composited through the right-eye matrix.
	RightEye
)

// StereoMode selects how the two eye buffers are combined.
type StereoMode int

const (
	// StereoNone composites nothing: the left buffer is returned as an
	// identity copy.
	StereoNone StereoMode = iota
	// StereoRedCyan is the Dubois red/cyan anaglyph.
	StereoRedCyan
	// StereoGreenMagenta is the Dubois green/magenta anaglyph.
	StereoGreenMagenta
	// StereoAmberBlue is the Dubois amber/blue (ColorCode-style) anaglyph.
	StereoAmberBlue
	// StereoSideBySide places the two views next to each other at full
	// size, for cross-eyed or "true 3D" viewers.
	StereoSideBySide
	// StereoSideBySideHalf places half-width-scaled views next to each
	// other, preserving the original image width.
	StereoSideBySideHalf
)

// colorMatrix is a 3x3 RGB mixing matrix applied to one eye's pixels.
type colorMatrix [3][3]float64

// Dubois least-squares anaglyph matrices. Each mode carries one matrix
// per eye; the two transformed colors are summed per channel and clamped
// to [0, 255].
var (
	duboisRedCyanLeft = colorMatrix{
		{0.437, 0.449, 0.164},
		{-0.062, -0.062, -0.024},
		{-0.048, -0.050, -0.017},
	}
	duboisRedCyanRight = colorMatrix{
		{-0.011, -0.032, -0.007},
		{0.377, 0.761, 0.009},
		{-0.026, -0.093, 1.234},
	}

	duboisGreenMagentaLeft = colorMatrix{
		{-0.062, -0.158, -0.039},
		{0.284, 0.668, 0.143},
		{-0.015, -0.027, 0.021},
	}
	duboisGreenMagentaRight = colorMatrix{
		{0.529, 0.705, 0.024},
		{-0.016, -0.015, -0.065},
		{0.009, 0.075, 0.937},
	}

	duboisAmberBlueLeft = colorMatrix{
		{1.062, -0.205, 0.299},
		{-0.026, 0.908, 0.068},
		{-0.038, -0.173, 0.022},
	}
	duboisAmberBlueRight = colorMatrix{
		{-0.016, -0.123, -0.017},
		{0.006, 0.062, -0.017},
		{0.094, 0.185, 0.911},
	}
)

// Anaglyph combines two independently rendered eye buffers into one
// image and computes the per-primitive horizontal parallax offsets.
type Anaglyph struct {
	// Mode selects the compositing layout or matrix family.
	Mode StereoMode

	// EyeSeparation is the full parallax in pixels for one unit of
	// depth away from the reference plane.
	EyeSeparation float64

	// ReferenceDepth is the depth value rendered exactly at the screen
	// plane; primitives at this depth need no second pass.
	ReferenceDepth float64
}

// OffsetForDepth returns the horizontally shifted x coordinate for one
// eye's render pass of a primitive at the given depth. The offset is
// proportional to the depth's distance from the reference plane, with
// opposite signs for the two eyes; Mono passes are never shifted.
func (a Anaglyph) OffsetForDepth(x, depth float64, eye Eye) float64 {
	if eye == Mono {
		return x
	}
	shift := (depth - a.ReferenceDepth) * a.EyeSeparation / 2
	if eye == LeftEye {
		return x + shift
	}
	return x - shift
}

// NeedsSecondPass reports whether a primitive at the given depth must be
// rendered separately for each eye. Primitives at the reference depth
// project identically into both buffers, so the second pass is skipped
// and the left-eye result reused.
func (a Anaglyph) NeedsSecondPass(depth float64) bool {
	return a.Mode != StereoNone && depth != a.ReferenceDepth
}

// Compose combines the two eye buffers according to the mode.
//
// A nil right buffer, or StereoNone, degenerates to an identity copy of
// the left buffer. Matrix modes require equal buffer dimensions; on
// mismatch the left buffer is copied and a warning is logged.
func (a Anaglyph) Compose(left, right *Pixmap) *Pixmap {
	if left == nil {
		return nil
	}
	if right == nil || a.Mode == StereoNone {
		return left.Clone()
	}

	switch a.Mode {
	case StereoSideBySide:
		return composeSideBySide(left, right, false)
	case StereoSideBySideHalf:
		return composeSideBySide(left, right, true)
	}

	if left.Width() != right.Width() || left.Height() != right.Height() {
		Logger().Warn("stereo buffer size mismatch, skipping composite",
			"leftWidth", left.Width(), "leftHeight", left.Height(),
			"rightWidth", right.Width(), "rightHeight", right.Height())
		return left.Clone()
	}

	var lm, rm colorMatrix
	switch a.Mode {
	case StereoGreenMagenta:
		lm, rm = duboisGreenMagentaLeft, duboisGreenMagentaRight
	case StereoAmberBlue:
		lm, rm = duboisAmberBlueLeft, duboisAmberBlueRight
	default:
		lm, rm = duboisRedCyanLeft, duboisRedCyanRight
	}

	out := NewPixmap(left.Width(), left.Height())
	lp, rp, op := left.Pix(), right.Pix(), out.Pix()
	for i := range lp {
		op[i] = mixPixel(Unpack(lp[i]), Unpack(rp[i]), lm, rm).Packed()
	}
	return out
}

// mixPixel applies the per-eye matrices to one pixel pair, sums the
// contributions and clamps each channel.
func mixPixel(l, r Color, lm, rm colorMatrix) Color {
	lr, lg, lb := float64(l.R), float64(l.G), float64(l.B)
	rr, rg, rb := float64(r.R), float64(r.G), float64(r.B)

	return Color{
		R: clampChannel(lm[0][0]*lr + lm[0][1]*lg + lm[0][2]*lb +
			rm[0][0]*rr + rm[0][1]*rg + rm[0][2]*rb),
		G: clampChannel(lm[1][0]*lr + lm[1][1]*lg + lm[1][2]*lb +
			rm[1][0]*rr + rm[1][1]*rg + rm[1][2]*rb),
		B: clampChannel(lm[2][0]*lr + lm[2][1]*lg + lm[2][2]*lb +
			rm[2][0]*rr + rm[2][1]*rg + rm[2][2]*rb),
		A: 255,
	}
}

// clampChannel rounds and clamps a mixed channel value to [0, 255].
func clampChannel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// composeSideBySide lays the two views out horizontally, optionally
// half-scaled so the pair keeps the left buffer's width.
func composeSideBySide(left, right *Pixmap, half bool) *Pixmap {
	if half {
		left = left.Scaled(left.Width()/2, left.Height())
		right = right.Scaled(right.Width()/2, right.Height())
	}

	h := max(left.Height(), right.Height())
	out := NewPixmap(left.Width()+right.Width(), h)
	blit(out, left, 0)
	blit(out, right, left.Width())
	return out
}

// blit copies src into dst at the given x offset.
func blit(dst, src *Pixmap, xoff int) {
	for y := 0; y < src.Height(); y++ {
		srcRow := src.Pix()[y*src.Width() : (y+1)*src.Width()]
		dstRow := dst.Pix()[y*dst.Width()+xoff : y*dst.Width()+xoff+src.Width()]
		copy(dstRow, srcRow)
	}
}
