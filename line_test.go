package skychart

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// countPixels returns the number of pixels that differ from opaque black.
func countPixels(pm *Pixmap) int {
	n := 0
	black := Black.Packed()
	for _, p := range pm.Pix() {
		if p != black {
			n++
		}
	}
	return n
}

func TestDrawLine_SinglePoint(t *testing.T) {
	pm := NewPixmap(20, 20)
	DrawLine(pm, 5, 5, 5, 5, White, DefaultStroke(), pm.Rect(), false)

	if got := countPixels(pm); got != 1 {
		t.Fatalf("single-point line wrote %d pixels, want exactly 1", got)
	}
	if pm.GetPixel(5, 5) != White {
		t.Error("pixel (5,5) not written")
	}
}

func TestDrawLine_Horizontal(t *testing.T) {
	pm := NewPixmap(20, 20)
	DrawLine(pm, 2, 10, 8, 10, White, DefaultStroke(), pm.Rect(), false)

	for x := 2; x <= 8; x++ {
		if pm.GetPixel(x, 10) != White {
			t.Errorf("pixel (%d,10) not written", x)
		}
	}
	if got := countPixels(pm); got != 7 {
		t.Errorf("horizontal line wrote %d pixels, want 7", got)
	}
}

func TestDrawLine_Vertical(t *testing.T) {
	pm := NewPixmap(20, 20)
	DrawLine(pm, 10, 3, 10, 9, White, DefaultStroke(), pm.Rect(), false)

	if got := countPixels(pm); got != 7 {
		t.Errorf("vertical line wrote %d pixels, want 7", got)
	}
}

func TestDrawLine_Diagonal(t *testing.T) {
	pm := NewPixmap(20, 20)
	DrawLine(pm, 0, 0, 9, 9, White, DefaultStroke(), pm.Rect(), false)

	for i := 0; i <= 9; i++ {
		if pm.GetPixel(i, i) != White {
			t.Errorf("pixel (%d,%d) not written", i, i)
		}
	}
	if got := countPixels(pm); got != 10 {
		t.Errorf("diagonal wrote %d pixels, want 10", got)
	}
}

func TestDrawLine_ClipContainment(t *testing.T) {
	clip := Rect(20, 20, 30, 30)
	rng := rand.New(rand.NewSource(7))

	for _, antialias := range []bool{false, true} {
		pm := NewPixmap(100, 100)
		for i := 0; i < 200; i++ {
			x0 := rng.Float64()*160 - 30
			y0 := rng.Float64()*160 - 30
			x1 := rng.Float64()*160 - 30
			y1 := rng.Float64()*160 - 30
			DrawLine(pm, x0, y0, x1, y1, White, DefaultStroke(), clip, antialias)
		}

		for y := 0; y < 100; y++ {
			for x := 0; x < 100; x++ {
				if clip.Contains(x, y) {
					continue
				}
				if pm.GetPixel(x, y) != Black {
					t.Fatalf("antialias=%v: pixel (%d,%d) outside clip was written", antialias, x, y)
				}
			}
		}
	}
}

func TestDrawLine_PartialClipStillDraws(t *testing.T) {
	// A segment crossing the clip must be trimmed, not dropped.
	clip := Rect(10, 10, 10, 10)
	pm := NewPixmap(40, 40)
	DrawLine(pm, 0, 15, 39, 15, White, DefaultStroke(), clip, false)

	if pm.GetPixel(12, 15) != White {
		t.Error("interior of partially clipped segment not drawn")
	}
	if pm.GetPixel(5, 15) != Black || pm.GetPixel(25, 15) != Black {
		t.Error("pixels outside clip written")
	}
}

func TestDrawLine_DashConservation(t *testing.T) {
	// On a long run the plotted fraction must equal on/(on+off).
	pm := NewPixmap(1000, 1)
	stroke := DefaultStroke().WithDashPattern(3, 1)
	DrawLine(pm, 0, 0, 999, 0, White, stroke, pm.Rect(), false)

	if got := countPixels(pm); got != 750 {
		t.Errorf("dash (3,1) over 1000 pixels plotted %d, want 750", got)
	}
}

func TestDrawLine_DashPhaseResetsPerPrimitive(t *testing.T) {
	stroke := DefaultStroke().WithDashPattern(2, 2)

	first := NewPixmap(20, 1)
	DrawLine(first, 0, 0, 19, 0, White, stroke, first.Rect(), false)
	second := NewPixmap(20, 1)
	DrawLine(second, 0, 0, 9, 0, White, stroke, second.Rect(), false)
	DrawLine(second, 10, 0, 19, 0, White, stroke, second.Rect(), false)

	// Pixel 10 starts a fresh pattern in the two-call case.
	if second.GetPixel(10, 0) != White {
		t.Error("dash phase leaked into the second primitive")
	}
	if first.GetPixel(10, 0) != Black {
		t.Error("continuous dash should be off at pixel 10")
	}
}

func TestDrawLine_AntialiasedDiagonalIsExact(t *testing.T) {
	// Slope 1 has zero fractional coverage: Wu degenerates to clean
	// full-intensity pixels.
	pm := NewPixmap(10, 10)
	DrawLine(pm, 0, 0, 4, 4, White, DefaultStroke(), pm.Rect(), true)

	for i := 0; i <= 4; i++ {
		if pm.GetPixel(i, i) != White {
			t.Errorf("pixel (%d,%d) = %v, want white", i, i, pm.GetPixel(i, i))
		}
	}
	if got := countPixels(pm); got != 5 {
		t.Errorf("diagonal Wu line wrote %d pixels, want 5", got)
	}
}

func TestDrawLine_AntialiasedSpreadsCoverage(t *testing.T) {
	// A shallow slope must blend into two adjacent rows.
	pm := NewPixmap(30, 10)
	DrawLine(pm, 0, 2, 20, 5, White, DefaultStroke(), pm.Rect(), true)

	sawPartial := false
	for _, p := range pm.Pix() {
		c := Unpack(p)
		if c != Black && c != White && c.R == c.G && c.G == c.B {
			sawPartial = true
			break
		}
	}
	if !sawPartial {
		t.Error("antialiased line produced no partial-intensity pixels")
	}
}

func TestDrawLine_ZeroAlphaIsNoOp(t *testing.T) {
	pm := NewPixmap(10, 10)
	DrawLine(pm, 0, 0, 9, 9, White.WithAlpha(0), DefaultStroke(), pm.Rect(), false)
	if got := countPixels(pm); got != 0 {
		t.Errorf("zero-alpha draw wrote %d pixels", got)
	}
}

func TestDrawLine_WideStroke(t *testing.T) {
	pm := NewPixmap(20, 20)
	DrawLine(pm, 3, 10, 16, 10, White, DefaultStroke().WithWidth(3), pm.Rect(), false)

	for _, y := range []int{9, 10, 11} {
		if pm.GetPixel(10, y) != White {
			t.Errorf("wide stroke missing row y=%d", y)
		}
	}
	if pm.GetPixel(10, 7) != Black || pm.GetPixel(10, 13) != Black {
		t.Error("wide stroke bled beyond its width")
	}
}

func TestDrawPolyline(t *testing.T) {
	pm := NewPixmap(30, 30)
	xs := []float64{2, 12, 12}
	ys := []float64{2, 2, 20}
	DrawPolyline(pm, xs, ys, White, DefaultStroke(), pm.Rect(), false)

	if pm.GetPixel(7, 2) != White {
		t.Error("first segment not drawn")
	}
	if pm.GetPixel(12, 10) != White {
		t.Error("second segment not drawn")
	}
}

func TestDrawPolyline_DashPhaseSharedJoint(t *testing.T) {
	// Splitting a straight dashed run at a vertex must not disturb the
	// pattern: the joint pixel belongs to the earlier segment only.
	stroke := DefaultStroke().WithDashPattern(3, 2)

	single := NewPixmap(30, 3)
	DrawLine(single, 0, 1, 24, 1, White, stroke, single.Rect(), false)

	joined := NewPixmap(30, 3)
	DrawPolyline(joined, []float64{0, 12, 24}, []float64{1, 1, 1}, White, stroke, joined.Rect(), false)

	if diff := cmp.Diff(single.Pix(), joined.Pix()); diff != "" {
		t.Errorf("dash phase diverged at the joint:\n%s", diff)
	}
}

func TestDrawPolyline_JointBlendsOnce(t *testing.T) {
	// A semi-transparent antialiased polyline must blend each joint
	// pixel once, exactly like the equivalent single segment. The
	// right-to-left direction exercises the stepper's reversed sweep.
	c := White.WithAlpha(128)

	single := NewPixmap(30, 4)
	DrawLine(single, 24, 1.4, 0, 1.4, c, DefaultStroke(), single.Rect(), true)

	joined := NewPixmap(30, 4)
	DrawPolyline(joined, []float64{24, 12, 0}, []float64{1.4, 1.4, 1.4}, c, DefaultStroke(), joined.Rect(), true)

	if diff := cmp.Diff(single.Pix(), joined.Pix()); diff != "" {
		t.Errorf("polyline joint blended differently from a single segment:\n%s", diff)
	}
}

func TestDrawLine_AlwaysOnDashMatchesSolid(t *testing.T) {
	// A dash pattern with a zero off-run never turns off, so it must
	// plot exactly the pixels of the solid fast path.
	solid := NewPixmap(20, 20)
	DrawLine(solid, 0, 0, 19, 13, White, DefaultStroke(), solid.Rect(), false)

	dashed := NewPixmap(20, 20)
	DrawLine(dashed, 0, 0, 19, 13, White, DefaultStroke().WithDashPattern(4, 0), dashed.Rect(), false)

	if diff := cmp.Diff(solid.Pix(), dashed.Pix()); diff != "" {
		t.Errorf("always-on dash diverged from the solid fast path:\n%s", diff)
	}
}

func TestDrawPolyline_MismatchedInput(t *testing.T) {
	pm := NewPixmap(10, 10)
	DrawPolyline(pm, []float64{1, 2, 3}, []float64{1, 2}, White, DefaultStroke(), pm.Rect(), false)
	if got := countPixels(pm); got != 0 {
		t.Errorf("mismatched polyline input wrote %d pixels", got)
	}
}

func TestDrawLine_EmptyClipIsNoOp(t *testing.T) {
	pm := NewPixmap(10, 10)
	DrawLine(pm, 0, 0, 9, 9, White, DefaultStroke(), Rect(0, 0, 0, 10), false)
	if got := countPixels(pm); got != 0 {
		t.Errorf("empty clip wrote %d pixels", got)
	}
}
