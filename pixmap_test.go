package skychart

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPixmap_New(t *testing.T) {
	pm := NewPixmap(10, 5)
	if pm.Width() != 10 || pm.Height() != 5 {
		t.Errorf("size = %dx%d, want 10x5", pm.Width(), pm.Height())
	}
	if len(pm.Pix()) != 50 {
		t.Errorf("len(Pix()) = %d, want 50", len(pm.Pix()))
	}
	if got := pm.GetPixel(3, 3); got != Black {
		t.Errorf("fresh pixmap pixel = %v, want opaque black", got)
	}
}

func TestPixmap_NewNegative(t *testing.T) {
	pm := NewPixmap(-3, -4)
	if pm.Width() != 0 || pm.Height() != 0 {
		t.Errorf("negative dimensions should clamp to zero, got %dx%d", pm.Width(), pm.Height())
	}
}

func TestPixmap_SetGetPixel(t *testing.T) {
	pm := NewPixmap(10, 10)
	c := RGB(12, 34, 56)
	pm.SetPixel(4, 7, c)
	if got := pm.GetPixel(4, 7); got != c {
		t.Errorf("GetPixel = %v, want %v", got, c)
	}

	// Out of range writes are ignored, reads return Transparent.
	pm.SetPixel(-1, 0, c)
	pm.SetPixel(10, 0, c)
	if got := pm.GetPixel(-1, 0); got != Transparent {
		t.Errorf("out-of-range GetPixel = %v, want Transparent", got)
	}
}

func TestPixmap_PixAlias(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.Pix()[1*4+2] = RGB(9, 8, 7).Packed()
	if got := pm.GetPixel(2, 1); got != RGB(9, 8, 7) {
		t.Errorf("raw Pix write not visible through GetPixel: %v", got)
	}
}

func TestPixmap_BlendPixel(t *testing.T) {
	pm := NewPixmap(2, 2)
	pm.SetPixel(0, 0, Black)
	pm.BlendPixel(0, 0, White, 255)
	if got := pm.GetPixel(0, 0); got != White {
		t.Errorf("full-weight blend = %v, want white", got)
	}

	pm.SetPixel(1, 1, Black)
	pm.BlendPixel(1, 1, White, 0)
	if got := pm.GetPixel(1, 1); got != Black {
		t.Errorf("zero-weight blend = %v, want black", got)
	}
}

func TestPixmap_Clear(t *testing.T) {
	pm := NewPixmap(3, 3)
	pm.Clear(RGBA(50, 60, 70, 10))
	want := RGB(50, 60, 70) // alpha forced opaque
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if got := pm.GetPixel(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestPixmap_Clone(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.SetPixel(1, 1, Red)
	clone := pm.Clone()
	clone.SetPixel(1, 1, Green)
	if got := pm.GetPixel(1, 1); got != Red {
		t.Errorf("Clone shares storage: original pixel = %v", got)
	}
}

func TestPixmap_ImageRoundTrip(t *testing.T) {
	pm := NewPixmap(5, 3)
	pm.SetPixel(0, 0, Red)
	pm.SetPixel(4, 2, RGB(1, 2, 3))

	back := FromImage(pm.ToImage())
	if diff := cmp.Diff(pm.Pix(), back.Pix()); diff != "" {
		t.Errorf("image round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestPixmap_Scaled(t *testing.T) {
	pm := NewPixmap(8, 6)
	pm.Clear(Red)
	half := pm.Scaled(4, 3)
	if half.Width() != 4 || half.Height() != 3 {
		t.Fatalf("Scaled size = %dx%d, want 4x3", half.Width(), half.Height())
	}
	if got := half.GetPixel(2, 1); got != Red {
		t.Errorf("uniform image should stay uniform after scaling, got %v", got)
	}

	if empty := pm.Scaled(0, 3); empty.Width() != 0 {
		t.Error("Scaled to zero width should return an empty pixmap")
	}
}
