package skychart

import (
	"math"
	"testing"
)

func BenchmarkDrawLine(b *testing.B) {
	pm := NewPixmap(1024, 1024)
	clip := pm.Rect()

	benchmarks := []struct {
		name   string
		stroke Stroke
		aa     bool
	}{
		{"aliased", DefaultStroke(), false},
		{"antialiased", DefaultStroke(), true},
		{"wide", DefaultStroke().WithWidth(3), false},
		{"dashed", DefaultStroke().WithDashPattern(8, 4), false},
	}

	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				DrawLine(pm, 10, 10, 1000, 700, White, bm.stroke, clip, bm.aa)
			}
		})
	}
}

func BenchmarkFillEllipse(b *testing.B) {
	pm := NewPixmap(1024, 1024)
	clip := pm.Rect()

	benchmarks := []struct {
		name string
		r    int
	}{
		{"small", 4},
		{"medium", 32},
		{"large", 256},
	}

	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				FillEllipse(pm, 512, 512, bm.r, bm.r, White, clip)
			}
		})
	}
}

func BenchmarkFillPath(b *testing.B) {
	pm := NewPixmap(1024, 1024)
	clip := pm.Rect()

	// A 24-gon approximating a constellation boundary loop.
	var p Path
	for i := 0; i <= 24; i++ {
		a := 2 * math.Pi * float64(i) / 24
		x := 512 + 300*math.Cos(a)
		y := 512 + 300*math.Sin(a)
		if i == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	p.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		FillPath(pm, &p, White, clip)
	}
}

func BenchmarkAnaglyphCompose(b *testing.B) {
	left := NewPixmap(640, 480)
	right := NewPixmap(640, 480)
	left.Clear(RGB(200, 180, 120))
	right.Clear(RGB(120, 180, 200))

	benchmarks := []struct {
		name string
		mode StereoMode
	}{
		{"red-cyan", StereoRedCyan},
		{"side-by-side", StereoSideBySide},
	}

	for _, bm := range benchmarks {
		an := Anaglyph{Mode: bm.mode}
		b.Run(bm.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				an.Compose(left, right)
			}
		})
	}
}
