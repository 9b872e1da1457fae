package skychart

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"
)

// Pixmap is a rectangular pixel buffer backed by a flat array of packed
// 0xRRGGBBAA integers. The packed array is exposed directly through Pix
// for fast indexed access; all stored pixels are opaque (alpha 255),
// since transparency is resolved at draw time by blending.
//
// Stereo rendering uses two independent Pixmaps, one per eye, combined
// afterwards by the Anaglyph compositor.
type Pixmap struct {
	width  int
	height int
	pix    []uint32
}

// NewPixmap creates a new pixmap with the given dimensions, cleared to
// opaque black.
func NewPixmap(width, height int) *Pixmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	pm := &Pixmap{
		width:  width,
		height: height,
		pix:    make([]uint32, width*height),
	}
	pm.Clear(Black)
	return pm
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Pix returns the raw packed pixel array, row-major. Index (y*Width + x)
// addresses pixel (x, y). Mutating it directly bypasses bounds checks.
func (p *Pixmap) Pix() []uint32 {
	return p.pix
}

// Rect returns the pixmap's full bounds as a ClipRect.
func (p *Pixmap) Rect() ClipRect {
	return ClipRect{W: p.width, H: p.height}
}

// SetPixel sets a single pixel. Out-of-range coordinates are ignored.
func (p *Pixmap) SetPixel(x, y int, c Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	p.pix[y*p.width+x] = c.Packed()
}

// GetPixel returns the color of a single pixel.
// Out-of-range coordinates return Transparent.
func (p *Pixmap) GetPixel(x, y int) Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	return Unpack(p.pix[y*p.width+x])
}

// BlendPixel mixes c into the pixel at (x, y) with the given 8-bit
// weight, using the integer premultiplied blend. Out-of-range
// coordinates are ignored.
func (p *Pixmap) BlendPixel(x, y int, c Color, w uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height || w == 0 {
		return
	}
	i := y*p.width + x
	p.pix[i] = Blend(c, Unpack(p.pix[i]), w).Packed()
}

// Clear fills the entire pixmap with a color. The stored alpha is forced
// to opaque.
func (p *Pixmap) Clear(c Color) {
	c.A = 255
	packed := c.Packed()
	for i := range p.pix {
		p.pix[i] = packed
	}
}

// Clone returns a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	q := &Pixmap{
		width:  p.width,
		height: p.height,
		pix:    make([]uint32, len(p.pix)),
	}
	copy(q.pix, p.pix)
	return q
}

// ToImage converts the pixmap to an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	for i, packed := range p.pix {
		img.Pix[i*4+0] = uint8(packed >> 24)
		img.Pix[i*4+1] = uint8(packed >> 16)
		img.Pix[i*4+2] = uint8(packed >> 8)
		img.Pix[i*4+3] = uint8(packed)
	}
	return img
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pm := NewPixmap(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pm.SetPixel(x, y, FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y)))
		}
	}
	return pm
}

// Scaled returns the pixmap resampled to the given dimensions using
// bilinear filtering. Used by the half-width side-by-side stereo layout
// and for icon/texture overlays supplied by external providers.
func (p *Pixmap) Scaled(width, height int) *Pixmap {
	if width <= 0 || height <= 0 {
		return NewPixmap(0, 0)
	}
	src := p.ToImage()
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return FromImage(dst)
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, p.ToImage())
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y).Color()
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
