package colorspace

import (
	"fmt"
	"image"
	"math"
)

// Raster is a read-only grid of colors addressed from (0,0) at the top-left.
type Raster interface {
	Size() (width, height int)
	ColorAt(x, y int) Color
}

// Bitmap is a row-major grid of colors. Pix[y*Width+x] is the pixel at (x, y).
type Bitmap struct {
	Width  int
	Height int
	Pix    []Color
}

// NewBitmap allocates a transparent bitmap. Negative dimensions are treated
// as zero.
func NewBitmap(width, height int) *Bitmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Bitmap{
		Width:  width,
		Height: height,
		Pix:    make([]Color, width*height),
	}
}

// Validate reports whether the bitmap's dimensions agree with its pixel slice.
func (b *Bitmap) Validate() error {
	if b == nil {
		return fmt.Errorf("%w: nil bitmap", ErrInvalidArgument)
	}
	if b.Width < 0 || b.Height < 0 {
		return fmt.Errorf("%w: bitmap size %dx%d", ErrInvalidArgument, b.Width, b.Height)
	}
	if b.Height != 0 && b.Width > math.MaxInt/b.Height {
		return fmt.Errorf("%w: bitmap size %dx%d overflows", ErrInvalidArgument, b.Width, b.Height)
	}
	if len(b.Pix) != b.Width*b.Height {
		return fmt.Errorf("%w: bitmap %dx%d has %d pixels", ErrInvalidArgument, b.Width, b.Height, len(b.Pix))
	}
	return nil
}

// Size implements Raster.
func (b *Bitmap) Size() (int, int) {
	return b.Width, b.Height
}

// ColorAt implements Raster. Out-of-range coordinates return the zero Color.
func (b *Bitmap) ColorAt(x, y int) Color {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return Color{}
	}
	return b.Pix[y*b.Width+x]
}

// Set writes c at (x, y). Out-of-range coordinates are ignored.
func (b *Bitmap) Set(x, y int, c Color) {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return
	}
	b.Pix[y*b.Width+x] = c
}

// BitmapFromImage copies img into a new Bitmap whose origin is img.Bounds().Min.
func BitmapFromImage(img image.Image) *Bitmap {
	bounds := img.Bounds()
	bm := NewBitmap(bounds.Dx(), bounds.Dy())

	if src, ok := img.(*image.NRGBA); ok {
		for y := 0; y < bm.Height; y++ {
			row := src.Pix[src.PixOffset(bounds.Min.X, bounds.Min.Y+y):]
			for x := 0; x < bm.Width; x++ {
				i := x * 4
				bm.Pix[y*bm.Width+x] = Color{R: row[i], G: row[i+1], B: row[i+2], A: row[i+3]}
			}
		}
		return bm
	}

	for y := 0; y < bm.Height; y++ {
		for x := 0; x < bm.Width; x++ {
			bm.Pix[y*bm.Width+x] = FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}
	return bm
}

// ToNRGBA copies the bitmap into a new *image.NRGBA anchored at (0,0).
// Pixels past Width*Height are ignored and missing ones stay transparent.
func (b *Bitmap) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	n := min(len(b.Pix), len(img.Pix)/4)
	for i, c := range b.Pix[:n] {
		img.Pix[i*4] = c.R
		img.Pix[i*4+1] = c.G
		img.Pix[i*4+2] = c.B
		img.Pix[i*4+3] = c.A
	}
	return img
}
