package imaging

import (
	"fmt"
	"image"

	"github.com/ironsheep/color-assist-mcp/internal/colorspace"
)

// imageRaster presents an image.Image as a colorspace.Raster whose origin
// is the image's Bounds().Min.
type imageRaster struct {
	img    image.Image
	bounds image.Rectangle
}

// NewRaster wraps img for the colorspace sampling helpers. Pixels are read
// lazily, so sampling a few taps never copies the whole photo.
func NewRaster(img image.Image) colorspace.Raster {
	return imageRaster{img: img, bounds: img.Bounds()}
}

func (r imageRaster) Size() (int, int) {
	return r.bounds.Dx(), r.bounds.Dy()
}

func (r imageRaster) ColorAt(x, y int) colorspace.Color {
	return colorspace.FromColor(r.img.At(r.bounds.Min.X+x, r.bounds.Min.Y+y))
}

// SampleResult is the averaged color around one tap.
type SampleResult struct {
	X      int              `json:"x"`
	Y      int              `json:"y"`
	Radius int              `json:"radius"`
	Color  colorspace.Color `json:"color"`
	Hex    string           `json:"hex"`
	HSV    colorspace.HSV   `json:"hsv"`
}

// SampleColor averages the pixels within radius of (x, y).
//
// Parameters:
//   - img: The image to sample.
//   - x, y: Tap position, 0-based from the image's top-left corner. It must
//     lie inside the image.
//   - radius: Circle radius in pixels. Zero samples just the tap pixel. The
//     circle is clipped to the image bounds.
//
// Returns:
//   - *SampleResult: The tap, the averaged opaque color, its hex form and HSV.
//   - error: Wraps colorspace.ErrInvalidArgument if the tap is outside the
//     image or radius is negative.
func SampleColor(img image.Image, x, y, radius int) (*SampleResult, error) {
	raster := NewRaster(img)
	w, h := raster.Size()
	if x < 0 || x >= w || y < 0 || y >= h {
		return nil, fmt.Errorf("%w: coordinates (%d,%d) outside image bounds %dx%d",
			colorspace.ErrInvalidArgument, x, y, w, h)
	}
	if radius < 0 {
		return nil, fmt.Errorf("%w: negative sample radius %d", colorspace.ErrInvalidArgument, radius)
	}

	c := colorspace.AverageInRadius(raster, x, y, radius)
	return &SampleResult{
		X:      x,
		Y:      y,
		Radius: radius,
		Color:  c,
		Hex:    c.Hex(),
		HSV:    colorspace.ToHSV(c),
	}, nil
}
