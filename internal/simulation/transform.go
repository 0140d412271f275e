package simulation

import (
	"github.com/anthonynsimon/bild/parallel"

	"github.com/ironsheep/color-assist-mcp/internal/colorspace"
)

// TransformBitmap returns a new bitmap of the same size in which every pixel
// of src has been passed through Apply with mode.
//
// Parameters:
//   - src: The bitmap to read. It is never modified or retained.
//   - mode: The deficiency model to apply.
//
// Returns:
//   - *colorspace.Bitmap: A newly allocated bitmap. A zero-area src yields an
//     empty bitmap with the same (zero) dimensions.
//   - error: Wraps colorspace.ErrInvalidArgument when mode is unknown or src
//     is nil or inconsistent.
//
// Rows are split across goroutines; each worker writes only its own rows of
// the output.
func TransformBitmap(src *colorspace.Bitmap, mode Mode) (*colorspace.Bitmap, error) {
	if err := src.Validate(); err != nil {
		return nil, err
	}
	fn, err := transformFor(mode)
	if err != nil {
		return nil, err
	}

	dst := colorspace.NewBitmap(src.Width, src.Height)
	if len(src.Pix) == 0 {
		return dst, nil
	}
	if mode == None {
		copy(dst.Pix, src.Pix)
		return dst, nil
	}

	width := src.Width
	parallel.Line(src.Height, func(start, end int) {
		for i := start * width; i < end*width; i++ {
			dst.Pix[i] = fn(src.Pix[i])
		}
	})

	return dst, nil
}
