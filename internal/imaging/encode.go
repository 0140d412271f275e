package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/color-assist-mcp/internal/colorspace"
)

// EncodedImage is a PNG ready to return over MCP.
type EncodedImage struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// Crop extracts the region (x1,y1)-(x2,y2) of img.
//
// Parameters:
//   - img: The source image. It is not modified.
//   - x1, y1: Top-left corner, inclusive, in img's coordinate space.
//   - x2, y2: Bottom-right corner, exclusive.
//
// Returns:
//   - image.Image: A new image anchored at (0,0) holding a copy of the region.
//   - error: Wraps colorspace.ErrInvalidArgument if the region leaves the
//     image bounds or is empty.
func Crop(img image.Image, x1, y1, x2, y2 int) (image.Image, error) {
	bounds := img.Bounds()

	if x1 < bounds.Min.X || y1 < bounds.Min.Y || x2 > bounds.Max.X || y2 > bounds.Max.Y {
		return nil, fmt.Errorf("%w: crop region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			colorspace.ErrInvalidArgument, x1, y1, x2, y2, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	if x1 >= x2 || y1 >= y2 {
		return nil, fmt.Errorf("%w: invalid crop region: x1 must be < x2, y1 must be < y2", colorspace.ErrInvalidArgument)
	}

	return imaging.Crop(img, image.Rect(x1, y1, x2, y2)), nil
}

// EncodePNG encodes img as a base64 PNG suitable for an MCP tool result.
//
// Parameters:
//   - img: The image to encode.
//   - scale: Resize factor applied with Lanczos resampling first. A scale of
//     1, or any scale <= 0, leaves the size unchanged. Scaled dimensions
//     never drop below one pixel.
//
// Returns:
//   - *EncodedImage: The encoded PNG and its final dimensions.
//   - error: Non-nil only if PNG encoding fails.
func EncodePNG(img image.Image, scale float64) (*EncodedImage, error) {
	out := img
	if scale != 1.0 && scale > 0 && !img.Bounds().Empty() {
		newWidth := max(1, int(float64(img.Bounds().Dx())*scale))
		newHeight := max(1, int(float64(img.Bounds().Dy())*scale))
		out = imaging.Resize(img, newWidth, newHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &EncodedImage{
		Width:       out.Bounds().Dx(),
		Height:      out.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
