package colorspace

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// HSV is a hue/saturation/value triple.
type HSV struct {
	H float64 `json:"h"` // Hue in degrees [0, 360)
	S float64 `json:"s"` // Saturation [0, 1]
	V float64 `json:"v"` // Value [0, 1]
}

// ToHSV converts the RGB channels of c to HSV. Alpha is ignored.
func ToHSV(c Color) HSV {
	cf := colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
	h, s, v := cf.Hsv()
	return HSV{H: NormalizeHue(h), S: s, V: v}
}

// NormalizeHue folds any angle into [0, 360).
func NormalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}

// HueDistance is the shorter arc between two hues, in [0, 180].
func HueDistance(a, b float64) float64 {
	d := math.Abs(NormalizeHue(a) - NormalizeHue(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}

// ClampChannel clamps v to [0,255] and rounds it to the nearest integer.
func ClampChannel(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(math.Round(math.Min(255, math.Max(0, v))))
}
