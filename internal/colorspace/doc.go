// Package colorspace holds the color primitives shared by the simulation and
// classification packages.
//
// A Color is an 8-bit ARGB value with no identity beyond its channels. HSV
// values are derived from it on demand and never stored. A Bitmap is a
// row-major grid of Colors owned by whoever created it.
//
// # Channel Arithmetic
//
// Every derived channel value is computed in float64 and written back through
// ClampChannel, which clamps to [0,255] and rounds half away from zero.
// Out-of-range intermediates are clamped, never wrapped.
//
// # HSV
//
// Hue is in degrees and always normalized to [0,360). Saturation and value
// are in [0,1]. Achromatic colors (saturation 0) report hue 0.
package colorspace
