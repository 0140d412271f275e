// Package simulation approximates how a viewer with a cone deficiency
// perceives a color or an entire bitmap.
//
// Each Mode selects a fixed linear cone-response model. The coefficients are
// a linearized approximation of the Brettel, Viénot and Mollon projections and
// are constants, not tunable parameters:
//
//	Protanopia    L = 0.567r + 0.433g   M = 0.558r + 0.442g   S = b
//	              r' = 0.299L + 0.701M  g' = 0.169L + 0.831M  b' = S
//	Deuteranopia  L = r                 M = 0.625r + 0.375g   S = b
//	              r' = g' = 0.700L + 0.300M                   b' = S
//	Tritanopia    L = r                 M = g                 S = 0.949b + 0.051r
//	              r' = L                g' = 0.475M + 0.525S  b' = 0.183M + 0.817S
//
// Every output channel is clamped and rounded with colorspace.ClampChannel.
// Alpha passes through untouched.
//
// The models are perceptual approximations rather than projections, so
// applying a mode twice generally changes the color again.
//
// # Thread Safety
//
// Apply and TransformBitmap are pure. TransformBitmap splits rows across
// goroutines; callers must not mutate the source bitmap while it runs.
package simulation
