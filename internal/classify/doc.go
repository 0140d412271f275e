// Package classify names a color by its nearest entry in a fixed palette.
//
// Classification runs in two stages. Near-achromatic colors (saturation
// below GraySaturation) have an unstable hue, so they skip the palette and
// are named from their value alone:
//
//	V > 0.92  "white"
//	V > 0.70  "very pale pink"
//	V > 0.40  "pale pink"
//	otherwise "brown"
//
// Every other color is compared against each palette entry with a weighted
// squared distance in which hue dominates:
//
//	d = 2.5·(hueDelta/180)² + (S - S')² + (V - V')²
//
// where hueDelta is the shorter arc between the two hues. The smallest d
// wins; ties resolve to the entry that appears first in the palette.
//
// The palette is a heuristic, tuned for water-test strips rather than being a
// general color-naming oracle. Colors at the gamut extremes may land on
// surprising neighbors.
package classify
