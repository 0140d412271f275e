package colorspace

// maxRadius keeps cx±radius inside int range.
const maxRadius = 1 << 30

// DefaultSampleRadius is the tap radius used when a caller does not pick one.
const DefaultSampleRadius = 3

// AverageInRadius returns the mean color of the pixels within radius of
// (cx, cy), using a circular mask clipped to the raster bounds.
//
// Channel means use integer division. The result is opaque. When the circle
// covers no pixel (for example, a center far outside the raster) the result
// is opaque black. A negative radius is treated as zero.
//
// Only the part of the bounding box that overlaps the raster is visited, so
// the cost is bounded by the raster size however large radius is.
func AverageInRadius(src Raster, cx, cy, radius int) Color {
	radius = min(max(radius, 0), maxRadius)
	width, height := src.Size()

	xmin, xmax := max(0, cx-radius), min(width-1, cx+radius)
	ymin, ymax := max(0, cy-radius), min(height-1, cy+radius)
	r2 := float64(radius) * float64(radius)

	var totalR, totalG, totalB, count int
	for x := xmin; x <= xmax; x++ {
		for y := ymin; y <= ymax; y++ {
			dx, dy := float64(x-cx), float64(y-cy)
			if dx*dx+dy*dy > r2 {
				continue
			}
			c := src.ColorAt(x, y)
			totalR += int(c.R)
			totalG += int(c.G)
			totalB += int(c.B)
			count++
		}
	}

	if count == 0 {
		return RGB(0, 0, 0)
	}
	return RGB(uint8(totalR/count), uint8(totalG/count), uint8(totalB/count))
}
