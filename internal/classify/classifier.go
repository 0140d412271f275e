package classify

import (
	"math"

	"github.com/ironsheep/color-assist-mcp/internal/colorspace"
)

const (
	// GraySaturation is the saturation below which the value-only ladder is used.
	GraySaturation = 0.08

	// HueWeight scales the normalized hue term of the distance.
	HueWeight = 2.5
)

// grayStep is one rung of the achromatic ladder.
type grayStep struct {
	minValue float64
	name     string
}

var grayLadder = []grayStep{
	{0.92, "white"},
	{0.7, "very pale pink"},
	{0.4, "pale pink"},
	{math.Inf(-1), "brown"},
}

// Match is the outcome of a nearest-color search.
type Match struct {
	// Name is the palette or gray-ladder name.
	Name string `json:"name"`

	// Index is the palette position of the match, or -1 for the gray ladder.
	Index int `json:"index"`

	// Distance is the weighted distance to the palette entry. It is 0 for
	// gray-ladder matches.
	Distance float64 `json:"distance"`

	// Gray reports whether the gray ladder produced the name.
	Gray bool `json:"gray"`

	// HSV is the converted input color.
	HSV colorspace.HSV `json:"hsv"`
}

// Classify returns the name of the palette color nearest to c.
func Classify(c colorspace.Color) string {
	return Nearest(c).Name
}

// Nearest runs the full search and reports which entry won and why.
func Nearest(c colorspace.Color) Match {
	hsv := colorspace.ToHSV(c)

	if hsv.S < GraySaturation {
		return Match{Name: grayName(hsv.V), Index: -1, Gray: true, HSV: hsv}
	}

	best := math.Inf(1)
	bestIndex := 0
	for i, e := range palette {
		d := Distance(hsv, e)
		if d < best {
			best = d
			bestIndex = i
		}
	}

	return Match{
		Name:     palette[bestIndex].Name,
		Index:    bestIndex,
		Distance: best,
		HSV:      hsv,
	}
}

// Distance is the weighted squared distance between hsv and e.
func Distance(hsv colorspace.HSV, e Entry) float64 {
	dh := colorspace.HueDistance(hsv.H, e.Hue) / 180
	ds := hsv.S - e.Saturation
	dv := hsv.V - e.Value
	return HueWeight*dh*dh + ds*ds + dv*dv
}

func grayName(v float64) string {
	for _, step := range grayLadder {
		if v > step.minValue {
			return step.name
		}
	}
	return grayLadder[len(grayLadder)-1].name
}
