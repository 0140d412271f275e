package simulation

import (
	"fmt"

	"github.com/ironsheep/color-assist-mcp/internal/colorspace"
)

type transformFunc func(colorspace.Color) colorspace.Color

var transforms = map[Mode]transformFunc{
	None:         identity,
	Protanopia:   protanopia,
	Deuteranopia: deuteranopia,
	Tritanopia:   tritanopia,
}

// Apply returns c as perceived under mode.
//
// Returns an error wrapping colorspace.ErrInvalidArgument when mode is not
// one of the declared constants.
func Apply(c colorspace.Color, mode Mode) (colorspace.Color, error) {
	fn, err := transformFor(mode)
	if err != nil {
		return colorspace.Color{}, err
	}
	return fn(c), nil
}

func transformFor(mode Mode) (transformFunc, error) {
	fn, ok := transforms[mode]
	if !ok {
		return nil, fmt.Errorf("%w: unknown deficiency mode %d", colorspace.ErrInvalidArgument, int(mode))
	}
	return fn, nil
}

func identity(c colorspace.Color) colorspace.Color {
	return c
}

func protanopia(c colorspace.Color) colorspace.Color {
	r, g, b := float64(c.R), float64(c.G), float64(c.B)

	l := 0.567*r + 0.433*g
	m := 0.558*r + 0.442*g
	s := b

	return colorspace.Color{
		A: c.A,
		R: colorspace.ClampChannel(0.299*l + 0.701*m),
		G: colorspace.ClampChannel(0.169*l + 0.831*m),
		B: colorspace.ClampChannel(s),
	}
}

func deuteranopia(c colorspace.Color) colorspace.Color {
	r, g, b := float64(c.R), float64(c.G), float64(c.B)

	l := r
	m := 0.625*r + 0.375*g
	s := b

	rg := colorspace.ClampChannel(0.700*l + 0.300*m)
	return colorspace.Color{
		A: c.A,
		R: rg,
		G: rg,
		B: colorspace.ClampChannel(s),
	}
}

func tritanopia(c colorspace.Color) colorspace.Color {
	r, g, b := float64(c.R), float64(c.G), float64(c.B)

	l := r
	m := g
	s := 0.949*b + 0.051*r

	return colorspace.Color{
		A: c.A,
		R: colorspace.ClampChannel(l),
		G: colorspace.ClampChannel(0.475*m + 0.525*s),
		B: colorspace.ClampChannel(0.183*m + 0.817*s),
	}
}
