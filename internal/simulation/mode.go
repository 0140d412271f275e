package simulation

import (
	"fmt"
	"strings"

	"github.com/ironsheep/color-assist-mcp/internal/colorspace"
)

// Mode selects a deficiency model.
type Mode int

const (
	// None leaves colors unchanged.
	None Mode = iota
	// Protanopia simulates missing long-wavelength (red) cones.
	Protanopia
	// Deuteranopia simulates missing medium-wavelength (green) cones.
	Deuteranopia
	// Tritanopia simulates missing short-wavelength (blue) cones.
	Tritanopia
)

var modeNames = map[Mode]string{
	None:         "none",
	Protanopia:   "protanopia",
	Deuteranopia: "deuteranopia",
	Tritanopia:   "tritanopia",
}

// Modes lists every recognized mode in declaration order.
func Modes() []Mode {
	return []Mode{None, Protanopia, Deuteranopia, Tritanopia}
}

// Valid reports whether m is a recognized mode.
func (m Mode) Valid() bool {
	_, ok := modeNames[m]
	return ok
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode maps a case-insensitive name to a Mode. The common
// "red-blind"/"green-blind"/"blue-blind" descriptions are accepted too.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "normal":
		return None, nil
	case "protanopia", "red-blind":
		return Protanopia, nil
	case "deuteranopia", "green-blind":
		return Deuteranopia, nil
	case "tritanopia", "blue-blind":
		return Tritanopia, nil
	}
	return None, fmt.Errorf("%w: unknown deficiency mode %q", colorspace.ErrInvalidArgument, s)
}
