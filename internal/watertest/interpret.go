package watertest

import (
	"fmt"
	"strings"

	"github.com/ironsheep/color-assist-mcp/internal/classify"
	"github.com/ironsheep/color-assist-mcp/internal/colorspace"
)

// Interpret returns the judgment for colorName under test k.
//
// The name is lower-cased before matching, so palette names ("Tomato") and
// gray-ladder names ("pale pink") are handled alike. A name no rule covers
// yields the kind's indeterminate judgment. Only an unknown kind is an error.
func Interpret(k Kind, colorName string) (string, error) {
	t, ok := tables[k]
	if !ok {
		return "", fmt.Errorf("%w: unknown test kind %d", colorspace.ErrInvalidArgument, int(k))
	}

	name := strings.ToLower(colorName)
	for _, r := range t.rules {
		if r.matches(name) {
			return r.Judgment, nil
		}
	}
	return t.indeterminate, nil
}

// Reading is the full result of testing one sampled strip color.
type Reading struct {
	Test      string           `json:"test"`
	Color     colorspace.Color `json:"color"`
	Hex       string           `json:"hex"`
	ColorName string           `json:"color_name"`
	Judgment  string           `json:"judgment"`
}

// Analyze classifies c and interprets the result for test k.
func Analyze(k Kind, c colorspace.Color) (*Reading, error) {
	name := classify.Classify(c)
	judgment, err := Interpret(k, name)
	if err != nil {
		return nil, err
	}

	return &Reading{
		Test:      k.Label(),
		Color:     c,
		Hex:       c.Hex(),
		ColorName: name,
		Judgment:  judgment,
	}, nil
}

// Summary formats the reading as three lines: detected color, hex, judgment.
func (r *Reading) Summary() string {
	return fmt.Sprintf("Detected Color: %s\nHEX: %s\n%s", r.ColorName, r.Hex, r.Judgment)
}
