package watertest

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ironsheep/color-assist-mcp/internal/colorspace"
)

// Kind identifies a water test.
type Kind int

// Supported tests, in menu order.
const (
	PH Kind = iota
	Ammonia
	Nitrite
	Nitrate
	Chlorophyll
)

var kindLabels = map[Kind]string{
	PH:          "pH Test",
	Ammonia:     "Ammonia Test",
	Nitrite:     "Nitrite Test",
	Nitrate:     "Nitrate Test",
	Chlorophyll: "Chlorophyll Test",
}

var kindKeys = map[Kind]string{
	PH:          "ph",
	Ammonia:     "ammonia",
	Nitrite:     "nitrite",
	Nitrate:     "nitrate",
	Chlorophyll: "chlorophyll",
}

// Kinds lists every test kind in menu order.
func Kinds() []Kind {
	return []Kind{PH, Ammonia, Nitrite, Nitrate, Chlorophyll}
}

// Valid reports whether k is a recognized kind.
func (k Kind) Valid() bool {
	_, ok := kindLabels[k]
	return ok
}

// Label is the human-facing menu label, e.g. "pH Test".
func (k Kind) Label() string {
	if label, ok := kindLabels[k]; ok {
		return label
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// String returns the short key ("ph", "ammonia", ...).
func (k Kind) String() string {
	if key, ok := kindKeys[k]; ok {
		return key
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind accepts a short key or a menu label in any case: "pH",
// "ammonia", "Nitrite Test". The "select test" placeholder and empty input
// are rejected.
func ParseKind(s string) (Kind, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.TrimSpace(strings.TrimSuffix(key, " test"))
	if k, ok := kindForKey(key); ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: unknown test kind %q", colorspace.ErrInvalidArgument, s)
}

// kitLabelPattern matches test names and the chemical shorthand printed on
// common kit bottles and strip cards.
var kitLabelPattern = regexp.MustCompile(`(?i)\b(chlorophyll|nitrate|nitrite|ammonia|ph|nh3|nh4|no2|no3)\b`)

var kitAliases = map[string]Kind{
	"nh3": Ammonia,
	"nh4": Ammonia,
	"no2": Nitrite,
	"no3": Nitrate,
}

// DetectKind finds the first test name mentioned in text, such as OCR output
// from a kit label.
func DetectKind(text string) (Kind, bool) {
	m := kitLabelPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	word := strings.ToLower(m[1])
	if k, ok := kitAliases[word]; ok {
		return k, true
	}
	return kindForKey(word)
}

func kindForKey(key string) (Kind, bool) {
	for _, k := range Kinds() {
		if kindKeys[k] == key {
			return k, true
		}
	}
	return 0, false
}
