package watertest

import "strings"

// Rule maps any of its substrings to a judgment.
type Rule struct {
	Substrings []string `json:"substrings"`
	Judgment   string   `json:"judgment"`
}

// table is the ordered rule list for one kind plus its fallback.
type table struct {
	rules         []Rule
	indeterminate string
}

var tables = map[Kind]table{
	PH: {
		rules: []Rule{
			{
				Substrings: []string{"red", "dark red", "tomato", "crimson", "orange red", "coral"},
				Judgment:   "Strongly acidic water.",
			},
			{
				Substrings: []string{"yellow", "gold", "orange", "carrot orange", "goldenrod", "yellow orange"},
				Judgment:   "Weak acidic water.",
			},
			{
				Substrings: []string{"lime green", "yellow green", "light green", "green yellow"},
				Judgment:   "Slightly acidic water.",
			},
			{
				Substrings: []string{"green", "pure green", "emerald"},
				Judgment:   "Neutral water, ideal.",
			},
			{
				Substrings: []string{"turquoise", "aquamarine", "blue green", "cyan", "teal", "teal blue", "sky blue", "light blue", "blue", "royal blue"},
				Judgment:   "Slightly basic water.",
			},
			{
				Substrings: []string{"indigo blue", "indigo", "dark blue", "violet", "blue violet", "purple", "medium purple"},
				Judgment:   "Highly basic water.",
			},
		},
		indeterminate: "Intermediate pH level.",
	},
	Ammonia: {
		rules: []Rule{
			{
				Substrings: []string{"bright yellow", "yellow", "lemon yellow", "golden yellow"},
				Judgment:   "Safe: Ammonia levels are very low or negligible. Water quality is excellent for aquatic life.",
			},
			{
				Substrings: []string{"pastel yellow", "pale yellow green", "light green yellow", "olive", "light yellow"},
				Judgment:   "Slightly Elevated: Minor traces of ammonia; generally safe but monitor regularly.",
			},
			{
				// "chartreuse" must stay lower-case to match at all.
				Substrings: []string{"yellow green", "inchworm", "chartreuse", "teal", "light green"},
				Judgment:   "Moderate: Ammonia levels are increasing; can start to stress sensitive fish or aquatic organisms. Partial water change recommended.",
			},
			{
				Substrings: []string{"light olive green", "olivine", "moss green"},
				Judgment:   "High: Toxic ammonia concentration. Immediate action needed (water change, filtration improvement, reduce feeding).",
			},
			{
				Substrings: []string{"medium green", "green", "fern green", "dark moss green", "blue green"},
				Judgment:   "Very High: Dangerous level. Can cause severe stress, gill damage, or death in fish. Urgent corrective action required.",
			},
		},
		indeterminate: "Ammonia range indeterminate.",
	},
	Nitrite: {
		rules: []Rule{
			{
				Substrings: []string{"white", "light cyan", "sky blue", "pale lavender blue"},
				Judgment:   "Safe: Very low nitrite. The only safe level for a cycled tank.",
			},
			{
				Substrings: []string{"very pale pink", "light violet"},
				Judgment:   "Stressful: Nitrite levels increasing. Minor toxicity; monitor closely.",
			},
			{
				Substrings: []string{"pale pink", "soft pinkish purple", "medium magenta"},
				Judgment:   "Unsafe: Nitrite levels increasing. Perform a water change.",
			},
			{
				Substrings: []string{"pink", "deep fuchsia pink"},
				Judgment:   "Dangerous: High toxicity; fish will show signs of gasping.",
			},
			{
				Substrings: []string{"magenta", "bright reddish pink", "reddish magenta"},
				Judgment:   "Toxic: Extremely high nitrite. Severe danger; immediate intervention needed.",
			},
			{
				Substrings: []string{"deep purple", "dark purple", "purple", "dark pinkish red", "deep crimson red"},
				Judgment:   "Lethal: Extremely high nitrite. Most fish will not survive this.",
			},
		},
		indeterminate: "Nitrite range indeterminate.",
	},
	Nitrate: {
		rules: []Rule{
			{
				Substrings: []string{"white", "bright lemon yellow", "light golden yellow", "sunflower yellow", "goldenrod", "lemon yellow"},
				Judgment:   "Ideal: Very low nitrate. Water quality is excellent; safe for aquatic life.",
			},
			{
				Substrings: []string{"amber", "orange", "coral"},
				Judgment:   "Caution: Nitrate levels increasing. Acceptable short-term, but long-term exposure can stress aquatic organisms. Partial water change advised.",
			},
			{
				Substrings: []string{"tangerine"},
				Judgment:   "Unsafe: Nitrate levels increasing. Perform a 25% water change.",
			},
			{
				Substrings: []string{"tomato red", "scarlet red"},
				Judgment:   "Dangerous: Perform a 50% water change immediately",
			},
			{
				Substrings: []string{"crimson", "dark crimson", "dark pinkish red"},
				Judgment:   "Toxic: Extremely high nitrate. Immediate large water change and system cleaning required.",
			},
		},
		indeterminate: "Nitrate range indeterminate.",
	},
	Chlorophyll: {
		rules: []Rule{
			{
				Substrings: []string{"light green", "pale green", "light yellow"},
				Judgment:   "Very Low Chlorophyll: Plants show severe nitrogen deficiency and poor growth; water supports very few fish due to low plankton.",
			},
			{
				Substrings: []string{"yellow green", "green yellow"},
				Judgment:   "Low Chlorophyll: Plants are nitrogen-deficient with weak growth; fish presence is limited and growth is slow.",
			},
			{
				Substrings: []string{"green", "medium green"},
				Judgment:   "Moderate Chlorophyll: Plants are healthy with adequate nitrogen; water is ideal for diverse and fast-growing fish.",
			},
			{
				Substrings: []string{"dark green", "teal"},
				Judgment:   "High Chlorophyll: Plants have excess nitrogen and dark green leaves; water favors hardy, plankton-feeding fish with some oxygen risk.",
			},
			{
				Substrings: []string{"brown", "blue green"},
				Judgment:   "Very High Chlorophyll: Plants suffer from nitrogen toxicity; water has algal blooms causing stress or mortality in fish.",
			},
		},
		indeterminate: "Chlorophyll level indeterminate.",
	},
}

// Rules returns a copy of the ordered rule table for k and its indeterminate
// judgment. ok is false for an unknown kind.
func Rules(k Kind) (rules []Rule, indeterminate string, ok bool) {
	t, ok := tables[k]
	if !ok {
		return nil, "", false
	}
	rules = make([]Rule, len(t.rules))
	for i, r := range t.rules {
		rules[i] = Rule{
			Substrings: append([]string(nil), r.Substrings...),
			Judgment:   r.Judgment,
		}
	}
	return rules, t.indeterminate, true
}

// matches reports whether any substring occurs in name. name must already be
// lower-cased.
func (r Rule) matches(name string) bool {
	for _, s := range r.Substrings {
		if strings.Contains(name, s) {
			return true
		}
	}
	return false
}
