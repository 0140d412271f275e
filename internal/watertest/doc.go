// Package watertest turns a classified strip color into a water-quality
// judgment for one of the supported aquarium tests.
//
// Each Kind owns an ordered rule table. A rule lists color-name substrings
// and the judgment to report when any of them occurs in the lower-cased
// color name. Rules are tried in order and the first match wins, so broad
// substrings such as "green" must come after the narrower names they would
// otherwise shadow. When no rule matches, the kind's indeterminate judgment
// is returned.
//
// The tables are fixed domain data. Use Rules to inspect them. All
// substrings are lower-case; in particular the ammonia "chartreuse" entry
// matches Chartreuse as Moderate rather than leaving it indeterminate.
package watertest
