package classifier

import "strings"

// outEvents is the closed set of Statcast play outcomes that end a plate
// appearance with at least one out.
var outEvents = map[string]struct{}{
	"field_out":                {},
	"strikeout":                {},
	"grounded_into_double_play": {},
	"fielders_choice_out":      {},
	"force_out":                {},
	"sac_fly":                  {},
	"sac_bunt":                 {},
	"strikeout_double_play":    {},
	"double_play":              {},
	"sac_fly_double_play":      {},
	"other_out":                {},
	"triple_play":              {},
	"sac_bunt_double_play":     {},
}

// IsOut reports whether a play outcome label is an out-producing event.
// Matching is case-insensitive and tolerates spaces in place of underscores,
// so both "field_out" and "Field out" classify as outs. Any label outside
// the known set, including the empty string, is not an out.
func IsOut(event string) bool {
	normalized := strings.ToLower(strings.TrimSpace(event))
	normalized = strings.ReplaceAll(normalized, " ", "_")

	_, ok := outEvents[normalized]
	return ok
}
