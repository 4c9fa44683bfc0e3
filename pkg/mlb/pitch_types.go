package mlb

import "strings"

// pitchTypeNames maps Statcast pitch type codes to display names.
var pitchTypeNames = map[string]string{
	"FF": "Four-Seam Fastball",
	"SL": "Slider",
	"CH": "Changeup",
	"CU": "Curveball",
	"SI": "Sinker",
	"FC": "Cutter",
	"FS": "Splitter",
	"FT": "Two-Seam Fastball",
	"KC": "Knuckle Curve",
	"EP": "Eephus",
	"KN": "Knuckleball",
	"SC": "Screwball",
	"ST": "Sweeper",
	"SV": "Slurve",
}

// PitchTypeName returns the display name for a Statcast pitch type code.
// Unrecognized codes pass through unchanged.
func PitchTypeName(code string) string {
	if name, ok := pitchTypeNames[code]; ok {
		return name
	}
	return code
}

// FormatPlayerName converts Statcast's "Last, First" form to "First Last".
// Names without a comma pass through unchanged.
func FormatPlayerName(name string) string {
	last, first, found := strings.Cut(name, ",")
	if !found {
		return name
	}
	return strings.TrimSpace(first) + " " + strings.TrimSpace(last)
}
