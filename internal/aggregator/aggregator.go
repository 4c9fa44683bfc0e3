package aggregator

import (
	"math"
	"sort"

	"github.com/XavierBriggs/fortuna/services/pitch-stats-service/internal/classifier"
	"github.com/XavierBriggs/fortuna/services/pitch-stats-service/pkg/mlb"
	"github.com/XavierBriggs/fortuna/services/pitch-stats-service/pkg/models"
)

// UnknownPitchType is the bucket for records with a missing pitch type code.
const UnknownPitchType = "Unknown"

// Aggregate groups pitch records by pitch type and computes per-type out
// counts and percentages plus an overall rollup. Groups with fewer than
// minPitches pitches are dropped, and the OverallSummary is computed over
// the retained groups only, matching how the dashboard filters before its
// summary table. With minPitches of 0 the totals cover every input record.
//
// The returned summaries are ordered by pitch type code for determinism;
// presentation ordering belongs to the formatter.
func Aggregate(records []models.PitchRecord, minPitches int) ([]models.PitchTypeSummary, models.OverallSummary) {
	type group struct {
		total int
		outs  int
	}

	groups := make(map[string]*group)
	for _, record := range records {
		code := record.PitchType
		if code == "" {
			code = UnknownPitchType
		}

		g, ok := groups[code]
		if !ok {
			g = &group{}
			groups[code] = g
		}

		g.total++
		if classifier.IsOut(record.Event) {
			g.outs++
		}
	}

	codes := make([]string, 0, len(groups))
	for code := range groups {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	summaries := make([]models.PitchTypeSummary, 0, len(groups))
	var overall models.OverallSummary

	for _, code := range codes {
		g := groups[code]
		if g.total < minPitches {
			continue
		}

		summaries = append(summaries, models.PitchTypeSummary{
			PitchType:     code,
			PitchName:     mlb.PitchTypeName(code),
			TotalPitches:  g.total,
			OutCount:      g.outs,
			OutPercentage: percentage(g.outs, g.total),
		})

		overall.TotalPitches += g.total
		overall.TotalOuts += g.outs
	}

	overall.OverallOutPercentage = percentage(overall.TotalOuts, overall.TotalPitches)

	return summaries, overall
}

// percentage returns outs/total as a percentage rounded to 2 decimal
// places, and 0 when total is 0.
func percentage(outs, total int) float64 {
	if total == 0 {
		return 0
	}
	return round(float64(outs) / float64(total) * 100)
}

// round rounds a float to 2 decimal places
func round(val float64) float64 {
	return math.Round(val*100) / 100
}
