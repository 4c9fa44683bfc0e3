package formatter

import (
	"fmt"
	"sort"

	"github.com/XavierBriggs/fortuna/services/pitch-stats-service/pkg/models"
)

// SortKey selects the field summaries are ordered by.
type SortKey string

const (
	SortByPercentage SortKey = "percentage"
	SortByCount      SortKey = "count"
	SortByName       SortKey = "name"
)

// ParseSortKey validates a sort key from a request. An empty string maps to
// the default, percentage.
func ParseSortKey(value string) (SortKey, error) {
	switch SortKey(value) {
	case "":
		return SortByPercentage, nil
	case SortByPercentage, SortByCount, SortByName:
		return SortKey(value), nil
	default:
		return "", fmt.Errorf("unknown sort key: %s", value)
	}
}

// Sort returns a new slice of summaries ordered by the requested key. The
// sort is stable and ties are broken by pitch name ascending, so identical
// inputs always produce identical output order. The input is not mutated.
func Sort(summaries []models.PitchTypeSummary, key SortKey, descending bool) []models.PitchTypeSummary {
	ordered := make([]models.PitchTypeSummary, len(summaries))
	copy(ordered, summaries)

	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if descending {
			a, b = b, a
		}

		switch key {
		case SortByCount:
			if a.TotalPitches != b.TotalPitches {
				return a.TotalPitches < b.TotalPitches
			}
		case SortByName:
			if a.PitchName != b.PitchName {
				return a.PitchName < b.PitchName
			}
		default: // SortByPercentage
			if a.OutPercentage != b.OutPercentage {
				return a.OutPercentage < b.OutPercentage
			}
		}

		// Tie-break by name ascending regardless of direction
		return ordered[i].PitchName < ordered[j].PitchName
	})

	return ordered
}
